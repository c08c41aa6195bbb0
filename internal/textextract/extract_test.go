package textextract

import (
	"os"
	"path/filepath"
	"testing"

	"docsearch/internal/models"
)

func TestDetectFileType(t *testing.T) {
	cases := map[string]models.FileType{
		"report.pdf":        models.FileTypePDF,
		"Brief.DOCX":        models.FileTypeDOCX,
		"notes.txt":         models.FileTypeTXT,
		"readme.md":         models.FileTypeMD,
		"landing.html":      models.FileTypeHTML,
		"logo.png":          models.FileTypeImage,
		"photo.JPEG":        models.FileTypeImage,
		"icon.svg":          models.FileTypeImage,
		"archive.zip":       models.FileTypeOther,
		"noextension":       models.FileTypeOther,
		"weird.name.webp":   models.FileTypeImage,
		"presentation.pptx": models.FileTypeOther,
	}

	for name, want := range cases {
		if got := DetectFileType(name); got != want {
			t.Errorf("DetectFileType(%q) = %q, ожидалось %q", name, got, want)
		}
	}
}

func TestExtract_PlainText(t *testing.T) {
	e := New()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	content := "Q2 campaign launch\nbudget draft"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := e.Extract(path, models.FileTypeTXT)
	if err != nil {
		t.Fatalf("ошибка извлечения: %v", err)
	}
	// txt/md/html отдаются как есть, без вычистки разметки.
	if got != content {
		t.Errorf("content = %q, ожидалось %q", got, content)
	}
}

func TestExtract_HTMLKeptVerbatim(t *testing.T) {
	e := New()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	content := "<h1>Brand Guidelines</h1>"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := e.Extract(path, models.FileTypeHTML)
	if err != nil {
		t.Fatalf("ошибка извлечения: %v", err)
	}
	if got != content {
		t.Errorf("content = %q, HTML должен сохраняться дословно", got)
	}
}

func TestExtract_ImageAndUnknownGiveEmpty(t *testing.T) {
	e := New()

	for _, ft := range []models.FileType{models.FileTypeImage, models.FileTypeOther} {
		got, err := e.Extract("does-not-matter.bin", ft)
		if err != nil {
			t.Errorf("тип %q: неожиданная ошибка %v", ft, err)
		}
		if got != "" {
			t.Errorf("тип %q: ожидался пустой контент, получено %q", ft, got)
		}
	}
}

func TestExtract_MissingFileReturnsError(t *testing.T) {
	e := New()

	if _, err := e.Extract(filepath.Join(t.TempDir(), "nope.txt"), models.FileTypeTXT); err == nil {
		t.Fatal("ожидалась ошибка чтения несуществующего файла")
	}
}

func TestStripWordXML(t *testing.T) {
	xml := `<w:document><w:p><w:r><w:t>Campaign brief</w:t></w:r></w:p><w:p><w:r><w:t>Budget &amp; plan</w:t></w:r></w:p></w:document>`
	got := stripWordXML(xml)
	want := "Campaign brief\nBudget & plan\n"
	if got != want {
		t.Errorf("stripWordXML = %q, ожидалось %q", got, want)
	}
}
