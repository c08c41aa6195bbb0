package textextract

import (
	"bytes"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"docsearch/internal/models"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extractor достаёт текстовое содержимое загруженного файла.
// Ошибка извлечения никогда не фатальна для загрузки: на границе
// пайплайна она схлопывается в пустой контент.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract возвращает текст файла по его типу.
// Для image и неизвестных типов — пустая строка без ошибки.
func (e *Extractor) Extract(path string, fileType models.FileType) (string, error) {
	switch fileType {
	case models.FileTypePDF:
		return extractPDF(path)
	case models.FileTypeDOCX:
		return extractDOCX(path)
	case models.FileTypeTXT, models.FileTypeMD, models.FileTypeHTML:
		// Сырые байты как UTF-8, HTML не вычищаем.
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", nil
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	// GetContent отдаёт WordprocessingML — забираем только текст.
	return stripWordXML(r.Editable().GetContent()), nil
}

var (
	paraEndRe = regexp.MustCompile(`</w:p>`)
	xmlTagRe  = regexp.MustCompile(`<[^>]+>`)
)

func stripWordXML(s string) string {
	s = paraEndRe.ReplaceAllString(s, "\n")
	s = xmlTagRe.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}

var imageExts = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "svg": {}, "webp": {},
}

// DetectFileType определяет тип по расширению имени файла.
func DetectFileType(fileName string) models.FileType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))

	if _, ok := imageExts[ext]; ok {
		return models.FileTypeImage
	}

	switch ext {
	case "pdf":
		return models.FileTypePDF
	case "docx":
		return models.FileTypeDOCX
	case "txt":
		return models.FileTypeTXT
	case "md":
		return models.FileTypeMD
	case "html":
		return models.FileTypeHTML
	default:
		return models.FileTypeOther
	}
}
