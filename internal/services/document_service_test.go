package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"docsearch/internal/classifier"
	"docsearch/internal/models"
	"docsearch/internal/repository"
)

// Мок-репозиторий документов (заглушка)
type mockDocRepo struct {
	docs   map[int]*models.Document
	nextID int

	textSearchCalled bool
	listCalled       bool
	lastSortBy       string

	suggestionDocs []*models.Document
	mostViewedDocs []*models.Document
}

func newMockDocRepo() *mockDocRepo {
	return &mockDocRepo{docs: make(map[int]*models.Document), nextID: 1}
}

func (m *mockDocRepo) Insert(_ context.Context, doc *models.Document) (int, error) {
	doc.ID = m.nextID
	m.nextID++
	stored := *doc
	m.docs[doc.ID] = &stored
	return doc.ID, nil
}

func (m *mockDocRepo) GetByID(_ context.Context, id int) (*models.Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDocRepo) IncrementViewsAndGet(_ context.Context, id int) (*models.Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d.ViewCount++
	cp := *d
	return &cp, nil
}

func (m *mockDocRepo) Update(_ context.Context, doc *models.Document) error {
	if _, ok := m.docs[doc.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *doc
	m.docs[doc.ID] = &stored
	return nil
}

func (m *mockDocRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *mockDocRepo) List(_ context.Context, _ models.DocumentFilter, sortBy string, limit, offset int) ([]*models.Document, int, error) {
	m.listCalled = true
	m.lastSortBy = sortBy
	var all []*models.Document
	for _, d := range m.docs {
		all = append(all, d)
	}
	return all, len(all), nil
}

func (m *mockDocRepo) TextSearch(_ context.Context, _ models.DocumentFilter, _ string, limit, offset int) ([]*models.Document, int, error) {
	m.textSearchCalled = true
	return nil, 45, nil
}

func (m *mockDocRepo) SuggestionCandidates(_ context.Context, _ string, _ int) ([]*models.Document, error) {
	return m.suggestionDocs, nil
}

func (m *mockDocRepo) MostViewed(_ context.Context, _ int) ([]*models.Document, error) {
	return m.mostViewedDocs, nil
}

func (m *mockDocRepo) FacetStats(_ context.Context) (*models.FilterStats, error) {
	return &models.FilterStats{}, nil
}

// Мок-репозиторий категорий: ведёт счётчики как настоящий upsert.
type mockCategoryRepo struct {
	counts map[string]int
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{counts: make(map[string]int)}
}

func (m *mockCategoryRepo) UpsertIncrement(_ context.Context, displayName string, delta int) (*models.Category, error) {
	name := strings.ToLower(displayName)
	m.counts[name] += delta
	return &models.Category{Name: name, DisplayName: displayName, DocumentCount: m.counts[name]}, nil
}

func (m *mockCategoryRepo) Decrement(_ context.Context, name string) error {
	m.counts[strings.ToLower(name)]--
	return nil
}

func (m *mockCategoryRepo) List(_ context.Context) ([]*models.Category, error) { return nil, nil }

func (m *mockCategoryRepo) Create(_ context.Context, _ *models.Category) error { return nil }

// Мок файлового хранилища
type mockFileStore struct {
	deleteErr   error
	deleteCalls int
}

func (m *mockFileStore) Save(fileName string, _ io.Reader) (string, error) {
	return "uploads/mock_" + fileName, nil
}

func (m *mockFileStore) Read(_ string) ([]byte, error) { return []byte("file-bytes"), nil }

func (m *mockFileStore) Delete(_ string) error {
	m.deleteCalls++
	return m.deleteErr
}

// Мок извлечения текста
type mockExtractor struct {
	content string
	err     error
}

func (m *mockExtractor) Extract(_ string, _ models.FileType) (string, error) {
	return m.content, m.err
}

func newDocService(repo *mockDocRepo, cats *mockCategoryRepo, files *mockFileStore, ext *mockExtractor) *DocumentService {
	return NewDocumentService(repo, cats, files, ext, classifier.New(classifier.DefaultRules()))
}

func TestUpload_AutoClassification(t *testing.T) {
	repo := newMockDocRepo()
	cats := newMockCategoryRepo()
	svc := newDocService(repo, cats, &mockFileStore{}, &mockExtractor{
		content: "Q2 campaign launch for new product feature release",
	})

	doc, err := svc.Upload(context.Background(), UploadInput{
		FileName: "brief.txt",
		FileSize: 42,
		File:     strings.NewReader("ignored"),
	})
	if err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}

	if doc.Title != "brief.txt" {
		t.Errorf("title = %q, ожидалось имя файла", doc.Title)
	}
	if doc.Category != "Campaign" {
		t.Errorf("category = %q, ожидалось Campaign", doc.Category)
	}
	if doc.Project != "Product Launch" {
		t.Errorf("project = %q, ожидалось Product Launch", doc.Project)
	}
	if doc.Team != "Marketing" {
		t.Errorf("team = %q, ожидалось Marketing", doc.Team)
	}
	if len(doc.Keywords) == 0 {
		t.Error("ключевые слова не извлечены")
	}
	if len(doc.Tags) == 0 {
		t.Error("теги не извлечены")
	}
	if cats.counts["campaign"] != 1 {
		t.Errorf("счётчик категории = %d, ожидалось 1", cats.counts["campaign"])
	}
	if doc.UploadedBy != "System" {
		t.Errorf("uploaded_by = %q, ожидалось System", doc.UploadedBy)
	}
}

func TestUpload_ExplicitLabelsWin(t *testing.T) {
	repo := newMockDocRepo()
	cats := newMockCategoryRepo()
	svc := newDocService(repo, cats, &mockFileStore{}, &mockExtractor{
		content: "campaign launch",
	})

	doc, err := svc.Upload(context.Background(), UploadInput{
		FileName: "brief.txt",
		File:     strings.NewReader(""),
		Category: "Legal",
		Project:  "Audit",
		Team:     "Compliance",
	})
	if err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}

	if doc.Category != "Legal" || doc.Project != "Audit" || doc.Team != "Compliance" {
		t.Errorf("явные метки перетёрты автоклассификацией: %+v", doc)
	}
	if cats.counts["legal"] != 1 {
		t.Errorf("счётчик должен расти у явной категории, counts = %v", cats.counts)
	}
}

func TestUpload_ExtractionFailureDegrades(t *testing.T) {
	repo := newMockDocRepo()
	cats := newMockCategoryRepo()
	svc := newDocService(repo, cats, &mockFileStore{}, &mockExtractor{
		err: errors.New("повреждённый pdf"),
	})

	doc, err := svc.Upload(context.Background(), UploadInput{
		FileName: "broken.pdf",
		File:     strings.NewReader(""),
	})
	if err != nil {
		t.Fatalf("ошибка извлечения не должна прерывать загрузку: %v", err)
	}

	if doc.Content != "" {
		t.Errorf("content = %q, ожидался пустой", doc.Content)
	}
	// Без текста срабатывают только метки по умолчанию (имя файла не содержит триггеров).
	if doc.Category != classifier.DefaultCategory {
		t.Errorf("category = %q, ожидалось %q", doc.Category, classifier.DefaultCategory)
	}
}

func TestGetByID_IncrementsViews(t *testing.T) {
	repo := newMockDocRepo()
	cats := newMockCategoryRepo()
	svc := newDocService(repo, cats, &mockFileStore{}, &mockExtractor{})

	doc, err := svc.Upload(context.Background(), UploadInput{FileName: "a.txt", File: strings.NewReader("")})
	if err != nil {
		t.Fatal(err)
	}

	const n = 7
	var last *models.Document
	for i := 0; i < n; i++ {
		last, err = svc.GetByID(context.Background(), doc.ID)
		if err != nil {
			t.Fatal(err)
		}
	}
	if last.ViewCount != n {
		t.Errorf("view_count = %d, ожидалось %d", last.ViewCount, n)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newDocService(newMockDocRepo(), newMockCategoryRepo(), &mockFileStore{}, &mockExtractor{})

	_, err := svc.GetByID(context.Background(), 999)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("ожидалась ErrNotFound, получено %v", err)
	}
}

func TestUpdate_TouchesOnlyProvidedFields(t *testing.T) {
	repo := newMockDocRepo()
	svc := newDocService(repo, newMockCategoryRepo(), &mockFileStore{}, &mockExtractor{
		content: "campaign launch",
	})

	doc, err := svc.Upload(context.Background(), UploadInput{
		FileName:    "brief.txt",
		Title:       "Старый заголовок",
		Description: "описание",
		File:        strings.NewReader(""),
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(context.Background(), doc.ID, models.DocumentUpdate{Title: "Новый заголовок"})
	if err != nil {
		t.Fatal(err)
	}

	if updated.Title != "Новый заголовок" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Description != "описание" {
		t.Errorf("description перетёрто: %q", updated.Description)
	}
	if updated.Content != doc.Content {
		t.Error("контент не должен меняться при обновлении метаданных")
	}
}

func TestDelete_FileCleanupFailureTolerated(t *testing.T) {
	repo := newMockDocRepo()
	cats := newMockCategoryRepo()
	files := &mockFileStore{deleteErr: errors.New("диск недоступен")}
	svc := newDocService(repo, cats, files, &mockExtractor{content: "campaign launch"})

	doc, err := svc.Upload(context.Background(), UploadInput{FileName: "a.txt", File: strings.NewReader("")})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), doc.ID); err != nil {
		t.Fatalf("ошибка удаления файла не должна блокировать удаление записи: %v", err)
	}
	if files.deleteCalls != 1 {
		t.Errorf("удаление файла вызвано %d раз", files.deleteCalls)
	}
	if _, err := repo.GetByID(context.Background(), doc.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Error("запись документа не удалена")
	}
}

func TestDelete_CategoryCountConservation(t *testing.T) {
	repo := newMockDocRepo()
	cats := newMockCategoryRepo()
	svc := newDocService(repo, cats, &mockFileStore{}, &mockExtractor{content: "campaign launch"})

	const k, d = 5, 3
	ids := make([]int, 0, k)
	for i := 0; i < k; i++ {
		doc, err := svc.Upload(context.Background(), UploadInput{FileName: "a.txt", File: strings.NewReader("")})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, doc.ID)
	}
	for i := 0; i < d; i++ {
		if err := svc.Delete(context.Background(), ids[i]); err != nil {
			t.Fatal(err)
		}
	}

	if got := cats.counts["campaign"]; got != k-d {
		t.Errorf("счётчик категории = %d, ожидалось %d", got, k-d)
	}
}
