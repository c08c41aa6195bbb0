package services

import (
	"context"
	"io"

	"docsearch/internal/classifier"
	"docsearch/internal/logger"
	"docsearch/internal/models"
	"docsearch/internal/repository"
	"docsearch/internal/storage"
	"docsearch/internal/textextract"

	"go.uber.org/zap"
)

// TextExtractor — контракт извлечения текста (см. internal/textextract).
type TextExtractor interface {
	Extract(path string, fileType models.FileType) (string, error)
}

type DocumentService struct {
	repo       repository.DocumentRepo
	categories repository.CategoryRepo
	files      storage.FileStore
	extractor  TextExtractor
	classifier *classifier.Classifier
}

func NewDocumentService(
	repo repository.DocumentRepo,
	categories repository.CategoryRepo,
	files storage.FileStore,
	extractor TextExtractor,
	clf *classifier.Classifier,
) *DocumentService {
	return &DocumentService{
		repo:       repo,
		categories: categories,
		files:      files,
		extractor:  extractor,
		classifier: clf,
	}
}

type DocumentServiceInterface interface {
	Upload(ctx context.Context, in UploadInput) (*models.Document, error)
	List(ctx context.Context, filter models.DocumentFilter, page, limit int) ([]*models.Document, models.Pagination, error)
	GetByID(ctx context.Context, id int) (*models.Document, error)
	File(ctx context.Context, id int) (*models.Document, []byte, error)
	Update(ctx context.Context, id int, upd models.DocumentUpdate) (*models.Document, error)
	Delete(ctx context.Context, id int) error
}

// UploadInput — входные данные загрузки; все поля кроме файла опциональны.
type UploadInput struct {
	FileName    string
	FileSize    int64
	File        io.Reader
	Title       string
	Description string
	Category    string
	Project     string
	Team        string
	UploadedBy  string
}

// Upload — пайплайн индексации: тип файла → запись на диск → извлечение
// текста → классификация → ключевые слова → запись в БД → счётчик категории.
func (s *DocumentService) Upload(ctx context.Context, in UploadInput) (*models.Document, error) {
	log := logger.WithCtx(ctx)

	fileType := textextract.DetectFileType(in.FileName)

	path, err := s.files.Save(in.FileName, in.File)
	if err != nil {
		log.Error("Ошибка при сохранении файла", zap.String("file_name", in.FileName), zap.Error(err))
		return nil, err
	}

	// Неудачное извлечение не прерывает загрузку — контент остаётся пустым,
	// страдает только качество классификации.
	content, err := s.extractor.Extract(path, fileType)
	if err != nil {
		log.Warn("Извлечение текста не удалось, контент будет пустым",
			zap.String("file_name", in.FileName), zap.String("file_type", string(fileType)), zap.Error(err))
		content = ""
	}

	title := in.Title
	if title == "" {
		title = in.FileName
	}

	cls := s.classifier.Categorize(title, in.Description, content)
	keywords := s.classifier.ExtractKeywords(title + " " + in.Description + " " + content)

	doc := &models.Document{
		Title:       title,
		Description: in.Description,
		FileName:    in.FileName,
		FilePath:    path,
		FileType:    fileType,
		FileSize:    in.FileSize,
		Content:     content,
		Category:    orDefault(in.Category, cls.Category),
		Project:     orDefault(in.Project, cls.Project),
		Team:        orDefault(in.Team, cls.Team),
		Tags:        cls.Tags,
		Keywords:    keywords,
		UploadedBy:  orDefault(in.UploadedBy, "System"),
	}

	if _, err := s.repo.Insert(ctx, doc); err != nil {
		return nil, err
	}

	if _, err := s.categories.UpsertIncrement(ctx, doc.Category, 1); err != nil {
		return nil, err
	}

	log.Info("Документ загружен и проиндексирован",
		zap.Int("doc_id", doc.ID),
		zap.String("category", doc.Category),
		zap.String("project", doc.Project),
		zap.String("team", doc.Team),
		zap.Int("tags", len(doc.Tags)),
		zap.Int("keywords", len(doc.Keywords)),
	)
	return doc, nil
}

func (s *DocumentService) List(ctx context.Context, filter models.DocumentFilter, page, limit int) ([]*models.Document, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	docs, total, err := s.repo.List(ctx, filter, "", limit, (page-1)*limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return docs, paginate(page, limit, total), nil
}

// GetByID возвращает документ и засчитывает один просмотр.
func (s *DocumentService) GetByID(ctx context.Context, id int) (*models.Document, error) {
	logger.Log.Info("Сервис: получение документа по ID", zap.Int("doc_id", id))
	doc, err := s.repo.IncrementViewsAndGet(ctx, id)
	if err != nil {
		logger.Log.Error("Ошибка получения документа по ID (service)", zap.Int("doc_id", id), zap.Error(err))
	}
	return doc, err
}

// File отдаёт метаданные и содержимое файла. Просмотр не засчитывается.
func (s *DocumentService) File(ctx context.Context, id int) (*models.Document, []byte, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.files.Read(doc.FilePath)
	if err != nil {
		logger.Log.Error("Файл не найден на диске", zap.String("file_path", doc.FilePath), zap.Error(err))
		return nil, nil, err
	}
	return doc, data, nil
}

// Update применяет только переданные поля и обновляет last_modified.
func (s *DocumentService) Update(ctx context.Context, id int, upd models.DocumentUpdate) (*models.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != "" {
		doc.Title = upd.Title
	}
	if upd.Description != "" {
		doc.Description = upd.Description
	}
	if upd.Category != "" {
		doc.Category = upd.Category
	}
	if upd.Project != "" {
		doc.Project = upd.Project
	}
	if upd.Team != "" {
		doc.Team = upd.Team
	}
	if upd.Tags != nil {
		doc.Tags = upd.Tags
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		logger.Log.Error("Ошибка обновления документа (service)", zap.Int("doc_id", id), zap.Error(err))
		return nil, err
	}
	return doc, nil
}

// Delete удаляет файл (ошибка не фатальна), декрементирует счётчик
// категории и убирает запись. Осиротевший файл — осознанный компромисс.
func (s *DocumentService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: удаление документа", zap.Int("doc_id", id))

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.Delete(doc.FilePath); err != nil {
		log.Error("Ошибка при удалении файла с диска", zap.String("file_path", doc.FilePath), zap.Error(err))
	}

	if err := s.categories.Decrement(ctx, doc.Category); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func paginate(page, limit, total int) models.Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return models.Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
