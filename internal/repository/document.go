package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docsearch/internal/logger"
	"docsearch/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DocumentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

type DocumentRepo interface {
	Insert(ctx context.Context, doc *models.Document) (int, error)
	GetByID(ctx context.Context, id int) (*models.Document, error)
	IncrementViewsAndGet(ctx context.Context, id int) (*models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter models.DocumentFilter, sortBy string, limit, offset int) ([]*models.Document, int, error)
	TextSearch(ctx context.Context, filter models.DocumentFilter, query string, limit, offset int) ([]*models.Document, int, error)
	SuggestionCandidates(ctx context.Context, query string, limit int) ([]*models.Document, error)
	MostViewed(ctx context.Context, limit int) ([]*models.Document, error)
	FacetStats(ctx context.Context) (*models.FilterStats, error)
}

// Поисковый вектор: title — вес A, description и теги — B, контент — C.
const searchVectorExpr = `
	setweight(to_tsvector('english', coalesce(title, '')), 'A') ||
	setweight(to_tsvector('english', coalesce(description, '')), 'B') ||
	setweight(to_tsvector('english', array_to_string(tags, ' ')), 'B') ||
	setweight(to_tsvector('english', coalesce(content, '')), 'C')`

// Колонки без content — для списков и поиска полный текст не отдаём.
const docColsNoContent = `id, title, description, file_name, file_path, file_type, file_size,
	category, project, team, tags, keywords, uploaded_by,
	uploaded_at, last_modified, view_count, created_at, updated_at`

const docColsFull = `id, title, description, file_name, file_path, file_type, file_size, content,
	category, project, team, tags, keywords, uploaded_by,
	uploaded_at, last_modified, view_count, created_at, updated_at`

// Сохранение документа
func (r *DocumentRepository) Insert(ctx context.Context, doc *models.Document) (int, error) {
	logger.Log.Info("Репозиторий: сохранение документа", zap.String("file_name", doc.FileName), zap.String("category", doc.Category))
	query := `
		INSERT INTO documents (title, description, file_name, file_path, file_type, file_size, content,
			category, project, team, tags, keywords, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, uploaded_at, last_modified, view_count, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		doc.Title,
		doc.Description,
		doc.FileName,
		doc.FilePath,
		doc.FileType,
		doc.FileSize,
		doc.Content,
		doc.Category,
		doc.Project,
		doc.Team,
		doc.Tags,
		doc.Keywords,
		doc.UploadedBy,
	).Scan(&doc.ID, &doc.UploadedAt, &doc.LastModified, &doc.ViewCount, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		logger.Log.Error("Ошибка сохранения документа (repo)", zap.Error(err))
		return 0, err
	}

	if err := r.refreshSearchVector(ctx, doc.ID); err != nil {
		logger.Log.Error("Ошибка построения поискового вектора (repo)", zap.Int("doc_id", doc.ID), zap.Error(err))
		return 0, err
	}
	return doc.ID, nil
}

func (r *DocumentRepository) refreshSearchVector(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `UPDATE documents SET search_vector = `+searchVectorExpr+` WHERE id = $1`, id)
	return err
}

// Получение по ID (без счётчика просмотров — для скачивания/редактирования)
func (r *DocumentRepository) GetByID(ctx context.Context, id int) (*models.Document, error) {
	query := `SELECT ` + docColsFull + ` FROM documents WHERE id = $1`
	var d models.Document
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.FileName, &d.FilePath, &d.FileType, &d.FileSize, &d.Content,
		&d.Category, &d.Project, &d.Team, &d.Tags, &d.Keywords, &d.UploadedBy,
		&d.UploadedAt, &d.LastModified, &d.ViewCount, &d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Error("Ошибка получения документа по ID (repo)", zap.Int("doc_id", id), zap.Error(err))
		return nil, err
	}
	return &d, nil
}

// IncrementViewsAndGet атомарно инкрементирует счётчик просмотров и
// возвращает документ. Один UPDATE — без гонки read-then-write.
func (r *DocumentRepository) IncrementViewsAndGet(ctx context.Context, id int) (*models.Document, error) {
	logger.Log.Info("Репозиторий: получение документа по ID", zap.Int("doc_id", id))
	query := `
		UPDATE documents SET view_count = view_count + 1
		WHERE id = $1
		RETURNING ` + docColsFull
	var d models.Document
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.FileName, &d.FilePath, &d.FileType, &d.FileSize, &d.Content,
		&d.Category, &d.Project, &d.Team, &d.Tags, &d.Keywords, &d.UploadedBy,
		&d.UploadedAt, &d.LastModified, &d.ViewCount, &d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.Error("Ошибка получения документа по ID (repo)", zap.Int("doc_id", id), zap.Error(err))
		return nil, err
	}
	return &d, nil
}

// Обновление метаданных. Контент не трогаем.
func (r *DocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	logger.Log.Info("Репозиторий: обновление документа", zap.Int("doc_id", doc.ID))
	query := `
		UPDATE documents
		SET title = $1, description = $2, category = $3, project = $4, team = $5, tags = $6,
			last_modified = now(), updated_at = now()
		WHERE id = $7`
	tag, err := r.db.Exec(ctx, query,
		doc.Title, doc.Description, doc.Category, doc.Project, doc.Team, doc.Tags, doc.ID,
	)
	if err != nil {
		logger.Log.Error("Ошибка обновления документа (repo)", zap.Int("doc_id", doc.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return r.refreshSearchVector(ctx, doc.ID)
}

// Удаление
func (r *DocumentRepository) Delete(ctx context.Context, id int) error {
	logger.Log.Info("Репозиторий: удаление документа", zap.Int("doc_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления документа (repo)", zap.Int("doc_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// buildFilter собирает условия-равенства в единый WHERE.
func buildFilter(filter models.DocumentFilter, args []interface{}) ([]string, []interface{}) {
	conds := []string{}
	if filter.Category != "" {
		conds = append(conds, "category = $"+itoa(len(args)+1))
		args = append(args, filter.Category)
	}
	if filter.Project != "" {
		conds = append(conds, "project = $"+itoa(len(args)+1))
		args = append(args, filter.Project)
	}
	if filter.Team != "" {
		conds = append(conds, "team = $"+itoa(len(args)+1))
		args = append(args, filter.Team)
	}
	if filter.FileType != "" {
		conds = append(conds, "file_type = $"+itoa(len(args)+1))
		args = append(args, filter.FileType)
	}
	return conds, args
}

// sortClause — белый список сортировок, ничего из запроса в SQL не попадает.
func sortClause(sortBy string) string {
	switch sortBy {
	case "date":
		return "uploaded_at DESC"
	case "views":
		return "view_count DESC, uploaded_at DESC"
	case "name":
		return "title ASC"
	default:
		return "view_count DESC, uploaded_at DESC"
	}
}

// Список с фильтрами, сортировкой и пагинацией (без текстового запроса)
func (r *DocumentRepository) List(ctx context.Context, filter models.DocumentFilter, sortBy string, limit, offset int) ([]*models.Document, int, error) {
	conds, args := buildFilter(filter, nil)

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	query := `SELECT ` + docColsNoContent + ` FROM documents` + where +
		` ORDER BY ` + sortClause(sortBy) +
		` LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		logger.Log.Error("Ошибка получения списка документов (repo)", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	docs, err := scanDocsNoContent(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM documents`+where, args...).Scan(&total); err != nil {
		logger.Log.Error("Ошибка подсчёта документов (repo)", zap.Error(err))
		return nil, 0, err
	}

	return docs, total, nil
}

// TextSearch — релевантностный поиск по title/description/content/tags.
// Порядок: релевантность, затем просмотры, затем дата загрузки.
func (r *DocumentRepository) TextSearch(ctx context.Context, filter models.DocumentFilter, query string, limit, offset int) ([]*models.Document, int, error) {
	args := []interface{}{query}
	conds, args := buildFilter(filter, args)
	conds = append(conds, "search_vector @@ plainto_tsquery('english', $1)")

	where := " WHERE " + strings.Join(conds, " AND ")

	q := `SELECT ` + docColsNoContent + ` FROM documents` + where +
		` ORDER BY ts_rank(search_vector, plainto_tsquery('english', $1)) DESC, view_count DESC, uploaded_at DESC` +
		` LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
	rows, err := r.db.Query(ctx, q, append(args, limit, offset)...)
	if err != nil {
		logger.Log.Error("Ошибка текстового поиска (repo)", zap.String("query", query), zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	docs, err := scanDocsNoContent(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM documents`+where, args...).Scan(&total); err != nil {
		logger.Log.Error("Ошибка подсчёта результатов поиска (repo)", zap.Error(err))
		return nil, 0, err
	}

	return docs, total, nil
}

// SuggestionCandidates — документы, у которых подстрока встречается в
// заголовке, теге или ключевом слове (без учёта регистра).
func (r *DocumentRepository) SuggestionCandidates(ctx context.Context, query string, limit int) ([]*models.Document, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(ctx, `
		SELECT id, title, tags, keywords, category
		FROM documents
		WHERE title ILIKE $1
		   OR EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE $1)
		   OR EXISTS (SELECT 1 FROM unnest(keywords) AS k WHERE k ILIKE $1)
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		logger.Log.Error("Ошибка выборки кандидатов подсказок (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Tags, &d.Keywords, &d.Category); err != nil {
			return nil, err
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}

// MostViewed — топ документов по просмотрам для «популярных запросов».
func (r *DocumentRepository) MostViewed(ctx context.Context, limit int) ([]*models.Document, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, tags, keywords
		FROM documents
		ORDER BY view_count DESC
		LIMIT $1
	`, limit)
	if err != nil {
		logger.Log.Error("Ошибка выборки популярных документов (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Tags, &d.Keywords); err != nil {
			return nil, err
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}

// FacetStats — распределения значений category/project/team по убыванию.
func (r *DocumentRepository) FacetStats(ctx context.Context) (*models.FilterStats, error) {
	stats := &models.FilterStats{}

	for _, f := range []struct {
		column string
		dest   *[]models.FacetCount
	}{
		{"category", &stats.Categories},
		{"project", &stats.Projects},
		{"team", &stats.Teams},
	} {
		rows, err := r.db.Query(ctx,
			`SELECT `+f.column+`, COUNT(*) FROM documents GROUP BY `+f.column+` ORDER BY COUNT(*) DESC`)
		if err != nil {
			logger.Log.Error("Ошибка агрегации статистики (repo)", zap.String("column", f.column), zap.Error(err))
			return nil, err
		}
		for rows.Next() {
			var fc models.FacetCount
			if err := rows.Scan(&fc.Value, &fc.Count); err != nil {
				rows.Close()
				return nil, err
			}
			*f.dest = append(*f.dest, fc)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func scanDocsNoContent(rows pgx.Rows) ([]*models.Document, error) {
	var docs []*models.Document
	for rows.Next() {
		var d models.Document
		err := rows.Scan(
			&d.ID, &d.Title, &d.Description, &d.FileName, &d.FilePath, &d.FileType, &d.FileSize,
			&d.Category, &d.Project, &d.Team, &d.Tags, &d.Keywords, &d.UploadedBy,
			&d.UploadedAt, &d.LastModified, &d.ViewCount, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			logger.Log.Error("Ошибка сканирования документа (repo)", zap.Error(err))
			return nil, err
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}

// простой хелпер без strconv импортов
func itoa(i int) string { return fmt.Sprintf("%d", i) }
