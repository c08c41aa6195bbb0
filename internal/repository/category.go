package repository

import (
	"context"
	"errors"
	"strings"

	"docsearch/internal/logger"
	"docsearch/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type CategoryRepo interface {
	UpsertIncrement(ctx context.Context, displayName string, delta int) (*models.Category, error)
	Decrement(ctx context.Context, name string) error
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
}

// UpsertIncrement — атомарный «увеличь или создай с дефолтами».
// Одна условная запись, без окна read-then-write между конкурентными загрузками.
func (r *CategoryRepository) UpsertIncrement(ctx context.Context, displayName string, delta int) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, display_name, description, color, document_count)
		VALUES (lower($1), $1, '', $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET document_count = categories.document_count + $3, updated_at = now()
		RETURNING id, name, display_name, description, color, document_count, created_at, updated_at`
	var c models.Category
	err := r.db.QueryRow(ctx, query, displayName, models.DefaultCategoryColor, delta).Scan(
		&c.ID, &c.Name, &c.DisplayName, &c.Description, &c.Color, &c.DocumentCount, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		logger.Log.Error("Ошибка upsert категории (repo)", zap.String("category", displayName), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// Decrement уменьшает счётчик при удалении документа.
// Категории не заводим задним числом: нет записи — нет и декремента.
func (r *CategoryRepository) Decrement(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE categories SET document_count = document_count - 1, updated_at = now() WHERE name = lower($1)`,
		name,
	)
	if err != nil {
		logger.Log.Error("Ошибка декремента категории (repo)", zap.String("category", name), zap.Error(err))
	}
	return err
}

// Список категорий по убыванию количества документов
func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, display_name, description, color, document_count, created_at, updated_at
		FROM categories
		ORDER BY document_count DESC`)
	if err != nil {
		logger.Log.Error("Ошибка получения категорий (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cats []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayName, &c.Description, &c.Color, &c.DocumentCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
			logger.Log.Error("Ошибка сканирования категории (repo)", zap.Error(err))
			return nil, err
		}
		cats = append(cats, &c)
	}
	return cats, rows.Err()
}

// Явное создание категории. Имя нормализуется в нижний регистр.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	c.Name = strings.ToLower(c.Name)
	query := `
		INSERT INTO categories (name, display_name, description, color, document_count)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, c.Name, c.DisplayName, c.Description, c.Color).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrCategoryExists
		}
		logger.Log.Error("Ошибка создания категории (repo)", zap.String("category", c.Name), zap.Error(err))
		return err
	}
	return nil
}
