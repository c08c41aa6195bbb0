package models

import "time"

// DefaultCategoryColor — цвет категории, если не задан явно.
const DefaultCategoryColor = "#3B82F6"

// Category — агрегат-метка; name хранится в нижнем регистре и уникален.
type Category struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	DisplayName   string    `json:"display_name"`
	Description   string    `json:"description"`
	Color         string    `json:"color"`
	DocumentCount int       `json:"document_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
