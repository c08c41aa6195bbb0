package models

import "time"

// FileType — закрытый перечень поддерживаемых форматов.
type FileType string

const (
	FileTypePDF   FileType = "pdf"
	FileTypeDOCX  FileType = "docx"
	FileTypeTXT   FileType = "txt"
	FileTypeMD    FileType = "md"
	FileTypeHTML  FileType = "html"
	FileTypeImage FileType = "image"
	FileTypeOther FileType = "other"
)

// Document — загруженный файл плюс извлечённые метаданные.
type Document struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	FileName     string    `json:"file_name"`
	FilePath     string    `json:"file_path"`
	FileType     FileType  `json:"file_type"`
	FileSize     int64     `json:"file_size"`
	Content      string    `json:"content,omitempty"`
	Category     string    `json:"category"`
	Project      string    `json:"project"`
	Team         string    `json:"team"`
	Tags         []string  `json:"tags"`
	Keywords     []string  `json:"keywords"`
	UploadedBy   string    `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
	LastModified time.Time `json:"last_modified"`
	ViewCount    int       `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DocumentUpdate — частичное обновление метаданных.
// Контент после создания не перегенерируется.
type DocumentUpdate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Project     string   `json:"project"`
	Team        string   `json:"team"`
	Tags        []string `json:"tags"`
}

// DocumentFilter — конъюнкция фильтров-равенств для списков и поиска.
type DocumentFilter struct {
	Category string
	Project  string
	Team     string
	FileType string
}

// Pagination — блок пагинации в ответах списков.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
