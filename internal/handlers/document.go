package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"docsearch/internal/logger"
	"docsearch/internal/models"
	"docsearch/internal/repository"
	"docsearch/internal/services"
	helpers "docsearch/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	service        *services.DocumentService
	maxUploadBytes int64
}

func NewDocumentHandler(docService *services.DocumentService, maxUploadMB int64) *DocumentHandler {
	return &DocumentHandler{
		service:        docService,
		maxUploadBytes: maxUploadMB << 20,
	}
}

// UploadDocument godoc
// @Summary Загрузка и индексация документа
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл документа"
// @Param title formData string false "Заголовок (по умолчанию — имя файла)"
// @Param description formData string false "Описание"
// @Param category formData string false "Категория (иначе подберётся автоматически)"
// @Param project formData string false "Проект"
// @Param team formData string false "Команда"
// @Param uploaded_by formData string false "Кто загрузил"
// @Success 201 {object} models.Document
// @Failure 400 {string} string "Файл не найден"
// @Router /api/documents/upload [post]
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	log.Info("Запрос на загрузку документа")

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		log.Warn("Ошибка разбора формы при загрузке документа", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("Файл не найден при загрузке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Файл не найден")
		return
	}
	defer file.Close()

	doc, err := h.service.Upload(r.Context(), services.UploadInput{
		FileName:    header.Filename,
		FileSize:    header.Size,
		File:        file,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Project:     r.FormValue("project"),
		Team:        r.FormValue("team"),
		UploadedBy:  r.FormValue("uploaded_by"),
	})
	if err != nil {
		log.Error("Ошибка при сохранении документа", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при сохранении документа")
		return
	}

	log.Info("Документ успешно загружен", zap.Int("doc_id", doc.ID), zap.String("file_name", doc.FileName))
	helpers.JSON(w, http.StatusCreated, doc)
}

// ListDocuments godoc
// @Summary Список документов с фильтрами и пагинацией
// @Tags documents
// @Produce json
// @Param category query string false "Категория"
// @Param project query string false "Проект"
// @Param team query string false "Команда"
// @Param file_type query string false "Тип файла"
// @Param page query int false "Страница (с 1)"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {string} string "Ошибка сервера"
// @Router /api/documents [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	docs, pagination, err := h.service.List(r.Context(), filterFromQuery(r), page, limit)
	if err != nil {
		log.Error("Ошибка при получении документов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при получении документов")
		return
	}

	log.Info("Документы получены", zap.Int("count", len(docs)))
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"documents":  docs,
		"pagination": pagination,
	})
}

// GetDocument godoc
// @Summary Документ по ID (засчитывает просмотр)
// @Tags documents
// @Produce json
// @Param id path int true "ID документа"
// @Success 200 {object} models.Document
// @Failure 404 {string} string "Документ не найден"
// @Router /api/documents/{id} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	doc, err := h.service.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Документ не найден", zap.Int("doc_id", id))
		helpers.Error(w, http.StatusNotFound, "Документ не найден")
		return
	}
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при получении документа")
		return
	}

	helpers.JSON(w, http.StatusOK, doc)
}

// DownloadDocument godoc
// @Summary Скачать файл документа
// @Tags documents
// @Produce octet-stream
// @Param id path int true "ID документа"
// @Success 200 {file} file
// @Failure 404 {string} string "Документ не найден"
// @Router /api/documents/{id}/file [get]
func (h *DocumentHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	doc, data, err := h.service.File(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Документ не найден для скачивания", zap.Int("doc_id", id))
		helpers.Error(w, http.StatusNotFound, "Документ не найден")
		return
	}
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Файл не найден")
		return
	}

	log.Info("Документ скачан", zap.Int("doc_id", id), zap.String("file_name", doc.FileName))
	w.Header().Set("Content-Disposition", "attachment; filename="+doc.FileName)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}

// UpdateDocument godoc
// @Summary Обновление метаданных документа
// @Tags documents
// @Accept json
// @Produce json
// @Param id path int true "ID документа"
// @Param body body models.DocumentUpdate true "Изменяемые поля"
// @Success 200 {object} models.Document
// @Failure 404 {string} string "Документ не найден"
// @Router /api/documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var upd models.DocumentUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Warn("Некорректное тело запроса при обновлении", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	doc, err := h.service.Update(r.Context(), id, upd)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Error(w, http.StatusNotFound, "Документ не найден")
		return
	}
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при обновлении документа")
		return
	}

	log.Info("Документ обновлён", zap.Int("doc_id", id))
	helpers.JSON(w, http.StatusOK, doc)
}

// DeleteDocument godoc
// @Summary Удаление документа
// @Tags documents
// @Produce json
// @Param id path int true "ID документа"
// @Success 200 {string} string "Документ удалён"
// @Failure 404 {string} string "Документ не найден"
// @Router /api/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log.Info("Запрос на удаление документа", zap.Int("doc_id", id))

	err := h.service.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Документ не найден для удаления", zap.Int("doc_id", id))
		helpers.Error(w, http.StatusNotFound, "Документ не найден")
		return
	}
	if err != nil {
		log.Error("Ошибка при удалении документа", zap.Error(err), zap.Int("doc_id", id))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при удалении")
		return
	}

	log.Info("Документ успешно удалён", zap.Int("doc_id", id))
	helpers.JSON(w, http.StatusOK, "Документ удалён")
}

func filterFromQuery(r *http.Request) models.DocumentFilter {
	q := r.URL.Query()
	return models.DocumentFilter{
		Category: q.Get("category"),
		Project:  q.Get("project"),
		Team:     q.Get("team"),
		FileType: q.Get("file_type"),
	}
}
