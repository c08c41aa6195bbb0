package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"docsearch/internal/logger"
	"docsearch/internal/models"
	"docsearch/internal/repository"
	"docsearch/internal/services"
	helpers "docsearch/internal/utils/helpers"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(categorySvc *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: categorySvc}
}

// ListCategories godoc
// @Summary Список категорий по убыванию количества документов
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {string} string "Ошибка сервера"
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	cats, err := h.service.List(r.Context())
	if err != nil {
		log.Error("Ошибка при получении категорий", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при получении категорий")
		return
	}

	helpers.JSON(w, http.StatusOK, cats)
}

// CreateCategory godoc
// @Summary Создать категорию
// @Tags categories
// @Accept json
// @Produce json
// @Param body body models.Category true "Данные категории"
// @Success 201 {object} models.Category
// @Failure 400 {string} string "Имя обязательно"
// @Failure 409 {string} string "Категория уже существует"
// @Router /api/categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var cat models.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		log.Warn("Некорректное тело запроса при создании категории", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}
	if cat.Name == "" {
		helpers.Error(w, http.StatusBadRequest, "Имя обязательно")
		return
	}

	err := h.service.Create(r.Context(), &cat)
	if errors.Is(err, repository.ErrCategoryExists) {
		log.Warn("Категория уже существует", zap.String("category", cat.Name))
		helpers.Error(w, http.StatusConflict, "Категория уже существует")
		return
	}
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при создании категории")
		return
	}

	log.Info("Категория создана", zap.String("category", cat.Name))
	helpers.JSON(w, http.StatusCreated, cat)
}

// Stats godoc
// @Summary Распределение документов по категориям/проектам/командам
// @Tags categories
// @Produce json
// @Success 200 {object} models.FilterStats
// @Failure 500 {string} string "Ошибка сервера"
// @Router /api/categories/stats [get]
func (h *CategoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error("Ошибка при получении статистики", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка при получении статистики")
		return
	}

	helpers.JSON(w, http.StatusOK, stats)
}
