package handlers

import (
	"net/http"
	"strconv"
	"time"

	"docsearch/internal/logger"
	"docsearch/internal/services"
	helpers "docsearch/internal/utils/helpers"

	"go.uber.org/zap"
)

type SearchHandler struct {
	service *services.SearchService
}

func NewSearchHandler(searchSvc *services.SearchService) *SearchHandler {
	return &SearchHandler{service: searchSvc}
}

// Search godoc
// @Summary Поиск документов: релевантность + фильтры
// @Description При непустом q сортировка всегда по релевантности, sort_by игнорируется
// @Tags search
// @Produce json
// @Param q query string false "Поисковый запрос"
// @Param category query string false "Категория"
// @Param project query string false "Проект"
// @Param team query string false "Команда"
// @Param file_type query string false "Тип файла"
// @Param sort_by query string false "date | views | name"
// @Param page query int false "Страница (с 1)"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {string} string "Ошибка поиска"
// @Router /api/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	params := services.SearchParams{
		Query:  q.Get("q"),
		Filter: filterFromQuery(r),
		SortBy: q.Get("sort_by"),
		Page:   page,
		Limit:  limit,
	}

	start := time.Now()
	docs, pagination, err := h.service.Search(r.Context(), params)
	if err != nil {
		log.Error("search: ошибка поиска документов", zap.String("query", params.Query), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка поиска")
		return
	}

	log.Info("search: готово",
		zap.String("query", params.Query),
		zap.Int("count", len(docs)),
		zap.Int("total", pagination.Total),
		zap.Duration("elapsed", time.Since(start)),
	)

	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"documents":  docs,
		"pagination": pagination,
		"query":      params.Query,
	})
}

// Suggestions godoc
// @Summary Подсказки автодополнения
// @Tags search
// @Produce json
// @Param q query string true "Начало запроса (минимум 2 символа)"
// @Success 200 {array} string
// @Failure 500 {string} string "Ошибка подсказок"
// @Router /api/search/suggestions [get]
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	q := r.URL.Query().Get("q")

	suggestions, err := h.service.Suggest(r.Context(), q)
	if err != nil {
		log.Error("search: ошибка подсказок", zap.String("query", q), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка подсказок")
		return
	}

	helpers.JSON(w, http.StatusOK, suggestions)
}

// Popular godoc
// @Summary Популярные поисковые термины
// @Tags search
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "Ошибка сервера"
// @Router /api/search/popular [get]
func (h *SearchHandler) Popular(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	terms, err := h.service.Popular(r.Context())
	if err != nil {
		log.Error("search: ошибка популярных терминов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка сервера")
		return
	}

	helpers.JSON(w, http.StatusOK, terms)
}
