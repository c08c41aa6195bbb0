package app

import (
	"docsearch/internal/classifier"
	"docsearch/internal/config"
	"docsearch/internal/db"
	"docsearch/internal/handlers"
	"docsearch/internal/repository"
	"docsearch/internal/routes"
	"docsearch/internal/services"
	"docsearch/internal/storage"
	"docsearch/internal/textextract"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	// Таблицы правил загружаются один раз и передаются явно —
	// классификатор остаётся чистым и тестируемым.
	clf := classifier.New(classifier.DefaultRules())
	extractor := textextract.New()

	// Репозитории
	docRepo := repository.NewDocumentRepository(conn)
	categoryRepo := repository.NewCategoryRepository(conn)

	// Сервисы
	docService := services.NewDocumentService(docRepo, categoryRepo, fileStore, extractor, clf)
	searchService := services.NewSearchService(docRepo)
	categoryService := services.NewCategoryService(categoryRepo, docRepo)

	// Хендлеры
	docHandler := handlers.NewDocumentHandler(docService, cfg.MaxUploadMB)
	searchHandler := handlers.NewSearchHandler(searchService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, docHandler, searchHandler, categoryHandler)

	return router, nil
}
