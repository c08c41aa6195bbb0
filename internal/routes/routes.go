package routes

import (
	"docsearch/internal/handlers"
	"docsearch/internal/metrics"
	"docsearch/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(
	router *mux.Router,
	documentHandler *handlers.DocumentHandler,
	searchHandler *handlers.SearchHandler,
	categoryHandler *handlers.CategoryHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Документы ---
	api.HandleFunc("/documents/upload", documentHandler.UploadDocument).Methods("POST")
	api.HandleFunc("/documents", documentHandler.ListDocuments).Methods("GET")
	api.HandleFunc("/documents/{id:[0-9]+}", documentHandler.GetDocument).Methods("GET")
	api.HandleFunc("/documents/{id:[0-9]+}/file", documentHandler.DownloadDocument).Methods("GET")
	api.HandleFunc("/documents/{id:[0-9]+}", documentHandler.UpdateDocument).Methods("PUT")
	api.HandleFunc("/documents/{id:[0-9]+}", documentHandler.DeleteDocument).Methods("DELETE")

	// --- Поиск ---
	api.HandleFunc("/search", searchHandler.Search).Methods("GET")
	api.HandleFunc("/search/suggestions", searchHandler.Suggestions).Methods("GET")
	api.HandleFunc("/search/popular", searchHandler.Popular).Methods("GET")

	// --- Категории ---
	api.HandleFunc("/categories", categoryHandler.ListCategories).Methods("GET")
	api.HandleFunc("/categories/stats", categoryHandler.Stats).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.CreateCategory).Methods("POST")
}
