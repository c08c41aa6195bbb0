package main

import (
	_ "docsearch/docs"
	"docsearch/internal/app"
	"docsearch/internal/config"
	"docsearch/internal/logger"
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title DocSearch API
// @version 1.0
// @description Документация API DocSearch (загрузка документов, автокатегоризация, поиск, подсказки).
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("Ошибка загрузки конфига", zap.Error(err))
	}

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("Некорректный конфиг", zap.Error(err))
	}
	for _, warn := range warnings {
		logger.Log.Warn("Конфиг: " + warn)
	}

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка инициализации приложения", zap.Error(err))
	}

	logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port), zap.String("db", cfg.GetDSNSafe()))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
