package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/config"
	"github.com/BuzzLyutic/todo-api/internal/db"
	"github.com/BuzzLyutic/todo-api/internal/handler"
	"github.com/BuzzLyutic/todo-api/internal/monitor"
	"github.com/BuzzLyutic/todo-api/internal/repo"
	"github.com/BuzzLyutic/todo-api/internal/router"
	"github.com/BuzzLyutic/todo-api/internal/service"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// .env для локального запуска; отсутствие файла не ошибка
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключаем БД: ограниченное число попыток, затем fatal
	client, err := db.Connect(context.Background(), cfg.MongoURI, logger)
	if err != nil {
		logger.Fatal("Could not connect to database after several retries", zap.Error(err))
	}
	defer client.Disconnect(context.Background()) // Запланированное закрытие соединения

	database := client.Database(cfg.DBName)

	todoRepo := repo.NewTodoRepo(database)
	todoService := service.NewTodoService(todoRepo)
	todoHandler := handler.NewTodoHandler(todoService, logger)

	mon := monitor.New(client, logger, cfg.PingInterval)
	mon.Start(context.Background())

	healthHandler := handler.NewHealthHandler(mon)

	r := router.New(todoHandler, healthHandler)

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	mon.Stop()
	logger.Info("Server stopped successfully!")
}
