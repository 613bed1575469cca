package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elite-commerce/catalog-service/config"
	brandhandler "github.com/elite-commerce/catalog-service/internal/brand/handler"
	brandrepo "github.com/elite-commerce/catalog-service/internal/brand/repository"
	brandusecase "github.com/elite-commerce/catalog-service/internal/brand/usecase"
	categoryhandler "github.com/elite-commerce/catalog-service/internal/category/handler"
	categoryrepo "github.com/elite-commerce/catalog-service/internal/category/repository"
	categoryusecase "github.com/elite-commerce/catalog-service/internal/category/usecase"
	"github.com/elite-commerce/catalog-service/internal/events"
	"github.com/elite-commerce/catalog-service/internal/pkg/logger"
	"github.com/elite-commerce/catalog-service/internal/pkg/postgres"
	producthandler "github.com/elite-commerce/catalog-service/internal/product/handler"
	productrepo "github.com/elite-commerce/catalog-service/internal/product/repository"
	productusecase "github.com/elite-commerce/catalog-service/internal/product/usecase"
	"github.com/elite-commerce/catalog-service/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.LoadEnv()

	logCfg := &logger.Config{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		IsDevelopment:     cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development",
	}
	appLogger, err := logger.New(logCfg)
	if err != nil {
		panic(err)
	}
	defer appLogger.Sync()

	db, err := postgres.New(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("connected to PostgreSQL", zap.String("db_name", cfg.Postgres.DBName))

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		rmq, err := events.NewRabbitMQPublisher(events.RabbitMQConfig{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
			Queue:    cfg.RabbitMQ.Queue,
		})
		if err != nil {
			appLogger.Warn("RabbitMQ unavailable, events disabled", zap.Error(err))
		} else {
			publisher = rmq
			appLogger.Info("connected to RabbitMQ", zap.String("exchange", cfg.RabbitMQ.Exchange))
		}
	}
	defer publisher.Close()

	catRepo := categoryrepo.NewPGRepository(db)
	brandRepo := brandrepo.NewPGRepository(db)
	prodRepo := productrepo.NewPGRepository(db)

	catUC := categoryusecase.NewCategoryUseCase(catRepo, appLogger)
	brandUC := brandusecase.NewBrandUseCase(brandRepo, appLogger)
	prodUC := productusecase.NewProductUseCase(prodRepo, catRepo, brandRepo, publisher, appLogger)

	engine := server.New(cfg.Server.AppEnv, appLogger, server.Handlers{
		Category: categoryhandler.NewHandler(catUC, appLogger),
		Brand:    brandhandler.NewHandler(brandUC, appLogger),
		Product:  producthandler.NewHandler(prodUC, appLogger),
	})

	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: engine,
	}

	go func() {
		appLogger.Info("catalog service listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
