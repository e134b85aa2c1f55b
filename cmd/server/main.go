package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	categoryapp "github.com/nivgold/shopping-list/internal/category/app"
	categorydomain "github.com/nivgold/shopping-list/internal/category/domain"
	categorymongo "github.com/nivgold/shopping-list/internal/category/infra/mongodb"
	categoryrest "github.com/nivgold/shopping-list/internal/category/rest"

	orderapp "github.com/nivgold/shopping-list/internal/order/app"
	orderadapter "github.com/nivgold/shopping-list/internal/order/infra/adapter"
	ordermongo "github.com/nivgold/shopping-list/internal/order/infra/mongodb"
	orderrest "github.com/nivgold/shopping-list/internal/order/rest"

	"github.com/nivgold/shopping-list/pkg/config"
	"github.com/nivgold/shopping-list/pkg/logger"
	"github.com/nivgold/shopping-list/pkg/middleware"
	"github.com/nivgold/shopping-list/pkg/mongodb"
	"github.com/nivgold/shopping-list/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "shopping-list-api",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	client, db, err := mongodb.Open(ctx, mongodb.Config{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDB,
		Timeout:  time.Duration(cfg.MongoTimeout) * time.Second,
	})
	if err != nil {
		log.Error("mongodb open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongodb disconnect error", slog.Any("err", err))
		}
	}()
	log.Info("connected to mongodb", slog.String("database", cfg.MongoDB))

	// Category registry
	categoryRepo := categorymongo.NewCategoryRepo(db)
	if err := categoryRepo.EnsureIndexes(ctx); err != nil {
		log.Error("index creation failed", slog.Any("err", err))
		os.Exit(1)
	}
	categorySvc := categoryapp.NewService(categoryRepo, log)

	if err := categorySvc.SeedDefaults(ctx, categorydomain.DefaultNames); err != nil {
		log.Error("category seeding failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("categories initialized")

	// Orders
	orderRepo := ordermongo.NewOrderRepo(db)
	categoryReader := orderadapter.NewCategoryServiceReader(categorySvc)
	orderSvc := orderapp.NewService(orderRepo, categoryReader, log)

	router := newRouter(cfg, log, categorySvc, orderSvc)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

func newRouter(cfg config.Config, log *slog.Logger, categorySvc *categoryapp.Service, orderSvc *orderapp.Service) *gin.Engine {
	if !cfg.Dev() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	categoryrest.NewHandler(categorySvc, log, cfg.Dev()).Register(api)
	orderrest.NewHandler(orderSvc, log, cfg.Dev()).Register(api)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
