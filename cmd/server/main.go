package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/dachpro/backoffice/internal/application/catalog"
	offerapp "github.com/dachpro/backoffice/internal/application/offer"
	pricingapp "github.com/dachpro/backoffice/internal/application/pricing"
	projectapp "github.com/dachpro/backoffice/internal/application/project"
	"github.com/dachpro/backoffice/internal/infrastructure/config"
	"github.com/dachpro/backoffice/internal/infrastructure/logger"
	"github.com/dachpro/backoffice/internal/infrastructure/persistence"
	"github.com/dachpro/backoffice/internal/interfaces/http/handler"
	"github.com/dachpro/backoffice/internal/interfaces/http/middleware"
	"github.com/dachpro/backoffice/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting DachPro Backoffice",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	draftRepo := persistence.NewGormDraftChangeRepository(db.DB)
	projectProductRepo := persistence.NewGormProjectProductRepository(db.DB)
	projectGroupRepo := persistence.NewGormProjectProductGroupRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, log)
	projectService := projectapp.NewProjectService(projectRepo, draftRepo, projectProductRepo, projectGroupRepo, log)
	draftService := pricingapp.NewDraftService(draftRepo, productRepo, projectRepo, log)
	pricingService := pricingapp.NewPricingService(productRepo, draftRepo, projectProductRepo, projectGroupRepo, draftService, log)
	groupOptionService := pricingapp.NewGroupOptionService(productRepo, draftRepo, projectGroupRepo, draftService, log)
	commitService := pricingapp.NewCommitService(txScope, log)
	offerService := offerapp.NewOfferService(pricingService, projectRepo, offerapp.Config{
		DateFormat: cfg.Offer.DateFormat,
		Currency:   cfg.Offer.Currency,
		FooterNote: cfg.Offer.FooterNote,
	}, log)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productService)
	projectHandler := handler.NewProjectHandler(projectService)
	pricingHandler := handler.NewPricingHandler(draftService, pricingService, groupOptionService, commitService)
	offerHandler := handler.NewOfferHandler(offerService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catalog domain (price lists)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products/:id", productHandler.Get)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)
	catalogRoutes.GET("/categories/:category/products", productHandler.ListByCategory)
	catalogRoutes.GET("/categories/:category/manufacturers", productHandler.ListManufacturers)
	catalogRoutes.PUT("/categories/:category/manufacturers/rename", productHandler.RenameManufacturer)
	catalogRoutes.DELETE("/categories/:category/manufacturers/:manufacturer", productHandler.DeleteManufacturer)
	catalogRoutes.DELETE("/categories/:category/manufacturers/:manufacturer/groups/:group", productHandler.DeleteGroup)
	r.Register(catalogRoutes)

	// Project domain
	projectRoutes := router.NewDomainGroup("projects", "/projects")
	projectRoutes.POST("", projectHandler.Create)
	projectRoutes.GET("", projectHandler.List)
	projectRoutes.GET("/:id", projectHandler.Get)
	projectRoutes.PUT("/:id", projectHandler.Update)
	projectRoutes.DELETE("/:id", projectHandler.Delete)
	r.Register(projectRoutes)

	// Pricing domain (drafts, resolution, commits)
	pricingRoutes := router.NewDomainGroup("pricing", "/pricing/projects")
	pricingRoutes.POST("/:id/drafts", pricingHandler.UpsertDraft)
	pricingRoutes.GET("/:id/drafts", pricingHandler.ListDrafts)
	pricingRoutes.DELETE("/:id/drafts", pricingHandler.DiscardDrafts)
	pricingRoutes.GET("/:id/categories/:category", pricingHandler.ResolveCategory)
	pricingRoutes.POST("/:id/categories/:category/measurements", pricingHandler.ApplyMeasurements)
	pricingRoutes.PUT("/:id/groups/option", pricingHandler.SetGroupOption)
	pricingRoutes.GET("/:id/categories/:category/manufacturers/:manufacturer/groups", pricingHandler.ListGroupOptions)
	pricingRoutes.POST("/:id/save", pricingHandler.SaveProject)
	r.Register(pricingRoutes)

	// Offer domain
	offerRoutes := router.NewDomainGroup("offers", "/offers")
	offerRoutes.GET("/projects/:id", offerHandler.Build)
	r.Register(offerRoutes)

	// System domain
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	r.Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
