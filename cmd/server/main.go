package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	inventoryapp "github.com/ovenplan/backend/internal/application/inventory"
	planningapp "github.com/ovenplan/backend/internal/application/planning"
	purchasingapp "github.com/ovenplan/backend/internal/application/purchasing"
	recipeapp "github.com/ovenplan/backend/internal/application/recipe"
	salesapp "github.com/ovenplan/backend/internal/application/sales"
	"github.com/ovenplan/backend/internal/infrastructure/config"
	"github.com/ovenplan/backend/internal/infrastructure/event"
	"github.com/ovenplan/backend/internal/infrastructure/logger"
	"github.com/ovenplan/backend/internal/infrastructure/persistence"
	"github.com/ovenplan/backend/internal/interfaces/http/handler"
	"github.com/ovenplan/backend/internal/interfaces/http/middleware"
	"github.com/ovenplan/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting OvenPlan backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Run schema migrations
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Initialize repositories
	stockItemRepo := persistence.NewGormStockItemRepository(db.DB)
	stockMovementRepo := persistence.NewGormStockMovementRepository(db.DB)
	recipeRepo := persistence.NewGormRecipeRepository(db.DB)
	demandPlanRepo := persistence.NewGormDemandPlanRepository(db.DB)
	workOrderRepo := persistence.NewGormWorkOrderRepository(db.DB)
	weeklyTemplateRepo := persistence.NewGormWeeklyTemplateRepository(db.DB)
	weeklyPlanRepo := persistence.NewGormWeeklyPlanRepository(db.DB)
	productionRecordRepo := persistence.NewGormProductionRecordRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	salesRecordRepo := persistence.NewGormSalesRecordRepository(db.DB)
	endOfDayRepo := persistence.NewGormEndOfDayRecordRepository(db.DB)

	// Transaction scopes, one per application context
	inventoryTxScope := persistence.NewGormInventoryTransactionScope(db.DB)
	planningTxScope := persistence.NewGormPlanningTransactionScope(db.DB)
	purchasingTxScope := persistence.NewGormPurchasingTransactionScope(db.DB)
	salesTxScope := persistence.NewGormSalesTransactionScope(db.DB)

	// Initialize application services. The work order service doubles as the
	// open-order counter guarding stock item and recipe deletion.
	workOrderService := planningapp.NewWorkOrderService(workOrderRepo, recipeRepo, stockItemRepo, productionRecordRepo, planningTxScope)
	stockService := inventoryapp.NewStockService(stockItemRepo, stockMovementRepo, recipeRepo, workOrderService, inventoryTxScope)
	recipeService := recipeapp.NewRecipeService(recipeRepo, stockItemRepo, workOrderService)
	demandPlanService := planningapp.NewDemandPlanService(demandPlanRepo, recipeRepo, stockItemRepo, planningTxScope)
	weeklyPlanService := planningapp.NewWeeklyPlanService(weeklyTemplateRepo, weeklyPlanRepo, recipeRepo, stockItemRepo, planningTxScope, log)
	weeklyPlanService.SetGeneratedHours(cfg.Planning.GeneratedStartHour, cfg.Planning.GeneratedDueHour)
	purchasingService := purchasingapp.NewPurchasingService(purchaseOrderRepo, workOrderRepo, stockItemRepo, purchasingTxScope)
	salesService := salesapp.NewSalesService(salesRecordRepo, stockItemRepo, salesTxScope)
	endOfDayService := salesapp.NewEndOfDayService(endOfDayRepo, stockItemRepo, salesTxScope)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	lowStockHandler := inventoryapp.NewLowStockHandler(log)
	eventBus.Subscribe(lowStockHandler)
	log.Info("Event handlers registered",
		zap.Strings("low_stock_events", lowStockHandler.EventTypes()),
	)

	if err := eventBus.Start(); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	stockService.SetEventPublisher(eventBus)
	demandPlanService.SetEventPublisher(eventBus)
	workOrderService.SetEventPublisher(eventBus)

	// Initialize HTTP handlers
	stockHandler := handler.NewStockHandler(stockService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	planningHandler := handler.NewPlanningHandler(demandPlanService, workOrderService, weeklyPlanService)
	purchasingHandler := handler.NewPurchasingHandler(purchasingService)
	salesHandler := handler.NewSalesHandler(salesService, endOfDayService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so every later stage can log it,
	// recovery before logging, identity before any handler runs.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Identity())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Register API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(systemHandler).
		Register(stockHandler).
		Register(recipeHandler).
		Register(planningHandler).
		Register(purchasingHandler).
		Register(salesHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// gormLogLevel maps the application log level onto GORM's logger. SQL tracing
// only turns on for debug; production noise stays at warnings.
func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "warn", "error":
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}
