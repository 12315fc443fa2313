package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-warehouse-ops/internal/config"
	"go-warehouse-ops/internal/handler"
	"go-warehouse-ops/internal/middleware"
	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/repository"
	"go-warehouse-ops/internal/service"
	"go-warehouse-ops/internal/ws"
	"go-warehouse-ops/pkg/apiclient"
	"go-warehouse-ops/pkg/cache"
	"go-warehouse-ops/pkg/database"
	"go-warehouse-ops/pkg/lock"
	"go-warehouse-ops/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logger.GetLogger()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Info("Warning: .env file not found")
	}
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	// 2. Journal storage: Postgres kalau ada, selain itu in-memory
	journalRepo := setupJournal(log)

	// 3. Redis (opsional) untuk cache lookup dan busy guard
	var (
		lookupCache cache.Cache = cache.NewMemoryCache()
		guard       lock.Guard  = lock.NewMemoryGuard()
	)
	rdb, err := cache.Connect(context.Background(), cfg.RedisAddress, log)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, using in-memory cache and lock")
	} else if rdb != nil {
		defer rdb.Close()
		lookupCache = cache.NewRedisCache(rdb)
		guard = lock.NewRedisGuard(rdb, cfg.BusyLockTTL)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	api := apiclient.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	authRepo := repository.NewAuthRepo(api)
	warehouseRepo := repository.NewWarehouseRepo(api)
	stockRepo := repository.NewStockRepo(api)
	correctionRepo := repository.NewCorrectionRepo(api)
	realizationRepo := repository.NewRealizationRepo(api)

	authService := service.NewAuthService(authRepo, log)
	lookupService := service.NewLookupService(warehouseRepo, lookupCache, cfg.LookupCacheTTL, log)
	journalService := service.NewJournalService(journalRepo, log)
	correctionService := service.NewCorrectionService(stockRepo, correctionRepo, lookupService, journalService, guard, wsHub, log,
		service.CorrectionConfig{
			DefaultWarehouseCode: cfg.DefaultWarehouseCode,
			DefaultWarehouseName: cfg.DefaultWarehouseName,
			PrintBaseURL:         cfg.PrintBaseURL,
		})
	realizationService := service.NewRealizationService(realizationRepo, lookupService, journalService, guard, wsHub, log,
		service.RealizationConfig{
			DefaultWarehouseCode:      cfg.DefaultWarehouseCode,
			DefaultWarehouseName:      cfg.DefaultWarehouseName,
			DefaultProductionLocation: cfg.DefaultProductionLocation,
		})

	authHandler := handler.NewAuthHandler(authService)
	dashHandler := handler.NewDashboardHandler(lookupService, journalService)
	lookupHandler := handler.NewLookupHandler(lookupService)
	corrHandler := handler.NewCorrectionHandler(correctionService)
	realHandler := handler.NewRealizationHandler(realizationService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Ops Gateway v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))

	// 7. Routes
	v1 := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := v1.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := v1.Group("", middleware.RequireAuth())
	handler.RegisterRoutes(protected, dashHandler, lookupHandler, corrHandler, realHandler)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Idle form sweep
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sweepIdle(sweepCtx, cfg.FormIdleTTL, correctionService, realizationService)
	}()

	// 9. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Panic("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stopSweep()
	<-sweepDone
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exited")
}

type idleEvictor interface {
	EvictIdle(ttl time.Duration) int
}

// sweepIdle evicts abandoned forms and sheets until ctx is cancelled.
func sweepIdle(ctx context.Context, ttl time.Duration, evictors ...idleEvictor) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, e := range evictors {
				e.EvictIdle(ttl)
			}
		}
	}
}

func setupJournal(log *logrus.Logger) repository.JournalRepository {
	dsn := database.DSN()
	if dsn == "" {
		log.Info("no database configured, journal kept in memory")
		return repository.NewMemoryJournalRepo(0)
	}
	db, err := database.ConnectDB(dsn)
	if err != nil {
		log.WithError(err).Warn("database unavailable, journal kept in memory")
		return repository.NewMemoryJournalRepo(0)
	}
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := db.AutoMigrate(&model.SubmissionLog{}); err != nil {
		log.WithError(err).Warn("journal migration failed")
	}
	return repository.NewJournalRepo(db)
}
