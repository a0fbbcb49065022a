package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sheetsync/core/config"
	"sheetsync/core/database"
	"sheetsync/core/history"
	"sheetsync/core/loader"
	"sheetsync/core/lock"
	"sheetsync/core/logger"
	"sheetsync/core/middleware/auth"
	"sheetsync/core/middleware/rayid"
	"sheetsync/core/storage"

	"sheetsync/feature/export"
	syncfeature "sheetsync/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "sheetsync/docs/swagger"
)

// @title Sheetsync API
// @version 1.0
// @description API for workbook checkbox sync and dump archiving.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Pick the lock backend
		var locker lock.Locker
		if cfg.Sync.RedisURL != "" {
			rl, err := lock.NewRedisLocker(cfg.Sync.RedisURL)
			if err != nil {
				logg.Fatal("Failed to connect to Redis lock backend", zap.Error(err))
			}
			defer rl.Close()
			locker = rl
			logg.Info("Using Redis sync locks")
		} else {
			locker = lock.NewMemoryLocker()
		}

		// 4. Connect to Database (Optional)
		// Without it sync history is simply not recorded.
		var hist *history.Store
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else if hist, err = history.NewStore(db); err != nil {
			logg.Warn("Failed to initialize history store", zap.Error(err))
			hist = nil
		} else {
			logg.Info("Sync history enabled")
		}

		// 5. Connect to Storage (Optional)
		// Without it dump archiving returns an error per request.
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage connection failed", zap.Error(err))
		} else {
			store = client
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		syncService := syncfeature.NewService(cfg.Sync, logg, locker, hist)
		mgr.Register(syncfeature.NewFeature(syncService))

		exportService := export.NewService(logg, store, cfg.Storage.Bucket)
		mgr.Register(export.NewFeature(exportService, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
