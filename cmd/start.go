package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shelf-gateway/core/config"
	"shelf-gateway/core/loader"
	"shelf-gateway/core/logger"
	"shelf-gateway/core/middleware/auth"
	"shelf-gateway/core/middleware/rayid"
	"shelf-gateway/core/zotero"

	"shelf-gateway/feature/bundle"
	"shelf-gateway/feature/covers"
	"shelf-gateway/feature/library"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "shelf-gateway/docs/swagger"
)

// @title Shelf Gateway API
// @version 1.0
// @description Read-only API serving a remote Zotero library to rendering clients.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the shelf gateway server",
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

		// 3. Build the Library Client
		// Validates the library coordinates up front; no network calls yet.
		zc, err := zotero.NewClient(cfg.Zotero)
		if err != nil {
			logg.Fatal("Failed to create library client", zap.Error(err))
		}
		// Tag every line with the library we serve.
		logg = logg.With(zap.String("library",
			fmt.Sprintf("%s/%d", cfg.Zotero.LibraryType, cfg.Zotero.LibraryID)))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		// The covers audit reuses the library feature's listing service.
		lib := library.NewFeature(zc, cfg.Zotero, logg)
		mgr.Register(lib)
		mgr.Register(covers.NewFeature(zc, lib.Service(), cfg.Zotero, logg))
		mgr.Register(bundle.NewFeature(zc, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			// Attach logger to locals? or just log request here?
			// Let's log the incoming request
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		// We protect everything for now as requested ("protect every request")
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
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
