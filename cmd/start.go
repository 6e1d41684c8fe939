package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"game-catalog/core/database"
	"game-catalog/core/loader"
	"game-catalog/core/logger"
	"game-catalog/core/middleware/rayid"
	"game-catalog/feature/games"
	"game-catalog/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "game-catalog/docs/swagger"
)

// @title Game Catalog API
// @version 1.0
// @description Catalog of the homebrew game archive.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The store is opened per request; a missing store only shows up in responses.
		opener := database.ConfigOpener{Config: cfg.Database}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		// integrity goes first: games answers every path it reaches
		mgr.Register(integrity.NewFeature(opener, cfg.Archive, logg, cfg.Server.Integrity))
		mgr.Register(games.NewFeature(opener, cfg.Archive, logg))

		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware
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

		// 3. Swagger Documentation (optional)
		if cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("database", cfg.Database.Driver),
				zap.String("archive", cfg.Archive.Dir),
			)
			errCh <- app.Listen(cfg.Server.Address())
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-c:
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
