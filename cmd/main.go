package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"socialapp/configs"
	"socialapp/database"
	"socialapp/internal/handlers"
	"socialapp/internal/routes"
	"socialapp/internal/services"
)

func main() {
	cfg := configs.Load()

	slg := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	db, err := database.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()
	slg.Info("database ready", "path", cfg.SQLitePath)

	svc := services.NewFeedService(db, slg)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	routes.RegisterRoutes(app,
		handlers.NewPostHandler(svc, slg),
		handlers.NewCommentHandler(svc, slg),
		handlers.NewLikeHandler(svc, slg),
	)

	// Shut down cleanly on SIGINT/SIGTERM so the sqlite file closes.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slg.Info("shutting down")
		_ = app.Shutdown()
	}()

	slg.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
