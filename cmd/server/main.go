package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskdeck/internal/api"
	"taskdeck/internal/api/render"
	"taskdeck/internal/app/service"
	"taskdeck/internal/common/security"
	"taskdeck/internal/domain/repository"
	"taskdeck/internal/platform/config"
	"taskdeck/internal/platform/database"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 1. Load Configuration
	config.Load()
	logger.Info("configuration loaded")

	// 2. Initialize JWT
	security.InitJWT()

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	if err := database.Migrate(context.Background()); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}
	logger.Info("database connected, migrations applied")

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	todoRepo := repository.NewPgTodoRepository(database.DB)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo)
	todoService := service.NewTodoService(todoRepo)
	userService := service.NewUserService(userRepo)

	// 6. Initialize Renderer & Router
	renderer, err := render.NewTemplateRenderer(config.AppConfig.TemplatesGlob)
	if err != nil {
		log.Fatalf("Could not load templates: %v", err)
	}
	router := api.NewRouter(authService, todoService, userService, renderer)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "port", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	logger.Info("server stopped gracefully")
}
