package api

import (
	"net/http"
	"time"

	"taskdeck/internal/api/handler"
	"taskdeck/internal/api/middleware"
	"taskdeck/internal/api/render"
	"taskdeck/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	authService *service.AuthService,
	todoService *service.TodoService,
	userService *service.UserService,
	renderer render.Renderer,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/todos", http.StatusFound)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public). The session Resolver is deliberately absent
	// here: a browser carrying a stale or broken access_token cookie must
	// always be able to reach the login, register, and logout pages to
	// recover.
	authHandler := handler.NewAuthHandler(authService, renderer)
	r.Route("/auth", authHandler.RegisterRoutes)

	// Todo pages (authenticated)
	todoHandler := handler.NewTodoHandler(todoService, renderer)
	r.Route("/todos", func(todos chi.Router) {
		todos.Use(middleware.Resolver)
		todos.Use(middleware.RequireUser)
		todoHandler.RegisterRoutes(todos)
	})

	// Account self-service (authenticated)
	userHandler := handler.NewUserHandler(userService, renderer)
	r.Route("/users", func(users chi.Router) {
		users.Use(middleware.Resolver)
		users.Use(middleware.RequireUser)
		userHandler.RegisterRoutes(users)
	})

	// Admin routes (admin role required)
	adminHandler := handler.NewAdminHandler(todoService, userService)
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.Resolver)
		admin.Use(middleware.AdminOnly)
		adminHandler.RegisterRoutes(admin)
	})

	return r
}
