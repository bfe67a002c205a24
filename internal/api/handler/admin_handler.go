package handler

import (
	"errors"
	"net/http"
	"strconv"

	"taskdeck/internal/app/service"
	"taskdeck/internal/common"

	"github.com/go-chi/chi/v5"
)

// AdminHandler exposes the privileged bulk operations. The routes are
// mounted behind middleware.AdminOnly.
type AdminHandler struct {
	todoService *service.TodoService
	userService *service.UserService
}

func NewAdminHandler(todoService *service.TodoService, userService *service.UserService) *AdminHandler {
	return &AdminHandler{todoService: todoService, userService: userService}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/todos", h.listAllTodos)
	r.Delete("/todos/{todoID}", h.deleteTodo)
	r.Get("/users", h.listUsers)
}

func (h *AdminHandler) listAllTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListAll(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, todos)
}

func (h *AdminHandler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := strconv.ParseInt(chi.URLParam(r, "todoID"), 10, 64)
	if err != nil || todoID <= 0 {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid todo id")
		return
	}

	if err := h.todoService.DeleteAny(r.Context(), todoID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "Todo not found")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}
