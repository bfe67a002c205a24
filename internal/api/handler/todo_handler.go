package handler

import (
	"errors"
	"net/http"
	"strconv"

	"taskdeck/internal/api/middleware"
	"taskdeck/internal/api/render"
	"taskdeck/internal/app/service"
	"taskdeck/internal/common"

	"github.com/go-chi/chi/v5"
)

// TodoHandler serves the browser-facing todo pages. Every route sits behind
// middleware.RequireUser, so an identity is always present in the context.
type TodoHandler struct {
	todoService *service.TodoService
	renderer    render.Renderer
}

func NewTodoHandler(todoService *service.TodoService, renderer render.Renderer) *TodoHandler {
	return &TodoHandler{todoService: todoService, renderer: renderer}
}

func (h *TodoHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/add", h.addPage)
	r.Post("/add", h.add)
	r.Get("/edit/{todoID}", h.editPage)
	r.Post("/edit/{todoID}", h.edit)
	r.Get("/delete/{todoID}", h.delete)
	r.Get("/complete/{todoID}", h.toggleComplete)
}

func (h *TodoHandler) list(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	todos, err := h.todoService.ListByOwner(r.Context(), user.ID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	h.renderer.Render(w, "home.html", map[string]any{"todos": todos, "user": user})
}

func (h *TodoHandler) addPage(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())
	h.renderer.Render(w, "add-todo.html", map[string]any{"user": user})
}

func (h *TodoHandler) add(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	req, err := todoRequestFromForm(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	if _, err := h.todoService.Create(r.Context(), user.ID, req); err != nil {
		if errors.Is(err, common.ErrValidation) {
			h.renderer.Render(w, "add-todo.html", map[string]any{"user": user, "msg": err.Error()})
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	http.Redirect(w, r, "/todos", http.StatusFound)
}

func (h *TodoHandler) editPage(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	todoID, err := parseTodoID(r)
	if err != nil {
		http.Redirect(w, r, "/todos", http.StatusFound)
		return
	}

	todo, err := h.todoService.GetForOwner(r.Context(), user.ID, todoID)
	if err != nil {
		http.Redirect(w, r, "/todos", http.StatusFound)
		return
	}
	h.renderer.Render(w, "edit-todo.html", map[string]any{"todo": todo, "user": user})
}

func (h *TodoHandler) edit(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	todoID, err := parseTodoID(r)
	if err != nil {
		http.Redirect(w, r, "/todos", http.StatusFound)
		return
	}

	req, err := todoRequestFromForm(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	if err := h.todoService.Update(r.Context(), user.ID, todoID, req); err != nil {
		if errors.Is(err, common.ErrValidation) {
			common.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Missing or foreign todo: back to the list, as the form flow expects.
		http.Redirect(w, r, "/todos", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/todos", http.StatusFound)
}

func (h *TodoHandler) delete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	todoID, err := parseTodoID(r)
	if err == nil {
		// Missing or foreign todos delete as a no-op; either way, back to
		// the list.
		h.todoService.Delete(r.Context(), user.ID, todoID)
	}
	http.Redirect(w, r, "/todos", http.StatusFound)
}

func (h *TodoHandler) toggleComplete(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	todoID, err := parseTodoID(r)
	if err == nil {
		h.todoService.ToggleComplete(r.Context(), user.ID, todoID)
	}
	http.Redirect(w, r, "/todos", http.StatusFound)
}

func parseTodoID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "todoID"), 10, 64)
}

func todoRequestFromForm(r *http.Request) (service.TodoRequest, error) {
	if err := r.ParseForm(); err != nil {
		return service.TodoRequest{}, err
	}
	priority, _ := strconv.Atoi(r.FormValue("priority"))
	return service.TodoRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Priority:    priority,
	}, nil
}
