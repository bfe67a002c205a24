package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskdeck/internal/api/middleware"
	"taskdeck/internal/api/render"
	"taskdeck/internal/app/service"
	"taskdeck/internal/common"

	"github.com/go-chi/chi/v5"
)

// UserHandler covers account self-service: password changes (JSON and form
// flows) and phone number updates. Routes sit behind middleware.RequireUser.
type UserHandler struct {
	userService *service.UserService
	renderer    render.Renderer
}

func NewUserHandler(userService *service.UserService, renderer render.Renderer) *UserHandler {
	return &UserHandler{userService: userService, renderer: renderer}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Put("/password", h.changePassword)
	r.Put("/phone/{phoneNumber}", h.changePhoneNumber)
	r.Get("/edit-password", h.editPasswordPage)
	r.Post("/edit-password", h.editPassword)
}

type changePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

func (h *UserHandler) changePassword(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.userService.ChangePassword(r.Context(), user.ID, req.Password, req.NewPassword); err != nil {
		if errors.Is(err, common.ErrAuthenticationFailed) {
			common.RespondWithError(w, http.StatusUnauthorized, "Error changing password")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) changePhoneNumber(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	if err := h.userService.ChangePhoneNumber(r.Context(), user.ID, chi.URLParam(r, "phoneNumber")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) editPasswordPage(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())
	h.renderer.Render(w, "edit-user-password.html", map[string]any{"user": user})
}

func (h *UserHandler) editPassword(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetIdentityFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	var msg string
	err := h.userService.ChangePasswordByUsername(r.Context(),
		r.FormValue("username"), r.FormValue("password"), r.FormValue("password2"))
	switch {
	case err == nil:
		msg = "Password updated"
	case errors.Is(err, common.ErrValidation):
		msg = "New password must be at least 6 characters"
	case errors.Is(err, common.ErrAuthenticationFailed):
		msg = "Invalid username or password"
	default:
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	h.renderer.Render(w, "edit-user-password.html", map[string]any{"user": user, "msg": msg})
}
