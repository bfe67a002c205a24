package handler

import (
	"errors"
	"net/http"

	"taskdeck/internal/api/render"
	"taskdeck/internal/app/service"
	"taskdeck/internal/common"
	"taskdeck/internal/common/security"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
	renderer    render.Renderer
}

func NewAuthHandler(authService *service.AuthService, renderer render.Renderer) *AuthHandler {
	return &AuthHandler{authService: authService, renderer: renderer}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.loginPage)
	r.Post("/", h.login)
	r.Post("/token", h.loginForToken)
	r.Get("/logout", h.logout)
	r.Get("/register", h.registerPage)
	r.Post("/register", h.register)
}

func (h *AuthHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "login.html", nil)
}

// login handles the browser form flow: on success it binds the token to the
// session cookie and redirects to the todo list, on failure it re-renders
// the login page with one generic message for every credential problem.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	token, err := h.authService.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, common.ErrAuthenticationFailed) {
			h.renderer.Render(w, "login.html", map[string]any{"msg": "Incorrect username or password"})
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	security.SetSessionCookie(w, token)
	http.Redirect(w, r, "/todos", http.StatusFound)
}

// loginForToken is the API flow: same credential exchange, but the caller
// gets the token back in a structured body as well as in the cookie.
func (h *AuthHandler) loginForToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	token, err := h.authService.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, common.ErrAuthenticationFailed) {
			common.RespondWithError(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	security.SetSessionCookie(w, token)
	common.RespondWithJSON(w, http.StatusOK, service.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	security.ClearSessionCookie(w)
	h.renderer.Render(w, "login.html", map[string]any{"msg": "Logout successful"})
}

func (h *AuthHandler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "register.html", nil)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	req := service.RegisterRequest{
		Username:        r.FormValue("username"),
		Email:           r.FormValue("email"),
		FirstName:       r.FormValue("firstname"),
		LastName:        r.FormValue("lastname"),
		Password:        r.FormValue("password"),
		PasswordConfirm: r.FormValue("password2"),
	}

	if _, err := h.authService.Register(r.Context(), req); err != nil {
		if errors.Is(err, common.ErrValidation) || errors.Is(err, common.ErrConflict) {
			h.renderer.Render(w, "register.html", map[string]any{"msg": "Invalid registration request"})
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	h.renderer.Render(w, "login.html", map[string]any{"msg": "User successfully created"})
}
