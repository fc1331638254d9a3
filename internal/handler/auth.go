package handler

import (
	"errors"
	"net/http"

	"floreria-be/internal/logger"
	"floreria-be/internal/user"
	"floreria-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type AuthHandler struct {
	validate *validator.Validate
	svc      user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{validate: validator.New(), svc: svc}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/google", h.LoginWithGoogle)
	r.Post("/logout", h.Logout)
	r.Get("/me", h.Me)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, u, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		utils.WriteError(w, "invalid email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.FromCtx(ctx).Error("login failed", zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	utils.WriteJSON(w, authResponse{Token: token, User: u}, http.StatusOK)
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, u, err := h.svc.Register(ctx, req.Name, req.Email, req.Password, req.Phone)
	if errors.Is(err, user.ErrEmailExists) {
		utils.WriteError(w, "email is already registered", http.StatusConflict)
		return
	}
	if err != nil {
		logger.FromCtx(ctx).Error("registration failed", zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	utils.WriteJSON(w, authResponse{Token: token, User: u}, http.StatusCreated)
}

type googleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

func (h *AuthHandler) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req googleLoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, u, err := h.svc.LoginWithGoogle(ctx, req.Credential)
	if errors.Is(err, user.ErrInvalidCredential) {
		utils.WriteError(w, "invalid credential", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.FromCtx(ctx).Error("google login failed", zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	utils.WriteJSON(w, authResponse{Token: token, User: u}, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if claims, ok := utils.ClaimsFrom(ctx); ok {
		if err := h.svc.Logout(ctx, claims.UserID); err != nil {
			logger.FromCtx(ctx).Error("logout failed", zap.Error(err))
		}
	}

	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFrom(r.Context())
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	utils.WriteJSON(w, map[string]string{
		"id":    claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
	}, http.StatusOK)
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
