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

// UsersHandler serves the back-office user management page.
type UsersHandler struct {
	validate *validator.Validate
	svc      user.Service
}

func NewUsersHandler(svc user.Service) *UsersHandler {
	return &UsersHandler{validate: validator.New(), svc: svc}
}

func (h *UsersHandler) Init(r chi.Router) {
	r.Get("/", h.List)
	r.Patch("/{id}", h.UpdateRole)
	r.Delete("/{id}", h.Delete)
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.svc.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list users", zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []user.User{}
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin supervisor customer"`
}

func (h *UsersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req updateRoleRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.svc.UpdateRole(ctx, id, user.Role(req.Role))
	if errors.Is(err, user.ErrUserNotFound) {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update role",
			zap.String("user_id", id), zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	err := h.svc.Delete(ctx, id)
	if errors.Is(err, user.ErrUserNotFound) {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete user",
			zap.String("user_id", id), zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
