package handler

import (
	"errors"
	"net/http"

	"floreria-be/internal/cart"
	"floreria-be/internal/logger"
	"floreria-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CartHandler struct {
	validate *validator.Validate
	svc      cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{validate: validator.New(), svc: svc}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Get("/", h.Items)
	r.Post("/", h.Add)
	r.Put("/{productId}", h.UpdateQuantity)
	r.Delete("/{productId}", h.Remove)
	r.Delete("/", h.Clear)
}

func (h *CartHandler) Items(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	items, err := h.svc.Items(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load cart", zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []cart.Item{}
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req addToCartRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	line, err := h.svc.Add(ctx, cart.AddParams{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	case errors.Is(err, cart.ErrInsufficientStock):
		utils.WriteError(w, "insufficient stock", http.StatusConflict)
		return
	case err != nil:
		logger.FromCtx(ctx).Error("failed to add to cart",
			zap.String("product_id", req.ProductID), zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, line, http.StatusOK)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)
	productID := chi.URLParam(r, "productId")

	var req updateQuantityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.svc.UpdateQuantity(ctx, cart.UpdateParams{
		UserID:    userID,
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if errors.Is(err, cart.ErrProductNotFound) {
		utils.WriteError(w, "product not in cart", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update cart line",
			zap.String("product_id", productID), zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)
	productID := chi.URLParam(r, "productId")

	if err := h.svc.Remove(ctx, userID, productID); err != nil {
		logger.FromCtx(ctx).Error("failed to remove cart line",
			zap.String("product_id", productID), zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.svc.Clear(ctx, userID); err != nil {
		logger.FromCtx(ctx).Error("failed to clear cart", zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
