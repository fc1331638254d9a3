package handler

import (
	"context"
	"errors"
	"net/http"

	"floreria-be/internal/checkout"
	"floreria-be/internal/logger"
	"floreria-be/internal/sales"
	"floreria-be/internal/session"
	"floreria-be/internal/user"
	"floreria-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	validate *validator.Validate
	svc      checkout.Service
	store    session.Store
}

func NewCheckoutHandler(svc checkout.Service, store session.Store) *CheckoutHandler {
	return &CheckoutHandler{validate: validator.New(), svc: svc, store: store}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Get("/greeting-cards", h.GreetingCards)
	r.Post("/", h.Checkout)
}

func (h *CheckoutHandler) GreetingCards(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, checkout.GreetingCards(), http.StatusOK)
}

type checkoutRequest struct {
	PaymentMethod  string `json:"paymentMethod" validate:"required,oneof=cash card"`
	InvoiceType    string `json:"invoiceType" validate:"required,oneof=boleta factura"`
	GreetingCardID string `json:"greetingCardId"`
	Message        string `json:"message"`
	RUC            string `json:"ruc"`
	Notes          string `json:"notes"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := utils.ClaimsFrom(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req checkoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	u := h.currentUser(ctx, claims)
	result, err := h.svc.Checkout(ctx, u, checkout.Options{
		PaymentMethod:  sales.PaymentMethod(req.PaymentMethod),
		InvoiceType:    sales.InvoiceType(req.InvoiceType),
		GreetingCardID: req.GreetingCardID,
		Message:        req.Message,
		RUC:            req.RUC,
		Notes:          req.Notes,
	})
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		utils.WriteError(w, "cart is empty", http.StatusBadRequest)
		return
	case errors.Is(err, checkout.ErrUnknownGreetingCard):
		utils.WriteError(w, "unknown greeting card", http.StatusBadRequest)
		return
	case err != nil:
		logger.FromCtx(ctx).Error("checkout failed", zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

// currentUser loads the identity snapshot written at login; the token claims
// are enough to proceed when the snapshot is gone.
func (h *CheckoutHandler) currentUser(ctx context.Context, claims *user.CustomClaims) user.User {
	var u user.User
	err := session.Scoped(h.store, claims.UserID).Get(ctx, "user", &u)
	if err == nil && u.ID != "" {
		return u
	}
	if err != nil && !errors.Is(err, session.ErrNoDocument) {
		logger.FromCtx(ctx).Warn("failed to load identity snapshot", zap.Error(err))
	}
	return user.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  user.Role(claims.Role),
	}
}
