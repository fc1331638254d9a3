package handler

import (
	"net/http"
	"time"

	"floreria-be/internal/sales"
	"floreria-be/internal/user"
	"floreria-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrdersHandler struct {
	validate *validator.Validate
	ledger   *sales.Ledger
}

func NewOrdersHandler(ledger *sales.Ledger) *OrdersHandler {
	return &OrdersHandler{validate: validator.New(), ledger: ledger}
}

func (h *OrdersHandler) Init(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/cancel", h.Cancel)
}

// InitAdmin registers the back-office order routes.
func (h *OrdersHandler) InitAdmin(r chi.Router) {
	r.Patch("/{id}", h.Update)
	r.Put("/{id}/shipping", h.UpdateShipping)
}

func isStaff(claims *user.CustomClaims) bool {
	return claims.Role == string(user.RoleAdmin) || claims.Role == string(user.RoleSupervisor)
}

// List returns the full ledger for staff; customers see their own sales.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFrom(r.Context())
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	all := h.ledger.Sales()
	if isStaff(claims) {
		utils.WriteJSON(w, all, http.StatusOK)
		return
	}

	own := make([]sales.Sale, 0)
	for _, s := range all {
		if s.Customer.ID == claims.UserID {
			own = append(own, s)
		}
	}
	utils.WriteJSON(w, own, http.StatusOK)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFrom(r.Context())
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	sale, found := h.ledger.GetSale(chi.URLParam(r, "id"))
	if !found || (!isStaff(claims) && sale.Customer.ID != claims.UserID) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, sale, http.StatusOK)
}

type updateOrderRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending processing shipping delivered cancelled completed"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty,oneof=cash card"`
	InvoiceType   *string `json:"invoiceType" validate:"omitempty,oneof=boleta factura"`
	Notes         *string `json:"notes"`
}

func (h *OrdersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, found := h.ledger.GetSale(id); !found {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	var req updateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var patch sales.Patch
	if req.Status != nil {
		status := sales.Status(*req.Status)
		patch.Status = &status
	}
	if req.PaymentMethod != nil {
		method := sales.PaymentMethod(*req.PaymentMethod)
		patch.PaymentMethod = &method
	}
	if req.InvoiceType != nil {
		invoice := sales.InvoiceType(*req.InvoiceType)
		patch.InvoiceType = &invoice
	}
	patch.Notes = req.Notes

	h.ledger.UpdateSale(id, patch)

	sale, _ := h.ledger.GetSale(id)
	utils.WriteJSON(w, sale, http.StatusOK)
}

// Cancel is allowed for staff and for the sale's own customer.
func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFrom(r.Context())
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	sale, found := h.ledger.GetSale(id)
	if !found || (!isStaff(claims) && sale.Customer.ID != claims.UserID) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	h.ledger.CancelSale(id)

	sale, _ = h.ledger.GetSale(id)
	utils.WriteJSON(w, sale, http.StatusOK)
}

type updateShippingRequest struct {
	Milestone string `json:"milestone" validate:"required,oneof=received processing dispatched transit delivery delivered"`
	Timestamp string `json:"timestamp" validate:"omitempty"`
}

func (h *OrdersHandler) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, found := h.ledger.GetSale(id); !found {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	var req updateShippingRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	ts := time.Now()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			utils.WriteError(w, "timestamp must be RFC 3339", http.StatusBadRequest)
			return
		}
		ts = parsed
	}

	h.ledger.UpdateShippingStatus(id, sales.Milestone(req.Milestone), ts)

	sale, _ := h.ledger.GetSale(id)
	utils.WriteJSON(w, sale, http.StatusOK)
}
