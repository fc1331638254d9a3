package handler

import (
	"net/http"
	"strconv"

	"floreria-be/internal/reports"
	"floreria-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ReportsHandler struct {
	svc reports.Service
}

func NewReportsHandler(svc reports.Service) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Init(r chi.Router) {
	r.Get("/sales", h.DailySales)
	r.Get("/categories", h.RevenueByCategory)
	r.Get("/low-stock", h.LowStock)
	r.Get("/summary", h.Summary)
}

func (h *ReportsHandler) DailySales(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			utils.WriteError(w, "days must be between 1 and 365", http.StatusBadRequest)
			return
		}
		days = parsed
	}
	utils.WriteJSON(w, h.svc.DailySales(days), http.StatusOK)
}

func (h *ReportsHandler) RevenueByCategory(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.svc.RevenueByCategory(), http.StatusOK)
}

func (h *ReportsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.svc.LowStock(), http.StatusOK)
}

func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.svc.Summary(), http.StatusOK)
}
