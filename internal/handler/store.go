package handler

import (
	"errors"
	"net/http"

	"floreria-be/internal/inventory"
	"floreria-be/internal/likes"
	"floreria-be/internal/logger"
	"floreria-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Recommendation is a static storefront highlight, not a catalog product.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

var recommendations = []Recommendation{
	{
		Title:       "Ramo de Rosas Rojas",
		Description: "El clásico símbolo del amor y la pasión",
		Image:       "https://images.pexels.com/photos/931177/pexels-photo-931177.jpeg",
	},
	{
		Title:       "Centro de Mesa Primaveral",
		Description: "Perfecto para eventos y celebraciones especiales",
		Image:       "https://images.pexels.com/photos/6044266/pexels-photo-6044266.jpeg",
	},
	{
		Title:       "Arreglo de Girasoles",
		Description: "Llena de alegría y luz cualquier espacio",
		Image:       "https://images.pexels.com/photos/1624076/pexels-photo-1624076.jpeg",
	},
}

type StoreHandler struct {
	validate *validator.Validate
	catalog  *inventory.Store
	likes    likes.Service
}

func NewStoreHandler(catalog *inventory.Store, likesSvc likes.Service) *StoreHandler {
	return &StoreHandler{validate: validator.New(), catalog: catalog, likes: likesSvc}
}

func (h *StoreHandler) Init(r chi.Router) {
	r.Get("/products", h.Products)
	r.Get("/products/{id}", h.Product)
	r.Post("/products/{id}/like", h.ToggleLike)
	r.Get("/likes", h.Likes)
	r.Get("/categories", h.Categories)
	r.Get("/recommendations", h.Recommendations)
}

// InitAdmin registers the back-office catalog routes.
func (h *StoreHandler) InitAdmin(r chi.Router) {
	r.Patch("/products/{id}", h.UpdateProduct)
}

func (h *StoreHandler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := inventory.Filter{
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		OnlyInStock: q.Get("inStock") == "true",
	}

	// The "liked" pseudo-category resolves against the caller's likes.
	if filter.Category == inventory.CategoryLiked {
		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			utils.WriteError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		ids, err := h.likes.Liked(ctx, userID)
		if err != nil {
			logger.FromCtx(ctx).Error("failed to load likes", zap.Error(err))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		filter.LikedIDs = ids
	}

	utils.WriteJSON(w, h.catalog.Products(filter), http.StatusOK)
}

func (h *StoreHandler) Product(w http.ResponseWriter, r *http.Request) {
	product, ok := h.catalog.Product(chi.URLParam(r, "id"))
	if !ok {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *StoreHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	productID := chi.URLParam(r, "id")
	if _, ok := h.catalog.Product(productID); !ok {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}

	liked, err := h.likes.Toggle(ctx, userID, productID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to toggle like",
			zap.String("product_id", productID), zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]bool{"liked": liked}, http.StatusOK)
}

func (h *StoreHandler) Likes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	ids, err := h.likes.Liked(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load likes", zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	utils.WriteJSON(w, ids, http.StatusOK)
}

func (h *StoreHandler) Categories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.Categories(), http.StatusOK)
}

func (h *StoreHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, recommendations, http.StatusOK)
}

// UpdateProduct is the back-office catalog edit.
func (h *StoreHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req struct {
		Name        *string  `json:"name"`
		Category    *string  `json:"category"`
		Price       *float64 `json:"price" validate:"omitempty,gte=0"`
		Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
		MinStock    *int     `json:"minStock" validate:"omitempty,gte=0"`
		Description *string  `json:"description"`
		ImageURL    *string  `json:"imageUrl"`
	}
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	patch := inventory.Patch{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.catalog.UpdateProduct(id, patch); err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			utils.WriteError(w, "product not found", http.StatusNotFound)
			return
		}
		logger.FromCtx(ctx).Error("failed to update product",
			zap.String("product_id", id), zap.Error(err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	product, _ := h.catalog.Product(id)
	utils.WriteJSON(w, product, http.StatusOK)
}
