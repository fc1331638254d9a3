package cart

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Item is a cart line, persisted under the user-scoped "cartItems" document
// as a snapshot of the product fields plus the quantity.
type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"quantity"`
}

type AddParams struct {
	UserID    string
	ProductID string
	Quantity  int
}

type UpdateParams struct {
	UserID    string
	ProductID string
	Quantity  int
}
