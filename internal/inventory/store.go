package inventory

import (
	"errors"
	"strings"
	"sync"
)

var ErrProductNotFound = errors.New("product not found")

// Store owns the product catalog and is the sole mutator of stock levels.
// Other components change stock only through AdjustStock.
type Store struct {
	mu         sync.Mutex
	products   []Product
	categories []Category
}

func NewStore(products []Product, categories []Category) *Store {
	return &Store{
		products:   append([]Product(nil), products...),
		categories: append([]Category(nil), categories...),
	}
}

func (s *Store) Products(filter Filter) []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked := make(map[string]bool, len(filter.LikedIDs))
	for _, id := range filter.LikedIDs {
		liked[id] = true
	}

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}

		switch filter.Category {
		case "", CategoryAll:
		case CategoryLiked:
			if !liked[p.ID] {
				continue
			}
		default:
			if p.Category != filter.Category {
				continue
			}
		}

		if filter.OnlyInStock && p.Stock <= 0 {
			continue
		}

		out = append(out, p)
	}
	return out
}

func (s *Store) Product(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Category(nil), s.categories...)
}

// UpdateProduct merges the patch into the matching product.
func (s *Store) UpdateProduct(id string, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.MinStock != nil {
			p.MinStock = *patch.MinStock
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		return nil
	}
	return ErrProductNotFound
}

// AdjustStock applies a stock delta. It is the single entrypoint the order
// ledger uses; applying -q then +q restores the original value exactly.
// Unknown ids are a no-op: sale lines may reference items that are not
// inventory-tracked, such as greeting cards.
func (s *Store) AdjustStock(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock += delta
			return
		}
	}
}

// LowStock lists products at or below their minimum threshold.
func (s *Store) LowStock() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, 0)
	for _, p := range s.products {
		if p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	return out
}
