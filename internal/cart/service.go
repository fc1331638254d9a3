package cart

import (
	"context"

	"floreria-be/internal/inventory"
)

// ProductGetter is the read access the cart needs from the inventory store.
type ProductGetter interface {
	Product(id string) (inventory.Product, bool)
}

// Service defines the business logic for carts.
type Service interface {
	Add(ctx context.Context, params AddParams) (*Item, error)
	Items(ctx context.Context, userID string) ([]Item, error)
	UpdateQuantity(ctx context.Context, params UpdateParams) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type service struct {
	repo     Repository
	products ProductGetter
}

func NewService(repo Repository, products ProductGetter) Service {
	return &service{repo: repo, products: products}
}

// Add puts a product into the user's cart, merging with an existing line.
func (s *service) Add(ctx context.Context, params AddParams) (*Item, error) {
	if params.Quantity <= 0 {
		params.Quantity = 1
	}

	product, ok := s.products.Product(params.ProductID)
	if !ok {
		return nil, ErrProductNotFound
	}

	items, err := s.repo.Items(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	idx := -1
	finalQty := params.Quantity
	for i, item := range items {
		if item.ProductID == params.ProductID {
			idx = i
			finalQty += item.Quantity
			break
		}
	}

	if product.Stock < finalQty {
		return nil, ErrInsufficientStock
	}

	line := Item{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  finalQty,
	}
	if idx >= 0 {
		items[idx] = line
	} else {
		items = append(items, line)
	}

	if err := s.repo.Save(ctx, params.UserID, items); err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *service) Items(ctx context.Context, userID string) ([]Item, error) {
	return s.repo.Items(ctx, userID)
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (s *service) UpdateQuantity(ctx context.Context, params UpdateParams) error {
	if params.Quantity <= 0 {
		return s.Remove(ctx, params.UserID, params.ProductID)
	}

	items, err := s.repo.Items(ctx, params.UserID)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ProductID == params.ProductID {
			items[i].Quantity = params.Quantity
			return s.repo.Save(ctx, params.UserID, items)
		}
	}
	return ErrProductNotFound
}

func (s *service) Remove(ctx context.Context, userID, productID string) error {
	items, err := s.repo.Items(ctx, userID)
	if err != nil {
		return err
	}

	out := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return s.repo.Save(ctx, userID, out)
}

func (s *service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}
