package checkout

import (
	"context"
	"errors"
	"time"

	"floreria-be/internal/cart"
	"floreria-be/internal/logger"
	"floreria-be/internal/sales"
	"floreria-be/internal/user"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrUnknownGreetingCard = errors.New("unknown greeting card")
)

// Factura carries 18% tax; a boleta carries none.
const facturaTaxRate = 0.18

type Options struct {
	PaymentMethod  sales.PaymentMethod
	InvoiceType    sales.InvoiceType
	GreetingCardID string
	Message        string
	RUC            string
	Notes          string
}

type Result struct {
	SaleID   string  `json:"saleId"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// SaleCreator is the write access checkout needs from the order ledger.
type SaleCreator interface {
	CreateSale(s sales.Sale) (string, error)
}

type Service interface {
	Checkout(ctx context.Context, u user.User, opts Options) (Result, error)
}

type service struct {
	cart   cart.Service
	ledger SaleCreator
	now    func() time.Time
}

func NewService(cartSvc cart.Service, ledger SaleCreator) Service {
	return &service{cart: cartSvc, ledger: ledger, now: time.Now}
}

// Checkout turns the user's cart into a completed sale: cart lines plus the
// optional greeting card, 18% tax when a factura is requested, then clears
// the cart. Stock deduction is the ledger's side effect, not ours.
func (s *service) Checkout(ctx context.Context, u user.User, opts Options) (Result, error) {
	log := logger.FromCtx(ctx).With(zap.String("user_id", u.ID))

	items, err := s.cart.Items(ctx, u.ID)
	if err != nil {
		return Result{}, err
	}
	if len(items) == 0 {
		return Result{}, ErrEmptyCart
	}

	lines := make([]sales.SaleItem, 0, len(items)+1)
	subtotal := 0.0
	for _, item := range items {
		lineSubtotal := item.Price * float64(item.Quantity)
		subtotal += lineSubtotal
		lines = append(lines, sales.SaleItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    lineSubtotal,
		})
	}

	var card *sales.GreetingCard
	if opts.GreetingCardID != "" {
		gc, ok := findGreetingCard(opts.GreetingCardID)
		if !ok {
			return Result{}, ErrUnknownGreetingCard
		}
		subtotal += gc.Price
		lines = append(lines, sales.SaleItem{
			ProductID:   gc.ID,
			ProductName: "Tarjeta: " + gc.Name,
			Quantity:    1,
			Price:       gc.Price,
			Subtotal:    gc.Price,
		})
		card = &sales.GreetingCard{Name: gc.Name, Message: opts.Message}
	}

	tax := 0.0
	if opts.InvoiceType == sales.InvoiceFactura {
		tax = subtotal * facturaTaxRate
	}
	total := subtotal + tax

	sale := sales.Sale{
		Items: lines,
		Customer: sales.Customer{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Phone: u.Phone,
			RUC:   opts.RUC,
		},
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Date:          s.now(),
		Status:        sales.StatusCompleted,
		PaymentMethod: opts.PaymentMethod,
		InvoiceType:   opts.InvoiceType,
		Notes:         opts.Notes,
		GreetingCard:  card,
	}

	saleID, err := s.ledger.CreateSale(sale)
	if err != nil {
		return Result{}, err
	}

	if err := s.cart.Clear(ctx, u.ID); err != nil {
		log.Error("failed to clear cart after checkout",
			zap.String("sale_id", saleID), zap.Error(err))
	}

	log.Info("checkout completed",
		zap.String("sale_id", saleID),
		zap.Float64("total", total),
		zap.String("invoice_type", string(opts.InvoiceType)),
	)

	return Result{SaleID: saleID, Subtotal: subtotal, Tax: tax, Total: total}, nil
}
