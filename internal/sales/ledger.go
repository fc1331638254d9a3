package sales

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"floreria-be/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidStatus        = errors.New("invalid sale status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidInvoiceType   = errors.New("invalid invoice type")
)

// StockAdjuster is the single capability the ledger needs from the inventory
// store: applying -q then +q for the same product must restore its original
// stock value.
type StockAdjuster interface {
	AdjustStock(productID string, delta int)
}

// Ledger owns the list of sales. It is the only writer of the list and the
// only component that triggers stock deductions and restorations.
type Ledger struct {
	mu    sync.Mutex
	sales []Sale
	stock StockAdjuster
	now   func() time.Time
}

func NewLedger(stock StockAdjuster, seed []Sale) *Ledger {
	return &Ledger{
		sales: append([]Sale(nil), seed...),
		stock: stock,
		now:   time.Now,
	}
}

// CreateSale assigns the next sequential id, stamps the shipping timeline
// with a single "received" entry, prepends the sale and deducts stock once
// per line item. The provided ID and ShippingStatus fields are ignored.
func (l *Ledger) CreateSale(s Sale) (string, error) {
	if !s.Status.Valid() {
		return "", ErrInvalidStatus
	}
	if !s.PaymentMethod.Valid() {
		return "", ErrInvalidPaymentMethod
	}
	if !s.InvoiceType.Valid() {
		return "", ErrInvalidInvoiceType
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	s.ID = l.nextID()
	s.ShippingStatus = ShippingStatus{MilestoneReceived: l.now()}
	l.sales = append([]Sale{s}, l.sales...)

	for _, item := range s.Items {
		l.stock.AdjustStock(item.ProductID, -item.Quantity)
	}

	logger.L().Info("sale created",
		zap.String("sale_id", s.ID),
		zap.Int("items", len(s.Items)),
		zap.Float64("total", s.Total),
	)

	return s.ID, nil
}

// nextID derives the next identifier from the highest existing numeric id,
// starting at 1001 on an empty ledger. Non-numeric ids are skipped.
func (l *Ledger) nextID() string {
	highest := 1000
	for _, s := range l.sales {
		if n, err := strconv.Atoi(s.ID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

// UpdateSale merges the patch into the matching sale; unknown ids are a no-op.
func (l *Ledger) UpdateSale(id string, patch Patch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.apply(id, patch)
}

func (l *Ledger) apply(id string, patch Patch) {
	for i := range l.sales {
		if l.sales[i].ID != id {
			continue
		}
		s := &l.sales[i]
		if patch.Status != nil {
			s.Status = *patch.Status
		}
		if patch.PaymentMethod != nil {
			s.PaymentMethod = *patch.PaymentMethod
		}
		if patch.InvoiceType != nil {
			s.InvoiceType = *patch.InvoiceType
		}
		if patch.Notes != nil {
			s.Notes = *patch.Notes
		}
		return
	}
}

// UpdateShippingStatus sets one milestone of the sale's timeline. Milestone
// ordering is not enforced; unknown ids are a no-op.
func (l *Ledger) UpdateShippingStatus(id string, milestone Milestone, ts time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.sales {
		if l.sales[i].ID != id {
			continue
		}
		if l.sales[i].ShippingStatus == nil {
			l.sales[i].ShippingStatus = ShippingStatus{}
		}
		l.sales[i].ShippingStatus[milestone] = ts
		return
	}
}

// CancelSale marks the sale cancelled and returns its reserved stock to
// inventory. Unknown or already-cancelled sales are a no-op, so the
// restoration happens exactly once.
func (l *Ledger) CancelSale(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.sales {
		if l.sales[i].ID != id {
			continue
		}
		if l.sales[i].Status == StatusCancelled {
			return
		}

		l.sales[i].Status = StatusCancelled
		for _, item := range l.sales[i].Items {
			l.stock.AdjustStock(item.ProductID, item.Quantity)
		}

		logger.L().Info("sale cancelled", zap.String("sale_id", id))
		return
	}
}

func (l *Ledger) GetSale(id string) (Sale, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.sales {
		if l.sales[i].ID == id {
			return copySale(l.sales[i]), true
		}
	}
	return Sale{}, false
}

// Sales returns the ledger newest-first.
func (l *Ledger) Sales() []Sale {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Sale, len(l.sales))
	for i, s := range l.sales {
		out[i] = copySale(s)
	}
	return out
}

// copySale detaches the slices and map so callers cannot mutate ledger state.
func copySale(s Sale) Sale {
	s.Items = append([]SaleItem(nil), s.Items...)
	if s.ShippingStatus != nil {
		timeline := make(ShippingStatus, len(s.ShippingStatus))
		for k, v := range s.ShippingStatus {
			timeline[k] = v
		}
		s.ShippingStatus = timeline
	}
	if s.GreetingCard != nil {
		card := *s.GreetingCard
		s.GreetingCard = &card
	}
	return s
}
