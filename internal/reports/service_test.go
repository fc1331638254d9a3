package reports

import (
	"testing"
	"time"

	"floreria-be/internal/inventory"
	"floreria-be/internal/sales"

	"github.com/stretchr/testify/assert"
)

func testCatalog() *inventory.Store {
	return inventory.NewStore([]inventory.Product{
		{ID: "1", Name: "Ramo de Rosas Rojas", Category: "ramos", Price: 45, Stock: 10, MinStock: 5},
		{ID: "3", Name: "Arreglo de Girasoles", Category: "arreglos", Price: 42, Stock: 2, MinStock: 4},
		{ID: "5", Name: "Corona de Condolencias", Category: "coronas", Price: 85, Stock: 4, MinStock: 2},
	}, []inventory.Category{
		{ID: "ramos", Name: "Ramos"},
		{ID: "arreglos", Name: "Arreglos"},
		{ID: "coronas", Name: "Coronas"},
	})
}

func saleOn(date time.Time, status sales.Status, items ...sales.SaleItem) sales.Sale {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Subtotal
	}
	return sales.Sale{
		Items:         items,
		Subtotal:      subtotal,
		Total:         subtotal,
		Date:          date,
		Status:        status,
		PaymentMethod: sales.PaymentCash,
		InvoiceType:   sales.InvoiceBoleta,
	}
}

type fixedLedger struct{ list []sales.Sale }

func (f fixedLedger) Sales() []sales.Sale { return f.list }

func TestDailySales(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	ledger := fixedLedger{list: []sales.Sale{
		saleOn(today, sales.StatusCompleted,
			sales.SaleItem{ProductID: "1", Quantity: 2, Price: 45, Subtotal: 90}),
		saleOn(today.AddDate(0, 0, -2), sales.StatusCompleted,
			sales.SaleItem{ProductID: "5", Quantity: 1, Price: 85, Subtotal: 85}),
		// outside the window
		saleOn(today.AddDate(0, 0, -10), sales.StatusCompleted,
			sales.SaleItem{ProductID: "1", Quantity: 1, Price: 45, Subtotal: 45}),
	}}

	svc := NewService(ledger, testCatalog()).(*service)
	svc.now = func() time.Time { return today }

	points := svc.DailySales(7)
	assert.Len(t, points, 7)

	assert.Equal(t, "2024-05-04", points[0].Date)
	assert.Equal(t, "2024-05-10", points[6].Date)

	assert.Equal(t, 90.0, points[6].Total)
	assert.Equal(t, 1, points[6].Count)
	assert.Equal(t, 85.0, points[4].Total)
	assert.Equal(t, 0.0, points[5].Total)
}

func TestRevenueByCategory(t *testing.T) {
	ledger := fixedLedger{list: []sales.Sale{
		saleOn(time.Now(), sales.StatusCompleted,
			sales.SaleItem{ProductID: "1", Quantity: 2, Price: 45, Subtotal: 90},
			sales.SaleItem{ProductID: "3", Quantity: 1, Price: 42, Subtotal: 42}),
		saleOn(time.Now(), sales.StatusCompleted,
			sales.SaleItem{ProductID: "1", Quantity: 1, Price: 45, Subtotal: 45},
			// greeting card lines are not attributed to any category
			sales.SaleItem{ProductID: "gc1", Quantity: 1, Price: 5, Subtotal: 5}),
	}}

	svc := NewService(ledger, testCatalog())
	rows := svc.RevenueByCategory()

	byID := map[string]CategoryRevenue{}
	for _, r := range rows {
		byID[r.CategoryID] = r
	}

	assert.Equal(t, 135.0, byID["ramos"].Revenue)
	assert.Equal(t, 2, byID["ramos"].SaleCount)
	assert.Equal(t, 42.0, byID["arreglos"].Revenue)
	assert.Equal(t, 1, byID["arreglos"].SaleCount)
	assert.Equal(t, 0.0, byID["coronas"].Revenue)
}

func TestLowStock(t *testing.T) {
	svc := NewService(fixedLedger{}, testCatalog())

	low := svc.LowStock()
	assert.Len(t, low, 1)
	assert.Equal(t, "3", low[0].ID)
}

func TestSummary(t *testing.T) {
	ledger := fixedLedger{list: []sales.Sale{
		saleOn(time.Now(), sales.StatusCompleted,
			sales.SaleItem{ProductID: "1", Quantity: 2, Price: 45, Subtotal: 90}),
		saleOn(time.Now(), sales.StatusDelivered,
			sales.SaleItem{ProductID: "5", Quantity: 1, Price: 85, Subtotal: 85}),
		saleOn(time.Now(), sales.StatusCancelled,
			sales.SaleItem{ProductID: "1", Quantity: 5, Price: 45, Subtotal: 225}),
	}}

	svc := NewService(ledger, testCatalog())
	sum := svc.Summary()

	assert.Equal(t, 175.0, sum.TotalRevenue)
	assert.Equal(t, 2, sum.OrderCount)
	assert.Equal(t, 1, sum.CancelledCount)
	assert.Equal(t, 87.5, sum.AverageOrder)
	assert.Equal(t, 3, sum.UnitsSold)
}
