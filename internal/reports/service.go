package reports

import (
	"time"

	"floreria-be/internal/inventory"
	"floreria-be/internal/sales"
)

type DailyPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type CategoryRevenue struct {
	CategoryID string  `json:"categoryId"`
	Category   string  `json:"category"`
	Revenue    float64 `json:"revenue"`
	SaleCount  int     `json:"sales"`
}

type Summary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	OrderCount     int     `json:"orderCount"`
	CancelledCount int     `json:"cancelledCount"`
	AverageOrder   float64 `json:"averageOrder"`
	UnitsSold      int     `json:"unitsSold"`
}

// SalesSource is the read access reports need from the order ledger.
type SalesSource interface {
	Sales() []sales.Sale
}

// CatalogSource is the read access reports need from the inventory store.
type CatalogSource interface {
	Products(filter inventory.Filter) []inventory.Product
	Categories() []inventory.Category
	LowStock() []inventory.Product
}

type Service interface {
	DailySales(days int) []DailyPoint
	RevenueByCategory() []CategoryRevenue
	LowStock() []inventory.Product
	Summary() Summary
}

type service struct {
	ledger  SalesSource
	catalog CatalogSource
	now     func() time.Time
}

func NewService(ledger SalesSource, catalog CatalogSource) Service {
	return &service{ledger: ledger, catalog: catalog, now: time.Now}
}

// DailySales buckets sales by calendar day over the trailing window, oldest
// day first.
func (s *service) DailySales(days int) []DailyPoint {
	if days <= 0 {
		days = 7
	}

	today := s.now()
	points := make([]DailyPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i-days+1).Format("2006-01-02")
		points[i] = DailyPoint{Date: date}
		index[date] = i
	}

	for _, sale := range s.ledger.Sales() {
		day := sale.Date.Format("2006-01-02")
		if i, ok := index[day]; ok {
			points[i].Total += sale.Total
			points[i].Count++
		}
	}
	return points
}

// RevenueByCategory attributes each sale line's subtotal to the category of
// the product it references. Lines for products outside the catalog, such as
// greeting cards, are not attributed.
func (s *service) RevenueByCategory() []CategoryRevenue {
	categoryOf := make(map[string]string)
	for _, p := range s.catalog.Products(inventory.Filter{}) {
		categoryOf[p.ID] = p.Category
	}

	categories := s.catalog.Categories()
	out := make([]CategoryRevenue, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		out[i] = CategoryRevenue{CategoryID: c.ID, Category: c.Name}
		index[c.ID] = i
	}

	for _, sale := range s.ledger.Sales() {
		touched := make(map[string]bool)
		for _, item := range sale.Items {
			cat, ok := categoryOf[item.ProductID]
			if !ok {
				continue
			}
			i, ok := index[cat]
			if !ok {
				continue
			}
			out[i].Revenue += item.Subtotal
			if !touched[cat] {
				out[i].SaleCount++
				touched[cat] = true
			}
		}
	}
	return out
}

func (s *service) LowStock() []inventory.Product {
	return s.catalog.LowStock()
}

// Summary aggregates the ledger; cancelled sales count separately and do not
// contribute revenue or units.
func (s *service) Summary() Summary {
	var sum Summary
	for _, sale := range s.ledger.Sales() {
		if sale.Status == sales.StatusCancelled {
			sum.CancelledCount++
			continue
		}
		sum.OrderCount++
		sum.TotalRevenue += sale.Total
		for _, item := range sale.Items {
			sum.UnitsSold += item.Quantity
		}
	}
	if sum.OrderCount > 0 {
		sum.AverageOrder = sum.TotalRevenue / float64(sum.OrderCount)
	}
	return sum
}
