package sales

import "time"

// SeedSales returns the sample orders the back office opens with.
func SeedSales() []Sale {
	maria := Customer{
		ID:    "customer1",
		Name:  "María González",
		Email: "maria@example.com",
		Phone: "555-1234",
	}
	carlos := Customer{
		ID:    "customer2",
		Name:  "Carlos Mendoza",
		Email: "carlos@example.com",
		Phone: "555-5678",
	}

	return []Sale{
		{
			ID: "1001",
			Items: []SaleItem{
				{ProductID: "1", ProductName: "Ramo de Rosas Rojas", Quantity: 2, Price: 45.00, Subtotal: 90.00},
				{ProductID: "3", ProductName: "Arreglo de Girasoles", Quantity: 1, Price: 42.00, Subtotal: 42.00},
			},
			Customer:      maria,
			Subtotal:      132.00,
			Tax:           0,
			Total:         132.00,
			Date:          time.Date(2023, 7, 15, 10, 30, 0, 0, time.UTC),
			Status:        StatusDelivered,
			PaymentMethod: PaymentCash,
			InvoiceType:   InvoiceBoleta,
			ShippingStatus: ShippingStatus{
				MilestoneReceived:   time.Date(2023, 7, 15, 10, 30, 0, 0, time.UTC),
				MilestoneProcessing: time.Date(2023, 7, 15, 11, 0, 0, 0, time.UTC),
				MilestoneDispatched: time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC),
				MilestoneTransit:    time.Date(2023, 7, 15, 15, 0, 0, 0, time.UTC),
				MilestoneDelivery:   time.Date(2023, 7, 15, 16, 0, 0, 0, time.UTC),
				MilestoneDelivered:  time.Date(2023, 7, 15, 17, 0, 0, 0, time.UTC),
			},
		},
		{
			ID: "1002",
			Items: []SaleItem{
				{ProductID: "2", ProductName: "Orquídea Phalaenopsis", Quantity: 1, Price: 60.00, Subtotal: 60.00},
				{ProductID: "4", ProductName: "Centro de Mesa Primaveral", Quantity: 1, Price: 65.00, Subtotal: 65.00},
			},
			Customer:      maria,
			Subtotal:      125.00,
			Tax:           0,
			Total:         125.00,
			Date:          time.Date(2023, 7, 16, 14, 20, 0, 0, time.UTC),
			Status:        StatusProcessing,
			PaymentMethod: PaymentCard,
			InvoiceType:   InvoiceBoleta,
			ShippingStatus: ShippingStatus{
				MilestoneReceived:   time.Date(2023, 7, 16, 14, 20, 0, 0, time.UTC),
				MilestoneProcessing: time.Date(2023, 7, 16, 15, 0, 0, 0, time.UTC),
			},
		},
		{
			ID: "1003",
			Items: []SaleItem{
				{ProductID: "5", ProductName: "Corona de Condolencias", Quantity: 1, Price: 85.00, Subtotal: 85.00},
			},
			Customer:      carlos,
			Subtotal:      85.00,
			Tax:           0,
			Total:         85.00,
			Date:          time.Date(2023, 7, 17, 9, 15, 0, 0, time.UTC),
			Status:        StatusShipping,
			PaymentMethod: PaymentCard,
			InvoiceType:   InvoiceBoleta,
			ShippingStatus: ShippingStatus{
				MilestoneReceived:   time.Date(2023, 7, 17, 9, 15, 0, 0, time.UTC),
				MilestoneProcessing: time.Date(2023, 7, 17, 10, 0, 0, 0, time.UTC),
				MilestoneDispatched: time.Date(2023, 7, 17, 13, 0, 0, 0, time.UTC),
				MilestoneTransit:    time.Date(2023, 7, 17, 14, 0, 0, 0, time.UTC),
			},
		},
	}
}
