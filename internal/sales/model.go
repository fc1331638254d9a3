package sales

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipping   Status = "shipping"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipping,
		StatusDelivered, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// InvoiceType distinguishes a simple receipt (boleta) from a tax invoice
// (factura); only facturas carry tax.
type InvoiceType string

const (
	InvoiceBoleta  InvoiceType = "boleta"
	InvoiceFactura InvoiceType = "factura"
)

func (t InvoiceType) Valid() bool {
	return t == InvoiceBoleta || t == InvoiceFactura
}

// Milestone names a step of the delivery timeline.
type Milestone string

const (
	MilestoneReceived   Milestone = "received"
	MilestoneProcessing Milestone = "processing"
	MilestoneDispatched Milestone = "dispatched"
	MilestoneTransit    Milestone = "transit"
	MilestoneDelivery   Milestone = "delivery"
	MilestoneDelivered  Milestone = "delivered"
)

func (m Milestone) Valid() bool {
	switch m {
	case MilestoneReceived, MilestoneProcessing, MilestoneDispatched,
		MilestoneTransit, MilestoneDelivery, MilestoneDelivered:
		return true
	}
	return false
}

// ShippingStatus is a sparse mapping of milestones to timestamps. Writes are
// not ordered: a later milestone may be set before an earlier one.
type ShippingStatus map[Milestone]time.Time

type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// Customer is the snapshot embedded in a sale at checkout time.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	RUC   string `json:"ruc,omitempty"`
}

type GreetingCard struct {
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

type Sale struct {
	ID             string         `json:"id"`
	Items          []SaleItem     `json:"items"`
	Customer       Customer       `json:"customer"`
	Subtotal       float64        `json:"subtotal"`
	Tax            float64        `json:"tax"`
	Total          float64        `json:"total"`
	Date           time.Time      `json:"date"`
	Status         Status         `json:"status"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	InvoiceType    InvoiceType    `json:"invoiceType"`
	Notes          string         `json:"notes,omitempty"`
	GreetingCard   *GreetingCard  `json:"greetingCard,omitempty"`
	ShippingStatus ShippingStatus `json:"shippingStatus,omitempty"`
}

// Patch carries partial sale updates; nil fields are left untouched.
type Patch struct {
	Status        *Status
	PaymentMethod *PaymentMethod
	InvoiceType   *InvoiceType
	Notes         *string
}
