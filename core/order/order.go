package order

import "time"

// Status starts at Pending; no code path transitions it afterwards.
type Status string

const (
	Pending    Status = "Pending"
	Processing Status = "Processing"
	Completed  Status = "Completed"
	Cancelled  Status = "Cancelled"
)

// PaymentMethod is the closed set of supported methods.
type PaymentMethod string

const (
	CBEBirr        PaymentMethod = "CBE_BIRR"
	Telebirr       PaymentMethod = "TELEBIRR"
	Amole          PaymentMethod = "AMOLE"
	Paypal         PaymentMethod = "PAYPAL"
	ApplePay       PaymentMethod = "APPLE_PAY"
	Visa           PaymentMethod = "VISA"
	Mastercard     PaymentMethod = "MASTERCARD"
	BankTransfer   PaymentMethod = "BANK_TRANSFER"
	CashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

type ShippingAddress struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Item is a point-in-time snapshot of a purchased product. It is a copy, not
// a live link, so later catalog changes never alter order history.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}

// Order is immutable once created.
type Order struct {
	ID              string          `json:"id"`
	Items           []Item          `json:"items"`
	TotalPrice      float64         `json:"totalPrice"`
	OrderDate       time.Time       `json:"orderDate"`
	Status          Status          `json:"status"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}
