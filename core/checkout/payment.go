// Package checkout validates payment submissions and turns the cart into an
// order.
package checkout

import (
	"errors"
	"fmt"

	"github.com/mayatech/storefront/core/order"
	"github.com/mayatech/storefront/validate"
)

type CardDetails struct {
	CardNumber string `json:"cardNumber" validate:"required,cardnum"`
	ExpiryDate string `json:"expiryDate" validate:"required,cardexp"`
	CVV        string `json:"cvv" validate:"required,cvv"`
}

type mobileMoney struct {
	Phone string `validate:"required,phone"`
}

// Request is a checkout submission: the shipping address, the selected
// payment method and the method-specific fields.
type Request struct {
	ShippingAddress  order.ShippingAddress `json:"shippingAddress"`
	PaymentMethod    order.PaymentMethod   `json:"paymentMethod"`
	Card             *CardDetails          `json:"card,omitempty"`
	MobileMoneyPhone string                `json:"mobileMoneyPhone,omitempty"`
}

// Validate is a pure check over the submission. Card methods need a 16-digit
// number (whitespace ignored), an MM/YY expiry and a 3-4 digit CVV;
// mobile-money methods need a phone number; the remaining methods need no
// extra fields.
func Validate(r Request) error {
	if err := validate.Check(r.ShippingAddress); err != nil {
		return err
	}

	switch r.PaymentMethod {
	case order.Visa, order.Mastercard:
		if r.Card == nil {
			return errors.New("card details are required")
		}
		return validate.Check(*r.Card)

	case order.CBEBirr, order.Telebirr, order.Amole:
		return validate.Check(mobileMoney{Phone: r.MobileMoneyPhone})

	case order.Paypal, order.ApplePay, order.BankTransfer, order.CashOnDelivery:
		return nil

	case "":
		return errors.New("a payment method must be selected")

	default:
		return fmt.Errorf("unsupported payment method %q", r.PaymentMethod)
	}
}
