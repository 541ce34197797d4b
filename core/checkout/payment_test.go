package checkout

import (
	"testing"

	"github.com/mayatech/storefront/core/order"
	"github.com/stretchr/testify/require"
)

func validAddress() order.ShippingAddress {
	return order.ShippingAddress{
		Name:    "Abebe Bikila",
		Address: "Bole Road 12",
		City:    "Addis Ababa",
		ZipCode: "1000",
		Country: "Ethiopia",
	}
}

func TestValidateRequiresAddressFields(t *testing.T) {
	addr := validAddress()
	addr.City = ""

	err := Validate(Request{ShippingAddress: addr, PaymentMethod: order.CashOnDelivery})
	require.Error(t, err)
}

func TestValidateRequiresPaymentMethod(t *testing.T) {
	err := Validate(Request{ShippingAddress: validAddress()})
	require.EqualError(t, err, "a payment method must be selected")
}

func TestValidateRejectsUnknownMethod(t *testing.T) {
	err := Validate(Request{ShippingAddress: validAddress(), PaymentMethod: "BARTER"})
	require.Error(t, err)
}

func TestValidateCardMethods(t *testing.T) {
	base := Request{ShippingAddress: validAddress(), PaymentMethod: order.Visa}

	// missing details
	require.Error(t, Validate(base))

	// too short
	short := base
	short.Card = &CardDetails{CardNumber: "123", ExpiryDate: "12/26", CVV: "123"}
	require.Error(t, Validate(short))

	// 16 digits after whitespace removal
	ok := base
	ok.Card = &CardDetails{CardNumber: "4111 1111 1111 1111", ExpiryDate: "12/26", CVV: "123"}
	require.NoError(t, Validate(ok))

	// month 13 is not a month
	badExp := base
	badExp.Card = &CardDetails{CardNumber: "4111111111111111", ExpiryDate: "13/26", CVV: "123"}
	require.Error(t, Validate(badExp))

	badCVV := base
	badCVV.Card = &CardDetails{CardNumber: "4111111111111111", ExpiryDate: "01/26", CVV: "12"}
	require.Error(t, Validate(badCVV))

	fourDigitCVV := base
	fourDigitCVV.PaymentMethod = order.Mastercard
	fourDigitCVV.Card = &CardDetails{CardNumber: "5555 5555 5555 4444", ExpiryDate: "09/27", CVV: "1234"}
	require.NoError(t, Validate(fourDigitCVV))
}

func TestValidateMobileMoneyMethods(t *testing.T) {
	for _, m := range []order.PaymentMethod{order.CBEBirr, order.Telebirr, order.Amole} {
		req := Request{ShippingAddress: validAddress(), PaymentMethod: m}

		require.Error(t, Validate(req), "missing phone for %s", m)

		req.MobileMoneyPhone = "+251911234567"
		require.NoError(t, Validate(req), "valid phone for %s", m)

		req.MobileMoneyPhone = "12345"
		require.Error(t, Validate(req), "short phone for %s", m)
	}
}

func TestValidateMethodsWithoutExtraFields(t *testing.T) {
	for _, m := range []order.PaymentMethod{order.Paypal, order.ApplePay, order.BankTransfer, order.CashOnDelivery} {
		err := Validate(Request{ShippingAddress: validAddress(), PaymentMethod: m})
		require.NoError(t, err, "method %s", m)
	}
}
