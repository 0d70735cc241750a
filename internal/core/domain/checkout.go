package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Payment methods known at checkout. Boleto is the no-discount default; any
// other method string that is not exactly "credit_card" prices the same way.
const (
	PaymentBoleto     = "boleto"
	PaymentCreditCard = "credit_card"
)

var ErrCardDataRequired = errors.New("dados do cartão são obrigatórios")
var ErrUnauthorized = errors.New("não autorizado")

// CheckoutItem references a catalog product. Quantity is passed through
// unchecked: zero and negative values price accordingly.
type CheckoutItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CardData is the opaque card payload sent with credit-card checkouts. Only
// its presence is checked; the contents are never validated.
type CardData struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// CheckoutResult is the derived outcome of a checkout. It is returned to the
// caller and never persisted.
type CheckoutResult struct {
	UserID        int             `json:"userId"`
	Items         []CheckoutItem  `json:"items"`
	Freight       decimal.Decimal `json:"freight"`
	PaymentMethod string          `json:"paymentMethod"`
	Total         decimal.Decimal `json:"total"`
}
