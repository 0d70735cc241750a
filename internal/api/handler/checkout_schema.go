package handler

// --- Request types ---

type checkoutItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type cardDataRequest struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// checkoutRequest is deliberately bind-only: quantities are unchecked by
// contract, card data is opaque, and pricing errors belong to the service.
type checkoutRequest struct {
	Items         []checkoutItemRequest `json:"items"`
	Freight       float64               `json:"freight"`
	PaymentMethod string                `json:"paymentMethod"`
	CardData      *cardDataRequest      `json:"cardData"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes; money fields serialize as plain numbers.

type checkoutItemResponse struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type checkoutResponse struct {
	UserID        int                    `json:"userId"`
	Items         []checkoutItemResponse `json:"items"`
	Freight       float64                `json:"freight"`
	PaymentMethod string                 `json:"paymentMethod"`
	Total         float64                `json:"total"`
}
