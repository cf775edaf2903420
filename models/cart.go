package models

// CartItem is one line of the server-held cart. The embedded product is a
// cached copy; the server owns the authoritative record.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the session-scoped cart as returned by the backend. Items are
// keyed by product id, one line per product.
type Cart struct {
	Items []CartItem `json:"items"`
}
