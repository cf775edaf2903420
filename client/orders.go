package client

import (
	"context"
	"net/http"

	"github.com/ezkit-shop/storefront/models"
)

// OrderResult is the order-creation response. PaymentLink, when present,
// points at the external payment page; the order is not complete until the
// payment flow finishes out of process.
type OrderResult struct {
	models.Order
	PaymentLink string `json:"paymentLink,omitempty"`
}

// PlaceOrder submits an order for the session-bound cart. Cart items are not
// sent; the server derives them from its own cart. The idempotency key lets
// the backend collapse duplicate retries of the same attempt, and is ignored
// by backends that do not understand it.
func (c *Client) PlaceOrder(ctx context.Context, shipping models.ShippingAddress, idempotencyKey string) (*OrderResult, error) {
	req := struct {
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	}{ShippingAddress: shipping}

	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}

	var result OrderResult
	if err := c.doWithHeaders(ctx, http.MethodPost, "/api/orders", headers, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMyOrders fetches the caller's order history, newest first
func (c *Client) GetMyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/my-orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order by id
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+orderID, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
