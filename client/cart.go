package client

import (
	"context"
	"net/http"

	"github.com/ezkit-shop/storefront/models"
)

// GetCart retrieves the current server-held cart
func (c *Client) GetCart(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds a product and returns the updated cart
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	req := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}

	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/api/cart/add", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// IncreaseQuantity increments a line item by one and returns the updated cart
func (c *Client) IncreaseQuantity(ctx context.Context, productID string) (*models.Cart, error) {
	return c.changeQuantity(ctx, "/api/cart/increase", productID)
}

// DecreaseQuantity decrements a line item by one and returns the updated
// cart. The server floors quantity at 1; removing a line is a distinct call.
func (c *Client) DecreaseQuantity(ctx context.Context, productID string) (*models.Cart, error) {
	return c.changeQuantity(ctx, "/api/cart/decrease", productID)
}

func (c *Client) changeQuantity(ctx context.Context, path, productID string) (*models.Cart, error) {
	req := struct {
		ProductID string `json:"productId"`
	}{ProductID: productID}

	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, path, req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveFromCart deletes a line item entirely. The remove endpoint wraps the
// cart one level deeper than the other mutations.
func (c *Client) RemoveFromCart(ctx context.Context, productID string) (*models.Cart, error) {
	var resp struct {
		Cart models.Cart `json:"cart"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/cart/remove/"+productID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Cart, nil
}

// ApplyDiscount posts a discount code and reports whether the server
// accepted it
func (c *Client) ApplyDiscount(ctx context.Context, code string) (bool, error) {
	req := struct {
		Code string `json:"code"`
	}{Code: code}

	var resp struct {
		Applied bool `json:"applied"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/cart/discount", req, &resp); err != nil {
		return false, err
	}
	return resp.Applied, nil
}
