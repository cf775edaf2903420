package client

import (
	"context"
	"net/http"

	"github.com/ezkit-shop/storefront/models"
)

// GetProducts fetches the full product collection
func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id
func (c *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+productID, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
