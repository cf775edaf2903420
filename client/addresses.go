package client

import (
	"context"
	"net/http"

	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
)

// GetAddresses fetches the user's saved addresses
func (c *Client) GetAddresses(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.do(ctx, http.MethodGet, "/api/users/addresses", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetAddress fetches a single saved address by id
func (c *Client) GetAddress(ctx context.Context, addressID string) (*models.Address, error) {
	var address models.Address
	if err := c.do(ctx, http.MethodGet, "/api/users/addresses/"+addressID, nil, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// AddAddress creates a new address after local validation
func (c *Client) AddAddress(ctx context.Context, address models.Address) (*models.Address, error) {
	if errs := utils.ValidateAddressFields(address.AddressType, address.AddressLine1, address.City, address.State, address.Pincode, address.Country); errs != nil {
		return nil, utils.ValidationError("Invalid address", errs)
	}

	var created models.Address
	if err := c.do(ctx, http.MethodPost, "/api/users/addresses", address, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAddress replaces an existing address after local validation
func (c *Client) UpdateAddress(ctx context.Context, addressID string, address models.Address) (*models.Address, error) {
	if errs := utils.ValidateAddressFields(address.AddressType, address.AddressLine1, address.City, address.State, address.Pincode, address.Country); errs != nil {
		return nil, utils.ValidationError("Invalid address", errs)
	}

	var updated models.Address
	if err := c.do(ctx, http.MethodPut, "/api/users/addresses/"+addressID, address, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAddress removes a saved address
func (c *Client) DeleteAddress(ctx context.Context, addressID string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/addresses/"+addressID, nil, nil)
}

// SetDefaultAddress marks one address as the default; the backend clears the
// flag on the rest
func (c *Client) SetDefaultAddress(ctx context.Context, addressID string) error {
	return c.do(ctx, http.MethodPatch, "/api/users/addresses/"+addressID+"/default", nil, nil)
}
