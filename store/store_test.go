package store

import (
	"context"
	"testing"

	"github.com/ezkit-shop/storefront/client"
	"github.com/ezkit-shop/storefront/config"
	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a fake backend and returns a client pointed at it
func newTestClient(t *testing.T) (*utils.TestBackend, *client.Client) {
	backend := utils.NewTestBackend(t)
	api, err := client.New(&config.Config{
		APIBaseURL:         backend.Server.URL,
		HTTPTimeoutSeconds: 5,
	})
	require.NoError(t, err)
	return backend, api
}

// loginTestUser opens a session so the cart and order endpoints accept calls
func loginTestUser(t *testing.T, api *client.Client) {
	_, err := api.Login(context.Background(), "test@example.com", "Password1")
	require.NoError(t, err)
}

func seedKit(backend *utils.TestBackend, name string, price float64) models.Product {
	return backend.SeedProduct(models.Product{
		Name:             name,
		ShortDescription: "A starter kit",
		Price:            price,
		Difficulty:       "easy",
	})
}

func seedHomeAddress(backend *utils.TestBackend) models.Address {
	return backend.SeedAddress(models.Address{
		AddressType:  models.AddressTypeHome,
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		Country:      "India",
		IsDefault:    true,
	})
}
