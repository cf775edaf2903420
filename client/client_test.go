package client

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/ezkit-shop/storefront/config"
	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*utils.TestBackend, *Client) {
	backend := utils.NewTestBackend(t)
	api, err := New(&config.Config{
		APIBaseURL:         backend.Server.URL,
		HTTPTimeoutSeconds: 5,
	})
	require.NoError(t, err)
	return backend, api
}

func login(t *testing.T, api *Client) *models.User {
	user, err := api.Login(context.Background(), "test@example.com", "Password1")
	require.NoError(t, err)
	return user
}

func TestLoginCredentialsSubsequentRequests(t *testing.T) {
	_, api := newTestClient(t)
	ctx := context.Background()

	// Without a session the cart endpoint rejects the call
	_, err := api.GetCart(ctx)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	user := login(t, api)
	assert.Equal(t, "test@example.com", user.Email)

	// The jar now carries the session cookie
	cart, err := api.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestLogoutDropsSession(t *testing.T) {
	_, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)

	require.NoError(t, api.Logout(ctx))
	_, err := api.GetCart(ctx)
	assert.True(t, IsUnauthorized(err))
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	backend, api := newTestClient(t)
	ctx := context.Background()

	_, err := api.GetProduct(ctx, "no-such-product")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Product not found", err.Error())

	backend.FailNext("/api/products", 1)
	_, err = api.GetProducts(ctx)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
}

func TestGetProducts(t *testing.T) {
	backend, api := newTestClient(t)
	seeded := backend.SeedProduct(models.Product{
		Name:             "Arduino Starter Kit",
		ShortDescription: "Everything to get going",
		Price:            1999,
		Images:           []string{"kit-front.jpg", "kit-back.jpg"},
		Difficulty:       "easy",
		Features:         []string{"breadboard", "jumper wires"},
	})

	products, err := api.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, seeded.ID, products[0].ID)
	assert.Equal(t, "kit-front.jpg", products[0].FirstImage())

	product, err := api.GetProduct(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, product.Name)
}

func TestCartMutationsReturnUpdatedCart(t *testing.T) {
	backend, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)
	kit := backend.SeedProduct(models.Product{Name: "Sensor Pack", Price: 799, Difficulty: "easy"})

	// Quantity floors at one on the way out
	cart, err := api.AddToCart(ctx, kit.ID, 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = api.IncreaseQuantity(ctx, kit.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart, err = api.DecreaseQuantity(ctx, kit.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Remove unwraps the nested cart in the response
	cart, err = api.RemoveFromCart(ctx, kit.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestApplyDiscount(t *testing.T) {
	_, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)

	applied, err := api.ApplyDiscount(ctx, "SAVE10")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = api.ApplyDiscount(ctx, "BOGUS")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestPlaceOrderSendsIdempotencyKey(t *testing.T) {
	backend, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)
	kit := backend.SeedProduct(models.Product{Name: "Robot Arm Kit", Price: 8999, Difficulty: "hard"})
	_, err := api.AddToCart(ctx, kit.ID, 1)
	require.NoError(t, err)

	shipping := models.ShippingAddress{
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		Country:      "India",
	}
	result, err := api.PlaceOrder(ctx, shipping, "attempt-key-1")
	require.NoError(t, err)

	keys := backend.IdempotencyKeys()
	require.Len(t, keys, 1)
	assert.Equal(t, "attempt-key-1", keys[0])
	assert.Equal(t, 8999+utils.DeliveryCharge, result.Order.TotalAmount)
	assert.Empty(t, result.PaymentLink)

	// The order is readable afterwards and the cart is cleared
	order, err := api.GetOrder(ctx, result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, shipping, order.ShippingAddress)

	cart, err := api.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestPlaceOrderReturnsPaymentLink(t *testing.T) {
	backend, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)
	backend.PaymentLink = "https://pay.example.com/session/xyz"
	kit := backend.SeedProduct(models.Product{Name: "Drone Kit", Price: 12999, Difficulty: "hard"})
	_, err := api.AddToCart(ctx, kit.ID, 1)
	require.NoError(t, err)

	result, err := api.PlaceOrder(ctx, models.ShippingAddress{AddressLine1: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001", Country: "India"}, "attempt-key-2")
	require.NoError(t, err)
	assert.Equal(t, backend.PaymentLink, result.PaymentLink)
}

func TestAddAddressValidatesLocally(t *testing.T) {
	backend, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)

	_, err := api.AddAddress(ctx, models.Address{
		AddressType:  "castle",
		AddressLine1: "",
		Pincode:      "12",
	})
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
	// The invalid address never reached the backend
	assert.Equal(t, 0, backend.RequestCount("/api/users/addresses"))

	addr, err := api.AddAddress(ctx, models.Address{
		AddressType:  models.AddressTypeHome,
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		Country:      "India",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, addr.ID)
}

func TestUploadProfilePicture(t *testing.T) {
	_, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)

	user, err := api.UploadProfilePicture(ctx, "avatar.png", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", user.ProfilePicture)
}

func TestUpdateProfileValidatesLocally(t *testing.T) {
	backend, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)

	_, err := api.UpdateProfile(ctx, models.ProfileUpdate{
		Password:        "weak",
		ConfirmPassword: "weak",
	})
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))

	user, err := api.UpdateProfile(ctx, models.ProfileUpdate{Name: "New Name"})
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, 1, backend.RequestCount("/api/users/profile"))
}

func TestAddressLifecycle(t *testing.T) {
	backend, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)

	home, err := api.AddAddress(ctx, models.Address{
		AddressType:  models.AddressTypeHome,
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		Country:      "India",
	})
	require.NoError(t, err)
	work, err := api.AddAddress(ctx, models.Address{
		AddressType:  models.AddressTypeWork,
		AddressLine1: "4 Residency Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560025",
		Country:      "India",
	})
	require.NoError(t, err)

	got, err := api.GetAddress(ctx, home.ID)
	require.NoError(t, err)
	assert.Equal(t, "12 MG Road", got.AddressLine1)

	// An invalid update is rejected locally before any request goes out
	_, err = api.UpdateAddress(ctx, home.ID, models.Address{Pincode: "12"})
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
	assert.Equal(t, 1, backend.RequestCount("/api/users/addresses/"+home.ID))

	updated, err := api.UpdateAddress(ctx, home.ID, models.Address{
		AddressType:  models.AddressTypeHome,
		AddressLine1: "14 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		Country:      "India",
	})
	require.NoError(t, err)
	assert.Equal(t, home.ID, updated.ID)
	assert.Equal(t, "14 MG Road", updated.AddressLine1)

	// Defaulting one address clears the flag on the rest
	require.NoError(t, api.SetDefaultAddress(ctx, work.ID))
	addresses, err := api.GetAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	for _, addr := range addresses {
		assert.Equal(t, addr.ID == work.ID, addr.IsDefault)
	}

	require.NoError(t, api.DeleteAddress(ctx, home.ID))
	addresses, err = api.GetAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, work.ID, addresses[0].ID)

	_, err = api.GetAddress(ctx, home.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDeleteAccount(t *testing.T) {
	_, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)

	require.NoError(t, api.DeleteAccount(ctx))

	// The session died with the account
	_, err := api.GetCart(ctx)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestGetMyOrders(t *testing.T) {
	backend, api := newTestClient(t)
	ctx := context.Background()
	login(t, api)
	kit := backend.SeedProduct(models.Product{Name: "Starter Kit", Price: 999, Difficulty: "easy"})

	orders, err := api.GetMyOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = api.AddToCart(ctx, kit.ID, 1)
	require.NoError(t, err)
	_, err = api.PlaceOrder(ctx, models.ShippingAddress{AddressLine1: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001", Country: "India"}, "attempt-key-3")
	require.NoError(t, err)

	orders, err = api.GetMyOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, strings.HasPrefix(orders[0].ID, "order-"))
}
