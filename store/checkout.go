package store

import (
	"context"

	"github.com/ezkit-shop/storefront/client"
	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
	"github.com/google/uuid"
)

// CheckoutState is the checkout flow's state machine position.
type CheckoutState int

const (
	// CheckoutIdle means ready to submit; a failed submission returns here
	// with the error surfaced.
	CheckoutIdle CheckoutState = iota
	// CheckoutSubmitting means an order request is in flight.
	CheckoutSubmitting
	// CheckoutAwaitingPayment means the backend returned a payment link and
	// the caller must redirect to it; the order is not complete locally.
	CheckoutAwaitingPayment
	// CheckoutComplete means the order was placed without an external
	// payment step.
	CheckoutComplete
)

// Checkout gathers the cart, the saved addresses, and an address selection,
// then submits the order. The server derives the order lines from its own
// session-bound cart, so what the caller displays and what gets ordered
// match only if the cart mirror is current. Not safe for concurrent use.
type Checkout struct {
	api        *client.Client
	items      []models.CartItem
	addresses  []models.Address
	selected   int
	attemptKey string
	state      CheckoutState
	order      *models.Order
	payLink    string
}

// NewCheckout creates a checkout flow backed by the given client
func NewCheckout(api *client.Client) *Checkout {
	return &Checkout{api: api, selected: -1}
}

// Begin loads the cart and the saved addresses concurrently, defaults the
// address selection to the first saved address, and arms a fresh
// idempotency key for this attempt.
func (co *Checkout) Begin(ctx context.Context) error {
	utils.LogInfo("Beginning checkout")

	var (
		cart     *models.Cart
		cartErr  error
		addrs    []models.Address
		addrsErr error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		addrs, addrsErr = co.api.GetAddresses(ctx)
	}()
	cart, cartErr = co.api.GetCart(ctx)
	<-done

	if cartErr != nil {
		utils.LogError("Failed to load cart for checkout: %v", cartErr)
		return cartErr
	}
	if addrsErr != nil {
		utils.LogError("Failed to load addresses for checkout: %v", addrsErr)
		return addrsErr
	}

	co.items = cart.Items
	co.addresses = addrs
	co.selected = -1
	if len(addrs) > 0 {
		co.selected = 0
	}
	co.attemptKey = uuid.NewString()
	co.state = CheckoutIdle
	co.order = nil
	co.payLink = ""
	utils.LogInfo("Checkout ready: %d items, %d addresses", len(co.items), len(co.addresses))
	return nil
}

// Items returns the cart lines loaded at Begin
func (co *Checkout) Items() []models.CartItem {
	return co.items
}

// Addresses returns the saved addresses loaded at Begin
func (co *Checkout) Addresses() []models.Address {
	return co.addresses
}

// SelectedAddress returns the current selection, or nil when none exists
func (co *Checkout) SelectedAddress() *models.Address {
	if co.selected < 0 || co.selected >= len(co.addresses) {
		return nil
	}
	return &co.addresses[co.selected]
}

// SelectAddress switches the selection to one of the fetched addresses.
// Adding a new address inline is not part of this flow.
func (co *Checkout) SelectAddress(addressID string) error {
	for i, addr := range co.addresses {
		if addr.ID == addressID {
			co.selected = i
			return nil
		}
	}
	return utils.NotFoundError("Address not found among saved addresses", nil)
}

// Subtotal sums the loaded cart lines
func (co *Checkout) Subtotal() float64 {
	var subtotal float64
	for _, item := range co.items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}
	return subtotal
}

// Discount is the flat amount taken off once the subtotal clears the
// threshold
func (co *Checkout) Discount() float64 {
	if co.Subtotal() > utils.OrderDiscountThreshold {
		return utils.OrderDiscountAmount
	}
	return 0
}

// Shipping is the flat delivery charge
func (co *Checkout) Shipping() float64 {
	return utils.DeliveryCharge
}

// Total is subtotal plus shipping minus the threshold discount
func (co *Checkout) Total() float64 {
	return co.Subtotal() + co.Shipping() - co.Discount()
}

// State returns the flow's current position
func (co *Checkout) State() CheckoutState {
	return co.state
}

// Order returns the placed order once the flow has completed
func (co *Checkout) Order() *models.Order {
	return co.order
}

// PaymentLink returns the external payment URL when the backend requested a
// redirect
func (co *Checkout) PaymentLink() string {
	return co.payLink
}

// Submit places the order. An empty cart or missing address selection fails
// locally before any network call. The same idempotency key is reused when
// the caller retries a failed submission; a completed submission rotates it
// so the next attempt is distinct.
func (co *Checkout) Submit(ctx context.Context) error {
	if len(co.items) == 0 {
		utils.LogError("Checkout submitted with an empty cart")
		return utils.ValidationError(utils.ErrEmptyCart, nil)
	}
	addr := co.SelectedAddress()
	if addr == nil {
		utils.LogError("Checkout submitted with no address selected")
		return utils.ValidationError(utils.ErrMissingAddress, nil)
	}

	co.state = CheckoutSubmitting
	utils.LogInfo("Submitting order, attempt key %s", co.attemptKey)

	result, err := co.api.PlaceOrder(ctx, addr.Shipping(), co.attemptKey)
	if err != nil {
		utils.LogError("Order submission failed: %v", err)
		co.state = CheckoutIdle
		return err
	}

	co.order = &result.Order
	co.attemptKey = uuid.NewString()

	if result.PaymentLink != "" {
		utils.LogInfo("Order %s awaiting payment", result.Order.ID)
		co.payLink = result.PaymentLink
		co.state = CheckoutAwaitingPayment
		return nil
	}

	utils.LogInfo("Order %s complete", result.Order.ID)
	co.state = CheckoutComplete
	return nil
}
