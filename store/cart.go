package store

import (
	"context"

	"github.com/ezkit-shop/storefront/client"
	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
)

// Cart mirrors the server-held cart. Every mutation either replaces the
// local list with the server's returned list or, on failure, refetches the
// whole cart, so the mirror can never silently diverge for more than one
// failed round trip. Cart is not safe for concurrent use; callers drive it
// from a single goroutine the way UI event handlers would.
type Cart struct {
	api             *client.Client
	items           []models.CartItem
	discountApplied bool
	err             error
}

// NewCart creates an empty cart mirror backed by the given client
func NewCart(api *client.Client) *Cart {
	return &Cart{api: api}
}

// Refresh loads the current cart from the server. On failure the previous
// items are left untouched and the error is retained for the caller's
// retry action.
func (s *Cart) Refresh(ctx context.Context) error {
	utils.LogInfo("Refreshing cart")
	cart, err := s.api.GetCart(ctx)
	if err != nil {
		utils.LogError("Failed to refresh cart: %v", err)
		s.err = err
		return err
	}
	s.items = cart.Items
	s.err = nil
	return nil
}

// Items returns the mirrored line items
func (s *Cart) Items() []models.CartItem {
	return s.items
}

// Err returns the error from the last failed refresh, if any
func (s *Cart) Err() error {
	return s.err
}

// Add puts a product in the cart and reconciles from the response
func (s *Cart) Add(ctx context.Context, productID string, quantity int) error {
	utils.LogInfo("Adding product %s (qty %d) to cart", productID, quantity)
	cart, err := s.api.AddToCart(ctx, productID, quantity)
	return s.reconcile(ctx, cart, err)
}

// Increase bumps a line's quantity by one
func (s *Cart) Increase(ctx context.Context, productID string) error {
	utils.LogInfo("Increasing quantity for product %s", productID)
	cart, err := s.api.IncreaseQuantity(ctx, productID)
	return s.reconcile(ctx, cart, err)
}

// Decrease lowers a line's quantity by one. The server floors quantity at 1,
// so the reconciled list never shows zero or negative quantities; removing a
// line is an explicit separate action.
func (s *Cart) Decrease(ctx context.Context, productID string) error {
	utils.LogInfo("Decreasing quantity for product %s", productID)
	cart, err := s.api.DecreaseQuantity(ctx, productID)
	return s.reconcile(ctx, cart, err)
}

// Remove drops a line item entirely
func (s *Cart) Remove(ctx context.Context, productID string) error {
	utils.LogInfo("Removing product %s from cart", productID)
	cart, err := s.api.RemoveFromCart(ctx, productID)
	return s.reconcile(ctx, cart, err)
}

// reconcile applies the mutation outcome: success replaces the whole item
// list with the server's, failure falls back to a full refetch to repair
// any divergence.
func (s *Cart) reconcile(ctx context.Context, cart *models.Cart, err error) error {
	if err != nil {
		utils.LogError("Cart mutation failed, refetching to reconcile: %v", err)
		if refreshErr := s.Refresh(ctx); refreshErr != nil {
			utils.LogError("Reconciliation refetch also failed: %v", refreshErr)
		}
		return err
	}
	s.items = cart.Items
	s.err = nil
	return nil
}

// ApplyDiscountCode posts a code to the server. Once a code has been
// accepted the flag is one-shot: further submissions are rejected locally
// without a network call. A successful application refetches the cart since
// the server may have adjusted it.
func (s *Cart) ApplyDiscountCode(ctx context.Context, code string) error {
	if s.discountApplied {
		return utils.BadRequestError(utils.ErrDiscountApplied, nil)
	}

	utils.LogInfo("Applying discount code")
	applied, err := s.api.ApplyDiscount(ctx, code)
	if err != nil {
		utils.LogError("Failed to apply discount code: %v", err)
		return err
	}
	if !applied {
		return utils.BadRequestError("Discount code was not accepted", nil)
	}

	s.discountApplied = true
	if err := s.Refresh(ctx); err != nil {
		utils.LogError("Failed to refresh cart after discount: %v", err)
	}
	return nil
}

// DiscountApplied reports whether a discount code has been accepted
func (s *Cart) DiscountApplied() bool {
	return s.discountApplied
}

// Subtotal is recomputed from the mirrored items on every call, never stored
func (s *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range s.items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}
	return subtotal
}

// Total applies the flat discount rate once a code has been accepted
func (s *Cart) Total() float64 {
	subtotal := s.Subtotal()
	if s.discountApplied {
		return subtotal * (1 - utils.CartDiscountRate)
	}
	return subtotal
}
