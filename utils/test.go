package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ezkit-shop/storefront/models"
	"github.com/gin-gonic/gin"
)

// TestBackend is an in-memory stand-in for the storefront API, used by the
// package tests. It implements the endpoint contract the real backend
// exposes: cookie-based sessions, a session-bound cart, and order creation
// that derives its lines from the server-held cart.
type TestBackend struct {
	Server *httptest.Server

	// PaymentLink, when set, is returned from order creation so tests can
	// exercise the redirect branch.
	PaymentLink string

	mu             sync.Mutex
	products       []models.Product
	cart           []models.CartItem
	addresses      []models.Address
	orders         []models.Order
	discountCodes  map[string]bool
	sessionActive  bool
	failures       map[string]int
	requestCounts  map[string]int
	idempotencyLog []string
	nextID         int
}

// NewTestBackend starts a fake backend and registers its shutdown with the
// test's cleanup.
func NewTestBackend(t *testing.T) *TestBackend {
	gin.SetMode(gin.TestMode)

	b := &TestBackend{
		discountCodes: map[string]bool{"SAVE10": true},
		failures:      map[string]int{},
		requestCounts: map[string]int{},
		nextID:        1,
	}

	router := gin.New()
	router.Use(b.countAndFail())

	router.POST("/api/auth/login", b.login)
	router.POST("/api/auth/register", b.login)
	router.POST("/api/auth/logout", b.logout)
	router.GET("/api/products", b.listProducts)
	router.GET("/api/products/:id", b.getProduct)

	authed := router.Group("", b.requireSession())
	authed.GET("/api/users/profile", b.profile)
	authed.PUT("/api/users/profile", b.profile)
	authed.POST("/api/users/profile/picture", b.uploadPicture)
	authed.GET("/api/cart", b.getCart)
	authed.POST("/api/cart/add", b.addToCart)
	authed.POST("/api/cart/increase", b.increase)
	authed.POST("/api/cart/decrease", b.decrease)
	authed.DELETE("/api/cart/remove/:id", b.remove)
	authed.POST("/api/cart/discount", b.discount)
	authed.GET("/api/users/addresses", b.listAddresses)
	authed.POST("/api/users/addresses", b.addAddress)
	authed.GET("/api/users/addresses/:id", b.getAddress)
	authed.PUT("/api/users/addresses/:id", b.updateAddress)
	authed.DELETE("/api/users/addresses/:id", b.deleteAddress)
	authed.PATCH("/api/users/addresses/:id/default", b.setDefaultAddress)
	authed.DELETE("/api/users/delete", b.deleteAccount)
	authed.POST("/api/orders", b.placeOrder)
	authed.GET("/api/orders/my-orders", b.myOrders)
	authed.GET("/api/orders/:id", b.getOrder)

	b.Server = httptest.NewServer(router)
	t.Cleanup(b.Server.Close)
	return b
}

// SeedProduct adds a product to the fake catalog and returns it
func (b *TestBackend) SeedProduct(p models.Product) models.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p.ID == "" {
		p.ID = fmt.Sprintf("prod-%d", b.nextID)
		b.nextID++
	}
	b.products = append(b.products, p)
	return p
}

// SeedAddress adds a saved address and returns it
func (b *TestBackend) SeedAddress(a models.Address) models.Address {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a.ID == "" {
		a.ID = fmt.Sprintf("addr-%d", b.nextID)
		b.nextID++
	}
	b.addresses = append(b.addresses, a)
	return a
}

// FailNext forces the next n requests to the given path to return 500
func (b *TestBackend) FailNext(path string, n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[path] = n
}

// RequestCount reports how many requests reached the given path
func (b *TestBackend) RequestCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requestCounts[path]
}

// IdempotencyKeys returns the keys seen on order creation, in order
func (b *TestBackend) IdempotencyKeys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.idempotencyLog...)
}

// CartItems returns a copy of the server-held cart
func (b *TestBackend) CartItems() []models.CartItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.CartItem(nil), b.cart...)
}

func (b *TestBackend) countAndFail() gin.HandlerFunc {
	return func(c *gin.Context) {
		b.mu.Lock()
		b.requestCounts[c.Request.URL.Path]++
		if n := b.failures[c.Request.URL.Path]; n > 0 {
			b.failures[c.Request.URL.Path] = n - 1
			b.mu.Unlock()
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		b.mu.Unlock()
		c.Next()
	}
}

func (b *TestBackend) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie("token")
		b.mu.Lock()
		active := b.sessionActive
		b.mu.Unlock()
		if err != nil || cookie == "" || !active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": ErrUnauthorized})
			return
		}
		c.Next()
	}
}

func (b *TestBackend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}
	b.mu.Lock()
	b.sessionActive = true
	b.mu.Unlock()
	c.SetCookie("token", "test-session", 3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": models.User{ID: "user-1", Name: "Test User", Email: req.Email}})
}

func (b *TestBackend) logout(c *gin.Context) {
	b.mu.Lock()
	b.sessionActive = false
	b.mu.Unlock()
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (b *TestBackend) profile(c *gin.Context) {
	c.JSON(http.StatusOK, models.User{ID: "user-1", Name: "Test User", Email: "test@example.com"})
}

func (b *TestBackend) uploadPicture(c *gin.Context) {
	file, err := c.FormFile("profilePicture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No picture uploaded"})
		return
	}
	c.JSON(http.StatusOK, models.User{ID: "user-1", Name: "Test User", Email: "test@example.com", ProfilePicture: file.Filename})
}

func (b *TestBackend) listProducts(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	products := b.products
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (b *TestBackend) getProduct(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.products {
		if p.ID == c.Param("id") {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
}

func (b *TestBackend) cartJSON() models.Cart {
	items := append([]models.CartItem(nil), b.cart...)
	if items == nil {
		items = []models.CartItem{}
	}
	return models.Cart{Items: items}
}

func (b *TestBackend) getCart(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, b.cartJSON())
}

func (b *TestBackend) findProduct(id string) (models.Product, bool) {
	for _, p := range b.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (b *TestBackend) addToCart(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	product, ok := b.findProduct(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	for i := range b.cart {
		if b.cart[i].Product.ID == req.ProductID {
			b.cart[i].Quantity += req.Quantity
			c.JSON(http.StatusOK, b.cartJSON())
			return
		}
	}
	b.cart = append(b.cart, models.CartItem{Product: product, Quantity: req.Quantity})
	c.JSON(http.StatusOK, b.cartJSON())
}

func (b *TestBackend) increase(c *gin.Context) {
	b.adjust(c, 1)
}

func (b *TestBackend) decrease(c *gin.Context) {
	b.adjust(c, -1)
}

func (b *TestBackend) adjust(c *gin.Context, delta int) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.cart {
		if b.cart[i].Product.ID == req.ProductID {
			if b.cart[i].Quantity+delta < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity cannot go below 1"})
				return
			}
			b.cart[i].Quantity += delta
			c.JSON(http.StatusOK, b.cartJSON())
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Item not in cart"})
}

func (b *TestBackend) remove(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.cart {
		if b.cart[i].Product.ID == c.Param("id") {
			b.cart = append(b.cart[:i], b.cart[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"cart": b.cartJSON()})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Item not in cart"})
}

func (b *TestBackend) discount(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"applied": b.discountCodes[req.Code]})
}

func (b *TestBackend) listAddresses(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	addresses := b.addresses
	if addresses == nil {
		addresses = []models.Address{}
	}
	c.JSON(http.StatusOK, addresses)
}

func (b *TestBackend) addAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	addr.ID = fmt.Sprintf("addr-%d", b.nextID)
	b.nextID++
	b.addresses = append(b.addresses, addr)
	c.JSON(http.StatusCreated, addr)
}

func (b *TestBackend) findAddress(id string) int {
	for i := range b.addresses {
		if b.addresses[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *TestBackend) getAddress(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.findAddress(c.Param("id")); i >= 0 {
		c.JSON(http.StatusOK, b.addresses[i])
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
}

func (b *TestBackend) updateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findAddress(c.Param("id"))
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
		return
	}
	addr.ID = b.addresses[i].ID
	b.addresses[i] = addr
	c.JSON(http.StatusOK, addr)
}

func (b *TestBackend) deleteAddress(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findAddress(c.Param("id"))
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
		return
	}
	b.addresses = append(b.addresses[:i], b.addresses[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}

func (b *TestBackend) setDefaultAddress(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findAddress(c.Param("id"))
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
		return
	}
	for j := range b.addresses {
		b.addresses[j].IsDefault = j == i
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default address updated"})
}

func (b *TestBackend) deleteAccount(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessionActive = false
	b.cart = nil
	b.addresses = nil
	b.orders = nil
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

func (b *TestBackend) placeOrder(c *gin.Context) {
	var req struct {
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.idempotencyLog = append(b.idempotencyLog, c.GetHeader("Idempotency-Key"))

	if len(b.cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot place order with empty cart"})
		return
	}

	var subtotal float64
	var items []models.OrderItem
	for _, item := range b.cart {
		subtotal += item.Product.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}
	var discount float64
	if subtotal > OrderDiscountThreshold {
		discount = OrderDiscountAmount
	}

	order := models.Order{
		ID:              fmt.Sprintf("order-%d", b.nextID),
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		Subtotal:        subtotal,
		DeliveryCharge:  DeliveryCharge,
		TotalAmount:     subtotal + DeliveryCharge - discount,
		Status:          models.OrderStatusProcessing,
		PaymentStatus:   "pending",
		CreatedAt:       time.Now(),
	}
	b.nextID++
	b.orders = append(b.orders, order)
	b.cart = nil

	resp := gin.H{
		"_id":             order.ID,
		"items":           order.Items,
		"shippingAddress": order.ShippingAddress,
		"subtotal":        order.Subtotal,
		"deliveryCharge":  order.DeliveryCharge,
		"totalAmount":     order.TotalAmount,
		"status":          order.Status,
		"paymentStatus":   order.PaymentStatus,
		"createdAt":       order.CreatedAt,
	}
	if b.PaymentLink != "" {
		resp["paymentLink"] = b.PaymentLink
	}
	c.JSON(http.StatusCreated, resp)
}

func (b *TestBackend) myOrders(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	orders := b.orders
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (b *TestBackend) getOrder(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range b.orders {
		if o.ID == c.Param("id") {
			c.JSON(http.StatusOK, o)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
}
