package utils

// Application constants
const (
	// Application name
	AppName = "EZKit Storefront"

	// Default backend API base URL
	DefaultAPIBaseURL = "http://localhost:5000"

	// Default HTTP timeout in seconds (0 leaves the transport default)
	DefaultHTTPTimeoutSeconds = 30

	// Products shown per catalog page
	ProductsPerPage = 8

	// Flat delivery charge applied at checkout
	DeliveryCharge = 40.0

	// Subtotal above which the flat order discount kicks in
	OrderDiscountThreshold = 15000.0

	// Flat discount applied above the threshold
	OrderDiscountAmount = 1000.0

	// Fraction taken off the cart total once a discount code is accepted
	CartDiscountRate = 0.10

	// Popularity score baseline and weights
	BasePopularity          = 70
	SpecPopularityWeight    = 2
	FeaturePopularityWeight = 3
	ReviewPopularityWeight  = 5

	// Minimum password length
	MinPasswordLength = 8

	// Minimum name length
	MinNameLength = 2

	// Minimum account age in years
	MinAccountAge = 13
)

// Error messages
const (
	// Request errors
	ErrRequestFailed = "Something went wrong"
	ErrUnauthorized  = "Unauthorized access"
	ErrNotLoggedIn   = "You are not logged in"

	// Validation errors
	ErrInvalidEmail    = "Invalid email format"
	ErrInvalidPhone    = "Please enter a valid 10-digit phone number"
	ErrInvalidPincode  = "Please enter a valid 6-digit pincode"
	ErrMissingAddress  = "Please select a delivery address"
	ErrDiscountApplied = "A discount code has already been applied"
	ErrEmptyCart       = "Your cart is empty"
)

// Catalog sort orders
const (
	SortPopularity = "popularity"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
)

// Catalog categories derived from product difficulty
const (
	CategoryAll       = "all"
	CategoryIoT       = "iot"
	CategorySmartHome = "smart-home"
	CategoryRobotics  = "robotics"
)
