package store

import (
	"testing"
	"time"

	"github.com/ezkit-shop/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() models.Order {
	return models.Order{
		ID: "order-42",
		Items: []models.OrderItem{
			{ProductID: "prod-1", Name: "Arduino Starter Kit", Price: 1999, Quantity: 2},
			{ProductID: "prod-2", Name: "Sensor Pack", Price: 799, Quantity: 1},
		},
		ShippingAddress: models.ShippingAddress{
			AddressLine1: "12 MG Road",
			City:         "Bengaluru",
			State:        "Karnataka",
			Pincode:      "560001",
			Country:      "India",
		},
		Subtotal:       4797,
		DeliveryCharge: 40,
		TotalAmount:    4837,
		Status:         models.OrderStatusDelivered,
		PaymentStatus:  "paid",
		CreatedAt:      time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestOrderReceiptPDF(t *testing.T) {
	order := sampleOrder()
	data, err := OrderReceiptPDF(&order)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestOrderHistoryExcel(t *testing.T) {
	data, err := OrderHistoryExcel([]models.Order{sampleOrder()})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// xlsx files are zip archives
	assert.Equal(t, "PK", string(data[:2]))
}

func TestOrderHistoryExcelEmpty(t *testing.T) {
	data, err := OrderHistoryExcel(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
