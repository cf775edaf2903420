package store

import (
	"bytes"
	"fmt"

	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
	"github.com/jung-kurt/gofpdf"
)

// OrderReceiptPDF renders a local receipt for a placed order. The order is
// read back from the backend; the receipt is generated entirely client-side.
func OrderReceiptPDF(order *models.Order) ([]byte, error) {
	utils.LogInfo("Generating receipt for order %s", order.ID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "EZKit")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "DIY electronics kits for every skill level")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@ezkit.shop")
	pdf.Ln(12)

	// Receipt title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "ORDER RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(70, 8, "Order ID: "+order.ID)
	pdf.Cell(60, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(70, 8, "Status: "+utils.Title(order.Status))
	pdf.Cell(60, 8, "Payment: "+utils.Title(order.PaymentStatus))
	pdf.Ln(10)

	// Shipping info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Shipping Address:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, order.ShippingAddress.AddressLine1)
	pdf.Ln(6)
	if order.ShippingAddress.AddressLine2 != "" {
		pdf.Cell(100, 8, order.ShippingAddress.AddressLine2)
		pdf.Ln(6)
	}
	if order.ShippingAddress.Landmark != "" {
		pdf.Cell(100, 8, "Landmark: "+order.ShippingAddress.Landmark)
		pdf.Ln(6)
	}
	pdf.Cell(100, 8, order.ShippingAddress.City+", "+order.ShippingAddress.State+" - "+order.ShippingAddress.Pincode)
	pdf.Ln(6)
	pdf.Cell(100, 8, order.ShippingAddress.Country)
	pdf.Ln(10)

	// Items table header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.CellFormat(70, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary section
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Subtotal), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Delivery:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.DeliveryCharge), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(120, 10, "Grand Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f", order.TotalAmount), "", 1, "R", false, 0, "")

	// Thank you note
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for shopping with EZKit!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate receipt PDF: %v", err)
		return nil, utils.WrapError(err, "failed to generate receipt")
	}
	utils.LogInfo("Receipt generated for order %s", order.ID)
	return buf.Bytes(), nil
}
