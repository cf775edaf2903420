package store

import (
	"bytes"
	"fmt"

	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
	"github.com/tealeg/xlsx"
)

// OrderHistoryExcel writes the user's order history to a spreadsheet for
// offline record keeping.
func OrderHistoryExcel(orders []models.Order) ([]byte, error) {
	utils.LogInfo("Exporting %d orders to Excel", len(orders))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Order History")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		return nil, utils.WrapError(err, "failed to create sheet")
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("EZKIT - Order History")
	sheet.AddRow() // spacing

	headers := []string{"Order ID", "Date", "Items", "Subtotal", "Delivery", "Total", "Status", "Payment"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	var grandTotal float64
	for _, order := range orders {
		var itemCount int
		for _, item := range order.Items {
			itemCount += item.Quantity
		}

		row := sheet.AddRow()
		row.AddCell().SetString(order.ID)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02"))
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetString(fmt.Sprintf("%.2f", order.Subtotal))
		row.AddCell().SetString(fmt.Sprintf("%.2f", order.DeliveryCharge))
		row.AddCell().SetString(fmt.Sprintf("%.2f", order.TotalAmount))
		row.AddCell().SetString(order.Status)
		row.AddCell().SetString(order.PaymentStatus)
		grandTotal += order.TotalAmount
	}

	sheet.AddRow() // spacing
	totalRow := sheet.AddRow()
	totalRow.AddCell().SetString("Total spent")
	for i := 0; i < 4; i++ {
		totalRow.AddCell()
	}
	totalRow.AddCell().SetString(fmt.Sprintf("%.2f", grandTotal))

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel export: %v", err)
		return nil, utils.WrapError(err, "failed to write export")
	}
	utils.LogInfo("Order history export complete")
	return buf.Bytes(), nil
}
