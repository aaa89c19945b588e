package controllers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

func reportWindow(period string, now time.Time) (time.Time, time.Time, bool) {
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, true
	case "month":
		return now.AddDate(0, 0, -30).Truncate(24 * time.Hour), now.Add(24 * time.Hour), true
	}
	return time.Time{}, time.Time{}, false
}

// ExportOrdersExcel streams an Excel workbook of orders for the requested
// period, with a summary block at the bottom.
func ExportOrdersExcel(c *gin.Context) {
	utils.LogInfo("ExportOrdersExcel called")

	period := c.DefaultQuery("period", "day")
	startDate, endDate, ok := reportWindow(period, time.Now())
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var orders []models.Order
	query := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("Items").
		Order("created_at DESC")
	if err := query.Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d orders for Excel export", len(orders))

	var summary struct {
		TotalOrders     int
		TotalRevenue    float64
		TotalItems      int
		TotalCustomers  int
		TotalDiscounts  float64
		PaidOrders      int
		AverageOrderVal float64
	}
	customerSet := make(map[string]bool)
	for _, order := range orders {
		summary.TotalOrders++
		summary.TotalRevenue += order.Total
		summary.TotalDiscounts += order.Discount
		customerSet[order.CustomerEmail] = true
		for _, item := range order.Items {
			summary.TotalItems += item.Quantity
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			summary.PaidOrders++
		}
	}
	summary.TotalCustomers = len(customerSet)
	if summary.TotalOrders > 0 {
		summary.AverageOrderVal = math.Round((summary.TotalRevenue/float64(summary.TotalOrders))*100) / 100
	}
	summary.TotalRevenue = math.Round(summary.TotalRevenue*100) / 100
	summary.TotalDiscounts = math.Round(summary.TotalDiscounts*100) / 100

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	// Company details
	row := sheet.AddRow()
	row.AddCell().SetString("ARTISANCART - Orders Report")
	row = sheet.AddRow()
	row.AddCell().SetString("42 Atelier Lane")
	row = sheet.AddRow()
	row.AddCell().SetString("Email: hello@artisancart.shop")
	row = sheet.AddRow()
	row.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	headers := []string{"Order #", "Date", "Customer", "Email", "Items", "Subtotal", "Discount", "Shipping", "Tax", "Total", "Status", "Payment"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, order := range orders {
		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		row := sheet.AddRow()
		row.AddCell().SetString(order.OrderNumber)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(order.CustomerName)
		row.AddCell().SetString(order.CustomerEmail)
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.Discount)
		row.AddCell().SetFloat(order.ShippingCost)
		row.AddCell().SetFloat(order.Tax)
		row.AddCell().SetFloat(order.Total)
		row.AddCell().SetString(order.Status)
		row.AddCell().SetString(order.PaymentStatus)
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Paid Orders", fmt.Sprintf("%d", summary.PaidOrders)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Items", fmt.Sprintf("%d", summary.TotalItems)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"Total Discounts", fmt.Sprintf("%.2f", summary.TotalDiscounts)},
		{"Avg. Order Value", fmt.Sprintf("%.2f", summary.AverageOrderVal)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_report_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel report for period %s", period)
}
