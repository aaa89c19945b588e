package utils

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/mvidal-dev/ArtisanCart/models"
)

// Company block printed on every invoice.
const (
	invoiceCompanyName    = "ArtisanCart"
	invoiceCompanyAddress = "Calle Mayor 12, 28013 Madrid"
	invoiceCompanyContact = "Email: support@artisancart.shop | Phone: +34 910 000 000"
)

const invoicePageBreakAt = 250.0 // mm; below this the item table starts a new page

// BuildInvoicePDF renders the invoice for an order and its line items. Output
// depends only on the inputs: document dates are pinned to the order's
// creation time so identical input produces identical bytes.
func BuildInvoicePDF(order models.Order, items []models.OrderItem) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(order.CreatedAt)
	pdf.SetModificationDate(order.CreatedAt)
	pdf.AddPage()

	// Header band
	pageW, _ := pdf.GetPageSize()
	pdf.SetFillColor(135, 91, 59)
	pdf.Rect(0, 0, pageW, 34, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 18)
	pdf.SetXY(10, 8)
	pdf.Cell(100, 10, invoiceCompanyName)
	pdf.SetFont("Arial", "", 10)
	pdf.SetXY(10, 18)
	pdf.Cell(120, 6, invoiceCompanyAddress)
	pdf.SetXY(10, 24)
	pdf.Cell(120, 6, invoiceCompanyContact)

	pdf.SetTextColor(45, 38, 56)
	pdf.SetXY(10, 42)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Order: "+order.OrderNumber, "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+order.CreatedAt.Format("2006-01-02"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Billing and shipping blocks
	billing := models.ParseAddress(order.BillingAddress)
	shipping := models.ParseAddress(order.ShippingAddress)
	blockY := pdf.GetY()
	writeAddressBlock(pdf, 10, blockY, "Billed to:", billing, order)
	writeAddressBlock(pdf, 110, blockY, "Shipped to:", shipping, order)
	pdf.SetY(blockY + 42)

	// Item table
	writeItemTableHeader(pdf)
	pdf.SetFont("Arial", "", 10)
	for _, item := range items {
		if pdf.GetY() > invoicePageBreakAt {
			pdf.AddPage()
			writeItemTableHeader(pdf)
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(100, 8, item.ProductTitle, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Subtotal), "1", 1, "R", false, 0, "")
	}

	// Totals
	pdf.Ln(4)
	writeTotalLine(pdf, "Subtotal:", order.Subtotal, false)
	writeTotalLine(pdf, "Shipping:", order.ShippingCost, false)
	writeTotalLine(pdf, "Tax:", order.Tax, false)
	if order.Discount > 0 {
		writeTotalLine(pdf, "Discount:", -order.Discount, false)
	}
	writeTotalLine(pdf, "Total:", order.Total, true)

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 8, "Thank you for your purchase. Questions about this invoice? Contact support@artisancart.shop")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice for %s: %v", order.OrderNumber, err)
	}
	return buf.Bytes(), nil
}

func writeAddressBlock(pdf *gofpdf.Fpdf, x, y float64, title string, addr models.Address, order models.Order) {
	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(90, 6, title)
	pdf.SetFont("Arial", "", 10)
	lines := addr.Lines()
	if len(lines) == 0 {
		lines = []string{order.CustomerName, order.CustomerEmail}
	}
	offset := y + 7
	for _, line := range lines {
		pdf.SetXY(x, offset)
		pdf.Cell(90, 5, line)
		offset += 5
	}
}

func writeItemTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(168, 132, 83)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(100, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", true, 0, "")
	pdf.SetTextColor(45, 38, 56)
}

func writeTotalLine(pdf *gofpdf.Fpdf, label string, amount float64, emphasized bool) {
	if emphasized {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(155, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", amount), "", 1, "R", false, 0, "")
}
