package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/utils"
)

// DownloadInvoice renders the order's invoice as a PDF attachment. Visibility
// follows GetOrderDetails: owners always, staff when they can view orders.
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	user, ok := requestUser(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}

	order, found := findOrderForViewer(c, user)
	if !found {
		return
	}

	pdfBytes, err := utils.BuildInvoicePDF(order, order.Items)
	if err != nil {
		utils.LogError("Failed to render invoice for order %s: %v", order.OrderNumber, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	utils.LogInfo("Invoice generated for order %s (%d bytes)", order.OrderNumber, len(pdfBytes))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.OrderNumber))
	c.Data(200, "application/pdf", pdfBytes)
}
