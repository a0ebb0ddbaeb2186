package dto

import (
	"github.com/financeflowpro/backend/internal/models"
)

// SaveInvoiceRequest is the full invoice form payload. Item amounts, the
// subtotal and the grand total are recomputed server-side; client-supplied
// figures are ignored.
type SaveInvoiceRequest struct {
	InvoiceID       string               `json:"id"`
	RefID           string               `json:"refId"`
	OrderNo         string               `json:"orderNo"`
	OrderID         string               `json:"orderId"`
	ClientName      string               `json:"clientName"`
	ClientGSTIN     string               `json:"clientGstin"`
	ShippingAddress string               `json:"shippingAddress"`
	Date            string               `json:"date"`
	DueDate         string               `json:"dueDate"`
	Items           []models.InvoiceItem `json:"items"`
	SGSTRate        float64              `json:"sgstRate"`
	CGSTRate        float64              `json:"cgstRate"`
	Status          models.InvoiceStatus `json:"status"`
}

type UpdateInvoiceStatusRequest struct {
	Status models.InvoiceStatus `json:"status"`
}
