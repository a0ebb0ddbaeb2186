package models

import (
	"time"
)

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoicePaid, InvoicePending, InvoiceOverdue:
		return true
	}
	return false
}

type InvoiceItem struct {
	Description string  `firestore:"description" json:"description"`
	Quantity    float64 `firestore:"quantity" json:"quantity"`
	Unit        string  `firestore:"unit" json:"unit,omitempty"`
	ListPrice   float64 `firestore:"listPrice" json:"listPrice"`
	Discount    float64 `firestore:"discount" json:"discount"`
	Amount      float64 `firestore:"amount" json:"amount"` // quantity*listPrice - discount
}

// Invoice is a document in the "invoices" collection. InvoiceID is the
// human-readable id shown in the UI ("INV-" + epoch millis); RefID is the
// Firestore document id and is what update/delete target.
type Invoice struct {
	InvoiceID       string        `firestore:"id" json:"id"`
	RefID           string        `firestore:"-" json:"refId,omitempty"`
	OrderNo         string        `firestore:"orderNo" json:"orderNo,omitempty"`
	OrderID         string        `firestore:"orderId" json:"orderId,omitempty"`
	ClientName      string        `firestore:"clientName" json:"clientName"`
	ClientGSTIN     string        `firestore:"clientGstin" json:"clientGstin,omitempty"`
	ShippingAddress string        `firestore:"shippingAddress" json:"shippingAddress,omitempty"`
	Date            string        `firestore:"date" json:"date"` // YYYY-MM-DD
	DueDate         string        `firestore:"dueDate" json:"dueDate"`
	Items           []InvoiceItem `firestore:"items" json:"items"`
	Subtotal        float64       `firestore:"subtotal" json:"subtotal"`
	SGSTRate        float64       `firestore:"sgstRate" json:"sgstRate"`
	CGSTRate        float64       `firestore:"cgstRate" json:"cgstRate"`
	GrandTotal      float64       `firestore:"grandTotal" json:"grandTotal"`
	Amount          float64       `firestore:"amount,omitempty" json:"amount,omitempty"` // legacy single-figure total
	Status          InvoiceStatus `firestore:"status" json:"status"`
	CreatedAt       time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `firestore:"updatedAt" json:"updatedAt"`
}

// Total returns the amount an invoice contributes to aggregates. Legacy
// records may predate the grandTotal field, so fall back to Amount.
func (inv *Invoice) Total() float64 {
	if inv.GrandTotal != 0 {
		return inv.GrandTotal
	}
	return inv.Amount
}
