package services

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/pkg/logger"
)

type invoiceISStore interface {
	List(ctx context.Context) ([]models.Invoice, error)
	Get(ctx context.Context, refID string) (*models.Invoice, error)
	Create(ctx context.Context, inv *models.Invoice) (string, error)
	Update(ctx context.Context, refID string, inv *models.Invoice) error
	UpdateStatus(ctx context.Context, refID string, st models.InvoiceStatus) error
	Delete(ctx context.Context, refID string) error
}

type invoiceService struct {
	store invoiceISStore
}

func NewInvoiceService(store invoiceISStore) *invoiceService {
	return &invoiceService{store: store}
}

func (s *invoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return s.store.List(ctx)
}

// Save creates or updates an invoice. A request without a RefID is a create
// and gets a fresh "INV-" id; a request with one replaces the stored record.
// Totals are always recomputed so grandTotal == subtotal + both tax amounts
// at save time.
func (s *invoiceService) Save(ctx context.Context, req dto.SaveInvoiceRequest) (*models.Invoice, error) {
	log := logger.FromContext(ctx)

	if req.ClientName == "" {
		return nil, errs.NewValidationError("clientName is required")
	}
	status := req.Status
	if status == "" {
		status = models.InvoicePending
	}
	if !models.ValidInvoiceStatus(status) {
		return nil, errs.NewValidationError("invalid invoice status: " + string(status))
	}

	items, subtotal, grandTotal := computeTotals(req.Items, req.SGSTRate, req.CGSTRate)

	inv := &models.Invoice{
		InvoiceID:       req.InvoiceID,
		OrderNo:         req.OrderNo,
		OrderID:         req.OrderID,
		ClientName:      req.ClientName,
		ClientGSTIN:     req.ClientGSTIN,
		ShippingAddress: req.ShippingAddress,
		Date:            req.Date,
		DueDate:         req.DueDate,
		Items:           items,
		Subtotal:        subtotal,
		SGSTRate:        req.SGSTRate,
		CGSTRate:        req.CGSTRate,
		GrandTotal:      grandTotal,
		Status:          status,
	}
	if req.RefID == "" {
		if inv.InvoiceID == "" {
			inv.InvoiceID = newRecordID("INV")
		}
		if _, err := s.store.Create(ctx, inv); err != nil {
			log.Error("failed to create invoice", "error", err)
			return nil, err
		}
		log.Info("invoice created", "invoice_id", inv.InvoiceID)
	} else {
		existing, err := s.store.Get(ctx, req.RefID)
		if err != nil {
			return nil, err
		}
		// A payload without the id keeps the stored one.
		if inv.InvoiceID == "" {
			inv.InvoiceID = existing.InvoiceID
		}
		inv.CreatedAt = existing.CreatedAt
		if err := s.store.Update(ctx, req.RefID, inv); err != nil {
			log.Error("failed to update invoice", "error", err)
			return nil, err
		}
		log.Info("invoice updated", "invoice_id", inv.InvoiceID)
	}
	return inv, nil
}

// UpdateStatus is the narrow path behind the status dropdown.
func (s *invoiceService) UpdateStatus(ctx context.Context, refID string, st models.InvoiceStatus) error {
	if !models.ValidInvoiceStatus(st) {
		return errs.NewValidationError("invalid invoice status: " + string(st))
	}
	return s.store.UpdateStatus(ctx, refID, st)
}

func (s *invoiceService) Delete(ctx context.Context, refID string) error {
	return s.store.Delete(ctx, refID)
}

// computeTotals rebuilds item amounts and the invoice totals with decimal
// arithmetic, rounded to 2 places. Both tax rates apply to the subtotal
// independently.
func computeTotals(items []models.InvoiceItem, sgstRate, cgstRate float64) ([]models.InvoiceItem, float64, float64) {
	subtotal := decimal.Zero
	out := make([]models.InvoiceItem, len(items))
	for i, item := range items {
		amount := decimal.NewFromFloat(item.Quantity).
			Mul(decimal.NewFromFloat(item.ListPrice)).
			Sub(decimal.NewFromFloat(item.Discount)).
			Round(2)
		item.Amount = amount.InexactFloat64()
		out[i] = item
		subtotal = subtotal.Add(amount)
	}

	hundred := decimal.NewFromInt(100)
	sgst := subtotal.Mul(decimal.NewFromFloat(sgstRate)).Div(hundred).Round(2)
	cgst := subtotal.Mul(decimal.NewFromFloat(cgstRate)).Div(hundred).Round(2)
	grand := subtotal.Add(sgst).Add(cgst).Round(2)

	return out, subtotal.InexactFloat64(), grand.InexactFloat64()
}

// newRecordID builds the human-scannable id used by the UI, e.g.
// "INV-1735689600000".
func newRecordID(prefix string) string {
	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
