package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/pkg/helpers"
)

type stubInvoiceStore struct {
	invoices []models.Invoice
	existing *models.Invoice

	created       *models.Invoice
	updated       *models.Invoice
	updatedRefID  string
	statusRefID   string
	status        models.InvoiceStatus
	deletedRefID  string
	getErr        error
	listErr       error
	createErr     error
	updateErr     error
	deleteErr     error
	updateStatErr error
}

func (s *stubInvoiceStore) List(ctx context.Context) ([]models.Invoice, error) {
	return s.invoices, s.listErr
}

func (s *stubInvoiceStore) Get(ctx context.Context, refID string) (*models.Invoice, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.existing, nil
}

func (s *stubInvoiceStore) Create(ctx context.Context, inv *models.Invoice) (string, error) {
	s.created = inv
	return "ref-new", s.createErr
}

func (s *stubInvoiceStore) Update(ctx context.Context, refID string, inv *models.Invoice) error {
	s.updatedRefID = refID
	s.updated = inv
	return s.updateErr
}

func (s *stubInvoiceStore) UpdateStatus(ctx context.Context, refID string, st models.InvoiceStatus) error {
	s.statusRefID = refID
	s.status = st
	return s.updateStatErr
}

func (s *stubInvoiceStore) Delete(ctx context.Context, refID string) error {
	s.deletedRefID = refID
	return s.deleteErr
}

func TestInvoiceSaveCreate(t *testing.T) {
	store := &stubInvoiceStore{}
	svc := NewInvoiceService(store)

	inv, err := svc.Save(helpers.TestCtx(), dto.SaveInvoiceRequest{
		ClientName: "Acme Traders",
		Date:       "2025-01-15",
		Items: []models.InvoiceItem{
			{Description: "Widgets", Quantity: 2, ListPrice: 100, Discount: 10},
		},
		SGSTRate: 9,
		CGSTRate: 9,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if store.created == nil {
		t.Fatal("store.Create was not called")
	}
	if !strings.HasPrefix(inv.InvoiceID, "INV-") {
		t.Errorf("invoice id %q missing INV- prefix", inv.InvoiceID)
	}
	if inv.Status != models.InvoicePending {
		t.Errorf("status = %s, want default Pending", inv.Status)
	}
	if inv.Items[0].Amount != 190 {
		t.Errorf("item amount = %v, want 190", inv.Items[0].Amount)
	}
	if inv.Subtotal != 190 {
		t.Errorf("subtotal = %v, want 190", inv.Subtotal)
	}
	if want := 224.20; math.Abs(inv.GrandTotal-want) > 1e-9 {
		t.Errorf("grandTotal = %v, want %v", inv.GrandTotal, want)
	}
}

func TestInvoiceSaveUpdateKeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store := &stubInvoiceStore{existing: &models.Invoice{
		InvoiceID: "INV-1717200000000",
		CreatedAt: createdAt,
	}}
	svc := NewInvoiceService(store)

	inv, err := svc.Save(helpers.TestCtx(), dto.SaveInvoiceRequest{
		InvoiceID:  "INV-1717200000000",
		RefID:      "ref-1",
		ClientName: "Acme Traders",
		Status:     models.InvoicePaid,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if store.created != nil {
		t.Fatal("update must not create a new document")
	}
	if store.updatedRefID != "ref-1" {
		t.Errorf("updated refId = %q, want ref-1", store.updatedRefID)
	}
	if !inv.CreatedAt.Equal(createdAt) {
		t.Errorf("createdAt = %v, want preserved %v", inv.CreatedAt, createdAt)
	}
	if inv.InvoiceID != "INV-1717200000000" {
		t.Errorf("invoice id changed on update: %q", inv.InvoiceID)
	}
}

func TestInvoiceSaveUpdateWithoutIDKeepsExisting(t *testing.T) {
	store := &stubInvoiceStore{existing: &models.Invoice{
		InvoiceID: "INV-1717200000000",
	}}
	svc := NewInvoiceService(store)

	inv, err := svc.Save(helpers.TestCtx(), dto.SaveInvoiceRequest{
		RefID:      "ref-1",
		ClientName: "Acme Traders",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if inv.InvoiceID != "INV-1717200000000" {
		t.Fatalf("invoice id = %q, want the stored id when the payload omits one", inv.InvoiceID)
	}
}

func TestInvoiceSaveValidation(t *testing.T) {
	svc := NewInvoiceService(&stubInvoiceStore{})

	_, err := svc.Save(helpers.TestCtx(), dto.SaveInvoiceRequest{})
	var vErr *errs.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("missing clientName: got %v, want ValidationError", err)
	}

	_, err = svc.Save(helpers.TestCtx(), dto.SaveInvoiceRequest{
		ClientName: "Acme",
		Status:     "Cancelled",
	})
	if !errors.As(err, &vErr) {
		t.Fatalf("bad status: got %v, want ValidationError", err)
	}
}

func TestInvoiceUpdateStatus(t *testing.T) {
	store := &stubInvoiceStore{}
	svc := NewInvoiceService(store)

	if err := svc.UpdateStatus(helpers.TestCtx(), "ref-9", models.InvoicePaid); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if store.statusRefID != "ref-9" || store.status != models.InvoicePaid {
		t.Errorf("store received (%q, %s), want (ref-9, Paid)", store.statusRefID, store.status)
	}

	var vErr *errs.ValidationError
	if err := svc.UpdateStatus(helpers.TestCtx(), "ref-9", "Void"); !errors.As(err, &vErr) {
		t.Fatalf("bad status: got %v, want ValidationError", err)
	}
}

func TestInvoiceDeletePassesThrough(t *testing.T) {
	store := &stubInvoiceStore{deleteErr: errs.NewDatabaseError("delete", "failed to delete invoice", context.DeadlineExceeded)}
	svc := NewInvoiceService(store)

	err := svc.Delete(helpers.TestCtx(), "ref-2")
	var dbErr *errs.DatabaseError
	if !errors.As(err, &dbErr) {
		t.Fatalf("got %v, want DatabaseError", err)
	}
	if store.deletedRefID != "ref-2" {
		t.Errorf("deleted refId = %q, want ref-2", store.deletedRefID)
	}
}

func TestComputeTotalsRounding(t *testing.T) {
	items, subtotal, grand := computeTotals([]models.InvoiceItem{
		{Quantity: 3, ListPrice: 33.335},
	}, 2.5, 2.5)

	if items[0].Amount != 100.01 {
		t.Errorf("item amount = %v, want 100.01", items[0].Amount)
	}
	if subtotal != 100.01 {
		t.Errorf("subtotal = %v, want 100.01", subtotal)
	}
	// 2.5% of 100.01 is 2.50025, rounded to 2.50 per side.
	if grand != 105.01 {
		t.Errorf("grandTotal = %v, want 105.01", grand)
	}
}
