package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
)

type invoiceStore struct {
	collection *firestore.CollectionRef
}

func NewInvoiceStore(client *firestore.Client) *invoiceStore {
	return &invoiceStore{collection: client.Collection("invoices")}
}

func (s *invoiceStore) List(ctx context.Context) ([]models.Invoice, error) {
	docs, err := s.collection.Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list invoices", err)
	}
	invoices := make([]models.Invoice, 0, len(docs))
	for _, d := range docs {
		var inv models.Invoice
		if err := d.DataTo(&inv); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse invoice data", err)
		}
		inv.RefID = d.Ref.ID
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (s *invoiceStore) Get(ctx context.Context, refID string) (*models.Invoice, error) {
	doc, err := s.collection.Doc(refID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("invoice not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get invoice", err)
	}
	var inv models.Invoice
	if err := doc.DataTo(&inv); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse invoice data", err)
	}
	inv.RefID = doc.Ref.ID
	return &inv, nil
}

// Create stores the invoice under a Firestore-generated document id and
// returns it. The human-readable InvoiceID lives inside the document.
func (s *invoiceStore) Create(ctx context.Context, inv *models.Invoice) (string, error) {
	now := time.Now()
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = now

	ref := s.collection.NewDoc()
	if _, err := ref.Create(ctx, inv); err != nil {
		return "", errs.NewDatabaseError("create", "failed to create invoice", err)
	}
	inv.RefID = ref.ID
	return ref.ID, nil
}

func (s *invoiceStore) Update(ctx context.Context, refID string, inv *models.Invoice) error {
	inv.UpdatedAt = time.Now()
	_, err := s.collection.Doc(refID).Set(ctx, inv)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update invoice", err)
	}
	inv.RefID = refID
	return nil
}

// UpdateStatus changes only the status field, so the status dropdown does not
// have to re-save the whole invoice form.
func (s *invoiceStore) UpdateStatus(ctx context.Context, refID string, st models.InvoiceStatus) error {
	_, err := s.collection.Doc(refID).Update(ctx, []firestore.Update{
		{Path: "status", Value: st},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError("invoice not found")
		}
		return errs.NewDatabaseError("update", "failed to update invoice status", err)
	}
	return nil
}

func (s *invoiceStore) Delete(ctx context.Context, refID string) error {
	_, err := s.collection.Doc(refID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete invoice", err)
	}
	return nil
}
