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

type transactionStore struct {
	collection *firestore.CollectionRef
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{collection: client.Collection("transactions")}
}

func (s *transactionStore) List(ctx context.Context) ([]models.Transaction, error) {
	docs, err := s.collection.Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
	}
	txs := make([]models.Transaction, 0, len(docs))
	for _, d := range docs {
		var tx models.Transaction
		if err := d.DataTo(&tx); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		tx.RefID = d.Ref.ID
		txs = append(txs, tx)
	}
	return txs, nil
}

func (s *transactionStore) Get(ctx context.Context, refID string) (*models.Transaction, error) {
	doc, err := s.collection.Doc(refID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("transaction not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get transaction", err)
	}
	var tx models.Transaction
	if err := doc.DataTo(&tx); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
	}
	tx.RefID = doc.Ref.ID
	return &tx, nil
}

func (s *transactionStore) Create(ctx context.Context, tx *models.Transaction) (string, error) {
	now := time.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now

	ref := s.collection.NewDoc()
	if _, err := ref.Create(ctx, tx); err != nil {
		return "", errs.NewDatabaseError("create", "failed to create transaction", err)
	}
	tx.RefID = ref.ID
	return ref.ID, nil
}

func (s *transactionStore) Update(ctx context.Context, refID string, tx *models.Transaction) error {
	tx.UpdatedAt = time.Now()
	_, err := s.collection.Doc(refID).Set(ctx, tx)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update transaction", err)
	}
	tx.RefID = refID
	return nil
}

func (s *transactionStore) Delete(ctx context.Context, refID string) error {
	_, err := s.collection.Doc(refID).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete transaction", err)
	}
	return nil
}
