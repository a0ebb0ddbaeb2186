package services

import (
	"context"
	"math"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/pkg/logger"
)

type transactionTSStore interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, refID string) (*models.Transaction, error)
	Create(ctx context.Context, tx *models.Transaction) (string, error)
	Update(ctx context.Context, refID string, tx *models.Transaction) error
	Delete(ctx context.Context, refID string) error
}

type transactionService struct {
	store transactionTSStore
}

func NewTransactionService(store transactionTSStore) *transactionService {
	return &transactionService{store: store}
}

func (s *transactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.store.List(ctx)
}

// Save creates or updates a transaction. Unknown categories fall back to
// Miscellaneous Expense, and the stored amount is signed by category: the
// income category keeps the positive magnitude, everything else stores the
// negated magnitude.
func (s *transactionService) Save(ctx context.Context, req dto.SaveTransactionRequest) (*models.Transaction, error) {
	log := logger.FromContext(ctx)

	if req.Date == "" {
		return nil, errs.NewValidationError("date is required")
	}
	category := models.NormalizeCategory(req.Category)

	tx := &models.Transaction{
		TransactionID: req.TransactionID,
		Date:          req.Date,
		Description:   req.Description,
		Notes:         req.Notes,
		Amount:        SignedAmount(category, req.Amount),
		Category:      category,
	}
	if req.RefID == "" {
		if tx.TransactionID == "" {
			tx.TransactionID = newRecordID("TXN")
		}
		if _, err := s.store.Create(ctx, tx); err != nil {
			log.Error("failed to create transaction", "error", err)
			return nil, err
		}
		log.Info("transaction created", "transaction_id", tx.TransactionID, "category", category)
	} else {
		existing, err := s.store.Get(ctx, req.RefID)
		if err != nil {
			return nil, err
		}
		// A payload without the id keeps the stored one.
		if tx.TransactionID == "" {
			tx.TransactionID = existing.TransactionID
		}
		tx.CreatedAt = existing.CreatedAt
		if err := s.store.Update(ctx, req.RefID, tx); err != nil {
			log.Error("failed to update transaction", "error", err)
			return nil, err
		}
		log.Info("transaction updated", "transaction_id", tx.TransactionID)
	}
	return tx, nil
}

func (s *transactionService) Delete(ctx context.Context, refID string) error {
	return s.store.Delete(ctx, refID)
}

// SignedAmount applies the category sign convention to an entered magnitude.
func SignedAmount(category models.TransactionCategory, amount float64) float64 {
	magnitude := math.Abs(amount)
	if category == models.CategoryMiscIncome {
		return magnitude
	}
	return -magnitude
}
