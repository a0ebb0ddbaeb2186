package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/errs"
	"github.com/financeflowpro/backend/internal/models"
	"github.com/financeflowpro/backend/pkg/helpers"
)

type stubTransactionStore struct {
	existing *models.Transaction

	created      *models.Transaction
	updated      *models.Transaction
	updatedRefID string
	deletedRefID string
	getErr       error
	createErr    error
}

func (s *stubTransactionStore) List(ctx context.Context) ([]models.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionStore) Get(ctx context.Context, refID string) (*models.Transaction, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.existing, nil
}

func (s *stubTransactionStore) Create(ctx context.Context, tx *models.Transaction) (string, error) {
	s.created = tx
	return "ref-new", s.createErr
}

func (s *stubTransactionStore) Update(ctx context.Context, refID string, tx *models.Transaction) error {
	s.updatedRefID = refID
	s.updated = tx
	return nil
}

func (s *stubTransactionStore) Delete(ctx context.Context, refID string) error {
	s.deletedRefID = refID
	return nil
}

func TestTransactionSaveSignsExpense(t *testing.T) {
	store := &stubTransactionStore{}
	svc := NewTransactionService(store)

	tx, err := svc.Save(helpers.TestCtx(), dto.SaveTransactionRequest{
		Date:        "2025-02-01",
		Description: "Office chairs",
		Amount:      500,
		Category:    models.CategoryPurchase,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if tx.Amount != -500 {
		t.Errorf("amount = %v, want -500 (expenses store the negated magnitude)", tx.Amount)
	}
	if !strings.HasPrefix(tx.TransactionID, "TXN-") {
		t.Errorf("transaction id %q missing TXN- prefix", tx.TransactionID)
	}
	if store.created == nil {
		t.Fatal("store.Create was not called")
	}
}

func TestTransactionSaveSignsIncome(t *testing.T) {
	svc := NewTransactionService(&stubTransactionStore{})

	// The client may send either sign; the category decides.
	tx, err := svc.Save(helpers.TestCtx(), dto.SaveTransactionRequest{
		Date:     "2025-02-01",
		Amount:   -500,
		Category: models.CategoryMiscIncome,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if tx.Amount != 500 {
		t.Errorf("amount = %v, want +500 for Miscellaneous Income", tx.Amount)
	}
}

func TestTransactionSaveUnknownCategoryFallsBack(t *testing.T) {
	svc := NewTransactionService(&stubTransactionStore{})

	tx, err := svc.Save(helpers.TestCtx(), dto.SaveTransactionRequest{
		Date:     "2025-02-01",
		Amount:   75,
		Category: "Consulting",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if tx.Category != models.CategoryMiscExpense {
		t.Errorf("category = %s, want Miscellaneous Expense fallback", tx.Category)
	}
	if tx.Amount != -75 {
		t.Errorf("amount = %v, want -75 (fallback category is an expense)", tx.Amount)
	}
}

func TestTransactionSaveRequiresDate(t *testing.T) {
	svc := NewTransactionService(&stubTransactionStore{})

	_, err := svc.Save(helpers.TestCtx(), dto.SaveTransactionRequest{Amount: 10})
	var vErr *errs.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}

func TestTransactionSaveUpdateKeepsCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &stubTransactionStore{existing: &models.Transaction{
		TransactionID: "TXN-1709251200000",
		CreatedAt:     createdAt,
	}}
	svc := NewTransactionService(store)

	tx, err := svc.Save(helpers.TestCtx(), dto.SaveTransactionRequest{
		TransactionID: "TXN-1709251200000",
		RefID:         "ref-3",
		Date:          "2025-02-01",
		Amount:        20,
		Category:      models.CategoryAllowance,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if store.updatedRefID != "ref-3" {
		t.Errorf("updated refId = %q, want ref-3", store.updatedRefID)
	}
	if !tx.CreatedAt.Equal(createdAt) {
		t.Errorf("createdAt = %v, want preserved %v", tx.CreatedAt, createdAt)
	}
}

func TestTransactionSaveUpdateWithoutIDKeepsExisting(t *testing.T) {
	store := &stubTransactionStore{existing: &models.Transaction{
		TransactionID: "TXN-1709251200000",
	}}
	svc := NewTransactionService(store)

	tx, err := svc.Save(helpers.TestCtx(), dto.SaveTransactionRequest{
		RefID:    "ref-3",
		Date:     "2025-02-01",
		Amount:   20,
		Category: models.CategoryAllowance,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if tx.TransactionID != "TXN-1709251200000" {
		t.Fatalf("transaction id = %q, want the stored id when the payload omits one", tx.TransactionID)
	}
}

func TestSignedAmount(t *testing.T) {
	cases := []struct {
		category models.TransactionCategory
		in, want float64
	}{
		{models.CategoryMiscIncome, 500, 500},
		{models.CategoryMiscIncome, -500, 500},
		{models.CategoryPurchase, 500, -500},
		{models.CategoryEmployeePayment, -500, -500},
		{models.CategoryMiscExpense, 0, 0},
	}
	for _, tc := range cases {
		if got := SignedAmount(tc.category, tc.in); got != tc.want {
			t.Errorf("SignedAmount(%s, %v) = %v, want %v", tc.category, tc.in, got, tc.want)
		}
	}
}
