package models

import (
	"time"
)

type TransactionCategory string

const (
	CategoryEmployeePayment TransactionCategory = "Employee Payment"
	CategoryAllowance       TransactionCategory = "Allowance"
	CategoryReimbursement   TransactionCategory = "Reimbursement"
	CategoryPurchase        TransactionCategory = "Purchase"
	CategoryVendorPayment   TransactionCategory = "Vendor Payment"
	CategoryMiscIncome      TransactionCategory = "Miscellaneous Income"
	CategoryMiscExpense     TransactionCategory = "Miscellaneous Expense"
)

// Categories returns the fixed category set in display order.
func Categories() []TransactionCategory {
	return []TransactionCategory{
		CategoryEmployeePayment,
		CategoryAllowance,
		CategoryReimbursement,
		CategoryPurchase,
		CategoryVendorPayment,
		CategoryMiscIncome,
		CategoryMiscExpense,
	}
}

func ValidCategory(c TransactionCategory) bool {
	switch c {
	case CategoryEmployeePayment, CategoryAllowance, CategoryReimbursement,
		CategoryPurchase, CategoryVendorPayment, CategoryMiscIncome,
		CategoryMiscExpense:
		return true
	}
	return false
}

// NormalizeCategory maps unknown categories to Miscellaneous Expense.
func NormalizeCategory(c TransactionCategory) TransactionCategory {
	if ValidCategory(c) {
		return c
	}
	return CategoryMiscExpense
}

// Transaction is a document in the "transactions" collection. TransactionID
// is the human-readable id ("TXN-" + epoch millis); RefID is the Firestore
// document id. Amount is signed: Miscellaneous Income stores the positive
// magnitude, every other category stores the negated magnitude.
type Transaction struct {
	TransactionID string              `firestore:"id" json:"id"`
	RefID         string              `firestore:"-" json:"refId,omitempty"`
	Date          string              `firestore:"date" json:"date"` // YYYY-MM-DD
	Description   string              `firestore:"description" json:"description"`
	Notes         string              `firestore:"notes" json:"notes,omitempty"`
	Amount        float64             `firestore:"amount" json:"amount"`
	Category      TransactionCategory `firestore:"category" json:"category"`
	CreatedAt     time.Time           `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `firestore:"updatedAt" json:"updatedAt"`
}
