package dto

import (
	"github.com/financeflowpro/backend/internal/models"
)

// SaveTransactionRequest carries the entered magnitude; the service applies
// the category sign convention before persisting.
type SaveTransactionRequest struct {
	TransactionID string                     `json:"id"`
	RefID         string                     `json:"refId"`
	Date          string                     `json:"date"`
	Description   string                     `json:"description"`
	Notes         string                     `json:"notes"`
	Amount        float64                    `json:"amount"`
	Category      models.TransactionCategory `json:"category"`
}
