package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/financeflowpro/backend/internal/config"
	"github.com/financeflowpro/backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	Config          *config.Config
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	UserSvc         UserService
	InvoiceSvc      InvoiceService
	TransactionSvc  TransactionService
	MetricsSvc      MetricsService
}
