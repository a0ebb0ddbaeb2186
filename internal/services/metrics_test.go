package services

import (
	"math"
	"reflect"
	"testing"

	"github.com/financeflowpro/backend/internal/dto"
	"github.com/financeflowpro/backend/internal/models"
)

func TestComputeSnapshotFigures(t *testing.T) {
	invoices := []models.Invoice{
		{InvoiceID: "INV-1", GrandTotal: 1000, Status: models.InvoicePaid},
	}
	txs := []models.Transaction{
		{TransactionID: "TXN-1", Amount: -300, Category: models.CategoryPurchase},
	}

	snap := ComputeSnapshot(invoices, txs)

	for _, period := range []struct {
		name string
		ps   dto.PeriodSnapshot
	}{
		{"daily", snap.Daily},
		{"weekly", snap.Weekly},
		{"monthly", snap.Monthly},
	} {
		if period.ps.Revenue != 1000 {
			t.Errorf("%s revenue = %v, want 1000", period.name, period.ps.Revenue)
		}
		if period.ps.Outstanding != 0 {
			t.Errorf("%s outstanding = %v, want 0", period.name, period.ps.Outstanding)
		}
		if period.ps.TotalExpenses != 300 {
			t.Errorf("%s totalExpenses = %v, want 300", period.name, period.ps.TotalExpenses)
		}
		if period.ps.NetProfit != 700 {
			t.Errorf("%s netProfit = %v, want 700", period.name, period.ps.NetProfit)
		}
	}
}

func TestComputeSnapshotOutstandingCoversEveryUnpaidStatus(t *testing.T) {
	invoices := []models.Invoice{
		{GrandTotal: 100, Status: models.InvoicePaid},
		{GrandTotal: 250, Status: models.InvoicePending},
		{GrandTotal: 400, Status: models.InvoiceOverdue},
	}

	snap := ComputeSnapshot(invoices, nil)

	if snap.Monthly.Revenue != 100 {
		t.Errorf("revenue = %v, want 100", snap.Monthly.Revenue)
	}
	if snap.Monthly.Outstanding != 650 {
		t.Errorf("outstanding = %v, want 650", snap.Monthly.Outstanding)
	}
}

func TestComputeSnapshotLegacyAmountFallback(t *testing.T) {
	invoices := []models.Invoice{
		// Older documents carry only the flat amount.
		{Amount: 500, Status: models.InvoicePaid},
		{GrandTotal: 224.20, Amount: 999, Status: models.InvoicePaid},
	}

	snap := ComputeSnapshot(invoices, nil)

	if want := 724.20; math.Abs(snap.Monthly.Revenue-want) > 1e-9 {
		t.Errorf("revenue = %v, want %v", snap.Monthly.Revenue, want)
	}
}

func TestComputeSnapshotExpenseSignAndCategories(t *testing.T) {
	txs := []models.Transaction{
		{Amount: -200, Category: models.CategoryPurchase},
		{Amount: -50, Category: models.CategoryVendorPayment},
		{Amount: 900, Category: models.CategoryMiscIncome},
		// Unknown categories are treated as miscellaneous expense.
		{Amount: -75, Category: "Cryptocurrency"},
	}

	snap := ComputeSnapshot(nil, txs)

	if snap.Monthly.TotalExpenses != 325 {
		t.Errorf("totalExpenses = %v, want 325 (income must be excluded, unknown included)", snap.Monthly.TotalExpenses)
	}
	if snap.Monthly.NetProfit != -325 {
		t.Errorf("netProfit = %v, want -325", snap.Monthly.NetProfit)
	}
}

func TestComputeSnapshotEmptyInputs(t *testing.T) {
	snap := ComputeSnapshot(nil, nil)

	if snap.Daily.Revenue != 0 || snap.Daily.Outstanding != 0 ||
		snap.Daily.TotalExpenses != 0 || snap.Daily.NetProfit != 0 {
		t.Fatalf("empty inputs produced non-zero figures: %+v", snap.Daily)
	}
	for _, v := range snap.Weekly.RevenueSeries.Series {
		if v != 0 {
			t.Fatalf("empty inputs produced non-zero series: %v", snap.Weekly.RevenueSeries.Series)
		}
	}
}

func TestComputeSnapshotIsDeterministic(t *testing.T) {
	invoices := []models.Invoice{
		{GrandTotal: 123.45, Status: models.InvoicePaid},
		{GrandTotal: 678.90, Status: models.InvoicePending},
	}
	txs := []models.Transaction{
		{Amount: -42, Category: models.CategoryReimbursement},
	}

	first := ComputeSnapshot(invoices, txs)
	second := ComputeSnapshot(invoices, txs)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different snapshots")
	}
}

func TestComputeSnapshotChartShape(t *testing.T) {
	snap := ComputeSnapshot([]models.Invoice{
		{GrandTotal: 700, Status: models.InvoicePaid},
	}, nil)

	cases := []struct {
		name   string
		series dto.ChartSeries
		labels []string
	}{
		{"daily", snap.Daily.RevenueSeries, []string{"6am", "9am", "12pm", "3pm", "6pm", "9pm", "12am"}},
		{"weekly", snap.Weekly.RevenueSeries, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}},
		{"monthly", snap.Monthly.RevenueSeries, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}},
	}
	for _, tc := range cases {
		if !reflect.DeepEqual(tc.series.Labels, tc.labels) {
			t.Errorf("%s labels = %v, want %v", tc.name, tc.series.Labels, tc.labels)
		}
		if len(tc.series.Series) != len(tc.labels) {
			t.Errorf("%s has %d values for %d labels", tc.name, len(tc.series.Series), len(tc.labels))
		}

		// Smoothing only redistributes; the series must still sum to the total.
		var sum float64
		for _, v := range tc.series.Series {
			sum += v
		}
		if math.Abs(sum-700) > 1e-9 {
			t.Errorf("%s series sums to %v, want 700", tc.name, sum)
		}
	}
}
