package dto

// ChartSeries is the {labels, series} pair the chart library consumes.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Series []float64 `json:"series"`
}

// PeriodSnapshot is one reporting period's aggregate figures plus the
// synthetic series backing its charts.
type PeriodSnapshot struct {
	Revenue       float64     `json:"revenue"`
	Outstanding   float64     `json:"outstanding"`
	TotalExpenses float64     `json:"totalExpenses"`
	NetProfit     float64     `json:"netProfit"`
	RevenueSeries ChartSeries `json:"revenueSeries"`
	ExpenseSeries ChartSeries `json:"expenseSeries"`
}

// FinancialSnapshot is recomputed from scratch on every data change; it is a
// pure function of the current invoice and transaction sets.
type FinancialSnapshot struct {
	Daily   PeriodSnapshot `json:"daily"`
	Weekly  PeriodSnapshot `json:"weekly"`
	Monthly PeriodSnapshot `json:"monthly"`
}
