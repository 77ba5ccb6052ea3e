package report

import (
	"github.com/starlish/bimbel_backend/internal/models"
)

type FinanceSummary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

type MonthBucket struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// SummarizeFinance totals the given records and buckets them by year-month
// for the dashboard chart. Buckets are built from the records as passed in:
// when the caller pre-filters by type, the opposite type shows as zero in
// every bucket. That matches the behavior the dashboard was built against.
func SummarizeFinance(records []models.Finance) (FinanceSummary, map[string]MonthBucket) {
	var sum FinanceSummary
	monthly := make(map[string]MonthBucket)

	for _, f := range records {
		key := f.Date.Format("2006-01")
		bucket := monthly[key]
		if f.Type == models.FinanceIncome {
			sum.TotalIncome += f.Amount
			bucket.Income += f.Amount
		} else {
			sum.TotalExpense += f.Amount
			bucket.Expense += f.Amount
		}
		monthly[key] = bucket
	}

	sum.Balance = sum.TotalIncome - sum.TotalExpense
	return sum, monthly
}
