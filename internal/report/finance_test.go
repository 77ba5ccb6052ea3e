package report

import (
	"testing"
	"time"

	"github.com/starlish/bimbel_backend/internal/models"
)

func rec(t string, amount float64, year int, month time.Month) models.Finance {
	return models.Finance{
		Type:   t,
		Amount: amount,
		Date:   time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarizeFinance(t *testing.T) {
	records := []models.Finance{
		rec(models.FinanceIncome, 150000, 2025, time.March),
		rec(models.FinanceIncome, 250000, 2025, time.March),
		rec(models.FinanceExpense, 100000, 2025, time.March),
		rec(models.FinanceIncome, 500000, 2025, time.April),
	}

	sum, monthly := SummarizeFinance(records)
	if sum.TotalIncome != 900000 {
		t.Errorf("totalIncome = %v, want 900000", sum.TotalIncome)
	}
	if sum.TotalExpense != 100000 {
		t.Errorf("totalExpense = %v, want 100000", sum.TotalExpense)
	}
	if sum.Balance != sum.TotalIncome-sum.TotalExpense {
		t.Errorf("balance = %v, want income-expense = %v", sum.Balance, sum.TotalIncome-sum.TotalExpense)
	}

	march := monthly["2025-03"]
	if march.Income != 400000 || march.Expense != 100000 {
		t.Errorf("2025-03 bucket = %+v, want {400000 100000}", march)
	}
	april := monthly["2025-04"]
	if april.Income != 500000 || april.Expense != 0 {
		t.Errorf("2025-04 bucket = %+v, want {500000 0}", april)
	}
	if len(monthly) != 2 {
		t.Errorf("bucket count = %d, want 2", len(monthly))
	}
}

func TestSummarizeFinanceEmpty(t *testing.T) {
	sum, monthly := SummarizeFinance(nil)
	if sum.TotalIncome != 0 || sum.TotalExpense != 0 || sum.Balance != 0 {
		t.Errorf("empty summary = %+v, want zeros", sum)
	}
	if len(monthly) != 0 {
		t.Errorf("empty buckets = %d entries, want 0", len(monthly))
	}
}

// When the caller filters the records by type before summarizing, the
// buckets reflect only that type. The dashboard relies on this behavior.
func TestSummarizeFinanceTypeFilteredBuckets(t *testing.T) {
	incomeOnly := []models.Finance{
		rec(models.FinanceIncome, 150000, 2025, time.March),
	}
	sum, monthly := SummarizeFinance(incomeOnly)
	if sum.Balance != 150000 {
		t.Errorf("balance = %v, want 150000", sum.Balance)
	}
	if monthly["2025-03"].Expense != 0 {
		t.Errorf("expense bucket = %v, want 0 for type-filtered input", monthly["2025-03"].Expense)
	}
}
