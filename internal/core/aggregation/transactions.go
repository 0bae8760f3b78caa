package aggregation

import (
	"slices"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTopCategories is how many expense categories the spending chart shows.
const DefaultTopCategories = 6

// CategoryTotalsForTransactions returns the DefaultTopCategories largest expense
// categories by absolute spend, largest first.
func CategoryTotalsForTransactions(transactions []domain.Transaction) []domain.CategoryTotal {
	return TopExpenseCategories(transactions, DefaultTopCategories)
}

// TopExpenseCategories groups expense transactions by category using absolute
// amounts and returns the n largest. Income is ignored. Equal totals keep
// first-seen order.
func TopExpenseCategories(transactions []domain.Transaction, n int) []domain.CategoryTotal {
	totals := make([]domain.CategoryTotal, 0)
	if n <= 0 {
		return totals
	}

	index := make(map[string]int)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, domain.CategoryTotal{Name: t.Category, Value: decimal.Zero})
		}
		totals[i].Value = totals[i].Value.Add(t.Amount.Abs())
	}

	slices.SortStableFunc(totals, func(a, b domain.CategoryTotal) int {
		return b.Value.Cmp(a.Value)
	})
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// SummarizeTransactions totals income and expenses; Balance is their sum.
func SummarizeTransactions(transactions []domain.Transaction) domain.TransactionSummary {
	summary := domain.TransactionSummary{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Balance:  decimal.Zero,
	}
	for _, t := range transactions {
		switch {
		case t.IsIncome():
			summary.Income = summary.Income.Add(t.Amount)
		case t.IsExpense():
			summary.Expenses = summary.Expenses.Add(t.Amount)
		}
	}
	summary.Balance = summary.Income.Add(summary.Expenses)
	return summary
}
