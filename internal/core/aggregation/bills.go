// Package aggregation turns bill and transaction collections into the derived
// figures shown on the dashboard. Every function is pure: the same inputs always
// produce the same outputs and no input slice is modified. Sums use fixed-point
// decimals, so long runs of small amounts do not drift.
package aggregation

import (
	"slices"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

const (
	DefaultMonthsBack    = 6
	DefaultUpcomingDays  = 30
	DefaultUpcomingLimit = 5

	dueSoonDays  = 3
	comingUpDays = 7
)

var hundred = decimal.NewFromInt(100)

// CategoryTotals sums bill amounts per category, in first-seen category order.
func CategoryTotals(bills []domain.Bill) []domain.CategoryTotal {
	totals := make([]domain.CategoryTotal, 0)
	index := make(map[string]int)
	for _, b := range bills {
		i, ok := index[b.Category]
		if !ok {
			i = len(totals)
			index[b.Category] = i
			totals = append(totals, domain.CategoryTotal{Name: b.Category, Value: decimal.Zero})
		}
		totals[i].Value = totals[i].Value.Add(b.Amount)
	}
	return totals
}

// MonthlyBreakdown returns exactly monthsBack buckets, oldest first, ending with
// ref's month. A bill lands in the bucket of its due date's month; bills due
// outside the window are ignored and empty months are zero-filled.
func MonthlyBreakdown(bills []domain.Bill, monthsBack int, ref time.Time) []domain.MonthlyBreakdown {
	if monthsBack <= 0 {
		return []domain.MonthlyBreakdown{}
	}

	buckets := make([]domain.MonthlyBreakdown, monthsBack)
	for i := range buckets {
		start := dates.AddMonths(ref, i-(monthsBack-1))
		buckets[i] = domain.MonthlyBreakdown{
			Label:  dates.MonthLabel(start),
			Year:   start.Year(),
			Month:  int(start.Month()),
			Total:  decimal.Zero,
			Paid:   decimal.Zero,
			Unpaid: decimal.Zero,
		}
	}

	for _, b := range bills {
		diff := (ref.Year()-b.DueDate.Year())*12 + int(ref.Month()) - int(b.DueDate.Month())
		if diff < 0 || diff >= monthsBack {
			continue
		}
		bucket := &buckets[monthsBack-1-diff]
		bucket.Total = bucket.Total.Add(b.Amount)
		if b.IsPaid() {
			bucket.Paid = bucket.Paid.Add(b.Amount)
		} else {
			bucket.Unpaid = bucket.Unpaid.Add(b.Amount)
		}
	}
	return buckets
}

// SummaryKPIs computes the headline totals. PercentPaid is 0 for an empty or
// zero-valued collection rather than dividing by zero.
func SummaryKPIs(bills []domain.Bill, ref time.Time) domain.SummaryKPI {
	kpi := domain.SummaryKPI{
		BillCount:    len(bills),
		TotalAmount:  decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalDue:     decimal.Zero,
		DueThisMonth: decimal.Zero,
	}

	for _, b := range bills {
		kpi.TotalAmount = kpi.TotalAmount.Add(b.Amount)
		if b.IsPaid() {
			kpi.TotalPaid = kpi.TotalPaid.Add(b.Amount)
			continue
		}
		if dates.SameMonth(b.DueDate, ref) {
			kpi.DueThisMonth = kpi.DueThisMonth.Add(b.Amount)
		}
	}

	kpi.TotalDue = kpi.TotalAmount.Sub(kpi.TotalPaid)
	if kpi.TotalAmount.IsPositive() {
		kpi.PercentPaid = kpi.TotalPaid.Mul(hundred).Div(kpi.TotalAmount).Round(0).IntPart()
	}
	return kpi
}

// Upcoming lists unpaid bills due after ref and no later than withinDays days
// after ref, soonest first, truncated to limit entries.
func Upcoming(bills []domain.Bill, withinDays, limit int, ref time.Time) []domain.UpcomingEntry {
	entries := make([]domain.UpcomingEntry, 0)
	if limit <= 0 {
		return entries
	}

	horizon := ref.AddDate(0, 0, withinDays)
	for _, b := range bills {
		if b.IsPaid() {
			continue
		}
		if !b.DueDate.After(ref) || b.DueDate.After(horizon) {
			continue
		}
		days := dates.DaysUntil(b.DueDate, ref)
		entries = append(entries, domain.UpcomingEntry{
			Bill:         b.Clone(),
			DaysUntilDue: days,
			Urgency:      UrgencyFor(days),
		})
	}

	slices.SortStableFunc(entries, func(a, b domain.UpcomingEntry) int {
		return a.Bill.DueDate.Compare(b.Bill.DueDate)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// UrgencyFor maps whole days until due onto an urgency band.
func UrgencyFor(daysUntilDue int) domain.UrgencyBand {
	switch {
	case daysUntilDue <= dueSoonDays:
		return domain.UrgencyDueSoon
	case daysUntilDue <= comingUpDays:
		return domain.UrgencyComingUp
	default:
		return domain.UrgencyUpcoming
	}
}
