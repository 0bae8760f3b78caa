package cli

import (
	"testing"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUrgencyBadge(t *testing.T) {
	assert.Contains(t, UrgencyBadge(domain.UrgencyDueSoon), "DUE SOON")
	assert.Contains(t, UrgencyBadge(domain.UrgencyComingUp), "COMING UP")
	assert.Contains(t, UrgencyBadge(domain.UrgencyUpcoming), "UPCOMING")
}

func TestStatusBadge(t *testing.T) {
	for _, s := range []domain.BillStatus{domain.StatusPaid, domain.StatusPending, domain.StatusOverdue} {
		assert.Contains(t, StatusBadge(s), string(s))
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(domain.SummaryKPI{
		BillCount:    4,
		TotalAmount:  decimal.RequireFromString("2050.50"),
		TotalPaid:    decimal.NewFromInt(1500),
		TotalDue:     decimal.RequireFromString("550.50"),
		PercentPaid:  73,
		DueThisMonth: decimal.RequireFromString("200.50"),
	}, []domain.CategoryTotal{
		{Name: "Housing", Value: decimal.NewFromInt(1500)},
		{Name: "Utilities", Value: decimal.RequireFromString("200.50")},
	})

	assert.Contains(t, out, "Bill Summary")
	assert.Contains(t, out, "$2,050.50")
	assert.Contains(t, out, "(73%)")
	assert.Contains(t, out, "Housing")
	assert.Contains(t, out, "$200.50")
}

func TestRenderSummary_NoCategories(t *testing.T) {
	out := RenderSummary(domain.SummaryKPI{}, nil)
	assert.Contains(t, out, "No bills to categorize.")
}

func TestRenderUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	out := RenderUpcoming([]domain.UpcomingEntry{
		{
			Bill: domain.Bill{
				Name:     "Water",
				Category: "Utilities",
				Amount:   decimal.RequireFromString("45.75"),
				DueDate:  now.AddDate(0, 0, 2),
			},
			DaysUntilDue: 2,
			Urgency:      domain.UrgencyDueSoon,
		},
	}, now)

	assert.Contains(t, out, "Water")
	assert.Contains(t, out, "2024-06-17")
	assert.Contains(t, out, "In 2 days")
	assert.Contains(t, out, "DUE SOON")

	assert.Contains(t, RenderUpcoming(nil, now), "No upcoming bills.")
}

func TestRenderMonthly(t *testing.T) {
	out := RenderMonthly([]domain.MonthlyBreakdown{
		{Label: "May 24", Total: decimal.Zero, Paid: decimal.Zero, Unpaid: decimal.Zero},
		{Label: "Jun 24", Total: decimal.NewFromInt(150), Paid: decimal.NewFromInt(100), Unpaid: decimal.NewFromInt(50)},
	})

	assert.Contains(t, out, "2 months")
	assert.Contains(t, out, "May 24")
	assert.Contains(t, out, "$150.00")
	assert.Contains(t, out, "$50.00")
}
