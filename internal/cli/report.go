package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/utils"
	"github.com/SscSPs/bill_tracker_app/internal/utils/dates"
)

// RenderSummary renders the KPI box followed by the per-category table.
func RenderSummary(kpi domain.SummaryKPI, categories []domain.CategoryTotal) string {
	lines := []string{
		fmt.Sprintf("Bills:          %d", kpi.BillCount),
		fmt.Sprintf("Total:          %s", utils.FormatCurrency(kpi.TotalAmount)),
		fmt.Sprintf("Paid:           %s (%d%%)", SuccessStyle.Render(utils.FormatCurrency(kpi.TotalPaid)), kpi.PercentPaid),
		fmt.Sprintf("Outstanding:    %s", ErrorStyle.Render(utils.FormatCurrency(kpi.TotalDue))),
		fmt.Sprintf("Due this month: %s", utils.FormatCurrency(kpi.DueThisMonth)),
	}

	var b strings.Builder
	b.WriteString(RenderBox("Bill Summary", strings.Join(lines, "\n")))
	b.WriteString("\n")

	if len(categories) == 0 {
		b.WriteString(SubtleStyle.Render("No bills to categorize."))
		return b.String()
	}
	rows := make([][]string, len(categories))
	for i, ct := range categories {
		rows[i] = []string{ct.Name, utils.FormatCurrency(ct.Value)}
	}
	b.WriteString(RenderTable([]string{"Category", "Total"}, rows))
	return b.String()
}

// RenderUpcoming renders upcoming bills with their urgency badges.
func RenderUpcoming(entries []domain.UpcomingEntry, now time.Time) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("No upcoming bills.")
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Bill.Name,
			e.Bill.Category,
			utils.FormatCurrency(e.Bill.Amount),
			e.Bill.DueDate.Format(dates.DateLayout),
			dates.FormatRelative(e.Bill.DueDate, now),
			UrgencyBadge(e.Urgency),
		}
	}
	return FormatTitle("Upcoming Bills") + "\n" +
		RenderTable([]string{"Bill", "Category", "Amount", "Due", "When", "Urgency"}, rows)
}

// RenderMonthly renders the monthly paid/unpaid breakdown, oldest month first.
func RenderMonthly(months []domain.MonthlyBreakdown) string {
	rows := make([][]string, len(months))
	for i, m := range months {
		rows[i] = []string{
			m.Label,
			utils.FormatCurrency(m.Total),
			utils.FormatCurrency(m.Paid),
			utils.FormatCurrency(m.Unpaid),
		}
	}
	return FormatTitle("Monthly Breakdown ("+strconv.Itoa(len(months))+" months)") + "\n" +
		RenderTable([]string{"Month", "Total", "Paid", "Unpaid"}, rows)
}
