package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UrgencyBand classifies an upcoming bill by how soon it is due.
type UrgencyBand string

const (
	UrgencyDueSoon  UrgencyBand = "due-soon"
	UrgencyComingUp UrgencyBand = "coming-up"
	UrgencyUpcoming UrgencyBand = "upcoming"
)

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// MonthlyBreakdown is the paid/unpaid split of bills due in one calendar month.
type MonthlyBreakdown struct {
	Label  string          `json:"name"` // e.g. "Jun 24"
	Year   int             `json:"year"`
	Month  int             `json:"month"` // 1-12
	Total  decimal.Decimal `json:"total"`
	Paid   decimal.Decimal `json:"paid"`
	Unpaid decimal.Decimal `json:"unpaid"`
}

// SummaryKPI holds the headline numbers of a bill collection.
type SummaryKPI struct {
	BillCount    int             `json:"billCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalDue     decimal.Decimal `json:"totalDue"`
	PercentPaid  int64           `json:"percentPaid"`
	DueThisMonth decimal.Decimal `json:"dueThisMonth"`
}

// UpcomingEntry is an unpaid bill due soon, tagged with its urgency.
type UpcomingEntry struct {
	Bill         Bill        `json:"bill"`
	DaysUntilDue int         `json:"daysUntilDue"`
	Urgency      UrgencyBand `json:"urgency"`
}

// TransactionSummary totals income and expenses. Expenses keep their negative sign.
type TransactionSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// Dashboard combines every figure the overview page shows.
type Dashboard struct {
	Summary      SummaryKPI         `json:"summary"`
	Categories   []CategoryTotal    `json:"categories"`
	Monthly      []MonthlyBreakdown `json:"monthly"`
	Upcoming     []UpcomingEntry    `json:"upcoming"`
	Spending     []CategoryTotal    `json:"spending"`
	Transactions TransactionSummary `json:"transactions"`
	GeneratedAt  time.Time          `json:"generatedAt"`
}
