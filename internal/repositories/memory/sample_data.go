package memory

import (
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// NewRepositoryProvider returns in-memory repositories. When seed is set they
// start with the demo data set laid out around now.
func NewRepositoryProvider(seed bool, now time.Time) portsrepo.RepositoryProvider {
	var (
		bills []domain.Bill
		txs   []domain.Transaction
	)
	if seed {
		bills = SampleBills(now)
		txs = SampleTransactions(now)
	}
	return portsrepo.RepositoryProvider{
		BillRepo:        NewBillRepository(bills),
		TransactionRepo: NewTransactionRepository(txs),
	}
}

// SampleBills is the demo bill set. Due dates are placed relative to now so
// the dashboard always shows a mix of paid, overdue and upcoming bills.
func SampleBills(now time.Time) []domain.Bill {
	y, m, d := now.Date()
	loc := now.Location()
	on := func(month time.Month, day int) time.Time {
		return time.Date(y, month, day, 0, 0, 0, 0, loc)
	}
	paid := func(t time.Time) *time.Time { return &t }

	return []domain.Bill{
		{ID: "bill-1", Name: "Rent", Amount: decimal.NewFromInt(1500), Category: "Housing",
			DueDate: on(m, 5), IsRecurring: true, RecurringFrequency: domain.Monthly,
			PaymentMethod: "Bank Transfer", Status: domain.StatusPaid, PaymentDate: paid(on(m, 5)),
			CreatedAt: on(m-1, 1)},
		{ID: "bill-2", Name: "Electricity", Amount: decimal.RequireFromString("125.50"), Category: "Utilities",
			DueDate: on(m, d+10), IsRecurring: true, RecurringFrequency: domain.Monthly,
			Status: domain.StatusPending, CreatedAt: on(m-1, 5)},
		{ID: "bill-3", Name: "Internet", Amount: decimal.RequireFromString("89.99"), Category: "Utilities",
			DueDate: on(m, d+5), IsRecurring: true, RecurringFrequency: domain.Monthly,
			PaymentMethod: "Credit Card", Status: domain.StatusPending, CreatedAt: on(m-1, 10)},
		{ID: "bill-4", Name: "Car Insurance", Amount: decimal.RequireFromString("95.75"), Category: "Insurance",
			DueDate: on(m, 15), IsRecurring: true, RecurringFrequency: domain.Monthly,
			PaymentMethod: "Automatic Payment", Status: domain.StatusPending, CreatedAt: on(m-2, 15)},
		{ID: "bill-5", Name: "Phone Bill", Amount: decimal.NewFromInt(75), Category: "Utilities",
			DueDate: on(m, d-5), IsRecurring: true, RecurringFrequency: domain.Monthly,
			Status: domain.StatusOverdue, CreatedAt: on(m-1, 20)},
		{ID: "bill-6", Name: "Netflix", Amount: decimal.RequireFromString("19.99"), Category: "Subscriptions",
			DueDate: on(m, 22), IsRecurring: true, RecurringFrequency: domain.Monthly,
			PaymentMethod: "Credit Card", Status: domain.StatusPending, CreatedAt: on(m-3, 22)},
		{ID: "bill-7", Name: "Gym Membership", Amount: decimal.NewFromInt(50), Category: "Health",
			DueDate: on(m, 10), IsRecurring: true, RecurringFrequency: domain.Monthly,
			PaymentMethod: "Debit Card", Status: domain.StatusPaid, PaymentDate: paid(on(m, 10)),
			CreatedAt: on(m-4, 10)},
		{ID: "bill-8", Name: "Tax Payment", Amount: decimal.NewFromInt(350), Category: "Other",
			DueDate: on(m+1, 15), Status: domain.StatusPending, CreatedAt: on(m, 1)},
		{ID: "bill-9", Name: "Water Bill", Amount: decimal.RequireFromString("45.75"), Category: "Utilities",
			DueDate: on(m, d+3), IsRecurring: true, RecurringFrequency: domain.Monthly,
			Status: domain.StatusPending, CreatedAt: on(m-1, 25)},
		{ID: "bill-10", Name: "Amazon Prime", Amount: decimal.RequireFromString("14.99"), Category: "Subscriptions",
			DueDate: on(m, 28), IsRecurring: true, RecurringFrequency: domain.Monthly,
			PaymentMethod: "Credit Card", Status: domain.StatusPending, CreatedAt: on(m-5, 28)},
	}
}

// SampleTransactions is a month of demo income and spending ending at now.
func SampleTransactions(now time.Time) []domain.Transaction {
	daysAgo := func(n int) time.Time {
		y, m, d := now.AddDate(0, 0, -n).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}
	tx := func(id string, ago int, desc, amount, category, method string) domain.Transaction {
		return domain.Transaction{
			ID:            id,
			Date:          daysAgo(ago),
			Description:   desc,
			Amount:        decimal.RequireFromString(amount),
			Category:      category,
			PaymentMethod: method,
		}
	}

	return []domain.Transaction{
		tx("tx-1", 1, "Grocery Store", "-82.45", "Groceries", "Debit Card"),
		tx("tx-2", 2, "Salary Deposit", "3200.00", "Income", "Bank Transfer"),
		tx("tx-3", 3, "Gas Station", "-45.10", "Transportation", "Credit Card"),
		tx("tx-4", 4, "Coffee Shop", "-6.75", "Dining", "Credit Card"),
		tx("tx-5", 5, "Rent Payment", "-1500.00", "Housing", "Bank Transfer"),
		tx("tx-6", 7, "Restaurant", "-58.20", "Dining", "Credit Card"),
		tx("tx-7", 9, "Pharmacy", "-23.99", "Health", "Debit Card"),
		tx("tx-8", 11, "Freelance Project", "650.00", "Income", "Bank Transfer"),
		tx("tx-9", 12, "Grocery Store", "-112.30", "Groceries", "Debit Card"),
		tx("tx-10", 14, "Movie Tickets", "-32.00", "Entertainment", "Credit Card"),
		tx("tx-11", 16, "Electric Company", "-125.50", "Utilities", "Bank Transfer"),
		tx("tx-12", 18, "Bookstore", "-27.45", "Shopping", "Credit Card"),
		tx("tx-13", 21, "Bus Pass", "-60.00", "Transportation", "Debit Card"),
		tx("tx-14", 25, "Refund", "19.99", "Shopping", "Credit Card"),
		tx("tx-15", 28, "Online Shopping", "-74.90", "Shopping", "Credit Card"),
	}
}
