package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Bill is the row shape of the bills table. Nullable columns use sql.Null* types.
type Bill struct {
	BillID             string          `db:"bill_id"`
	Name               string          `db:"name"`
	Amount             decimal.Decimal `db:"amount"`
	Category           string          `db:"category"`
	DueDate            time.Time       `db:"due_date"`
	IsRecurring        bool            `db:"is_recurring"`
	RecurringFrequency sql.NullString  `db:"recurring_frequency"`
	PaymentMethod      sql.NullString  `db:"payment_method"`
	Status             string          `db:"status"`
	PaymentDate        sql.NullTime    `db:"payment_date"`
	Note               sql.NullString  `db:"note"`
	CreatedAt          time.Time       `db:"created_at"`
	LastUpdatedAt      time.Time       `db:"last_updated_at"`
}
