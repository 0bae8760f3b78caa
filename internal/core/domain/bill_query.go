package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
)

// BillView selects one of the dashboard tabs.
type BillView string

const (
	ViewAll       BillView = "all"
	ViewRecurring BillView = "recurring"
	ViewOneTime   BillView = "one-time"
	ViewPaid      BillView = "paid"
	ViewUnpaid    BillView = "unpaid"
)

// BillSortField names a sortable bill attribute.
type BillSortField string

const (
	SortByDueDate  BillSortField = "dueDate"
	SortByAmount   BillSortField = "amount"
	SortByName     BillSortField = "name"
	SortByCategory BillSortField = "category"
	SortByStatus   BillSortField = "status"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// BillQuery describes a read-only projection of the bill collection.
type BillQuery struct {
	View     BillView
	Search   string
	Category string
	DueFrom  *time.Time
	DueTo    *time.Time
	SortBy   BillSortField
	Order    SortOrder
}

// ParseBillView converts a query-string value into a BillView. Empty means all.
func ParseBillView(s string) (BillView, error) {
	switch v := BillView(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ViewAll, nil
	case ViewAll, ViewRecurring, ViewOneTime, ViewPaid, ViewUnpaid:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown bill view %q", apperrors.ErrValidation, s)
	}
}

// ParseSort converts query-string values into a sort field and order,
// defaulting to due date ascending.
func ParseSort(field, order string) (BillSortField, SortOrder, error) {
	f := BillSortField(strings.TrimSpace(field))
	switch f {
	case "":
		f = SortByDueDate
	case SortByDueDate, SortByAmount, SortByName, SortByCategory, SortByStatus:
	default:
		return "", "", fmt.Errorf("%w: unknown sort field %q", apperrors.ErrValidation, field)
	}
	o := SortOrder(strings.ToLower(strings.TrimSpace(order)))
	switch o {
	case "":
		o = Ascending
	case Ascending, Descending:
	default:
		return "", "", fmt.Errorf("%w: unknown sort order %q", apperrors.ErrValidation, order)
	}
	return f, o, nil
}

// Includes reports whether b belongs to the view.
func (v BillView) Includes(b Bill) bool {
	switch v {
	case ViewRecurring:
		return b.IsRecurring
	case ViewOneTime:
		return !b.IsRecurring
	case ViewPaid:
		return b.Status == StatusPaid
	case ViewUnpaid:
		return b.Status != StatusPaid
	default:
		return true
	}
}

// Matches reports whether b passes every filter of the query.
func (q BillQuery) Matches(b Bill) bool {
	if !q.View.Includes(b) {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		if !strings.Contains(strings.ToLower(b.Name), term) &&
			!strings.Contains(strings.ToLower(b.Category), term) {
			return false
		}
	}
	if q.Category != "" && !strings.EqualFold(b.Category, q.Category) {
		return false
	}
	if q.DueFrom != nil && b.DueDate.Before(*q.DueFrom) {
		return false
	}
	if q.DueTo != nil && b.DueDate.After(*q.DueTo) {
		return false
	}
	return true
}

// QueryBills filters and sorts bills into a new slice; the input is not modified.
func QueryBills(bills []Bill, q BillQuery) []Bill {
	out := make([]Bill, 0, len(bills))
	for _, b := range bills {
		if q.Matches(b) {
			out = append(out, b.Clone())
		}
	}
	SortBills(out, q.SortBy, q.Order)
	return out
}

// SortBills sorts bills in place. Ties keep their original order.
func SortBills(bills []Bill, field BillSortField, order SortOrder) {
	if field == "" {
		field = SortByDueDate
	}
	slices.SortStableFunc(bills, func(a, b Bill) int {
		c := compareBills(a, b, field)
		if order == Descending {
			return -c
		}
		return c
	})
}

func compareBills(a, b Bill, field BillSortField) int {
	switch field {
	case SortByAmount:
		return a.Amount.Cmp(b.Amount)
	case SortByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortByCategory:
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	default:
		return a.DueDate.Compare(b.DueDate)
	}
}
