package domain

import "time"

// BillEventType names the mutation a BillEvent reports.
type BillEventType string

const (
	BillCreated BillEventType = "bill.created"
	BillUpdated BillEventType = "bill.updated"
	BillPaid    BillEventType = "bill.paid"
	BillDeleted BillEventType = "bill.deleted"
)

// BillEvent is emitted after a bill mutation has been persisted.
// Bill is nil for BillDeleted.
type BillEvent struct {
	Type       BillEventType `json:"type"`
	BillID     string        `json:"billId"`
	Bill       *Bill         `json:"bill,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// NewBillEvent builds an event for bill. A nil bill is allowed for deletions.
func NewBillEvent(eventType BillEventType, billID string, bill *Bill, at time.Time) BillEvent {
	ev := BillEvent{Type: eventType, BillID: billID, OccurredAt: at}
	if bill != nil {
		b := bill.Clone()
		ev.Bill = &b
	}
	return ev
}
