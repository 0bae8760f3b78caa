package events

import (
	"context"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
)

// BillEventPublisher announces persisted bill mutations to other systems.
type BillEventPublisher interface {
	PublishBillEvent(ctx context.Context, event domain.BillEvent) error
}

// NoopPublisher discards every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBillEvent(context.Context, domain.BillEvent) error { return nil }

var _ BillEventPublisher = NoopPublisher{}
