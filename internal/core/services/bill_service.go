package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	portsevents "github.com/SscSPs/bill_tracker_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/bill_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bill_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker_app/internal/core/store"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// billService keeps the in-process BillStore in step with the bill repository.
// Every mutation is written to the repository first and applied to the store
// only once that write succeeded.
type billService struct {
	BaseService
	billRepo portsrepo.BillRepositoryFacade
	store    *store.BillStore
	events   portsevents.BillEventPublisher
	newID    func() string

	// mu serializes mutations so persist and apply happen as one step.
	mu sync.Mutex
}

// BillServiceOption is a functional option for configuring the bill service
type BillServiceOption func(*billService)

// WithBillStore makes the service operate on an existing store.
func WithBillStore(s *store.BillStore) BillServiceOption {
	return func(svc *billService) {
		if s != nil {
			svc.store = s
		}
	}
}

// WithIDGenerator overrides how ids are generated for bills created without one.
func WithIDGenerator(gen func() string) BillServiceOption {
	return func(svc *billService) {
		if gen != nil {
			svc.newID = gen
		}
	}
}

// WithEventPublisher announces every persisted mutation through publisher.
func WithEventPublisher(publisher portsevents.BillEventPublisher) BillServiceOption {
	return func(svc *billService) {
		if publisher != nil {
			svc.events = publisher
		}
	}
}

// NewBillService creates a new bill service with the provided options
func NewBillService(repo portsrepo.BillRepositoryFacade, options ...BillServiceOption) portssvc.BillSvcFacade {
	svc := &billService{
		billRepo: repo,
		events:   portsevents.NoopPublisher{},
		newID:    uuid.NewString,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}
	if svc.store == nil {
		svc.store = store.NewBillStore()
	}

	return svc
}

// Ensure billService implements the BillSvcFacade interface
var _ portssvc.BillSvcFacade = (*billService)(nil)

func (s *billService) Now() time.Time {
	return s.store.Now()
}

// Refresh reloads every bill from the repository. When a newer refresh has
// started in the meantime this result is dropped and the current collection
// is returned instead.
func (s *billService) Refresh(ctx context.Context) ([]domain.Bill, error) {
	ticket := s.store.BeginLoad()

	bills, err := s.billRepo.ListBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load bills from repository")
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}

	loaded, err := s.store.ApplyLoad(ticket, bills)
	if errors.Is(err, apperrors.ErrStaleLoad) {
		s.LogDebug(ctx, "Discarded stale bill load", slog.Int("bill_count", len(bills)))
		return s.store.Bills(), nil
	}
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bills refreshed", slog.Int("bill_count", len(loaded)))
	return loaded, nil
}

func (s *billService) ListBills(ctx context.Context, query domain.BillQuery) ([]domain.Bill, error) {
	bills := s.store.Query(query)
	s.LogDebug(ctx, "Listed bills",
		slog.String("view", string(query.View)),
		slog.Int("bill_count", len(bills)))
	return bills, nil
}

func (s *billService) GetBill(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.store.Get(billID)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	bill, err := req.ToBill()
	if err != nil {
		return nil, err
	}
	if bill.ID == "" {
		bill.ID = s.newID()
	}
	bill.CreatedAt = s.store.Now()
	if err := bill.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Get(bill.ID); err == nil {
		return nil, fmt.Errorf("%w: %w: bill %s", apperrors.ErrValidation, apperrors.ErrDuplicate, bill.ID)
	}
	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save bill", slog.String("bill_id", bill.ID))
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}
	if err := s.store.Add(bill); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill created",
		slog.String("bill_id", bill.ID),
		slog.String("category", bill.Category),
		slog.String("amount", bill.Amount.String()))
	created, err := s.store.Get(bill.ID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.BillCreated, created.ID, &created)
	return &created, nil
}

func (s *billService) UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest) (*domain.Bill, error) {
	patch, err := req.ToPatch()
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.GetBill(ctx, billID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Get(billID)
	if err != nil {
		return nil, err
	}
	merged, err := patch.Apply(current)
	if err != nil {
		return nil, err
	}
	if err := s.billRepo.UpdateBill(ctx, merged); err != nil {
		s.LogError(ctx, err, "Failed to update bill", slog.String("bill_id", billID))
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}
	updated, err := s.store.Update(billID, patch)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill updated", slog.String("bill_id", billID))
	s.publish(ctx, domain.BillUpdated, billID, &updated)
	return &updated, nil
}

func (s *billService) MarkBillPaid(ctx context.Context, billID string, req dto.MarkBillPaidRequest) (*domain.Bill, error) {
	details, err := req.ToPaymentDetails()
	if err != nil {
		return nil, err
	}
	if details.PaymentDate.IsZero() {
		now := s.store.Now()
		details.PaymentDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Get(billID)
	if err != nil {
		return nil, err
	}
	if err := s.billRepo.UpdateBill(ctx, current.MarkPaid(details)); err != nil {
		s.LogError(ctx, err, "Failed to persist bill payment", slog.String("bill_id", billID))
		return nil, fmt.Errorf("failed to mark bill paid: %w", err)
	}
	paid, err := s.store.MarkPaid(billID, details)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill marked as paid",
		slog.String("bill_id", billID),
		slog.String("payment_date", paid.PaymentDate.Format(time.DateOnly)))
	s.publish(ctx, domain.BillPaid, billID, &paid)
	return &paid, nil
}

func (s *billService) DeleteBill(ctx context.Context, billID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Get(billID); err != nil {
		return err
	}
	if err := s.billRepo.DeleteBill(ctx, billID); err != nil {
		s.LogError(ctx, err, "Failed to delete bill", slog.String("bill_id", billID))
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if err := s.store.Delete(billID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID))
	s.publish(ctx, domain.BillDeleted, billID, nil)
	return nil
}

// publish runs after the mutation is committed, so a broker failure is logged
// and never surfaces to the caller.
func (s *billService) publish(ctx context.Context, eventType domain.BillEventType, billID string, bill *domain.Bill) {
	event := domain.NewBillEvent(eventType, billID, bill, s.store.Now())
	if err := s.events.PublishBillEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish bill event",
			slog.String("bill_id", billID),
			slog.String("event_type", string(eventType)))
	}
}
