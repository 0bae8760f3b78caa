// Package store holds the in-process bill collection and its lifecycle rules.
//
// The BillStore is the single owner of the collection. Every mutation runs
// under one write lock and every read returns copies, so callers can never
// observe or cause a partially applied change.
package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/bill_tracker_app/internal/apperrors"
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
)

// Clock returns the current time. Tests replace it to pin "now".
type Clock func() time.Time

// LoadTicket identifies one asynchronous load. Only the most recently issued
// ticket may apply its result.
type LoadTicket struct {
	generation uint64
}

// BillStore is an ordered, concurrency-safe bill collection.
type BillStore struct {
	mu         sync.RWMutex
	bills      []domain.Bill
	generation uint64
	clock      Clock
}

// Option configures a BillStore.
type Option func(*BillStore)

// WithClock overrides the store's notion of the current time.
func WithClock(clock Clock) Option {
	return func(s *BillStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewBillStore creates an empty store.
func NewBillStore(options ...Option) *BillStore {
	s := &BillStore{
		bills: []domain.Bill{},
		clock: time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Now returns the store clock's current time.
func (s *BillStore) Now() time.Time {
	return s.clock()
}

// Load replaces the collection with initial after deriving every status.
// It supersedes any load still in flight.
func (s *BillStore) Load(initial []domain.Bill) []domain.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.bills = domain.DeriveStatuses(initial, s.clock())
	return cloneAll(s.bills)
}

// BeginLoad issues a ticket for an asynchronous load and invalidates every
// ticket issued before it.
func (s *BillStore) BeginLoad() LoadTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	return LoadTicket{generation: s.generation}
}

// ApplyLoad installs the result of the load identified by ticket. A ticket that
// has been superseded gets ErrStaleLoad and the collection is left untouched.
// Mutations made between BeginLoad and ApplyLoad are overwritten.
func (s *BillStore) ApplyLoad(ticket LoadTicket, bills []domain.Bill) ([]domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.generation != s.generation {
		return nil, fmt.Errorf("%w: ticket %d superseded by %d", apperrors.ErrStaleLoad, ticket.generation, s.generation)
	}
	s.bills = domain.DeriveStatuses(bills, s.clock())
	return cloneAll(s.bills), nil
}

// Add appends a validated bill. A bill whose id is already present is
// rejected with an error matching both ErrValidation and ErrDuplicate.
func (s *BillStore) Add(bill domain.Bill) error {
	if err := bill.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(bill.ID) >= 0 {
		return fmt.Errorf("%w: %w: bill %s", apperrors.ErrValidation, apperrors.ErrDuplicate, bill.ID)
	}
	b := bill.Clone()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.clock()
	}
	s.bills = append(s.bills, b)
	return nil
}

// Update merges patch into the bill with the given id and returns the result.
func (s *BillStore) Update(id string, patch domain.BillPatch) (domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Bill{}, fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, id)
	}
	merged, err := patch.Apply(s.bills[i])
	if err != nil {
		return domain.Bill{}, err
	}
	s.bills[i] = merged
	return merged.Clone().DeriveStatus(s.clock()), nil
}

// Delete removes the bill with the given id.
func (s *BillStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, id)
	}
	s.bills = slices.Delete(s.bills, i, i+1)
	return nil
}

// MarkPaid sets status, payment date, method and note in one step. A zero
// payment date means today. Marking an already paid bill again with the same
// details leaves it unchanged.
func (s *BillStore) MarkPaid(id string, details domain.PaymentDetails) (domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Bill{}, fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, id)
	}
	if details.PaymentDate.IsZero() {
		details.PaymentDate = today(s.clock())
	}
	s.bills[i] = s.bills[i].MarkPaid(details)
	return s.bills[i].Clone(), nil
}

// Bills returns a copy of the collection with statuses derived against the
// current clock.
func (s *BillStore) Bills() []domain.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.DeriveStatuses(s.bills, s.clock())
}

// Get returns a copy of one bill.
func (s *BillStore) Get(id string) (domain.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Bill{}, fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, id)
	}
	return s.bills[i].Clone().DeriveStatus(s.clock()), nil
}

// Query returns the filtered, sorted projection described by q.
func (s *BillStore) Query(q domain.BillQuery) []domain.Bill {
	return domain.QueryBills(s.Bills(), q)
}

// Len returns the number of bills held.
func (s *BillStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bills)
}

// indexOf must be called with the lock held.
func (s *BillStore) indexOf(id string) int {
	return slices.IndexFunc(s.bills, func(b domain.Bill) bool { return b.ID == id })
}

func cloneAll(bills []domain.Bill) []domain.Bill {
	out := make([]domain.Bill, len(bills))
	for i, b := range bills {
		out[i] = b.Clone()
	}
	return out
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
