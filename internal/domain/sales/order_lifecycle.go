package sales

import (
	"fmt"
	"time"

	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// OrderStatus represents the state of an order in its lifecycle
type OrderStatus string

const (
	// OrderStatusPending indicates the order is open and accepting items
	OrderStatusPending OrderStatus = "PENDING"

	// OrderStatusProcessing indicates the cashier is assembling the order
	OrderStatusProcessing OrderStatus = "PROCESSING"

	// OrderStatusCompleted indicates the order was handed to the customer
	OrderStatusCompleted OrderStatus = "COMPLETED"

	// OrderStatusCancelled indicates the order was abandoned
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ErrInvalidTransition indicates an order status change that is not allowed
type ErrInvalidTransition struct {
	From      OrderStatus
	Attempted string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot %s order in %s state", e.Attempted, e.From)
}

// orderLifecycle manages PENDING → PROCESSING → COMPLETED/CANCELLED.
//
// Invariants:
// - COMPLETED and CANCELLED are terminal
// - Timestamps come from the injected clock
type orderLifecycle struct {
	status       OrderStatus
	createdAt    time.Time
	updatedAt    time.Time
	startedAt    *time.Time
	closedAt     *time.Time
	cancelReason string
	clock        shared.Clock
}

func newOrderLifecycle(clock shared.Clock) *orderLifecycle {
	if clock == nil {
		clock = shared.NewRealClock()
	}

	now := clock.Now()
	return &orderLifecycle{
		status:    OrderStatusPending,
		createdAt: now,
		updatedAt: now,
		clock:     clock,
	}
}

// process transitions from PENDING to PROCESSING
func (l *orderLifecycle) process() error {
	if l.status != OrderStatusPending {
		return &ErrInvalidTransition{From: l.status, Attempted: "process"}
	}

	now := l.clock.Now()
	l.status = OrderStatusProcessing
	l.startedAt = &now
	l.updatedAt = now
	return nil
}

// complete transitions from PROCESSING to COMPLETED
func (l *orderLifecycle) complete() error {
	if l.status != OrderStatusProcessing {
		return &ErrInvalidTransition{From: l.status, Attempted: "complete"}
	}

	now := l.clock.Now()
	l.status = OrderStatusCompleted
	l.closedAt = &now
	l.updatedAt = now
	return nil
}

// cancel is allowed from any non-terminal state
func (l *orderLifecycle) cancel(reason string) error {
	if l.isClosed() {
		return &ErrInvalidTransition{From: l.status, Attempted: "cancel"}
	}

	now := l.clock.Now()
	l.status = OrderStatusCancelled
	l.cancelReason = reason
	l.closedAt = &now
	l.updatedAt = now
	return nil
}

func (l *orderLifecycle) isClosed() bool {
	return l.status == OrderStatusCompleted || l.status == OrderStatusCancelled
}

func (l *orderLifecycle) touch() {
	l.updatedAt = l.clock.Now()
}
