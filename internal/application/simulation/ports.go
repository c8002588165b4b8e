package simulation

import (
	"context"
	"time"

	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
)

// MetricsRecorder receives simulation events for monitoring
type MetricsRecorder interface {
	RecordDay(summary DaySummary)
	RecordOutcome(outcome staff.Outcome)
	RecordUnhandled(category request.Category)
}

// OrderRecord is the persisted shape of a closed order
type OrderRecord struct {
	OrderID  string
	Day      int
	Customer string
	Cashier  string
	Status   string
	Plants   int
	Total    shared.Money
	Reason   string
}

// RunRecord is the persisted shape of a finished run
type RunRecord struct {
	ID             string
	GreenhouseName string
	Seed           uint64
	StartedAt      time.Time
	FinishedAt     time.Time
	Days           []DaySummary
	Orders         []OrderRecord
}

// Revenue sums the revenue over every day of the run
func (r *RunRecord) Revenue() shared.Money {
	var total shared.Money
	for _, d := range r.Days {
		total += d.Revenue
	}
	return total
}

// RunRepository stores finished runs
type RunRepository interface {
	Save(ctx context.Context, run *RunRecord) error
	FindByID(ctx context.Context, id string) (*RunRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*RunRecord, error)
}
