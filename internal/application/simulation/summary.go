package simulation

import (
	"time"

	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// DaySummary tallies one simulated day
type DaySummary struct {
	Day           int
	Date          time.Time
	BusinessLevel BusinessLevel

	Customers        int
	OrdersCompleted  int
	OrdersFailed     int
	QueriesAnswered  int
	Complaints       int
	Escalations      int
	MaintenanceTasks int
	Watered          int
	Moved            int
	PlantsPlanted    int
	Unhandled        int

	Matured int
	Died    int
	Pruned  int
	Revenue shared.Money

	Census greenhouse.Census
}

// RunResult is the outcome of a whole run
type RunResult struct {
	RunID  string
	Seed   uint64
	Days   []DaySummary
	Orders []OrderRecord
	Events []Event
}

// Totals folds the daily summaries into one
func (r RunResult) Totals() DaySummary {
	var t DaySummary
	for _, d := range r.Days {
		t.Customers += d.Customers
		t.OrdersCompleted += d.OrdersCompleted
		t.OrdersFailed += d.OrdersFailed
		t.QueriesAnswered += d.QueriesAnswered
		t.Complaints += d.Complaints
		t.Escalations += d.Escalations
		t.MaintenanceTasks += d.MaintenanceTasks
		t.Watered += d.Watered
		t.Moved += d.Moved
		t.PlantsPlanted += d.PlantsPlanted
		t.Unhandled += d.Unhandled
		t.Matured += d.Matured
		t.Died += d.Died
		t.Pruned += d.Pruned
		t.Revenue += d.Revenue
	}
	if n := len(r.Days); n > 0 {
		last := r.Days[n-1]
		t.Day, t.Date, t.Census = last.Day, last.Date, last.Census
	}
	return t
}
