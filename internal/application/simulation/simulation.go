package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/andrescamacho/greenhouse-go/internal/application/common"
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/customer"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/sales"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
	"github.com/andrescamacho/greenhouse-go/pkg/utils"
)

// Simulation runs a garden center one business day at a time.
//
// Each day follows a fixed order:
//  1. every plant ages one tick
//  2. caretakers receive planting requests for species running low
//  3. caretakers receive maintenance requests for thirsty sections
//  4. customers arrive and their requests are dispatched in arrival order
//  5. dead plants are pruned from the tree
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	id        string
	settings  Settings
	catalog   *catalog.Catalog
	manager   *greenhouse.Manager
	inventory *supplies.Inventory
	roster    *staff.Roster
	clock     *shared.SimulationClock
	rng       *rand.Rand
	customers *customer.Generator
	workspace *staff.Workspace
	metrics   MetricsRecorder

	selection []string
	events    EventLog
	days      []DaySummary
	orders    []OrderRecord
}

// Option customises a Simulation at construction
type Option func(*Simulation)

// WithMetrics reports every day and outcome to a recorder
func WithMetrics(recorder MetricsRecorder) Option {
	return func(s *Simulation) { s.metrics = recorder }
}

// WithRunID replaces the generated run identifier
func WithRunID(id string) Option {
	return func(s *Simulation) { s.id = id }
}

// New builds the greenhouse, supplies and roster described by settings and
// stocks the initial plant selection
func New(settings Settings, cat *catalog.Catalog, opts ...Option) (*Simulation, error) {
	if cat == nil {
		return nil, shared.NewValidationError("catalog", "is required")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	manager, err := greenhouse.NewManager(settings.GreenhouseName)
	if err != nil {
		return nil, err
	}

	inventory := supplies.NewInventory()
	for _, st := range settings.Supplies {
		if err := inventory.AddStock(st.Category, st.Name, st.Quantity); err != nil {
			return nil, err
		}
		inventory.SetPrice(st.Category, st.Name, st.Price)
	}

	roster, err := hireStaff(settings.Staffing, settings.Capacity)
	if err != nil {
		return nil, err
	}

	clock := shared.NewSimulationClock(settings.OpeningDate, 24*time.Hour)
	rng := rand.New(rand.NewPCG(settings.Seed, settings.Seed))

	s := &Simulation{
		id:        utils.GenerateRunID(settings.GreenhouseName),
		settings:  settings,
		catalog:   cat,
		manager:   manager,
		inventory: inventory,
		roster:    roster,
		clock:     clock,
		rng:       rng,
		customers: customer.NewGenerator(rng, cat, settings.CustomerNames, settings.Mix),
		workspace: &staff.Workspace{
			Greenhouse:     manager,
			Supplies:       inventory,
			Catalog:        cat,
			Clock:          clock,
			WaterThreshold: settings.WaterThreshold,
			Policy:         settings.Policy,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.ConfigurePlantSelection(settings.PlantSelection); err != nil {
		return nil, err
	}
	return s, nil
}

// hireStaff creates the roster through the role factories
func hireStaff(staffing map[staff.Role]int, capacity int) (*staff.Roster, error) {
	roster := staff.NewRoster()
	for _, role := range staff.Roles() {
		factory, err := staff.FactoryFor(role, capacity)
		if err != nil {
			return nil, err
		}
		for i := 0; i < staffing[role]; i++ {
			roster.Hire(factory.CreateEmployee())
		}
	}
	return roster, nil
}

// ConfigurePlantSelection stocks count plants of each species. The first
// InitialMatureFraction of each species starts mature so the shop opens with
// something to sell. Species are stocked in name order.
func (s *Simulation) ConfigurePlantSelection(selection map[string]int) error {
	names := make([]string, 0, len(selection))
	for name := range selection {
		names = append(names, name)
	}
	sort.Strings(names)

	policy := s.settings.Policy
	for _, name := range names {
		info, ok := s.catalog.Lookup(name)
		if !ok {
			return shared.NewNotFoundError("species", name)
		}
		s.track(info.Name)

		count := selection[name]
		mature := int(math.Round(float64(count) * s.settings.InitialMatureFraction))
		for i := 0; i < count; i++ {
			opts := []garden.PlantOption{garden.WithPolicy(policy)}
			if i < mature {
				opts = append(opts, garden.WithStage(garden.StageMature), garden.WithAge(policy.MaturityAge))
			}
			p, err := s.catalog.NewPlant(info.Name, opts...)
			if err != nil {
				return err
			}
			if err := s.manager.AddPlant(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Simulation) track(species string) {
	for _, name := range s.selection {
		if name == species {
			return
		}
	}
	s.selection = append(s.selection, species)
	sort.Strings(s.selection)
}

func (s *Simulation) ID() string                      { return s.id }
func (s *Simulation) Settings() Settings              { return s.settings }
func (s *Simulation) Greenhouse() *greenhouse.Manager { return s.manager }
func (s *Simulation) Supplies() *supplies.Inventory   { return s.inventory }
func (s *Simulation) Roster() *staff.Roster           { return s.roster }
func (s *Simulation) Day() int                        { return s.clock.Day() }
func (s *Simulation) Events() []Event                 { return s.events.Events() }
func (s *Simulation) Days() []DaySummary              { return append([]DaySummary(nil), s.days...) }
func (s *Simulation) Orders() []OrderRecord           { return append([]OrderRecord(nil), s.orders...) }

// Run plays every configured day. Cancelling ctx stops the run between days.
func (s *Simulation) Run(ctx context.Context) (*RunResult, error) {
	logger := common.LoggerFromContext(ctx)
	logger.Log(common.LevelInfo, "simulation started", map[string]interface{}{
		"run_id":     s.id,
		"days":       s.settings.Days,
		"seed":       s.settings.Seed,
		"greenhouse": s.settings.GreenhouseName,
		"employees":  len(s.roster.Employees()),
	})

	for s.clock.Day() < s.settings.Days {
		if err := ctx.Err(); err != nil {
			return s.result(), err
		}
		s.RunDay(ctx)
	}

	totals := s.result().Totals()
	logger.Log(common.LevelInfo, "simulation finished", map[string]interface{}{
		"run_id":    s.id,
		"orders":    totals.OrdersCompleted,
		"failed":    totals.OrdersFailed,
		"unhandled": totals.Unhandled,
		"revenue":   totals.Revenue.String(),
	})
	return s.result(), nil
}

func (s *Simulation) result() *RunResult {
	return &RunResult{
		RunID:  s.id,
		Seed:   s.settings.Seed,
		Days:   s.Days(),
		Orders: s.Orders(),
		Events: s.Events(),
	}
}

// RunDay plays a single business day and returns its summary
func (s *Simulation) RunDay(ctx context.Context) DaySummary {
	day := s.clock.Tick()
	level := s.businessLevel(day)
	summary := DaySummary{Day: day, Date: s.clock.Now(), BusinessLevel: level}
	s.events.Record(Event{Day: day, Kind: EventDayStarted, Message: string(level) + " business"})

	s.roster.StartShift()

	tick := s.manager.AdvanceAll()
	summary.Matured = tick.Matured
	summary.Died = tick.Died

	for _, req := range s.restockRequests() {
		s.dispatch(ctx, &summary, req)
	}
	for _, req := range s.maintenanceRequests(day) {
		s.dispatch(ctx, &summary, req)
	}

	for _, c := range s.customers.Batch(s.settings.CustomersPerLevel[level]) {
		summary.Customers++
		s.dispatch(ctx, &summary, c.Visit())
	}

	summary.Pruned = s.manager.ClearAllDead()
	if summary.Pruned > 0 {
		s.events.Record(Event{Day: day, Kind: EventPruned, Message: pluralPlants(summary.Pruned) + " removed"})
	}
	summary.Census = s.manager.Census()
	s.days = append(s.days, summary)

	if s.metrics != nil {
		s.metrics.RecordDay(summary)
	}
	common.LoggerFromContext(ctx).Log(common.LevelInfo, "day closed", map[string]interface{}{
		"day":       day,
		"business":  string(level),
		"customers": summary.Customers,
		"orders":    summary.OrdersCompleted,
		"failed":    summary.OrdersFailed,
		"unhandled": summary.Unhandled,
		"pruned":    summary.Pruned,
		"revenue":   summary.Revenue.String(),
		"plants":    summary.Census.Total,
	})
	return summary
}

// businessLevel uses the configured level for the day, or draws one
func (s *Simulation) businessLevel(day int) BusinessLevel {
	if day-1 < len(s.settings.BusinessLevels) {
		return s.settings.BusinessLevels[day-1]
	}
	levels := BusinessLevels()
	return levels[s.rng.IntN(len(levels))]
}

// restockRequests asks for seedlings of every selected species whose living
// count fell below the restock threshold
func (s *Simulation) restockRequests() []request.Request {
	if s.settings.RestockAmount == 0 {
		return nil
	}
	census := s.manager.Census()
	var out []request.Request
	for _, species := range s.selection {
		if census.Living(species) < s.settings.RestockThreshold {
			out = append(out, &request.Planting{Species: species, Count: s.settings.RestockAmount})
		}
	}
	return out
}

// maintenanceRequests moves every section into the light on the first day and
// waters each section holding a living plant below the water threshold
func (s *Simulation) maintenanceRequests(day int) []request.Request {
	var out []request.Request
	if day == 1 {
		for _, name := range s.manager.SectionNames()[1:] {
			out = append(out, &request.Maintenance{Section: name, Action: request.MaintenanceMove})
		}
	}

	seen := make(map[string]bool)
	for _, p := range s.manager.Plants() {
		if p.IsDead() || p.WaterLevel() >= s.settings.WaterThreshold || p.Parent() == nil {
			continue
		}
		section := p.Parent().Name()
		if seen[section] {
			continue
		}
		seen[section] = true
		out = append(out, &request.Maintenance{Section: section, Action: request.MaintenanceWater})
	}
	return out
}

// dispatch routes one request and folds the outcome into the day summary.
// Orders that fail for lack of stock are escalated to a manager.
func (s *Simulation) dispatch(ctx context.Context, summary *DaySummary, req request.Request) {
	logger := common.LoggerFromContext(ctx)

	out, err := s.roster.Dispatch(req, s.workspace)
	if err != nil {
		summary.Unhandled++
		s.events.Record(Event{Day: summary.Day, Kind: EventUnhandled, Message: err.Error()})
		if s.metrics != nil {
			s.metrics.RecordUnhandled(req.Category())
		}
		logger.Log(common.LevelWarning, "request unhandled", map[string]interface{}{
			"day":       summary.Day,
			"category":  string(req.Category()),
			"requester": req.Requester(),
			"error":     err.Error(),
		})
		return
	}

	if s.metrics != nil {
		s.metrics.RecordOutcome(out)
	}

	kind := EventHandled
	if out.Err != nil {
		kind = EventFailed
	}
	s.events.Record(Event{Day: summary.Day, Kind: kind, Employee: out.Employee, Message: out.Message})
	logger.Log(common.LevelDebug, out.Message, map[string]interface{}{
		"day":      summary.Day,
		"employee": out.Employee,
		"category": string(req.Category()),
	})

	switch r := req.(type) {
	case *request.Order:
		s.recordOrder(summary, out.Order)
		if out.Err == nil {
			summary.OrdersCompleted++
			summary.Revenue += out.Order.CalculateTotal()
			return
		}
		summary.OrdersFailed++
		if outOfStock(out.Err) {
			s.events.Record(Event{Day: summary.Day, Kind: EventEscalated, Employee: out.Employee, Message: r.Customer + ": " + out.Err.Error()})
			s.dispatch(ctx, summary, &request.Escalation{Customer: r.Customer, Reason: out.Err.Error(), Original: r})
		}
	case *request.Query, *request.Advice:
		summary.QueriesAnswered++
	case *request.Complaint:
		summary.Complaints++
	case *request.Escalation:
		summary.Escalations++
	case *request.Maintenance:
		summary.MaintenanceTasks++
		summary.Watered += out.Watered
		summary.Moved += out.Moved
	case *request.Planting:
		summary.PlantsPlanted += out.Planted
	}
}

func (s *Simulation) recordOrder(summary *DaySummary, order *sales.Order) {
	if order == nil {
		return
	}
	s.orders = append(s.orders, OrderRecord{
		OrderID:  order.ID(),
		Day:      summary.Day,
		Customer: order.Customer(),
		Cashier:  order.Cashier(),
		Status:   string(order.Status()),
		Plants:   order.PlantCount(),
		Total:    order.CalculateTotal(),
		Reason:   order.CancelReason(),
	})
}

func outOfStock(err error) bool {
	var stock *shared.InsufficientStockError
	var supply *supplies.ErrInsufficientSupply
	return errors.As(err, &stock) || errors.As(err, &supply)
}

func pluralPlants(n int) string {
	if n == 1 {
		return "1 dead plant"
	}
	return fmt.Sprintf("%d dead plants", n)
}
