package request

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/sales"
)

// Category is the routing key employees match requests on
type Category string

const (
	CategoryOrder       Category = "ORDER"
	CategoryQuery       Category = "QUERY"
	CategoryAdvice      Category = "ADVICE"
	CategoryMaintenance Category = "MAINTENANCE"
	CategoryPlanting    Category = "PLANTING"
	CategoryComplaint   Category = "COMPLAINT"
	CategoryEscalation  Category = "ESCALATION"
)

// Categories lists every category in a stable order
func Categories() []Category {
	return []Category{
		CategoryOrder,
		CategoryQuery,
		CategoryAdvice,
		CategoryMaintenance,
		CategoryPlanting,
		CategoryComplaint,
		CategoryEscalation,
	}
}

// Request is the closed set of work items routed to employees
type Request interface {
	Category() Category
	// Requester is the customer name, or "front desk" for internal work
	Requester() string
	Describe() string
	isRequest()
}

// FrontDesk is the requester of internally generated work
const FrontDesk = "front desk"

// Line is one species and quantity on an order request
type Line struct {
	Species  string
	Quantity int
}

// Order asks a cashier to assemble and sell plants
type Order struct {
	Customer string
	Lines    []Line
	Extras   sales.Extras
}

func (*Order) Category() Category  { return CategoryOrder }
func (r *Order) Requester() string { return r.Customer }
func (*Order) isRequest()          {}

// Units is the total number of plants requested
func (r *Order) Units() int {
	n := 0
	for _, l := range r.Lines {
		n += l.Quantity
	}
	return n
}

func (r *Order) Describe() string {
	parts := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		parts[i] = fmt.Sprintf("%dx %s", l.Quantity, l.Species)
	}
	s := "order " + strings.Join(parts, ", ")
	if r.Extras.Wrapping {
		s += " (wrapped)"
	}
	if r.Extras.Card {
		s += " (with card)"
	}
	return s
}

// Query asks whether a species is in stock and what it costs
type Query struct {
	Customer string
	Species  string
}

func (*Query) Category() Category  { return CategoryQuery }
func (r *Query) Requester() string { return r.Customer }
func (r *Query) Describe() string  { return "availability of " + r.Species }
func (*Query) isRequest()          {}

// Advice asks for species matching care preferences
type Advice struct {
	Customer string
	Criteria catalog.Criteria
}

func (*Advice) Category() Category  { return CategoryAdvice }
func (r *Advice) Requester() string { return r.Customer }
func (r *Advice) Describe() string  { return "advice for " + r.Criteria.String() }
func (*Advice) isRequest()          {}

// MaintenanceAction is the kind of care a maintenance request performs
type MaintenanceAction string

const (
	MaintenanceWater MaintenanceAction = "WATER"
	MaintenanceMove  MaintenanceAction = "MOVE"
)

// Maintenance asks a caretaker to water or move a section.
// A move with an empty Location follows each plant's sunlight needs.
type Maintenance struct {
	Section  string
	Action   MaintenanceAction
	Location garden.Location
}

func (*Maintenance) Category() Category { return CategoryMaintenance }
func (*Maintenance) Requester() string  { return FrontDesk }
func (*Maintenance) isRequest()         {}

func (r *Maintenance) Describe() string {
	if r.Action == MaintenanceMove {
		target := string(r.Location)
		if target == "" {
			target = "sunlight"
		}
		return fmt.Sprintf("move section %s to %s", r.Section, target)
	}
	return "water section " + r.Section
}

// Planting asks a caretaker to plant new seedlings of a species
type Planting struct {
	Species string
	Count   int
}

func (*Planting) Category() Category { return CategoryPlanting }
func (*Planting) Requester() string  { return FrontDesk }
func (r *Planting) Describe() string { return fmt.Sprintf("plant %d %s", r.Count, r.Species) }
func (*Planting) isRequest()         {}

// Complaint is a dissatisfied customer
type Complaint struct {
	Customer string
	Message  string
}

func (*Complaint) Category() Category  { return CategoryComplaint }
func (r *Complaint) Requester() string { return r.Customer }
func (r *Complaint) Describe() string  { return "complaint: " + r.Message }
func (*Complaint) isRequest()          {}

// Escalation is a request staff could not resolve, passed up to a manager
type Escalation struct {
	Customer string
	Reason   string
	Original Request
}

func (*Escalation) Category() Category  { return CategoryEscalation }
func (r *Escalation) Requester() string { return r.Customer }
func (r *Escalation) Describe() string  { return "escalation: " + r.Reason }
func (*Escalation) isRequest()          {}
