package staff

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/sales"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

// Role is an employee's job. Its order is the dispatch priority.
type Role string

const (
	RoleCashier   Role = "CASHIER"
	RoleCaretaker Role = "CARETAKER"
	RoleManager   Role = "MANAGER"
)

// Roles lists every role in dispatch priority order
func Roles() []Role {
	return []Role{RoleCashier, RoleCaretaker, RoleManager}
}

// Priority is the dispatch rank of a role, lowest first
func (r Role) Priority() int {
	switch r {
	case RoleCashier:
		return 0
	case RoleCaretaker:
		return 1
	case RoleManager:
		return 2
	}
	return 3
}

// ParseRole accepts a role name in any case
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleCashier, RoleCaretaker, RoleManager:
		return r, nil
	}
	return "", &ErrUnknownRole{Role: s}
}

// Workspace is everything an employee may read or change while handling a request
type Workspace struct {
	Greenhouse *greenhouse.Manager
	Supplies   *supplies.Inventory
	Catalog    *catalog.Catalog
	Clock      shared.Clock

	// WaterThreshold is the level below which caretakers top plants up
	WaterThreshold float64
	// Policy is applied to newly planted seedlings
	Policy garden.LifecyclePolicy
}

// Outcome is the result of one employee handling one request
type Outcome struct {
	Employee string
	Role     Role
	Request  request.Request
	Message  string

	Order           *sales.Order
	Recommendations []catalog.PlantInfo
	Watered         int
	Moved           int
	Planted         int

	// Err is a handling failure such as missing stock. The request still
	// counts as handled.
	Err error
}

// Employee is one of Cashier, Caretaker or Manager
type Employee interface {
	Name() string
	Role() Role
	CanHandle(r request.Request) bool
	Handle(r request.Request, ws *Workspace) Outcome

	// Available reports whether the employee can take more work this shift
	Available() bool
	// StartShift resets the per-shift workload
	StartShift()
	Handled() int

	claim()
}

// worker carries the state shared by every role
type worker struct {
	name     string
	role     Role
	capacity int
	handled  int
	total    int
}

func (w *worker) Name() string { return w.name }
func (w *worker) Role() Role   { return w.role }
func (w *worker) Handled() int { return w.total }
func (w *worker) StartShift()  { w.handled = 0 }

// Available is always true for an unlimited (zero) capacity
func (w *worker) Available() bool {
	return w.capacity <= 0 || w.handled < w.capacity
}

func (w *worker) claim() {
	w.handled++
	w.total++
}

func (w *worker) outcome(r request.Request, format string, args ...any) Outcome {
	return Outcome{
		Employee: w.name,
		Role:     w.role,
		Request:  r,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (w *worker) refuse(r request.Request) Outcome {
	out := w.outcome(r, "%s cannot handle %s requests", w.name, r.Category())
	out.Err = &ErrUnhandledRequest{Category: r.Category(), Requester: r.Requester(), Reason: "routed to wrong role"}
	return out
}

// answerQuery reports stock and price for a species
func (w *worker) answerQuery(q *request.Query, ws *Workspace) Outcome {
	info, ok := ws.Catalog.Lookup(q.Species)
	if !ok {
		out := w.outcome(q, "we do not carry %s", q.Species)
		out.Err = shared.NewNotFoundError("species", q.Species)
		return out
	}
	available := ws.Greenhouse.Available(info.Name)
	if available == 0 {
		return w.outcome(q, "%s is out of stock (%s each)", info.Name, info.Price)
	}
	return w.outcome(q, "%d %s ready for sale at %s each", available, info.Name, info.Price)
}

// giveAdvice recommends catalogued species matching the criteria
func (w *worker) giveAdvice(a *request.Advice, ws *Workspace) Outcome {
	matches := ws.Catalog.Recommend(a.Criteria)
	if len(matches) == 0 {
		return w.outcome(a, "no species match %s", a.Criteria)
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	out := w.outcome(a, "recommended: %s", strings.Join(names, ", "))
	out.Recommendations = matches
	return out
}
