package staff

import (
	"sort"

	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
)

// Roster holds the employees on shift in dispatch order: cashiers, then
// caretakers, then managers, each role in hiring order.
type Roster struct {
	employees []Employee
}

// NewRoster orders employees by role priority, keeping hiring order within a role
func NewRoster(employees ...Employee) *Roster {
	r := &Roster{}
	for _, e := range employees {
		r.Hire(e)
	}
	return r
}

// Hire adds an employee at the end of its role group
func (r *Roster) Hire(e Employee) {
	if e == nil {
		return
	}
	r.employees = append(r.employees, e)
	sort.SliceStable(r.employees, func(i, j int) bool {
		return r.employees[i].Role().Priority() < r.employees[j].Role().Priority()
	})
}

// Employees returns the roster in dispatch order
func (r *Roster) Employees() []Employee {
	return append([]Employee(nil), r.employees...)
}

// Count returns how many employees hold a role
func (r *Roster) Count(role Role) int {
	n := 0
	for _, e := range r.employees {
		if e.Role() == role {
			n++
		}
	}
	return n
}

// StartShift resets every employee's workload
func (r *Roster) StartShift() {
	for _, e := range r.employees {
		e.StartShift()
	}
}

// Route returns the first available employee that accepts the request
func (r *Roster) Route(req request.Request) (Employee, bool) {
	if req == nil {
		return nil, false
	}
	for _, e := range r.employees {
		if e.CanHandle(req) && e.Available() {
			return e, true
		}
	}
	return nil, false
}

// Dispatch routes the request and lets the chosen employee handle it. When
// nobody accepts, the error is an *ErrUnhandledRequest and nothing changes.
func (r *Roster) Dispatch(req request.Request, ws *Workspace) (Outcome, error) {
	e, ok := r.Route(req)
	if !ok {
		reason := "no employee accepts this request"
		if r.accepts(req) {
			reason = "every qualified employee is busy"
		}
		unhandled := &ErrUnhandledRequest{Reason: reason}
		if req != nil {
			unhandled.Category = req.Category()
			unhandled.Requester = req.Requester()
		}
		return Outcome{Request: req, Message: unhandled.Error()}, unhandled
	}
	e.claim()
	return e.Handle(req, ws), nil
}

func (r *Roster) accepts(req request.Request) bool {
	if req == nil {
		return false
	}
	for _, e := range r.employees {
		if e.CanHandle(req) {
			return true
		}
	}
	return false
}
