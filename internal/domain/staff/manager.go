package staff

import (
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
)

// Manager resolves complaints and escalations and covers questions when no
// caretaker is free
type Manager struct {
	worker
}

func NewManager(name string, capacity int) *Manager {
	return &Manager{worker: worker{name: name, role: RoleManager, capacity: capacity}}
}

func (m *Manager) CanHandle(r request.Request) bool {
	if r == nil {
		return false
	}
	switch r.Category() {
	case request.CategoryComplaint, request.CategoryEscalation, request.CategoryQuery, request.CategoryAdvice:
		return true
	}
	return false
}

func (m *Manager) Handle(r request.Request, ws *Workspace) Outcome {
	switch req := r.(type) {
	case *request.Complaint:
		return m.outcome(req, "apologised to %s about %q", req.Customer, req.Message)
	case *request.Escalation:
		return m.outcome(req, "resolved escalation for %s: %s", req.Customer, req.Reason)
	case *request.Query:
		return m.answerQuery(req, ws)
	case *request.Advice:
		return m.giveAdvice(req, ws)
	}
	return m.refuse(r)
}
