package staff

import (
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// Caretaker looks after the plants and answers stock and care questions
type Caretaker struct {
	worker
}

func NewCaretaker(name string, capacity int) *Caretaker {
	return &Caretaker{worker: worker{name: name, role: RoleCaretaker, capacity: capacity}}
}

func (c *Caretaker) CanHandle(r request.Request) bool {
	if r == nil {
		return false
	}
	switch r.Category() {
	case request.CategoryQuery, request.CategoryAdvice, request.CategoryMaintenance, request.CategoryPlanting:
		return true
	}
	return false
}

func (c *Caretaker) Handle(r request.Request, ws *Workspace) Outcome {
	switch req := r.(type) {
	case *request.Query:
		return c.answerQuery(req, ws)
	case *request.Advice:
		return c.giveAdvice(req, ws)
	case *request.Maintenance:
		return c.maintain(req, ws)
	case *request.Planting:
		return c.plant(req, ws)
	}
	return c.refuse(r)
}

func (c *Caretaker) maintain(req *request.Maintenance, ws *Workspace) Outcome {
	switch req.Action {
	case request.MaintenanceWater:
		n, err := ws.Greenhouse.WaterSection(req.Section, ws.WaterThreshold)
		out := c.outcome(req, "watered %d plants in %s", n, req.Section)
		out.Watered = n
		out.Err = err
		return out
	case request.MaintenanceMove:
		n, err := ws.Greenhouse.MoveSection(req.Section, req.Location)
		out := c.outcome(req, "moved %d plants in %s", n, req.Section)
		out.Moved = n
		out.Err = err
		return out
	}
	out := c.outcome(req, "unknown maintenance action %s", req.Action)
	out.Err = shared.NewValidationError("action", string(req.Action))
	return out
}

func (c *Caretaker) plant(req *request.Planting, ws *Workspace) Outcome {
	planted := 0
	var err error
	for i := 0; i < req.Count; i++ {
		var p *garden.Plant
		if p, err = ws.Catalog.NewPlant(req.Species, garden.WithPolicy(ws.Policy)); err != nil {
			break
		}
		if err = ws.Greenhouse.AddPlant(p); err != nil {
			break
		}
		planted++
	}
	out := c.outcome(req, "planted %d %s seedlings", planted, req.Species)
	out.Planted = planted
	out.Err = err
	return out
}
