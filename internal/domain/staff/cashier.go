package staff

import (
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/sales"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// Cashier checks customers out
type Cashier struct {
	worker
}

func NewCashier(name string, capacity int) *Cashier {
	return &Cashier{worker: worker{name: name, role: RoleCashier, capacity: capacity}}
}

func (c *Cashier) CanHandle(r request.Request) bool {
	return r != nil && r.Category() == request.CategoryOrder
}

func (c *Cashier) Handle(r request.Request, ws *Workspace) Outcome {
	req, ok := r.(*request.Order)
	if !ok {
		return c.refuse(r)
	}

	order, err := c.Construct(req, ws)
	out := c.outcome(r, "sold %d plants to %s for %s", order.PlantCount(), req.Customer, order.CalculateTotal())
	out.Order = order
	if err != nil {
		out.Message = "could not fill order for " + req.Customer + ": " + err.Error()
		out.Err = err
	}
	return out
}

// Construct assembles and sells the requested product. Stock and supplies
// are checked before anything changes, so a failed construction leaves the
// greenhouse and supplies untouched and returns a cancelled order.
func (c *Cashier) Construct(req *request.Order, ws *Workspace) (*sales.Order, error) {
	order := sales.NewOrder(req.Customer, ws.Clock)

	fail := func(err error) (*sales.Order, error) {
		_ = order.Cancel(err.Error())
		return order, err
	}

	if req.Units() == 0 {
		return fail(shared.NewValidationError("lines", "order has no plants"))
	}

	units, err := c.pick(req.Lines, ws)
	if err != nil {
		return fail(err)
	}

	product, err := sales.Assemble(units, req.Extras)
	if err != nil {
		return fail(err)
	}
	if err := ws.Supplies.Check(product.Requirements()); err != nil {
		return fail(err)
	}
	if err := order.AddProduct(product, ws.Supplies.Price); err != nil {
		return fail(err)
	}

	// Commit
	for _, unit := range units {
		if err := unit.MarkSold(); err != nil {
			return fail(err)
		}
		if err := ws.Greenhouse.RemovePlant(unit); err != nil {
			return fail(err)
		}
	}
	if err := ws.Supplies.UseAll(product.Requirements()); err != nil {
		return fail(err)
	}

	if err := order.Process(c.name); err != nil {
		return order, err
	}
	if err := order.Complete(); err != nil {
		return order, err
	}
	order.TogglePayment()
	return order, nil
}

// pick selects distinct sellable units for every line. Lines naming the same
// species draw from one pool.
func (c *Cashier) pick(lines []request.Line, ws *Workspace) ([]*garden.Plant, error) {
	wanted := make(map[string]int)
	var order []string
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, shared.NewValidationError("quantity", "line quantity must be positive")
		}
		key := strings.ToLower(strings.TrimSpace(l.Species))
		if info, ok := ws.Catalog.Lookup(l.Species); ok {
			key = info.Name
		}
		if _, seen := wanted[key]; !seen {
			order = append(order, key)
		}
		wanted[key] += l.Quantity
	}

	var units []*garden.Plant
	picked := make(map[*garden.Plant]bool)
	for _, species := range order {
		found := ws.Greenhouse.FindSellable(species, wanted[species])
		if len(found) < wanted[species] {
			return nil, shared.NewInsufficientStockError(species, wanted[species], len(found))
		}
		for _, p := range found {
			if picked[p] {
				return nil, shared.NewInsufficientStockError(species, wanted[species], len(found)-1)
			}
			picked[p] = true
			units = append(units, p)
		}
	}
	return units, nil
}
