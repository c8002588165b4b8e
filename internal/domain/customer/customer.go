package customer

import (
	"github.com/andrescamacho/greenhouse-go/internal/domain/catalog"
	"github.com/andrescamacho/greenhouse-go/internal/domain/request"
	"github.com/andrescamacho/greenhouse-go/internal/domain/sales"
)

// Customer is a visitor to the garden center. Each visit produces exactly
// one request: an order when the customer wants to buy, otherwise a query.
type Customer struct {
	name       string
	wantsOrder bool

	wishList []request.Line
	extras   sales.Extras

	interest  string
	criteria  *catalog.Criteria
	complaint string
}

// NewBuyer creates a customer who will place an order
func NewBuyer(name string, wishList []request.Line, extras sales.Extras) *Customer {
	return &Customer{name: name, wantsOrder: true, wishList: wishList, extras: extras}
}

// NewBrowser creates a customer asking whether a species is in stock
func NewBrowser(name, species string) *Customer {
	return &Customer{name: name, interest: species}
}

// NewAdviceSeeker creates a customer asking which species suit their conditions
func NewAdviceSeeker(name string, criteria catalog.Criteria) *Customer {
	return &Customer{name: name, criteria: &criteria}
}

// NewComplainer creates a customer with a grievance
func NewComplainer(name, message string) *Customer {
	return &Customer{name: name, complaint: message}
}

func (c *Customer) Name() string     { return c.name }
func (c *Customer) WantsOrder() bool { return c.wantsOrder }

// Visit returns the single request this customer makes
func (c *Customer) Visit() request.Request {
	if c.wantsOrder {
		return c.CreateCustomerOrder()
	}
	return c.CreateCustomerQuery()
}

// CreateCustomerOrder turns the wish list into an order request
func (c *Customer) CreateCustomerOrder() *request.Order {
	lines := make([]request.Line, len(c.wishList))
	copy(lines, c.wishList)
	return &request.Order{Customer: c.name, Lines: lines, Extras: c.extras}
}

// CreateCustomerQuery returns the customer's non-purchase request: advice,
// a complaint, or a stock query
func (c *Customer) CreateCustomerQuery() request.Request {
	switch {
	case c.criteria != nil:
		return &request.Advice{Customer: c.name, Criteria: *c.criteria}
	case c.complaint != "":
		return &request.Complaint{Customer: c.name, Message: c.complaint}
	default:
		return &request.Query{Customer: c.name, Species: c.interest}
	}
}
