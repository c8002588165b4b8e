package sales

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

// LineItem is one priced line of an order: either a plant reference or a
// supply item with its unit price.
type LineItem struct {
	Plant     *garden.Plant
	Supply    supplies.Item
	UnitPrice shared.Money
	Quantity  int
}

// Description names what the line is for
func (l LineItem) Description() string {
	if l.Plant != nil {
		return l.Plant.Name()
	}
	return l.Supply.Name
}

// Price is the current unit price. Plant lines read it from the plant.
func (l LineItem) Price() shared.Money {
	if l.Plant != nil {
		return l.Plant.Price()
	}
	return l.UnitPrice
}

func (l LineItem) Subtotal() shared.Money {
	return l.Price().Times(l.Quantity)
}

// Order is a customer's basket. Totals are recomputed from the line items on
// every call; nothing is cached.
type Order struct {
	id        string
	customer  string
	cashier   string
	items     []LineItem
	products  []*Product
	paid      bool
	lifecycle *orderLifecycle
}

// NewOrder opens an empty pending order
func NewOrder(customer string, clock shared.Clock) *Order {
	return &Order{
		id:        uuid.NewString(),
		customer:  customer,
		lifecycle: newOrderLifecycle(clock),
	}
}

func (o *Order) ID() string           { return o.id }
func (o *Order) Customer() string     { return o.customer }
func (o *Order) Cashier() string      { return o.cashier }
func (o *Order) Status() OrderStatus  { return o.lifecycle.status }
func (o *Order) IsPaid() bool         { return o.paid }
func (o *Order) CreatedAt() time.Time { return o.lifecycle.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.lifecycle.updatedAt }
func (o *Order) ClosedAt() *time.Time { return o.lifecycle.closedAt }
func (o *Order) CancelReason() string { return o.lifecycle.cancelReason }
func (o *Order) Products() []*Product { return append([]*Product(nil), o.products...) }
func (o *Order) Items() []LineItem    { return append([]LineItem(nil), o.items...) }

// AddPlant appends a plant line
func (o *Order) AddPlant(plant *garden.Plant, quantity int) error {
	if plant == nil {
		return shared.NewValidationError("plant", "plant must not be nil")
	}
	return o.addLine(LineItem{Plant: plant, Quantity: quantity})
}

// AddSupply appends a supply line at the given unit price
func (o *Order) AddSupply(item supplies.Item, unitPrice shared.Money, quantity int) error {
	if unitPrice < 0 {
		return shared.NewValidationError("price", "unit price must not be negative")
	}
	return o.addLine(LineItem{Supply: item, UnitPrice: unitPrice, Quantity: quantity})
}

// AddProduct records an assembled product and appends its lines
func (o *Order) AddProduct(product *Product, prices func(supplies.Item) shared.Money) error {
	if product == nil {
		return shared.NewValidationError("product", "product must not be nil")
	}
	for _, line := range product.Lines(prices) {
		if err := o.addLine(line); err != nil {
			return err
		}
	}
	o.products = append(o.products, product)
	return nil
}

// RemoveLine deletes the line at index
func (o *Order) RemoveLine(index int) error {
	if o.lifecycle.status != OrderStatusPending {
		return &ErrInvalidTransition{From: o.lifecycle.status, Attempted: "modify"}
	}
	if index < 0 || index >= len(o.items) {
		return shared.NewValidationError("index", fmt.Sprintf("line %d out of range", index))
	}
	o.items = append(o.items[:index], o.items[index+1:]...)
	o.lifecycle.touch()
	return nil
}

func (o *Order) addLine(line LineItem) error {
	if o.lifecycle.status != OrderStatusPending {
		return &ErrInvalidTransition{From: o.lifecycle.status, Attempted: "modify"}
	}
	if line.Quantity <= 0 {
		return shared.NewValidationError("quantity", "quantity must be positive")
	}
	o.items = append(o.items, line)
	o.lifecycle.touch()
	return nil
}

// CalculateTotal sums unit price times quantity over every line.
// An empty order totals zero.
func (o *Order) CalculateTotal() shared.Money {
	var total shared.Money
	for _, line := range o.items {
		total += line.Subtotal()
	}
	return total
}

// PlantCount is the number of plant units on the order
func (o *Order) PlantCount() int {
	n := 0
	for _, line := range o.items {
		if line.Plant != nil {
			n += line.Quantity
		}
	}
	return n
}

// Process hands the order to a cashier
func (o *Order) Process(cashier string) error {
	if err := o.lifecycle.process(); err != nil {
		return err
	}
	o.cashier = cashier
	return nil
}

func (o *Order) Complete() error {
	return o.lifecycle.complete()
}

func (o *Order) Cancel(reason string) error {
	return o.lifecycle.cancel(reason)
}

// TogglePayment flips the payment-received flag
func (o *Order) TogglePayment() {
	o.paid = !o.paid
	o.lifecycle.touch()
}

// Details renders a receipt
func (o *Order) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s for %s [%s]\n", o.id, o.customer, o.lifecycle.status)
	if o.cashier != "" {
		fmt.Fprintf(&b, "Cashier: %s\n", o.cashier)
	}
	for _, line := range o.items {
		fmt.Fprintf(&b, "- %s x%d @ %s = %s\n", line.Description(), line.Quantity, line.Price(), line.Subtotal())
	}
	fmt.Fprintf(&b, "Total: %s\n", o.CalculateTotal())
	paid := "no"
	if o.paid {
		paid = "yes"
	}
	fmt.Fprintf(&b, "Paid: %s", paid)
	if o.lifecycle.cancelReason != "" {
		fmt.Fprintf(&b, "\nCancelled: %s", o.lifecycle.cancelReason)
	}
	return b.String()
}
