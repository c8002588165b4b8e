package simulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/greenhouse-go/internal/domain/customer"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

// BusinessLevel sets how many customers visit on a day
type BusinessLevel string

const (
	BusinessLow    BusinessLevel = "LOW"
	BusinessMedium BusinessLevel = "MEDIUM"
	BusinessHigh   BusinessLevel = "HIGH"
)

// BusinessLevels returns every level in ascending order
func BusinessLevels() []BusinessLevel {
	return []BusinessLevel{BusinessLow, BusinessMedium, BusinessHigh}
}

// ParseBusinessLevel accepts LOW, MEDIUM (or MED) and HIGH in any case
func ParseBusinessLevel(s string) (BusinessLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return BusinessLow, nil
	case "MEDIUM", "MED":
		return BusinessMedium, nil
	case "HIGH":
		return BusinessHigh, nil
	}
	return "", shared.NewValidationError("business_level", fmt.Sprintf("unknown level %q", s))
}

// SupplyStock is the opening stock and unit price of one supply item
type SupplyStock struct {
	Category supplies.Category
	Name     string
	Quantity int
	Price    shared.Money
}

// Settings is the immutable snapshot a run is configured from
type Settings struct {
	Days           int
	Seed           uint64
	GreenhouseName string
	OpeningDate    time.Time

	// BusinessLevels is consumed one entry per day. Days past the end of the
	// list draw a level at random.
	BusinessLevels    []BusinessLevel
	CustomersPerLevel map[BusinessLevel]int
	Mix               customer.Mix
	CustomerNames     []string

	Staffing map[staff.Role]int
	// Capacity is how many requests each employee handles per day; zero is unlimited
	Capacity int

	PlantSelection        map[string]int
	InitialMatureFraction float64
	RestockThreshold      int
	RestockAmount         int

	WaterThreshold float64
	Policy         garden.LifecyclePolicy
	Supplies       []SupplyStock
}

// DefaultSettings returns a one-week run of a small garden center
func DefaultSettings() Settings {
	return Settings{
		Days:           7,
		Seed:           42,
		GreenhouseName: "Greenhouse",
		OpeningDate:    time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		CustomersPerLevel: map[BusinessLevel]int{
			BusinessLow:    3,
			BusinessMedium: 6,
			BusinessHigh:   10,
		},
		Mix: customer.DefaultMix(),
		Staffing: map[staff.Role]int{
			staff.RoleCashier:   2,
			staff.RoleCaretaker: 1,
			staff.RoleManager:   1,
		},
		Capacity: 8,
		PlantSelection: map[string]int{
			"rose":      4,
			"cactus":    4,
			"basil":     4,
			"mint":      3,
			"monstera":  3,
			"lavender":  3,
			"aloe vera": 3,
			"orchid":    2,
		},
		InitialMatureFraction: 0.5,
		RestockThreshold:      2,
		RestockAmount:         3,
		WaterThreshold:        0.5,
		Policy:                garden.DefaultLifecyclePolicy(),
		Supplies:              DefaultSupplies(),
	}
}

// DefaultSupplies is the opening supply stock with fixed prices
func DefaultSupplies() []SupplyStock {
	return []SupplyStock{
		{Category: supplies.CategorySoil, Name: supplies.BasicSoil, Quantity: 50, Price: shared.Dollars(2.50)},
		{Category: supplies.CategoryContainer, Name: supplies.BasicContainer, Quantity: 40, Price: shared.Dollars(3.00)},
		{Category: supplies.CategoryContainer, Name: supplies.BouquetContainer, Quantity: 20, Price: shared.Dollars(4.00)},
		{Category: supplies.CategoryWrapper, Name: supplies.KraftWrapping, Quantity: 30, Price: shared.Dollars(1.50)},
		{Category: supplies.CategoryCard, Name: supplies.GreetingCard, Quantity: 30, Price: shared.Dollars(1.00)},
	}
}

// Validate checks the settings before a run is built
func (s Settings) Validate() error {
	if s.Days < 1 {
		return shared.NewValidationError("days", "must be at least 1")
	}
	if strings.TrimSpace(s.GreenhouseName) == "" {
		return shared.NewValidationError("greenhouse_name", "cannot be empty")
	}
	for _, level := range s.BusinessLevels {
		if _, err := ParseBusinessLevel(string(level)); err != nil {
			return err
		}
	}
	for level, n := range s.CustomersPerLevel {
		if n < 0 {
			return shared.NewValidationError("customers_per_level", fmt.Sprintf("%s cannot be negative", level))
		}
	}
	for role, n := range s.Staffing {
		if _, err := staff.ParseRole(string(role)); err != nil {
			return err
		}
		if n < 0 {
			return shared.NewValidationError("staffing", fmt.Sprintf("%s cannot be negative", role))
		}
	}
	if s.Capacity < 0 {
		return shared.NewValidationError("capacity", "cannot be negative")
	}
	for species, n := range s.PlantSelection {
		if n < 0 {
			return shared.NewValidationError("plant_selection", fmt.Sprintf("%s cannot be negative", species))
		}
	}
	if s.InitialMatureFraction < 0 || s.InitialMatureFraction > 1 {
		return shared.NewValidationError("initial_mature_fraction", "must be between 0 and 1")
	}
	if s.RestockThreshold < 0 || s.RestockAmount < 0 {
		return shared.NewValidationError("restock", "threshold and amount cannot be negative")
	}
	if s.WaterThreshold < 0 || s.WaterThreshold > 1 {
		return shared.NewValidationError("water_threshold", "must be between 0 and 1")
	}
	for _, st := range s.Supplies {
		if st.Quantity < 0 || st.Price < 0 {
			return shared.NewValidationError("supplies", fmt.Sprintf("%s needs a non-negative quantity and price", st.Name))
		}
	}
	return s.Policy.Validate()
}
