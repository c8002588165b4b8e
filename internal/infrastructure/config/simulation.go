package config

import (
	"fmt"
	"time"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/customer"
	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
	"github.com/andrescamacho/greenhouse-go/internal/domain/staff"
	"github.com/andrescamacho/greenhouse-go/internal/domain/supplies"
)

const dateLayout = "2006-01-02"

// SimulationConfig describes one simulation run
type SimulationConfig struct {
	Days           int    `mapstructure:"days" validate:"min=1,max=3650"`
	Seed           uint64 `mapstructure:"seed"`
	GreenhouseName string `mapstructure:"greenhouse_name" validate:"required"`
	OpeningDate    string `mapstructure:"opening_date" validate:"required,datetime=2006-01-02"`

	// Days beyond the end of this list get a random level
	BusinessLevels    []string       `mapstructure:"business_levels" validate:"dive,business_level"`
	CustomersPerLevel map[string]int `mapstructure:"customers_per_level" validate:"dive,keys,business_level,endkeys,min=0"`
	CustomerNames     []string       `mapstructure:"customer_names" validate:"dive,required"`

	OrderProbability     float64 `mapstructure:"order_probability" validate:"min=0,max=1"`
	AdviceProbability    float64 `mapstructure:"advice_probability" validate:"min=0,max=1"`
	ComplaintProbability float64 `mapstructure:"complaint_probability" validate:"min=0,max=1"`
	ExtrasProbability    float64 `mapstructure:"extras_probability" validate:"min=0,max=1"`
	MaxOrderLines        int     `mapstructure:"max_order_lines" validate:"min=1"`
	MaxQuantity          int     `mapstructure:"max_quantity" validate:"min=1"`

	Staffing map[string]int `mapstructure:"staffing" validate:"dive,keys,employee_role,endkeys,min=0"`
	// Requests each employee handles per day, 0 for unlimited
	Capacity int `mapstructure:"capacity" validate:"min=0"`

	PlantSelection        map[string]int `mapstructure:"plant_selection" validate:"dive,keys,required,endkeys,min=0"`
	InitialMatureFraction float64        `mapstructure:"initial_mature_fraction" validate:"min=0,max=1"`
	RestockThreshold      int            `mapstructure:"restock_threshold" validate:"min=0"`
	RestockAmount         int            `mapstructure:"restock_amount" validate:"min=0"`
	WaterThreshold        float64        `mapstructure:"water_threshold" validate:"min=0,max=1"`

	Lifecycle LifecycleConfig `mapstructure:"lifecycle"`
	Supplies  []SupplyConfig  `mapstructure:"supplies" validate:"dive"`
}

// LifecycleConfig holds the plant state thresholds
type LifecycleConfig struct {
	MaturityAge    int     `mapstructure:"maturity_age" validate:"min=0"`
	Lifespan       int     `mapstructure:"lifespan" validate:"gtfield=MaturityAge"`
	MinGrowthWater float64 `mapstructure:"min_growth_water" validate:"min=0,max=1"`
}

// SupplyConfig is the opening stock of one supply item
type SupplyConfig struct {
	Category string  `mapstructure:"category" validate:"required,supply_category"`
	Name     string  `mapstructure:"name" validate:"required"`
	Quantity int     `mapstructure:"quantity" validate:"min=0"`
	Price    float64 `mapstructure:"price" validate:"min=0"`
}

// Settings converts the configuration into the snapshot a run is built from
func (c SimulationConfig) Settings() (simulation.Settings, error) {
	opening, err := time.Parse(dateLayout, c.OpeningDate)
	if err != nil {
		return simulation.Settings{}, shared.NewValidationError("opening_date", err.Error())
	}

	s := simulation.Settings{
		Days:           c.Days,
		Seed:           c.Seed,
		GreenhouseName: c.GreenhouseName,
		OpeningDate:    opening,
		Mix: customer.Mix{
			OrderProbability:     c.OrderProbability,
			AdviceProbability:    c.AdviceProbability,
			ComplaintProbability: c.ComplaintProbability,
			MaxOrderLines:        c.MaxOrderLines,
			MaxQuantity:          c.MaxQuantity,
			ExtrasProbability:    c.ExtrasProbability,
		},
		CustomerNames:         c.CustomerNames,
		Capacity:              c.Capacity,
		CustomersPerLevel:     make(map[simulation.BusinessLevel]int, len(c.CustomersPerLevel)),
		Staffing:              make(map[staff.Role]int, len(c.Staffing)),
		PlantSelection:        make(map[string]int, len(c.PlantSelection)),
		InitialMatureFraction: c.InitialMatureFraction,
		RestockThreshold:      c.RestockThreshold,
		RestockAmount:         c.RestockAmount,
		WaterThreshold:        c.WaterThreshold,
		Policy: garden.LifecyclePolicy{
			MaturityAge:    c.Lifecycle.MaturityAge,
			Lifespan:       c.Lifecycle.Lifespan,
			MinGrowthWater: c.Lifecycle.MinGrowthWater,
		},
	}

	for _, raw := range c.BusinessLevels {
		level, err := simulation.ParseBusinessLevel(raw)
		if err != nil {
			return simulation.Settings{}, err
		}
		s.BusinessLevels = append(s.BusinessLevels, level)
	}
	for raw, n := range c.CustomersPerLevel {
		level, err := simulation.ParseBusinessLevel(raw)
		if err != nil {
			return simulation.Settings{}, err
		}
		s.CustomersPerLevel[level] = n
	}
	for raw, n := range c.Staffing {
		role, err := staff.ParseRole(raw)
		if err != nil {
			return simulation.Settings{}, err
		}
		s.Staffing[role] = n
	}
	for species, n := range c.PlantSelection {
		s.PlantSelection[species] = n
	}
	for _, sc := range c.Supplies {
		category, err := supplies.ParseCategory(sc.Category)
		if err != nil {
			return simulation.Settings{}, fmt.Errorf("supply %q: %w", sc.Name, err)
		}
		s.Supplies = append(s.Supplies, simulation.SupplyStock{
			Category: category,
			Name:     sc.Name,
			Quantity: sc.Quantity,
			Price:    shared.Dollars(sc.Price),
		})
	}

	return s, s.Validate()
}

// simulationConfigFrom mirrors run settings back into configuration form
func simulationConfigFrom(s simulation.Settings) SimulationConfig {
	c := SimulationConfig{
		Days:                  s.Days,
		Seed:                  s.Seed,
		GreenhouseName:        s.GreenhouseName,
		OpeningDate:           s.OpeningDate.Format(dateLayout),
		OrderProbability:      s.Mix.OrderProbability,
		AdviceProbability:     s.Mix.AdviceProbability,
		ComplaintProbability:  s.Mix.ComplaintProbability,
		ExtrasProbability:     s.Mix.ExtrasProbability,
		MaxOrderLines:         s.Mix.MaxOrderLines,
		MaxQuantity:           s.Mix.MaxQuantity,
		Capacity:              s.Capacity,
		CustomersPerLevel:     make(map[string]int, len(s.CustomersPerLevel)),
		Staffing:              make(map[string]int, len(s.Staffing)),
		PlantSelection:        make(map[string]int, len(s.PlantSelection)),
		InitialMatureFraction: s.InitialMatureFraction,
		RestockThreshold:      s.RestockThreshold,
		RestockAmount:         s.RestockAmount,
		WaterThreshold:        s.WaterThreshold,
		Lifecycle: LifecycleConfig{
			MaturityAge:    s.Policy.MaturityAge,
			Lifespan:       s.Policy.Lifespan,
			MinGrowthWater: s.Policy.MinGrowthWater,
		},
	}
	for level, n := range s.CustomersPerLevel {
		c.CustomersPerLevel[string(level)] = n
	}
	for role, n := range s.Staffing {
		c.Staffing[string(role)] = n
	}
	for species, n := range s.PlantSelection {
		c.PlantSelection[species] = n
	}
	for _, st := range s.Supplies {
		c.Supplies = append(c.Supplies, SupplyConfig{
			Category: string(st.Category),
			Name:     st.Name,
			Quantity: st.Quantity,
			Price:    st.Price.Float(),
		})
	}
	return c
}
