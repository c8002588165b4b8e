package garden

import (
	"fmt"
	"strings"
)

// Level grades a plant's sunlight or water needs
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "LOW"
	case LevelMedium:
		return "MEDIUM"
	case LevelHigh:
		return "HIGH"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel accepts LOW, MEDIUM/MED or HIGH in any case
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return LevelLow, nil
	case "MEDIUM", "MED":
		return LevelMedium, nil
	case "HIGH":
		return LevelHigh, nil
	}
	return LevelLow, fmt.Errorf("unknown level %q", s)
}

// Location is where a plant is currently kept
type Location string

const (
	LocationInside     Location = "INSIDE"
	LocationGreenhouse Location = "GREENHOUSE"
	LocationOutside    Location = "OUTSIDE"
)

// ParseLocation accepts INSIDE, GREENHOUSE or OUTSIDE in any case
func ParseLocation(s string) (Location, error) {
	switch loc := Location(strings.ToUpper(strings.TrimSpace(s))); loc {
	case LocationInside, LocationGreenhouse, LocationOutside:
		return loc, nil
	}
	return "", fmt.Errorf("unknown location %q", s)
}

// CareProfile is a species' sunlight and water needs
type CareProfile struct {
	Sunlight Level
	Water    Level
}

// WaterLoss returns the fraction of the water level lost per aging tick
func (c CareProfile) WaterLoss() float64 {
	switch c.Water {
	case LevelHigh:
		return 0.35
	case LevelMedium:
		return 0.25
	default:
		return 0.10
	}
}

// PreferredLocation returns where sunlight exposure puts the plant
func (c CareProfile) PreferredLocation() Location {
	switch c.Sunlight {
	case LevelHigh:
		return LocationOutside
	case LevelMedium:
		return LocationGreenhouse
	default:
		return LocationInside
	}
}

// LifecyclePolicy holds the thresholds driving state transitions
type LifecyclePolicy struct {
	MaturityAge    int
	Lifespan       int
	MinGrowthWater float64
}

// DefaultLifecyclePolicy matures at age 5 with at least half a water level
// and dies once older than 60 ticks.
func DefaultLifecyclePolicy() LifecyclePolicy {
	return LifecyclePolicy{
		MaturityAge:    5,
		Lifespan:       60,
		MinGrowthWater: 0.5,
	}
}

func (p LifecyclePolicy) Validate() error {
	if p.MaturityAge < 0 {
		return fmt.Errorf("maturity age must not be negative")
	}
	if p.Lifespan <= p.MaturityAge {
		return fmt.Errorf("lifespan (%d) must exceed maturity age (%d)", p.Lifespan, p.MaturityAge)
	}
	if p.MinGrowthWater < 0 || p.MinGrowthWater > 1 {
		return fmt.Errorf("minimum growth water must be within [0,1]")
	}
	return nil
}
