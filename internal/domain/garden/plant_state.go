package garden

import (
	"fmt"
	"strings"
)

// Stage orders the plant lifecycle. Transitions never lower it.
type Stage int

const (
	StageSeedling Stage = iota
	StageMature
	StageDead
)

func (s Stage) String() string {
	switch s {
	case StageSeedling:
		return "SEEDLING"
	case StageMature:
		return "MATURE"
	case StageDead:
		return "DEAD"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// PlantState is one of SeedlingState, MatureState or DeadState.
//
// Each state decides its own successor on an aging tick; the plant only
// forwards the tick. Dead is terminal and ignores further ticks.
type PlantState interface {
	Stage() Stage
	Name() string
	CanSell() bool
	advance(p *Plant) PlantState
}

// SeedlingState is a young plant, too young to sell
type SeedlingState struct{}

func (SeedlingState) Stage() Stage  { return StageSeedling }
func (SeedlingState) Name() string  { return "Seedling" }
func (SeedlingState) CanSell() bool { return false }

func (s SeedlingState) advance(p *Plant) PlantState {
	if p.age >= p.policy.MaturityAge && p.water >= p.policy.MinGrowthWater {
		return MatureState{}
	}
	return s
}

// MatureState is a plant ready for sale
type MatureState struct{}

func (MatureState) Stage() Stage  { return StageMature }
func (MatureState) Name() string  { return "Mature" }
func (MatureState) CanSell() bool { return true }

func (s MatureState) advance(p *Plant) PlantState {
	if p.age > p.policy.Lifespan {
		return DeadState{}
	}
	return s
}

// DeadState is terminal
type DeadState struct{}

func (DeadState) Stage() Stage  { return StageDead }
func (DeadState) Name() string  { return "Dead" }
func (DeadState) CanSell() bool { return false }

func (s DeadState) advance(*Plant) PlantState { return s }

// StateFor returns the state value for a stage
func StateFor(stage Stage) PlantState {
	switch stage {
	case StageMature:
		return MatureState{}
	case StageDead:
		return DeadState{}
	default:
		return SeedlingState{}
	}
}

// ParseStage accepts SEEDLING, MATURE or DEAD in any case
func ParseStage(s string) (Stage, error) {
	for _, st := range []Stage{StageSeedling, StageMature, StageDead} {
		if st.String() == strings.ToUpper(strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return StageSeedling, fmt.Errorf("unknown stage %q", s)
}

// Transition records the state change produced by one aging tick
type Transition struct {
	From Stage
	To   Stage
}

func (t Transition) Changed() bool {
	return t.From != t.To
}

func (t Transition) Died() bool {
	return t.From != StageDead && t.To == StageDead
}

func (t Transition) Matured() bool {
	return t.From == StageSeedling && t.To == StageMature
}
