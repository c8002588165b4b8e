package catalog

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
)

// Preference is an optional care level. The zero value matches anything.
type Preference struct {
	level garden.Level
	set   bool
}

// Prefer returns a preference for exactly the given level
func Prefer(level garden.Level) Preference {
	return Preference{level: level, set: true}
}

// ParsePreference accepts a level name, or "" / "ANY" for no preference
func ParsePreference(s string) (Preference, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ANY", "UNKNOWN":
		return Preference{}, nil
	}
	level, err := garden.ParseLevel(s)
	if err != nil {
		return Preference{}, err
	}
	return Prefer(level), nil
}

func (p Preference) Matches(level garden.Level) bool {
	return !p.set || p.level == level
}

func (p Preference) String() string {
	if !p.set {
		return "ANY"
	}
	return p.level.String()
}

// Criteria describes what a customer is looking for
type Criteria struct {
	Sunlight Preference
	Water    Preference
	Category string
}

func (c Criteria) String() string {
	s := fmt.Sprintf("sunlight=%s water=%s", c.Sunlight, c.Water)
	if c.Category != "" {
		s += " category=" + normalize(c.Category)
	}
	return s
}

// Recommend returns the species matching every stated preference, in catalog order
func (c *Catalog) Recommend(criteria Criteria) []PlantInfo {
	category := normalize(criteria.Category)
	var out []PlantInfo
	for _, e := range c.entries {
		if category != "" && e.Category != category {
			continue
		}
		if criteria.Sunlight.Matches(e.Care.Sunlight) && criteria.Water.Matches(e.Care.Water) {
			out = append(out, e)
		}
	}
	return out
}
