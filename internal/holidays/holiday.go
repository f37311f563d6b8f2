package holidays

import (
	"fmt"
	"slices"

	"github.com/username/swiss-holidays/pkg/dateutil"
)

// Scope tells where a holiday applies
type Scope int

const (
	// Nationwide holidays are days off in every canton.
	ScopeNationwide Scope = iota + 1
	// Regional holidays are days off only in the listed cantons.
	ScopeRegional
	// Observance days are shown on calendars but are not days off.
	ScopeObservance
)

var scopeNames = map[Scope]string{
	ScopeNationwide: "nationwide",
	ScopeRegional:   "regional",
	ScopeObservance: "observance",
}

func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

func (s Scope) MarshalText() ([]byte, error) {
	name, ok := scopeNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown scope %d", int(s))
	}
	return []byte(name), nil
}

func (s *Scope) UnmarshalText(data []byte) error {
	for scope, name := range scopeNames {
		if name == string(data) {
			*s = scope
			return nil
		}
	}
	return fmt.Errorf("unknown scope %q", string(data))
}

// Holiday is a single dated entry of a yearly catalog.
type Holiday struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Date        dateutil.Date `json:"date"`
	Scope       Scope         `json:"scope"`
	Regions     []Canton      `json:"regions,omitempty"`
	Description string        `json:"description,omitempty"`
}

// AppliesTo reports whether h is relevant for region.
//
// An empty region matches every holiday, including regional ones, so that
// calendars without a selected canton show all of them. An unknown region
// simply matches no regional holiday.
func (h Holiday) AppliesTo(region Canton) bool {
	if h.Scope != ScopeRegional || region == "" {
		return true
	}
	return slices.Contains(h.Regions, region)
}

// IsDayOff reports whether h is a day off in region. Unlike AppliesTo, an
// empty region only counts nationwide holidays and observances never do.
func (h Holiday) IsDayOff(region Canton) bool {
	switch h.Scope {
	case ScopeNationwide:
		return true
	case ScopeRegional:
		return region != "" && slices.Contains(h.Regions, region)
	}
	return false
}

func (h Holiday) clone() Holiday {
	h.Regions = slices.Clone(h.Regions)
	return h
}
