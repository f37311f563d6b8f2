package holidays

import (
	"sort"
	"time"

	"github.com/username/swiss-holidays/pkg/dateutil"
)

// rule describes how to place one holiday in a given year
type rule struct {
	id          string
	name        string
	scope       Scope
	regions     []Canton
	description string
	date        func(year int) dateutil.Date
}

func fixed(month time.Month, day int) func(int) dateutil.Date {
	return func(year int) dateutil.Date {
		return dateutil.Date{Year: year, Month: month, Day: day}
	}
}

func easterOffset(days int) func(int) dateutil.Date {
	return func(year int) dateutil.Date {
		return EasterSunday(year).AddDays(days)
	}
}

// FederalFast returns the third Sunday of September: the first Sunday on or
// after September 15th, which always falls between the 15th and the 21st.
func FederalFast(year int) dateutil.Date {
	return dateutil.NextWeekday(dateutil.Date{Year: year, Month: time.September, Day: 15}, time.Sunday)
}

// Declaration order is the tie-break order of the sorted catalog.
var rules = []rule{
	{
		id:          "new-year",
		name:        "Nouvel An",
		scope:       ScopeNationwide,
		description: "Jour de l'An - férié dans toute la Suisse",
		date:        fixed(time.January, 1),
	},
	{
		id:          "berchtold",
		name:        "Berchtoldstag",
		scope:       ScopeRegional,
		regions:     []Canton{"BE", "JU", "NE", "SH", "TG", "VD", "ZH"},
		description: "2 janvier - férié dans certains cantons",
		date:        fixed(time.January, 2),
	},
	{
		id:          "epiphany",
		name:        "Épiphanie",
		scope:       ScopeRegional,
		regions:     []Canton{"SZ", "TI", "UR"},
		description: "Jour des Rois - férié dans certains cantons",
		date:        fixed(time.January, 6),
	},
	{
		id:          "labour-day",
		name:        "Fête du Travail",
		scope:       ScopeRegional,
		regions:     []Canton{"BL", "BS", "JU", "NE", "SH", "TG", "TI", "ZH"},
		description: "1er mai - férié dans certains cantons",
		date:        fixed(time.May, 1),
	},
	{
		id:          "national-day",
		name:        "Fête nationale",
		scope:       ScopeNationwide,
		description: "Fête nationale suisse - férié dans toute la Suisse",
		date:        fixed(time.August, 1),
	},
	{
		id:          "assumption",
		name:        "Assomption",
		scope:       ScopeRegional,
		regions:     []Canton{"AG", "AI", "FR", "JU", "LU", "NW", "OW", "SO", "SZ", "TI", "UR", "VS", "ZG"},
		description: "15 août - férié dans certains cantons",
		date:        fixed(time.August, 15),
	},
	{
		id:          "federal-fast",
		name:        "Jeûne fédéral",
		scope:       ScopeRegional,
		regions:     []Canton{"BE", "BS", "JU", "NE", "SH", "TG", "VD", "ZH"},
		description: "Jeûne fédéral - 3e dimanche de septembre",
		date:        FederalFast,
	},
	{
		id:          "all-saints",
		name:        "Toussaint",
		scope:       ScopeRegional,
		regions:     []Canton{"AI", "FR", "GL", "JU", "LU", "NW", "OW", "SG", "SO", "SZ", "TI", "UR", "VS", "ZG"},
		description: "1er novembre - férié dans certains cantons",
		date:        fixed(time.November, 1),
	},
	{
		id:          "immaculate-conception",
		name:        "Immaculée Conception",
		scope:       ScopeRegional,
		regions:     []Canton{"AI", "FR", "LU", "NW", "OW", "SZ", "TI", "UR", "VS", "ZG"},
		description: "8 décembre - férié dans certains cantons",
		date:        fixed(time.December, 8),
	},
	{
		id:          "christmas",
		name:        "Noël",
		scope:       ScopeNationwide,
		description: "Noël - férié dans toute la Suisse",
		date:        fixed(time.December, 25),
	},
	{
		id:          "st-stephen",
		name:        "Saint-Étienne",
		scope:       ScopeRegional,
		regions:     []Canton{"AG", "AI", "AR", "BL", "BS", "BE", "FR", "GL", "GR", "JU", "LU", "NE", "NW", "OW", "SG", "SH", "SO", "SZ", "TG", "TI", "UR", "ZG", "ZH"},
		description: "26 décembre - férié dans la plupart des cantons",
		date:        fixed(time.December, 26),
	},
	{
		id:          "good-friday",
		name:        "Vendredi Saint",
		scope:       ScopeNationwide,
		description: "Vendredi Saint - férié dans toute la Suisse",
		date:        easterOffset(-2),
	},
	{
		id:          "easter",
		name:        "Pâques",
		scope:       ScopeObservance,
		description: "Dimanche de Pâques",
		date:        easterOffset(0),
	},
	{
		id:          "easter-monday",
		name:        "Lundi de Pâques",
		scope:       ScopeRegional,
		regions:     []Canton{"BE", "BL", "BS", "JU", "NE", "SH", "TG", "VD", "ZH"},
		description: "Lundi de Pâques - férié dans certains cantons",
		date:        easterOffset(1),
	},
	{
		id:          "ascension",
		name:        "Ascension",
		scope:       ScopeNationwide,
		description: "Ascension - férié dans toute la Suisse",
		date:        easterOffset(39),
	},
	{
		id:          "whit-monday",
		name:        "Lundi de Pentecôte",
		scope:       ScopeNationwide,
		description: "Lundi de Pentecôte - férié dans toute la Suisse",
		date:        easterOffset(50),
	},
}

// ForYear returns every holiday of year sorted by date, unfiltered by canton.
// The result is freshly built and owned by the caller.
func ForYear(year int) []Holiday {
	out := make([]Holiday, 0, len(rules))
	for _, r := range rules {
		h := Holiday{
			ID:          r.id,
			Name:        r.name,
			Date:        r.date(year),
			Scope:       r.scope,
			Description: r.description,
		}
		if r.scope == ScopeRegional {
			h.Regions = append([]Canton(nil), r.regions...)
		}
		out = append(out, h)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Rule is the yearly placement rule behind one catalog entry.
type Rule struct {
	ID      string
	Name    string
	Scope   Scope
	Regions []Canton
	On      func(year int) dateutil.Date
}

// Rules returns a copy of the rule table in declaration order.
func Rules() []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, Rule{
			ID:      r.id,
			Name:    r.name,
			Scope:   r.scope,
			Regions: append([]Canton(nil), r.regions...),
			On:      r.date,
		})
	}
	return out
}

// IsDayOff reports whether the rule's holiday is a day off in region
func (r Rule) IsDayOff(region Canton) bool {
	return Holiday{Scope: r.Scope, Regions: r.Regions}.IsDayOff(region)
}
