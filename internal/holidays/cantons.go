package holidays

import "sort"

// Canton is a Swiss canton code such as "ZH" or "GE".
type Canton string

var cantonNames = map[Canton]string{
	"AG": "Argovie",
	"AI": "Appenzell Rhodes-Intérieures",
	"AR": "Appenzell Rhodes-Extérieures",
	"BE": "Berne",
	"BL": "Bâle-Campagne",
	"BS": "Bâle-Ville",
	"FR": "Fribourg",
	"GE": "Genève",
	"GL": "Glaris",
	"GR": "Grisons",
	"JU": "Jura",
	"LU": "Lucerne",
	"NE": "Neuchâtel",
	"NW": "Nidwald",
	"OW": "Obwald",
	"SG": "Saint-Gall",
	"SH": "Schaffhouse",
	"SO": "Soleure",
	"SZ": "Schwyz",
	"TG": "Thurgovie",
	"TI": "Tessin",
	"UR": "Uri",
	"VD": "Vaud",
	"VS": "Valais",
	"ZG": "Zoug",
	"ZH": "Zurich",
}

var sortedCantons = func() []Canton {
	codes := make([]Canton, 0, len(cantonNames))
	for code := range cantonNames {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}()

// Cantons returns all canton codes in alphabetical order.
func Cantons() []Canton {
	out := make([]Canton, len(sortedCantons))
	copy(out, sortedCantons)
	return out
}

// CantonName returns the French display name of code.
func CantonName(code Canton) (string, bool) {
	name, ok := cantonNames[code]
	return name, ok
}

// IsCanton reports whether code is one of the 26 canton codes.
func IsCanton(code Canton) bool {
	_, ok := cantonNames[code]
	return ok
}
