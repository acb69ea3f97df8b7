package country

import "strings"

// Country is an immutable reference record linking a country's ISO-3166
// codes to its ISO-4217 currency.
type Country struct {
	Name     string `json:"name"`
	Alpha2   string `json:"alpha2"`
	Alpha3   string `json:"alpha3"`
	Currency string `json:"currency"`
}

var byAlpha2 map[string]Country

func init() {
	byAlpha2 = make(map[string]Country, len(countries))
	for _, c := range countries {
		byAlpha2[c.Alpha2] = c
	}
}

// Lookup returns the reference record for an alpha-2 code. The match is
// exact after uppercasing; empty or unknown codes return ok=false.
func Lookup(alpha2 string) (Country, bool) {
	c, ok := byAlpha2[strings.ToUpper(alpha2)]
	return c, ok
}

// Count reports the number of reference records.
func Count() int {
	return len(countries)
}
