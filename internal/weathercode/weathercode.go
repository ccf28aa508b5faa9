// Package weathercode maps the numeric condition codes reported by the
// weather API to display icons and Spanish descriptions.
package weathercode

// Condition is the display form of a weather code.
type Condition struct {
	Icon        string
	Description string
}

// Unknown is returned for any code outside the documented table.
var Unknown = Condition{Icon: "🌡️", Description: "Condición desconocida"}

// buckets lists the documented code groups in WMO order. Each code belongs
// to exactly one bucket.
var buckets = []struct {
	codes []int
	cond  Condition
}{
	{[]int{0}, Condition{"☀️", "Cielo despejado"}},
	{[]int{1, 2, 3}, Condition{"⛅", "Nublado"}},
	{[]int{45, 48}, Condition{"🌫️", "Niebla"}},
	{[]int{51, 53, 55}, Condition{"🌦️", "Llovizna"}},
	{[]int{56, 57}, Condition{"🌧️", "Llovizna helada"}},
	{[]int{61, 63, 65}, Condition{"🌧️", "Lluvia"}},
	{[]int{66, 67}, Condition{"🌧️", "Lluvia helada"}},
	{[]int{71, 73, 75}, Condition{"❄️", "Nieve"}},
	{[]int{77}, Condition{"❄️", "Granos de nieve"}},
	{[]int{80, 81, 82}, Condition{"🌦️", "Chubascos"}},
	{[]int{85, 86}, Condition{"🌨️", "Chubascos de nieve"}},
	{[]int{95}, Condition{"⛈️", "Tormenta"}},
	{[]int{96, 99}, Condition{"⛈️", "Tormenta con granizo"}},
}

var byCode = func() map[int]Condition {
	m := make(map[int]Condition)
	for _, b := range buckets {
		for _, c := range b.codes {
			m[c] = b.cond
		}
	}
	return m
}()

// Lookup is total over int: undocumented codes fall back to Unknown.
func Lookup(code int) Condition {
	if c, ok := byCode[code]; ok {
		return c
	}
	return Unknown
}

// IconFor returns the display glyph for a weather code.
func IconFor(code int) string {
	return Lookup(code).Icon
}

// DescriptionFor returns the short Spanish phrase for a weather code.
func DescriptionFor(code int) string {
	return Lookup(code).Description
}

// Codes returns every documented code, for exhaustiveness checks.
func Codes() []int {
	var out []int
	for _, b := range buckets {
		out = append(out, b.codes...)
	}
	return out
}
