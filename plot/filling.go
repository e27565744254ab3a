package plot

import "strconv"

// Filling selects the fill style used by histogram and candlestick series and
// by the session-wide `set style fill` directive.
type Filling struct {
	pattern int
	solid   bool
}

// Solid fills with the series color.
var Solid = Filling{solid: true}

// Pattern fills with the engine's numbered fill pattern. Pattern indices are
// terminal-dependent and not validated.
func Pattern(index int) Filling {
	return Filling{pattern: index}
}

// String returns the fill-style keywords: "solid" or "pattern <n>".
func (f Filling) String() string {
	if f.solid {
		return "solid"
	}
	return "pattern " + strconv.Itoa(f.pattern)
}
