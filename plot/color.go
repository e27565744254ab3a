package plot

import "fmt"

// Color selects a line color, either by one of the engine's built-in color
// names or as a 24-bit RGB triple.
type Color struct {
	name    string
	r, g, b int
}

// Built-in colors understood by gnuplot's `lc rgb '<name>'` syntax.
var (
	Black   = Color{name: "black"}
	Red     = Color{name: "red"}
	Green   = Color{name: "green"}
	Yellow  = Color{name: "yellow"}
	Blue    = Color{name: "blue"}
	Magenta = Color{name: "magenta"}
	Cyan    = Color{name: "cyan"}
	White   = Color{name: "white"}
)

// RGB builds a color from red, green and blue components. Components are
// expected to fit a single byte; values outside 0-255 are not rejected and
// reach the engine as-is.
func RGB(r, g, b int) Color {
	return Color{r: r, g: g, b: b}
}

// String returns the color token used inside `lc rgb '...'`: the color name
// for built-ins, a #RRGGBB hex triple otherwise.
func (c Color) String() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}
