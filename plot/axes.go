package plot

import (
	"fmt"
	"strings"
)

// Labels carries the axis label texts. An empty field renders nothing.
type Labels struct {
	X string
	Y string
}

// Directives returns the `set xlabel`/`set ylabel` lines for the labels that
// are present.
func (l Labels) Directives() []string {
	var lines []string
	if l.X != "" {
		lines = append(lines, fmt.Sprintf("set xlabel %q", l.X))
	}
	if l.Y != "" {
		lines = append(lines, fmt.Sprintf("set ylabel %q", l.Y))
	}
	return lines
}

// ResetDirectives returns the `unset` lines for the axes this value names.
func (l Labels) ResetDirectives() []string {
	var lines []string
	if l.X != "" {
		lines = append(lines, "unset xlabel")
	}
	if l.Y != "" {
		lines = append(lines, "unset ylabel")
	}
	return lines
}

// Tics replaces the automatic tick marks of an axis with explicit labels,
// placed at positions 0, 1, 2, ... in data coordinates, optionally rotated.
// A nil label list leaves that axis untouched.
type Tics struct {
	X       []string
	XRotate int // degrees; 0 renders no rotate clause
	Y       []string
	YRotate int
}

// Directives returns the `set xtics`/`set ytics` lines for the axes that have
// labels.
func (t Tics) Directives() []string {
	var lines []string
	if len(t.X) > 0 {
		lines = append(lines, ticsDirective("xtics", t.X, t.XRotate))
	}
	if len(t.Y) > 0 {
		lines = append(lines, ticsDirective("ytics", t.Y, t.YRotate))
	}
	return lines
}

// ResetDirectives returns the autofreq lines restoring automatic tick marks
// for the axes this value names.
func (t Tics) ResetDirectives() []string {
	var lines []string
	if len(t.X) > 0 {
		lines = append(lines, "set xtics autofreq")
	}
	if len(t.Y) > 0 {
		lines = append(lines, "set ytics autofreq")
	}
	return lines
}

func ticsDirective(axis string, labels []string, rotate int) string {
	var b strings.Builder
	b.WriteString("set ")
	b.WriteString(axis)
	if rotate != 0 {
		fmt.Fprintf(&b, " rotate by %d", rotate)
	}
	b.WriteString(" (")
	for i, label := range labels {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q %d", label, i)
	}
	b.WriteString(")")
	return b.String()
}
