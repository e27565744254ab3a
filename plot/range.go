package plot

import "fmt"

// RangeKind identifies which axes a Range constrains.
type RangeKind int

const (
	// RangeX constrains the X axis only.
	RangeX RangeKind = iota
	// RangeY constrains the Y axis only.
	RangeY
	// RangeXY constrains both axes.
	RangeXY
)

// Range bounds one or both plot axes. Bounds are written to the engine
// unchecked: a minimum above its maximum is passed through and the engine's
// behavior is then undefined.
type Range struct {
	Kind RangeKind

	XMin, XMax float64
	YMin, YMax float64
}

// XRange bounds the X axis.
func XRange(min, max float64) Range {
	return Range{Kind: RangeX, XMin: min, XMax: max}
}

// YRange bounds the Y axis.
func YRange(min, max float64) Range {
	return Range{Kind: RangeY, YMin: min, YMax: max}
}

// XYRange bounds both axes.
func XYRange(xmin, xmax, ymin, ymax float64) Range {
	return Range{Kind: RangeXY, XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// Directives returns the `set xrange`/`set yrange` lines for the range.
func (r Range) Directives() []string {
	switch r.Kind {
	case RangeX:
		return []string{fmt.Sprintf("set xrange [%s:%s]", ftoa(r.XMin), ftoa(r.XMax))}
	case RangeY:
		return []string{fmt.Sprintf("set yrange [%s:%s]", ftoa(r.YMin), ftoa(r.YMax))}
	case RangeXY:
		return []string{
			fmt.Sprintf("set xrange [%s:%s]", ftoa(r.XMin), ftoa(r.XMax)),
			fmt.Sprintf("set yrange [%s:%s]", ftoa(r.YMin), ftoa(r.YMax)),
		}
	default:
		return nil
	}
}

// ResetDirectives returns the autoscale lines restoring the default range for
// the axes this value names. Only the Kind matters here; the bounds are
// ignored.
func (r Range) ResetDirectives() []string {
	switch r.Kind {
	case RangeX:
		return []string{"set autoscale x"}
	case RangeY:
		return []string{"set autoscale y"}
	case RangeXY:
		return []string{"set autoscale xy"}
	default:
		return nil
	}
}
