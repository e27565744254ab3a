package plot

// terminal enumerates the engine output devices this package can target.
type terminal int

const (
	termWxt terminal = iota
	termX11
	termQt
	termPNG
	termEPS
)

// Output selects the terminal the engine renders to, and for file-backed
// terminals the file it writes. Immutable once constructed.
type Output struct {
	term terminal
	file string
	font string
}

// OutputOption configures an Output at construction time.
type OutputOption func(*Output)

// WithFont sets the terminal font by name, e.g. "Helvetica".
func WithFont(name string) OutputOption {
	return func(o *Output) { o.font = name }
}

// Wxt targets the interactive wxWidgets terminal. The window persists after
// the session closes.
func Wxt(opts ...OutputOption) Output {
	return newOutput(termWxt, "", opts)
}

// X11 targets the interactive X11 terminal.
func X11(opts ...OutputOption) Output {
	return newOutput(termX11, "", opts)
}

// Qt targets the interactive Qt terminal.
func Qt(opts ...OutputOption) Output {
	return newOutput(termQt, "", opts)
}

// PNG renders to a PNG image at the given path.
func PNG(file string, opts ...OutputOption) Output {
	return newOutput(termPNG, file, opts)
}

// EPS renders to an Encapsulated PostScript file at the given path.
func EPS(file string, opts ...OutputOption) Output {
	return newOutput(termEPS, file, opts)
}

func newOutput(term terminal, file string, opts []OutputOption) Output {
	o := Output{term: term, file: file}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Directives returns the `set terminal` line and, for file-backed terminals,
// the `set output` line naming the target file.
func (o Output) Directives() []string {
	font := ""
	if o.font != "" {
		font = " font '" + o.font + "'"
	}
	switch o.term {
	case termWxt:
		return []string{"set terminal wxt persist" + font}
	case termX11:
		return []string{"set terminal x11 persist" + font}
	case termQt:
		return []string{"set terminal qt persist" + font}
	case termPNG:
		return []string{"set terminal png" + font, "set output '" + o.file + "'"}
	case termEPS:
		return []string{"set terminal postscript eps enhanced" + font, "set output '" + o.file + "'"}
	default:
		return nil
	}
}
