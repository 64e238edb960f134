// Package terminal renders captions and the song title on a terminal line.
//
// On a TTY the line is redrawn in place with the caption centered and shaded
// by opacity. Anywhere else (pipes, files, tests) each new caption is written
// on its own line and opacity is ignored.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

type titleState int

// frame is what is currently on screen; redraws happen only when it changes.
type frame struct {
	state titleState
	text  string
	shade int
}

const (
	titleShown titleState = iota
	titleFading
	titleHidden
)

// Option customizes a Display.
type Option func(*Display)

// WithANSI forces in-place ANSI rendering on or off.
func WithANSI(enabled bool) Option {
	return func(d *Display) { d.ansi = enabled }
}

// WithWidth overrides the detected terminal width.
func WithWidth(width int) Option {
	return func(d *Display) {
		if width > 0 {
			d.width = width
		}
	}
}

// Display is a caption target and title target writing to a terminal.
type Display struct {
	mu      sync.Mutex
	out     io.Writer
	ansi    bool
	width   int
	title   string
	state   titleState
	text    string
	opacity float64
	last    frame
	drawn   bool
	err     error
}

// New creates a display for out with the given title.
func New(out io.Writer, title string, opts ...Option) *Display {
	d := &Display{
		out:   out,
		ansi:  isTerminal(out),
		width: terminalWidth(out),
		title: strings.TrimSpace(title),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.title == "" {
		d.state = titleHidden
	}
	return d
}

// Open prints the title. Plain output gets a heading line.
func (d *Display) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ansi {
		d.redraw()
		return
	}
	if d.title != "" {
		d.write(d.title + "\n" + strings.Repeat("=", text.StringWidthWithoutEscSequences(d.title)) + "\n")
	}
}

// SetText sets the caption text.
func (d *Display) SetText(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	changed := value != d.text
	d.text = value
	if d.ansi {
		d.redraw()
		return
	}
	if changed && value != "" {
		d.write(value + "\n")
	}
}

// SetOpacity sets the caption opacity, clamped to [0, 1].
func (d *Display) SetOpacity(opacity float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opacity = min(max(opacity, 0), 1)
	if d.ansi {
		d.redraw()
	}
}

// FadeOut dims the title.
func (d *Display) FadeOut(time.Duration) {
	d.setTitleState(titleFading)
}

// Hide removes the title.
func (d *Display) Hide() {
	d.setTitleState(titleHidden)
}

// Close ends the in-place line and reports the first write error.
func (d *Display) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ansi && d.drawn {
		d.write("\n")
	}
	return d.err
}

func (d *Display) setTitleState(state titleState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.title == "" {
		return
	}
	d.state = state
	if d.ansi {
		d.redraw()
	}
}

func (d *Display) redraw() {
	next := frame{state: d.state, shade: shadeOf(d.opacity)}
	if next.shade > 0 && d.text != "" {
		next.text = d.text
	} else {
		next.shade = 0
	}
	if d.drawn && next == d.last {
		return
	}
	if !d.drawn && next == (frame{state: titleHidden}) {
		return
	}
	d.last = next
	d.drawn = true
	d.write("\r\x1b[2K" + d.compose(next))
}

func (d *Display) compose(f frame) string {
	width := d.width
	var prefix string
	if f.state != titleHidden {
		label := d.title + " │ "
		width -= text.StringWidthWithoutEscSequences(label)
		prefix = titleColors(f.state).Sprint(label)
	}
	if width < 1 {
		width = 1
	}
	caption := f.text
	if caption == "" {
		return prefix
	}
	if text.StringWidthWithoutEscSequences(caption) > width {
		caption = text.Trim(caption, width)
	}
	caption = strings.TrimRight(text.AlignCenter.Apply(caption, width), " ")
	return prefix + shadeColors[f.shade].Sprint(caption)
}

func (d *Display) write(s string) {
	if d.err != nil {
		return
	}
	if _, err := io.WriteString(d.out, s); err != nil {
		d.err = fmt.Errorf("write caption: %w", err)
	}
}

func titleColors(state titleState) text.Colors {
	if state == titleFading {
		return text.Colors{text.Faint}
	}
	return text.Colors{text.Bold, text.FgHiCyan}
}

// shadeColors is the grey ramp a terminal can show, indexed by shadeOf.
var shadeColors = []text.Colors{
	nil,
	{text.FgHiBlack},
	{text.FgWhite},
	{text.FgHiWhite, text.Bold},
}

func shadeOf(opacity float64) int {
	switch {
	case opacity < 0.05:
		return 0
	case opacity < 0.35:
		return 1
	case opacity < 0.7:
		return 2
	default:
		return 3
	}
}
