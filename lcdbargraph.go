// Package lcdbargraph draws a horizontal bar graph on a character LCD.
//
// The bar uses four custom glyphs to reach three steps per column. The
// display is only touched when the rendered level changes.
//
// See the examples for how to use this package.
package lcdbargraph

import (
	"errors"
	"fmt"
	"log/slog"
	"math/bits"

	"periph.io/x/devices/v3/lcdbargraph/glyph"
)

// Steps is the number of fill levels within one column.
const Steps = 3

// unset is the cache value before anything was drawn.
const unset = -1

// ErrMaxValue is returned by Draw when maxValue is not positive.
var ErrMaxValue = errors.New("lcdbargraph: maxValue must be positive")

// Surface is the character display the graph is drawn on.
//
// Implementations are expected to advance the cursor by one column after
// each WriteGlyph, as HD44780-class controllers do.
type Surface interface {
	// DefineGlyph stores b in custom character slot (0-7).
	DefineGlyph(slot byte, b glyph.Bitmap) error
	// SetCursor moves the cursor to the zero based column and row.
	SetCursor(col, row int) error
	// WriteGlyph writes custom character slot at the cursor.
	WriteGlyph(slot byte) error
}

// Opts is the configuration for a bar graph.
type Opts struct {
	// Geometry
	Cols int // Number of columns the bar spans (default: 16, must be ≥1)
	Col  int // Start column
	Row  int // Row the bar is drawn on

	// Optional logger, nil discards
	Logger *slog.Logger
}

type state uint8

const (
	uninitialized state = iota
	ready
)

// Graph is a horizontal bar graph occupying one row of a Surface.
//
// A Graph is not safe for concurrent use. Only one Graph should own a
// given region of a display.
type Graph struct {
	s      Surface
	logger *slog.Logger

	// Geometry
	cols, col, row int

	// State
	state state
	prev  int // Last drawn normalized level
}

// New creates a bar graph drawn on s.
//
// The display is not touched until the first call to Draw, so s may be
// created before the display is ready.
//
// opts can be nil to use defaults (16 columns at 0,0).
func New(s Surface, opts *Opts) (*Graph, error) {
	if s == nil {
		return nil, errors.New("lcdbargraph: surface must not be nil")
	}
	if opts == nil {
		opts = &Opts{Cols: 16}
	}
	if opts.Cols < 1 {
		return nil, errors.New("lcdbargraph: cols must be at least 1")
	}
	if opts.Col < 0 || opts.Row < 0 {
		return nil, errors.New("lcdbargraph: col and row must not be negative")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Graph{
		s:      s,
		logger: logger,
		cols:   opts.Cols,
		col:    opts.Col,
		row:    opts.Row,
		state:  uninitialized,
		prev:   unset,
	}, nil
}

// ensureReady registers the bar glyphs with the surface once.
// On failure the graph stays uninitialized and the next Draw retries.
func (g *Graph) ensureReady() error {
	if g.state == ready {
		return nil
	}
	for slot, b := range glyph.Table() {
		if err := g.s.DefineGlyph(byte(slot), b); err != nil {
			return fmt.Errorf("lcdbargraph: failed to define glyph %d: %w", slot, err)
		}
	}
	g.prev = unset
	g.state = ready
	g.logger.Debug("bar glyphs registered", slog.Int("slots", len(glyph.Table())))
	return nil
}

// Draw renders value on a scale of 0 to maxValue.
//
// value is clamped into [0, maxValue]. Nothing is sent to the display when
// the rendered level equals the previous one. Otherwise the cursor is moved
// to the start of the bar and every column is rewritten, so a higher
// previous bar is erased without clearing the display.
//
// Draw returns ErrMaxValue without touching the display when maxValue is not
// positive. Errors from the surface are returned wrapped; the following
// Draw then repaints the bar.
func (g *Graph) Draw(value, maxValue int) error {
	if maxValue <= 0 {
		return ErrMaxValue
	}
	if err := g.ensureReady(); err != nil {
		return err
	}

	lv := Quantize(value, maxValue, g.cols)
	n := lv.Normalized()
	if n == g.prev {
		return nil
	}

	if err := g.paint(lv); err != nil {
		g.prev = unset
		return err
	}
	g.logger.Debug("bar redrawn",
		slog.Int("value", value),
		slog.Int("max", maxValue),
		slog.Int("full", lv.Full),
		slog.Int("partial", lv.Partial),
		slog.Int("normalized", n),
	)
	g.prev = n
	return nil
}

// paint writes the whole span for lv.
func (g *Graph) paint(lv Level) error {
	if err := g.s.SetCursor(g.col, g.row); err != nil {
		return fmt.Errorf("lcdbargraph: failed to set cursor: %w", err)
	}

	filled := lv.Full
	for i := 0; i < lv.Full; i++ {
		if err := g.s.WriteGlyph(glyph.SlotFull); err != nil {
			return fmt.Errorf("lcdbargraph: failed to write column %d: %w", i, err)
		}
	}

	// Partial slots are numbered by the thirds they fill.
	if lv.Partial > 0 {
		if err := g.s.WriteGlyph(byte(lv.Partial)); err != nil {
			return fmt.Errorf("lcdbargraph: failed to write column %d: %w", filled, err)
		}
		filled++
	}

	for i := filled; i < g.cols; i++ {
		if err := g.s.WriteGlyph(glyph.SlotEmpty); err != nil {
			return fmt.Errorf("lcdbargraph: failed to write column %d: %w", i, err)
		}
	}
	return nil
}

// Invalidate forgets the last drawn level so the next Draw repaints the bar.
// Use it after something else has written over the bar's row.
func (g *Graph) Invalidate() {
	g.prev = unset
}

// Level returns the last drawn level.
// ok is false if nothing has been drawn since creation or Invalidate.
func (g *Graph) Level() (lv Level, ok bool) {
	if g.prev == unset {
		return Level{}, false
	}
	return Level{Full: g.prev / Steps, Partial: g.prev % Steps}, true
}

// Cols returns the number of columns the bar spans.
func (g *Graph) Cols() int {
	return g.cols
}

// String returns a string representation of the graph.
func (g *Graph) String() string {
	return fmt.Sprintf("lcdbargraph.Graph{cols=%d at %d,%d}", g.cols, g.col, g.row)
}

// Level is a quantized bar length in thirds of a column.
type Level struct {
	Full    int // Completely filled columns
	Partial int // Thirds of the next column, 0-2
}

// Normalized returns the level as a single count of thirds.
// It grows monotonically with the drawn value.
func (l Level) Normalized() int {
	return l.Full*Steps + l.Partial
}

// Quantize maps value on a scale of 0 to maxValue onto cols columns.
//
// value is clamped into [0, maxValue]. maxValue must be positive and cols
// at least 1; Quantize panics on a zero maxValue.
func Quantize(value, maxValue, cols int) Level {
	if value < 0 {
		value = 0
	}
	if value > maxValue {
		value = maxValue
	}

	// value*cols may not fit in 64 bits, so multiply into 128 bits. The
	// partial step only depends on the remainder of the column division.
	v, m, c := uint64(value), uint64(maxValue), uint64(cols)
	hi, lo := bits.Mul64(v, c)
	full, rem := bits.Div64(hi, lo, m)
	hi, lo = bits.Mul64(rem, Steps)
	partial, _ := bits.Div64(hi, lo, m)
	return Level{
		Full:    int(full),
		Partial: int(partial),
	}
}
