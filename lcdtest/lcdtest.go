// Package lcdtest is meant to be used to test code that draws on a character
// display without the hardware.
//
// Display records every call made to it, keeps the character-generator RAM
// and a grid of the cells written, and can render the grid as ASCII art.
package lcdtest

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"periph.io/x/devices/v3/lcdbargraph/glyph"
)

// Kind is the type of a recorded call.
type Kind uint8

// Recorded call types.
const (
	DefineGlyph Kind = iota
	SetCursor
	WriteGlyph
)

func (k Kind) String() string {
	switch k {
	case DefineGlyph:
		return "DefineGlyph"
	case SetCursor:
		return "SetCursor"
	case WriteGlyph:
		return "WriteGlyph"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Op is one recorded call.
type Op struct {
	Kind     Kind
	Slot     byte // DefineGlyph, WriteGlyph
	Col, Row int  // SetCursor
}

func (o Op) String() string {
	if o.Kind == SetCursor {
		return fmt.Sprintf("SetCursor(%d, %d)", o.Col, o.Row)
	}
	return fmt.Sprintf("%s(%d)", o.Kind, o.Slot)
}

// blank is the cell value before anything was written.
const blank = -1

// Display is an in-memory character display.
//
// Writing past the end of a row wraps to the start of the next row, and past
// the last row wraps to the first.
type Display struct {
	sync.Mutex

	// Fail, when set, is returned by every call instead of applying it.
	Fail error

	cols, rows int
	cgram      [glyph.Slots]glyph.Bitmap
	defined    [glyph.Slots]bool
	cells      []int
	col, row   int
	ops        []Op
}

// New returns a blank display of cols x rows cells.
func New(cols, rows int) *Display {
	if cols <= 0 || rows <= 0 {
		panic("lcdtest: cols and rows must be positive")
	}
	d := &Display{cols: cols, rows: rows, cells: make([]int, cols*rows)}
	d.clear()
	return d
}

func (d *Display) clear() {
	for i := range d.cells {
		d.cells[i] = blank
	}
	d.col, d.row = 0, 0
}

// DefineGlyph implements lcdbargraph.Surface.
func (d *Display) DefineGlyph(slot byte, b glyph.Bitmap) error {
	d.Lock()
	defer d.Unlock()
	if d.Fail != nil {
		return d.Fail
	}
	if int(slot) >= glyph.Slots {
		return errors.New("lcdtest: glyph slot out of range")
	}
	d.cgram[slot] = b
	d.defined[slot] = true
	d.ops = append(d.ops, Op{Kind: DefineGlyph, Slot: slot})
	return nil
}

// SetCursor implements lcdbargraph.Surface.
func (d *Display) SetCursor(col, row int) error {
	d.Lock()
	defer d.Unlock()
	if d.Fail != nil {
		return d.Fail
	}
	if col < 0 || col >= d.cols || row < 0 || row >= d.rows {
		return fmt.Errorf("lcdtest: cursor %d,%d outside %dx%d", col, row, d.cols, d.rows)
	}
	d.col, d.row = col, row
	d.ops = append(d.ops, Op{Kind: SetCursor, Col: col, Row: row})
	return nil
}

// WriteGlyph implements lcdbargraph.Surface.
func (d *Display) WriteGlyph(slot byte) error {
	d.Lock()
	defer d.Unlock()
	if d.Fail != nil {
		return d.Fail
	}
	d.cells[d.row*d.cols+d.col] = int(slot)
	d.ops = append(d.ops, Op{Kind: WriteGlyph, Slot: slot})
	if d.col++; d.col == d.cols {
		d.col = 0
		d.row = (d.row + 1) % d.rows
	}
	return nil
}

// Ops returns a copy of the recorded calls.
func (d *Display) Ops() []Op {
	d.Lock()
	defer d.Unlock()
	return append([]Op(nil), d.ops...)
}

// Count returns the number of recorded calls of kind k. For DefineGlyph and
// WriteGlyph only calls for slot are counted.
func (d *Display) Count(k Kind, slot byte) int {
	d.Lock()
	defer d.Unlock()
	n := 0
	for _, op := range d.ops {
		if op.Kind == k && (k == SetCursor || op.Slot == slot) {
			n++
		}
	}
	return n
}

// ResetOps forgets the recorded calls but keeps the display content.
func (d *Display) ResetOps() {
	d.Lock()
	defer d.Unlock()
	d.ops = nil
}

// Clear blanks every cell and homes the cursor. It is not recorded.
func (d *Display) Clear() {
	d.Lock()
	defer d.Unlock()
	d.clear()
}

// Cell returns the character at col, row, or -1 if nothing was written there.
func (d *Display) Cell(col, row int) int {
	d.Lock()
	defer d.Unlock()
	return d.cells[row*d.cols+col]
}

// Glyph returns the bitmap stored in slot and whether it was defined.
func (d *Display) Glyph(slot byte) (glyph.Bitmap, bool) {
	d.Lock()
	defer d.Unlock()
	if int(slot) >= glyph.Slots {
		return glyph.Bitmap{}, false
	}
	return d.cgram[slot], d.defined[slot]
}

// Dump renders every character row as 8 lines of pixels. Cells are separated
// by a space; blank or undefined cells render as spaces.
func (d *Display) Dump(w io.Writer) error {
	d.Lock()
	defer d.Unlock()
	var sb strings.Builder
	for row := 0; row < d.rows; row++ {
		var art [][glyph.Height]string
		for col := 0; col < d.cols; col++ {
			c := d.cells[row*d.cols+col]
			if c == blank || c >= glyph.Slots || !d.defined[c] {
				art = append(art, [glyph.Height]string{})
				continue
			}
			art = append(art, d.cgram[c].Rows())
		}
		for y := 0; y < glyph.Height; y++ {
			for col, a := range art {
				if col > 0 {
					sb.WriteByte(' ')
				}
				if a[y] == "" {
					sb.WriteString(strings.Repeat(" ", glyph.Width))
				} else {
					sb.WriteString(a[y])
				}
			}
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns a string representation of the display.
func (d *Display) String() string {
	return fmt.Sprintf("lcdtest.Display{%dx%d}", d.cols, d.rows)
}
