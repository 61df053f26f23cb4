// Package glyph provides the 5x8 custom character bitmaps of the bar graph.
package glyph

import (
	"image"
	"image/color"
	"strings"
)

const (
	// Width is the number of meaningful pixels per row.
	Width = 5
	// Height is the number of rows in a cell.
	Height = 8
	// Slots is the number of custom characters a controller can hold.
	Slots = 8
)

// CGRAM slots reserved by the bar graph. A partial slot equals the number of
// thirds of the column it fills.
const (
	SlotFull      byte = 0
	SlotOneThird  byte = 1
	SlotTwoThirds byte = 2
	SlotEmpty     byte = 3
)

// Bitmap is one 5x8 character cell, one byte per row.
// Only the lower 5 bits of each row are used; bit 4 is the leftmost pixel.
//
// Bitmap is an array so it is copied on assignment; the package level
// bitmaps cannot be changed through a value handed to a display.
type Bitmap [Height]byte

// Fill levels of a single column.
var (
	// Full is a fully filled column.
	Full = Bitmap{
		0b10101,
		0b10101,
		0b10101,
		0b10101,
		0b10101,
		0b10101,
		0b10101,
		0b10101,
	}
	// OneThird fills the first third of a column.
	OneThird = Bitmap{
		0b10101,
		0b10000,
		0b10000,
		0b10000,
		0b10000,
		0b10000,
		0b10000,
		0b10101,
	}
	// TwoThirds fills the first two thirds of a column.
	TwoThirds = Bitmap{
		0b10101,
		0b10100,
		0b10100,
		0b10100,
		0b10100,
		0b10100,
		0b10100,
		0b10101,
	}
	// Empty is the border-only frame of an unfilled column.
	Empty = Bitmap{
		0b10101,
		0b00000,
		0b00000,
		0b00000,
		0b00000,
		0b00000,
		0b00000,
		0b10101,
	}
)

// Table returns the bar graph bitmaps indexed by slot.
func Table() [4]Bitmap {
	return [4]Bitmap{
		SlotFull:      Full,
		SlotOneThird:  OneThird,
		SlotTwoThirds: TwoThirds,
		SlotEmpty:     Empty,
	}
}

// Lit pixel colors returned by At.
var (
	On  = color.Gray{Y: 0xFF}
	Off = color.Gray{Y: 0x00}
)

// Lit reports whether the pixel at (x, y) is set.
// Coordinates outside the cell are never lit.
func (b Bitmap) Lit(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b[y]>>(Width-1-x)&1 == 1
}

// Count returns the number of lit pixels.
func (b Bitmap) Count() int {
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.Lit(x, y) {
				n++
			}
		}
	}
	return n
}

// Valid reports whether no row uses bits above the low 5.
func (b Bitmap) Valid() bool {
	for _, row := range b {
		if row&^0x1F != 0 {
			return false
		}
	}
	return true
}

// ColorModel returns the color model of the cell.
func (b Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds returns the 5x8 cell bounds.
func (b Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At returns On for lit pixels and Off otherwise.
// It implements the image.Image interface.
func (b Bitmap) At(x, y int) color.Color {
	if b.Lit(x, y) {
		return On
	}
	return Off
}

// Rows returns the cell as ASCII art, one string per row, '#' for lit pixels.
func (b Bitmap) Rows() [Height]string {
	var rows [Height]string
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		sb.Reset()
		for x := 0; x < Width; x++ {
			if b.Lit(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the ASCII art of the cell, rows separated by newlines.
func (b Bitmap) String() string {
	rows := b.Rows()
	return strings.Join(rows[:], "\n")
}
