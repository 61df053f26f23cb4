// Package tinylcd adapts the TinyGo hd44780i2c driver to lcdbargraph.Surface.
//
// The TinyGo driver takes any drivers.I2C, so the same code runs on a
// microcontroller with machine.I2C0 and on Linux with a periph.io i2c.Bus.
package tinylcd

import (
	"errors"
	"fmt"

	"periph.io/x/devices/v3/lcdbargraph/glyph"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Surface draws on a configured hd44780i2c.Device.
type Surface struct {
	dev        *hd44780i2c.Device
	cols, rows int
}

// New wraps dev, which must already be configured for a cols x rows display.
func New(dev *hd44780i2c.Device, cols, rows int) (*Surface, error) {
	if dev == nil {
		return nil, errors.New("tinylcd: device must not be nil")
	}
	if cols <= 0 || rows <= 0 {
		return nil, errors.New("tinylcd: cols and rows must be positive")
	}
	return &Surface{dev: dev, cols: cols, rows: rows}, nil
}

// DefineGlyph implements lcdbargraph.Surface.
func (s *Surface) DefineGlyph(slot byte, b glyph.Bitmap) error {
	if int(slot) >= glyph.Slots {
		return errors.New("tinylcd: glyph slot out of range")
	}
	s.dev.CreateCharacter(slot, b[:])
	return nil
}

// SetCursor implements lcdbargraph.Surface.
func (s *Surface) SetCursor(col, row int) error {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return fmt.Errorf("tinylcd: cursor %d,%d outside %dx%d display", col, row, s.cols, s.rows)
	}
	s.dev.SetCursor(uint8(col), uint8(row))
	return nil
}

// WriteGlyph implements lcdbargraph.Surface.
func (s *Surface) WriteGlyph(slot byte) error {
	if int(slot) >= glyph.Slots {
		return errors.New("tinylcd: glyph slot out of range")
	}
	s.dev.Print([]byte{slot})
	return nil
}

// String returns a string representation of the surface.
func (s *Surface) String() string {
	return fmt.Sprintf("tinylcd.Surface{%dx%d}", s.cols, s.rows)
}
