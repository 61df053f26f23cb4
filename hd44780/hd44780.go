// Package hd44780 drives an HD44780 character LCD behind a PCF8574 I²C
// backpack.
//
// The controller must already be initialized in 4-bit mode; this package
// only sends the commands needed to define custom characters, move the
// cursor and write cells. It implements lcdbargraph.Surface.
package hd44780

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/lcdbargraph/glyph"
)

// DefaultAddr is the usual address of a PCF8574 backpack. PCF8574A based
// boards answer on 0x3F.
const DefaultAddr = 0x27

// PCF8574 port bits.
const (
	bitRS        = 0x01 // Register select: 0 command, 1 data
	bitEN        = 0x04 // Enable strobe
	bitBacklight = 0x08
)

// Controller commands.
const (
	cmdSetCGRAM = 0x40
	cmdSetDDRAM = 0x80
)

// maxRows is the number of rows a single controller addresses. Rows 2 and 3
// continue rows 0 and 1 in DDRAM.
const maxRows = 4

// Opts is the configuration for the LCD.
type Opts struct {
	// Display dimensions in characters
	Cols int // Columns (default: 16, must be between 1 and 40)
	Rows int // Rows (default: 2, must be between 1 and 4)

	Backlight bool // Backlight on
}

// Dev is the device handle for the LCD.
type Dev struct {
	c conn.Conn // I²C connection

	cols, rows int
	backlight  byte

	halted bool
}

// NewI2C returns a device connected to the backpack at addr on b.
//
// opts can be nil to use defaults (16x2 display, backlight on).
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Cols: 16, Rows: 2, Backlight: true}
	}
	if opts.Cols <= 0 || opts.Cols > 40 {
		return nil, errors.New("hd44780: cols must be between 1 and 40")
	}
	if opts.Rows <= 0 || opts.Rows > maxRows {
		return nil, errors.New("hd44780: rows must be between 1 and 4")
	}
	if opts.Cols*opts.Rows > 80 {
		return nil, errors.New("hd44780: display larger than 80 characters")
	}

	d := &Dev{
		c:    &i2c.Dev{Bus: b, Addr: addr},
		cols: opts.Cols,
		rows: opts.Rows,
	}
	if opts.Backlight {
		d.backlight = bitBacklight
	}
	return d, nil
}

// encode appends the port writes that clock b into the controller as two
// nibbles, high first.
func (d *Dev) encode(buf []byte, b byte, rs byte) []byte {
	ctl := rs | d.backlight
	hi := b & 0xF0
	lo := b << 4
	return append(buf, hi|ctl|bitEN, hi|ctl, lo|ctl|bitEN, lo|ctl)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.c.Tx(d.encode(nil, cmd, 0), nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	buf := make([]byte, 0, 4*len(data))
	for _, b := range data {
		buf = d.encode(buf, b, bitRS)
	}
	return d.c.Tx(buf, nil)
}

// DefineGlyph stores b in custom character slot (0-7).
//
// The controller is left addressing CGRAM; call SetCursor before writing.
func (d *Dev) DefineGlyph(slot byte, b glyph.Bitmap) error {
	if d.halted {
		return errors.New("hd44780: halted")
	}
	if int(slot) >= glyph.Slots {
		return errors.New("hd44780: glyph slot out of range")
	}
	if err := d.sendCommand(cmdSetCGRAM | slot<<3); err != nil {
		return fmt.Errorf("hd44780: failed to set CGRAM address: %w", err)
	}
	rows := make([]byte, glyph.Height)
	for i, r := range b {
		rows[i] = r & 0x1F
	}
	return d.sendData(rows)
}

// SetCursor moves the cursor to the zero based column and row.
func (d *Dev) SetCursor(col, row int) error {
	if d.halted {
		return errors.New("hd44780: halted")
	}
	if col < 0 || col >= d.cols || row < 0 || row >= d.rows {
		return fmt.Errorf("hd44780: cursor %d,%d outside %dx%d display", col, row, d.cols, d.rows)
	}
	return d.sendCommand(cmdSetDDRAM | (d.rowOffset(row) + byte(col)))
}

// rowOffset returns the DDRAM address of the start of row.
func (d *Dev) rowOffset(row int) byte {
	offset := byte(0x00)
	if row%2 == 1 {
		offset = 0x40
	}
	if row >= 2 {
		offset += byte(d.cols)
	}
	return offset
}

// WriteGlyph writes custom character slot at the cursor.
func (d *Dev) WriteGlyph(slot byte) error {
	if d.halted {
		return errors.New("hd44780: halted")
	}
	if int(slot) >= glyph.Slots {
		return errors.New("hd44780: glyph slot out of range")
	}
	return d.sendData([]byte{slot})
}

// WriteString writes s at the cursor. Bytes are sent as-is using the
// controller's character ROM.
func (d *Dev) WriteString(s string) error {
	if d.halted {
		return errors.New("hd44780: halted")
	}
	if s == "" {
		return nil
	}
	return d.sendData([]byte(s))
}

// SetBacklight turns the backlight on or off.
func (d *Dev) SetBacklight(on bool) error {
	if d.halted {
		return errors.New("hd44780: halted")
	}
	d.backlight = 0
	if on {
		d.backlight = bitBacklight
	}
	// Latch the new port state without strobing the controller.
	return d.c.Tx([]byte{d.backlight}, nil)
}

// Halt turns the backlight off.
// After calling Halt, the device will not accept further commands.
func (d *Dev) Halt() error {
	d.halted = true
	d.backlight = 0
	return d.c.Tx([]byte{0}, nil)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("hd44780.Dev{%dx%d}", d.cols, d.rows)
}
