// Package lcdbargraph draws a horizontal bar graph on a character LCD.
//
// HD44780-class controllers only show whole characters, but they let you
// define up to 8 custom 5x8 glyphs. This package reserves 4 of them to split
// every column into thirds, so a 16 column bar has 48 distinct lengths.
//
// # Glyphs
//
// The first Draw stores these glyphs in custom character slots 0 to 3:
//
//	Slot  Glyph      Meaning
//	0     Full       column completely filled
//	1     OneThird   first third of the column filled
//	2     TwoThirds  first two thirds of the column filled
//	3     Empty      unfilled column frame
//
// Slots 4 to 7 remain free for the application. See package glyph for the
// bitmaps.
//
// # Basic Usage
//
// Example of drawing a potentiometer reading on a 16x2 LCD behind a PCF8574
// backpack:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/lcdbargraph"
//		"periph.io/x/devices/v3/lcdbargraph/hd44780"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// The LCD must already be initialized in 4-bit mode
//		lcd, _ := hd44780.NewI2C(bus, hd44780.DefaultAddr, nil)
//
//		// Bar over the whole second row
//		bar, _ := lcdbargraph.New(lcd, &lcdbargraph.Opts{
//			Cols: 16,
//			Row:  1,
//		})
//
//		for {
//			bar.Draw(readPot(), 1023)
//		}
//	}
//
// # Redraw Suppression
//
// Draw quantizes the value to thirds of a column and compares the result with
// the previously drawn level. If they are equal nothing is sent to the
// display, so Draw can be called on every iteration of a polling loop.
// Otherwise the whole span is rewritten from its first column; the display
// is never cleared, which avoids flicker.
//
// Call Invalidate when something else has written over the bar so the next
// Draw repaints it.
//
// # Value Mapping
//
// For a bar of n columns and a value v on a scale of 0 to max:
//
//	full    = v*n/max
//	partial = (v*n*3/max) % 3
//
// v is clamped into [0, max] first. A max of zero or less makes Draw return
// ErrMaxValue without touching the display.
//
// # Displays
//
// Draw talks to a Surface. This module provides:
//
// - hd44780: PCF8574 I²C backpacks through periph.io
// - tinylcd: the TinyGo hd44780i2c driver
// - lcdtest: an in-memory display for tests and simulation
//
// # Concurrency
//
// A Graph is not safe for concurrent use. Serialize calls to a Graph and to
// the Surface it draws on, and do not let two graphs overlap on a display.
package lcdbargraph
