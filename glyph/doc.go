// Package glyph provides the custom character bitmaps used by the bar graph.
//
// An HD44780-class controller has 8 character-generator RAM slots. Each slot
// holds a 5x8 pixel cell stored as 8 bytes, one per row, where only the low 5
// bits are meaningful and bit 4 is the leftmost pixel.
//
// Memory layout example for the TwoThirds glyph:
//
//	Row  Bits   Pixels
//	0    10101  #.#.#
//	1    10100  #.#..
//	...
//	6    10100  #.#..
//	7    10101  #.#.#
//
// This package provides:
//
// - Bitmap: a 5x8 cell that also implements image.Image
// - Full, OneThird, TwoThirds, Empty: the four fill levels of a column
// - SlotFull..SlotEmpty: the CGRAM slots the bar graph reserves for them
//
// Example usage:
//
//	for slot, b := range glyph.Table() {
//		lcd.DefineGlyph(byte(slot), b)
//	}
//
//	// Print a bitmap as ASCII art
//	fmt.Println(glyph.TwoThirds)
package glyph
