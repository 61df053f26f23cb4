package glyph

import (
	"image"
	"image/color"
	"testing"
)

func TestTableSlots(t *testing.T) {
	table := Table()
	tests := []struct {
		name string
		slot byte
		want Bitmap
	}{
		{"full", SlotFull, Full},
		{"one third", SlotOneThird, OneThird},
		{"two thirds", SlotTwoThirds, TwoThirds},
		{"empty", SlotEmpty, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if table[tt.slot] != tt.want {
				t.Errorf("Table()[%d] = %v, want %v", tt.slot, table[tt.slot], tt.want)
			}
		})
	}
}

func TestBitmapsValid(t *testing.T) {
	for i, b := range Table() {
		if !b.Valid() {
			t.Errorf("bitmap in slot %d uses bits above the low 5", i)
		}
	}
	if (Bitmap{0x20}).Valid() {
		t.Error("Valid() = true for a row with bit 5 set")
	}
}

func TestFillOrdering(t *testing.T) {
	// Each fill level lights strictly more pixels than the previous one.
	levels := []Bitmap{Empty, OneThird, TwoThirds, Full}
	for i := 1; i < len(levels); i++ {
		if levels[i].Count() <= levels[i-1].Count() {
			t.Errorf("level %d has %d pixels, level %d has %d", i, levels[i].Count(), i-1, levels[i-1].Count())
		}
	}
}

func TestEmptyFrame(t *testing.T) {
	if Empty[0] != 0b10101 || Empty[Height-1] != 0b10101 {
		t.Errorf("Empty frame rows = %05b, %05b, want 10101", Empty[0], Empty[Height-1])
	}
	for y := 1; y < Height-1; y++ {
		if Empty[y] != 0 {
			t.Errorf("Empty[%d] = %05b, want 0", y, Empty[y])
		}
	}
}

func TestTableIsCopy(t *testing.T) {
	table := Table()
	table[SlotFull][0] = 0
	if Full[0] != 0b10101 {
		t.Error("modifying Table() result changed Full")
	}
}

func TestLit(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"leftmost pixel", 0, 3, true},
		{"second pixel", 1, 3, false},
		{"third pixel", 2, 3, true},
		{"rightmost pixel", 4, 3, false},
		{"frame right", 4, 0, true},
		{"negative x", -1, 0, false},
		{"x too large", 5, 0, false},
		{"y too large", 0, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TwoThirds.Lit(tt.x, tt.y); got != tt.want {
				t.Errorf("TwoThirds.Lit(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestImage(t *testing.T) {
	var img image.Image = OneThird
	if want := image.Rect(0, 0, 5, 8); img.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), want)
	}
	if img.ColorModel() != color.GrayModel {
		t.Error("ColorModel() did not return GrayModel")
	}
	if got := img.At(0, 4); got != On {
		t.Errorf("At(0, 4) = %v, want On", got)
	}
	if got := img.At(2, 4); got != Off {
		t.Errorf("At(2, 4) = %v, want Off", got)
	}
}

func TestString(t *testing.T) {
	want := "#.#.#\n#....\n#....\n#....\n#....\n#....\n#....\n#.#.#"
	if got := OneThird.String(); got != want {
		t.Errorf("OneThird.String() =\n%s\nwant\n%s", got, want)
	}
}
