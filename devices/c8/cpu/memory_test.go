package cpu

import "testing"

func TestMemoryWraps(t *testing.T) {
	mem := make(Memory, MemoryCapacity)

	mem.SetU8(MemoryCapacity+5, 0x12)
	if mem[5] != 0x12 {
		t.Fatalf("want: 12 have: %02x", mem[5])
	}

	mem.Write(0xfff, []byte{0xab, 0xcd})
	if have := mem.U16(0xfff); have != 0xabcd {
		t.Fatalf("want: abcd have: %04x", have)
	}

	p := make([]byte, 3)
	mem.Read(0x1ffe, p)
	if p[0] != 0 || p[1] != 0xab || p[2] != 0xcd {
		t.Fatalf("unexpected read: % x", p)
	}
}

func TestFont(t *testing.T) {
	// Every glyph is 5 rows, 4 columns wide, stored in the high nibble.
	for i, b := range font {
		if b&0x0f != 0 {
			t.Fatalf("glyph %X row %d has bits in the low nibble: %02x", i/FontGlyphSize, i%FontGlyphSize, b)
		}
	}

	zero := font[0:FontGlyphSize]
	want := []byte{0xf0, 0x90, 0x90, 0x90, 0xf0}
	for i := range want {
		if zero[i] != want[i] {
			t.Fatalf("glyph 0 mismatch: want: % x have: % x", want, zero)
		}
	}
}
