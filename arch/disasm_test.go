package arch

import "testing"

func TestDisassemble(t *testing.T) {
	tests := map[uint16]string{
		0x00e0: "CLS",
		0x00ee: "RET",
		0x1228: "JP   0x228",
		0x2300: "CALL 0x300",
		0x3a0f: "SE   VA, 0x0F",
		0x5ab0: "SE   VA, VB",
		0x8124: "ADD  V1, V2",
		0x812e: "SHL  V1, V2",
		0xa2f0: "LD   I, 0x2F0",
		0xb300: "JP   V0, 0x300",
		0xd015: "DRW  V0, V1, 5",
		0xe39e: "SKP  V3",
		0xf30a: "LD   V3, K",
		0xf329: "LD   F, V3",
		0xf355: "LD   [I], V3",
		0xf365: "LD   V3, [I]",
		0xffff: "DW   0xFFFF",
	}

	for word, want := range tests {
		if have := Disassemble(word); have != want {
			t.Fatalf("disassembly mismatch for %04x:\nwant: %q\nhave: %q", word, want, have)
		}
	}
}
