package arch

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		want int
	}{
		{0x00e0, CLS},
		{0x00ee, RET},
		{0x0123, SYS},
		{0x1abc, JP},
		{0x2abc, CALL},
		{0x3142, SEI},
		{0x4142, SNEI},
		{0x5120, SER},
		{0x5121, UNKNOWN},
		{0x6142, LDI},
		{0x7142, ADDI},
		{0x8120, LDR},
		{0x8121, OR},
		{0x8122, AND},
		{0x8123, XOR},
		{0x8124, ADDR},
		{0x8125, SUB},
		{0x8126, SHR},
		{0x8127, SUBN},
		{0x812e, SHL},
		{0x8128, UNKNOWN},
		{0x9120, SNER},
		{0x9121, UNKNOWN},
		{0xa123, LDIDX},
		{0xb123, JPV0},
		{0xc1ff, RND},
		{0xd125, DRW},
		{0xe19e, SKP},
		{0xe1a1, SKNP},
		{0xe1a2, UNKNOWN},
		{0xf107, LDVDT},
		{0xf10a, LDK},
		{0xf115, LDDTV},
		{0xf118, LDSTV},
		{0xf11e, ADDIDX},
		{0xf129, LDF},
		{0xf133, LDB},
		{0xf155, STORE},
		{0xf165, LOAD},
		{0xf1ff, UNKNOWN},
	}

	for _, tt := range tests {
		if have := Decode(tt.word); have != tt.want {
			t.Fatalf("decode mismatch for %04x: want: %d have: %d", tt.word, tt.want, have)
		}
	}
}

func TestFields(t *testing.T) {
	const w = 0xd7c5

	if Class(w) != 0xd || X(w) != 7 || Y(w) != 0xc || N(w) != 5 {
		t.Fatalf("field mismatch: class=%x x=%x y=%x n=%x", Class(w), X(w), Y(w), N(w))
	}

	if KK(w) != 0xc5 {
		t.Fatalf("kk mismatch: want: %02x have: %02x", 0xc5, KK(w))
	}

	if NNN(w) != 0x7c5 {
		t.Fatalf("nnn mismatch: want: %03x have: %03x", 0x7c5, NNN(w))
	}
}

func TestNames(t *testing.T) {
	for opcode := SYS; opcode <= LOAD; opcode++ {
		if _, ok := Name(opcode); !ok {
			t.Fatalf("opcode %d has no name", opcode)
		}
	}

	if _, ok := Name(UNKNOWN); ok {
		t.Fatalf("expected no name for UNKNOWN")
	}
}

func TestRegisterName(t *testing.T) {
	if have := RegisterName(0xa); have != "VA" {
		t.Fatalf("want: VA have: %s", have)
	}

	if have := RegisterName(16); have != "" {
		t.Fatalf("want empty name; have: %s", have)
	}
}
