package cpu

import "testing"

func TestParseJumpMode(t *testing.T) {
	tests := map[string]JumpMode{
		"":         JumpAdditive,
		"additive": JumpAdditive,
		"Absolute": JumpAbsolute,
	}

	for name, want := range tests {
		have, err := ParseJumpMode(name)
		if err != nil {
			t.Fatal(err)
		}
		if have != want {
			t.Fatalf("%q: want: %v have: %v", name, want, have)
		}
	}

	if _, err := ParseJumpMode("relative"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestParseAddresses(t *testing.T) {
	have, err := ParseAddresses("0x2a0, 300,,FFF")
	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{0x2a0, 0x300, 0xfff}
	if len(have) != len(want) {
		t.Fatalf("want: %x have: %x", want, have)
	}

	for i := range want {
		if have[i] != want[i] {
			t.Fatalf("want: %x have: %x", want, have)
		}
	}

	for _, bad := range []string{"0x1000", "xyz", "-1"} {
		if _, err := ParseAddresses(bad); err == nil {
			t.Fatalf("expected an error for %q", bad)
		}
	}
}
