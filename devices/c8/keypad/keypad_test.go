package keypad

import "testing"

func TestZeroValue(t *testing.T) {
	var k Keypad
	if key, ok := k.Peek(); ok {
		t.Fatalf("expected empty latch; have %v", key)
	}
}

func TestSetPeekClear(t *testing.T) {
	k := New()
	k.Set(KeyA)

	for i := 0; i < 2; i++ {
		key, ok := k.Peek()
		if !ok || key != KeyA {
			t.Fatalf("peek %d: want: A have: %v (%v)", i, key, ok)
		}
	}

	k.Set(Key3)
	if key, _ := k.Peek(); key != Key3 {
		t.Fatalf("expected last writer to win; have %v", key)
	}

	k.Clear()
	if _, ok := k.Peek(); ok {
		t.Fatalf("expected empty latch after clear")
	}

	k.Set(Key0)
	k.Set(None)
	if _, ok := k.Peek(); ok {
		t.Fatalf("expected Set(None) to clear the latch")
	}

	k.Set(Key(0x10))
	if _, ok := k.Peek(); ok {
		t.Fatalf("expected out of range key to clear the latch")
	}
}

func TestParseKey(t *testing.T) {
	tests := map[rune]Key{
		'0': Key0,
		'9': Key9,
		'a': KeyA,
		'F': KeyF,
	}

	for r, want := range tests {
		have, ok := ParseKey(r)
		if !ok || have != want {
			t.Fatalf("parse %q: want: %v have: %v", r, want, have)
		}
	}

	if _, ok := ParseKey('g'); ok {
		t.Fatalf("expected 'g' to be rejected")
	}
}

func TestString(t *testing.T) {
	if KeyB.String() != "B" || None.String() != "-" {
		t.Fatalf("unexpected key names: %s %s", KeyB, None)
	}
}
