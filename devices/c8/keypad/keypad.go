// Package keypad implements the hexadecimal keypad input latch.
package keypad

import "fmt"

// Key identifies one of the 16 logical keys, 0 through F.
type Key uint8

// Known keys.
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF

	// None means no key is pressed.
	None Key = 0xff
)

// Valid returns true if k is one of the 16 logical keys.
func (k Key) Valid() bool {
	return k <= KeyF
}

func (k Key) String() string {
	if !k.Valid() {
		return "-"
	}
	return fmt.Sprintf("%X", uint8(k))
}

// ParseKey returns the key for the given hexadecimal digit.
// Returns false if r is not a hex digit.
func ParseKey(r rune) (Key, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Key(r - '0'), true
	case r >= 'a' && r <= 'f':
		return Key(r-'a') + KeyA, true
	case r >= 'A' && r <= 'F':
		return Key(r-'A') + KeyA, true
	}
	return None, false
}

// Keypad holds at most one currently pressed key.
// The zero value holds no key.
//
// There is no queue: the last call to Set wins. A key pressed and released
// before the machine reads it is never seen.
type Keypad struct {
	key     Key
	pressed bool
}

// New creates a new keypad with no key pressed.
func New() *Keypad {
	return &Keypad{}
}

// Set overwrites the latched key. Passing None, or any value outside
// the logical key range, clears it.
func (k *Keypad) Set(key Key) {
	k.key = key
	k.pressed = key.Valid()
}

// Peek returns the latched key without clearing it.
// Returns false if no key is latched.
func (k *Keypad) Peek() (Key, bool) {
	if !k.pressed {
		return None, false
	}
	return k.key, true
}

// Clear releases the latched key.
func (k *Keypad) Clear() {
	k.key = None
	k.pressed = false
}
