package arch

import "fmt"

// Number of general purpose registers.
const RegisterCount = 16

// FlagRegister is the index of VF, the carry, borrow and collision flag.
const FlagRegister = 0xf

// RegisterName returns the name associated with the given register index.
// Returns "" if the index is not recognized.
func RegisterName(n int) string {
	if n < 0 || n >= RegisterCount {
		return ""
	}
	return fmt.Sprintf("V%X", n)
}
