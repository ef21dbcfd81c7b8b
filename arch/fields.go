package arch

// Instruction word layout: cxyn, cxkk or cnnn.
//
// Each helper extracts one field from a 16-bit instruction word.

// Class returns the opcode class: the top nibble.
func Class(w uint16) int { return int(w>>12) & 0xf }

// X returns the first register operand: the second nibble.
func X(w uint16) int { return int(w>>8) & 0xf }

// Y returns the second register operand: the third nibble.
func Y(w uint16) int { return int(w>>4) & 0xf }

// N returns the lowest nibble.
func N(w uint16) int { return int(w) & 0xf }

// KK returns the low byte.
func KK(w uint16) byte { return byte(w) }

// NNN returns the low 12 bits, used as an address.
func NNN(w uint16) uint16 { return w & 0xfff }
