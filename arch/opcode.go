// Package arch defines the CHIP-8 instruction set along with
// some related helper functions.
package arch

// Known opcodes.
//
// Instruction words are mapped onto these through Decode. The names
// follow the operand pattern of the word they decode, e.g. SEI is
// 3xkk (compare against an immediate) and SER is 5xy0 (compare against
// a register).
const (
	UNKNOWN = iota
	SYS
	CLS
	RET
	JP
	CALL
	SEI
	SNEI
	SER
	LDI
	ADDI
	LDR
	OR
	AND
	XOR
	ADDR
	SUB
	SHR
	SUBN
	SHL
	SNER
	LDIDX
	JPV0
	RND
	DRW
	SKP
	SKNP
	LDVDT
	LDK
	LDDTV
	LDSTV
	ADDIDX
	LDF
	LDB
	STORE
	LOAD
)

// Decode returns the opcode for the given instruction word.
// Returns UNKNOWN if the word is not part of the instruction set.
func Decode(w uint16) int {
	switch Class(w) {
	case 0x0:
		switch w {
		case 0x00e0:
			return CLS
		case 0x00ee:
			return RET
		}
		return SYS
	case 0x1:
		return JP
	case 0x2:
		return CALL
	case 0x3:
		return SEI
	case 0x4:
		return SNEI
	case 0x5:
		if N(w) == 0 {
			return SER
		}
	case 0x6:
		return LDI
	case 0x7:
		return ADDI
	case 0x8:
		switch N(w) {
		case 0x0:
			return LDR
		case 0x1:
			return OR
		case 0x2:
			return AND
		case 0x3:
			return XOR
		case 0x4:
			return ADDR
		case 0x5:
			return SUB
		case 0x6:
			return SHR
		case 0x7:
			return SUBN
		case 0xe:
			return SHL
		}
	case 0x9:
		if N(w) == 0 {
			return SNER
		}
	case 0xa:
		return LDIDX
	case 0xb:
		return JPV0
	case 0xc:
		return RND
	case 0xd:
		return DRW
	case 0xe:
		switch KK(w) {
		case 0x9e:
			return SKP
		case 0xa1:
			return SKNP
		}
	case 0xf:
		switch KK(w) {
		case 0x07:
			return LDVDT
		case 0x0a:
			return LDK
		case 0x15:
			return LDDTV
		case 0x18:
			return LDSTV
		case 0x1e:
			return ADDIDX
		case 0x29:
			return LDF
		case 0x33:
			return LDB
		case 0x55:
			return STORE
		case 0x65:
			return LOAD
		}
	}
	return UNKNOWN
}

// Name returns the assembler mnemonic for the given opcode.
// Returns false if the opcode is not recognized.
func Name(opcode int) (string, bool) {
	switch opcode {
	case SYS:
		return "SYS", true
	case CLS:
		return "CLS", true
	case RET:
		return "RET", true
	case JP, JPV0:
		return "JP", true
	case CALL:
		return "CALL", true
	case SEI, SER:
		return "SE", true
	case SNEI, SNER:
		return "SNE", true
	case LDI, LDR, LDIDX, LDVDT, LDK, LDDTV, LDSTV, LDF, LDB, STORE, LOAD:
		return "LD", true
	case ADDI, ADDR, ADDIDX:
		return "ADD", true
	case OR:
		return "OR", true
	case AND:
		return "AND", true
	case XOR:
		return "XOR", true
	case SUB:
		return "SUB", true
	case SHR:
		return "SHR", true
	case SUBN:
		return "SUBN", true
	case SHL:
		return "SHL", true
	case RND:
		return "RND", true
	case DRW:
		return "DRW", true
	case SKP:
		return "SKP", true
	case SKNP:
		return "SKNP", true
	}

	return "", false
}

// SetsFlag returns true if the given opcode writes register VF as a
// side effect of its operation.
func SetsFlag(opcode int) bool {
	switch opcode {
	case ADDR, SUB, SHR, SUBN, SHL, DRW:
		return true
	}
	return false
}
