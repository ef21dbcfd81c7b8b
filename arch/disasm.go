package arch

import "fmt"

// Disassemble returns the assembler representation of the given instruction word.
// Words which do not decode to a known instruction are written as a DW directive.
func Disassemble(w uint16) string {
	opcode := Decode(w)
	name, ok := Name(opcode)
	if !ok {
		return fmt.Sprintf("DW   0x%04X", w)
	}

	vx := RegisterName(X(w))
	vy := RegisterName(Y(w))

	var args string
	switch opcode {
	case CLS, RET:
		return name
	case SYS, JP, CALL:
		args = fmt.Sprintf("0x%03X", NNN(w))
	case JPV0:
		args = fmt.Sprintf("V0, 0x%03X", NNN(w))
	case LDIDX:
		args = fmt.Sprintf("I, 0x%03X", NNN(w))
	case SEI, SNEI, LDI, ADDI, RND:
		args = fmt.Sprintf("%s, 0x%02X", vx, KK(w))
	case SER, SNER, LDR, OR, AND, XOR, ADDR, SUB, SHR, SUBN, SHL:
		args = fmt.Sprintf("%s, %s", vx, vy)
	case DRW:
		args = fmt.Sprintf("%s, %s, %d", vx, vy, N(w))
	case SKP, SKNP:
		args = vx
	case LDVDT:
		args = vx + ", DT"
	case LDK:
		args = vx + ", K"
	case LDDTV:
		args = "DT, " + vx
	case LDSTV:
		args = "ST, " + vx
	case ADDIDX:
		args = "I, " + vx
	case LDF:
		args = "F, " + vx
	case LDB:
		args = "B, " + vx
	case STORE:
		args = "[I], " + vx
	case LOAD:
		args = vx + ", [I]"
	}

	return fmt.Sprintf("%-4s %s", name, args)
}
