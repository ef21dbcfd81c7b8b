package cpu

import (
	"fmt"

	"github.com/hexaflex/c8vm/arch"
)

// Instruction defines decoded instruction data.
type Instruction struct {
	IP     uint16 // Instruction address.
	Word   uint16 // Raw instruction word.
	Opcode int    // Decoded opcode. One of the arch opcode constants.
}

// Decode decodes the instruction at the given address.
func (i *Instruction) Decode(m Memory, pc uint16) {
	i.IP = pc
	i.Word = m.U16(int(pc))
	i.Opcode = arch.Decode(i.Word)
}

func (i *Instruction) String() string {
	return fmt.Sprintf("%04x %04x %s", i.IP, i.Word, arch.Disassemble(i.Word))
}
