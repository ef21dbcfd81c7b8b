package cpu

const (
	MemoryCapacity  = 0x1000                        // Size of addressable memory.
	AddressMask     = MemoryCapacity - 1            // Every memory access is masked to 12 bits.
	ProgramStart    = 0x200                         // Address at which programs are loaded.
	ProgramCapacity = MemoryCapacity - ProgramStart // Largest program that fits in memory.
)

// Memory defines the system's memory bank.
//
// All accessors mask their address to 12 bits, so addresses computed
// from an overflowing index register wrap back to the start of memory.
type Memory []byte

// U8 returns the 8-bit value at the given address.
func (m Memory) U8(addr int) byte {
	return m[addr&AddressMask]
}

// SetU8 sets the 8-bit value at the given address.
func (m Memory) SetU8(addr int, value byte) {
	m[addr&AddressMask] = value
}

// U16 returns the big endian 16-bit value at the given address.
func (m Memory) U16(addr int) uint16 {
	return uint16(m.U8(addr))<<8 | uint16(m.U8(addr+1))
}

// Write writes len(p) bytes from p into memory, starting at the given address.
func (m Memory) Write(address int, p []byte) {
	for i, v := range p {
		m.SetU8(address+i, v)
	}
}

// Read reads len(p) bytes from memory into p, starting at the given address.
func (m Memory) Read(address int, p []byte) {
	for i := range p {
		p[i] = m.U8(address + i)
	}
}
