// Package cpu implements the CHIP-8 interpreter.
package cpu

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/c8vm/arch"
	"github.com/hexaflex/c8vm/devices/c8/display"
	"github.com/hexaflex/c8vm/devices/c8/keypad"
)

// StackDepth is the number of return address slots. Slot 0 is never
// written because calls pre-increment the stack pointer, which leaves
// room for StackDepth-1 nested calls.
const StackDepth = 16

// TraceFunc represents a callback handler for debug trace output.
type TraceFunc func(*Instruction)

// Machine implements the runtime.
//
// It exclusively owns its memory, registers, display and keypad. Nothing
// in here is safe for concurrent use; renderers must work from Snapshot.
type Machine struct {
	config      Config                   // Machine configuration.
	trace       TraceFunc                // Handler for debug trace output.
	memory      Memory                   // System memory.
	display     *display.Display         // Framebuffer.
	keypad      *keypad.Keypad           // Input latch.
	rng         *rand.Rand               // Random number generator.
	program     []byte                   // Loaded program, kept for Reset.
	breakpoints map[uint16]struct{}      // Addresses at which Step reports ErrBreakpoint.
	halted      int                      // Address of the last reported breakpoint, or -1.
	instr       Instruction              // Decoded instruction data.
	stack       [StackDepth]uint16       // Return addresses.
	v           [arch.RegisterCount]byte // General purpose registers V0-VF.
	i           uint16                   // Index register.
	pc          uint16                   // Program counter.
	sp          int                      // Stack pointer.
	dt          byte                     // Delay timer.
	st          byte                     // Sound timer.
	lastKey     keypad.Key               // Key supplied to the last frame.
}

// New creates a new machine with the given configuration.
// Optionally with the given debug trace handler.
//
// The machine starts out with the font loaded and an empty program.
func New(config Config, trace TraceFunc) *Machine {
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	if config.Speed <= 0 {
		config.Speed = DefaultSpeed
	}

	m := &Machine{
		config:      config,
		trace:       trace,
		memory:      make(Memory, MemoryCapacity),
		display:     display.New(),
		keypad:      keypad.New(),
		breakpoints: make(map[uint16]struct{}),
	}

	m.Reset()
	return m
}

// Load copies the given program into memory at ProgramStart and resets
// the machine. Programs which do not fit are rejected as a whole.
func (m *Machine) Load(program []byte) error {
	if len(program) > ProgramCapacity {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes; at most %d fit from 0x%03x",
			len(program), ProgramCapacity, ProgramStart)
	}

	m.program = append(m.program[:0], program...)
	m.Reset()
	return nil
}

// LoadFile reads a program from the given file and loads it.
func (m *Machine) LoadFile(file string) error {
	program, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "failed to read program")
	}

	return errors.Wrapf(m.Load(program), "%s", file)
}

// Reset restores the power-on state while keeping the loaded program.
func (m *Machine) Reset() {
	for i := range m.memory {
		m.memory[i] = 0
	}

	m.memory.Write(FontStart, font[:])
	m.memory.Write(ProgramStart, m.program)

	m.v = [arch.RegisterCount]byte{}
	m.stack = [StackDepth]uint16{}
	m.i = 0
	m.pc = ProgramStart
	m.sp = 0
	m.dt = 0
	m.st = 0
	m.lastKey = keypad.None
	m.halted = -1
	m.display.Clear()
	m.keypad.Clear()

	seed := m.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.rng = rand.New(rand.NewSource(seed))
}

// Frame runs one frame: it latches the given key, executes the configured
// number of instructions, decrements both timers and releases the key.
//
// Execution stops at the first error. Timers are not decremented after a
// fault, and the program counter points at the faulting instruction.
// A breakpoint is not a fault: the frame ends early but timers still run.
func (m *Machine) Frame(key keypad.Key) error {
	m.lastKey = key
	m.keypad.Set(key)
	defer m.keypad.Clear()

	for n := 0; n < m.config.Speed; n++ {
		if err := m.Step(); err != nil {
			if errors.Cause(err) == ErrBreakpoint {
				m.Tick()
			}
			return err
		}
	}

	m.Tick()
	return nil
}

// Step performs a single fetch-decode-execute step.
//
// Stack faults return an *Error and leave the machine as it was before
// the instruction. A breakpoint returns an *Error wrapping ErrBreakpoint
// after the instruction at that address has executed. It is not reported
// again while execution stays on that address, as with a waiting Fx0A.
func (m *Machine) Step() error {
	instr := &m.instr
	instr.Decode(m.memory, m.pc)

	m.trace(instr)
	m.pc += 2

	if err := m.execute(instr); err != nil {
		m.pc = instr.IP
		return NewError(instr, err)
	}

	if int(instr.IP) == m.halted {
		return nil
	}

	m.halted = -1
	if _, ok := m.breakpoints[instr.IP]; ok {
		m.halted = int(instr.IP)
		return NewError(instr, ErrBreakpoint)
	}

	return nil
}

// Tick decrements the delay and sound timers by one, stopping at zero.
func (m *Machine) Tick() {
	if m.dt > 0 {
		m.dt--
	}
	if m.st > 0 {
		m.st--
	}
}

// Sound returns true while the sound timer is running.
func (m *Machine) Sound() bool {
	return m.st > 0
}

// Snapshot returns a copy of the display contents.
func (m *Machine) Snapshot() display.Buffer {
	return m.display.Snapshot()
}

// Metrics returns a one-line summary of the machine registers.
func (m *Machine) Metrics() string {
	return fmt.Sprintf("PC: 0x%04x I: 0x%04x SP: %d DT: %d ST: %d Key: %s",
		m.pc, m.i, m.sp, m.dt, m.st, m.lastKey)
}

// SetBreakpoint makes Step report ErrBreakpoint once the instruction at
// the given address has executed.
func (m *Machine) SetBreakpoint(addr uint16) {
	m.breakpoints[addr&AddressMask] = struct{}{}
}

// ClearBreakpoints removes all breakpoints.
func (m *Machine) ClearBreakpoints() {
	for k := range m.breakpoints {
		delete(m.breakpoints, k)
	}
}

// Speed returns the number of instructions executed per frame.
func (m *Machine) Speed() int { return m.config.Speed }

// Memory returns the machine's memory bank.
func (m *Machine) Memory() Memory { return m.memory }

// Display returns the machine's framebuffer.
func (m *Machine) Display() *display.Display { return m.display }

// Keypad returns the machine's input latch.
func (m *Machine) Keypad() *keypad.Keypad { return m.keypad }

// V returns the value of register Vn.
func (m *Machine) V(n int) byte { return m.v[n&0xf] }

// I returns the index register.
func (m *Machine) I() uint16 { return m.i }

// PC returns the program counter.
func (m *Machine) PC() uint16 { return m.pc }

// SP returns the stack pointer.
func (m *Machine) SP() int { return m.sp }

// DelayTimer returns the delay timer.
func (m *Machine) DelayTimer() byte { return m.dt }

// SoundTimer returns the sound timer.
func (m *Machine) SoundTimer() byte { return m.st }

// execute performs the given instruction. The program counter has already
// been advanced past it.
//
// Register operands are read before anything is written. Instructions
// which set VF write it before Vx, so x == F leaves the result in VF.
func (m *Machine) execute(instr *Instruction) error {
	w := instr.Word
	x := arch.X(w)
	vx := m.v[x]
	vy := m.v[arch.Y(w)]
	kk := arch.KK(w)
	nnn := arch.NNN(w)

	switch instr.Opcode {
	case arch.CLS:
		m.display.Clear()
	case arch.RET:
		if m.sp == 0 {
			return ErrStackUnderflow
		}
		m.pc = m.stack[m.sp]
		m.sp--

	case arch.JP:
		m.pc = nnn
	case arch.CALL:
		if m.sp >= StackDepth-1 {
			return ErrStackOverflow
		}
		m.sp++
		m.stack[m.sp] = m.pc
		m.pc = nnn
	case arch.JPV0:
		if m.config.JumpMode == JumpAbsolute {
			m.pc = nnn + uint16(m.v[0])
		} else {
			m.pc += nnn + uint16(m.v[0])
		}

	case arch.SEI:
		m.skipIf(vx == kk)
	case arch.SNEI:
		m.skipIf(vx != kk)
	case arch.SER:
		m.skipIf(vx == vy)
	case arch.SNER:
		m.skipIf(vx != vy)

	case arch.LDI:
		m.v[x] = kk
	case arch.ADDI:
		m.v[x] = vx + kk
	case arch.LDR:
		m.v[x] = vy
	case arch.OR:
		m.v[x] = vx | vy
	case arch.AND:
		m.v[x] = vx & vy
	case arch.XOR:
		m.v[x] = vx ^ vy
	case arch.ADDR:
		sum := int(vx) + int(vy)
		m.setFlag(sum > 0xff)
		m.v[x] = byte(sum)
	case arch.SUB:
		m.setFlag(vx > vy)
		m.v[x] = vx - vy
	case arch.SHR:
		m.setFlag(vx&0x01 != 0)
		m.v[x] = vy >> 1
	case arch.SUBN:
		m.setFlag(vy > vx)
		m.v[x] = vy - vx
	case arch.SHL:
		m.setFlag(vx&0x80 != 0)
		m.v[x] = vy << 1

	case arch.LDIDX:
		m.i = nnn
	case arch.ADDIDX:
		m.i += uint16(vx)
	case arch.LDF:
		m.i = FontStart + uint16(vx)*FontGlyphSize
	case arch.RND:
		m.v[x] = byte(m.rng.Intn(256)) & kk
	case arch.DRW:
		m.draw(vx, vy, arch.N(w))

	case arch.SKP:
		key, ok := m.keypad.Peek()
		m.skipIf(ok && byte(key) == vx)
	case arch.SKNP:
		key, ok := m.keypad.Peek()
		m.skipIf(!ok || byte(key) != vx)
	case arch.LDK:
		if key, ok := m.keypad.Peek(); ok {
			m.v[x] = byte(key)
		} else {
			m.pc -= 2
		}

	case arch.LDVDT:
		m.v[x] = m.dt
	case arch.LDDTV:
		m.dt = vx
	case arch.LDSTV:
		m.st = vx

	case arch.LDB:
		addr := int(m.i)
		m.memory.SetU8(addr, vx/100)
		m.memory.SetU8(addr+1, vx/10%10)
		m.memory.SetU8(addr+2, vx%10)
	case arch.STORE:
		m.memory.Write(int(m.i), m.v[:x+1])
	case arch.LOAD:
		m.memory.Read(int(m.i), m.v[:x+1])

	case arch.SYS, arch.UNKNOWN:
		/* nop */
	}

	return nil
}

// draw XORs an n-byte sprite read from memory at I onto the display at
// (vx, vy). VF is set if any lit cell was turned off.
//
// The origin wraps around the display edges, the sprite itself is clipped.
func (m *Machine) draw(vx, vy byte, n int) {
	m.v[arch.FlagRegister] = 0

	x0 := int(vx) % display.Width
	y := int(vy) % display.Height

	for row := 0; row < n; row++ {
		bits := m.memory.U8(int(m.i) + row)

		for x := x0; x < x0+8 && x < display.Width; x++ {
			if bits&(0x80>>uint(x-x0)) == 0 {
				continue
			}
			if m.display.Toggle(x, y) {
				m.v[arch.FlagRegister] = 1
			}
		}

		y++
		if y >= display.Height {
			break
		}
	}
}

// skipIf skips the next instruction if cond is true.
func (m *Machine) skipIf(cond bool) {
	if cond {
		m.pc += 2
	}
}

// setFlag sets VF to 1 or 0.
func (m *Machine) setFlag(v bool) {
	if v {
		m.v[arch.FlagRegister] = 1
	} else {
		m.v[arch.FlagRegister] = 0
	}
}
