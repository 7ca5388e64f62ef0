package intcode

import (
	"fmt"
	"log"
)

// State is the execution state of a machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Machine is the execution context for a single run over one memory.
//
// The machine has sole use of its memory until it halts or faults; the
// caller must not share that memory with another machine in the meantime.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory // Memory being executed, mutated in place.
	Ip     uint64 // Current instruction pointer.
	State  State  // Current execution state.
	Ticks  int    // Instructions executed.

	fault error // Fault that stopped the machine.
}

// NewMachine creates a machine that will execute mem from address 0.
func NewMachine(mem Memory) (m *Machine) {
	m = &Machine{
		Memory: mem,
	}

	return
}

// Run executes mem until it halts.
func Run(mem Memory) (err error) {
	return NewMachine(mem).Run()
}

// String returns the current machine state as a string.
func (m *Machine) String() string {
	return fmt.Sprintf("   ip: %d\nstate: %v\nticks: %d\n", m.Ip, m.State, m.Ticks)
}

// Fault returns the error that moved the machine to STATE_FAULTED.
func (m *Machine) Fault() error {
	return m.fault
}

// Run ticks the machine until it halts or faults.
// Running a halted machine is not an error.
func (m *Machine) Run() (err error) {
	for m.State == STATE_RUNNING {
		err = m.Tick()
		if err != nil {
			return
		}
	}

	if m.State == STATE_FAULTED {
		err = m.fault
	}

	return
}

// Tick executes a single instruction.
func (m *Machine) Tick() (err error) {
	switch m.State {
	case STATE_HALTED:
		return ErrHalted
	case STATE_FAULTED:
		return m.fault
	}

	defer func() {
		if err != nil {
			m.State = STATE_FAULTED
			m.fault = err
			if m.Verbose {
				log.Printf("intcode: %04d: fault: %v", m.Ip, err)
			}
		}
	}()

	ins, err := Decode(m.Memory, m.Ip)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("intcode: %04d: %v", m.Ip, ins)
	}

	err = m.Execute(ins)
	if err != nil {
		return
	}

	m.Ticks++

	return
}

// Execute executes a single decoded instruction.
func (m *Machine) Execute(ins Instruction) (err error) {
	next_ip := m.Ip + ins.Opcode.Width()

	switch ins.Opcode {
	case OP_HALT:
		m.State = STATE_HALTED
		return
	case OP_ADD, OP_MUL:
		var a, b uint64
		a, err = m.Memory.load(ins.Args[0], m.Ip)
		if err != nil {
			return
		}
		b, err = m.Memory.load(ins.Args[1], m.Ip)
		if err != nil {
			return
		}
		if ins.Opcode == OP_ADD {
			err = m.Memory.store(ins.Args[2], a+b, m.Ip)
		} else {
			err = m.Memory.store(ins.Args[2], a*b, m.Ip)
		}
		if err != nil {
			return
		}
	default:
		err = ErrOpcode{Opcode: ins.Opcode, Ip: m.Ip}
		return
	}

	m.Ip = next_ip

	return
}
