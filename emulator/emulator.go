// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/aoc2019/intcode"
)

// Emulator state. Machine + the listing it was assembled from.
type Emulator struct {
	Verbose          bool             // If set, enables verbose logging.
	*intcode.Machine                  // Reference to the machine simulation.
	Program          *intcode.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: intcode.NewMachine(nil),
		Program: &intcode.Program{},
	}

	return
}

// Reset loads a fresh memory image of the program into the machine.
func (emu *Emulator) Reset() (err error) {
	mem := emu.Program.Memory()
	if len(mem) == 0 {
		err = intcode.ErrProgramEmpty
		return
	}

	emu.Machine = intcode.NewMachine(mem)
	emu.Machine.Verbose = emu.Verbose

	if emu.Verbose {
		log.Printf("emulator: reset, %d cells", len(mem))
	}

	return
}

// Seed writes the noun and verb into the reset memory image.
func (emu *Emulator) Seed(noun, verb uint64) (err error) {
	if len(emu.Machine.Memory) <= intcode.VERB_ADDRESS {
		err = intcode.ErrAddress{Address: intcode.VERB_ADDRESS}
		return
	}

	emu.Machine.Memory[intcode.NOUN_ADDRESS] = noun
	emu.Machine.Memory[intcode.VERB_ADDRESS] = verb

	return
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() uint64 {
	return emu.Machine.Ip
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Machine.Ip)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Machine.Tick()
	if errors.Is(err, intcode.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Machine.State == intcode.STATE_HALTED

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
