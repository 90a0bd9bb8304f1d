// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/regasm/internal"
	"github.com/ezrec/regasm/vm"
)

const (
	STEP_LIMIT = 1 << 20 // Default limit on executed instructions.
)

// REGISTERS are the default register names.
var REGISTERS = []string{"ax", "bx", "cx", "dx"}

var _emulator_defines = map[string]string{
	"STEP_LIMIT": fmt.Sprintf("%v", STEP_LIMIT),
}

// Emulator state. Machine + the program listing it runs.
type Emulator struct {
	Verbose     bool        // If set, enables verbose logging.
	*vm.Machine             // Reference to the machine simulation.
	Program     *vm.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator with the named registers,
// or REGISTERS if none are given.
func NewEmulator(names ...string) (emu *Emulator) {
	if len(names) == 0 {
		names = REGISTERS
	}

	emu = &Emulator{
		Machine: vm.NewMachine(nil, names...),
	}
	emu.Program = emu.Machine.Program
	emu.Machine.StepLimit = STEP_LIMIT

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	registers := map[string]string{
		"REGISTER_COUNT": fmt.Sprintf("%v", len(emu.Machine.Register.Names())),
	}
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		maps.All(registers),
		emu.Machine.Defines(),
	)
}

// Reset the emulator state, and load the current program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		err = vm.ErrHalted
		return
	}

	emu.Machine.Program = emu.Program
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset()

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Machine.Steps
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Machine.Ip
}

// Instruction returns the current instruction.
func (emu *Emulator) Instruction() vm.Instruction {
	ins, _ := emu.Program.At(emu.Machine.Ip)
	return ins
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.Debug(emu.Machine.Ip).LineNo
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
	if errors.Is(err, vm.ErrHalted) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks until the program halts, and returns the final registers.
func (emu *Emulator) Run() (snap vm.Snapshot, err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	snap = emu.Machine.Register.Snapshot()
	return
}
