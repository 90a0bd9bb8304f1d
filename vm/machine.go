package vm

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _machine_defines = map[string]string{
	"FLAG_LESS":    fmt.Sprintf("%d", FLAG_LESS),
	"FLAG_EQUAL":   fmt.Sprintf("%d", FLAG_EQUAL),
	"FLAG_GREATER": fmt.Sprintf("%d", FLAG_GREATER),
}

// Machine is the execution context for a single Program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program  *Program // Program being executed.
	Register *Bank    // Register bank.
	Flag     Flag     // Result of the most recent cmp.
	Ip       int      // Index of the next instruction to execute.

	StepLimit int // Maximum number of steps, or 0 for no limit.
	Steps     int // Steps executed since reset.
}

// NewMachine creates a machine for prog, with the named registers.
func NewMachine(prog *Program, names ...string) (m *Machine) {
	if prog == nil {
		prog = (&Builder{}).Program()
	}

	m = &Machine{
		Program:  prog,
		Register: NewBank(names...),
	}

	return
}

// Defines for the machine
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// Reset the machine state.
// - Clears the registers and the comparison flag.
// - Zeros the step counter.
// - Points the instruction pointer at the first instruction.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	m.Register.Reset()
	m.Flag = FLAG_EQUAL
	m.Ip = 0
	m.Steps = 0
}

// Halted returns true once the instruction pointer is outside the program.
func (m *Machine) Halted() bool {
	return m.Ip < 0 || m.Ip >= m.Program.Len()
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", "ip", m.Ip)
	text += fmt.Sprintf("% 5s: %v\n", "flag", m.Flag)
	for name, value := range m.Register.All() {
		text += fmt.Sprintf("% 5s: %v\n", name, value)
	}

	return
}

// Tick executes a single instruction.
func (m *Machine) Tick() (err error) {
	ins, ok := m.Program.At(m.Ip)
	if !ok {
		err = ErrHalted
		return
	}

	if m.StepLimit > 0 && m.Steps >= m.StepLimit {
		err = &ErrStep{Ip: m.Ip, Instruction: ins, Err: ErrStepLimitExceeded}
		return
	}

	err = m.Execute(ins)
	if err != nil {
		return
	}

	m.Steps += 1

	return
}

// Run ticks the machine until it halts, and returns the final registers.
func (m *Machine) Run() (snap Snapshot, err error) {
	for !m.Halted() {
		err = m.Tick()
		if err != nil {
			return
		}
	}

	if m.Verbose {
		log.Printf("vm: halted at %v after %v steps", m.Ip, m.Steps)
	}

	snap = m.Register.Snapshot()
	return
}

// Execute executes a single instruction at the current instruction pointer.
func (m *Machine) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = &ErrStep{Ip: m.Ip, Instruction: ins, Err: err}
		}
	}()

	if m.Verbose {
		log.Printf("%04d: %v", m.Ip, ins)
	}

	next_ip := m.Ip + 1

	switch ins.Op {
	case OP_MOV:
		var val int64
		val, err = ins.Src.Resolve(m.Register)
		if err != nil {
			return
		}
		err = m.Register.Set(ins.Dest, val)
		if err != nil {
			return
		}
	case OP_INC, OP_DEC:
		var val, input int64
		val, err = ins.Src.Resolve(m.Register)
		if err != nil {
			return
		}
		input, err = m.Register.Get(ins.Dest)
		if err != nil {
			return
		}
		if ins.Op == OP_DEC {
			val = -val
		}
		err = m.Register.Set(ins.Dest, input+val)
		if err != nil {
			return
		}
	case OP_CMP:
		var a, b int64
		a, err = m.Register.Get(ins.Dest)
		if err != nil {
			return
		}
		b, err = ins.Src.Resolve(m.Register)
		if err != nil {
			return
		}
		m.Flag = Compare(a, b)
	case OP_JMP, OP_JE, OP_JNE, OP_JL, OP_JLE, OP_JG, OP_JGE:
		if !ins.Op.Taken(m.Flag) {
			break
		}
		next_ip, err = ins.Target.Resolve(m.Program)
		if err != nil {
			return
		}
	default:
		err = ErrMnemonic(ins.Op.String())
		return
	}

	m.Ip = next_ip

	return
}
