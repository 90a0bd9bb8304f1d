package vm

import (
	"errors"
	"strconv"
)

// ArgKind is the type tag of a descriptor argument.
type ArgKind int

const (
	ARG_REG   = ArgKind(iota) // register
	ARG_IMM                   // immediate
	ARG_LABEL                 // label
	ARG_INDEX                 // index
)

// Arg is a type-tagged descriptor argument.
type Arg struct {
	Kind  ArgKind
	Name  string // Register or label name.
	Value int64  // Immediate value or instruction index.
}

// ArgReg is a register name argument.
func ArgReg(name string) Arg {
	return Arg{Kind: ARG_REG, Name: name}
}

// ArgImm is an integer literal argument.
func ArgImm(value int64) Arg {
	return Arg{Kind: ARG_IMM, Value: value}
}

// ArgLabel is a label name argument.
func ArgLabel(name string) Arg {
	return Arg{Kind: ARG_LABEL, Name: name}
}

// ArgIndex is an absolute instruction index argument.
func ArgIndex(index int) Arg {
	return Arg{Kind: ARG_INDEX, Value: int64(index)}
}

func (arg Arg) String() string {
	switch arg.Kind {
	case ARG_REG:
		return arg.Name
	case ARG_LABEL:
		return ":" + arg.Name
	case ARG_INDEX:
		return "#" + strconv.FormatInt(arg.Value, 10)
	}
	return strconv.FormatInt(arg.Value, 10)
}

// Descriptor describes one instruction, or a label declaration when
// Mnemonic is "label".
type Descriptor struct {
	Mnemonic string
	Args     []Arg

	LineNo int      // Source line number, 0 if unknown.
	Words  []string // Source words, if any.
}

// Desc creates an instruction descriptor.
func Desc(mnemonic string, args ...Arg) Descriptor {
	return Descriptor{Mnemonic: mnemonic, Args: args}
}

// DescLabel creates a label declaration descriptor.
func DescLabel(name string) Descriptor {
	return Descriptor{Mnemonic: "label", Args: []Arg{ArgLabel(name)}}
}

// register returns the register name of an argument.
func (arg Arg) register() (name string, err error) {
	if arg.Kind != ARG_REG || len(arg.Name) == 0 {
		err = errors.Join(ErrArgument, ErrArgKind(arg.String()))
		return
	}

	name = arg.Name
	return
}

// operand converts an argument to an Operand.
func (arg Arg) operand() (o Operand, err error) {
	switch arg.Kind {
	case ARG_IMM:
		o = Imm(arg.Value)
	case ARG_REG:
		var name string
		name, err = arg.register()
		o = Reg(name)
	default:
		err = errors.Join(ErrArgument, ErrArgKind(arg.String()))
	}

	return
}

// target converts an argument to a jump Target.
func (arg Arg) target() (t Target, err error) {
	switch arg.Kind {
	case ARG_LABEL:
		if len(arg.Name) == 0 {
			err = errors.Join(ErrArgument, ErrArgKind(arg.String()))
			return
		}
		t = LabelTarget(arg.Name)
	case ARG_INDEX, ARG_IMM:
		t = IndexTarget(int(arg.Value))
	default:
		err = errors.Join(ErrArgument, ErrArgKind(arg.String()))
	}

	return
}

// instruction maps a descriptor to an Instruction.
func (desc Descriptor) instruction() (ins Instruction, err error) {
	op, ok := LookupOp(desc.Mnemonic)
	if !ok {
		err = ErrMnemonic(desc.Mnemonic)
		return
	}

	args := desc.Args

	switch op {
	case OP_MOV, OP_CMP:
		if len(args) != 2 {
			err = ErrArgument
			return
		}
		var dest string
		var src Operand
		dest, err = args[0].register()
		if err != nil {
			return
		}
		src, err = args[1].operand()
		if err != nil {
			return
		}
		if op == OP_MOV {
			ins = MakeMov(dest, src)
		} else {
			ins = MakeCmp(dest, src)
		}
	case OP_INC, OP_DEC:
		if len(args) < 1 || len(args) > 2 {
			err = ErrArgument
			return
		}
		var dest string
		var by []Operand
		dest, err = args[0].register()
		if err != nil {
			return
		}
		if len(args) == 2 {
			var src Operand
			src, err = args[1].operand()
			if err != nil {
				return
			}
			by = append(by, src)
		}
		if op == OP_INC {
			ins = MakeInc(dest, by...)
		} else {
			ins = MakeDec(dest, by...)
		}
	default:
		if len(args) != 1 {
			err = ErrArgument
			return
		}
		var target Target
		target, err = args[0].target()
		if err != nil {
			return
		}
		ins = MakeJump(op, target)
	}

	ins.LineNo = desc.LineNo
	ins.Words = desc.Words

	return
}

// Build converts an ordered descriptor list into a Program.
// Unrecognized mnemonics fail with ErrUnknownInstruction before any
// instruction is executed.
func Build(descs []Descriptor) (prog *Program, err error) {
	var b Builder

	for n, desc := range descs {
		if desc.Mnemonic == "label" {
			if len(desc.Args) != 1 || desc.Args[0].Kind != ARG_LABEL || len(desc.Args[0].Name) == 0 {
				err = &ErrDescriptor{Index: n, Mnemonic: desc.Mnemonic, Err: ErrArgument}
				return
			}
			b.AddLabel(desc.Args[0].Name)
			continue
		}

		var ins Instruction
		ins, err = desc.instruction()
		if err != nil {
			err = &ErrDescriptor{Index: n, Mnemonic: desc.Mnemonic, Err: err}
			return
		}
		b.AddInstruction(ins)
	}

	prog = b.Program()
	return
}

// Option configures a Machine created by Run.
type Option func(m *Machine)

// WithStepLimit limits the number of executed instructions.
func WithStepLimit(limit int) Option {
	return func(m *Machine) { m.StepLimit = limit }
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(m *Machine) { m.Verbose = verbose }
}

// Run builds the descriptors into a program, executes it with the named
// registers all starting at 0, and returns the final register values in
// the order of names.
func Run(names []string, descs []Descriptor, options ...Option) (snap Snapshot, err error) {
	prog, err := Build(descs)
	if err != nil {
		return
	}

	m := NewMachine(prog, names...)
	for _, option := range options {
		option(m)
	}
	m.Reset()

	return m.Run()
}
