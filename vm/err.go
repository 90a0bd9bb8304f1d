package vm

import (
	"errors"

	"github.com/ezrec/regasm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrUnknownRegister   = errors.New(f("unknown register"))
	ErrUnknownLabel      = errors.New(f("unknown label"))
	ErrStepLimitExceeded = errors.New(f("step limit exceeded"))
	ErrHalted            = errors.New(f("halted"))

	// Builder errors
	ErrUnknownInstruction = errors.New(f("unknown instruction"))
	ErrArgument           = errors.New(f("invalid argument"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
)

// ErrRegister is an unknown register name.
type ErrRegister string

func (er ErrRegister) Error() string {
	return f("register %v unknown", string(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrUnknownRegister
}

// ErrLabel is an unknown label name.
type ErrLabel string

func (el ErrLabel) Error() string {
	return f("label %v unknown", string(el))
}

func (el ErrLabel) Is(err error) bool {
	return err == ErrUnknownLabel
}

// ErrMnemonic is an unrecognized instruction mnemonic.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("instruction %v unknown", string(em))
}

func (em ErrMnemonic) Is(err error) bool {
	return err == ErrUnknownInstruction
}

// ErrArgKind is an argument of the wrong kind for its position.
type ErrArgKind string

func (ea ErrArgKind) Error() string {
	return f("argument '%v' not permitted here", string(ea))
}

// ErrStep records the instruction that failed during execution.
type ErrStep struct {
	Ip          int
	Instruction Instruction
	Err         error
}

func (err *ErrStep) Error() string {
	return f("ip %d '%v' %v", err.Ip, err.Instruction, err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}

// ErrDescriptor records the descriptor that could not be built.
type ErrDescriptor struct {
	Index    int
	Mnemonic string
	Err      error
}

func (err *ErrDescriptor) Error() string {
	return f("descriptor %d '%v' %v", err.Index, err.Mnemonic, err.Err)
}

func (err *ErrDescriptor) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err *ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err *ErrMacro) Unwrap() error {
	return err.Err
}
