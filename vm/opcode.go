package vm

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is the instruction variant tag.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_MOV = Op(iota) // mov
	OP_INC            // inc
	OP_DEC            // dec
	OP_CMP            // cmp
	OP_JMP            // jmp
	OP_JE             // je
	OP_JNE            // jne
	OP_JL             // jl
	OP_JLE            // jle
	OP_JG             // jg
	OP_JGE            // jge
)

// opMap maps mnemonics to instruction variants.
var opMap = func() (m map[string]Op) {
	m = make(map[string]Op, int(OP_JGE)+1)
	for op := OP_MOV; op <= OP_JGE; op++ {
		m[op.String()] = op
	}
	return
}()

// LookupOp returns the instruction variant for a mnemonic.
func LookupOp(mnemonic string) (op Op, ok bool) {
	op, ok = opMap[mnemonic]
	return
}

// IsJump returns true for jmp and the six conditional jumps.
func (op Op) IsJump() bool {
	return op >= OP_JMP && op <= OP_JGE
}

// Taken returns true if the jump variant transfers control under flag.
func (op Op) Taken(flag Flag) (taken bool) {
	switch op {
	case OP_JMP:
		taken = true
	case OP_JE:
		taken = flag == FLAG_EQUAL
	case OP_JNE:
		taken = flag != FLAG_EQUAL
	case OP_JL:
		taken = flag == FLAG_LESS
	case OP_JLE:
		taken = flag != FLAG_GREATER
	case OP_JG:
		taken = flag == FLAG_GREATER
	case OP_JGE:
		taken = flag != FLAG_LESS
	}

	return
}

// Flag is the result of the most recent cmp.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_LESS    = Flag(-1) // lt
	FLAG_EQUAL   = Flag(0)  // eq
	FLAG_GREATER = Flag(1)  // gt
)

// Compare returns the Flag for a compared to b.
func Compare(a, b int64) Flag {
	switch {
	case a < b:
		return FLAG_LESS
	case a > b:
		return FLAG_GREATER
	}
	return FLAG_EQUAL
}

// Operand is either a literal integer or a register reference.
type Operand struct {
	isRegister bool
	register   string
	value      int64
}

// Imm returns a literal operand.
func Imm(value int64) Operand {
	return Operand{value: value}
}

// Reg returns a register reference operand.
func Reg(name string) Operand {
	return Operand{isRegister: true, register: name}
}

// IsRegister returns true if the operand references a register.
func (o Operand) IsRegister() bool {
	return o.isRegister
}

// Register returns the referenced register name, or "" for a literal.
func (o Operand) Register() string {
	return o.register
}

// Value returns the literal value, or 0 for a register reference.
func (o Operand) Value() int64 {
	return o.value
}

// Resolve returns the literal, or the current value of the register.
func (o Operand) Resolve(bank *Bank) (value int64, err error) {
	if !o.IsRegister() {
		value = o.value
		return
	}

	return bank.Get(o.register)
}

func (o Operand) String() string {
	if o.IsRegister() {
		return o.register
	}
	return strconv.FormatInt(o.value, 10)
}

// Target is the destination of a jump: a label name or an absolute index.
type Target struct {
	isLabel bool
	label   string
	index   int
}

// LabelTarget returns a jump target resolved through the program labels.
func LabelTarget(name string) Target {
	return Target{isLabel: true, label: name}
}

// IndexTarget returns a jump target at an absolute instruction index.
func IndexTarget(index int) Target {
	return Target{index: index}
}

// IsLabel returns true if the target names a label.
func (t Target) IsLabel() bool {
	return t.isLabel
}

// Label returns the label name, or "" for an index target.
func (t Target) Label() string {
	return t.label
}

// Resolve returns the absolute instruction index of the target.
func (t Target) Resolve(prog *Program) (index int, err error) {
	if !t.IsLabel() {
		index = t.index
		return
	}

	return prog.ResolveLabel(t.label)
}

func (t Target) String() string {
	if t.IsLabel() {
		return ":" + t.label
	}
	return "#" + strconv.Itoa(t.index)
}

// Instruction is a single decoded instruction. Which fields are
// meaningful depends on Op:
//   - mov: Dest, Src
//   - inc, dec: Dest, Src (defaults to 1)
//   - cmp: Dest (the compared register), Src
//   - jumps: Target
type Instruction struct {
	Op     Op
	Dest   string
	Src    Operand
	Target Target

	LineNo int      // Source line number, 0 if unknown.
	Words  []string // Source words, if any.
}

// MakeMov creates a mov instruction.
func MakeMov(dest string, src Operand) Instruction {
	return Instruction{Op: OP_MOV, Dest: dest, Src: src}
}

// MakeInc creates an inc instruction. The amount defaults to 1.
func MakeInc(dest string, by ...Operand) Instruction {
	return makeStep(OP_INC, dest, by)
}

// MakeDec creates a dec instruction. The amount defaults to 1.
func MakeDec(dest string, by ...Operand) Instruction {
	return makeStep(OP_DEC, dest, by)
}

func makeStep(op Op, dest string, by []Operand) Instruction {
	src := Imm(1)
	if len(by) > 0 {
		src = by[0]
	}
	return Instruction{Op: op, Dest: dest, Src: src}
}

// MakeCmp creates a cmp instruction.
func MakeCmp(reg string, value Operand) Instruction {
	return Instruction{Op: OP_CMP, Dest: reg, Src: value}
}

// MakeJump creates a jmp or conditional jump instruction.
func MakeJump(op Op, target Target) Instruction {
	if !op.IsJump() {
		panic(fmt.Sprintf("%v is not a jump", op))
	}
	return Instruction{Op: op, Target: target}
}

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() string {
	var args []string
	switch {
	case ins.Op.IsJump():
		args = []string{ins.Target.String()}
	default:
		args = []string{ins.Dest, ins.Src.String()}
	}

	return ins.Op.String() + " " + strings.Join(args, ", ")
}
