package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOp(t *testing.T) {
	assert := assert.New(t)

	for name, op := range opMap {
		assert.Equal(name, op.String())
		found, ok := LookupOp(name)
		assert.True(ok, name)
		assert.Equal(op, found)
	}
	assert.Len(opMap, int(OP_JGE)+1)

	_, ok := LookupOp("MOV")
	assert.False(ok)
	_, ok = LookupOp("label")
	assert.False(ok)

	assert.Equal("Op(42)", Op(42).String())
	assert.Equal("Op(-1)", Op(-1).String())

	assert.False(OP_MOV.IsJump())
	assert.False(OP_CMP.IsJump())
	assert.True(OP_JMP.IsJump())
	assert.True(OP_JGE.IsJump())
}

func TestOpTaken(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op                  Op
		less, equal, greater bool
	}){
		{OP_JMP, true, true, true},
		{OP_JE, false, true, false},
		{OP_JNE, true, false, true},
		{OP_JL, true, false, false},
		{OP_JLE, true, true, false},
		{OP_JG, false, false, true},
		{OP_JGE, false, true, true},
		{OP_MOV, false, false, false},
	}

	for _, entry := range table {
		assert.Equal(entry.less, entry.op.Taken(FLAG_LESS), "%v lt", entry.op)
		assert.Equal(entry.equal, entry.op.Taken(FLAG_EQUAL), "%v eq", entry.op)
		assert.Equal(entry.greater, entry.op.Taken(FLAG_GREATER), "%v gt", entry.op)
	}
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	const maxInt = int64(^uint64(0) >> 1)

	assert.Equal(FLAG_LESS, Compare(1, 2))
	assert.Equal(FLAG_EQUAL, Compare(2, 2))
	assert.Equal(FLAG_GREATER, Compare(3, 2))
	// No subtraction overflow.
	assert.Equal(FLAG_LESS, Compare(-maxInt-1, 1))
	assert.Equal(FLAG_GREATER, Compare(maxInt, -1))

	assert.Equal("lt", FLAG_LESS.String())
	assert.Equal("eq", FLAG_EQUAL.String())
	assert.Equal("gt", FLAG_GREATER.String())
	assert.Equal("Flag(7)", Flag(7).String())
}

func TestOperand(t *testing.T) {
	assert := assert.New(t)

	bank := NewBank("ax", "bx")
	assert.NoError(bank.Set("bx", 12))

	imm := Imm(-5)
	assert.False(imm.IsRegister())
	assert.Equal(int64(-5), imm.Value())
	assert.Equal("-5", imm.String())
	value, err := imm.Resolve(bank)
	assert.NoError(err)
	assert.Equal(int64(-5), value)

	reg := Reg("bx")
	assert.True(reg.IsRegister())
	assert.Equal("bx", reg.Register())
	assert.Equal("bx", reg.String())
	value, err = reg.Resolve(bank)
	assert.NoError(err)
	assert.Equal(int64(12), value)

	_, err = Reg("cx").Resolve(bank)
	assert.ErrorIs(err, ErrUnknownRegister)

	// An empty name is still a register reference, never a literal 0.
	empty := Reg("")
	assert.True(empty.IsRegister())
	assert.NotEqual(Imm(0), empty)
	_, err = empty.Resolve(bank)
	assert.ErrorIs(err, ErrUnknownRegister)
}

func TestTarget(t *testing.T) {
	assert := assert.New(t)

	var b Builder
	b.AddInstruction(MakeInc("ax"))
	b.AddLabel("here")
	prog := b.Program()

	label := LabelTarget("here")
	assert.True(label.IsLabel())
	assert.Equal("here", label.Label())
	assert.Equal(":here", label.String())
	index, err := label.Resolve(prog)
	assert.NoError(err)
	assert.Equal(1, index)

	_, err = LabelTarget("there").Resolve(prog)
	assert.ErrorIs(err, ErrUnknownLabel)

	abs := IndexTarget(-3)
	assert.False(abs.IsLabel())
	assert.Equal("#-3", abs.String())
	index, err = abs.Resolve(prog)
	assert.NoError(err)
	assert.Equal(-3, index)

	// An empty label is still a label, never index 0.
	empty := LabelTarget("")
	assert.True(empty.IsLabel())
	assert.NotEqual(IndexTarget(0), empty)
	_, err = empty.Resolve(prog)
	assert.ErrorIs(err, ErrUnknownLabel)
}

func TestInstruction(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins  Instruction
		text string
	}){
		{MakeMov("ax", Imm(5)), "mov ax, 5"},
		{MakeMov("ax", Reg("bx")), "mov ax, bx"},
		{MakeInc("ax"), "inc ax, 1"},
		{MakeInc("ax", Reg("cx")), "inc ax, cx"},
		{MakeDec("dx"), "dec dx, 1"},
		{MakeDec("dx", Imm(3)), "dec dx, 3"},
		{MakeCmp("ax", Imm(0)), "cmp ax, 0"},
		{MakeJump(OP_JMP, LabelTarget("loop")), "jmp :loop"},
		{MakeJump(OP_JGE, IndexTarget(4)), "jge #4"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.ins.String())
	}

	assert.Panics(func() { MakeJump(OP_MOV, IndexTarget(0)) })
}
