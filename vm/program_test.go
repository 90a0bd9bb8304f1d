package vm

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	assert := assert.New(t)

	var b Builder

	b.AddLabel("start")
	assert.Equal(0, b.AddInstruction(MakeMov("ax", Imm(1))))
	assert.Equal(1, b.AddInstruction(MakeJump(OP_JMP, LabelTarget("end"))))
	b.AddLabel("middle")
	assert.Equal(2, b.AddInstruction(MakeInc("ax")))
	b.AddLabel("end")
	assert.Equal(3, b.Len())

	prog := b.Program()
	assert.Equal(3, prog.Len())

	// The builder starts over once the program is handed out.
	assert.Equal(0, b.Len())
	b.AddInstruction(MakeDec("ax"))
	b.AddLabel("start")
	assert.Equal(3, prog.Len())

	index, err := prog.ResolveLabel("start")
	assert.NoError(err)
	assert.Equal(0, index)

	assert.Equal(map[string]int{"start": 0, "middle": 2, "end": 3}, maps.Collect(prog.Labels()))

	_, err = prog.ResolveLabel("nope")
	assert.ErrorIs(err, ErrUnknownLabel)
	assert.Equal(ErrLabel("nope"), err)

	ins, ok := prog.At(1)
	assert.True(ok)
	assert.Equal(OP_JMP, ins.Op)
	_, ok = prog.At(3)
	assert.False(ok)
	_, ok = prog.At(-1)
	assert.False(ok)
}

func TestBuilderRedeclareLabel(t *testing.T) {
	assert := assert.New(t)

	var b Builder
	b.AddLabel("spot")
	b.AddInstruction(MakeInc("ax"))
	b.AddInstruction(MakeInc("ax"))
	b.AddLabel("spot")
	prog := b.Program()

	index, err := prog.ResolveLabel("spot")
	assert.NoError(err)
	assert.Equal(2, index)
}

func TestProgramEmpty(t *testing.T) {
	assert := assert.New(t)

	prog := (&Builder{}).Program()
	assert.Equal(0, prog.Len())
	assert.Equal("", prog.String())

	var none *Program
	assert.Equal(0, none.Len())
	_, ok := none.At(0)
	assert.False(ok)
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog, err := Build([]Descriptor{
		{Mnemonic: "mov", Args: []Arg{ArgReg("ax"), ArgImm(1)}, LineNo: 1, Words: []string{"mov", "ax", "1"}},
		{Mnemonic: "label", Args: []Arg{ArgLabel("top")}, LineNo: 2},
		{Mnemonic: "label", Args: []Arg{ArgLabel("also")}, LineNo: 3},
		{Mnemonic: "dec", Args: []Arg{ArgReg("ax")}, LineNo: 4, Words: []string{"dec", "ax"}},
		{Mnemonic: "label", Args: []Arg{ArgLabel("end")}, LineNo: 5},
	})
	assert.NoError(err)

	dbg := prog.Debug(0)
	assert.Equal(1, dbg.LineNo)
	assert.Equal([]string{"mov", "ax", "1"}, dbg.Words)
	assert.Empty(dbg.Labels)

	dbg = prog.Debug(1)
	assert.Equal(4, dbg.LineNo)
	assert.Equal([]string{"also", "top"}, dbg.Labels)

	// Past the end, only labels are known.
	dbg = prog.Debug(2)
	assert.Equal(0, dbg.LineNo)
	assert.Nil(dbg.Words)
	assert.Equal([]string{"end"}, dbg.Labels)
}

func TestProgram_String(t *testing.T) {
	assert := assert.New(t)

	prog, err := Build([]Descriptor{
		Desc("mov", ArgReg("ax"), ArgImm(5)),
		DescLabel("loop"),
		Desc("dec", ArgReg("ax")),
		Desc("cmp", ArgReg("ax"), ArgImm(0)),
		Desc("jne", ArgLabel("loop")),
		DescLabel("done"),
	})
	assert.NoError(err)

	expected := "" +
		"   0: mov ax, 5\n" +
		"loop:\n" +
		"   1: dec ax, 1\n" +
		"   2: cmp ax, 0\n" +
		"   3: jne :loop\n" +
		"done:\n"
	assert.Equal(expected, prog.String())

	var ips []int
	for ip, ins := range prog.Instructions() {
		ips = append(ips, ip)
		assert.NotEmpty(ins.String())
	}
	assert.Equal([]int{0, 1, 2, 3}, ips)
}
