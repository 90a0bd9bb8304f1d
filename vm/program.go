package vm

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Program is an immutable instruction sequence and its label table.
type Program struct {
	instructions []Instruction
	labels       map[string]int
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.instructions)
}

// At returns the instruction at ip.
func (prog *Program) At(ip int) (ins Instruction, ok bool) {
	if ip < 0 || ip >= prog.Len() {
		return
	}

	return prog.instructions[ip], true
}

// Instructions iterates over the instructions and their indexes.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(int, Instruction) bool) {
		for ip := range prog.Len() {
			if !yield(ip, prog.instructions[ip]) {
				return
			}
		}
	}
}

// ResolveLabel returns the instruction index bound to a label.
func (prog *Program) ResolveLabel(name string) (index int, err error) {
	index, ok := prog.labels[name]
	if !ok {
		err = ErrLabel(name)
		return
	}

	return
}

// Labels iterates over the labels in name order.
func (prog *Program) Labels() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, name := range slices.Sorted(maps.Keys(prog.labels)) {
			if !yield(name, prog.labels[name]) {
				return
			}
		}
	}
}

// Debug is the source information for an instruction index.
type Debug struct {
	Ip     int
	LineNo int
	Words  []string
	Labels []string // Labels bound to Ip.
}

// Debug returns the source information for the instruction at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	dbg.Ip = ip

	for name, index := range prog.Labels() {
		if index == ip {
			dbg.Labels = append(dbg.Labels, name)
		}
	}

	ins, ok := prog.At(ip)
	if !ok {
		return
	}

	dbg.LineNo = ins.LineNo
	dbg.Words = ins.Words
	return
}

// String returns a listing of the program, with labels.
func (prog *Program) String() string {
	var sb strings.Builder

	for ip := 0; ip <= prog.Len(); ip++ {
		dbg := prog.Debug(ip)
		for _, label := range dbg.Labels {
			fmt.Fprintf(&sb, "%v:\n", label)
		}
		if ins, ok := prog.At(ip); ok {
			fmt.Fprintf(&sb, "%4d: %v\n", ip, ins)
		}
	}

	return sb.String()
}

// Builder constructs a Program.
//
// The zero value is ready to use. Program() hands the built program to
// the caller and resets the Builder, so a Program is never modified
// after it is returned.
type Builder struct {
	instructions []Instruction
	labels       map[string]int
}

// AddInstruction appends an instruction, and returns its index.
func (b *Builder) AddInstruction(ins Instruction) (index int) {
	index = len(b.instructions)
	b.instructions = append(b.instructions, ins)
	return
}

// AddLabel binds name to the index of the next instruction added.
// Redeclaring a label replaces the earlier binding.
func (b *Builder) AddLabel(name string) {
	if b.labels == nil {
		b.labels = make(map[string]int, 16)
	}
	b.labels[name] = len(b.instructions)
}

// Len returns the number of instructions added so far.
func (b *Builder) Len() int {
	return len(b.instructions)
}

// Program returns the built program, and resets the builder.
func (b *Builder) Program() (prog *Program) {
	prog = &Program{
		instructions: b.instructions,
		labels:       b.labels,
	}
	if prog.labels == nil {
		prog.labels = map[string]int{}
	}

	b.instructions = nil
	b.labels = nil

	return
}
