// Package vm implements the register machine and assembler for regasm.
//
// The machine consists of a bank of named signed 64-bit registers, a
// comparison flag set by cmp, and an instruction pointer into a Program.
// A program halts when the instruction pointer leaves the instruction
// sequence; there is no explicit halt instruction.
//
// Programs are described either as a list of Descriptor values (see Build
// and Run), or as assembly text accepted by the Assembler, which supports
// labels, equates, macros, and compile-time expression evaluation.
package vm
