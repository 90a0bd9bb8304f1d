// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/regasm/emulator"
	"github.com/ezrec/regasm/internal/config"
	"github.com/ezrec/regasm/vm"
)

func main() {
	var configFile string
	var registers string
	var limit int
	var verbose bool
	var output string
	var listing bool

	flag.StringVar(&configFile, "c", "", "config file (default: ./"+config.ConfigFileName+" if present)")
	flag.StringVar(&registers, "r", "", "Comma separated register names")
	flag.IntVar(&limit, "l", 0, "Step limit, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&output, "o", "", "Output format (table|plain)")
	flag.BoolVar(&listing, "s", false, "Print the program listing, do not execute")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one program file, got %v", os.Args[0], flag.Args())
	}
	source := flag.Arg(0)

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("%v: %v", configFile, err)
	}

	// Explicit flags override the configuration.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "r":
			cfg.Registers = config.SplitRegisters(registers)
		case "l":
			cfg.StepLimit = limit
		case "v":
			cfg.Verbose = verbose
		case "o":
			cfg.Output = output
		}
	})

	err = cfg.Validate()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	var inf io.Reader = os.Stdin
	if source != "-" {
		file, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		defer file.Close()
		inf = file
	}

	emu := emulator.NewEmulator(cfg.Registers...)
	emu.Verbose = cfg.Verbose
	emu.Machine.StepLimit = cfg.StepLimit

	asm := &vm.Assembler{Verbose: cfg.Verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if listing {
		fmt.Print(prog.String())
		return
	}

	emu.Program = prog
	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	snap, err := emu.Run()
	if err != nil {
		log.Printf("%v", emu.Machine.String())
		log.Fatalf("%v: %v", source, err)
	}

	printSnapshot(os.Stdout, snap, cfg.Output)
}

// printSnapshot writes the final registers.
func printSnapshot(w io.Writer, snap vm.Snapshot, format string) {
	if format == "plain" {
		for name, value := range snap.All() {
			fmt.Fprintf(w, "%v=%v\n", name, value)
		}
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"register", "value"})
	for name, value := range snap.All() {
		t.AppendRow(table.Row{name, value})
	}
	t.Render()
}
