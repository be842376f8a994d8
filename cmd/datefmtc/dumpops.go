package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/datefmtc/datefmtc/internal/compiler"
	"github.com/datefmtc/datefmtc/internal/symtab"
)

const (
	ansiDim    = "\x1b[2m"
	ansiBold   = "\x1b[1m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

func runDumpOps(args []string) error {
	fs := flag.NewFlagSet("dump-ops", flag.ExitOnError)
	pattern := fs.String("pattern", "", "pattern to compile and disassemble (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pattern == "" {
		return fmt.Errorf("dump-ops: -pattern is required")
	}

	cf := compiler.Compile(*pattern, 0, len(*pattern))
	color := isatty.IsTerminal(os.Stdout.Fd())

	fmt.Printf("instance %s: %d op(s), %d delimiter(s), format-attrs=%#04x parse-slots=%#04x\n",
		cf.InstanceID, len(cf.Program.Ops), len(cf.Program.Delimiters), cf.Attrs, cf.Slots)
	for i, op := range cf.Program.Ops {
		if op.IsDelimiter() {
			lit := cf.Program.Delimiters[op.DelimIndex()]
			if color {
				fmt.Printf("%04d  %sDELIM%s %q\n", i, ansiDim, ansiReset, lit)
			} else {
				fmt.Printf("%04d  DELIM %q\n", i, lit)
			}
			continue
		}
		name := symtab.Name(op.Opcode())
		if color {
			label := ansiYellow
			if symtab.IsHour(op.Opcode()) {
				label = ansiBold
			}
			fmt.Printf("%04d  %sOP%s    %s\n", i, label, ansiReset, name)
		} else {
			fmt.Printf("%04d  OP    %s\n", i, name)
		}
	}
	return nil
}
