package main

import (
	"flag"
	"fmt"

	"github.com/datefmtc/datefmtc/internal/strftimecompat"
)

func runTranslate(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	strftimeFlag := fs.String("strftime", "", "legacy strftime format to translate (alternative to a positional argument)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format := *strftimeFlag
	if format == "" {
		if fs.NArg() < 1 {
			return fmt.Errorf("translate: expected -strftime or a positional strftime format")
		}
		format = fs.Arg(0)
	}

	pattern, err := strftimecompat.Translate(format)
	if err != nil {
		return err
	}
	fmt.Println(pattern)
	return nil
}
