package main

import (
	"flag"
	"fmt"

	"github.com/datefmtc/datefmtc/pkg/datefmt"
)

func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	pattern := fs.String("pattern", "yyyy-MM-dd HH:mm:ss", "pattern to parse against")
	generic := fs.Bool("generic", false, "use the generic interpreter instead of the specialized path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("parse: expected input text as a positional argument")
	}
	text := fs.Arg(0)

	cf, err := datefmt.Compile(*pattern, *generic)
	if err != nil {
		return fmt.Errorf("compile pattern: %w", err)
	}
	instant, err := cf.ParseString(text, datefmt.DefaultLocale())
	if err != nil {
		return fmt.Errorf("parse %q: %w", text, err)
	}
	fmt.Println(instant)
	return nil
}
