package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/datefmtc/datefmtc/internal/codegen"
)

func runCodegen(args []string) error {
	fs := flag.NewFlagSet("codegen", flag.ExitOnError)
	pattern := fs.String("pattern", "", "pattern to generate standalone Go source for (required)")
	pkgName := fs.String("package", "main", "package name for the generated file")
	name := fs.String("name", "Pattern", "identifier suffix for the generated Format*/Parse* functions")
	out := fs.String("out", "", "output file path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pattern == "" {
		return fmt.Errorf("codegen: -pattern is required")
	}

	src, err := codegen.Generate(*pkgName, *name, *pattern)
	if err != nil {
		return fmt.Errorf("codegen: %w", err)
	}
	if *out == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(*out, src, 0o644)
}
