package main

import (
	"flag"
	"fmt"

	"github.com/datefmtc/datefmtc/internal/sqlbridge"
)

func runSQLDemo(args []string) error {
	fs := flag.NewFlagSet("sql-demo", flag.ExitOnError)
	pattern := fs.String("pattern", "yyyy-MM-dd", "pattern passed to PARSE_DT/FORMAT_DT")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("sql-demo: expected input text as a positional argument")
	}
	text := fs.Arg(0)

	db, err := sqlbridge.Open()
	if err != nil {
		return fmt.Errorf("sql-demo: open: %w", err)
	}
	defer db.Close()

	var instant int64
	row := db.QueryRow("SELECT PARSE_DT(?, ?)", *pattern, text)
	if err := row.Scan(&instant); err != nil {
		return fmt.Errorf("sql-demo: PARSE_DT: %w", err)
	}

	var roundTripped string
	row = db.QueryRow("SELECT FORMAT_DT(?, ?)", *pattern, instant)
	if err := row.Scan(&roundTripped); err != nil {
		return fmt.Errorf("sql-demo: FORMAT_DT: %w", err)
	}

	fmt.Printf("PARSE_DT(%q, %q) = %d\n", *pattern, text, instant)
	fmt.Printf("FORMAT_DT(%q, %d) = %q\n", *pattern, instant, roundTripped)
	return nil
}
