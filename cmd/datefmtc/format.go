package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/datefmtc/datefmtc/internal/locale"
	"github.com/datefmtc/datefmtc/pkg/datefmt"
)

func runFormat(args []string) error {
	return formatCommand("format", args)
}

// runInspect is format's sibling command: it always prints the
// go-humanize relative-time annotation alongside the exact formatted text,
// the way a human checking "did this cron job actually fire recently"
// would want by default.
func runInspect(args []string) error {
	return formatCommand("inspect", append(args, "-relative"))
}

func formatCommand(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	pattern := fs.String("pattern", "yyyy-MM-dd HH:mm:ss", "pattern to format with")
	instant := fs.Int64("instant", 0, "UTC instant in milliseconds since epoch (default: now)")
	zone := fs.String("zone", "", "zone label written for z/zz/zzz ops")
	generic := fs.Bool("generic", false, "use the generic interpreter instead of the specialized path")
	relative := fs.Bool("relative", false, "also print a humanized relative-time annotation")
	localeFile := fs.String("locale-file", "", "YAML file with custom month/weekday/era/AM-PM names (default: built-in English)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cf, err := datefmt.Compile(*pattern, *generic)
	if err != nil {
		return fmt.Errorf("compile pattern: %w", err)
	}

	loc := datefmt.DefaultLocale()
	if *localeFile != "" {
		loc, err = locale.LoadFile(*localeFile)
		if err != nil {
			return err
		}
	}

	ms := *instant
	if ms == 0 {
		ms = time.Now().UnixMilli()
	}

	text := cf.FormatString(ms, loc, *zone)
	if *relative {
		fmt.Printf("%s (%s)\n", text, humanize.Time(time.UnixMilli(ms)))
		return nil
	}
	fmt.Println(text)
	return nil
}
