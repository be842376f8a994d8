// Command datefmtc is the reference CLI for the datefmtc pattern compiler:
// compile a pattern, format or parse a value against it, inspect the
// compiled op stream, translate a legacy strftime format, generate
// standalone Go source for a pattern, or run the SQL/gRPC demo servers.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/datefmtc/datefmtc/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "format":
		err = runFormat(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	case "parse":
		err = runParse(os.Args[2:])
	case "dump-ops":
		err = runDumpOps(os.Args[2:])
	case "translate":
		err = runTranslate(os.Args[2:])
	case "codegen":
		err = runCodegen(os.Args[2:])
	case "sql-demo":
		err = runSQLDemo(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "version":
		fmt.Printf("datefmtc %s (backend=%s)\n", config.Version, config.ResolveBackend())
		return
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "datefmtc: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: datefmtc <command> [flags]

commands:
  format      render an instant with a pattern
  inspect     render an instant with a pattern, plus a relative-time annotation
  parse       parse text against a pattern
  dump-ops    print the compiled op stream for a pattern
  translate   translate a legacy strftime format into the pattern alphabet
  codegen     emit standalone Go source for a pattern
  sql-demo    run PARSE_DT/FORMAT_DT against an in-memory sqlite database
  serve       run the DateFormatService gRPC server
  version     print the module version`)
}
