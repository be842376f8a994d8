// Package sqlbridge registers this module's compiled formats as custom
// scalar SQL functions inside an embedded modernc.org/sqlite database,
// exercising spec.md §1's "surrounding SQL/DB engine" collaborator: a caller
// can run PARSE_DT(pattern, text) and FORMAT_DT(pattern, millis) directly
// from SQL against an in-process database, no CGO and no external sqlite
// binary required.
package sqlbridge

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	sqlite "modernc.org/sqlite"

	"github.com/datefmtc/datefmtc/pkg/datefmt"
)

func init() {
	mustRegister("PARSE_DT", 2, parseDT)
	mustRegister("FORMAT_DT", 2, formatDT)
}

func mustRegister(name string, nArgs int, fn func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)) {
	if err := sqlite.RegisterScalarFunction(name, nArgs, fn); err != nil {
		panic(fmt.Sprintf("sqlbridge: register %s: %v", name, err))
	}
}

func parseDT(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	pattern, text, err := stringArgs(args)
	if err != nil {
		return nil, err
	}
	cf, err := datefmt.Compile(pattern, false)
	if err != nil {
		return nil, fmt.Errorf("PARSE_DT: %w", err)
	}
	instant, err := cf.ParseString(text, nil)
	if err != nil {
		return nil, fmt.Errorf("PARSE_DT: %w", err)
	}
	return instant, nil
}

func formatDT(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	pattern, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("FORMAT_DT: pattern must be TEXT")
	}
	millis, err := int64Arg(args[1])
	if err != nil {
		return nil, fmt.Errorf("FORMAT_DT: %w", err)
	}
	cf, err := datefmt.Compile(pattern, false)
	if err != nil {
		return nil, fmt.Errorf("FORMAT_DT: %w", err)
	}
	return cf.FormatString(millis, nil, "UTC"), nil
}

func stringArgs(args []driver.Value) (a, b string, err error) {
	sa, ok := args[0].(string)
	if !ok {
		return "", "", fmt.Errorf("argument 1 must be TEXT")
	}
	sb, ok := args[1].(string)
	if !ok {
		return "", "", fmt.Errorf("argument 2 must be TEXT")
	}
	return sa, sb, nil
}

func int64Arg(v driver.Value) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

// Open returns a *sql.DB backed by an in-memory sqlite database with
// PARSE_DT/FORMAT_DT already registered by this package's init.
func Open() (*sql.DB, error) {
	return sql.Open("sqlite", ":memory:")
}
