package main

import (
	"flag"

	"github.com/datefmtc/datefmtc/internal/rpc"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":9090", "listen address for the DateFormatService gRPC server")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return rpc.Serve(*addr)
}
