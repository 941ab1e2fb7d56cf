// Command pull-calendars downloads Eventor calendars and writes an HTML
// index of them.
//
// Usage:
//
//	pull-calendars [flags] <output-dir> > index.html
package main

import (
	"os"

	"github.com/custodia-labs/eventor-calendars/internal/adapters/driving/cli"
)

func main() {
	cli.SetPullerFactory(newPuller)
	if err := cli.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
