package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/fermi-controls/drf-go/pkg/drf"
)

// RunCanon prints the canonical form of each request string, one per
// line, in input order.
func RunCanon(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("canon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "", "read request strings from `file`, one per line")
	configPath := fs.String("config", "", "path to YAML config `file`")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	opts := cfg.ParseOptions()

	inputs, err := readInputs(*file, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if len(inputs) == 0 {
		fmt.Fprintln(stderr, "Error: no request strings given")
		return exitCommandError
	}

	failures := 0
	for _, input := range inputs {
		req, err := drf.ParseRequestWith(input, opts)
		if err != nil {
			failures++
			fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
			continue
		}
		fmt.Fprintln(stdout, req.Canonical())
	}

	if failures > 0 {
		return exitValidation
	}
	return exitSuccess
}
