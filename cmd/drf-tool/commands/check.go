package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/fermi-controls/drf-go/pkg/drf"
)

// RunCheck validates DRF request strings. Inputs come from positional
// arguments and/or a list file. The exit code distinguishes usage
// errors from validation failures.
func RunCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "", "read request strings from `file`, one per line")
	quiet := fs.Bool("q", false, "suppress per-request output")
	verbose := fs.Bool("v", false, "verbose diagnostics")
	configPath := fs.String("config", "", "path to YAML config `file`")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	logger := newLogger(stderr, *verbose)
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
			if !*quiet {
				fmt.Fprintf(stdout, "FAIL %s: %v\n", input, err)
			}
			continue
		}
		logger.Debug("parsed request",
			"input", input,
			"canonical", req.Canonical())
		if !*quiet {
			fmt.Fprintf(stdout, "OK   %s\n", input)
		}
	}

	if failures > 0 {
		if !*quiet {
			fmt.Fprintf(stdout, "%d of %d requests invalid\n", failures, len(inputs))
		}
		return exitValidation
	}
	return exitSuccess
}
