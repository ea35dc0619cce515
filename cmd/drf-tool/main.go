// drf-tool is a CLI for parsing, validating, and exporting DRF device
// request strings.
package main

import (
	"fmt"
	"os"

	"github.com/fermi-controls/drf-go/cmd/drf-tool/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "check":
		exitCode = commands.RunCheck(args, os.Stdout, os.Stderr)
	case "canon":
		exitCode = commands.RunCanon(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "export":
		exitCode = commands.RunExport(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = commands.RunShell(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("drf-tool version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`drf-tool - DRF device request parsing and validation tool

Usage:
  drf-tool <command> [options] [requests...]

Commands:
  check      Validate request strings and report failures
  canon      Print the canonical form of each request string
  show       Display the structured breakdown of request strings
  export     Write parse records as jsonl, csv, or cbor
  shell      Interactive parsing shell

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  drf-tool check 'M:OUTTMP[0:3]@P,1S'
  drf-tool canon -f requests.txt
  drf-tool show -format json 'B_VIMIN@I'
  drf-tool export -format cbor -o records.cbor -f requests.txt

For command-specific help, run:
  drf-tool <command> --help`)
}
