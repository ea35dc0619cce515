package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// RunShell starts an interactive loop for exploratory parsing. Each
// line is parsed as a DRF request and its breakdown printed; "exit" or
// "quit" (or EOF) leaves the shell.
func RunShell(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(stderr)
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

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "drf> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return exitCommandError
	}
	defer rl.Close()

	fmt.Fprintln(stdout, "Enter DRF request strings; \"exit\" to leave.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil { // io.EOF
			return exitSuccess
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return exitSuccess
		case "help", "?":
			fmt.Fprintln(stdout, "Type a DRF request (e.g. M:OUTTMP[0:3]@P,1S) to parse it.")
			continue
		}

		printShowText(stdout, buildShowOutput(line, opts))
	}
}
