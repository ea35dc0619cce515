// Package commands implements the drf-tool subcommands. Each Run*
// function takes its argument list plus output writers and returns a
// process exit code, which keeps the commands testable without a
// process boundary.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fermi-controls/drf-go/pkg/drf"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// Config holds drf-tool settings loaded from a YAML file.
type Config struct {
	// Format is the default output format for show and export.
	Format string `yaml:"format"`

	// PeriodicImmediate selects the defaulting convention for the
	// periodic-event immediate flag. Unset means the current grammar
	// revision (true).
	PeriodicImmediate *bool `yaml:"periodic_immediate"`
}

// LoadConfig reads a YAML config file. An empty path yields the zero
// config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ParseOptions returns the grammar options the config selects.
func (c Config) ParseOptions() drf.ParseOptions {
	opts := drf.DefaultOptions()
	if c.PeriodicImmediate != nil {
		opts.PeriodicImmediate = *c.PeriodicImmediate
	}
	return opts
}

// newLogger builds the diagnostic logger. Non-verbose runs log warnings
// and above only.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// readInputs collects request strings from a list file (one per line,
// blank lines and '#' comments skipped) and appends any positional
// arguments.
func readInputs(path string, args []string) ([]string, error) {
	var inputs []string

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
	}

	inputs = append(inputs, args...)
	return inputs, nil
}
