package commands

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fermi-controls/drf-go/pkg/record"
)

// RunExport parses request strings and writes their records in jsonl,
// csv, or cbor form. The cbor format produces a record stream file that
// the record package can read back and filter.
func RunExport(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "", "read request strings from `file`, one per line")
	format := fs.String("format", "jsonl", "output format: jsonl, csv, or cbor")
	output := fs.String("o", "", "write to `file` instead of stdout (required for cbor)")
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

	records := make([]record.Record, 0, len(inputs))
	for _, input := range inputs {
		records = append(records, record.New(input, opts))
	}

	switch *format {
	case "cbor":
		if *output == "" {
			fmt.Fprintln(stderr, "Error: cbor format requires -o")
			return exitCommandError
		}
		if err := exportCBOR(records, *output); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		return exitSuccess

	case "jsonl", "csv":
		w := io.Writer(stdout)
		if *output != "" {
			f, err := os.Create(*output)
			if err != nil {
				fmt.Fprintf(stderr, "Error: failed to create output file: %v\n", err)
				return exitCommandError
			}
			defer f.Close()
			w = f
		}
		if *format == "jsonl" {
			err = exportJSONL(records, w)
		} else {
			err = exportCSV(records, w)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		return exitSuccess

	default:
		fmt.Fprintf(stderr, "Error: unknown format: %s (supported: jsonl, csv, cbor)\n", *format)
		return exitCommandError
	}
}

func exportJSONL(records []record.Record, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for _, rec := range records {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

func exportCSV(records []record.Record, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"id", "time", "input", "canonical", "device", "property", "field", "range", "event", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Time.UTC().Format("2006-01-02T15:04:05.000000Z"),
			rec.Input,
			rec.Canonical,
			rec.Device,
			rec.Property,
			rec.Field,
			rec.Range,
			rec.Event,
			rec.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func exportCBOR(records []record.Record, path string) error {
	w, err := record.NewWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create record stream: %w", err)
	}
	defer w.Close()

	for _, rec := range records {
		if err := w.Append(rec); err != nil {
			return fmt.Errorf("failed to append record: %w", err)
		}
	}
	return nil
}
