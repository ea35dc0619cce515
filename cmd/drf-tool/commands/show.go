package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fermi-controls/drf-go/pkg/drf"
)

// ShowOutput is the displayable breakdown of one parsed request.
type ShowOutput struct {
	Input     string `json:"input" yaml:"input"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Device    string `json:"device,omitempty" yaml:"device,omitempty"`
	Property  string `json:"property,omitempty" yaml:"property,omitempty"`
	Field     string `json:"field,omitempty" yaml:"field,omitempty"`
	Range     string `json:"range,omitempty" yaml:"range,omitempty"`
	Event     string `json:"event,omitempty" yaml:"event,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func buildShowOutput(input string, opts drf.ParseOptions) ShowOutput {
	out := ShowOutput{Input: input}

	req, err := drf.ParseRequestWith(input, opts)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Canonical = req.Canonical()
	out.Device = req.Device.String()
	out.Property = req.Property.Kind.String()
	out.Field = req.Property.Field.String()
	out.Range = req.Range.Canonical()
	out.Event = req.Event.Canonical()
	return out
}

// RunShow displays the structured breakdown of each request string in
// text, JSON, or YAML form.
func RunShow(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "", "output format: text, json, or yaml")
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

	outFormat := *format
	if outFormat == "" {
		outFormat = cfg.Format
	}
	if outFormat == "" {
		outFormat = "text"
	}

	inputs, err := readInputs(*file, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if len(inputs) == 0 {
		fmt.Fprintln(stderr, "Error: no request strings given")
		return exitCommandError
	}

	outputs := make([]ShowOutput, 0, len(inputs))
	failures := 0
	for _, input := range inputs {
		out := buildShowOutput(input, opts)
		if out.Error != "" {
			failures++
		}
		outputs = append(outputs, out)
	}

	switch outFormat {
	case "json":
		data, _ := json.MarshalIndent(outputs, "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(outputs)
		fmt.Fprint(stdout, string(data))
	case "text":
		for _, out := range outputs {
			printShowText(stdout, out)
		}
	default:
		fmt.Fprintf(stderr, "Error: unknown format: %s (supported: text, json, yaml)\n", outFormat)
		return exitCommandError
	}

	if failures > 0 {
		return exitValidation
	}
	return exitSuccess
}

func printShowText(w io.Writer, out ShowOutput) {
	fmt.Fprintf(w, "%s\n", out.Input)
	if out.Error != "" {
		fmt.Fprintf(w, "  error:     %s\n", out.Error)
		return
	}
	fmt.Fprintf(w, "  canonical: %s\n", out.Canonical)
	fmt.Fprintf(w, "  device:    %s\n", out.Device)
	if out.Field != "" {
		fmt.Fprintf(w, "  property:  %s.%s\n", out.Property, out.Field)
	} else {
		fmt.Fprintf(w, "  property:  %s\n", out.Property)
	}
	if out.Range != "" {
		fmt.Fprintf(w, "  range:     %s\n", out.Range)
	}
	if out.Event != "" {
		fmt.Fprintf(w, "  event:     %s\n", out.Event)
	}
}
