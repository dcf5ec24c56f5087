package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/geomtools/walker"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format  string
	Quiet   bool
	Verbose bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the summary, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the summary, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: debug-level logging to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: debug-level logging to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: geomtools parse [flags] <file|->\n\n")
		Writef(output, "Parse a geometry description and print a structural summary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  geomtools parse detector.yaml\n")
		Writef(output, "  geomtools parse --format json detector.yaml\n")
		Writef(output, "  cat detector.yaml | geomtools parse -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Parsing successful\n")
		Writef(output, "  1    Parsing failed\n")
	}

	return fs, flags
}

// parseSummary is the structured output of the parse command.
type parseSummary struct {
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Source     string   `json:"source,omitempty" yaml:"source,omitempty"`
	World      string   `json:"world" yaml:"world"`
	Solids     int      `json:"solids" yaml:"solids"`
	Volumes    int      `json:"volumes" yaml:"volumes"`
	Placements int      `json:"placements" yaml:"placements"`
	Warnings   []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	sourcePath := fs.Arg(0)
	result, err := ParseSource(sourcePath, NewLogger(flags.Verbose))
	if err != nil {
		return fmt.Errorf("parsing geometry: %w", err)
	}

	placements, err := walker.CountPlacements(result.World)
	if err != nil {
		return err
	}

	summary := parseSummary{
		Name:       result.Name,
		Source:     FormatSourcePath(sourcePath),
		World:      result.World.Name(),
		Solids:     len(result.Solids),
		Volumes:    len(result.Volumes),
		Placements: placements,
		Warnings:   result.Warnings,
	}

	if flags.Format != FormatText {
		return OutputStructured(os.Stdout, summary, flags.Format)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "Geometry Parser\n")
		Writef(os.Stderr, "===============\n\n")
	}

	if summary.Name != "" {
		Writef(os.Stdout, "Name: %s\n", summary.Name)
	}
	Writef(os.Stdout, "Source: %s\n", summary.Source)
	Writef(os.Stdout, "World: %s\n", summary.World)
	Writef(os.Stdout, "Solids: %d\n", summary.Solids)
	Writef(os.Stdout, "Volumes: %d\n", summary.Volumes)
	Writef(os.Stdout, "Placements: %d\n", summary.Placements)

	if len(summary.Warnings) > 0 {
		Writef(os.Stdout, "\nWarnings (%d):\n", len(summary.Warnings))
		for _, warning := range summary.Warnings {
			Writef(os.Stdout, "  - %s\n", warning)
		}
	}

	if !flags.Quiet {
		Writef(os.Stderr, "\nParsing completed successfully!\n")
	}
	return nil
}
