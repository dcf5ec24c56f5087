package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/geomtools/walker"
)

// TreeFlags contains flags for the tree command
type TreeFlags struct {
	MaxDepth int
	Quiet    bool
	Verbose  bool
}

// SetupTreeFlags creates and configures a FlagSet for the tree command.
// Returns the FlagSet and a TreeFlags struct with bound flag variables.
func SetupTreeFlags() (*flag.FlagSet, *TreeFlags) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	flags := &TreeFlags{}

	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "limit the printed depth (0 = unlimited)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the tree, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the tree, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: debug-level logging to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: debug-level logging to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: geomtools tree [flags] <file|->\n\n")
		Writef(output, "Print the placement hierarchy of a geometry description.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  geomtools tree detector.yaml\n")
		Writef(output, "  geomtools tree --max-depth 2 detector.yaml\n")
		Writef(output, "  cat detector.yaml | geomtools tree -q -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - A volume placed N times appears N times, once per path\n")
		Writef(output, "  - The summary counts distinct volumes separately from placements\n")
	}

	return fs, flags
}

// HandleTree executes the tree command
func HandleTree(args []string) error {
	fs, flags := SetupTreeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("tree command requires exactly one file path or '-' for stdin")
	}

	if flags.MaxDepth < 0 {
		return fmt.Errorf("max-depth must not be negative (got %d)", flags.MaxDepth)
	}

	sourcePath := fs.Arg(0)
	result, err := ParseSource(sourcePath, NewLogger(flags.Verbose))
	if err != nil {
		return fmt.Errorf("parsing geometry: %w", err)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "Geometry Tree\n")
		Writef(os.Stderr, "=============\n\n")
		Writef(os.Stderr, "Source: %s\n\n", FormatSourcePath(sourcePath))
	}

	err = walker.Walk(result.World, func(v walker.Visit) error {
		indent := strings.Repeat("  ", v.Depth)
		if v.Depth == 0 {
			Writef(os.Stdout, "%s [%s]\n", v.Placement.Name(), v.Volume.Name())
		} else {
			Writef(os.Stdout, "%s%s [%s] copy=%d\n", indent, v.Placement.Name(), v.Volume.Name(), v.Placement.CopyNo())
		}
		if flags.MaxDepth > 0 && v.Depth >= flags.MaxDepth {
			return walker.SkipDaughters
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !flags.Quiet {
		distinct, err := walker.CountDistinct(result.World)
		if err != nil {
			return err
		}
		placements, err := walker.CountPlacements(result.World)
		if err != nil {
			return err
		}
		Writef(os.Stderr, "\nDistinct volumes: %d\n", distinct)
		Writef(os.Stderr, "Placements: %d\n", placements)
	}
	return nil
}
