package main

import (
	"fmt"
	"os"

	geomtools "github.com/erraggy/geomtools"
	"github.com/erraggy/geomtools/cmd/geomtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("geomtools v%s\n", geomtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "tree":
		if err := commands.HandleTree(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`geomtools - Detector Geometry Tools

Usage:
  geomtools <command> [options]

Commands:
  parse       Parse a geometry description and print a summary
  convert     Convert a geometry description and print the volume table
  tree        Print the placement hierarchy of a geometry description
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  geomtools parse detector.yaml
  geomtools convert --compare detector.yaml
  geomtools convert --format json detector.yaml
  geomtools tree --max-depth 3 detector.yaml
  cat detector.yaml | geomtools parse -q -

Run 'geomtools <command> --help' for more information on a command.`)
}
