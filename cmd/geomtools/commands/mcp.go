package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/geomtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: geomtools mcp\n\n")
		Writef(output, "Run the geomtools MCP server over stdio. The server exposes the\n")
		Writef(output, "convert_geometry and walk_volumes tools to MCP clients and blocks\n")
		Writef(output, "until the client disconnects.\n\n")
		Writef(output, "Configuration is via GEOMTOOLS_* environment variables; see the\n")
		Writef(output, "server instructions reported to the client for the full list.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
