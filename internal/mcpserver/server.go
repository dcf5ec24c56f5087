// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes geomtools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	geomtools "github.com/erraggy/geomtools"
)

const serverInstructions = `geomtools MCP server — converts and explores detector geometry descriptions.

Configuration: All defaults are configurable via GEOMTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- GEOMTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for geometry files
- GEOMTOOLS_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline geometries
- GEOMTOOLS_CACHE_ENABLED (default: true) — disable geometry caching entirely
- GEOMTOOLS_MAX_INLINE_SIZE (default: 1048576) — inline content size limit in bytes
- GEOMTOOLS_WALK_LIMIT (default: 200) — default result limit for walk_volumes
- GEOMTOOLS_MAX_LIMIT (default: 1000) — hard cap on any result limit
- GEOMTOOLS_COMPARE_VOLUMES (default: false) — run the capacity cross-check by default

Caching: Parsed geometries are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		geometryCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "geomtools", Version: geomtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_geometry",
		Description: "Convert a geometry description into its tracking representation. Returns the destination volume table (dense IDs, names, capacities in mm3) plus world and placement counts. Set compare_volumes=true to cross-check each converted capacity against its source solid and flag lossy conversions. Use offset/limit to paginate the volume table. The comparison default is configurable via the GEOMTOOLS_COMPARE_VOLUMES env var.",
	}, handleConvertGeometry)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_volumes",
		Description: "Walk the placement hierarchy of a geometry description in pre-order. Returns one entry per placement (path, volume name, depth, copy number); a volume placed N times appears N times. Use max_depth to truncate deep trees and offset/limit to paginate. The default limit is configurable via the GEOMTOOLS_WALK_LIMIT env var.",
	}, handleWalkVolumes)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.WalkLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.WalkLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
