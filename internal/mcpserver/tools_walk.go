package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/geomtools/walker"
)

type walkVolumesInput struct {
	Geometry geometryInput `json:"geometry"            jsonschema:"The geometry description to walk"`
	MaxDepth int           `json:"max_depth,omitempty" jsonschema:"Truncate the walk below this depth (0 = unlimited)"`
	Offset   int           `json:"offset,omitempty"    jsonschema:"Number of entries to skip"`
	Limit    int           `json:"limit,omitempty"     jsonschema:"Maximum number of entries to return"`
}

type walkVolumeEntry struct {
	Path   string `json:"path"`
	Volume string `json:"volume"`
	Depth  int    `json:"depth"`
	CopyNo int    `json:"copy_no"`
}

type walkVolumesOutput struct {
	World      string            `json:"world"`
	TotalCount int               `json:"total_count"`
	Distinct   int               `json:"distinct_volumes"`
	Entries    []walkVolumeEntry `json:"entries"`
}

func handleWalkVolumes(_ context.Context, _ *mcp.CallToolRequest, input walkVolumesInput) (*mcp.CallToolResult, walkVolumesOutput, error) {
	result, err := input.Geometry.resolve()
	if err != nil {
		return errResult(err), walkVolumesOutput{}, nil
	}

	var entries []walkVolumeEntry
	err = walker.Walk(result.World, func(v walker.Visit) error {
		entries = append(entries, walkVolumeEntry{
			Path:   strings.Join(v.Path, "/"),
			Volume: v.Volume.Name(),
			Depth:  v.Depth,
			CopyNo: v.Placement.CopyNo(),
		})
		if input.MaxDepth > 0 && v.Depth >= input.MaxDepth {
			return walker.SkipDaughters
		}
		return nil
	})
	if err != nil {
		return errResult(err), walkVolumesOutput{}, nil
	}

	distinct, err := walker.CountDistinct(result.World)
	if err != nil {
		return errResult(err), walkVolumesOutput{}, nil
	}

	output := walkVolumesOutput{
		World:      result.World.Name(),
		TotalCount: len(entries),
		Distinct:   distinct,
		Entries:    paginate(entries, input.Offset, input.Limit),
	}
	return nil, output, nil
}
