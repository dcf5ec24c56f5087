package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/geomtools/converter"
)

type convertGeometryInput struct {
	Geometry       geometryInput `json:"geometry"                  jsonschema:"The geometry description to convert"`
	CompareVolumes bool          `json:"compare_volumes,omitempty" jsonschema:"Cross-check converted capacities against their source solids"`
	Offset         int           `json:"offset,omitempty"          jsonschema:"Number of volume rows to skip"`
	Limit          int           `json:"limit,omitempty"           jsonschema:"Maximum number of volume rows to return"`
}

type convertVolumeEntry struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Capacity float64 `json:"capacity_mm3"`
}

type convertGeometryOutput struct {
	Name          string               `json:"name,omitempty"`
	World         string               `json:"world"`
	VolumeCount   int                  `json:"volume_count"`
	Placements    int                  `json:"placements"`
	CapacityCheck string               `json:"capacity_check,omitempty"`
	Volumes       []convertVolumeEntry `json:"volumes"`
}

func handleConvertGeometry(_ context.Context, _ *mcp.CallToolRequest, input convertGeometryInput) (*mcp.CallToolResult, convertGeometryOutput, error) {
	result, err := input.Geometry.resolve()
	if err != nil {
		return errResult(err), convertGeometryOutput{}, nil
	}

	compare := input.CompareVolumes || cfg.CompareVolumes
	converted, err := converter.ConvertWithOptions(result.World,
		converter.WithCompareVolumes(compare),
	)
	if err != nil {
		return errResult(err), convertGeometryOutput{}, nil
	}

	volumes := converted.Manager.LogicalVolumes()
	output := convertGeometryOutput{
		Name:        result.Name,
		World:       converted.World.Label(),
		VolumeCount: len(volumes),
		Placements:  len(converted.Manager.PlacedVolumes()),
	}
	if compare {
		output.CapacityCheck = "passed"
	}

	for _, lv := range paginate(volumes, input.Offset, input.Limit) {
		output.Volumes = append(output.Volumes, convertVolumeEntry{
			ID:       lv.ID(),
			Name:     lv.Name(),
			Capacity: lv.Unplaced().Capacity(),
		})
	}

	return nil, output, nil
}
