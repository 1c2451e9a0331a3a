package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/riskgridgo/internal/config"
	"github.com/vk/riskgridgo/internal/ctxlog"
	"github.com/vk/riskgridgo/internal/fsutil"
)

// gridFileExtension is the suffix grid files must carry to be discovered
// inside a directory.
const gridFileExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL loading process. It is agnostic to the
// origin of the paths and merges any valid block from any discovered file
// into a single format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var gridFiles []string
	for _, path := range paths {
		files, err := fsutil.FindGridFiles(path, gridFileExtension)
		if err != nil {
			return nil, err
		}
		gridFiles = append(gridFiles, files...)
	}
	logger.Debug("Discovered grid files.", "count", len(gridFiles))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range gridFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse grid file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode grid file %s: %w", file, diags)
		}

		// Translate and merge all discovered blocks into the model.
		for _, s := range root.Sensors {
			sensor, err := translateSensor(s)
			if err != nil {
				return nil, fmt.Errorf("in grid file %s: %w", file, err)
			}
			model.Sensors = append(model.Sensors, sensor)
		}
		for _, r := range root.Risks {
			model.Risks = append(model.Risks, translateRisk(r))
		}
		if root.Targets != nil {
			targets, err := translateTargets(root.Targets)
			if err != nil {
				return nil, fmt.Errorf("in grid file %s: %w", file, err)
			}
			model.Targets = append(model.Targets, targets...)
		}
		if root.Publish != nil {
			if model.Publish != nil {
				return nil, fmt.Errorf("duplicate publish block in grid file %s: only one is allowed per grid", file)
			}
			model.Publish = translatePublish(root.Publish)
		}
	}

	logger.Debug("Grid configuration loaded and translated into unified model.",
		"sensor_count", len(model.Sensors),
		"risk_count", len(model.Risks),
		"target_count", len(model.Targets),
	)
	return model, nil
}
