// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/riskgridgo/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateSensor converts a `sensor` block into the agnostic model, parsing
// the block label into the integer sensor ID.
func translateSensor(s *Sensor) (*config.Sensor, error) {
	id, err := strconv.Atoi(s.ID)
	if err != nil {
		return nil, fmt.Errorf("sensor label %q is not an integer ID", s.ID)
	}
	return &config.Sensor{
		ID:        id,
		DependsOn: s.DependsOn,
	}, nil
}

// translateRisk converts a `risk` block into the agnostic model.
func translateRisk(r *Risk) *config.Risk {
	return &config.Risk{
		From:  r.From,
		To:    r.To,
		Value: r.Value,
	}
}

// translateTargets evaluates the `targets` expression into a list of sensor
// IDs. The expression must evaluate to a list or tuple of numbers.
func translateTargets(expr hcl.Expression) ([]int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid targets expression: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("targets must be a list of sensor IDs (at %s)", expr.Range())
	}

	var targets []int
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		if elem.Type() != cty.Number {
			return nil, fmt.Errorf("targets elements must be numbers, got %s (at %s)", elem.Type().FriendlyName(), expr.Range())
		}
		var id int
		if err := gocty.FromCtyValue(elem, &id); err != nil {
			return nil, fmt.Errorf("targets element is not a whole number (at %s): %w", expr.Range(), err)
		}
		targets = append(targets, id)
	}
	return targets, nil
}

// translatePublish converts the `publish` block into the agnostic model,
// filling in defaults for the optional attributes.
func translatePublish(p *Publish) *config.Publish {
	out := &config.Publish{
		URL:                p.URL,
		Namespace:          p.Namespace,
		Event:              p.Event,
		Timeout:            p.Timeout,
		InsecureSkipVerify: p.InsecureSkipVerify,
	}
	if out.Event == "" {
		out.Event = "plan"
	}
	if out.Timeout == "" {
		out.Timeout = "10s"
	}
	return out
}
