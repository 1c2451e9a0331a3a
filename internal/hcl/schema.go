package hcl

import "github.com/hashicorp/hcl/v2"

// Sensor represents a `sensor` block from a grid file. The label carries the
// sensor's integer ID; it stays a string here because HCL labels are always
// strings, and is parsed during translation.
type Sensor struct {
	ID        string `hcl:"id,label"`
	DependsOn []int  `hcl:"depends_on,optional"`
}

// Risk represents a `risk` block: the traversal cost of one directed link.
type Risk struct {
	From  int     `hcl:"from"`
	To    int     `hcl:"to"`
	Value float64 `hcl:"value"`
}

// Publish represents the optional `publish` block configuring where a
// finished plan is pushed.
type Publish struct {
	URL                string `hcl:"url"`
	Namespace          string `hcl:"namespace,optional"`
	Event              string `hcl:"event,optional"`
	Timeout            string `hcl:"timeout,optional"`
	InsecureSkipVerify bool   `hcl:"insecure_skip_verify,optional"`
}

// fileRoot is used to decode all possible top-level blocks from any grid
// file. Targets is kept as a raw expression so translation can report the
// exact source range of a malformed element.
type fileRoot struct {
	Sensors []*Sensor      `hcl:"sensor,block"`
	Risks   []*Risk        `hcl:"risk,block"`
	Targets hcl.Expression `hcl:"targets,optional"`
	Publish *Publish       `hcl:"publish,block"`
	Remain  hcl.Body       `hcl:",remain"`
}
