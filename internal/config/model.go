package config

// Model is the unified, format-agnostic representation of the entire grid
// configuration: every declared sensor, every weighted link between sensors,
// the list of target sensors, and optional publishing settings.
type Model struct {
	Sensors []*Sensor
	Risks   []*Risk
	Targets []int
	Publish *Publish
}

// Sensor is the format-agnostic representation of a `sensor` block.
// DependsOn lists the sensors this one is wired behind; a sensor with an
// empty DependsOn list is a root of the grid.
type Sensor struct {
	ID        int
	DependsOn []int
}

// Risk is the format-agnostic representation of a `risk` block: the cost of
// traversing the directed link From -> To. Links without a declared risk
// default to zero.
type Risk struct {
	From  int
	To    int
	Value float64
}

// Publish holds the optional settings for pushing a finished plan to a
// monitoring endpoint over socket.io.
type Publish struct {
	URL                string
	Namespace          string
	Event              string
	Timeout            string
	InsecureSkipVerify bool
}
