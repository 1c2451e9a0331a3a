// Package report renders a finished plan as plain text for the hosting
// program's output writer.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/riskgridgo/internal/planner"
)

// Write prints one line per resolved route, in resolution order, followed by
// a summary line counting how many of the requested targets were planned.
func Write(w io.Writer, routes []planner.Route, targets []int) error {
	for _, r := range routes {
		hops := make([]string, len(r.Path))
		for i, id := range r.Path {
			hops[i] = strconv.Itoa(id)
		}
		_, err := fmt.Fprintf(w, "route to %d: %s (risk %s)\n",
			r.Target,
			strings.Join(hops, " -> "),
			formatRisk(r.Risk),
		)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "planned %d of %d targets\n", len(routes), uniqueCount(targets))
	return err
}

// formatRisk renders a risk value as a plain decimal, never scientific
// notation, trimmed so integral risks print as integers.
func formatRisk(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func uniqueCount(targets []int) int {
	seen := make(map[int]bool, len(targets))
	for _, t := range targets {
		seen[t] = true
	}
	return len(seen)
}
