package converters

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bellman/bellmanford"
)

// FormatPath renders one line per hop: "u -> v cost: d", where d is the
// cumulative distance at v. An empty path renders as no lines.
func FormatPath(p bellmanford.Path, l *Labels) []string {
	lines := make([]string, 0, len(p))
	for _, h := range p {
		lines = append(lines, fmt.Sprintf("%s -> %s cost: %d", l.Name(h.From), l.Name(h.To), h.Distance))
	}

	return lines
}

// FormatCycle renders a closed cycle as "a -> b -> a".
func FormatCycle(cycle []int, l *Labels) string {
	parts := make([]string, len(cycle))
	for i, v := range cycle {
		parts[i] = l.Name(v)
	}

	return strings.Join(parts, " -> ")
}
