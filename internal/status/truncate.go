package status

import (
	"github.com/rivo/uniseg"
)

// Truncate shortens s so it renders in at most width terminal cells,
// appending an ellipsis when anything was cut. Grapheme clusters are
// never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	const ellipsis = "…"
	budget := width - uniseg.StringWidth(ellipsis)

	var out []byte
	used := 0
	state := -1
	rest := []byte(s)
	for len(rest) > 0 {
		var cluster []byte
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeCluster(rest, state)
		if used+w > budget {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + ellipsis
}
