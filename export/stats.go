// SPDX-License-Identifier: MIT

package export

import (
	"github.com/katalvlaran/rgex/aggregate"
	"github.com/katalvlaran/rgex/model"
)

// CategoryStats counts the output of one category.
type CategoryStats struct {
	Category model.Category
	Groups   int // Running elements
	Terms    int // run objects
	Indexed  int // run objects expanded through the helper
	Open     int // indexed run objects whose chain keeps two free legs
}

// Stats summarizes one export.
type Stats struct {
	Categories      []CategoryStats
	Terms           int
	Indexed         int
	Open            int
	SkippedMappings int
}

// collectStats counts g per category. open holds, per category, the indexed
// terms with open legs; Run counts them while synthesizing.
func collectStats(g *aggregate.Groups, open map[model.Category]int, skipped int) Stats {
	s := Stats{SkippedMappings: skipped}
	for _, cat := range g.Categories() {
		cs := CategoryStats{Category: cat, Open: open[cat]}
		for _, grp := range g.Groups(cat) {
			cs.Groups++
			for _, e := range grp.Entries {
				cs.Terms++
				if e.Indexed() {
					cs.Indexed++
				}
			}
		}
		s.Categories = append(s.Categories, cs)
		s.Terms += cs.Terms
		s.Indexed += cs.Indexed
		s.Open += cs.Open
	}

	return s
}
