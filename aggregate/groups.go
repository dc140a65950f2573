// SPDX-License-Identifier: MIT

package aggregate

import (
	"github.com/katalvlaran/rgex/model"
	"github.com/katalvlaran/rgex/network"
	"github.com/katalvlaran/rgex/symbolic"
)

// Entry is one run object of a Running element.
type Entry struct {
	// Coupling and Symbols describe a simple entry.
	Coupling string
	Symbols  []symbolic.Symbol

	// Network is set for indexed entries.
	Network *network.Network
}

// Indexed reports whether e carries a contraction network.
func (e Entry) Indexed() bool { return e.Network != nil }

// Group is all entries sharing one coefficient key within a category.
type Group struct {
	Key     string
	Entries []Entry
}

type bucket struct {
	groups []*Group
	byKey  map[string]int
}

// Groups is the aggregation of one export.
type Groups struct {
	buckets map[model.Category]*bucket
	indexed bool
	terms   int
}

// New returns empty Groups.
func New() *Groups {
	return &Groups{buckets: map[model.Category]*bucket{}}
}

// Add appends e under (cat, key), creating the key on first sight.
func (g *Groups) Add(cat model.Category, key string, e Entry) {
	b, ok := g.buckets[cat]
	if !ok {
		b = &bucket{byKey: map[string]int{}}
		g.buckets[cat] = b
	}
	i, ok := b.byKey[key]
	if !ok {
		i = len(b.groups)
		b.byKey[key] = i
		b.groups = append(b.groups, &Group{Key: key})
	}
	b.groups[i].Entries = append(b.groups[i].Entries, e)

	if e.Indexed() {
		g.indexed = true
	}
	g.terms++
}

// Categories returns the categories holding at least one entry, in output order.
func (g *Groups) Categories() []model.Category {
	var out []model.Category
	for _, cat := range model.Categories() {
		if b, ok := g.buckets[cat]; ok && len(b.groups) > 0 {
			out = append(out, cat)
		}
	}

	return out
}

// Groups returns the groups of cat in first-seen key order.
func (g *Groups) Groups(cat model.Category) []Group {
	b, ok := g.buckets[cat]
	if !ok {
		return nil
	}
	out := make([]Group, len(b.groups))
	for i, grp := range b.groups {
		out[i] = *grp
	}

	return out
}

// HasIndexed reports whether any entry carries a network.
func (g *Groups) HasIndexed() bool { return g.indexed }

// Len returns the total number of entries.
func (g *Groups) Len() int { return g.terms }

// MatrixCouplings lists the distinct indexed factor names referenced by any
// network, ordered as they appear in order. Names missing from order are
// dropped.
func (g *Groups) MatrixCouplings(order []string) []string {
	seen := map[string]bool{}
	for _, b := range g.buckets {
		for _, grp := range b.groups {
			for _, e := range grp.Entries {
				if !e.Indexed() {
					continue
				}
				for _, f := range e.Network.Factors {
					seen[f] = true
				}
			}
		}
	}

	var out []string
	for _, name := range order {
		if seen[name] {
			out = append(out, name)
		}
	}

	return out
}
