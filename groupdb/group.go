// SPDX-License-Identifier: MIT

package groupdb

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/rgex/coeff"
)

// Reality classifies a representation by its Frobenius-Schur indicator.
type Reality int

// Reality values, numbered as the indicator that selects them.
const (
	PseudoReal Reality = -1
	Real       Reality = 0
	Complex    Reality = 1
)

// RealityOf maps an indicator to its Reality.
func RealityOf(frobenius int) (Reality, error) {
	switch frobenius {
	case 1, 0, -1:
		return Reality(frobenius), nil
	}

	return 0, fmt.Errorf("%w: %d", ErrBadFrobenius, frobenius)
}

func (r Reality) String() string {
	switch r {
	case Complex:
		return "complex"
	case Real:
		return "real"
	case PseudoReal:
		return "pseudo-real"
	}

	return fmt.Sprintf("Reality(%d)", int(r))
}

// RepInfo is the cached description of one representation.
type RepInfo struct {
	Labels      Labels
	Dim         int
	Reality     Reality
	DynkinIndex coeff.Coefficient
	Name        string
}

// Group is a gauge-group factor of a model.
type Group struct {
	Name    string
	Type    string
	Abelian bool
	Dim     int
	Rank    int
	Label   string // the database's own name, e.g. "SU(3)"
	Latex   string

	db   DB
	reps map[string]RepInfo
	seen []Labels
}

// NewGroup reads the group record of typ from db. U1 is resolved without the DB.
func NewGroup(name, typ string, db DB) (*Group, error) {
	g := &Group{Name: name, Type: strings.ToUpper(typ), db: db, reps: map[string]RepInfo{}}
	if g.Type == "U1" {
		g.Abelian, g.Dim, g.Latex = true, 1, "U(1)"
		return g, nil
	}

	err := withDB(db, func() error {
		data, err := db.Group(g.Type)
		if err != nil {
			return err
		}
		g.Dim, g.Rank, g.Label = data.Dim, data.Rank, data.Name
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("groupdb: NewGroup(%s, %s): %w", name, typ, err)
	}
	g.Latex = latexName(g.Type)

	return g, nil
}

// latexName renders "SU3" as "SU(3)" and exceptional groups as "E_{6}".
func latexName(typ string) string {
	i := strings.IndexFunc(typ, unicode.IsDigit)
	if i < 0 {
		return typ
	}
	base, n := typ[:i], typ[i:]
	switch base {
	case "E", "F", "G":
		return base + "_{" + n + "}"
	}

	return base + "(" + n + ")"
}

// Rep returns the description of a representation, reading the DB once.
func (g *Group) Rep(labels Labels) (RepInfo, error) {
	if g.Abelian {
		return RepInfo{}, ErrAbelian
	}
	if info, ok := g.reps[labels.String()]; ok {
		return info, nil
	}

	var info RepInfo
	err := withDB(g.db, func() error {
		var err error
		info, err = g.computeRep(labels)
		return err
	})

	return info, err
}

// DimR returns the dimension of a representation.
func (g *Group) DimR(labels Labels) (int, error) {
	info, err := g.Rep(labels)

	return info.Dim, err
}

// MoreInfo caches the representations spanning the n smallest dimensions.
// The DB is closed before MoreInfo returns, whatever happens in between.
func (g *Group) MoreInfo(n int) error {
	if g.Abelian {
		return nil
	}

	return withDB(g.db, func() error {
		reps, err := g.db.FirstReps(g.Type, n)
		if err != nil {
			return err
		}
		for _, r := range reps {
			if _, err = g.computeRep(r); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reps returns the cached representations in the order they were read.
func (g *Group) Reps() []RepInfo {
	out := make([]RepInfo, 0, len(g.seen))
	for _, l := range g.seen {
		out = append(out, g.reps[l.String()])
	}

	return out
}

// computeRep reads one representation; the DB must be open.
func (g *Group) computeRep(labels Labels) (RepInfo, error) {
	key := labels.String()
	if info, ok := g.reps[key]; ok {
		return info, nil
	}

	data, err := g.db.Rep(g.Type, labels)
	if err != nil {
		return RepInfo{}, err
	}
	reality, err := RealityOf(data.Frobenius)
	if err != nil {
		return RepInfo{}, fmt.Errorf("groupdb: %s(%s): %w", g.Type, key, err)
	}

	info := RepInfo{
		Labels:      append(Labels(nil), labels...),
		Dim:         data.Dim,
		Reality:     reality,
		DynkinIndex: data.DynkinIndex,
		Name:        data.Name,
	}
	g.reps[key] = info
	g.seen = append(g.seen, info.Labels)

	return info, nil
}
