// SPDX-License-Identifier: MIT

package serialize

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rgex/aggregate"
	"github.com/katalvlaran/rgex/model"
)

// ErrNilGroups indicates a nil aggregation.
var ErrNilGroups = errors.New("serialize: groups is nil")

// DefaultBanner is the first line of every generated module.
const DefaultBanner = "### UFO 'running.py' automatically generated by rgex ###"

const imports = `import cmath
import parameters as P
from object_library import all_running_elements, Running
from function_library import complexconjugate as cc
`

const helperHeader = `
############################################################
#     The next few lines help keep the notation compact    #
#  when products or traces of Yukawa matrices are involved #
############################################################

from itertools import product

`

const helperFunc = `
def generateYukTerm(couplings, indices, ranges, conj=()):
    def conjugate(couplingPos):
        if couplingPos in conj:
            return lambda x: cc(x)
        return lambda x: x

    indsProduct = product(*[range(r) for r in ranges])
    return [couplings[0] + [conjugate(cPos)(c(pInd[i[0]], pInd[i[1]])) for cPos, (c, i) in enumerate(zip(couplings[1], indices))] + couplings[2] for pInd in indsProduct]
`

// Option configures Write.
type Option func(*settings)

type settings struct {
	subs   model.Substitutions
	order  []string
	banner string
}

// WithSubstitutions applies parameter renames and matrix element tables.
func WithSubstitutions(s model.Substitutions) Option {
	return func(o *settings) { o.subs = s }
}

// WithCouplingOrder sets the order in which matrix accessors are emitted,
// normally the model's coupling declaration order. Without it accessors
// follow first reference.
func WithCouplingOrder(names []string) Option {
	return func(o *settings) { o.order = append([]string(nil), names...) }
}

// WithBanner replaces DefaultBanner.
func WithBanner(b string) Option {
	return func(o *settings) { o.banner = b }
}

// Write renders g to w.
func Write(w io.Writer, g *aggregate.Groups, opts ...Option) error {
	if g == nil {
		return ErrNilGroups
	}
	s := settings{banner: DefaultBanner}
	for _, opt := range opts {
		opt(&s)
	}

	var sb strings.Builder
	sb.WriteString(s.banner + "\n\n")
	sb.WriteString(imports)
	if g.HasIndexed() {
		writeHelpers(&sb, g, s)
	}
	for _, cat := range g.Categories() {
		writeCategory(&sb, cat, g.Groups(cat), s)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return nil
}

func writeHelpers(sb *strings.Builder, g *aggregate.Groups, s settings) {
	order := s.order
	if order == nil {
		order = referenceOrder(g)
	}

	sb.WriteString(helperHeader)
	for _, name := range g.MatrixCouplings(order) {
		sb.WriteString(accessor(s.subs, name) + "\n")
	}
	sb.WriteString(helperFunc)
}

// referenceOrder lists indexed factor names by first reference.
func referenceOrder(g *aggregate.Groups) []string {
	var out []string
	seen := map[string]bool{}
	for _, cat := range g.Categories() {
		for _, grp := range g.Groups(cat) {
			for _, e := range grp.Entries {
				if !e.Indexed() {
					continue
				}
				for _, f := range e.Network.Factors {
					if !seen[f] {
						seen[f] = true
						out = append(out, f)
					}
				}
			}
		}
	}

	return out
}

func writeCategory(sb *strings.Builder, cat model.Category, groups []aggregate.Group, s settings) {
	title := cat.Title()
	frame := strings.Repeat("#", len(title)+4)
	sb.WriteString("\n\n" + frame + "\n# " + title + " #\n" + frame + "\n")

	for i, grp := range groups {
		name := fmt.Sprintf("R%s%d", cat.Tag(), i+1)
		pad1 := strings.Repeat(" ", len(name)+11)
		pad2 := strings.Repeat(" ", len(name)+11+16)

		sb.WriteString("\n" + name + " = Running(name        = '" + name + "',\n")
		sb.WriteString(pad1 + "run_objects = [\n")
		for j, e := range grp.Entries {
			sb.WriteString(pad2 + entry(s, e))
			if j+1 != len(grp.Entries) {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(pad2[2:] + "],\n")
		sb.WriteString(pad1 + "value = " + grp.Key + ")\n")
	}
}

func entry(s settings, e aggregate.Entry) string {
	if !e.Indexed() {
		items := append([]string{param(s.subs, e.Coupling)}, symbols(s.subs, e.Symbols)...)
		return pyList(items)
	}

	n := e.Network
	prefix := make([]string, len(n.Prefix))
	for i, p := range n.Prefix {
		prefix[i] = param(s.subs, p)
	}
	couplings := pyList([]string{pyList(prefix), pyList(n.Factors), pyList(symbols(s.subs, n.Symbols))})

	out := "*generateYukTerm(" + couplings + ", " + pyPairs(n.Indices) + ", " + pyTuple(n.Ranges)
	if len(n.Conj) > 0 {
		out += ", " + pyTuple(n.Conj)
	}

	return out + ")"
}
