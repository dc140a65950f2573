// SPDX-License-Identifier: MIT

package serialize

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/rgex/model"
	"github.com/katalvlaran/rgex/network"
	"github.com/katalvlaran/rgex/symbolic"
)

// pyList renders a Python list of already formatted items.
func pyList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// pyTuple renders a Python tuple of integers; a single element keeps its comma.
func pyTuple[T ~int](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(int(x))
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func pyPairs(ps []network.Pair) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = pyTuple(p[:])
	}

	return pyList(parts)
}

// param renders a parameter reference, applying renames.
func param(subs model.Substitutions, name string) string {
	return "P." + subs.Name(name)
}

func symbol(subs model.Substitutions, s symbolic.Symbol) string {
	if s.Conj {
		return "cc(" + param(subs, s.Name) + ")"
	}

	return param(subs, s.Name)
}

func symbols(subs model.Substitutions, ss []symbolic.Symbol) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = symbol(subs, s)
	}

	return out
}

// accessor renders the lambda giving entry (i, j) of a matrix coupling.
func accessor(subs model.Substitutions, name string) string {
	table, ok := subs.Elements[name]
	if !ok || len(table.Shape) < 2 {
		return name + " = lambda i,j : P.__getattribute__('" + subs.Name(name) + "%dx%d' % (i+1, j+1))"
	}

	rows := make([]string, table.Shape[0])
	for i := range rows {
		cols := make([]string, table.Shape[1])
		for j := range cols {
			if v, ok := table.At(i, j); ok {
				cols[j] = "P." + v
			} else {
				cols[j] = "0"
			}
		}
		rows[i] = pyList(cols)
	}

	return name + " = lambda i,j : " + pyList(rows) + "[i][j]"
}
