// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ElementTable assigns external parameter names to individual entries of a
// coupling matrix. Entries without a name are zero.
type ElementTable struct {
	Shape  []int
	Values map[[2]int]string
}

// At returns the external name of entry (i, j).
func (t ElementTable) At(i, j int) (string, bool) {
	v, ok := t.Values[[2]int{i, j}]

	return v, ok
}

// Substitutions is the resolved form of Model.Mapping.
type Substitutions struct {
	// Renames maps a parameter name to its external name.
	Renames map[string]string

	// Elements maps a matrix coupling to its explicit entries.
	Elements map[string]ElementTable
}

// Name returns the external name of a parameter, or name itself.
func (s Substitutions) Name(name string) string {
	if v, ok := s.Renames[name]; ok {
		return v
	}

	return name
}

// BuildSubstitutions resolves the model mapping. Entries that cannot be used
// are logged and skipped; their errors are returned so callers can decide
// whether the omission matters.
func (m *Model) BuildSubstitutions(logger *zap.Logger) (Substitutions, []error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	subs := Substitutions{Renames: map[string]string{}, Elements: map[string]ElementTable{}}
	var skipped []error

	keys := make([]string, 0, len(m.Mapping))
	for k := range m.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := m.Mapping[k]
		if !strings.ContainsAny(k, "[]") {
			subs.Renames[k] = v
			continue
		}

		base, idx, err := parseElementKey(k)
		if err != nil {
			logger.Error("mapping entry skipped", zap.String("key", k), zap.Error(err))
			skipped = append(skipped, err)
			continue
		}
		shape, ok := m.Structure(base)
		if !ok {
			err = fmt.Errorf("model: coupling matrix %q: %w", base, ErrUnknownCouplingStructure)
			logger.Error("coupling matrix is unknown", zap.String("coupling", base), zap.Error(err))
			skipped = append(skipped, err)
			continue
		}
		if len(shape) < 2 || idx[0] >= shape[0] || idx[1] >= shape[1] {
			err = fmt.Errorf("model: mapping %q outside %v: %w", k, shape, ErrBadMappingKey)
			logger.Error("mapping entry skipped", zap.String("key", k), zap.Error(err))
			skipped = append(skipped, err)
			continue
		}

		table, ok := subs.Elements[base]
		if !ok {
			table = ElementTable{Shape: shape, Values: map[[2]int]string{}}
			subs.Elements[base] = table
		}
		if v != "0" {
			table.Values[idx] = v
		}
	}

	return subs, skipped
}

// parseElementKey splits "Y[i,j]" into "Y" and (i, j); indices are 0-based.
func parseElementKey(k string) (string, [2]int, error) {
	open := strings.IndexByte(k, '[')
	if open <= 0 || !strings.HasSuffix(k, "]") {
		return "", [2]int{}, fmt.Errorf("model: mapping %q: %w", k, ErrBadMappingKey)
	}
	parts := strings.Split(k[open+1:len(k)-1], ",")
	if len(parts) != 2 {
		return "", [2]int{}, fmt.Errorf("model: mapping %q: %w", k, ErrBadMappingKey)
	}
	var idx [2]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return "", [2]int{}, fmt.Errorf("model: mapping %q: %w", k, ErrBadMappingKey)
		}
		idx[i] = n
	}

	return k[:open], idx, nil
}
