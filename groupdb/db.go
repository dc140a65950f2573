// SPDX-License-Identifier: MIT

package groupdb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rgex/coeff"
)

// Labels are the Dynkin labels of an irreducible representation.
type Labels []int

// String renders labels as "1,0".
func (l Labels) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// ParseLabels reads "1,0" or "(1, 0)".
func ParseLabels(s string) (Labels, error) {
	s = strings.Trim(strings.TrimSpace(s), "()[]")
	if s == "" {
		return Labels{}, nil
	}
	parts := strings.Split(s, ",")
	out := make(Labels, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("groupdb: labels %q: %w", s, err)
		}
		out[i] = v
	}

	return out, nil
}

// GroupData is the per-group record of a DB.
type GroupData struct {
	Dim  int
	Rank int
	Name string
}

// RepData is the per-representation record of a DB.
type RepData struct {
	Labels      Labels
	Dim         int
	Frobenius   int
	DynkinIndex coeff.Coefficient
	Name        string
}

// DB is an external group-theory database with an explicit open/close scope.
type DB interface {
	Open() error
	Close() error

	Group(typ string) (GroupData, error)
	Rep(typ string, labels Labels) (RepData, error)

	// FirstReps lists the representations spanning the n smallest dimensions.
	FirstReps(typ string, n int) ([]Labels, error)
}

// withDB runs fn between Open and Close. Close always runs once Open succeeded.
func withDB(db DB, fn func() error) (err error) {
	if err = db.Open(); err != nil {
		return fmt.Errorf("groupdb: open: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("groupdb: close: %w", cerr))
		}
	}()

	return fn()
}
