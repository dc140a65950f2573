// SPDX-License-Identifier: MIT

package groupdb

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rgex/coeff"
)

type storeFile struct {
	Groups map[string]groupSpec `yaml:"groups" validate:"required,dive"`
}

type groupSpec struct {
	Dim  int       `yaml:"dim" validate:"gt=0"`
	Rank int       `yaml:"rank" validate:"gte=0"`
	Name string    `yaml:"name" validate:"required"`
	Reps []repSpec `yaml:"reps" validate:"dive"`
}

type repSpec struct {
	Labels      []int  `yaml:"labels" validate:"required"`
	Dim         int    `yaml:"dim" validate:"gt=0"`
	Frobenius   int    `yaml:"frobenius" validate:"oneof=-1 0 1"`
	DynkinIndex string `yaml:"dynkinIndex" validate:"required"`
	Name        string `yaml:"name"`
}

var validate = validator.New()

// YAMLStore is a DB backed by a YAML file. Open reads the file, Close drops it.
type YAMLStore struct {
	Path string

	groups map[string]storedGroup
}

type storedGroup struct {
	data GroupData
	reps []RepData
	idx  map[string]int
}

// NewYAMLStore returns a closed store reading path.
func NewYAMLStore(path string) *YAMLStore { return &YAMLStore{Path: path} }

// Open implements DB.
func (s *YAMLStore) Open() error {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}
	var f storeFile
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStore, err)
	}
	if err = validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %s fails %q", ErrInvalidStore, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidStore, err)
	}

	groups := make(map[string]storedGroup, len(f.Groups))
	for typ, g := range f.Groups {
		sg := storedGroup{
			data: GroupData{Dim: g.Dim, Rank: g.Rank, Name: g.Name},
			idx:  make(map[string]int, len(g.Reps)),
		}
		for _, r := range g.Reps {
			index, ok := new(big.Rat).SetString(r.DynkinIndex)
			if !ok {
				return fmt.Errorf("%w: %s%v: dynkinIndex %q", ErrInvalidStore, typ, r.Labels, r.DynkinIndex)
			}
			rd := RepData{
				Labels:      Labels(r.Labels),
				Dim:         r.Dim,
				Frobenius:   r.Frobenius,
				DynkinIndex: coeff.FromRat(index),
				Name:        r.Name,
			}
			sg.idx[rd.Labels.String()] = len(sg.reps)
			sg.reps = append(sg.reps, rd)
		}
		groups[typ] = sg
	}
	s.groups = groups

	return nil
}

// Close implements DB.
func (s *YAMLStore) Close() error {
	s.groups = nil

	return nil
}

func (s *YAMLStore) group(typ string) (storedGroup, error) {
	if s.groups == nil {
		return storedGroup{}, ErrNotOpen
	}
	g, ok := s.groups[typ]
	if !ok {
		return storedGroup{}, fmt.Errorf("%w: %s", ErrUnknownGroup, typ)
	}

	return g, nil
}

// Group implements DB.
func (s *YAMLStore) Group(typ string) (GroupData, error) {
	g, err := s.group(typ)
	if err != nil {
		return GroupData{}, err
	}

	return g.data, nil
}

// Rep implements DB.
func (s *YAMLStore) Rep(typ string, labels Labels) (RepData, error) {
	g, err := s.group(typ)
	if err != nil {
		return RepData{}, err
	}
	i, ok := g.idx[labels.String()]
	if !ok {
		return RepData{}, fmt.Errorf("%w: %s(%s)", ErrUnknownRep, typ, labels)
	}

	return g.reps[i], nil
}

// FirstReps implements DB. Reps are ordered by dimension, then by file order.
func (s *YAMLStore) FirstReps(typ string, n int) ([]Labels, error) {
	g, err := s.group(typ)
	if err != nil {
		return nil, err
	}
	reps := append([]RepData(nil), g.reps...)
	sort.SliceStable(reps, func(i, j int) bool { return reps[i].Dim < reps[j].Dim })

	var out []Labels
	dims := 0
	for i, r := range reps {
		if i == 0 || r.Dim != reps[i-1].Dim {
			if dims == n {
				break
			}
			dims++
		}
		out = append(out, r.Labels)
	}

	return out, nil
}
