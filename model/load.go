// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rgex/coeff"
	"github.com/katalvlaran/rgex/symbolic"
)

type fileModel struct {
	Name                string               `yaml:"name" validate:"required"`
	BetaFactor          string               `yaml:"betaFactor"`
	BetaExponent        exponentSpec         `yaml:"betaExponent"`
	Couplings           []couplingSpec       `yaml:"couplings" validate:"required,min=1,dive"`
	RGEs                map[string][]rgeSpec `yaml:"rges" validate:"dive,dive"`
	NonZeroCouplingRGEs []string             `yaml:"nonZeroCouplingRGEs"`
	NonZeroDiagRGEs     []string             `yaml:"nonZeroDiagRGEs"`
	Mapping             map[string]string    `yaml:"mapping"`
}

type exponentSpec struct {
	PerLoop *int `yaml:"perLoop" validate:"omitempty,gte=0"`
	Offset  int  `yaml:"offset"`
}

type couplingSpec struct {
	Name      string `yaml:"name" validate:"required"`
	Structure []int  `yaml:"structure" validate:"omitempty,dive,gt=0"`
}

type rgeSpec struct {
	Loop     int    `yaml:"loop" validate:"gte=0"`
	Coupling string `yaml:"coupling" validate:"required"`
	Beta     string `yaml:"beta" validate:"required"`
}

var validate = validator.New()

// Load reads a YAML model description from path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: Load(%q): %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("model: Load(%q): %w", path, err)
	}

	return m, nil
}

// Decode reads a YAML model description from r, validates it and parses
// every beta function.
func Decode(r io.Reader) (*Model, error) {
	var fm fileModel
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if err := validate.Struct(fm); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: field %s fails %q", ErrInvalidModel, verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	return fm.build()
}

func (fm fileModel) build() (*Model, error) {
	m := New(fm.Name)
	m.NonZeroCouplingRGEs = fm.NonZeroCouplingRGEs
	m.NonZeroDiagRGEs = fm.NonZeroDiagRGEs
	for k, v := range fm.Mapping {
		m.Mapping[k] = v
	}

	perLoop := DefaultLoopExponent
	if fm.BetaExponent.PerLoop != nil {
		perLoop = *fm.BetaExponent.PerLoop
	}
	offset := fm.BetaExponent.Offset
	m.BetaExponent = func(loop int) int { return perLoop*loop + offset }

	if fm.BetaFactor != "" {
		e, err := symbolic.Parse(fm.BetaFactor, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: betaFactor: %v", ErrInvalidModel, err)
		}
		c, ok := symbolic.NumericValue(e)
		if !ok || c.IsZero() {
			return nil, fmt.Errorf("%w: betaFactor %q is not a non-zero number", ErrInvalidModel, fm.BetaFactor)
		}
		m.BetaFactor = c
	} else {
		m.BetaFactor = coeff.One()
	}

	for _, c := range fm.Couplings {
		if err := m.AddCoupling(c.Name, c.Structure...); err != nil {
			return nil, err
		}
	}

	// Categories are visited in a fixed order so that errors are reproducible.
	cats := make([]string, 0, len(fm.RGEs))
	for k := range fm.RGEs {
		cats = append(cats, k)
	}
	sort.Strings(cats)
	for _, k := range cats {
		cat := Category(k)
		if !cat.Valid() {
			return nil, fmt.Errorf("model: rges[%q]: %w", k, ErrUnknownCategory)
		}
		for i, r := range fm.RGEs[k] {
			beta, err := symbolic.Parse(r.Beta, m.IsMatrix)
			if err != nil {
				return nil, fmt.Errorf("%w: rges[%s][%d]: %v", ErrInvalidModel, k, i, err)
			}
			if err = m.AddRGE(cat, r.Loop, r.Coupling, beta); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
