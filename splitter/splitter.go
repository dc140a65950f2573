// SPDX-License-Identifier: MIT

package splitter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/rgex/coeff"
	"github.com/katalvlaran/rgex/model"
	"github.com/katalvlaran/rgex/network"
	"github.com/katalvlaran/rgex/symbolic"
)

var (
	// ErrInconsistentRGESet indicates the model's RGE set contradicts its assumptions.
	ErrInconsistentRGESet = errors.New("splitter: the RGE set is inconsistent")

	// ErrNilModel indicates a nil model or provider.
	ErrNilModel = errors.New("splitter: model or provider is nil")

	// ErrCoefficientChanged indicates a provider whose Simplify altered the
	// value of an exact coefficient.
	ErrCoefficientChanged = errors.New("splitter: simplify changed a coefficient")

	// ErrUnclassifiedFactor indicates a factor whose variant and commutativity
	// fit none of the buckets: a commuting matrix or a non-commuting scalar.
	ErrUnclassifiedFactor = errors.New("splitter: factor fits no bucket")
)

// Term is one additive summand of a rescaled beta function.
type Term struct {
	Category    model.Category
	Loop        int
	Coupling    string
	Coefficient coeff.Coefficient
	Symbols     []symbolic.Symbol
	Matrices    []symbolic.Matrix
	Traces      []symbolic.Trace
}

// Simple reports whether the term has neither matrix factors nor traces.
func (t Term) Simple() bool { return len(t.Matrices) == 0 && len(t.Traces) == 0 }

// Key is the canonical grouping key of the term's coefficient.
func (t Term) Key() string { return t.Coefficient.Key() }

// Input converts the term for the index synthesizer.
func (t Term) Input() network.Input {
	return network.Input{
		Coupling: t.Coupling,
		Matrices: t.Matrices,
		Traces:   t.Traces,
		Symbols:  t.Symbols,
	}
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Splitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// Splitter classifies the beta functions of one model.
type Splitter struct {
	provider symbolic.Provider
	model    *model.Model
	logger   *zap.Logger
}

// New returns a Splitter, or ErrInconsistentRGESet when the model's RGE set
// is inconsistent.
func New(p symbolic.Provider, m *model.Model, opts ...Option) (*Splitter, error) {
	if p == nil || m == nil {
		return nil, ErrNilModel
	}
	if m.Inconsistent() {
		return nil, ErrInconsistentRGESet
	}
	s := &Splitter{provider: p, model: m, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// All splits every exported category in declared order, loops ascending and
// couplings in insertion order.
func (s *Splitter) All() ([]Term, error) {
	var out []Term
	for _, cat := range model.Categories() {
		for _, loop := range s.model.Loops(cat) {
			for _, rge := range s.model.RGEs(cat, loop) {
				terms, err := s.Split(cat, loop, rge.Coupling, rge.Beta)
				if err != nil {
					return nil, err
				}
				out = append(out, terms...)
			}
		}
	}

	return out, nil
}

// Split classifies one beta function. loop is the 0-based loop index.
func (s *Splitter) Split(cat model.Category, loop int, coupling string, beta symbolic.Expr) ([]Term, error) {
	if s.model.Inconsistent() {
		return nil, ErrInconsistentRGESet
	}

	scale, err := s.model.Kappa(loop + 1).Div(s.model.BetaFactor)
	if err != nil {
		return nil, fmt.Errorf("splitter: %s/%s: %w", cat, coupling, err)
	}
	expanded, err := s.provider.Expand(symbolic.Product{Factors: []symbolic.Expr{beta, symbolic.Num(scale)}})
	if err != nil {
		return nil, fmt.Errorf("splitter: %s/%s: %w", cat, coupling, err)
	}

	summands := s.provider.AdditiveTerms(expanded)
	terms := make([]Term, 0, len(summands))
	for _, summand := range summands {
		factors, err := s.provider.Factors(summand)
		if err != nil {
			return nil, fmt.Errorf("splitter: %s/%s: %w", cat, coupling, err)
		}
		t, err := s.classify(factors)
		if err != nil {
			return nil, fmt.Errorf("splitter: %s/%s: %w", cat, coupling, err)
		}
		t.Category, t.Loop, t.Coupling = cat, loop, coupling
		terms = append(terms, t)
	}
	s.logger.Debug("beta function split",
		zap.String("category", string(cat)),
		zap.Int("loop", loop+1),
		zap.String("coupling", coupling),
		zap.Int("terms", len(terms)))

	return terms, nil
}

// classify partitions the factors of one term into its four buckets.
//
// Steps:
//  1. Numbers fold into the coefficient.
//  2. Factors the provider reports as non-commuting keep their order in the
//     matrix chain; only matrices may land there.
//  3. Commuting factors are traces or plain symbols.
//  4. The coefficient goes through the provider's Simplify, which must keep
//     its exact value, so its key is canonical.
func (s *Splitter) classify(factors []symbolic.Factor) (Term, error) {
	t := Term{Coefficient: coeff.One()}
	for _, f := range factors {
		// 1) Numeric prefactor
		if n, ok := f.(symbolic.Number); ok {
			t.Coefficient = t.Coefficient.Mul(n.Value)
			continue
		}

		// 2) Ordered chain
		if !s.provider.IsCommutative(f) {
			m, ok := f.(symbolic.Matrix)
			if !ok {
				return Term{}, fmt.Errorf("non-commuting %s: %w", f, ErrUnclassifiedFactor)
			}
			t.Matrices = append(t.Matrices, m)
			continue
		}

		// 3) Commuting factors
		switch v := f.(type) {
		case symbolic.Trace:
			t.Traces = append(t.Traces, v)
		case symbolic.Symbol:
			t.Symbols = append(t.Symbols, v)
		default:
			return Term{}, fmt.Errorf("commuting %s: %w", f, ErrUnclassifiedFactor)
		}
	}

	// 4) Canonical coefficient
	simplified, err := s.provider.Simplify(symbolic.Num(t.Coefficient))
	if err != nil {
		return Term{}, err
	}
	c, ok := symbolic.NumericValue(simplified)
	if !ok || !c.Equal(t.Coefficient) {
		return Term{}, fmt.Errorf("coefficient %s simplified to %s: %w", t.Coefficient, simplified, ErrCoefficientChanged)
	}
	t.Coefficient = c

	return t, nil
}
