// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/rgex/aggregate"
	"github.com/katalvlaran/rgex/model"
	"github.com/katalvlaran/rgex/network"
	"github.com/katalvlaran/rgex/serialize"
	"github.com/katalvlaran/rgex/splitter"
	"github.com/katalvlaran/rgex/symbolic"
)

// DefaultFileName is the name of the generated module.
const DefaultFileName = "running.py"

var (
	// ErrInconsistentRGESet is returned by New for a model whose RGE set is inconsistent.
	ErrInconsistentRGESet = splitter.ErrInconsistentRGESet

	// ErrWriteOutput indicates the output file could not be written.
	ErrWriteOutput = errors.New("export: cannot write output")

	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("export: model is nil")
)

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithProvider replaces the built-in symbolic.Basic provider.
func WithProvider(p symbolic.Provider) Option {
	return func(e *Exporter) {
		if p != nil {
			e.provider = p
		}
	}
}

// WithFileName sets the output file name used by WriteFile.
func WithFileName(name string) Option {
	return func(e *Exporter) {
		if name != "" {
			e.fileName = name
		}
	}
}

// WithBanner replaces the first line of the generated module.
func WithBanner(b string) Option {
	return func(e *Exporter) { e.banner = b }
}

// Exporter exports the beta functions of one model.
type Exporter struct {
	model    *model.Model
	provider symbolic.Provider
	logger   *zap.Logger
	fileName string
	banner   string
	stats    Stats
}

// New validates the model and returns an Exporter.
func New(m *model.Model, opts ...Option) (*Exporter, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	e := &Exporter{
		model:    m,
		provider: symbolic.NewBasic(),
		logger:   zap.NewNop(),
		fileName: DefaultFileName,
		banner:   serialize.DefaultBanner,
	}
	for _, opt := range opts {
		opt(e)
	}
	if m.Inconsistent() {
		e.logger.Error("the RGE set is inconsistent",
			zap.String("model", m.Name),
			zap.Strings("nonZeroCouplingRGEs", m.NonZeroCouplingRGEs),
			zap.Strings("nonZeroDiagRGEs", m.NonZeroDiagRGEs))
		return nil, ErrInconsistentRGESet
	}

	return e, nil
}

// Run performs the export and returns the module text.
func (e *Exporter) Run() ([]byte, error) {
	log := e.logger.With(zap.String("model", e.model.Name))
	log.Info("export started")

	subs, skipped := e.model.BuildSubstitutions(log)

	sp, err := splitter.New(e.provider, e.model, splitter.WithLogger(log))
	if err != nil {
		return nil, err
	}
	terms, err := sp.All()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	groups := aggregate.New()
	open := make(map[model.Category]int)
	for _, t := range terms {
		if t.Simple() {
			groups.Add(t.Category, t.Key(), aggregate.Entry{Coupling: t.Coupling, Symbols: t.Symbols})
			continue
		}

		n, err := network.Synthesize(t.Input(), e.model)
		var legs []network.Index
		if err == nil {
			legs, err = n.OpenLegs()
		}
		var comps [][]int
		if err == nil {
			comps, err = n.Components()
		}
		if err != nil {
			log.Error("index synthesis failed",
				zap.String("category", string(t.Category)),
				zap.String("coupling", t.Coupling),
				zap.String("coefficient", t.Key()),
				zap.Error(err))
			return nil, fmt.Errorf("export: %s/%s: %w", t.Category, t.Coupling, err)
		}
		if len(legs) > 0 {
			open[t.Category]++
		}
		log.Debug("term indexed",
			zap.String("category", string(t.Category)),
			zap.String("coupling", t.Coupling),
			zap.Stringer("network", n),
			zap.Int("components", len(comps)),
			zap.Int("openLegs", len(legs)))
		groups.Add(t.Category, t.Key(), aggregate.Entry{Network: n})
	}

	names := make([]string, 0, len(e.model.Couplings()))
	for _, c := range e.model.Couplings() {
		names = append(names, c.Name)
	}

	var buf bytes.Buffer
	err = serialize.Write(&buf, groups,
		serialize.WithSubstitutions(subs),
		serialize.WithCouplingOrder(names),
		serialize.WithBanner(e.banner))
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	e.stats = collectStats(groups, open, len(skipped))
	log.Info("export finished",
		zap.Int("terms", e.stats.Terms),
		zap.Int("indexed", e.stats.Indexed),
		zap.Int("open", e.stats.Open),
		zap.Int("categories", len(e.stats.Categories)),
		zap.Int("skippedMappings", e.stats.SkippedMappings))

	return buf.Bytes(), nil
}

// WriteFile runs the export and writes the module into dir, returning the file path.
func (e *Exporter) WriteFile(dir string) (string, error) {
	out, err := e.Run()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, e.fileName)
	if err = os.WriteFile(path, out, 0o644); err != nil {
		e.logger.Error("cannot write output", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	e.logger.Info("output written", zap.String("path", path), zap.Int("bytes", len(out)))

	return path, nil
}

// Stats returns the counts of the last successful Run.
func (e *Exporter) Stats() Stats { return e.stats }
