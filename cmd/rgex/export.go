// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rgex/export"
	"github.com/katalvlaran/rgex/internal/ux"
	"github.com/katalvlaran/rgex/internal/watch"
	"github.com/katalvlaran/rgex/model"
)

var (
	errStdoutSingleModel = errors.New("--stdout takes exactly one model")
	errModelName         = errors.New("model name is not a local directory name")
	errDuplicateModel    = errors.New("models share a name")
)

type exportFlags struct {
	models   []string
	outDir   string
	fileName string
	toStdout bool
	watch    bool
}

func newExportCmd(a *app) *cobra.Command {
	var f exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the running.py module of one or more models",
		Long: `Export writes the running.py module of every model given with --model.

With several models each module goes to <out>/<model name>/. Models are
exported concurrently; every single export is one sequential pass.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				f.outDir = a.cfg.Output.Dir
			}
			if !cmd.Flags().Changed("file") {
				f.fileName = a.cfg.Output.File
			}
			if f.toStdout && len(f.models) != 1 {
				return errStdoutSingleModel
			}

			if err := a.exportAll(cmd.OutOrStdout(), f); err != nil {
				return err
			}
			if !f.watch {
				return nil
			}
			return a.watchModels(cmd, f)
		},
	}
	cmd.Flags().StringArrayVarP(&f.models, "model", "m", nil, "model file (YAML), repeatable")
	cmd.Flags().StringVarP(&f.outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&f.fileName, "file", export.DefaultFileName, "output file name")
	cmd.Flags().BoolVar(&f.toStdout, "stdout", false, "print the module instead of writing it")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "export again whenever a model file changes")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

// exportAll exports every model, at most NumCPU at a time. Summaries are
// printed in argument order. All models are loaded first, so name clashes
// are reported before anything is written.
func (a *app) exportAll(out io.Writer, f exportFlags) error {
	nested := len(f.models) > 1
	models := make([]*model.Model, len(f.models))
	owner := make(map[string]string, len(f.models))
	for i, path := range f.models {
		m, err := loadModel(path, nested)
		if err != nil {
			return err
		}
		if prev, ok := owner[m.Name]; ok && nested {
			return fmt.Errorf("%s and %s are both %q: %w", prev, path, m.Name, errDuplicateModel)
		}
		owner[m.Name] = path
		models[i] = m
	}

	summaries := make([]string, len(f.models))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range f.models {
		g.Go(func() error {
			s, err := a.exportModel(out, path, models[i], f, nested)
			summaries[i] = s
			return err
		})
	}
	err := g.Wait()

	for _, s := range summaries {
		if s != "" {
			fmt.Fprint(out, s)
		}
	}

	return err
}

// loadModel reads one model file. A nested export turns the model name into a
// directory below --out, so the name must stay inside it.
func loadModel(path string, nested bool) (*model.Model, error) {
	m, err := model.Load(path)
	if err != nil {
		return nil, err
	}
	if nested && !filepath.IsLocal(m.Name) {
		return nil, fmt.Errorf("%s: %q: %w", path, m.Name, errModelName)
	}

	return m, nil
}

// exportOne loads and exports the model at path.
func (a *app) exportOne(out io.Writer, path string, f exportFlags, nested bool) (string, error) {
	m, err := loadModel(path, nested)
	if err != nil {
		return "", err
	}

	return a.exportModel(out, path, m, f, nested)
}

// exportModel runs one export; nested places the module under a directory named after the model.
func (a *app) exportModel(out io.Writer, path string, m *model.Model, f exportFlags, nested bool) (string, error) {
	opts := []export.Option{export.WithLogger(a.logger), export.WithFileName(f.fileName)}
	if a.cfg.Banner != "" {
		opts = append(opts, export.WithBanner(a.cfg.Banner))
	}
	e, err := export.New(m, opts...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	if f.toStdout {
		b, err := e.Run()
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		_, err = out.Write(b)
		return "", err
	}

	dir := f.outDir
	if nested {
		dir = filepath.Join(dir, m.Name)
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("%w: %v", export.ErrWriteOutput, err)
		}
	}
	written, err := e.WriteFile(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return ux.Summary(out, m.Name, written, e.Stats()), nil
}

// watchModels re-exports a model after each settled change until interrupted.
func (a *app) watchModels(cmd *cobra.Command, f exportFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	w, err := watch.New(f.models, func(path string) {
		s, err := a.exportOne(out, path, f, len(f.models) > 1)
		if err != nil {
			a.logger.Error("export failed", zap.String("model", path), zap.Error(err))
			fmt.Fprintln(out, ux.Error(err))
			return
		}
		fmt.Fprint(out, s)
	}, watch.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Info("watching models", zap.Strings("models", f.models))

	return w.Run(ctx)
}
