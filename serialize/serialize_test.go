package serialize_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rgex/aggregate"
	"github.com/katalvlaran/rgex/model"
	"github.com/katalvlaran/rgex/network"
	"github.com/katalvlaran/rgex/serialize"
	"github.com/katalvlaran/rgex/symbolic"
)

func golden(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return string(b)
}

func render(t *testing.T, g *aggregate.Groups, opts ...serialize.Option) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, serialize.Write(&buf, g, opts...))

	return buf.String()
}

func sym(names ...string) []symbolic.Symbol {
	out := make([]symbolic.Symbol, len(names))
	for i, n := range names {
		out[i] = symbolic.Symbol{Name: n}
	}

	return out
}

func simpleGroups() *aggregate.Groups {
	g := aggregate.New()
	g.Add(model.QuarticTerms, "3./(4*cmath.pi**2)", aggregate.Entry{Coupling: "lam", Symbols: sym("lam", "lam")})
	g.Add(model.GaugeCouplings, "-41./(96*cmath.pi**2)", aggregate.Entry{Coupling: "gY", Symbols: sym("gY", "gY")})
	g.Add(model.GaugeCouplings, "19./(96*cmath.pi**2)", aggregate.Entry{Coupling: "g2", Symbols: sym("g2", "g2")})
	g.Add(model.QuarticTerms, "3./(4*cmath.pi**2)", aggregate.Entry{
		Coupling: "lam",
		Symbols:  []symbolic.Symbol{{Name: "gY"}, {Name: "gY", Conj: true}},
	})

	return g
}

// TestWrite_SimpleOnly omits the helper block and applies renames.
func TestWrite_SimpleOnly(t *testing.T) {
	subs := model.Substitutions{Renames: map[string]string{"lam": "lambda"}}
	got := render(t, simpleGroups(), serialize.WithSubstitutions(subs))

	if diff := cmp.Diff(golden(t, "simple.golden"), got); diff != "" {
		t.Errorf("running.py mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, got, "generateYukTerm")
	assert.NotContains(t, got, "itertools")
}

func indexedGroups() *aggregate.Groups {
	g := aggregate.New()
	g.Add(model.Yukawas, "3./2", aggregate.Entry{Network: &network.Network{
		Factors: []string{"Yu", "Yu", "Yu", "Yu"},
		Indices: []network.Pair{{0, 1}, {0, 2}, {3, 2}, {3, 1}},
		Ranges:  []int{3, 3, 3, 3},
		Conj:    []int{2},
	}})
	g.Add(model.Yukawas, "6.", aggregate.Entry{Network: &network.Network{
		Prefix:  []string{"lam"},
		Factors: []string{"Ye", "Ye"},
		Symbols: sym("gY"),
		Indices: []network.Pair{{0, 1}, {0, 1}},
		Ranges:  []int{3, 3},
	}})
	g.Add(model.Yukawas, "6.", aggregate.Entry{Coupling: "gY"})
	g.Add(model.GaugeCouplings, "1.", aggregate.Entry{Coupling: "gY"})

	return g
}

// TestWrite_Indexed emits accessors in coupling order, element tables and the helper.
func TestWrite_Indexed(t *testing.T) {
	subs := model.Substitutions{
		Elements: map[string]model.ElementTable{
			"Ye": {Shape: []int{3, 3}, Values: map[[2]int]string{{0, 0}: "ye", {1, 1}: "ymu", {2, 2}: "ytau"}},
		},
	}
	got := render(t, indexedGroups(),
		serialize.WithSubstitutions(subs),
		serialize.WithCouplingOrder([]string{"gY", "lam", "Yd", "Yu", "Ye"}))

	if diff := cmp.Diff(golden(t, "indexed.golden"), got); diff != "" {
		t.Errorf("running.py mismatch (-want +got):\n%s", diff)
	}
}

// TestWrite_ReferenceOrder falls back to first reference without a coupling order.
func TestWrite_ReferenceOrder(t *testing.T) {
	g := aggregate.New()
	g.Add(model.Yukawas, "1.", aggregate.Entry{Network: &network.Network{
		Factors: []string{"Yd", "Yu"},
		Indices: []network.Pair{{0, 1}, {1, 0}},
		Ranges:  []int{3, 3},
	}})
	got := render(t, g)

	assert.Less(t, bytes.Index([]byte(got), []byte("Yd = lambda")), bytes.Index([]byte(got), []byte("Yu = lambda")))
	assert.Contains(t, got, "*generateYukTerm([[], [Yd, Yu], []], [(0, 1), (1, 0)], (3, 3))")
}

// TestWrite_ByteStable renders identical input identically.
func TestWrite_ByteStable(t *testing.T) {
	first := render(t, indexedGroups())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render(t, indexedGroups()))
	}
}

func TestWrite_Banner(t *testing.T) {
	got := render(t, simpleGroups(), serialize.WithBanner("# custom"))
	assert.True(t, bytes.HasPrefix([]byte(got), []byte("# custom\n\nimport cmath\n")))
}

func TestWrite_NilGroups(t *testing.T) {
	assert.ErrorIs(t, serialize.Write(&bytes.Buffer{}, nil), serialize.ErrNilGroups)
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWrite_WriterError(t *testing.T) {
	err := serialize.Write(failingWriter{}, simpleGroups())
	assert.ErrorIs(t, err, errDiskFull)
}
