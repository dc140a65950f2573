package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rgex/export"
	"github.com/katalvlaran/rgex/model"
	"github.com/katalvlaran/rgex/network"
	"github.com/katalvlaran/rgex/symbolic"
)

func load(t *testing.T, name string) *model.Model {
	t.Helper()
	m, err := model.Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	return m
}

func run(t *testing.T, m *model.Model, opts ...export.Option) string {
	t.Helper()
	e, err := export.New(m, opts...)
	require.NoError(t, err)
	out, err := e.Run()
	require.NoError(t, err)

	return string(out)
}

// TestRun_TraceOfTranspose: 6·Tr(Y·Yᵀ) gives key "6." and a closed two-index cycle of range 3.
func TestRun_TraceOfTranspose(t *testing.T) {
	out := run(t, load(t, "trace.yaml"))

	assert.Contains(t, out, "*generateYukTerm([[P.g], [Y, Y], []], [(0, 1), (0, 1)], (3, 3))")
	assert.Contains(t, out, "value = 6.)")
	assert.Contains(t, out, "Y = lambda i,j : P.__getattribute__('Y%dx%d' % (i+1, j+1))")
	assert.Contains(t, out, "def generateYukTerm(")
}

// TestRun_ScalarOnly: a plain symbol beta function never emits the helper block.
func TestRun_ScalarOnly(t *testing.T) {
	m := model.New("scalar")
	m.BetaExponent = func(int) int { return 0 }
	require.NoError(t, m.AddCoupling("lam"))
	require.NoError(t, m.AddCoupling("mu"))
	beta, err := symbolic.Parse("3*mu", m.IsMatrix)
	require.NoError(t, err)
	require.NoError(t, m.AddRGE(model.ScalarMasses, 0, "lam", beta))

	out := run(t, m)

	assert.Contains(t, out, "[P.lam, P.mu]")
	assert.Contains(t, out, "value = 3.)")
	assert.NotContains(t, out, "generateYukTerm")
	assert.NotContains(t, out, "itertools")
	assert.NotContains(t, out, "lambda i,j")
}

// TestRun_StandardModel exercises every stage on a realistic model.
func TestRun_StandardModel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e, err := export.New(load(t, "sm.yaml"), export.WithLogger(zap.New(core)))
	require.NoError(t, err)
	raw, err := e.Run()
	require.NoError(t, err)
	out := string(raw)

	// Categories in declared order, anomalous dimensions skipped, empty ones absent.
	gauge := strings.Index(out, "# Gauge Couplings #")
	yuk := strings.Index(out, "# Yukawa Couplings #")
	quartic := strings.Index(out, "# Quartic Couplings #")
	mass := strings.Index(out, "# Scalar Mass Couplings #")
	require.True(t, gauge > 0 && yuk > gauge && quartic > yuk && mass > quartic, out)
	assert.NotContains(t, out, "Vacuum-expectation")
	assert.NotContains(t, out, "Trilinear")
	assert.NotContains(t, out, "P.v")

	// g1 is renamed; the three gauge terms have distinct keys.
	assert.Contains(t, out, "[P.gY, P.gY, P.gY]")
	assert.Contains(t, out, "value = 41./(96*cmath.pi**2))")
	assert.Contains(t, out, "value = -19./(96*cmath.pi**2))")
	assert.Contains(t, out, "value = -7./(16*cmath.pi**2))")
	assert.Contains(t, out, "Rgauge3 = Running(")

	// Yu·Yu†·Yu shares its chain index; the adjoint is conjugated.
	assert.Contains(t, out, "*generateYukTerm([[], [Yu, Yu, Yu, Yu], []], [(0, 1), (0, 2), (3, 2), (3, 1)], (3, 3, 3, 3), (2,))")
	// The trace term keeps the coupling's open legs and closes its own cycle.
	assert.Contains(t, out, "*generateYukTerm([[], [Yu, Yu, Yu, Yu], []], [(0, 1), (0, 1), (2, 3), (2, 3)], (3, 3, 3, 3), (3,))")
	// A closed trace under a scalar coupling has no open legs.
	assert.Contains(t, out, "*generateYukTerm([[P.lam], [Yu, Yu, Yu, Yu], []], [(0, 1), (2, 1), (2, 3), (0, 3)], (3, 3, 3, 3), (1, 3))")
	assert.Contains(t, out, "*generateYukTerm([[], [Yu, Yu], [P.g3, P.g3]], [(0, 1), (0, 1)], (3, 3))")

	// Accessors follow declaration order: Yu, Yd; Ye is never referenced.
	assert.Less(t, strings.Index(out, "Yu = lambda"), strings.Index(out, "Yd = lambda"))
	assert.NotContains(t, out, "Ye = lambda")

	// The unknown matrix in the mapping is logged as critical and skipped.
	critical := logs.FilterMessage("coupling matrix is unknown").All()
	require.Len(t, critical, 1)
	assert.Equal(t, zapcore.ErrorLevel, critical[0].Level)
	assert.Equal(t, "Yx", critical[0].ContextMap()["coupling"])

	assert.NotEmpty(t, logs.FilterMessage("term indexed").All())
	require.Len(t, logs.FilterMessage("export finished").All(), 1)

	stats := e.Stats()
	assert.Equal(t, 1, stats.SkippedMappings)
	require.Len(t, stats.Categories, 4)
	assert.Equal(t, model.GaugeCouplings, stats.Categories[0].Category)
	assert.Equal(t, 3, stats.Categories[0].Groups)
	assert.Equal(t, 0, stats.Categories[0].Indexed)
	assert.Equal(t, 4, stats.Categories[1].Terms)
	assert.Equal(t, 4, stats.Categories[1].Indexed)
	assert.Zero(t, stats.Open, "every SM chain is closed by its coupling")
	assert.Equal(t, stats.Terms, stats.Categories[0].Terms+stats.Categories[1].Terms+
		stats.Categories[2].Terms+stats.Categories[3].Terms)
}

// TestRun_ByteStable: the same model exports to the same bytes.
func TestRun_ByteStable(t *testing.T) {
	first := run(t, load(t, "sm.yaml"))
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, run(t, load(t, "sm.yaml")))
	}
}

func TestNew_Inconsistent(t *testing.T) {
	m := load(t, "sm.yaml")
	m.NonZeroDiagRGEs = []string{"Yu"}

	_, err := export.New(m)
	assert.ErrorIs(t, err, export.ErrInconsistentRGESet)
}

func TestNew_NilModel(t *testing.T) {
	_, err := export.New(nil)
	assert.ErrorIs(t, err, export.ErrNilModel)
}

// TestRun_FlavorRangeConflict aborts without output.
func TestRun_FlavorRangeConflict(t *testing.T) {
	m := model.New("conflict")
	require.NoError(t, m.AddCoupling("Y", 3, 3))
	require.NoError(t, m.AddCoupling("Yn", 3, 2))
	beta, err := symbolic.Parse("Y*Yn*Y", m.IsMatrix)
	require.NoError(t, err)
	require.NoError(t, m.AddRGE(model.Yukawas, 0, "Y", beta))

	core, logs := observer.New(zapcore.ErrorLevel)
	e, err := export.New(m, export.WithLogger(zap.New(core)))
	require.NoError(t, err)

	out, err := e.Run()
	assert.ErrorIs(t, err, network.ErrFlavorRangeConflict)
	assert.Nil(t, out)
	assert.Len(t, logs.FilterMessage("index synthesis failed").All(), 1)
}

// TestRun_OpenChainStats: a scalar coupling times a bare matrix keeps two free legs.
func TestRun_OpenChainStats(t *testing.T) {
	m := model.New("open")
	m.BetaExponent = func(int) int { return 0 }
	require.NoError(t, m.AddCoupling("g"))
	require.NoError(t, m.AddCoupling("Y", 3, 3))
	beta, err := symbolic.Parse("g*Y + pow(g, 3)", m.IsMatrix)
	require.NoError(t, err)
	require.NoError(t, m.AddRGE(model.GaugeCouplings, 0, "g", beta))

	core, logs := observer.New(zapcore.DebugLevel)
	e, err := export.New(m, export.WithLogger(zap.New(core)))
	require.NoError(t, err)
	out, err := e.Run()
	require.NoError(t, err)
	assert.Contains(t, string(out), "*generateYukTerm([[P.g], [Y], []], [(0, 1)], (3, 3))")

	stats := e.Stats()
	assert.Equal(t, 1, stats.Open)
	assert.Equal(t, 1, stats.Indexed)
	require.Len(t, stats.Categories, 1)
	assert.Equal(t, 1, stats.Categories[0].Open)

	indexed := logs.FilterMessage("term indexed").All()
	require.Len(t, indexed, 1)
	assert.EqualValues(t, 2, indexed[0].ContextMap()["openLegs"])
	assert.EqualValues(t, 1, indexed[0].ContextMap()["components"])
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	e, err := export.New(load(t, "trace.yaml"), export.WithFileName("rge.py"))
	require.NoError(t, err)

	path, err := e.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rge.py"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "### UFO 'running.py'"))
}

func TestWriteFile_MissingDir(t *testing.T) {
	e, err := export.New(load(t, "trace.yaml"))
	require.NoError(t, err)

	_, err = e.WriteFile(filepath.Join(t.TempDir(), "missing", "deeper"))
	assert.ErrorIs(t, err, export.ErrWriteOutput)
}
