package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rgex/model"
	"github.com/katalvlaran/rgex/symbolic"
)

// TestCategories verifies the fixed export order and the anomalous filter.
func TestCategories(t *testing.T) {
	cats := model.Categories()
	require.Len(t, cats, 7)
	assert.Equal(t, model.GaugeCouplings, cats[0])
	assert.Equal(t, model.Vevs, cats[6])
	assert.Equal(t, "yuk", model.Yukawas.Tag())
	assert.Equal(t, "Vacuum-expectation Values", model.Vevs.Title())

	assert.True(t, model.FermionAnomalous.Valid())
	assert.False(t, model.FermionAnomalous.Exported())
	assert.False(t, model.Category("Bogus").Valid())
}

// TestModel_Couplings covers declaration, lookups and duplicates.
func TestModel_Couplings(t *testing.T) {
	m := model.New("toy")
	require.NoError(t, m.AddCoupling("g1"))
	require.NoError(t, m.AddCoupling("Y", 3, 3))
	assert.ErrorIs(t, m.AddCoupling("Y"), model.ErrDuplicateCoupling)

	s, ok := m.Structure("Y")
	assert.True(t, ok)
	assert.Equal(t, []int{3, 3}, s)
	_, ok = m.Structure("g1")
	assert.False(t, ok)
	assert.False(t, m.IsMatrix("missing"))

	assert.ErrorIs(t, m.AddRGE(model.Yukawas, 0, "Z", symbolic.Int(1)), model.ErrUnknownCoupling)
	assert.ErrorIs(t, m.AddRGE("Bogus", 0, "Y", symbolic.Int(1)), model.ErrUnknownCategory)
}

// TestModel_KappaAndConsistency checks the loop prefactor and the inconsistency flag.
func TestModel_KappaAndConsistency(t *testing.T) {
	m := model.New("toy")
	assert.Equal(t, "1/(16*pi**2)", m.Kappa(1).String())
	assert.Equal(t, "1/(256*pi**4)", m.Kappa(2).String())

	assert.False(t, m.Inconsistent())
	m.NonZeroDiagRGEs = []string{"Ye"}
	assert.True(t, m.Inconsistent())
}

const toyYAML = `
name: toy
betaFactor: "1/2"
betaExponent: {perLoop: 1, offset: 1}
couplings:
  - {name: g1}
  - {name: lam}
  - {name: Y, structure: [3, 3]}
rges:
  GaugeCouplings:
    - {loop: 1, coupling: g1, beta: "pow(g1, 5)"}
    - {loop: 0, coupling: g1, beta: "41/10*pow(g1, 3)"}
  Yukawas:
    - {loop: 0, coupling: Y, beta: "3/2*Y*H(Y)*Y"}
mapping:
  g1: gp
  "Y[2,2]": yt
`

// TestDecode reads a complete description.
func TestDecode(t *testing.T) {
	m, err := model.Decode(strings.NewReader(toyYAML))
	require.NoError(t, err)

	assert.Equal(t, "toy", m.Name)
	assert.Equal(t, "1/2", m.BetaFactor.String())
	assert.Equal(t, 2, m.BetaExponent(1))
	assert.Equal(t, []int{0, 1}, m.Loops(model.GaugeCouplings))

	rges := m.RGEs(model.Yukawas, 0)
	require.Len(t, rges, 1)
	assert.Equal(t, "Y", rges[0].Coupling)
	assert.Equal(t, "3/2*Y*adjoint(Y)*Y", rges[0].Beta.String())
	assert.Equal(t, "yt", m.Mapping["Y[2,2]"])
}

// TestDecode_Invalid covers the validation failures.
func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", ``, model.ErrInvalidModel},
		{"no name", "couplings: [{name: g}]", model.ErrInvalidModel},
		{"no couplings", "name: x", model.ErrInvalidModel},
		{"bad dimension", "name: x\ncouplings: [{name: Y, structure: [3, 0]}]", model.ErrInvalidModel},
		{"unknown field", "name: x\ncouplings: [{name: g}]\nextra: 1", model.ErrInvalidModel},
		{"negative loop", "name: x\ncouplings: [{name: g}]\nrges: {GaugeCouplings: [{loop: -1, coupling: g, beta: g}]}", model.ErrInvalidModel},
		{"bad category", "name: x\ncouplings: [{name: g}]\nrges: {Bogus: [{loop: 0, coupling: g, beta: g}]}", model.ErrUnknownCategory},
		{"bad coupling", "name: x\ncouplings: [{name: g}]\nrges: {Vevs: [{loop: 0, coupling: v, beta: g}]}", model.ErrUnknownCoupling},
		{"bad beta", "name: x\ncouplings: [{name: g}]\nrges: {Vevs: [{loop: 0, coupling: g, beta: \"g +\"}]}", model.ErrInvalidModel},
		{"duplicate", "name: x\ncouplings: [{name: g}, {name: g}]", model.ErrDuplicateCoupling},
		{"symbolic factor", "name: x\nbetaFactor: g\ncouplings: [{name: g}]", model.ErrInvalidModel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.Decode(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad_MissingFile surfaces the OS error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := model.Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
