package groupdb_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rgex/groupdb"
)

// countingDB wraps a store and records the open/close scope.
type countingDB struct {
	*groupdb.YAMLStore
	opens, closes int
	open          bool
	failRep       error
}

func (c *countingDB) Open() error {
	c.opens++
	c.open = true
	return c.YAMLStore.Open()
}

func (c *countingDB) Close() error {
	c.closes++
	c.open = false
	return c.YAMLStore.Close()
}

func (c *countingDB) Rep(typ string, l groupdb.Labels) (groupdb.RepData, error) {
	if c.failRep != nil {
		return groupdb.RepData{}, c.failRep
	}
	return c.YAMLStore.Rep(typ, l)
}

func newDB() *countingDB {
	return &countingDB{YAMLStore: groupdb.NewYAMLStore(filepath.Join("testdata", "groups.yaml"))}
}

func TestNewGroup(t *testing.T) {
	db := newDB()
	g, err := groupdb.NewGroup("QCD", "su3", db)
	require.NoError(t, err)

	assert.Equal(t, "SU3", g.Type)
	assert.Equal(t, 8, g.Dim)
	assert.Equal(t, 2, g.Rank)
	assert.Equal(t, "SU(3)", g.Latex)
	assert.False(t, g.Abelian)
	assert.Equal(t, 1, db.opens)
	assert.Equal(t, 1, db.closes)
	assert.False(t, db.open)
}

func TestNewGroup_Exceptional(t *testing.T) {
	g, err := groupdb.NewGroup("GUT", "E6", newDB())
	require.NoError(t, err)
	assert.Equal(t, "E_{6}", g.Latex)
}

// TestNewGroup_U1 never opens the database.
func TestNewGroup_U1(t *testing.T) {
	db := newDB()
	g, err := groupdb.NewGroup("Y", "U1", db)
	require.NoError(t, err)

	assert.True(t, g.Abelian)
	assert.Equal(t, 1, g.Dim)
	assert.Equal(t, "U(1)", g.Latex)
	assert.Zero(t, db.opens)

	_, err = g.Rep(groupdb.Labels{1})
	assert.ErrorIs(t, err, groupdb.ErrAbelian)
	assert.NoError(t, g.MoreInfo(3))
}

func TestNewGroup_Unknown(t *testing.T) {
	db := newDB()
	_, err := groupdb.NewGroup("X", "SO10", db)
	assert.ErrorIs(t, err, groupdb.ErrUnknownGroup)
	assert.Equal(t, db.opens, db.closes, "closed on the error path")
}

func TestRep(t *testing.T) {
	db := newDB()
	g, err := groupdb.NewGroup("QCD", "SU3", db)
	require.NoError(t, err)

	for _, tc := range []struct {
		labels  groupdb.Labels
		dim     int
		reality groupdb.Reality
		index   string
	}{
		{groupdb.Labels{1, 0}, 3, groupdb.Complex, "1/2"},
		{groupdb.Labels{1, 1}, 8, groupdb.Real, "3"},
		{groupdb.Labels{2, 0}, 6, groupdb.Complex, "5/2"},
	} {
		info, err := g.Rep(tc.labels)
		require.NoError(t, err, tc.labels)
		assert.Equal(t, tc.dim, info.Dim, tc.labels)
		assert.Equal(t, tc.reality, info.Reality, tc.labels)
		assert.Equal(t, tc.index, info.DynkinIndex.String(), tc.labels)
	}

	opens := db.opens
	dim, err := g.DimR(groupdb.Labels{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, dim)
	assert.Equal(t, opens, db.opens, "cached reps do not reopen the database")
	assert.Equal(t, db.opens, db.closes)
}

func TestRep_PseudoReal(t *testing.T) {
	g, err := groupdb.NewGroup("L", "SU2", newDB())
	require.NoError(t, err)

	info, err := g.Rep(groupdb.Labels{1})
	require.NoError(t, err)
	assert.Equal(t, groupdb.PseudoReal, info.Reality)
	assert.Equal(t, "pseudo-real", info.Reality.String())
}

// TestMoreInfo_ClosesOnFailure: the scope is released even when a lookup fails.
func TestMoreInfo_ClosesOnFailure(t *testing.T) {
	db := newDB()
	g, err := groupdb.NewGroup("QCD", "SU3", db)
	require.NoError(t, err)

	boom := errors.New("boom")
	db.failRep = boom
	err = g.MoreInfo(2)
	assert.ErrorIs(t, err, boom)
	assert.False(t, db.open)
	assert.Equal(t, db.opens, db.closes)
}

func TestMoreInfo(t *testing.T) {
	db := newDB()
	g, err := groupdb.NewGroup("QCD", "SU3", db)
	require.NoError(t, err)

	require.NoError(t, g.MoreInfo(2))
	assert.Equal(t, 2, db.opens)
	assert.False(t, db.open)

	var names []string
	for _, r := range g.Reps() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"3", "3bar", "6"}, names, "dimensions 3 and 6, file order within a dimension")
}

func TestRealityOf(t *testing.T) {
	for fs, want := range map[int]groupdb.Reality{1: groupdb.Complex, 0: groupdb.Real, -1: groupdb.PseudoReal} {
		got, err := groupdb.RealityOf(fs)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := groupdb.RealityOf(2)
	assert.ErrorIs(t, err, groupdb.ErrBadFrobenius)
}
