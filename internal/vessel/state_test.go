package vessel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextNameLowestUnusedSuffix(t *testing.T) {
	s := New()
	s.AddNozzle("DN100", 1000, 0)
	s.AddNozzle("DN100", 2000, 0)
	s.AddNozzle("DN100", 3000, 0)
	assert.Equal(t, "N1", s.Nozzles[0].Name)
	assert.Equal(t, "N2", s.Nozzles[1].Name)
	assert.Equal(t, "N3", s.Nozzles[2].Name)

	// Removing N2 frees its suffix; the next add reuses it.
	s.Remove(Nozzles, 1, nil)
	i := s.AddNozzle("DN100", 4000, 0)
	assert.Equal(t, "N2", s.Nozzles[i].Name)
}

func TestAddClampsAndNormalizes(t *testing.T) {
	s := New() // length 6000, diameter 2000, ratio 2 -> headDepth 500
	require.Equal(t, 500.0, s.HeadDepth())

	i := s.AddNozzle("DN100", 99999, -30)
	assert.Equal(t, 6500.0, s.Nozzles[i].Pos)
	assert.Equal(t, 330.0, s.Nozzles[i].Angle)

	j := s.AddLug(PadEye, "5t", -3000, 720)
	assert.Equal(t, -500.0, s.Lugs[j].Pos)
	assert.Equal(t, 0.0, s.Lugs[j].Angle)
}

func TestDefaultAddAtMidpointTop(t *testing.T) {
	s := New()
	i := s.AddNozzleDefault("DN150")
	assert.Equal(t, s.Length/2, s.Nozzles[i].Pos)
	assert.Equal(t, TopAngle, s.Nozzles[i].Angle)
}

func TestSelectionExclusivity(t *testing.T) {
	sel := Selection{Collection: Lugs, Index: 2}
	assert.Equal(t, -1, sel.IndexIn(Nozzles))
	assert.Equal(t, 2, sel.IndexIn(Lugs))
	assert.Equal(t, -1, sel.IndexIn(Saddles))
	assert.Equal(t, -1, sel.IndexIn(Decals))
	assert.True(t, sel.Is(Lugs, 2))
	assert.False(t, sel.Is(Lugs, 1))
	assert.False(t, NoSelection.Is(Lugs, 2))
}

func TestRemoveClearsSelectionAtomically(t *testing.T) {
	s := New()
	s.AddLug(PadEye, "2t", 1000, 0)
	s.AddLug(Trunnion, "5t", 2000, 90)
	s.AddLug(PadEye, "10t", 3000, 180)

	sel := Selection{Collection: Lugs, Index: 1}
	require.True(t, s.Remove(Lugs, 1, &sel))
	assert.Equal(t, NoSelection, sel, "removing the selected attachment must clear selection")
	assert.Len(t, s.Lugs, 2)
}

func TestRemoveShiftsLaterSelection(t *testing.T) {
	s := New()
	s.AddNozzle("DN50", 1000, 0)
	s.AddNozzle("DN80", 2000, 0)
	s.AddNozzle("DN100", 3000, 0)

	sel := Selection{Collection: Nozzles, Index: 2}
	require.True(t, s.Remove(Nozzles, 0, &sel))
	assert.Equal(t, 1, sel.Index, "selection must follow the shifted collection")
	assert.Equal(t, "DN100", s.Nozzles[sel.Index].Size)
}

func TestRemoveOtherCollectionKeepsSelection(t *testing.T) {
	s := New()
	s.AddNozzle("DN50", 1000, 0)
	s.AddSaddle(1500)

	sel := Selection{Collection: Nozzles, Index: 0}
	require.True(t, s.Remove(Saddles, 0, &sel))
	assert.Equal(t, 0, sel.IndexIn(Nozzles))
}

func TestClassFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		class string
	}{
		{"unknown pipe size", "DN9999"},
		{"empty pipe size", ""},
	}
	smallest := ResolveNozzleDims("DN50")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, smallest, ResolveNozzleDims(tt.class))
		})
	}

	assert.Equal(t, ResolveLugDims("1t"), ResolveLugDims("999t"))

	override := LugDims{BaseDia: 777}
	lug := Lug{SWL: "5t", Override: &override}
	assert.Equal(t, 777.0, lug.Dims().BaseDia, "override wins over class lookup")
}

func TestLocks(t *testing.T) {
	s := New()
	s.Locks.Set(Decals, true)
	assert.True(t, s.Locks.Get(Decals))
	assert.False(t, s.Locks.Get(Nozzles))
	s.Locks.Set(Decals, false)
	assert.False(t, s.Locks.Get(Decals))
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := New()
	ov := LugDims{BaseDia: 123}
	s.AddLug(PadEye, "2t", 1000, 45)
	s.Lugs[0].Override = &ov

	snap := s.Snapshot()
	s.Lugs[0].Pos = 9999
	s.Lugs[0].Override.BaseDia = 456
	s.AddNozzle("DN100", 500, 0)

	assert.Equal(t, 1000.0, snap.Lugs[0].Pos)
	assert.Equal(t, 123.0, snap.Lugs[0].Override.BaseDia)
	assert.Empty(t, snap.Nozzles)
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0}, {360, 0}, {361, 1}, {-90, 270}, {720.5, 0.5}, {-720, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeAngle(tt.in), 1e-9, "NormalizeAngle(%v)", tt.in)
	}
}
