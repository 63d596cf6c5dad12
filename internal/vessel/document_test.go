package vessel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	s := New()
	s.Length = 8000
	s.Diameter = 3000
	s.HeadRatio = 2.0
	s.Orientation = Horizontal
	s.AddNozzle("DN150", 4000, 90)
	s.Nozzles[0].Mode = OrientUp
	s.AddLug(Trunnion, "10t", -300, 0)
	ov := LugDims{BaseDia: 200, BaseThk: 18}
	s.Lugs[0].Override = &ov
	s.AddSaddle(1200)
	s.AddDecal("stencils/serial.png", 5000, 270, 1.5)
	s.Locks.Saddles = true

	path := filepath.Join(t.TempDir(), "vessel.json")
	require.NoError(t, s.SaveFile(path))

	got, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.Length, got.Length)
	assert.Equal(t, s.Diameter, got.Diameter)
	assert.Equal(t, s.HeadRatio, got.HeadRatio)
	assert.Equal(t, s.Orientation, got.Orientation)
	assert.Equal(t, s.Nozzles, got.Nozzles)
	assert.Equal(t, s.Lugs, got.Lugs)
	assert.Equal(t, s.Saddles, got.Saddles)
	assert.Equal(t, s.Decals, got.Decals)
	assert.Equal(t, s.Locks, got.Locks)
}

func TestLoadClampsCorruptedCoordinates(t *testing.T) {
	doc := []byte(`{
		"version": 1,
		"length": 6000, "diameter": 2000, "headRatio": 2.0,
		"orientation": "horizontal",
		"nozzles": [{"name": "N1", "pos": 99999, "angle": -450, "size": "DN100", "projection": 150}],
		"lugs": [{"name": "L1", "pos": -99999, "angle": 725, "style": "", "swl": "5t"}],
		"hasModel": true
	}`)

	s, err := Unmarshal(doc)
	require.NoError(t, err, "corrupted coordinates must be repaired, not rejected")

	assert.Equal(t, 6500.0, s.Nozzles[0].Pos)
	assert.Equal(t, 270.0, s.Nozzles[0].Angle)
	assert.Equal(t, OrientRadial, s.Nozzles[0].Mode)
	assert.Equal(t, -500.0, s.Lugs[0].Pos)
	assert.Equal(t, 5.0, s.Lugs[0].Angle)
	assert.Equal(t, PadEye, s.Lugs[0].Style, "missing style defaults to pad-eye")
	assert.NotEmpty(t, s.ID, "missing id gets generated")
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	_, err := Unmarshal([]byte(`{"version": 99}`))
	assert.Error(t, err)
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Unmarshal([]byte(`{not json`))
	assert.Error(t, err)
}
