// Package vessel holds the pure data model for a parametric pressure vessel:
// a cylindrical shell capped by two ellipsoidal heads, plus the attachment
// collections placed on it. All lengths are millimetres, all angles degrees.
package vessel

import gomath "math"

// Orientation says which world axis the vessel axis runs along.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Collection identifies one of the four attachment collections.
type Collection int

const (
	Nozzles Collection = iota
	Lugs
	Saddles
	Decals

	NumCollections = 4
)

func (c Collection) String() string {
	switch c {
	case Nozzles:
		return "nozzles"
	case Lugs:
		return "lugs"
	case Saddles:
		return "saddles"
	case Decals:
		return "decals"
	}
	return "unknown"
}

// Selection points at exactly one attachment across all collections.
// Index -1 means nothing is selected. Selection is passed explicitly into
// scene assembly and interaction rather than held as ambient state.
type Selection struct {
	Collection Collection
	Index      int
}

// NoSelection is the empty selection.
var NoSelection = Selection{Index: -1}

// Is reports whether the selection points at (c, i).
func (s Selection) Is(c Collection, i int) bool {
	return s.Index >= 0 && s.Collection == c && s.Index == i
}

// IndexIn returns the selected index within collection c, or -1.
// Selecting in one collection always yields -1 in the other three.
func (s Selection) IndexIn(c Collection) int {
	if s.Index >= 0 && s.Collection == c {
		return s.Index
	}
	return -1
}

// OrientMode controls how a nozzle is aimed.
type OrientMode string

const (
	// OrientRadial aims the nozzle along the local surface normal.
	OrientRadial OrientMode = "radial"
	// OrientUp forces the nozzle along world +up regardless of position.
	OrientUp OrientMode = "up"
	// OrientDown forces the nozzle along world -up.
	OrientDown OrientMode = "down"
	// OrientHorizontal projects the surface normal onto the horizontal
	// plane. Degenerate at the top/bottom of the shell, where the radial
	// normal is kept instead.
	OrientHorizontal OrientMode = "horizontal"
)

// Nozzle is a pipe stub attachment.
type Nozzle struct {
	Name       string
	Pos        float64 // axial distance from the reference tangent line
	Angle      float64 // circumferential, degrees in [0,360)
	Size       string  // pipe size class, e.g. "DN100"
	Projection float64 // stand-off length beyond the shell surface
	Mode       OrientMode
}

// LugStyle selects the structural style of a lifting lug.
type LugStyle string

const (
	PadEye   LugStyle = "pad-eye"
	Trunnion LugStyle = "trunnion"
)

// Lug is a lifting lug attachment. Dimensions come from the SWL class table
// unless Override is set.
type Lug struct {
	Name     string
	Pos      float64
	Angle    float64
	Style    LugStyle
	SWL      string // safe-working-load class, e.g. "5t"
	Override *LugDims
}

// Saddle is a support saddle. Saddles sit under the vessel, so they carry no
// circumferential angle of their own.
type Saddle struct {
	Pos   float64
	Tag   string
	Color [3]float64
}

// Decal is a surface texture patch (stencil, label, coating sample).
type Decal struct {
	ID    string
	Pos   float64
	Angle float64
	Image string // path or asset reference
	Scale float64
}

// Appearance holds the visual settings for the bare shell.
type Appearance struct {
	ShellColor [3]float64
	Metallic   float64
	Wireframe  bool
}

// Locks holds the per-collection pointer-interaction lock flags.
// A locked collection is skipped during hit-testing but stays editable
// through direct field edits.
type Locks struct {
	Nozzles bool
	Lugs    bool
	Saddles bool
	Decals  bool
}

// Get returns the lock flag for collection c.
func (l Locks) Get(c Collection) bool {
	switch c {
	case Nozzles:
		return l.Nozzles
	case Lugs:
		return l.Lugs
	case Saddles:
		return l.Saddles
	case Decals:
		return l.Decals
	}
	return false
}

// Set changes the lock flag for collection c.
func (l *Locks) Set(c Collection, locked bool) {
	switch c {
	case Nozzles:
		l.Nozzles = locked
	case Lugs:
		l.Lugs = locked
	case Saddles:
		l.Saddles = locked
	case Decals:
		l.Decals = locked
	}
}

// State is the complete vessel model.
type State struct {
	ID          string
	Length      float64 // tangent-to-tangent
	Diameter    float64
	HeadRatio   float64 // head depth = Diameter / (2 * HeadRatio)
	Orientation Orientation

	Nozzles []Nozzle
	Lugs    []Lug
	Saddles []Saddle
	Decals  []Decal

	Appearance Appearance
	Locks      Locks
	HasModel   bool
}

// Radius returns the shell radius.
func (s *State) Radius() float64 {
	return s.Diameter / 2
}

// HeadDepth returns the axial extent of one ellipsoidal head.
func (s *State) HeadDepth() float64 {
	if s.HeadRatio <= 0 {
		return 0
	}
	return s.Diameter / (2 * s.HeadRatio)
}

// PosRange returns the valid axial position range including both heads.
func (s *State) PosRange() (min, max float64) {
	hd := s.HeadDepth()
	return -hd, s.Length + hd
}

// ClampPos clamps an axial position into the valid range.
func (s *State) ClampPos(pos float64) float64 {
	min, max := s.PosRange()
	if pos < min {
		return min
	}
	if pos > max {
		return max
	}
	return pos
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := gomath.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Count returns the number of attachments in collection c.
func (s *State) Count(c Collection) int {
	switch c {
	case Nozzles:
		return len(s.Nozzles)
	case Lugs:
		return len(s.Lugs)
	case Saddles:
		return len(s.Saddles)
	case Decals:
		return len(s.Decals)
	}
	return 0
}

// PosAngle returns the placement coordinate of attachment i in collection c.
// Saddles report the fixed bottom angle.
func (s *State) PosAngle(c Collection, i int) (pos, angle float64, ok bool) {
	if i < 0 || i >= s.Count(c) {
		return 0, 0, false
	}
	switch c {
	case Nozzles:
		return s.Nozzles[i].Pos, s.Nozzles[i].Angle, true
	case Lugs:
		return s.Lugs[i].Pos, s.Lugs[i].Angle, true
	case Saddles:
		return s.Saddles[i].Pos, SaddleAngle, true
	case Decals:
		return s.Decals[i].Pos, s.Decals[i].Angle, true
	}
	return 0, 0, false
}

// SaddleAngle is the fixed circumferential angle saddles render at: the
// bottom of the vessel (angle 90 is the top).
const SaddleAngle = 270.0

// SetPosAngle repositions attachment i in collection c, clamping pos and
// normalizing angle. Saddles only take the axial component.
func (s *State) SetPosAngle(c Collection, i int, pos, angle float64) bool {
	if i < 0 || i >= s.Count(c) {
		return false
	}
	pos = s.ClampPos(pos)
	angle = NormalizeAngle(angle)
	switch c {
	case Nozzles:
		s.Nozzles[i].Pos, s.Nozzles[i].Angle = pos, angle
	case Lugs:
		s.Lugs[i].Pos, s.Lugs[i].Angle = pos, angle
	case Saddles:
		s.Saddles[i].Pos = pos
	case Decals:
		s.Decals[i].Pos, s.Decals[i].Angle = pos, angle
	}
	return true
}
