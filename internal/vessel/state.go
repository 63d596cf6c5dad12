package vessel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// New returns a vessel with default dimensions and empty collections.
func New() *State {
	return &State{
		ID:          uuid.NewString(),
		Length:      6000,
		Diameter:    2000,
		HeadRatio:   2.0,
		Orientation: Horizontal,
		Appearance: Appearance{
			ShellColor: [3]float64{0.62, 0.64, 0.67},
			Metallic:   0.6,
		},
		HasModel: true,
	}
}

// TopAngle is the circumferential angle of the top of a horizontal vessel,
// used as the default placement for programmatic adds.
const TopAngle = 90.0

// nextName returns prefix plus the lowest unused positive integer suffix
// among the given names. Name collisions are never fatal.
func nextName(prefix string, existing []string) string {
	used := map[int]bool{}
	for _, name := range existing {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > 0 {
			used[n] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return fmt.Sprintf("%s%d", prefix, n)
}

func (s *State) nozzleNames() []string {
	names := make([]string, len(s.Nozzles))
	for i, n := range s.Nozzles {
		names[i] = n.Name
	}
	return names
}

func (s *State) lugNames() []string {
	names := make([]string, len(s.Lugs))
	for i, l := range s.Lugs {
		names[i] = l.Name
	}
	return names
}

func (s *State) saddleTags() []string {
	tags := make([]string, len(s.Saddles))
	for i, sd := range s.Saddles {
		tags[i] = sd.Tag
	}
	return tags
}

// AddNozzle appends a nozzle of the given size class at (pos, angle) and
// returns its index. The name gets the lowest unused "N" suffix.
func (s *State) AddNozzle(size string, pos, angle float64) int {
	s.Nozzles = append(s.Nozzles, Nozzle{
		Name:       nextName("N", s.nozzleNames()),
		Pos:        s.ClampPos(pos),
		Angle:      NormalizeAngle(angle),
		Size:       size,
		Projection: 150,
		Mode:       OrientRadial,
	})
	return len(s.Nozzles) - 1
}

// AddNozzleDefault adds a nozzle at the vessel midpoint, top angle.
func (s *State) AddNozzleDefault(size string) int {
	return s.AddNozzle(size, s.Length/2, TopAngle)
}

// AddLug appends a lifting lug and returns its index.
func (s *State) AddLug(style LugStyle, swl string, pos, angle float64) int {
	s.Lugs = append(s.Lugs, Lug{
		Name:  nextName("L", s.lugNames()),
		Pos:   s.ClampPos(pos),
		Angle: NormalizeAngle(angle),
		Style: style,
		SWL:   swl,
	})
	return len(s.Lugs) - 1
}

// AddLugDefault adds a lug at the vessel midpoint, top angle.
func (s *State) AddLugDefault(style LugStyle, swl string) int {
	return s.AddLug(style, swl, s.Length/2, TopAngle)
}

// AddSaddle appends a support saddle at pos and returns its index.
func (s *State) AddSaddle(pos float64) int {
	s.Saddles = append(s.Saddles, Saddle{
		Pos:   s.ClampPos(pos),
		Tag:   nextName("S", s.saddleTags()),
		Color: [3]float64{0.30, 0.34, 0.40},
	})
	return len(s.Saddles) - 1
}

// AddDecal appends a texture decal and returns its index.
func (s *State) AddDecal(image string, pos, angle, scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	s.Decals = append(s.Decals, Decal{
		ID:    uuid.NewString(),
		Pos:   s.ClampPos(pos),
		Angle: NormalizeAngle(angle),
		Image: image,
		Scale: scale,
	})
	return len(s.Decals) - 1
}

// Remove deletes attachment i from collection c. When the removed attachment
// is selected, the selection is cleared in the same step; a selection behind
// the removed index shifts down so it keeps pointing at the same attachment.
func (s *State) Remove(c Collection, i int, sel *Selection) bool {
	if i < 0 || i >= s.Count(c) {
		return false
	}
	switch c {
	case Nozzles:
		s.Nozzles = append(s.Nozzles[:i], s.Nozzles[i+1:]...)
	case Lugs:
		s.Lugs = append(s.Lugs[:i], s.Lugs[i+1:]...)
	case Saddles:
		s.Saddles = append(s.Saddles[:i], s.Saddles[i+1:]...)
	case Decals:
		s.Decals = append(s.Decals[:i], s.Decals[i+1:]...)
	}
	if sel != nil && sel.Index >= 0 && sel.Collection == c {
		switch {
		case sel.Index == i:
			*sel = NoSelection
		case sel.Index > i:
			sel.Index--
		}
	}
	return true
}

// Snapshot returns a deep copy safe to hand to asynchronous persistence
// while the original keeps mutating on the interaction thread.
func (s *State) Snapshot() *State {
	cp := *s
	cp.Nozzles = append([]Nozzle(nil), s.Nozzles...)
	cp.Lugs = append([]Lug(nil), s.Lugs...)
	cp.Saddles = append([]Saddle(nil), s.Saddles...)
	cp.Decals = append([]Decal(nil), s.Decals...)
	for i, l := range s.Lugs {
		if l.Override != nil {
			ov := *l.Override
			cp.Lugs[i].Override = &ov
		}
	}
	return &cp
}

// Normalize clamps every attachment coordinate into the valid range and
// wraps every angle into [0,360). Used after loading a document so corrupted
// coordinates are repaired rather than rejected.
func (s *State) Normalize() {
	if s.HeadRatio <= 0 {
		s.HeadRatio = 2.0
	}
	for i := range s.Nozzles {
		s.Nozzles[i].Pos = s.ClampPos(s.Nozzles[i].Pos)
		s.Nozzles[i].Angle = NormalizeAngle(s.Nozzles[i].Angle)
		if s.Nozzles[i].Mode == "" {
			s.Nozzles[i].Mode = OrientRadial
		}
	}
	for i := range s.Lugs {
		s.Lugs[i].Pos = s.ClampPos(s.Lugs[i].Pos)
		s.Lugs[i].Angle = NormalizeAngle(s.Lugs[i].Angle)
		if s.Lugs[i].Style == "" {
			s.Lugs[i].Style = PadEye
		}
	}
	for i := range s.Saddles {
		s.Saddles[i].Pos = s.ClampPos(s.Saddles[i].Pos)
	}
	for i := range s.Decals {
		s.Decals[i].Pos = s.ClampPos(s.Decals[i].Pos)
		s.Decals[i].Angle = NormalizeAngle(s.Decals[i].Angle)
		if s.Decals[i].Scale <= 0 {
			s.Decals[i].Scale = 1
		}
	}
}
