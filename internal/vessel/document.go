package vessel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// DocumentVersion is written into every saved project file.
const DocumentVersion = 1

// The document types mirror the runtime types field for field so the wire
// format stays stable when the runtime model grows.

type nozzleJSON struct {
	Name       string  `json:"name"`
	Pos        float64 `json:"pos"`
	Angle      float64 `json:"angle"`
	Size       string  `json:"size"`
	Projection float64 `json:"projection"`
	Mode       string  `json:"mode,omitempty"`
}

type lugDimsJSON struct {
	BaseDia     float64 `json:"baseDia"`
	BaseThk     float64 `json:"baseThk"`
	PlateWidth  float64 `json:"plateWidth"`
	PlateHeight float64 `json:"plateHeight"`
	PlateThk    float64 `json:"plateThk"`
	EyeOuterDia float64 `json:"eyeOuterDia"`
	EyeHoleDia  float64 `json:"eyeHoleDia"`
	StubDia     float64 `json:"stubDia"`
	StubTipDia  float64 `json:"stubTipDia"`
	StubLen     float64 `json:"stubLen"`
	PinDia      float64 `json:"pinDia"`
	PinLen      float64 `json:"pinLen"`
}

type lugJSON struct {
	Name     string       `json:"name"`
	Pos      float64      `json:"pos"`
	Angle    float64      `json:"angle"`
	Style    string       `json:"style"`
	SWL      string       `json:"swl"`
	Override *lugDimsJSON `json:"override,omitempty"`
}

type saddleJSON struct {
	Pos   float64    `json:"pos"`
	Tag   string     `json:"tag"`
	Color [3]float64 `json:"color"`
}

type decalJSON struct {
	ID    string  `json:"id"`
	Pos   float64 `json:"pos"`
	Angle float64 `json:"angle"`
	Image string  `json:"image"`
	Scale float64 `json:"scale"`
}

type appearanceJSON struct {
	ShellColor [3]float64 `json:"shellColor"`
	Metallic   float64    `json:"metallic"`
	Wireframe  bool       `json:"wireframe"`
}

type locksJSON struct {
	Nozzles bool `json:"nozzles"`
	Lugs    bool `json:"lugs"`
	Saddles bool `json:"saddles"`
	Decals  bool `json:"decals"`
}

type documentJSON struct {
	Version     int            `json:"version"`
	ID          string         `json:"id"`
	Length      float64        `json:"length"`
	Diameter    float64        `json:"diameter"`
	HeadRatio   float64        `json:"headRatio"`
	Orientation string         `json:"orientation"`
	Nozzles     []nozzleJSON   `json:"nozzles"`
	Lugs        []lugJSON      `json:"lugs"`
	Saddles     []saddleJSON   `json:"saddles"`
	Decals      []decalJSON    `json:"decals"`
	Appearance  appearanceJSON `json:"appearance"`
	Locks       locksJSON      `json:"locks"`
	HasModel    bool           `json:"hasModel"`
}

// Marshal serialises the state to an indented JSON project document.
func (s *State) Marshal() ([]byte, error) {
	doc := documentJSON{
		Version:     DocumentVersion,
		ID:          s.ID,
		Length:      s.Length,
		Diameter:    s.Diameter,
		HeadRatio:   s.HeadRatio,
		Orientation: string(s.Orientation),
		Appearance:  appearanceJSON(s.Appearance),
		Locks:       locksJSON(s.Locks),
		HasModel:    s.HasModel,
	}
	for _, n := range s.Nozzles {
		doc.Nozzles = append(doc.Nozzles, nozzleJSON{
			Name: n.Name, Pos: n.Pos, Angle: n.Angle,
			Size: n.Size, Projection: n.Projection, Mode: string(n.Mode),
		})
	}
	for _, l := range s.Lugs {
		lj := lugJSON{Name: l.Name, Pos: l.Pos, Angle: l.Angle, Style: string(l.Style), SWL: l.SWL}
		if l.Override != nil {
			ov := lugDimsJSON(*l.Override)
			lj.Override = &ov
		}
		doc.Lugs = append(doc.Lugs, lj)
	}
	for _, sd := range s.Saddles {
		doc.Saddles = append(doc.Saddles, saddleJSON(sd))
	}
	for _, d := range s.Decals {
		doc.Decals = append(doc.Decals, decalJSON(d))
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses a project document. Out-of-range coordinates are clamped
// and angles normalized rather than rejected, so a corrupted document still
// loads into a renderable model.
func Unmarshal(data []byte) (*State, error) {
	var doc documentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse project document: %w", err)
	}
	if doc.Version > DocumentVersion {
		return nil, fmt.Errorf("project document version %d is newer than supported %d", doc.Version, DocumentVersion)
	}

	s := &State{
		ID:          doc.ID,
		Length:      doc.Length,
		Diameter:    doc.Diameter,
		HeadRatio:   doc.HeadRatio,
		Orientation: Orientation(doc.Orientation),
		Appearance:  Appearance(doc.Appearance),
		Locks:       Locks(doc.Locks),
		HasModel:    doc.HasModel,
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Orientation != Vertical {
		s.Orientation = Horizontal
	}
	for _, n := range doc.Nozzles {
		s.Nozzles = append(s.Nozzles, Nozzle{
			Name: n.Name, Pos: n.Pos, Angle: n.Angle,
			Size: n.Size, Projection: n.Projection, Mode: OrientMode(n.Mode),
		})
	}
	for _, l := range doc.Lugs {
		lug := Lug{Name: l.Name, Pos: l.Pos, Angle: l.Angle, Style: LugStyle(l.Style), SWL: l.SWL}
		if l.Override != nil {
			ov := LugDims(*l.Override)
			lug.Override = &ov
		}
		s.Lugs = append(s.Lugs, lug)
	}
	for _, sd := range doc.Saddles {
		s.Saddles = append(s.Saddles, Saddle(sd))
	}
	for _, d := range doc.Decals {
		s.Decals = append(s.Decals, Decal(d))
	}

	s.Normalize()
	return s, nil
}

// SaveFile writes the project document to path.
func (s *State) SaveFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write project %q: %w", path, err)
	}
	return nil
}

// LoadFile reads a project document from path.
func LoadFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project %q: %w", path, err)
	}
	return Unmarshal(data)
}
