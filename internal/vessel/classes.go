package vessel

import "sort"

// NozzleDims are the concrete dimensions resolved from a pipe size class.
type NozzleDims struct {
	OuterDia  float64
	Wall      float64
	FlangeDia float64
	FlangeThk float64
}

// nozzleClasses maps pipe size class to dimensions. Flange sizing follows
// the usual DN slip-on proportions, rounded to whole millimetres.
var nozzleClasses = map[string]NozzleDims{
	"DN50":  {OuterDia: 60.3, Wall: 3.9, FlangeDia: 165, FlangeThk: 18},
	"DN80":  {OuterDia: 88.9, Wall: 5.5, FlangeDia: 200, FlangeThk: 20},
	"DN100": {OuterDia: 114.3, Wall: 6.0, FlangeDia: 220, FlangeThk: 20},
	"DN150": {OuterDia: 168.3, Wall: 7.1, FlangeDia: 285, FlangeThk: 22},
	"DN200": {OuterDia: 219.1, Wall: 8.2, FlangeDia: 340, FlangeThk: 24},
	"DN250": {OuterDia: 273.1, Wall: 9.3, FlangeDia: 405, FlangeThk: 26},
	"DN300": {OuterDia: 323.9, Wall: 9.5, FlangeDia: 460, FlangeThk: 28},
}

// LugDims are the concrete dimensions resolved from an SWL class.
// Pad-eye lugs use the Base/Plate/Eye fields, trunnions use Base/Stub/Pin.
type LugDims struct {
	BaseDia float64
	BaseThk float64

	PlateWidth  float64
	PlateHeight float64
	PlateThk    float64
	EyeOuterDia float64
	EyeHoleDia  float64

	StubDia    float64
	StubTipDia float64
	StubLen    float64
	PinDia     float64
	PinLen     float64
}

var lugClasses = map[string]LugDims{
	"1t": {
		BaseDia: 120, BaseThk: 10,
		PlateWidth: 80, PlateHeight: 110, PlateThk: 12,
		EyeOuterDia: 70, EyeHoleDia: 30,
		StubDia: 90, StubTipDia: 75, StubLen: 160, PinDia: 35, PinLen: 140,
	},
	"2t": {
		BaseDia: 150, BaseThk: 12,
		PlateWidth: 100, PlateHeight: 135, PlateThk: 15,
		EyeOuterDia: 85, EyeHoleDia: 38,
		StubDia: 110, StubTipDia: 90, StubLen: 190, PinDia: 42, PinLen: 170,
	},
	"5t": {
		BaseDia: 190, BaseThk: 16,
		PlateWidth: 130, PlateHeight: 170, PlateThk: 20,
		EyeOuterDia: 110, EyeHoleDia: 50,
		StubDia: 140, StubTipDia: 115, StubLen: 240, PinDia: 55, PinLen: 210,
	},
	"10t": {
		BaseDia: 240, BaseThk: 20,
		PlateWidth: 165, PlateHeight: 215, PlateThk: 25,
		EyeOuterDia: 140, EyeHoleDia: 62,
		StubDia: 180, StubTipDia: 150, StubLen: 300, PinDia: 70, PinLen: 260,
	},
	"20t": {
		BaseDia: 300, BaseThk: 25,
		PlateWidth: 210, PlateHeight: 270, PlateThk: 32,
		EyeOuterDia: 175, EyeHoleDia: 78,
		StubDia: 230, StubTipDia: 190, StubLen: 380, PinDia: 90, PinLen: 320,
	},
}

// NozzleClassNames returns the defined pipe size classes, smallest first.
func NozzleClassNames() []string {
	return sortedByOuter()
}

func sortedByOuter() []string {
	names := make([]string, 0, len(nozzleClasses))
	for n := range nozzleClasses {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return nozzleClasses[names[i]].OuterDia < nozzleClasses[names[j]].OuterDia
	})
	return names
}

// LugClassNames returns the defined SWL classes, smallest first.
func LugClassNames() []string {
	names := make([]string, 0, len(lugClasses))
	for n := range lugClasses {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return lugClasses[names[i]].BaseDia < lugClasses[names[j]].BaseDia
	})
	return names
}

// ResolveNozzleDims resolves a pipe size class. Unknown classes fall back to
// the smallest defined class so an attachment is always renderable.
func ResolveNozzleDims(class string) NozzleDims {
	if d, ok := nozzleClasses[class]; ok {
		return d
	}
	return nozzleClasses[sortedByOuter()[0]]
}

// Dims resolves the nozzle's dimensions from its size class.
func (n Nozzle) Dims() NozzleDims {
	return ResolveNozzleDims(n.Size)
}

// ResolveLugDims resolves an SWL class, falling back to the smallest class.
func ResolveLugDims(class string) LugDims {
	if d, ok := lugClasses[class]; ok {
		return d
	}
	return lugClasses[LugClassNames()[0]]
}

// Dims resolves the lug's dimensions: per-instance override first, then the
// SWL class table, then the smallest class.
func (l Lug) Dims() LugDims {
	if l.Override != nil {
		return *l.Override
	}
	return ResolveLugDims(l.SWL)
}
