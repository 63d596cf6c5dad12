package interact

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vesselcad/internal/engine/picking"
	"github.com/Faultbox/vesselcad/internal/logger"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/internal/vessel/surface"
)

// dropPoint maps a library-drop ray to vessel coordinates on the bare shell.
// A ray that misses the vessel entirely drops nothing.
func dropPoint(st *vessel.State, r picking.Ray) (pos, angle float64, ok bool) {
	point, ok := surface.IntersectShell(st, r.Origin, r.Direction)
	if !ok {
		return 0, 0, false
	}
	pos, angle = surface.Invert(st, point)
	return st.ClampPos(pos), angle, true
}

// DropNozzle creates a nozzle of the given pipe size at the shell point under
// the drop ray. It returns the new index, or ok=false when the ray misses.
func DropNozzle(st *vessel.State, size string, r picking.Ray) (index int, ok bool) {
	pos, angle, ok := dropPoint(st, r)
	if !ok {
		return 0, false
	}
	index = st.AddNozzle(size, pos, angle)
	logger.Log.Info("nozzle dropped",
		zap.String("size", size), zap.Float64("pos", pos), zap.Float64("angle", angle))
	return index, true
}

// DropLug creates a lifting lug of the given style and rated load at the
// shell point under the drop ray.
func DropLug(st *vessel.State, style vessel.LugStyle, swl string, r picking.Ray) (index int, ok bool) {
	pos, angle, ok := dropPoint(st, r)
	if !ok {
		return 0, false
	}
	index = st.AddLug(style, swl, pos, angle)
	logger.Log.Info("lug dropped",
		zap.String("swl", swl), zap.Float64("pos", pos), zap.Float64("angle", angle))
	return index, true
}

// DropSaddle creates a saddle at the axial position under the drop ray.
// Saddles sit at the fixed bottom angle regardless of where the ray lands.
func DropSaddle(st *vessel.State, r picking.Ray) (index int, ok bool) {
	pos, _, ok := dropPoint(st, r)
	if !ok {
		return 0, false
	}
	return st.AddSaddle(pos), true
}

// DropDecal creates a texture decal at the shell point under the drop ray.
func DropDecal(st *vessel.State, image string, scale float64, r picking.Ray) (index int, ok bool) {
	pos, angle, ok := dropPoint(st, r)
	if !ok {
		return 0, false
	}
	return st.AddDecal(image, pos, angle, scale), true
}
