// Package interact implements the pointer-interaction state machine: picking
// an attachment with a prioritized ray test, dragging it across the shell via
// the inverse coordinate mapping, and notifying the host through callbacks.
package interact

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vesselcad/internal/engine/picking"
	"github.com/Faultbox/vesselcad/internal/engine/scene"
	"github.com/Faultbox/vesselcad/internal/logger"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/internal/vessel/surface"
)

// HitPriority is the documented picking precedence when attachments overlap
// on screen: nozzles, then lugs, then saddles, then decals. The small,
// frequently dragged fittings win over the large plates and flat decals
// beneath them. A hit in an earlier collection beats a nearer hit in a
// later one.
var HitPriority = [vessel.NumCollections]vessel.Collection{
	vessel.Nozzles,
	vessel.Lugs,
	vessel.Saddles,
	vessel.Decals,
}

// CameraControl is the orbit-control toggle the manager drives: disabled for
// the duration of a drag so the camera does not fight the pointer.
type CameraControl interface {
	SetEnabled(enabled bool)
}

// Callbacks are the host notifications. Any may be nil.
type Callbacks struct {
	// OnSelected fires when pointer-down picks an attachment. The host
	// must treat selection as global and exclusive across collections.
	OnSelected func(c vessel.Collection, index int)
	// OnCleared fires when pointer-down hits nothing.
	OnCleared func()
	// OnMoved fires for each committed drag step with the new vessel
	// coordinates; the host applies them and rebuilds the scene.
	OnMoved func(c vessel.Collection, index int, pos, angle float64)
	// OnDragEnd fires on pointer-up after a drag, whether or not any
	// move was committed.
	OnDragEnd func()
}

// Manager is the Idle/Dragging pointer state machine. All methods must be
// called from the single interaction thread.
type Manager struct {
	camera CameraControl
	cb     Callbacks

	dragging  bool
	dragCol   vessel.Collection
	dragIndex int

	// Last valid coordinates committed during the current drag; kept
	// when the ray leaves the shell so the attachment never snaps to an
	// undefined location.
	lastPos   float64
	lastAngle float64
	moved     bool
}

// New creates a manager in the Idle state.
func New(camera CameraControl, cb Callbacks) *Manager {
	return &Manager{camera: camera, cb: cb}
}

// Dragging reports the current drag target, if any.
func (m *Manager) Dragging() (c vessel.Collection, index int, ok bool) {
	return m.dragCol, m.dragIndex, m.dragging
}

// PointerDown runs the prioritized pick. Locked collections are skipped
// entirely. On a hit the manager enters Dragging, disables the camera orbit
// and emits OnSelected; otherwise it emits OnCleared and leaves the camera
// alone.
func (m *Manager) PointerDown(r picking.Ray, st *vessel.State, b *scene.Build) {
	if b == nil {
		// Pointer events can arrive before the first assemble; there is
		// nothing to pick yet.
		if m.cb.OnCleared != nil {
			m.cb.OnCleared()
		}
		return
	}
	for _, c := range HitPriority {
		if st.Locks.Get(c) {
			continue
		}
		hit, ok := picking.IntersectNodes(r, b.Attachments[c])
		if !ok {
			continue
		}
		owner := hit.Owner
		if owner == nil {
			// Attachment subtrees are tagged at the root; a hit
			// without an owner would be a build defect.
			logger.Log.Warn("pick hit without owner tag", zap.String("node", hit.Node.Name))
			continue
		}

		m.dragging = true
		m.dragCol = owner.Collection
		m.dragIndex = owner.Index
		m.moved = false
		if pos, angle, ok := st.PosAngle(owner.Collection, owner.Index); ok {
			m.lastPos, m.lastAngle = pos, angle
		}
		if m.camera != nil {
			m.camera.SetEnabled(false)
		}
		if m.cb.OnSelected != nil {
			m.cb.OnSelected(owner.Collection, owner.Index)
		}
		return
	}

	if m.cb.OnCleared != nil {
		m.cb.OnCleared()
	}
}

// PointerMove advances a drag. The ray is cast against the bare shell
// surface only, never against other attachments; the nearest hit is mapped
// back to (pos, angle) and emitted. A miss keeps the last valid coordinates
// and emits nothing.
func (m *Manager) PointerMove(r picking.Ray, st *vessel.State) {
	if !m.dragging {
		return
	}
	if st.Locks.Get(m.dragCol) {
		return
	}

	point, ok := surface.IntersectShell(st, r.Origin, r.Direction)
	if !ok {
		return
	}

	pos, angle := surface.Invert(st, point)
	pos = st.ClampPos(pos)
	m.lastPos, m.lastAngle = pos, angle
	m.moved = true

	if m.cb.OnMoved != nil {
		m.cb.OnMoved(m.dragCol, m.dragIndex, pos, angle)
	}
}

// PointerUp leaves the Dragging state, re-enables the camera orbit and
// emits OnDragEnd.
func (m *Manager) PointerUp() {
	if !m.dragging {
		return
	}
	m.dragging = false
	if m.camera != nil {
		m.camera.SetEnabled(true)
	}
	if m.cb.OnDragEnd != nil {
		m.cb.OnDragEnd()
	}
}

// LastCoords returns the last valid drag coordinates and whether any move
// was committed during the current or most recent drag.
func (m *Manager) LastCoords() (pos, angle float64, moved bool) {
	return m.lastPos, m.lastAngle, m.moved
}
