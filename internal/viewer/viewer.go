// Package viewer implements the interactive vessel viewer: the window and
// render loop, orbit camera, and pointer-driven attachment editing.
package viewer

import (
	"fmt"
	"path/filepath"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/vesselcad/internal/config"
	"github.com/Faultbox/vesselcad/internal/engine/camera"
	"github.com/Faultbox/vesselcad/internal/engine/input"
	"github.com/Faultbox/vesselcad/internal/engine/picking"
	"github.com/Faultbox/vesselcad/internal/engine/renderer"
	"github.com/Faultbox/vesselcad/internal/engine/scene"
	"github.com/Faultbox/vesselcad/internal/engine/snapshot"
	"github.com/Faultbox/vesselcad/internal/engine/window"
	"github.com/Faultbox/vesselcad/internal/interact"
	"github.com/Faultbox/vesselcad/internal/logger"
	"github.com/Faultbox/vesselcad/internal/vessel"
	"github.com/Faultbox/vesselcad/pkg/math"
)

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	interact *interact.Manager
	snaps    *snapshot.Capture

	state     *vessel.State
	selection vessel.Selection
	build     *scene.Build
	dirty     bool // model changed since last assemble

	docPath string
	unsaved bool

	mouseX, mouseY int
	leftHeld       bool
	middleHeld     bool
}

// New creates the viewer. docPath may name an existing document to open; an
// empty path starts with a fresh vessel.
func New(cfg *config.Config, docPath string) (*App, error) {
	a := &App{
		cfg:       cfg,
		selection: vessel.NoSelection,
		docPath:   docPath,
		dirty:     true,
		snaps:     snapshot.NewCapture(cfg.Paths.SnapshotDir, "vessel"),
	}

	if docPath != "" {
		st, err := vessel.LoadFile(docPath)
		if err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
		a.state = st
		logger.Log.Info("document opened", zap.String("path", docPath))
	} else {
		a.state = vessel.New()
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      a.title(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:    dw,
		Height:   dh,
		DecalDir: cfg.Paths.DecalDir,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	a.camera = camera.NewOrbitCamera()
	a.camera.DragSensitivity = cfg.Camera.DragSensitivity
	a.camera.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	a.frameVessel()

	a.interact = interact.New(a.camera, interact.Callbacks{
		OnSelected: a.onSelected,
		OnCleared:  a.onCleared,
		OnMoved:    a.onMoved,
		OnDragEnd:  a.onDragEnd,
	})

	return a, nil
}

// Run starts the main loop and blocks until the viewer quits.
func (a *App) Run() error {
	a.running = true
	logger.Log.Info("starting viewer loop")

	// Assemble before the first event poll so a pointer press queued during
	// startup has a scene to pick against.
	a.rebuild()

	for a.running {
		if a.input.Update() {
			break
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		if a.dirty {
			a.rebuild()
		}

		view := a.camera.ViewMatrix()
		proj := a.camera.ProjectionMatrix(a.renderer.Aspect())

		a.renderer.Begin()
		a.renderer.DrawBuild(a.build, view, proj)
		a.window.SwapBuffers()
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Log.Info("closing viewer")
	if a.renderer != nil {
		a.renderer.ReleaseBuild(a.build)
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		dw, dh := a.window.DrawableSize()
		a.renderer.Resize(dw, dh)

	case input.EventKeyDown:
		a.handleKey(ev.Key)

	case input.EventMouseDown:
		a.mouseX, a.mouseY = ev.MouseX, ev.MouseY
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			a.leftHeld = true
			a.interact.PointerDown(a.mouseRay(ev.MouseX, ev.MouseY), a.state, a.build)
		case sdl.BUTTON_MIDDLE:
			a.middleHeld = true
		}

	case input.EventMouseUp:
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			a.leftHeld = false
			a.interact.PointerUp()
		case sdl.BUTTON_MIDDLE:
			a.middleHeld = false
		}

	case input.EventMouseMove:
		a.mouseX, a.mouseY = ev.MouseX, ev.MouseY
		if _, _, dragging := a.interact.Dragging(); dragging {
			a.interact.PointerMove(a.mouseRay(ev.MouseX, ev.MouseY), a.state)
		} else if a.leftHeld {
			a.camera.HandleDrag(float64(ev.DeltaX), float64(ev.DeltaY))
		} else if a.middleHeld {
			a.camera.HandlePan(float64(-ev.DeltaX), float64(ev.DeltaY))
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(float64(ev.WheelY))

	case input.EventDropFile:
		a.dropFile(ev.File)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_S:
		a.save()
	case sdl.SCANCODE_F:
		a.frameVessel()
	case sdl.SCANCODE_P:
		a.snapshotFrame()
	case sdl.SCANCODE_DELETE, sdl.SCANCODE_BACKSPACE:
		a.removeSelected()
	case sdl.SCANCODE_O:
		a.toggleOrientation()
	case sdl.SCANCODE_1:
		a.toggleLock(vessel.Nozzles)
	case sdl.SCANCODE_2:
		a.toggleLock(vessel.Lugs)
	case sdl.SCANCODE_3:
		a.toggleLock(vessel.Saddles)
	case sdl.SCANCODE_4:
		a.toggleLock(vessel.Decals)
	}
}

func (a *App) toggleOrientation() {
	if a.state.Orientation == vessel.Vertical {
		a.state.Orientation = vessel.Horizontal
	} else {
		a.state.Orientation = vessel.Vertical
	}
	a.markEdited()
	a.frameVessel()
}

func (a *App) toggleLock(c vessel.Collection) {
	locked := !a.state.Locks.Get(c)
	a.state.Locks.Set(c, locked)
	logger.Log.Info("collection lock toggled",
		zap.Stringer("collection", c), zap.Bool("locked", locked))
	a.markEdited()
}

// mouseRay unprojects the pointer into a world ray through the scene.
func (a *App) mouseRay(x, y int) picking.Ray {
	w, h := a.window.GetSize()
	view := a.camera.ViewMatrix()
	proj := a.camera.ProjectionMatrix(a.renderer.Aspect())
	inv := proj.Mul(view).Inverse()
	return picking.ScreenToRay(float64(x), float64(y), float64(w), float64(h), inv)
}

func (a *App) rebuild() {
	old := a.build
	a.build = scene.Assemble(a.state, a.selection)
	a.renderer.ReleaseBuild(old)
	a.dirty = false
}

func (a *App) frameVessel() {
	hd := a.state.HeadDepth()
	r := a.state.Radius()
	ext := (a.state.Length + 2*hd) / 2
	if r > ext {
		ext = r
	}

	// The shell runs from -headDepth to Length+headDepth along its axis,
	// so the midpoint sits halfway along the axis, not at the origin.
	center := math.Vec3{X: a.state.Length / 2}
	if a.state.Orientation == vessel.Vertical {
		center = math.Vec3{Y: a.state.Length / 2}
	}
	a.camera.FitToBounds(
		center.Sub(math.Vec3{X: ext, Y: ext, Z: ext}),
		center.Add(math.Vec3{X: ext, Y: ext, Z: ext}),
	)
}

func (a *App) save() {
	if a.docPath == "" {
		a.docPath = "vessel.json"
	}
	if err := a.state.SaveFile(a.docPath); err != nil {
		logger.Log.Error("save failed", zap.String("path", a.docPath), zap.Error(err))
		return
	}
	a.unsaved = false
	a.window.SetTitle(a.title())
	logger.Log.Info("document saved", zap.String("path", a.docPath))
}

func (a *App) snapshotFrame() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.snaps.FromPixels(pixels, w, h)
	if err != nil {
		logger.Log.Error("snapshot failed", zap.Error(err))
		return
	}
	logger.Log.Info("snapshot saved", zap.String("path", path))
}

func (a *App) removeSelected() {
	if a.selection.Index < 0 {
		return
	}
	if a.state.Remove(a.selection.Collection, a.selection.Index, &a.selection) {
		a.markEdited()
	}
}

// dropFile ingests an image dragged onto the window as a new decal at the
// pointer position.
func (a *App) dropFile(path string) {
	switch filepath.Ext(path) {
	case ".png", ".jpg", ".jpeg", ".webp", ".tga":
	default:
		logger.Log.Warn("ignoring dropped file", zap.String("path", path))
		return
	}
	// Some platforms suppress motion events during an OS drag, so the last
	// cached pointer position can be stale. Ask SDL where the drop landed.
	x, y, _ := sdl.GetMouseState()
	if index, ok := interact.DropDecal(a.state, path, 1, a.mouseRay(int(x), int(y))); ok {
		a.selection = vessel.Selection{Collection: vessel.Decals, Index: index}
		a.markEdited()
	}
}

func (a *App) onSelected(c vessel.Collection, index int) {
	sel := vessel.Selection{Collection: c, Index: index}
	if a.selection != sel {
		a.selection = sel
		a.dirty = true
	}
}

func (a *App) onCleared() {
	if a.selection.Index >= 0 {
		a.selection = vessel.NoSelection
		a.dirty = true
	}
}

func (a *App) onMoved(c vessel.Collection, index int, pos, angle float64) {
	if a.state.SetPosAngle(c, index, pos, angle) {
		a.markEdited()
	}
}

func (a *App) onDragEnd() {
	if pos, angle, moved := a.interact.LastCoords(); moved {
		logger.Log.Debug("drag finished",
			zap.Float64("pos", pos), zap.Float64("angle", angle))
	}
}

func (a *App) markEdited() {
	a.dirty = true
	if !a.unsaved {
		a.unsaved = true
		a.window.SetTitle(a.title())
	}
}

func (a *App) title() string {
	name := "untitled"
	if a.docPath != "" {
		name = filepath.Base(a.docPath)
	}
	title := "VesselCAD - " + name
	if a.unsaved {
		title += " *"
	}
	return title
}
