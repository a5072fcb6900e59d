package quill

import (
	"time"

	"github.com/yohamta/donburi"
)

// Plugin owns the per-frame Graphics registry and the three reconcilers, and
// runs the reconcile phase. Call order each frame:
//
//	populate:  user code issues draw calls on Plugin.Graphics()
//	reconcile: Plugin.Update()
//	submit:    a renderer draws the visible entities of Plugin.World()
//
// Plugin is single-threaded; all three phases must run on one goroutine.
type Plugin struct {
	graphics *Graphics
	world    donburi.World

	circles    *Reconciler[Circle, CircleStyle]
	rectangles *Reconciler[Rectangle, RectangleStyle]
	lines      *Reconciler[Line, LineStyle]

	frame uint64
	debug bool
	last  FrameStats
}

// NewPlugin creates a plugin that stores its entities in world. If world is
// nil a fresh Donburi world is created.
func NewPlugin(world donburi.World) *Plugin {
	if world == nil {
		world = donburi.NewWorld()
	}
	p := &Plugin{
		graphics:   NewGraphics(),
		world:      world,
		circles:    newCircleReconciler(world),
		rectangles: newRectangleReconciler(world),
		lines:      newLineReconciler(world),
	}
	ReconcileEventType.Subscribe(world, p.onReconcile)
	return p
}

// Graphics returns the registry that draw calls go into for the current
// frame.
func (p *Plugin) Graphics() *Graphics {
	return p.graphics
}

// World returns the Donburi world holding the shape entities.
func (p *Plugin) World() donburi.World {
	return p.world
}

// Update drains the registry and reconciles each shape kind against its
// pool. It must run exactly once per frame, after all draw calls for the
// frame have been issued and before the frame is rendered.
func (p *Plugin) Update() FrameStats {
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	p.frame++
	stats := FrameStats{
		Frame:      p.frame,
		Circles:    p.circles.Reconcile(p.graphics.drainCircles()),
		Rectangles: p.rectangles.Reconcile(p.graphics.drainRectangles()),
		Lines:      p.lines.Reconcile(p.graphics.drainLines()),
	}

	ReconcileEventType.Publish(p.world, stats.Circles)
	ReconcileEventType.Publish(p.world, stats.Rectangles)
	ReconcileEventType.Publish(p.world, stats.Lines)
	ReconcileEventType.ProcessEvents(p.world)

	if p.debug {
		stats.Duration = time.Since(t0)
		p.debugLog(stats)
	}
	p.last = stats
	return stats
}

func (p *Plugin) onReconcile(_ donburi.World, stats ReconcileStats) {
	logPoolGrowth(stats)
	if p.debug {
		debugCheckPoolSize(stats)
	}
}

// LastFrame returns the stats of the most recent Update.
func (p *Plugin) LastFrame() FrameStats {
	return p.last
}

// PoolSizes returns the number of persistent entities of each kind.
func (p *Plugin) PoolSizes() (circles, rectangles, lines int) {
	return p.circles.Len(), p.rectangles.Len(), p.lines.Len()
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// reconcile timing and counts are logged at debug level and oversized pools
// are reported as warnings. See SetLogger.
func (p *Plugin) SetDebugMode(enabled bool) {
	p.debug = enabled
}
