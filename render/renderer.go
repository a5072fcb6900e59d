// Package render submits the shape entities reconciled by quill to an
// Ebitengine screen. It is the submit phase of a quill frame.
package render

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/quill"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Stats reports the work done by the last Draw call.
type Stats struct {
	Circles    int
	Rectangles int
	Lines      int
	Vertices   int
	Submit     time.Duration
}

// Renderer draws every visible shape entity of a Donburi world with the
// shared unit meshes. Rectangles draw first, then circles, then lines;
// within a kind entities draw in storage order.
type Renderer struct {
	world donburi.World

	rectangles *donburi.Query
	circles    *donburi.Query
	lines      *donburi.Query

	batch triangleBatch
	stats Stats

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewRenderer creates a renderer over world.
func NewRenderer(world donburi.World) *Renderer {
	return &Renderer{
		world: world,
		rectangles: donburi.NewQuery(filter.Contains(
			quill.RectangleStyleComponent, quill.VisibilityComponent, quill.TransformComponent)),
		circles: donburi.NewQuery(filter.Contains(
			quill.CircleStyleComponent, quill.VisibilityComponent, quill.TransformComponent)),
		lines: donburi.NewQuery(filter.Contains(
			quill.LineStyleComponent, quill.VisibilityComponent, quill.TransformComponent)),
		ScreenshotDir: "screenshots",
	}
}

// Draw renders all visible entities onto screen using a world space with
// its origin at the screen center and Y pointing up.
func (r *Renderer) Draw(screen *ebiten.Image) {
	t0 := time.Now()
	b := screen.Bounds()
	view := quill.ViewTransform(float64(b.Dx()), float64(b.Dy()))

	r.stats = Stats{}
	r.batch.reset()
	r.collect(view)
	r.stats.Vertices = len(r.batch.verts)
	r.batch.flush(screen)
	r.stats.Submit = time.Since(t0)

	r.flushScreenshots(screen)
}

// collect appends every visible entity to the batch.
func (r *Renderer) collect(view [6]float64) {
	r.rectangles.Each(r.world, func(entry *donburi.Entry) {
		if !quill.VisibilityComponent.Get(entry).Visible {
			return
		}
		m := quill.Compose(view, *quill.TransformComponent.Get(entry))
		appendRectangle(&r.batch, m, *quill.RectangleStyleComponent.Get(entry))
		r.stats.Rectangles++
	})
	r.circles.Each(r.world, func(entry *donburi.Entry) {
		if !quill.VisibilityComponent.Get(entry).Visible {
			return
		}
		m := quill.Compose(view, *quill.TransformComponent.Get(entry))
		appendCircle(&r.batch, m, *quill.CircleStyleComponent.Get(entry))
		r.stats.Circles++
	})
	r.lines.Each(r.world, func(entry *donburi.Entry) {
		if !quill.VisibilityComponent.Get(entry).Visible {
			return
		}
		m := quill.Compose(view, *quill.TransformComponent.Get(entry))
		appendLine(&r.batch, m, *quill.LineStyleComponent.Get(entry))
		r.stats.Lines++
	})
}

// appendRectangle draws the border as the full quad and the fill as the
// quad inset by the border fractions.
func appendRectangle(b *triangleBatch, m [6]float64, s quill.RectangleStyle) {
	if s.BorderWidth.X == 0 && s.BorderWidth.Y == 0 {
		b.appendMesh(unitQuadMesh, m, s.FillColor)
		return
	}
	b.appendMesh(unitQuadMesh, m, s.BorderColor)
	b.appendMesh(unitQuadMesh, insetAffine(m, 1-s.BorderWidth.X, 1-s.BorderWidth.Y), s.FillColor)
}

// appendCircle draws the border as the full disc and the fill as the disc
// shrunk by the border fraction of the radius.
func appendCircle(b *triangleBatch, m [6]float64, s quill.CircleStyle) {
	if s.BorderWidth == 0 {
		b.appendMesh(unitDiscMesh, m, s.FillColor)
		return
	}
	b.appendMesh(unitDiscMesh, m, s.BorderColor)
	inner := 1 - s.BorderWidth
	b.appendMesh(unitDiscMesh, insetAffine(m, inner, inner), s.FillColor)
}

func appendLine(b *triangleBatch, m [6]float64, s quill.LineStyle) {
	b.appendMesh(unitQuadMesh, m, s.Color)
}

// Stats returns the stats of the last Draw call.
func (r *Renderer) Stats() Stats {
	return r.stats
}
