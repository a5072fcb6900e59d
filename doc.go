// Package quill is an immediate-mode 2D drawing layer for [Ebitengine] built
// on a persistent [Donburi] entity world.
//
// User code issues draw calls every frame. Quill turns them into entities
// that live across frames, reusing them in creation order and hiding the
// ones a frame does not need, so a steady scene allocates nothing.
//
// # Quick start
//
// The simplest way to get started is render.Run, which creates a window and
// game loop for you:
//
//	plugin := quill.NewPlugin(nil)
//	render.Run(plugin, quill.DefaultConfig(), func(g *quill.Graphics, dt float64) error {
//		g.FillCircle(0, 0).WithRadius(50).WithColor(quill.ColorRed).Commit()
//		g.DrawLine(-100, -100, 100, 100).WithStroke(2).Commit()
//		return nil
//	})
//
// World space has its origin at the screen center with Y pointing up.
//
// # Frame phases
//
// Each frame runs three phases on one goroutine:
//
//   - populate: draw calls on [Plugin.Graphics] append requests to the
//     frame's [Graphics] registry and return builders.
//   - reconcile: [Plugin.Update] drains the registry and pairs the i-th
//     request of each kind with the i-th entity of that kind's pool.
//   - submit: a renderer draws every visible entity through its
//     [Transform] using a shared unit mesh.
//
// # Builders
//
// [Graphics.FillCircle], [Graphics.FillRectangle] and [Graphics.DrawLine]
// return builders whose setters may be called in any order. Commit computes
// derived values (the rectangle border aspect correction and the line
// bounding box) exactly once and returns the registry for chaining. Update
// commits anything left open. Builders are valid only until the frame is
// drained; using one afterwards panics.
//
// # Geometry
//
// Every shape is drawn by mapping [UnitQuad] onto its bounding box.
// [SolveAffineQuad] recovers that map from four corner correspondences and
// checks that the fourth corner is consistent; [LineCorners] and
// [BoxCorners] produce the target quads.
//
// # Entities
//
// Shape entities carry [ShapeComponent], [VisibilityComponent],
// [TransformComponent] and one style component. Pools never shrink. After
// each reconcile pass a [ReconcileStats] event is published on
// [ReconcileEventType].
//
// # Logging
//
// Quill is silent by default. Pass an [log/slog.Logger] to [SetLogger] to see
// lifecycle messages, and enable [Plugin.SetDebugMode] for per-frame stats.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package quill
