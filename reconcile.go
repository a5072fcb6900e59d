package quill

import "github.com/yohamta/donburi"

// ReconcileStats reports what one reconcile pass did to its pool.
type ReconcileStats struct {
	Kind     Shape
	Updated  int // pool entities paired with a request, shown and overwritten
	Hidden   int // pool entities left over after the requests ran out
	Created  int // entities spawned for requests beyond the pool size
	PoolSize int // pool size after the pass
}

// Reconciler pairs one kind of draw request with a pool of persistent
// entities. The pool only grows: entities are reused in creation order and
// hidden when a frame has fewer requests than the pool holds.
//
// A Reconciler owns its pool exclusively. It is not safe for concurrent use.
type Reconciler[R any, S any] struct {
	kind  Shape
	store EntityStore[S]
	pool  []donburi.Entity
	build func(R) (S, Transform)
}

// NewReconciler creates a reconciler for one shape kind. build converts a
// request into the style and transform written onto its entity.
func NewReconciler[R any, S any](kind Shape, store EntityStore[S], build func(R) (S, Transform)) *Reconciler[R, S] {
	return &Reconciler[R, S]{kind: kind, store: store, build: build}
}

func newCircleReconciler(world donburi.World) *Reconciler[Circle, CircleStyle] {
	return NewReconciler(ShapeCircle, NewWorldStore(world, CircleStyleComponent), buildCircle)
}

func newRectangleReconciler(world donburi.World) *Reconciler[Rectangle, RectangleStyle] {
	return NewReconciler(ShapeRectangle, NewWorldStore(world, RectangleStyleComponent), buildRectangle)
}

func newLineReconciler(world donburi.World) *Reconciler[Line, LineStyle] {
	return NewReconciler(ShapeLine, NewWorldStore(world, LineStyleComponent), buildLine)
}

func buildCircle(c Circle) (CircleStyle, Transform) {
	return c.Style, CircleTransform(c.Pos, c.Radius)
}

func buildRectangle(r Rectangle) (RectangleStyle, Transform) {
	return r.Style, BoxTransform(r.Pos, r.Width, r.Height, r.Rotation)
}

func buildLine(l Line) (LineStyle, Transform) {
	return l.Style, LineTransform(l.Start, l.End, l.Style.Stroke)
}

// Reconcile applies one frame of requests to the pool in a single pass:
// the i-th request updates the i-th pool entity, leftover entities are
// hidden, and leftover requests spawn new entities appended to the pool.
func (r *Reconciler[R, S]) Reconcile(requests []R) ReconcileStats {
	stats := ReconcileStats{Kind: r.kind}

	paired := min(len(requests), len(r.pool))
	for i := 0; i < paired; i++ {
		style, t := r.build(requests[i])
		r.store.Show(r.pool[i], style, t)
		stats.Updated++
	}

	for _, e := range r.pool[paired:] {
		r.store.Hide(e)
		stats.Hidden++
	}

	for _, req := range requests[paired:] {
		style, t := r.build(req)
		r.pool = append(r.pool, r.store.Spawn(r.kind, style, t))
		stats.Created++
	}

	stats.PoolSize = len(r.pool)
	return stats
}

// Kind returns the shape kind this reconciler manages.
func (r *Reconciler[R, S]) Kind() Shape { return r.kind }

// Len returns the pool size.
func (r *Reconciler[R, S]) Len() int { return len(r.pool) }

// Entities returns the pool in creation order. The returned slice MUST NOT
// be mutated by the caller.
func (r *Reconciler[R, S]) Entities() []donburi.Entity { return r.pool }
