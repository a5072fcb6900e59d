package quill

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Visibility toggles whether an entity is submitted for rendering. Pool
// entities that are not needed in a frame are hidden rather than removed.
type Visibility struct {
	Visible bool
}

// Component types attached to every shape entity. Each entity carries
// exactly one of the style components, matching its ShapeComponent value.
var (
	ShapeComponent          = donburi.NewComponentType[Shape]()
	VisibilityComponent     = donburi.NewComponentType[Visibility]()
	TransformComponent      = donburi.NewComponentType[Transform]()
	CircleStyleComponent    = donburi.NewComponentType[CircleStyle]()
	RectangleStyleComponent = donburi.NewComponentType[RectangleStyle]()
	LineStyleComponent      = donburi.NewComponentType[LineStyle]()
)

// ReconcileEventType is the Donburi event type published once per shape kind
// per frame after the reconcile pass. Subscribe to it to observe pool growth
// and per-frame counts; events are delivered at the end of Plugin.Update.
var ReconcileEventType = events.NewEventType[ReconcileStats]()

// EntityStore is the host side of the reconciler: it creates persistent
// entities and mutates them in place. Implementations never destroy
// entities handed out by Spawn.
type EntityStore[S any] interface {
	// Spawn creates a visible entity with the given style and transform.
	Spawn(kind Shape, style S, t Transform) donburi.Entity
	// Show marks e visible and overwrites its style and transform.
	Show(e donburi.Entity, style S, t Transform)
	// Hide marks e invisible and leaves its other components untouched.
	Hide(e donburi.Entity)
}

type worldStore[S any] struct {
	world donburi.World
	style *donburi.ComponentType[S]
}

// NewWorldStore creates an EntityStore backed by a Donburi world. Entities
// get ShapeComponent, VisibilityComponent, TransformComponent and the given
// style component.
func NewWorldStore[S any](world donburi.World, style *donburi.ComponentType[S]) EntityStore[S] {
	return &worldStore[S]{world: world, style: style}
}

func (s *worldStore[S]) Spawn(kind Shape, style S, t Transform) donburi.Entity {
	e := s.world.Create(ShapeComponent, VisibilityComponent, TransformComponent, s.style)
	entry := s.world.Entry(e)
	ShapeComponent.SetValue(entry, kind)
	VisibilityComponent.SetValue(entry, Visibility{Visible: true})
	TransformComponent.SetValue(entry, t)
	s.style.SetValue(entry, style)
	return e
}

func (s *worldStore[S]) Show(e donburi.Entity, style S, t Transform) {
	entry := s.world.Entry(e)
	VisibilityComponent.SetValue(entry, Visibility{Visible: true})
	TransformComponent.SetValue(entry, t)
	s.style.SetValue(entry, style)
}

func (s *worldStore[S]) Hide(e donburi.Entity) {
	VisibilityComponent.Get(s.world.Entry(e)).Visible = false
}
