package quill

// Graphics collects the draw requests issued during one frame's update phase.
// It is drained by Plugin.Update, which leaves it empty for the next frame.
//
// Graphics is not safe for concurrent use. Draw calls must come from the
// single goroutine running the frame's update phase.
type Graphics struct {
	circles    []Circle
	rectangles []Rectangle
	lines      []Line

	// generation is bumped each time a list is drained or reset, so a
	// builder from an earlier frame cannot write into this frame's requests.
	generation [3]uint64
}

// NewGraphics creates an empty draw request registry.
func NewGraphics() *Graphics {
	return &Graphics{}
}

// FillCircle queues a circle centered at (x, y) and returns a builder for it.
func (g *Graphics) FillCircle(x, y float64) *CircleBuilder {
	g.circles = append(g.circles, newCircle(x, y))
	return &CircleBuilder{builder{g: g, kind: ShapeCircle, index: len(g.circles) - 1, gen: g.generation[ShapeCircle]}}
}

// FillRectangle queues a rectangle centered at (x, y) and returns a builder
// for it.
func (g *Graphics) FillRectangle(x, y float64) *RectangleBuilder {
	g.rectangles = append(g.rectangles, newRectangle(x, y))
	return &RectangleBuilder{builder{g: g, kind: ShapeRectangle, index: len(g.rectangles) - 1, gen: g.generation[ShapeRectangle]}}
}

// DrawLine queues a line from (x1, y1) to (x2, y2) and returns a builder for
// it.
func (g *Graphics) DrawLine(x1, y1, x2, y2 float64) *LineBuilder {
	g.lines = append(g.lines, newLine(x1, y1, x2, y2))
	return &LineBuilder{builder{g: g, kind: ShapeLine, index: len(g.lines) - 1, gen: g.generation[ShapeLine]}}
}

// Len returns the number of pending requests of each kind.
func (g *Graphics) Len() (circles, rectangles, lines int) {
	return len(g.circles), len(g.rectangles), len(g.lines)
}

// Circles returns the pending circle requests. The returned slice MUST NOT
// be mutated by the caller.
func (g *Graphics) Circles() []Circle { return g.circles }

// Rectangles returns the pending rectangle requests. The returned slice MUST
// NOT be mutated by the caller.
func (g *Graphics) Rectangles() []Rectangle { return g.rectangles }

// Lines returns the pending line requests. The returned slice MUST NOT be
// mutated by the caller.
func (g *Graphics) Lines() []Line { return g.lines }

// Reset drops every pending request without drawing it.
func (g *Graphics) Reset() {
	g.circles = g.circles[:0]
	g.rectangles = g.rectangles[:0]
	g.lines = g.lines[:0]
	for i := range g.generation {
		g.generation[i]++
	}
}

// drainCircles commits any open circle requests and hands the list to the
// caller. The registry keeps a fresh backing array so the returned slice is
// never overwritten by the next frame's draw calls.
func (g *Graphics) drainCircles() []Circle {
	out := g.circles
	for i := range out {
		out[i].commit()
	}
	g.circles = make([]Circle, 0, len(out))
	g.generation[ShapeCircle]++
	return out
}

func (g *Graphics) drainRectangles() []Rectangle {
	out := g.rectangles
	for i := range out {
		out[i].commit()
	}
	g.rectangles = make([]Rectangle, 0, len(out))
	g.generation[ShapeRectangle]++
	return out
}

func (g *Graphics) drainLines() []Line {
	out := g.lines
	for i := range out {
		out[i].commit()
	}
	g.lines = make([]Line, 0, len(out))
	g.generation[ShapeLine]++
	return out
}
