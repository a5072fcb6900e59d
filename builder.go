package quill

// builder identifies one request in a Graphics list by kind and index.
type builder struct {
	g     *Graphics
	kind  Shape
	index int
	gen   uint64
}

// check panics if the request this builder points at is gone (its list was
// drained or reset since the builder was created).
func (b *builder) check(op string) {
	if b.g.generation[b.kind] != b.gen {
		panic("quill: " + b.kind.String() + " builder " + op + " after the frame was drained")
	}
}

func (b *builder) checkOpen(op string, committed bool) {
	if committed {
		panic("quill: " + b.kind.String() + " builder " + op + " after Commit")
	}
}

// CircleBuilder configures a queued circle. Setters may be called in any
// order; Commit seals the request.
type CircleBuilder struct {
	builder
}

func (b *CircleBuilder) circle(op string) *Circle {
	b.check(op)
	c := &b.g.circles[b.index]
	b.checkOpen(op, c.committed)
	return c
}

// WithRadius sets the circle's radius.
func (b *CircleBuilder) WithRadius(radius float64) *CircleBuilder {
	b.circle("WithRadius").Radius = radius
	return b
}

// WithColor sets the circle's fill color.
func (b *CircleBuilder) WithColor(c Color) *CircleBuilder {
	b.circle("WithColor").Style.FillColor = c
	return b
}

// WithBorder adds a border to the circle.
// If width is 0, no border is visible.
// If width is 1, the border covers the entire circle.
func (b *CircleBuilder) WithBorder(c Color, width float64) *CircleBuilder {
	circle := b.circle("WithBorder")
	circle.Style.BorderColor = c
	circle.Style.BorderWidth = width
	return b
}

// Commit seals the circle and returns the registry so further draw calls can
// be chained. Calling Commit again is a no-op.
func (b *CircleBuilder) Commit() *Graphics {
	b.check("Commit")
	b.g.circles[b.index].commit()
	return b.g
}

// Request returns a copy of the circle as currently configured.
func (b *CircleBuilder) Request() Circle {
	b.check("Request")
	return b.g.circles[b.index]
}

// RectangleBuilder configures a queued rectangle. Setters may be called in
// any order; Commit applies the border aspect correction using the final
// width, height and border.
type RectangleBuilder struct {
	builder
}

func (b *RectangleBuilder) rect(op string) *Rectangle {
	b.check(op)
	r := &b.g.rectangles[b.index]
	b.checkOpen(op, r.committed)
	return r
}

// WithColor sets the rectangle's fill color.
func (b *RectangleBuilder) WithColor(c Color) *RectangleBuilder {
	b.rect("WithColor").Style.FillColor = c
	return b
}

// WithBorder adds a border to the rectangle.
// If width is 0, no border is visible.
// If width is 1, the border covers the entire rectangle.
func (b *RectangleBuilder) WithBorder(c Color, width float64) *RectangleBuilder {
	r := b.rect("WithBorder")
	r.Style.BorderColor = c
	r.Style.BorderWidth = Vec2{width, width}
	return b
}

// WithRotation sets the rotation in radians about the rectangle's center.
func (b *RectangleBuilder) WithRotation(rotation float64) *RectangleBuilder {
	b.rect("WithRotation").Rotation = rotation
	return b
}

// WithWidth sets the rectangle's width.
func (b *RectangleBuilder) WithWidth(width float64) *RectangleBuilder {
	b.rect("WithWidth").Width = width
	return b
}

// WithHeight sets the rectangle's height.
func (b *RectangleBuilder) WithHeight(height float64) *RectangleBuilder {
	b.rect("WithHeight").Height = height
	return b
}

// Commit applies the border correction once and returns the registry.
// Calling Commit again is a no-op.
func (b *RectangleBuilder) Commit() *Graphics {
	b.check("Commit")
	b.g.rectangles[b.index].commit()
	return b.g
}

// Request returns a copy of the rectangle as currently configured.
func (b *RectangleBuilder) Request() Rectangle {
	b.check("Request")
	return b.g.rectangles[b.index]
}

// LineBuilder configures a queued line. Commit derives the stroked bounding
// box from the final stroke.
type LineBuilder struct {
	builder
}

func (b *LineBuilder) line(op string) *Line {
	b.check(op)
	l := &b.g.lines[b.index]
	b.checkOpen(op, l.committed)
	return l
}

// WithStroke sets the half thickness of the line.
func (b *LineBuilder) WithStroke(stroke float64) *LineBuilder {
	b.line("WithStroke").Style.Stroke = stroke
	return b
}

// WithColor sets the line's color.
func (b *LineBuilder) WithColor(c Color) *LineBuilder {
	b.line("WithColor").Style.Color = c
	return b
}

// Commit computes the line's bounding box once and returns the registry.
// Calling Commit again is a no-op.
func (b *LineBuilder) Commit() *Graphics {
	b.check("Commit")
	b.g.lines[b.index].commit()
	return b.g
}

// Request returns a copy of the line as currently configured.
func (b *LineBuilder) Request() Line {
	b.check("Request")
	return b.g.lines[b.index]
}
