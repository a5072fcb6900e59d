package quill

// Circle is a pending circle draw request. It lives for one frame.
type Circle struct {
	Style  CircleStyle
	Pos    Vec2
	Radius float64

	committed bool
}

func newCircle(x, y float64) Circle {
	return Circle{
		Style:  DefaultCircleStyle(),
		Pos:    Vec2{x, y},
		Radius: DefaultRadius,
	}
}

// commit has no derived fields to compute; it only seals the request.
func (c *Circle) commit() {
	c.committed = true
}

// Rectangle is a pending rectangle draw request. It lives for one frame.
type Rectangle struct {
	Style    RectangleStyle
	Pos      Vec2
	Width    float64
	Height   float64
	Rotation float64

	committed bool
}

func newRectangle(x, y float64) Rectangle {
	return Rectangle{
		Style:  DefaultRectangleStyle(),
		Pos:    Vec2{x, y},
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// commit corrects the border for the rectangle's aspect ratio. Border
// fractions are relative to each half extent, so the component along the
// longer axis is scaled down by short/long.
func (r *Rectangle) commit() {
	if r.committed {
		return
	}
	r.committed = true
	r.Style.BorderWidth = correctBorder(r.Style.BorderWidth, r.Width, r.Height)
}

func correctBorder(border Vec2, width, height float64) Vec2 {
	if width > height {
		border.X *= height / width
	} else if height > 0 {
		border.Y *= width / height
	}
	return border
}

// Line is a pending line draw request. It lives for one frame.
type Line struct {
	Style LineStyle
	Start Vec2
	End   Vec2

	committed bool
}

func newLine(x1, y1, x2, y2 float64) Line {
	return Line{
		Style: DefaultLineStyle(),
		Start: Vec2{x1, y1},
		End:   Vec2{x2, y2},
	}
}

// commit derives the stroked bounding box extents from the final stroke.
func (l *Line) commit() {
	if l.committed {
		return
	}
	l.committed = true
	length := l.End.Sub(l.Start).Len()
	l.Style.Width = length + 2*l.Style.Stroke
	l.Style.Height = 2 * l.Style.Stroke
}

// Committed reports whether the request's derived fields are final.
func (c Circle) Committed() bool { return c.committed }

// Committed reports whether the request's derived fields are final.
func (r Rectangle) Committed() bool { return r.committed }

// Committed reports whether the request's derived fields are final.
func (l Line) Committed() bool { return l.committed }
