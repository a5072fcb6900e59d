package quill

// Default geometry for freshly issued draw calls.
const (
	DefaultRadius = 100.0
	DefaultWidth  = 100.0
	DefaultHeight = 100.0
	DefaultStroke = 10.0
)

// CircleStyle holds the rendering parameters of a circle. BorderWidth is a
// fraction of the radius: 0 hides the border, 1 makes the border cover the
// whole circle. Values are not clamped.
type CircleStyle struct {
	FillColor   Color
	BorderColor Color
	BorderWidth float64
}

// DefaultCircleStyle returns a black circle with no border.
func DefaultCircleStyle() CircleStyle {
	return CircleStyle{FillColor: ColorBlack, BorderColor: ColorBlack}
}

// RectangleStyle holds the rendering parameters of a rectangle. BorderWidth
// holds per-axis fractions of the half extents. After Commit the longer axis
// has been rescaled so the border looks uniform on non-square rectangles.
type RectangleStyle struct {
	FillColor   Color
	BorderColor Color
	BorderWidth Vec2
}

// DefaultRectangleStyle returns a black rectangle with no border.
func DefaultRectangleStyle() RectangleStyle {
	return RectangleStyle{FillColor: ColorBlack, BorderColor: ColorBlack}
}

// LineStyle holds the rendering parameters of a line. Stroke is the half
// thickness of the segment. Width and Height are the derived extents of the
// stroked bounding box, filled in on Commit.
type LineStyle struct {
	Color  Color
	Width  float64
	Height float64
	Stroke float64
}

// DefaultLineStyle returns a black line with the default stroke.
func DefaultLineStyle() LineStyle {
	return LineStyle{Color: ColorBlack, Stroke: DefaultStroke}
}
