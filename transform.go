package quill

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is the placement of a unit mesh for one entity. Translation,
// Scale and Rotation describe the shape as the user drew it; Matrix is the
// resolved transform that maps UnitQuad onto the shape's bounding box.
type Transform struct {
	Translation Vec2
	Scale       Vec2
	Rotation    float64
	Matrix      Mat4
}

// BoxTransform returns the transform placing the unit quad as a
// width x height box centered on center and rotated by rotation radians.
// Zero sizes are allowed; the resulting matrix collapses the mesh.
func BoxTransform(center Vec2, width, height, rotation float64) Transform {
	return Transform{
		Translation: center,
		Scale:       Vec2{width, height},
		Rotation:    rotation,
		Matrix:      mat4FromAffine(composeAffine(center.X, center.Y, width, height, rotation, 0.5, 0.5)),
	}
}

// CircleTransform returns the transform placing the unit quad as the
// bounding square of a circle.
func CircleTransform(center Vec2, radius float64) Transform {
	return BoxTransform(center, radius*2, radius*2, 0)
}

// LineTransform returns the transform placing the unit quad over a segment
// stroked with the given half-width. Panics on zero-length segments, which
// have no direction.
func LineTransform(start, end Vec2, stroke float64) Transform {
	d := end.Sub(start)
	return Transform{
		Translation: start.Add(end).Scale(0.5),
		Scale:       Vec2{d.Len() + 2*stroke, 2 * stroke},
		Rotation:    math.Atan2(d.Y, d.X),
		Matrix:      SolveAffineQuad(UnitQuad, LineCorners(start, end, stroke)),
	}
}

// composeAffine computes an affine matrix from placement properties.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-px, -py) -> Scale -> Rotate -> Translate(x, y)
func composeAffine(x, y, sx, sy, rotation, px, py float64) [6]float64 {
	sin, cos := math.Sincos(rotation)

	// After Scale * Translate(-pivot):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	preTx := -px * sx
	preTy := -py * sy

	// After Rotate and Translate(x, y):
	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + x,
		sin*preTx + cos*preTy + y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ViewTransform returns the affine matrix mapping world space (origin at the
// screen center, Y up) to screen pixels (origin top-left, Y down) for a
// screen of the given size.
func ViewTransform(screenW, screenH float64) [6]float64 {
	return [6]float64{1, 0, 0, -1, screenW / 2, screenH / 2}
}

// WorldToScreen maps a world-space point through view.
func WorldToScreen(view [6]float64, p Vec2) Vec2 {
	x, y := transformPoint(view, p.X, p.Y)
	return Vec2{x, y}
}

// ScreenToWorld maps a screen-space point back through the inverse of view.
func ScreenToWorld(view [6]float64, p Vec2) Vec2 {
	x, y := transformPoint(invertAffine(view), p.X, p.Y)
	return Vec2{x, y}
}

// Compose returns the transform equivalent to applying t then outer.
func Compose(outer [6]float64, t Transform) [6]float64 {
	return multiplyAffine(outer, t.Matrix.Affine())
}
