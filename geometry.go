package quill

import "math"

// Epsilon is the tolerance used by the affine solve's consistency checks.
const Epsilon = 1e-9

// Quad is an ordered set of four corner points. Every quad produced by this
// package uses the same winding as UnitQuad: bottom-left, top-right,
// top-left, bottom-right.
type Quad [4]Vec2

// UnitQuad is the reference quad shared by all shape kinds. The renderer's
// unit meshes are authored in this space.
var UnitQuad = Quad{{0, 0}, {1, 1}, {0, 1}, {1, 0}}

// Mat4 is a column-major 4x4 matrix: m[col][row].
type Mat4 [4][4]float64

// Identity4 is the 4x4 identity matrix.
var Identity4 = Mat4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}}

// Affine returns the 2D part of m in [a, b, c, d, tx, ty] layout:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (m Mat4) Affine() [6]float64 {
	return [6]float64{m[0][0], m[0][1], m[1][0], m[1][1], m[3][0], m[3][1]}
}

// Apply transforms the point p (z = 0, w = 1) by m and returns its X and Y.
func (m Mat4) Apply(p Vec2) Vec2 {
	x, y := transformPoint(m.Affine(), p.X, p.Y)
	return Vec2{x, y}
}

// mat4FromAffine embeds a 2D affine matrix into a 4x4 transform. The Z axis
// is zeroed so the unit mesh stays flat on the XY plane.
func mat4FromAffine(m [6]float64) Mat4 {
	return Mat4{
		{m[0], m[1], 0, 0},
		{m[2], m[3], 0, 0},
		{0, 0, 0, 0},
		{m[4], m[5], 0, 1},
	}
}

// mat3 is a column-major 3x3 matrix: m[col][row].
type mat3 [3][3]float64

// homogeneousCols builds a matrix whose columns are (x, y, 1) for the first
// three points of q.
func homogeneousCols(q Quad) mat3 {
	return mat3{
		{q[0].X, q[0].Y, 1},
		{q[1].X, q[1].Y, 1},
		{q[2].X, q[2].Y, 1},
	}
}

// mul returns l · r.
func (l mat3) mul(r mat3) mat3 {
	var m mat3
	for i := range m {
		for j := range m {
			for k := range m {
				m[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	return m
}

// apply returns m · v.
func (m mat3) apply(v [3]float64) [3]float64 {
	var out [3]float64
	for c := range m {
		for r := range m {
			out[r] += m[c][r] * v[c]
		}
	}
	return out
}

// invert returns the inverse of n. ok is false when n is singular.
func (n mat3) invert() (m mat3, ok bool) {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	det := n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2
	if math.Abs(det) < 1e-12 {
		return mat3{}, false
	}
	idet := 1 / det
	m[0][0] = s0 * idet
	m[0][1] = -(n[0][1]*n[2][2] - n[0][2]*n[2][1]) * idet
	m[0][2] = (n[0][1]*n[1][2] - n[0][2]*n[1][1]) * idet
	m[1][0] = -s1 * idet
	m[1][1] = (n[0][0]*n[2][2] - n[0][2]*n[2][0]) * idet
	m[1][2] = -(n[0][0]*n[1][2] - n[0][2]*n[1][0]) * idet
	m[2][0] = s2 * idet
	m[2][1] = -(n[0][0]*n[2][1] - n[0][1]*n[2][0]) * idet
	m[2][2] = (n[0][0]*n[1][1] - n[0][1]*n[1][0]) * idet
	return m, true
}

// SolveAffineQuad returns the transform M with M·from[i] = to[i] for i in
// 0..2. The fourth pair is not part of the solve; it is checked against the
// result.
//
// Panics if the first three from points are collinear, or if the solved
// matrix fails either consistency check (homogeneous scale of 1, fourth
// point reproduced within Epsilon). Both indicate a caller bug.
func SolveAffineQuad(from, to Quad) Mat4 {
	// To = M · From  =>  M = To · From⁻¹
	fromInv, ok := homogeneousCols(from).invert()
	if !ok {
		panic("quill: affine solve: reference points are collinear")
	}
	m := homogeneousCols(to).mul(fromInv)

	if math.Abs(m[2][2]-1) > Epsilon {
		panic("quill: affine solve: homogeneous scale is not 1")
	}

	got := m.apply([3]float64{from[3].X, from[3].Y, 1})
	dx := got[0] - to[3].X
	dy := got[1] - to[3].Y
	dw := got[2] - 1
	if dx*dx+dy*dy+dw*dw > Epsilon {
		panic("quill: affine solve: fourth corner is inconsistent with the first three")
	}

	// m:
	// a c t
	// b d p
	// 0 0 1
	return mat4FromAffine([6]float64{m[0][0], m[0][1], m[1][0], m[1][1], m[2][0], m[2][1]})
}

// ccw rotates v by 90° counter-clockwise.
func ccw(v Vec2) Vec2 { return Vec2{-v.Y, v.X} }

// cw rotates v by 90° clockwise.
func cw(v Vec2) Vec2 { return Vec2{v.Y, -v.X} }

// LineCorners returns the corners of the rectangle covering a segment from
// start to end stroked with the given half-width. The segment is extended by
// stroke past each endpoint to cover the caps.
//
//	c2   X                        X   c1
//	     |                        |
//	a ---start-dir->--- ... -----end--- b
//	     |                        |
//	c0   X                        X   c3
//
// Panics when start == end.
func LineCorners(start, end Vec2, stroke float64) Quad {
	if start == end {
		panic("quill: line has zero length")
	}
	dir := end.Sub(start).Normalize().Scale(stroke)

	a := start.Sub(dir)
	b := end.Add(dir)
	return Quad{
		a.Add(cw(dir)),
		b.Add(ccw(dir)),
		a.Add(ccw(dir)),
		b.Add(cw(dir)),
	}
}

// BoxCorners returns the corners of a width x height box centered on center
// and rotated by rotation radians about it.
func BoxCorners(center Vec2, width, height, rotation float64) Quad {
	hw, hh := width/2, height/2
	local := Quad{{-hw, -hh}, {hw, hh}, {-hw, hh}, {hw, -hh}}
	var q Quad
	for i, p := range local {
		q[i] = center.Add(p.Rotate(rotation))
	}
	return q
}
