package quill

import (
	"math"
	"testing"
)

// --- composeAffine ---

func TestComposeAffineIdentity(t *testing.T) {
	got := composeAffine(0, 0, 1, 1, 0, 0, 0)
	assertMatrix(t, "identity", got, identityTransform)
}

func TestComposeAffineTranslation(t *testing.T) {
	got := composeAffine(10, 20, 1, 1, 0, 0, 0)
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestComposeAffineRotation90(t *testing.T) {
	got := composeAffine(0, 0, 1, 1, math.Pi/2, 0, 0)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestComposeAffinePivot(t *testing.T) {
	// Scale 4x6 about the unit center, then move the center to (100, 200).
	got := composeAffine(100, 200, 4, 6, 0, 0.5, 0.5)
	assertMatrix(t, "pivot", got, [6]float64{4, 0, 0, 6, 98, 197})
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	got := multiplyAffine(a, b)
	assertMatrix(t, "translations", got, [6]float64{1, 0, 0, 1, 15, 23})
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "m*inv=id", result, identityTransform)
}

func TestInvertAffineComplex(t *testing.T) {
	// Scale + rotation
	m := composeAffine(7, -3, 2, 1, math.Pi/3, 0, 0)
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "m*inv=id", result, identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	// A zero-width box produces a singular matrix (determinant=0).
	m := BoxTransform(Vec2{10, 20}, 0, 5, 0).Matrix.Affine()
	inv := invertAffine(m)
	assertMatrix(t, "singular→identity", inv, identityTransform)
}

// --- Shape transforms ---

func TestBoxTransformMapsUnitQuad(t *testing.T) {
	tr := BoxTransform(Vec2{3, 4}, 10, 2, 0)
	assertVec(t, "translation", tr.Translation, Vec2{3, 4})
	assertVec(t, "scale", tr.Scale, Vec2{10, 2})
	assertQuad(t, "mapped", applyQuad(tr.Matrix.Affine(), UnitQuad), BoxCorners(Vec2{3, 4}, 10, 2, 0))
}

func TestBoxTransformRotatedMatchesSolve(t *testing.T) {
	for _, rot := range []float64{0, 0.3, math.Pi / 2, math.Pi, -2.5} {
		center := Vec2{-50, 12}
		want := SolveAffineQuad(UnitQuad, BoxCorners(center, 40, 25, rot))
		got := BoxTransform(center, 40, 25, rot)
		assertMatrix(t, "box", got.Matrix.Affine(), want.Affine())
		if got.Rotation != rot {
			t.Errorf("Rotation = %v, want %v", got.Rotation, rot)
		}
	}
}

func TestBoxTransformZeroSize(t *testing.T) {
	tr := BoxTransform(Vec2{5, 5}, 0, 0, 1)
	for _, p := range UnitQuad {
		assertVec(t, "collapsed", tr.Matrix.Apply(p), Vec2{5, 5})
	}
}

func TestCircleTransform(t *testing.T) {
	tr := CircleTransform(Vec2{-1, 2}, 3)
	assertVec(t, "scale", tr.Scale, Vec2{6, 6})
	assertNear(t, "rotation", tr.Rotation, 0)
	// Unit disc center (0.5, 0.5) lands on the circle center.
	assertVec(t, "center", tr.Matrix.Apply(Vec2{0.5, 0.5}), Vec2{-1, 2})
	// Unit disc rim point (1, 0.5) lands one radius to the right.
	assertVec(t, "rim", tr.Matrix.Apply(Vec2{1, 0.5}), Vec2{2, 2})
}

func TestLineTransform(t *testing.T) {
	tr := LineTransform(Vec2{0, 0}, Vec2{10, 0}, 1)
	assertVec(t, "translation", tr.Translation, Vec2{5, 0})
	assertVec(t, "scale", tr.Scale, Vec2{12, 2})
	assertNear(t, "rotation", tr.Rotation, 0)
	assertMatrix(t, "matrix", tr.Matrix.Affine(), [6]float64{12, 0, 0, 2, -1, -1})
}

func TestLineTransformVertical(t *testing.T) {
	tr := LineTransform(Vec2{0, 0}, Vec2{0, 4}, 0.5)
	assertNear(t, "rotation", tr.Rotation, math.Pi/2)
	assertVec(t, "scale", tr.Scale, Vec2{5, 1})
	mapped := applyQuad(tr.Matrix.Affine(), UnitQuad)
	assertQuad(t, "mapped", mapped, LineCorners(Vec2{0, 0}, Vec2{0, 4}, 0.5))
}

func TestLineTransformZeroLengthPanics(t *testing.T) {
	expectPanic(t, "zero length", func() {
		LineTransform(Vec2{1, 1}, Vec2{1, 1}, 2)
	})
}

// --- View ---

func TestViewTransform(t *testing.T) {
	view := ViewTransform(800, 600)
	assertVec(t, "origin", WorldToScreen(view, Vec2{}), Vec2{400, 300})
	assertVec(t, "up", WorldToScreen(view, Vec2{0, 100}), Vec2{400, 200})
	assertVec(t, "right", WorldToScreen(view, Vec2{100, 0}), Vec2{500, 300})
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	view := ViewTransform(1280, 720)
	for _, p := range []Vec2{{0, 0}, {-640, 360}, {123.5, -77.25}} {
		assertVec(t, "roundtrip", ScreenToWorld(view, WorldToScreen(view, p)), p)
	}
}

func TestCompose(t *testing.T) {
	view := ViewTransform(200, 100)
	tr := BoxTransform(Vec2{10, 10}, 4, 4, 0)
	m := Compose(view, tr)
	// Unit (0,0) is the box's bottom-left (8,8), which is screen (108, 42).
	x, y := transformPoint(m, 0, 0)
	assertVec(t, "bottom-left", Vec2{x, y}, Vec2{108, 42})
}

// --- Benchmarks ---

func BenchmarkSolveAffineQuad(b *testing.B) {
	to := BoxCorners(Vec2{100, 200}, 40, 30, 0.5)
	b.ReportAllocs()
	for b.Loop() {
		_ = SolveAffineQuad(UnitQuad, to)
	}
}

func BenchmarkMultiplyAffine(b *testing.B) {
	a := [6]float64{2, 0.1, 0.3, 3, 100, 200}
	c := [6]float64{1.5, 0.2, 0.1, 2.5, 50, 30}
	b.ReportAllocs()
	for b.Loop() {
		_ = multiplyAffine(a, c)
	}
}
