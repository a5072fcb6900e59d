package render

import (
	"math"
	"testing"

	"github.com/phanxgames/quill"
)

const epsilon = 1e-6

func near(a, b float64) bool { return math.Abs(a-b) <= epsilon }

// triangleArea returns the signed area of the triangle (a, b, c).
func triangleArea(a, b, c quill.Vec2) float64 {
	return 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
}

func meshArea(m Mesh) float64 {
	var total float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		total += math.Abs(triangleArea(a, b, c))
	}
	return total
}

func TestUnitQuadMesh(t *testing.T) {
	m := UnitQuadMesh()
	if len(m.Vertices) != 4 {
		t.Fatalf("vertices = %d, want 4", len(m.Vertices))
	}
	for i, v := range m.Vertices {
		if v != quill.UnitQuad[i] {
			t.Errorf("vertex %d = %v, want %v", i, v, quill.UnitQuad[i])
		}
	}
	want := []uint32{0, 1, 2, 0, 3, 1}
	if len(m.Indices) != len(want) {
		t.Fatalf("indices = %v, want %v", m.Indices, want)
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Errorf("indices = %v, want %v", m.Indices, want)
			break
		}
	}
	if a := meshArea(m); !near(a, 1) {
		t.Errorf("area = %v, want 1", a)
	}
}

func TestUnitDiscMesh(t *testing.T) {
	m := UnitDiscMesh()
	if len(m.Vertices) != discSegments+1 {
		t.Fatalf("vertices = %d, want %d", len(m.Vertices), discSegments+1)
	}
	if len(m.Indices) != discSegments*3 {
		t.Fatalf("indices = %d, want %d", len(m.Indices), discSegments*3)
	}
	hub := quill.Vec2{X: 0.5, Y: 0.5}
	if m.Vertices[0] != hub {
		t.Errorf("hub = %v, want %v", m.Vertices[0], hub)
	}
	for i, v := range m.Vertices[1:] {
		if d := v.Sub(hub).Len(); !near(d, 0.5) {
			t.Errorf("rim vertex %d at distance %v, want 0.5", i+1, d)
		}
	}
	// A 64-gon inscribed in a circle of radius 0.5 covers slightly less
	// than π/4.
	area := meshArea(m)
	if area > math.Pi/4 || area < math.Pi/4*0.99 {
		t.Errorf("area = %v, want just under %v", area, math.Pi/4)
	}
}

func TestInsetAffineKeepsCenter(t *testing.T) {
	m := [6]float64{40, 0, 0, 20, 100, 50} // 40x20 box at (100,50)
	inset := insetAffine(m, 0.5, 0.25)

	cx := inset[0]*0.5 + inset[2]*0.5 + inset[4]
	cy := inset[1]*0.5 + inset[3]*0.5 + inset[5]
	if !near(cx, 120) || !near(cy, 60) {
		t.Errorf("center = (%v, %v), want (120, 60)", cx, cy)
	}
	// The inset corner (0,0) lands a quarter of the width and 3/8 of the
	// height in from the outer corner.
	if !near(inset[4], 110) || !near(inset[5], 57.5) {
		t.Errorf("origin = (%v, %v), want (110, 57.5)", inset[4], inset[5])
	}
}

func TestInsetAffineIdentityScale(t *testing.T) {
	m := [6]float64{3, 1, -1, 2, 5, 6}
	if got := insetAffine(m, 1, 1); got != m {
		t.Errorf("insetAffine(m, 1, 1) = %v, want %v", got, m)
	}
}

func TestAppendMeshTransformsVertices(t *testing.T) {
	var b triangleBatch
	m := [6]float64{10, 0, 0, 20, 5, 7}
	b.appendMesh(UnitQuadMesh(), m, quill.ColorWhite)

	if len(b.verts) != 4 || len(b.inds) != 6 {
		t.Fatalf("batch = %d verts %d inds, want 4/6", len(b.verts), len(b.inds))
	}
	want := [][2]float32{{5, 7}, {15, 27}, {5, 27}, {15, 7}}
	for i, v := range b.verts {
		if v.DstX != want[i][0] || v.DstY != want[i][1] {
			t.Errorf("vertex %d = (%v, %v), want %v", i, v.DstX, v.DstY, want[i])
		}
		if v.SrcX != 0.5 || v.SrcY != 0.5 {
			t.Errorf("vertex %d src = (%v, %v), want white pixel center", i, v.SrcX, v.SrcY)
		}
	}
}

func TestAppendMeshOffsetsIndices(t *testing.T) {
	var b triangleBatch
	b.appendMesh(UnitQuadMesh(), [6]float64{1, 0, 0, 1, 0, 0}, quill.ColorWhite)
	b.appendMesh(UnitQuadMesh(), [6]float64{1, 0, 0, 1, 0, 0}, quill.ColorWhite)

	want := []uint32{0, 1, 2, 0, 3, 1, 4, 5, 6, 4, 7, 5}
	for i := range want {
		if b.inds[i] != want[i] {
			t.Fatalf("indices = %v, want %v", b.inds, want)
		}
	}
}

func TestAppendMeshPremultipliesColor(t *testing.T) {
	var b triangleBatch
	b.appendMesh(UnitQuadMesh(), [6]float64{1, 0, 0, 1, 0, 0}, quill.Color{R: 1, G: 0.5, B: 2, A: 0.5})

	v := b.verts[0]
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0.5 || v.ColorA != 0.5 {
		t.Errorf("color = (%v, %v, %v, %v), want (0.5, 0.25, 0.5, 0.5)",
			v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestTriangleBatchReset(t *testing.T) {
	var b triangleBatch
	if !b.empty() {
		t.Fatal("zero batch should be empty")
	}
	b.appendMesh(UnitDiscMesh(), [6]float64{1, 0, 0, 1, 0, 0}, quill.ColorRed)
	if b.empty() {
		t.Fatal("batch should not be empty after append")
	}
	b.reset()
	if !b.empty() || len(b.verts) != 0 {
		t.Errorf("batch not cleared: %d verts %d inds", len(b.verts), len(b.inds))
	}
}

func BenchmarkAppendDisc(b *testing.B) {
	var batch triangleBatch
	m := [6]float64{50, 0, 0, 50, 100, 100}
	b.ReportAllocs()
	for b.Loop() {
		batch.reset()
		for i := 0; i < 100; i++ {
			batch.appendMesh(unitDiscMesh, m, quill.ColorBlue)
		}
	}
}
