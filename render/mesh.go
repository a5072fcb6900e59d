package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/quill"
)

// Mesh is a triangle list authored in unit-quad space ([0,1]²). Each entity
// draws a shared mesh through its own transform.
type Mesh struct {
	Vertices []quill.Vec2
	Indices  []uint32
}

// discSegments is the number of fan slices in the unit disc.
const discSegments = 64

var (
	unitQuadMesh = newUnitQuadMesh()
	unitDiscMesh = newUnitDiscMesh(discSegments)
)

// UnitQuadMesh returns the mesh shared by rectangles and lines: two
// triangles over quill.UnitQuad.
func UnitQuadMesh() Mesh { return unitQuadMesh }

// UnitDiscMesh returns the mesh shared by circles: a disc inscribed in the
// unit quad, centered at (0.5, 0.5) with radius 0.5.
func UnitDiscMesh() Mesh { return unitDiscMesh }

func newUnitQuadMesh() Mesh {
	q := quill.UnitQuad
	return Mesh{
		Vertices: q[:],
		Indices:  []uint32{0, 1, 2, 0, 3, 1},
	}
}

// newUnitDiscMesh builds a fan: vertex 0 is the hub.
func newUnitDiscMesh(segments int) Mesh {
	verts := make([]quill.Vec2, segments+1)
	inds := make([]uint32, 0, segments*3)
	verts[0] = quill.Vec2{X: 0.5, Y: 0.5}
	for i := 0; i < segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		sin, cos := math.Sincos(angle)
		verts[i+1] = quill.Vec2{X: 0.5 + 0.5*cos, Y: 0.5 + 0.5*sin}
	}
	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		inds = append(inds, 0, uint32(i+1), uint32(next))
	}
	return Mesh{Vertices: verts, Indices: inds}
}

// insetAffine returns the transform that first shrinks unit space about its
// center by (sx, sy) and then applies m. It places a border's inner fill.
func insetAffine(m [6]float64, sx, sy float64) [6]float64 {
	// Scale about (0.5, 0.5): x' = sx*x + 0.5*(1-sx)
	ox := 0.5 * (1 - sx)
	oy := 0.5 * (1 - sy)
	return [6]float64{
		m[0] * sx,
		m[1] * sx,
		m[2] * sy,
		m[3] * sy,
		m[0]*ox + m[2]*oy + m[4],
		m[1]*ox + m[3]*oy + m[5],
	}
}

// triangleBatch accumulates transformed mesh instances for a single
// DrawTriangles32 call.
type triangleBatch struct {
	verts []ebiten.Vertex
	inds  []uint32
}

// appendMesh transforms mesh by m, tints it with c, and appends it.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Colors are premultiplied here; components are clamped to [0, 1].
func (b *triangleBatch) appendMesh(mesh Mesh, m [6]float64, c quill.Color) {
	a, bb, cc, d, tx, ty := m[0], m[1], m[2], m[3], m[4], m[5]
	ca := float32(clamp01(c.A))
	cr := float32(clamp01(c.R)) * ca
	cg := float32(clamp01(c.G)) * ca
	cb := float32(clamp01(c.B)) * ca

	base := uint32(len(b.verts))
	for _, p := range mesh.Vertices {
		b.verts = append(b.verts, ebiten.Vertex{
			DstX: float32(a*p.X + cc*p.Y + tx),
			DstY: float32(bb*p.X + d*p.Y + ty),
			// Untextured: map to center of white pixel (0.5, 0.5)
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for _, i := range mesh.Indices {
		b.inds = append(b.inds, base+i)
	}
}

func (b *triangleBatch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

func (b *triangleBatch) empty() bool {
	return len(b.inds) == 0
}

// flush submits the accumulated triangles and clears the batch.
func (b *triangleBatch) flush(target *ebiten.Image) {
	if b.empty() {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	target.DrawTriangles32(b.verts, b.inds, ensureWhitePixel(), &op)
	b.reset()
}

// --- White pixel singleton (rendering is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
