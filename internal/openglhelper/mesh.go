package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-garden/pkg/render"
)

// MaterialColorUniform receives a mesh's flat color before it is drawn.
const MaterialColorUniform = "materialColor"

// floatsPerVertex is position (3), normal (3), texture coordinates (2).
const floatsPerVertex = 8

var _ render.Drawable = (*Mesh)(nil)

// Mesh is GPU geometry plus an optional flat material color.
type Mesh struct {
	vao     *VertexArrayObject
	buffers []*BufferObject

	primitive uint32
	count     int32
	indexed   bool

	color    mgl32.Vec3
	hasColor bool
}

// NewMesh uploads interleaved position/normal/uv vertices and triangle indices.
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := int32(floatsPerVertex * 4)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, stride, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:       vao,
		buffers:   []*BufferObject{vbo, ebo},
		primitive: gl.TRIANGLES,
		count:     int32(len(indices)),
		indexed:   true,
	}
}

// NewPointCloud uploads one point per position with a per-point seed on
// attribute 1.
func NewPointCloud(positions []mgl32.Vec3, seeds []float32) *Mesh {
	flat := make([]float32, 0, len(positions)*3)
	for _, p := range positions {
		flat = append(flat, p[0], p[1], p[2])
	}

	vao := NewVAO()
	vao.Bind()

	posVBO := NewVBO(flat, StaticDraw)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, 0)

	seedVBO := NewVBO(seeds, StaticDraw)
	vao.SetVertexAttribPointer(1, 1, gl.FLOAT, false, 4, 0)

	vao.Unbind()

	return &Mesh{
		vao:       vao,
		buffers:   []*BufferObject{posVBO, seedVBO},
		primitive: gl.POINTS,
		count:     int32(len(positions)),
	}
}

// WithColor sets the material color uploaded on every draw.
func (m *Mesh) WithColor(color mgl32.Vec3) *Mesh {
	m.color = color
	m.hasColor = true
	return m
}

// Draw renders the mesh with p, which must already be in use.
func (m *Mesh) Draw(p render.Program) {
	if m.hasColor {
		p.SetVec3(MaterialColorUniform, m.color)
	}
	m.vao.Bind()
	if m.indexed {
		gl.DrawElements(m.primitive, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(m.primitive, 0, m.count)
	}
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	for _, b := range m.buffers {
		b.Delete()
	}
}

// cubeVertices is a unit cube centered on the origin, four vertices per face.
var cubeVertices = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,

	// Back face
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

	// Top face
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,

	// Bottom face
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

	// Right face
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,

	// Left face
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
}

// cubeIndices winds every face counter-clockwise seen from outside, or from
// inside when inward is set.
func cubeIndices(inward bool) []uint32 {
	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		b := face * 4
		if inward {
			indices = append(indices, b, b+2, b+1, b+2, b, b+3)
		} else {
			indices = append(indices, b, b+1, b+2, b+2, b+3, b)
		}
	}
	return indices
}

// NewCube creates a unit cube.
func NewCube() *Mesh {
	return NewMesh(cubeVertices, cubeIndices(false))
}

// NewPlane creates a unit quad on the XZ plane facing +Y.
func NewPlane() *Mesh {
	vertices := []float32{
		-0.5, 0.0, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
		-0.5, 0.0, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
		0.5, 0.0, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
		0.5, 0.0, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
	}
	return NewMesh(vertices, []uint32{0, 1, 2, 2, 3, 0})
}

// NewSkyboxCube creates a cube spanning -1..1 wound to be seen from inside.
func NewSkyboxCube() *Mesh {
	vertices := make([]float32, len(cubeVertices))
	copy(vertices, cubeVertices)
	for i := 0; i < len(vertices); i += floatsPerVertex {
		vertices[i] *= 2
		vertices[i+1] *= 2
		vertices[i+2] *= 2
	}
	return NewMesh(vertices, cubeIndices(true))
}
