package model

import (
	"github.com/Carmen-Shannon/oxy-grass/common"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
}

// Model defines the interface for a static textured mesh.
// A Model holds CPU-side vertex and index data; the renderer uploads it once and keeps the GPU
// buffers on its own bind group provider.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the mesh vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices returns the triangle indices.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexData returns the vertices packed for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the indices packed for GPU upload.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the bounding sphere radius for this model, measured as
	// the maximum vertex distance from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// The bounding radius is computed from the vertices unless WithBoundingRadius is supplied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if m.boundingRadius == 0 {
		m.boundingRadius = ComputeBoundingRadius(m.vertices)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	buf := make([]byte, 0, len(m.vertices)*20)
	for i := range m.vertices {
		buf = append(buf, m.vertices[i].Marshal()...)
	}
	return buf
}

func (m *model) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
