package scene

import (
	"github.com/brunopostle/sdnf-export/pkg/geom"
)

// MeshSource yields the raw geometry of one object: a vertex list,
// face index loops, and bare edge index pairs. Faces and edges index
// into the vertex list.
//
// The exporter depends only on this capability, not on any concrete
// mesh representation, so hosts with their own scene types can feed
// the pipeline directly.
type MeshSource interface {
	Vertices() []geom.Vector3
	Faces() [][]int
	Edges() [][2]int
}

// Modifier is an entry in an object's modifier stack.
type Modifier interface {
	Name() string
}

// ThicknessModifier is a modifier that produces plate thickness, such
// as a solidify modifier. Offset is the normalized face offset in
// [-1, 1]: -1 and +1 mean fully offset to one face, 0 means centered.
type ThicknessModifier interface {
	Modifier
	Thickness() float64
	Offset() float64
}

// Solidify is the standard thickness-producing modifier.
type Solidify struct {
	Thick float64
	Off   float64
}

// Name returns the modifier name.
func (s Solidify) Name() string { return "Solidify" }

// Thickness returns the plate thickness in scene units.
func (s Solidify) Thickness() float64 { return s.Thick }

// Offset returns the normalized face offset.
func (s Solidify) Offset() float64 { return s.Off }

// Object is one exportable scene object.
type Object struct {
	// Name identifies the object in diagnostics. It does not affect
	// member numbering.
	Name string

	// Matrix is the object's world transform, applied before the
	// scene's global scale.
	Matrix geom.Matrix4

	// Mesh is the object's geometry. A nil mesh (missing file, failed
	// conversion) contributes nothing to the export and is not an
	// error.
	Mesh MeshSource

	// Modifiers is the object's modifier stack. The first
	// ThicknessModifier found wins.
	Modifiers []Modifier

	// LoadError records why Mesh is nil when loading was attempted
	// and failed. Informational only.
	LoadError error
}

// FirstThickness returns the first thickness-producing modifier on
// the object, or nil if there is none.
func (o *Object) FirstThickness() ThicknessModifier {
	for _, m := range o.Modifiers {
		if t, ok := m.(ThicknessModifier); ok {
			return t
		}
	}
	return nil
}

// Title holds the caller-supplied fields of the SDNF title packet.
// Empty fields fall back to the writer's placeholders.
type Title struct {
	EngineeringFirm string
	Client          string
	Structure       string
	Issue           string
	DesignCode      string
}

// Scene is one snapshot of exportable objects plus the header
// metadata and unit settings the host resolved for them. It exists
// for the duration of a single export call.
type Scene struct {
	Objects       []*Object
	Title         Title
	LengthUnit    string
	ThicknessUnit string
	Scale         float64
}

// GlobalMatrix returns the scene-wide transform composed from the
// scale factor. Hosts that need an axis conversion can pre-multiply
// their own matrix.
func (s *Scene) GlobalMatrix() geom.Matrix4 {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return geom.UniformScale(scale)
}

// TriMesh is a concrete MeshSource backed by slices.
type TriMesh struct {
	Verts    []geom.Vector3
	FaceList [][]int
	EdgeList [][2]int
}

// Vertices returns the vertex positions.
func (m *TriMesh) Vertices() []geom.Vector3 { return m.Verts }

// Faces returns the face index loops.
func (m *TriMesh) Faces() [][]int { return m.FaceList }

// Edges returns the bare edge index pairs.
func (m *TriMesh) Edges() [][2]int { return m.EdgeList }
