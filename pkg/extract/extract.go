// Package extract turns one scene object's mesh into transformed
// polygon loops, or bare line segments when the mesh has no faces.
package extract

import (
	"github.com/brunopostle/sdnf-export/pkg/errors"
	"github.com/brunopostle/sdnf-export/pkg/geom"
	"github.com/brunopostle/sdnf-export/pkg/scene"
)

// Result is one object's contribution to the export: either face
// loops or line segments, never both. Segments are harvested only
// when the mesh has no faces.
type Result struct {
	Loops    [][]geom.Vector3
	Segments [][2]geom.Vector3
}

// Empty reports whether the object contributed nothing.
func (r Result) Empty() bool {
	return len(r.Loops) == 0 && len(r.Segments) == 0
}

// Extract applies m to every vertex of src and groups the transformed
// points into face loops, falling back to the raw edge list when the
// mesh has no faces. A nil src yields an empty Result: a mesh that
// could not be produced is not an error.
//
// When m reverses orientation (negative determinant), every output
// loop is reversed so the face's outward sense is preserved. Segments
// have no winding and are left alone.
//
// Faces with fewer than 3 vertices, and face or edge indices outside
// the vertex list, are data-contract violations and fail loudly.
func Extract(src scene.MeshSource, m geom.Matrix4) (Result, error) {
	var res Result
	if src == nil {
		return res, nil
	}

	verts := src.Vertices()
	pts := make([]geom.Vector3, len(verts))
	for i, v := range verts {
		pts[i] = m.MulVector3Position(v)
	}
	flip := m.IsReflective()

	faces := src.Faces()
	if len(faces) > 0 {
		res.Loops = make([][]geom.Vector3, 0, len(faces))
		for fi, face := range faces {
			if len(face) < 3 {
				return Result{}, errors.New(errors.ErrCodeInvalidFace, "face %d has %d vertices", fi, len(face))
			}
			loop := make([]geom.Vector3, len(face))
			for i, idx := range face {
				if idx < 0 || idx >= len(pts) {
					return Result{}, errors.New(errors.ErrCodeInvalidFace, "face %d: vertex index %d out of range", fi, idx)
				}
				loop[i] = pts[idx]
			}
			if flip {
				reverse(loop)
			}
			res.Loops = append(res.Loops, loop)
		}
		return res, nil
	}

	edges := src.Edges()
	if len(edges) > 0 {
		res.Segments = make([][2]geom.Vector3, 0, len(edges))
		for ei, edge := range edges {
			for _, idx := range edge {
				if idx < 0 || idx >= len(pts) {
					return Result{}, errors.New(errors.ErrCodeInvalidEdge, "edge %d: vertex index %d out of range", ei, idx)
				}
			}
			res.Segments = append(res.Segments, [2]geom.Vector3{pts[edge[0]], pts[edge[1]]})
		}
	}
	return res, nil
}

func reverse(loop []geom.Vector3) {
	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
}
