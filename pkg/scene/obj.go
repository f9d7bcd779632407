package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/brunopostle/sdnf-export/pkg/errors"
	"github.com/brunopostle/sdnf-export/pkg/geom"
)

// ReadOBJ parses a Wavefront OBJ stream into a TriMesh.
//
// Supported records:
//   - "v x y z" vertex positions
//   - "f a b c ..." faces; index references in a/b/c form keep only
//     the position index, indices are 1-based, negative indices count
//     back from the last vertex
//   - "l a b c ..." polylines, split into consecutive 2-index edges
//
// All other record types (normals, texture coordinates, groups,
// materials) are ignored. Faces with fewer than 3 references or edge
// records with fewer than 2 are rejected as malformed.
func ReadOBJ(r io.Reader) (*TriMesh, error) {
	m := &TriMesh{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			var v geom.Vector3
			if _, err := fmt.Sscanf(line, "v %f %f %f", &v.X, &v.Y, &v.Z); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidMesh, err, "line %d: bad vertex record", lineno)
			}
			m.Verts = append(m.Verts, v)

		case strings.HasPrefix(line, "f "):
			refs := strings.Fields(strings.TrimPrefix(line, "f "))
			if len(refs) < 3 {
				return nil, errors.New(errors.ErrCodeInvalidFace, "line %d: face has %d vertices", lineno, len(refs))
			}
			face := make([]int, len(refs))
			for i, ref := range refs {
				idx, err := resolveIndex(ref, len(m.Verts))
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeInvalidFace, err, "line %d", lineno)
				}
				face[i] = idx
			}
			m.FaceList = append(m.FaceList, face)

		case strings.HasPrefix(line, "l "):
			refs := strings.Fields(strings.TrimPrefix(line, "l "))
			if len(refs) < 2 {
				return nil, errors.New(errors.ErrCodeInvalidEdge, "line %d: line record has %d vertices", lineno, len(refs))
			}
			prev := -1
			for i, ref := range refs {
				idx, err := resolveIndex(ref, len(m.Verts))
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeInvalidEdge, err, "line %d", lineno)
				}
				if i > 0 {
					m.EdgeList = append(m.EdgeList, [2]int{prev, idx})
				}
				prev = idx
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMesh, err, "read obj")
	}
	return m, nil
}

// LoadOBJ reads an OBJ mesh from a file.
func LoadOBJ(path string) (*TriMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadOBJ(f)
}

// resolveIndex converts one OBJ index reference to a 0-based vertex
// index. The reference may carry texture/normal components ("7/1/3");
// only the position index is kept. OBJ indices are 1-based and may be
// negative, counting back from the most recent vertex.
func resolveIndex(ref string, nverts int) (int, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", ref)
	}
	switch {
	case idx > 0 && idx <= nverts:
		return idx - 1, nil
	case idx < 0 && -idx <= nverts:
		return nverts + idx, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d vertices)", idx, nverts)
	}
}
