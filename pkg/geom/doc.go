// Package geom provides the small set of 3D primitives the exporter
// needs: float64 vectors and 4x4 affine transforms with an
// orientation test for detecting mirrored geometry.
package geom
