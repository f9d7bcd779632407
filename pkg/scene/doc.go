// Package scene models the host side of an SDNF export: objects with
// world transforms, mesh geometry, and modifier stacks, plus the
// header metadata and unit settings resolved for them.
//
// The export pipeline depends only on the MeshSource and
// ThicknessModifier capability interfaces, so any host can feed it.
// This package also ships the file-based host used by the CLI: a TOML
// project file referencing Wavefront OBJ meshes.
//
// # Project Format
//
//	[title]
//	engineering_firm = "Example Engineering"
//	structure = "Warehouse 4"
//
//	[units]
//	length = "meters"
//	thickness = "meters"
//	scale = 1.0
//
//	[[object]]
//	name = "base-plate"
//	mesh = "plate.obj"
//	translate = [0.0, 0.0, 1.5]
//
//	[[object.solidify]]
//	thickness = 0.01
//	offset = -1.0
//
// Objects may carry an explicit row-major 16-value "matrix" instead of
// the translate/scale convenience fields. OBJ meshes contribute faces
// when they have any, or their "l" line records when they have none.
package scene
