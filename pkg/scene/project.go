package scene

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/brunopostle/sdnf-export/pkg/errors"
	"github.com/brunopostle/sdnf-export/pkg/geom"
)

// Default unit strings used when the project file leaves them out.
const (
	DefaultLengthUnit    = "meters"
	DefaultThicknessUnit = "meters"
)

// projectFile mirrors the TOML project layout.
type projectFile struct {
	Title   titleSection  `toml:"title"`
	Units   unitsSection  `toml:"units"`
	Objects []objectEntry `toml:"object"`
}

type titleSection struct {
	EngineeringFirm string `toml:"engineering_firm"`
	Client          string `toml:"client"`
	Structure       string `toml:"structure"`
	Issue           string `toml:"issue"`
	DesignCode      string `toml:"design_code"`
}

type unitsSection struct {
	Length    string  `toml:"length"`
	Thickness string  `toml:"thickness"`
	Scale     float64 `toml:"scale"`
}

type objectEntry struct {
	Name      string          `toml:"name"`
	Mesh      string          `toml:"mesh"`
	Matrix    []float64       `toml:"matrix"`
	Translate []float64       `toml:"translate"`
	Scale     float64         `toml:"scale"`
	Solidify  []solidifyEntry `toml:"solidify"`
}

type solidifyEntry struct {
	Thickness float64 `toml:"thickness"`
	Offset    float64 `toml:"offset"`
}

// LoadProject reads a TOML project file and assembles the scene it
// describes. Mesh file paths are resolved relative to the project
// file's directory.
//
// A mesh file that is missing or malformed does not fail the load:
// the object keeps a nil mesh (and records the cause in LoadError) so
// the export can continue with the remaining objects. A project with
// no objects, or with an invalid transform, is rejected.
func LoadProject(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	var pf projectFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "parse %s", path)
	}
	return buildScene(&pf, filepath.Dir(path))
}

func buildScene(pf *projectFile, dir string) (*Scene, error) {
	if len(pf.Objects) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidProject, "project defines no objects")
	}

	s := &Scene{
		Title: Title{
			EngineeringFirm: pf.Title.EngineeringFirm,
			Client:          pf.Title.Client,
			Structure:       pf.Title.Structure,
			Issue:           pf.Title.Issue,
			DesignCode:      pf.Title.DesignCode,
		},
		LengthUnit:    pf.Units.Length,
		ThicknessUnit: pf.Units.Thickness,
		Scale:         pf.Units.Scale,
	}
	if s.LengthUnit == "" {
		s.LengthUnit = DefaultLengthUnit
	}
	if s.ThicknessUnit == "" {
		s.ThicknessUnit = DefaultThicknessUnit
	}
	if s.Scale == 0 {
		s.Scale = 1
	}

	for i, entry := range pf.Objects {
		obj, err := buildObject(&entry, i, dir)
		if err != nil {
			return nil, err
		}
		s.Objects = append(s.Objects, obj)
	}
	return s, nil
}

func buildObject(entry *objectEntry, index int, dir string) (*Object, error) {
	name := entry.Name
	if name == "" {
		name = filepath.Base(entry.Mesh)
	}

	matrix, err := objectMatrix(entry)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTransform, err, "object %d (%s)", index, name)
	}

	obj := &Object{Name: name, Matrix: matrix}
	for _, mod := range entry.Solidify {
		obj.Modifiers = append(obj.Modifiers, Solidify{Thick: mod.Thickness, Off: mod.Offset})
	}

	if entry.Mesh != "" {
		mesh, err := LoadOBJ(filepath.Join(dir, entry.Mesh))
		if err != nil {
			obj.LoadError = err
		} else {
			obj.Mesh = mesh
		}
	}
	return obj, nil
}

// objectMatrix resolves an object's transform. An explicit 16-value
// row-major matrix wins; otherwise translate and uniform scale are
// composed (scale first).
func objectMatrix(entry *objectEntry) (geom.Matrix4, error) {
	if len(entry.Matrix) > 0 {
		return geom.FromSlice(entry.Matrix)
	}

	m := geom.Identity()
	if entry.Scale != 0 {
		m = geom.UniformScale(entry.Scale)
	}
	if len(entry.Translate) > 0 {
		if len(entry.Translate) != 3 {
			return m, errors.New(errors.ErrCodeInvalidTransform, "translate needs 3 values, got %d", len(entry.Translate))
		}
		m = geom.Translation(entry.Translate[0], entry.Translate[1], entry.Translate[2]).Mul(m)
	}
	return m, nil
}
