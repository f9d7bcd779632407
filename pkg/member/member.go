// Package member derives SDNF member attributes for a scene object:
// plate thickness and offset from its modifier stack, the connect
// point implied by the offset, and section/grade defaults.
package member

import "github.com/brunopostle/sdnf-export/pkg/scene"

// Defaults applied when an object carries no thickness modifier.
// Thickness is a nominal plate thickness in meters.
const (
	DefaultThickness = 0.008
	DefaultOffset    = 0.0
	DefaultSection   = "HEA200"
	DefaultGrade     = "S355"
)

// Attrs is the per-object member metadata attached to exported
// geometry. Section only applies to linear members; plates have no
// section.
type Attrs struct {
	Thickness    float64
	Offset       float64
	ConnectPoint int
	Section      string
	Grade        string
}

// Classify resolves the member attributes of obj. The first
// thickness-producing modifier on the stack wins; without one the
// nominal defaults apply. This is pure attribute derivation: no
// geometry is touched and there are no failure modes.
func Classify(obj *scene.Object) Attrs {
	attrs := Attrs{
		Thickness: DefaultThickness,
		Offset:    DefaultOffset,
		Section:   DefaultSection,
		Grade:     DefaultGrade,
	}
	if mod := obj.FirstThickness(); mod != nil {
		attrs.Thickness = mod.Thickness()
		attrs.Offset = mod.Offset()
	}
	attrs.ConnectPoint = ConnectPoint(attrs.Offset)
	return attrs
}

// ConnectPoint maps a normalized solidify offset to the SDNF plate
// connect-point code. Offsets at (or numerically near) the ±1
// extremes reference the outer or inner face; anything strictly
// between is treated as centered.
func ConnectPoint(offset float64) int {
	switch {
	case offset > 0.99:
		return -1
	case offset < -0.99:
		return 1
	default:
		return 0
	}
}
