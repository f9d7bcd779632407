// Package sdnf serializes geometry into the Steel Detailing Neutral
// Format, a packet-oriented plain-text interchange format consumed by
// structural steel detailing tools.
//
// Three packets are written, always in this order:
//
//   - Packet 00: title block (header metadata)
//   - Packet 10: linear elements, one member per beam
//   - Packet 20: plate elements, one member per polygon loop
//
// Field order, quoting, and the fixed literals of each packet are
// reproduced byte-for-byte for downstream compatibility. Coordinates
// are written with exactly six decimal places. Member ids are the
// format's only notion of identity: 100001 upward for linear members,
// 200001 upward for plates, contiguous and in input order.
package sdnf

import (
	"time"

	"github.com/brunopostle/sdnf-export/pkg/geom"
)

// Member id bases for the two element packets. The ranges never
// overlap and ids are assigned sequentially with no gaps.
const (
	beamIDBase  = 100001
	plateIDBase = 200001
)

// Placeholder title fields, matching the exporter this format was
// reverse-engineered from. Used when the caller supplies none.
const (
	PlaceholderFirm      = "Eng Firm Id"
	PlaceholderClient    = "Client Id"
	PlaceholderStructure = "Structure Id"
	PlaceholderIssue     = "_Issue_Code_"
	PlaceholderDesign    = "_Design_Code_"
)

// Header carries the caller-supplied fields of the title packet plus
// the unit strings of the two element packets. None of it is derived
// from geometry.
type Header struct {
	EngineeringFirm string
	Client          string
	Structure       string
	Date            string
	Time            string
	Issue           string
	DesignCode      string

	LengthUnit    string
	ThicknessUnit string
}

// DefaultHeader returns a header with the standard placeholders and
// the date/time fields rendered from now.
func DefaultHeader(now time.Time) Header {
	return Header{
		EngineeringFirm: PlaceholderFirm,
		Client:          PlaceholderClient,
		Structure:       PlaceholderStructure,
		Date:            now.Format("02/01/06"),
		Time:            now.Format("15:04:05"),
		Issue:           PlaceholderIssue,
		DesignCode:      PlaceholderDesign,
		LengthUnit:      "meters",
		ThicknessUnit:   "meters",
	}
}

// Plate is one polygon member of packet 20: a winding-corrected
// vertex loop with its plate attributes. Name identifies the source
// object in diagnostics only; it never reaches the output.
type Plate struct {
	Vertices     []geom.Vector3
	ConnectPoint int
	Thickness    float64
	Grade        string
	Name         string
}

// Beam is one linear member of packet 10: an ordered pair of
// endpoints with its section attributes.
type Beam struct {
	Start   geom.Vector3
	End     geom.Vector3
	Section string
	Grade   string
	Name    string
}

// Vertical reports whether the beam's endpoints share X and Y, which
// selects the member's orientation vector.
func (b Beam) Vertical() bool {
	return b.Start.X == b.End.X && b.Start.Y == b.End.Y
}
