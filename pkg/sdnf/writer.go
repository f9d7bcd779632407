package sdnf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/brunopostle/sdnf-export/pkg/errors"
	"github.com/brunopostle/sdnf-export/pkg/geom"
)

// Write serializes the collected members to w as one SDNF file:
// title packet, linear packet, plate packet, in a single forward
// pass. The packet 10 and 20 headers are written even when their
// collections are empty.
//
// Plates and beams are written in input order; member numbering is
// positional, so callers must not reorder them after collection. A
// plate with fewer than 3 vertices is rejected before anything of its
// member is emitted. The first stream error aborts the write and is
// returned; whatever was flushed before it stays.
func Write(w io.Writer, plates []Plate, beams []Beam, hdr Header) error {
	for i, p := range plates {
		if len(p.Vertices) < 3 {
			return errors.New(errors.ErrCodeInvalidFace, "plate %d (%s) has %d vertices", i, p.Name, len(p.Vertices))
		}
	}

	pw := &packetWriter{w: bufio.NewWriter(w)}
	pw.titlePacket(hdr)
	pw.linearPacket(hdr, beams)
	pw.platePacket(hdr, plates)
	if pw.err == nil {
		pw.err = pw.w.Flush()
	}
	if pw.err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, pw.err, "write sdnf")
	}
	return nil
}

// packetWriter emits packet lines with a sticky error, so each packet
// method can run a straight sequence of prints and the first stream
// failure wins.
type packetWriter struct {
	w   *bufio.Writer
	err error
}

func (pw *packetWriter) printf(format string, args ...any) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, args...)
}

// titlePacket writes packet 00. Always exactly these lines; the
// fields are caller-supplied or placeholders, never geometry.
func (pw *packetWriter) titlePacket(hdr Header) {
	pw.printf("Packet 00\n")
	pw.printf("\"\"\n")
	pw.printf("%q\n", hdr.EngineeringFirm)
	pw.printf("%q\n", hdr.Client)
	pw.printf("%q\n", hdr.Structure)
	pw.printf("%q %q\n", hdr.Date, hdr.Time)
	pw.printf("1 %q\n", hdr.Issue)
	pw.printf("%q\n", hdr.DesignCode)
	pw.printf("0\n")
}

// linearPacket writes packet 10: six fixed-layout lines per beam.
func (pw *packetWriter) linearPacket(hdr Header, beams []Beam) {
	pw.printf("Packet 10\n")
	pw.printf("%q %d\n", hdr.LengthUnit, len(beams))

	for i, b := range beams {
		// Member id, cardinal point, status, class, type, piece mark, revision.
		pw.printf("%d 5 0 0 \"beam\" \"\" 0\n", beamIDBase+i)
		// Section size, grade, rotation, mirror-X, mirror-Y.
		pw.printf("%q %q 0.000000 0 0\n", b.Section, b.Grade)
		// Orientation vector, both endpoints, start/end cutbacks.
		pw.printf("%s %s %s 0.000000 0.000000\n", orientation(b), coords(b.Start), coords(b.End))
		// Cross-section X/Y offsets.
		pw.printf("0.000000 0.000000\n")
		// Start/end X,Y,Z offsets.
		pw.printf("0.000000 0.000000 0.000000 0.000000 0.000000 0.000000\n")
		// Twelve release flags, both ends.
		pw.printf("0 0 0 0 0 0 0 0 0 0 0 0\n")
	}
}

// platePacket writes packet 20: a two-line member header then one
// coordinate line per vertex, in loop order.
func (pw *packetWriter) platePacket(hdr Header, plates []Plate) {
	pw.printf("Packet 20\n")
	pw.printf("%q %q %d\n", hdr.LengthUnit, hdr.ThicknessUnit, len(plates))

	for i, p := range plates {
		// Member id, connect point, status, class, type.
		pw.printf("%d %d 0 0 \"plate\"\n", plateIDBase+i, p.ConnectPoint)
		// Piece mark, grade, thickness, vertex count.
		pw.printf("\"\" %q %.6f %d\n", p.Grade, p.Thickness, len(p.Vertices))
		for _, v := range p.Vertices {
			pw.printf("%s\n", coords(v))
		}
	}
}

// orientation returns the member orientation vector: X-aligned for a
// vertical beam (endpoints share X and Y), Z-aligned otherwise.
func orientation(b Beam) string {
	if b.Vertical() {
		return "1.000000 0.000000 0.000000"
	}
	return "0.000000 0.000000 1.000000"
}

// coords renders a point with the fixed 6-decimal field format.
func coords(v geom.Vector3) string {
	return fmt.Sprintf("%.6f %.6f %.6f", v.X, v.Y, v.Z)
}
