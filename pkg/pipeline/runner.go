package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brunopostle/sdnf-export/pkg/errors"
	"github.com/brunopostle/sdnf-export/pkg/extract"
	"github.com/brunopostle/sdnf-export/pkg/geom"
	"github.com/brunopostle/sdnf-export/pkg/member"
	"github.com/brunopostle/sdnf-export/pkg/scene"
	"github.com/brunopostle/sdnf-export/pkg/sdnf"
)

// Runner executes exports. It is stateless apart from its logger;
// multiple goroutines can safely share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Export runs the complete load → extract → write pipeline once.
//
// Objects whose mesh is unavailable contribute nothing and are
// counted in Stats.Skipped; malformed geometry and output stream
// failures abort the export. Output ordering always follows the
// scene-object order, since member numbering is positional.
func (r *Runner) Export(ctx context.Context, opts Options) (*Stats, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	stats := &Stats{}

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.loadScene(opts)
	if err != nil {
		return nil, err
	}
	stats.LoadTime = time.Since(loadStart)
	stats.Objects = len(s.Objects)

	opts.Logger.Info("loaded scene",
		"objects", len(s.Objects),
		"scale", effectiveScale(s, opts),
		"duration", stats.LoadTime)

	// Stage 2: Extract
	extractStart := time.Now()
	plates, beams, skipped, err := Collect(s, opts.Scale, opts.Logger)
	if err != nil {
		return nil, err
	}
	stats.ExtractTime = time.Since(extractStart)
	stats.Plates = len(plates)
	stats.Beams = len(beams)
	stats.Skipped = skipped

	opts.Logger.Info("extracted geometry",
		"plates", len(plates),
		"beams", len(beams),
		"skipped", skipped,
		"duration", stats.ExtractTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Write
	writeStart := time.Now()
	if err := r.write(opts, plates, beams, header(s, opts.Now())); err != nil {
		return nil, err
	}
	stats.WriteTime = time.Since(writeStart)

	opts.Logger.Info("wrote sdnf",
		"output", outputName(opts),
		"duration", stats.WriteTime)

	return stats, nil
}

// Collect walks the scene in object order and returns the flattened
// plate and beam collections ready for the writer, plus the number of
// objects that contributed nothing. scale overrides the scene's
// global scale when non-zero.
//
// Per object, the world matrix is composed with the global scale,
// geometry is extracted under it, and the object's member attributes
// are attached to every loop and segment. Objects contribute either
// plates or beams, never both.
func Collect(s *scene.Scene, scale float64, logger *log.Logger) ([]sdnf.Plate, []sdnf.Beam, int, error) {
	if logger == nil {
		logger = log.Default()
	}

	global := s.GlobalMatrix()
	if scale != 0 {
		global = geom.UniformScale(scale)
	}

	var plates []sdnf.Plate
	var beams []sdnf.Beam
	skipped := 0

	for _, obj := range s.Objects {
		if obj.Mesh == nil && obj.LoadError != nil {
			logger.Warn("mesh unavailable", "object", obj.Name, "err", obj.LoadError)
		}

		res, err := extract.Extract(obj.Mesh, global.Mul(obj.Matrix))
		if err != nil {
			return nil, nil, 0, fmt.Errorf("object %s: %w", obj.Name, err)
		}
		if res.Empty() {
			skipped++
			continue
		}

		attrs := member.Classify(obj)
		for _, loop := range res.Loops {
			plates = append(plates, sdnf.Plate{
				Vertices:     loop,
				ConnectPoint: attrs.ConnectPoint,
				Thickness:    attrs.Thickness,
				Grade:        attrs.Grade,
				Name:         obj.Name,
			})
		}
		for _, seg := range res.Segments {
			beams = append(beams, sdnf.Beam{
				Start:   seg[0],
				End:     seg[1],
				Section: attrs.Section,
				Grade:   attrs.Grade,
				Name:    obj.Name,
			})
		}
	}
	return plates, beams, skipped, nil
}

func (r *Runner) loadScene(opts Options) (*scene.Scene, error) {
	if opts.Scene != nil {
		return opts.Scene, nil
	}
	return scene.LoadProject(opts.ProjectPath)
}

// write serializes to the explicit stream when one was supplied,
// otherwise to the output path, created fresh and closed on all exit
// paths.
func (r *Runner) write(opts Options, plates []sdnf.Plate, beams []sdnf.Beam, hdr sdnf.Header) error {
	if opts.Header != nil {
		hdr = *opts.Header
	}
	if opts.Output != nil {
		return sdnf.Write(opts.Output, plates, beams, hdr)
	}

	f, err := os.Create(opts.OutputPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", opts.OutputPath)
	}
	werr := sdnf.Write(f, plates, beams, hdr)
	if cerr := f.Close(); werr == nil && cerr != nil {
		werr = errors.Wrap(errors.ErrCodeWriteFailed, cerr, "close %s", opts.OutputPath)
	}
	return werr
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func effectiveScale(s *scene.Scene, opts Options) float64 {
	if opts.Scale != 0 {
		return opts.Scale
	}
	if s.Scale != 0 {
		return s.Scale
	}
	return 1
}

func outputName(opts Options) string {
	if opts.Output != nil {
		return "(stream)"
	}
	return opts.OutputPath
}
