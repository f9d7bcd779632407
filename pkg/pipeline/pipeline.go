// Package pipeline provides the core export pipeline for the SDNF
// exporter.
//
// This package implements the complete load → extract → write flow
// that the CLI and any embedding host share. By centralizing this
// logic, all entry points behave identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read the TOML project and its mesh files into a scene
//     (skipped when the caller supplies a scene directly)
//  2. Extract: per object, transform the mesh into polygon loops or
//     line segments and attach member attributes
//  3. Write: serialize everything into one SDNF file
//
// The whole export is one blocking, synchronous call over a snapshot
// of scene state. Nothing is cached or reused across calls.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	stats, err := runner.Export(ctx, pipeline.Options{
//	    ProjectPath: "frame.toml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(stats.Plates, "plates written")
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brunopostle/sdnf-export/pkg/errors"
	"github.com/brunopostle/sdnf-export/pkg/scene"
	"github.com/brunopostle/sdnf-export/pkg/sdnf"
)

// OutputExt is the extension of derived output paths.
const OutputExt = ".sdnf"

// Options contains all configuration for one export run.
type Options struct {
	// ProjectPath is the TOML project file to load. Ignored when
	// Scene is set.
	ProjectPath string

	// Scene is a pre-assembled scene, for hosts that do their own
	// loading.
	Scene *scene.Scene

	// OutputPath is the destination file. Empty derives it from
	// ProjectPath by swapping the extension for ".sdnf". Ignored when
	// Output is set.
	OutputPath string

	// Output is an explicit destination stream. The caller keeps
	// ownership; the pipeline does not close it.
	Output io.Writer

	// Scale overrides the project's global scale factor when
	// non-zero.
	Scale float64

	// Header overrides all header fields when set. Otherwise the
	// header is assembled from the scene's title metadata with
	// placeholder fallbacks.
	Header *sdnf.Header

	// Now supplies the clock for the title packet's date and time.
	Now func() time.Time

	// Logger receives progress output. Defaults to a discard logger.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Scene == nil && o.ProjectPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "project path or scene is required")
	}
	if o.Scene == nil && o.Output == nil && o.OutputPath == "" {
		o.OutputPath = strings.TrimSuffix(o.ProjectPath, ".toml") + OutputExt
	}
	if o.Scene != nil && o.Output == nil && o.OutputPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output path or stream is required with an in-memory scene")
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Stats contains export execution statistics.
type Stats struct {
	Objects int // objects in the scene
	Plates  int // plate members written
	Beams   int // linear members written
	Skipped int // objects that contributed no geometry

	LoadTime    time.Duration
	ExtractTime time.Duration
	WriteTime   time.Duration
}

// header assembles the title-packet fields for a scene, starting from
// the placeholders and overlaying whatever the project supplied.
func header(s *scene.Scene, now time.Time) sdnf.Header {
	hdr := sdnf.DefaultHeader(now)
	if s.Title.EngineeringFirm != "" {
		hdr.EngineeringFirm = s.Title.EngineeringFirm
	}
	if s.Title.Client != "" {
		hdr.Client = s.Title.Client
	}
	if s.Title.Structure != "" {
		hdr.Structure = s.Title.Structure
	}
	if s.Title.Issue != "" {
		hdr.Issue = s.Title.Issue
	}
	if s.Title.DesignCode != "" {
		hdr.DesignCode = s.Title.DesignCode
	}
	if s.LengthUnit != "" {
		hdr.LengthUnit = s.LengthUnit
	}
	if s.ThicknessUnit != "" {
		hdr.ThicknessUnit = s.ThicknessUnit
	}
	return hdr
}
