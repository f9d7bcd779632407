// Package cli implements the sdnf-export command-line interface.
//
// This package provides commands for exporting a scene project to an
// SDNF file and for inspecting a project without writing output. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - export: Run the full export pipeline and write a .sdnf file
//   - inspect: Load the project and report per-object geometry stats
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brunopostle/sdnf-export/pkg/buildinfo"
	"github.com/brunopostle/sdnf-export/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "sdnf-export"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "sdnf-export converts scene geometry to SDNF steel detailing files",
		Long:         `sdnf-export reads a scene project (TOML plus OBJ meshes) and writes its plate and beam geometry as an SDNF (Steel Detailing Neutral Format) file for structural steel detailing tools.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.inspectCommand())

	return root
}

// newRunner creates an export pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
