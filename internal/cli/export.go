package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brunopostle/sdnf-export/pkg/errors"
	"github.com/brunopostle/sdnf-export/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output string  // output file path; empty derives it from the project path
	scale  float64 // global scale override (0 keeps the project value)
}

// exportCommand creates the export command, which runs the full
// load → extract → write pipeline on a project file.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <project.toml>",
		Short: "Export a scene project to an SDNF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: project path with .sdnf extension)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "override the project's global scale factor")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, project string, opts *exportOpts) error {
	spin := newSpinner("Exporting " + filepath.Base(project))
	spin.Start()

	stats, err := c.newRunner().Export(cmd.Context(), pipeline.Options{
		ProjectPath: project,
		OutputPath:  opts.output,
		Scale:       opts.scale,
		Logger:      c.Logger,
	})
	if err != nil {
		spin.StopWithError(errors.UserMessage(err))
		return err
	}
	spin.Stop()

	printSuccess("Exported %s", summarize(stats))
	printFile(outputPath(opts.output, project))
	if stats.Skipped > 0 {
		printWarning("%d object(s) contributed no geometry", stats.Skipped)
	}
	return nil
}

// summarize renders member counts for the success line, e.g.
// "3 plates, 1 beam".
func summarize(stats *pipeline.Stats) string {
	var parts []string
	if stats.Plates > 0 {
		parts = append(parts, plural(stats.Plates, "plate"))
	}
	if stats.Beams > 0 {
		parts = append(parts, plural(stats.Beams, "beam"))
	}
	if len(parts) == 0 {
		return "no members"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// outputPath mirrors the pipeline's output derivation for display.
func outputPath(output, project string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(project, ".toml") + pipeline.OutputExt
}
