package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brunopostle/sdnf-export/pkg/member"
	"github.com/brunopostle/sdnf-export/pkg/scene"
)

// inspectCommand creates the inspect command, which loads a project
// and reports what each object would contribute without writing
// anything.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project.toml>",
		Short: "Report a project's objects without exporting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}
}

func (c *CLI) runInspect(project string) error {
	s, err := scene.LoadProject(project)
	if err != nil {
		return err
	}

	printKeyValue("structure", orPlaceholder(s.Title.Structure))
	printKeyValue("units", fmt.Sprintf("%s / %s", s.LengthUnit, s.ThicknessUnit))
	printKeyValue("scale", fmt.Sprintf("%g", s.Scale))
	printNewline()

	for _, obj := range s.Objects {
		printInfo("%s", obj.Name)
		if obj.Mesh == nil {
			if obj.LoadError != nil {
				printWarning("mesh unavailable: %v", obj.LoadError)
			} else {
				printDetail("no mesh")
			}
			continue
		}

		faces := len(obj.Mesh.Faces())
		edges := len(obj.Mesh.Edges())
		attrs := member.Classify(obj)
		switch {
		case faces > 0:
			printDetail("%d plate face(s), thickness %g, connect point %d",
				faces, attrs.Thickness, attrs.ConnectPoint)
		case edges > 0:
			printDetail("%d linear element(s), section %s", edges, attrs.Section)
		default:
			printDetail("empty mesh")
		}
		if obj.Matrix.IsReflective() {
			printDetail("mirrored transform (winding will be flipped)")
		}
	}
	return nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
