package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowline/pkg/pipeline"
)

// renderCommand creates the render command: run the full load → arrange →
// render pipeline and write one file per requested format.
func (c *CLI) renderCommand() *cobra.Command {
	var opts sceneOpts
	var formatsStr, output string
	var scale float64
	var guides bool

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Arrange a scene and render it to SVG, PNG, or JSON",
		Long: `Render runs the complete pipeline: load a scene from a manifest (or image
directory with --images), arrange its items into rows, and render the result
in the requested formats. Arrangements and artifacts are cached on disk, so
re-rendering an unchanged scene is instant.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.images == "" {
				return fmt.Errorf("a manifest argument or --images is required")
			}

			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			popts := opts.pipelineOptions(args)
			popts.Formats = formats
			popts.Scale = scale
			popts.Guides = guides

			prog := newProgress(c.Logger)
			result, err := runner.Execute(cmd.Context(), popts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))

			base := outputBase(output, opts.sourcePath(args))
			printSuccess("Rendered %s", opts.sourcePath(args))
			printStats(result.Stats.ItemCount, result.Stats.RowCount, result.CacheInfo.ArrangeHit)

			for _, format := range formats {
				path := base + "." + format
				if err := writeArtifact(path, result.Artifacts[format]); err != nil {
					return err
				}
				printFile(path)
			}
			return nil
		},
	}

	registerSceneFlags(cmd, &opts)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or base path (default: derived from input)")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&guides, "guides", false, "draw row guide lines")

	return cmd
}

// outputBase derives the base output path from the output flag and input path.
// A known format extension on the output flag is stripped so that the format
// loop can append its own.
func outputBase(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, string(filepath.Separator))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
