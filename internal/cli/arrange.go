package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowline/pkg/pipeline"
)

// sceneOpts holds the command-line flags shared by arrange, render, and preview.
type sceneOpts struct {
	images    string  // image directory instead of a manifest
	width     float64 // available width in scene units
	unbounded bool    // no width constraint: single row
	align     string  // one of the nine compass anchors
	gap       float64 // horizontal gap override (-1 = use scene spacing)
	rowGap    float64 // vertical gap override (-1 = use scene spacing)
	noCache   bool    // disable the disk cache
	refresh   bool    // recompute even when cached
}

// registerSceneFlags wires the shared flags onto cmd.
func registerSceneFlags(cmd *cobra.Command, opts *sceneOpts) {
	cmd.Flags().StringVar(&opts.images, "images", "", "build the scene from a directory of images instead of a manifest")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", pipeline.DefaultMaxWidth, "available width in scene units")
	cmd.Flags().BoolVar(&opts.unbounded, "unbounded", false, "no width constraint (everything on one row)")
	cmd.Flags().StringVarP(&opts.align, "align", "a", string(pipeline.DefaultAlignment), "alignment anchor (e.g. center, top-leading, bottom-trailing)")
	cmd.Flags().Float64Var(&opts.gap, "gap", -1, "horizontal gap override (default: scene spacing)")
	cmd.Flags().Float64Var(&opts.rowGap, "row-gap", -1, "vertical gap override (default: scene spacing)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the disk cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached result exists")
}

// pipelineOptions translates flags and the positional manifest argument into
// pipeline options.
func (o *sceneOpts) pipelineOptions(args []string) pipeline.Options {
	opts := pipeline.Options{
		ImagesDir: o.images,
		MaxWidth:  o.width,
		Unbounded: o.unbounded,
		Alignment: o.align,
		Gap:       optionalGap(o.gap),
		RowGap:    optionalGap(o.rowGap),
		Refresh:   o.refresh,
	}
	if len(args) > 0 {
		opts.Manifest = args[0]
	}
	return opts
}

// sourcePath returns the manifest or image directory the flags name, for
// deriving default output paths.
func (o *sceneOpts) sourcePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return o.images
}

// arrangeCommand creates the arrange command: compute an arrangement and
// export it as a JSON frame without rendering.
func (c *CLI) arrangeCommand() *cobra.Command {
	var opts sceneOpts
	var output string

	cmd := &cobra.Command{
		Use:   "arrange [manifest]",
		Short: "Compute an arrangement and export it as a JSON frame",
		Long: `Arrange loads a scene from a TOML or JSON manifest (or from a directory of
images with --images), packs its items into rows within the width constraint,
and writes the resulting frame as JSON. The frame can be rendered later with
the render command or consumed by external tools.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.images == "" {
				return fmt.Errorf("a manifest argument or --images is required")
			}

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			ctx := cmd.Context()
			popts := opts.pipelineOptions(args)

			s, err := runner.Load(ctx, popts)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			frame, cached, err := runner.GenerateFrameWithCacheInfo(ctx, s, popts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Arranged %d items into %d rows", len(s.Items), frame.Rows))

			data, err := frame.Marshal()
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = framePath(opts.sourcePath(args))
			}
			if err := writeArtifact(path, data); err != nil {
				return err
			}

			printSuccess("Arranged %s", opts.sourcePath(args))
			printStats(len(s.Items), frame.Rows, cached)
			printFile(path)
			return nil
		},
	}

	registerSceneFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.frame.json)")

	return cmd
}

// framePath derives the default frame output path from the input path.
func framePath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	base = strings.TrimSuffix(base, string(filepath.Separator))
	return base + ".frame.json"
}

// writeArtifact writes data to path, creating parent directories as needed.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
