package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowline/pkg/flow"
	"github.com/matzehuels/flowline/pkg/pipeline"
	"github.com/matzehuels/flowline/pkg/render"
	"github.com/matzehuels/flowline/pkg/scene"
)

// Terminal cells are not square, so scene units map to cells at different
// rates per axis. 8x16 matches a typical monospace glyph box.
const (
	unitsPerCellX = 8.0
	unitsPerCellY = 16.0
)

// previewCommand creates the preview command: an interactive terminal view
// that re-arranges the scene whenever the window is resized.
func (c *CLI) previewCommand() *cobra.Command {
	var opts sceneOpts

	cmd := &cobra.Command{
		Use:   "preview [manifest]",
		Short: "Preview an arrangement interactively in the terminal",
		Long: `Preview renders the scene as boxes in the terminal and re-arranges it live:
resize the window to watch items wrap, and cycle through alignment anchors to
compare how leftover space is distributed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.images == "" {
				return fmt.Errorf("a manifest argument or --images is required")
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			s, err := runner.Load(cmd.Context(), opts.pipelineOptions(args))
			if err != nil {
				return err
			}

			model := newPreviewModel(s, opts.pipelineOptions(args))
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	registerSceneFlags(cmd, &opts)
	return cmd
}

// =============================================================================
// PreviewModel - Live arrangement preview
// =============================================================================

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	scene    *scene.Scene
	baseOpts pipeline.Options
	termW    int
	termH    int
	alignIdx int
	frame    render.Frame
	err      error
}

func newPreviewModel(s *scene.Scene, opts pipeline.Options) previewModel {
	m := previewModel{scene: s, baseOpts: opts, termW: 80, termH: 24}
	for i, a := range flow.Alignments() {
		if string(a) == opts.Alignment {
			m.alignIdx = i
		}
	}
	m.arrange()
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "a", "tab":
			m.alignIdx = (m.alignIdx + 1) % len(flow.Alignments())
			m.arrange()
		case "A", "shift+tab":
			m.alignIdx = (m.alignIdx + len(flow.Alignments()) - 1) % len(flow.Alignments())
			m.arrange()
		}
	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		m.arrange()
	}
	return m, nil
}

// arrange recomputes the frame for the current terminal width and alignment.
// The engine works in scene units; coordinates are quantized to cells only
// when drawing.
func (m *previewModel) arrange() {
	cols := m.termW - 2
	if cols < 10 {
		cols = 10
	}

	opts := m.baseOpts
	opts.MaxWidth = float64(cols) * unitsPerCellX
	opts.Alignment = string(flow.Alignments()[m.alignIdx])

	m.frame, m.err = pipeline.GenerateFrame(m.scene, opts)
}

func (m previewModel) View() string {
	var b strings.Builder

	title := m.scene.Title
	if title == "" {
		title = "preview"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d items · %d rows · %s",
		len(m.scene.Items), m.frame.Rows, m.frame.Alignment)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(drawFrame(m.frame, m.termW))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("a/tab cycle alignment  q quit"))
	return b.String()
}

// drawFrame rasterizes the frame onto a rune canvas, one cell per terminal
// character.
func drawFrame(f render.Frame, termW int) string {
	w := cellsX(f.Width)
	if w > termW {
		w = termW
	}
	h := cellsY(f.Height)
	if w < 1 || h < 1 {
		return ""
	}

	canvas := make([][]rune, h)
	for y := range canvas {
		canvas[y] = make([]rune, w)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	for _, blk := range f.Blocks {
		drawBox(canvas, blk)
	}

	var b strings.Builder
	for _, line := range canvas {
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// drawBox renders one block as a bordered box with its label centered, or as
// a compact [label] when the box is a single cell tall.
func drawBox(canvas [][]rune, blk render.Block) {
	x0 := int(math.Round(blk.X / unitsPerCellX))
	y0 := int(math.Round(blk.Y / unitsPerCellY))
	w := cellsX(blk.Width)
	h := cellsY(blk.Height)
	if w < 2 {
		w = 2
	}
	if h < 1 {
		h = 1
	}

	label := blk.Label
	if label == "" {
		label = blk.ID
	}

	if h == 1 {
		putString(canvas, x0, y0, fit("["+label+"]", w))
		return
	}

	top := "┌" + strings.Repeat("─", w-2) + "┐"
	bottom := "└" + strings.Repeat("─", w-2) + "┘"
	putString(canvas, x0, y0, top)
	putString(canvas, x0, y0+h-1, bottom)
	for y := y0 + 1; y < y0+h-1; y++ {
		putString(canvas, x0, y, "│"+strings.Repeat(" ", w-2)+"│")
	}

	// Center the label on the middle row.
	inner := fit(label, w-2)
	putString(canvas, x0+1+(w-2-len([]rune(inner)))/2, y0+h/2, inner)
}

func putString(canvas [][]rune, x, y int, s string) {
	if y < 0 || y >= len(canvas) {
		return
	}
	row := canvas[y]
	for i, r := range []rune(s) {
		if x+i < 0 || x+i >= len(row) {
			continue
		}
		row[x+i] = r
	}
}

// fit truncates s to at most n runes, appending an ellipsis when cut.
func fit(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n < 1 {
		return ""
	}
	return string(runes[:n-1]) + "…"
}

func cellsX(units float64) int { return int(math.Round(units / unitsPerCellX)) }
func cellsY(units float64) int { return int(math.Round(units / unitsPerCellY)) }
