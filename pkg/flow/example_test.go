package flow_test

import (
	"fmt"

	"github.com/matzehuels/flowline/pkg/flow"
	"github.com/matzehuels/flowline/pkg/geometry"
)

func ExampleEngine_Arrange() {
	src := flow.Sizes{
		Items: []geometry.Size{
			{Width: 50, Height: 20},
			{Width: 50, Height: 20},
			{Width: 50, Height: 20},
		},
		HGap: 10,
		VGap: 5,
	}

	engine := flow.New(flow.WithAlignment(flow.AlignTopLeading))
	proposal := geometry.ProposeWidth(120)

	_, fit := engine.Measure(proposal, src)
	fmt.Printf("content: %gx%g\n", fit.Width, fit.Height)

	for _, p := range engine.Arrange(geometry.Rect{Size: fit}, proposal, src) {
		fmt.Printf("item %d: row %d at (%g, %g)\n", p.Index, p.Row, p.Position.X, p.Position.Y)
	}

	// Output:
	// content: 120x45
	// item 0: row 0 at (0, 0)
	// item 1: row 0 at (60, 0)
	// item 2: row 1 at (0, 25)
}
