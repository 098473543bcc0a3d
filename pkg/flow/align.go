package flow

// Alignment names one of the nine compass anchor points used to distribute
// leftover space. It controls two independent redistributions at placement
// time: each row is shifted within the container width, and each item is
// shifted within its row's height.
type Alignment string

const (
	AlignTopLeading     Alignment = "top-leading"
	AlignTop            Alignment = "top"
	AlignTopTrailing    Alignment = "top-trailing"
	AlignLeading        Alignment = "leading"
	AlignCenter         Alignment = "center"
	AlignTrailing       Alignment = "trailing"
	AlignBottomLeading  Alignment = "bottom-leading"
	AlignBottom         Alignment = "bottom"
	AlignBottomTrailing Alignment = "bottom-trailing"
)

// Anchor is a fractional anchor point in the unit square: (0,0) is the top
// leading corner, (1,1) the bottom trailing corner.
type Anchor struct {
	X float64
	Y float64
}

var anchors = map[Alignment]Anchor{
	AlignTopLeading:     {0, 0},
	AlignTop:            {0.5, 0},
	AlignTopTrailing:    {1, 0},
	AlignLeading:        {0, 0.5},
	AlignCenter:         {0.5, 0.5},
	AlignTrailing:       {1, 0.5},
	AlignBottomLeading:  {0, 1},
	AlignBottom:         {0.5, 1},
	AlignBottomTrailing: {1, 1},
}

// AnchorOf maps an alignment to its fractional anchor. Anything outside the
// nine-point table (composite, misspelled, or empty values) maps to the
// center anchor.
func AnchorOf(a Alignment) Anchor {
	if p, ok := anchors[a]; ok {
		return p
	}
	return Anchor{X: 0.5, Y: 0.5}
}

// IsValid reports whether a names one of the nine supported anchor points.
func (a Alignment) IsValid() bool {
	_, ok := anchors[a]
	return ok
}

// Alignments lists the supported alignment names in reading order, for flag
// help text and validation messages.
func Alignments() []Alignment {
	return []Alignment{
		AlignTopLeading, AlignTop, AlignTopTrailing,
		AlignLeading, AlignCenter, AlignTrailing,
		AlignBottomLeading, AlignBottom, AlignBottomTrailing,
	}
}
