package geometry

import (
	"math"
	"testing"
)

func TestFixed(t *testing.T) {
	tests := []struct {
		name  string
		in    float64
		want  float64
		wantF bool
	}{
		{"positive", 42.5, 42.5, true},
		{"zero", 0, 0, true},
		{"negative clamps to zero", -3, 0, true},
		{"NaN clamps to zero", math.NaN(), 0, true},
		{"positive infinity is unconstrained", math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Fixed(tt.in)
			v, ok := l.Value()
			if ok != tt.wantF {
				t.Fatalf("Value() finite = %v, want %v", ok, tt.wantF)
			}
			if ok && v != tt.want {
				t.Errorf("Value() = %v, want %v", v, tt.want)
			}
		})
	}
}

func TestLengthZeroValue(t *testing.T) {
	var l Length
	if !l.IsFinite() {
		t.Error("zero Length should be finite")
	}
	if v, _ := l.Value(); v != 0 {
		t.Errorf("zero Length value = %v, want 0", v)
	}
}

func TestLengthAccessors(t *testing.T) {
	fin := Fixed(30)
	inf := Unconstrained()

	if fin.Or(99) != 30 {
		t.Errorf("finite Or = %v, want 30", fin.Or(99))
	}
	if inf.Or(99) != 99 {
		t.Errorf("unconstrained Or = %v, want default 99", inf.Or(99))
	}
	if fin.Limit() != 30 {
		t.Errorf("finite Limit = %v, want 30", fin.Limit())
	}
	if !math.IsInf(inf.Limit(), 1) {
		t.Errorf("unconstrained Limit = %v, want +Inf", inf.Limit())
	}
	if inf.IsFinite() {
		t.Error("unconstrained should not be finite")
	}
}

func TestProposals(t *testing.T) {
	p := Propose(120, 80)
	if w, _ := p.Width.Value(); w != 120 {
		t.Errorf("width = %v, want 120", w)
	}
	if h, _ := p.Height.Value(); h != 80 {
		t.Errorf("height = %v, want 80", h)
	}

	pw := ProposeWidth(120)
	if !pw.Width.IsFinite() || pw.Height.IsFinite() {
		t.Error("ProposeWidth should pin width and leave height unconstrained")
	}

	u := UnconstrainedProposal()
	if u.Width.IsFinite() || u.Height.IsFinite() {
		t.Error("UnconstrainedProposal should leave both axes unconstrained")
	}

	var zero Proposal
	if w, ok := zero.Width.Value(); !ok || w != 0 {
		t.Error("zero proposal should propose finite zero")
	}
}

func TestSizeMax(t *testing.T) {
	a := Size{Width: 30, Height: 60}
	b := Size{Width: 80, Height: 20}

	got := a.Max(b)
	if got.Width != 80 || got.Height != 60 {
		t.Errorf("Max = %+v, want 80x60", got)
	}
}

func TestSizeIsZero(t *testing.T) {
	if !(Size{}).IsZero() {
		t.Error("zero size should report IsZero")
	}
	if (Size{Width: 1}).IsZero() {
		t.Error("non-zero size should not report IsZero")
	}
}

func TestPointAdd(t *testing.T) {
	got := Point{X: 1, Y: 2}.Add(Point{X: 10, Y: 20})
	if got.X != 11 || got.Y != 22 {
		t.Errorf("Add = %+v, want (11, 22)", got)
	}
}

func TestRectOf(t *testing.T) {
	r := RectOf(1, 2, 30, 40)
	if r.Origin.X != 1 || r.Origin.Y != 2 || r.Size.Width != 30 || r.Size.Height != 40 {
		t.Errorf("RectOf = %+v", r)
	}
}
