package canvas

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	scr.SetSize(width, height)
	t.Cleanup(scr.Fini)
	return scr
}

func screenRow(scr tcell.SimulationScreen, row int) string {
	w, _ := scr.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := scr.GetContent(x, row)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return b.String()
}

func TestLayoutLinearly(t *testing.T) {
	tests := []struct {
		name      string
		available int
		demands   []Demand
		weights   []float64
		want      []int
	}{
		{"exact and flexible", 20, []Demand{Exact(4), AtLeast(1)}, []float64{0, 1}, []int{4, 16}},
		{"zero decorator", 10, []Demand{Exact(0), AtLeast(1)}, []float64{0, 1}, []int{0, 10}},
		{"mins exceed space", 3, []Demand{Exact(4), AtLeast(1)}, []float64{0, 1}, []int{3, 0}},
		{"weighted split", 10, []Demand{AtLeast(0), AtLeast(0)}, []float64{1, 1}, []int{5, 5}},
		{"odd remainder", 11, []Demand{AtLeast(0), AtLeast(0)}, []float64{1, 1}, []int{6, 5}},
		{"max respected", 10, []Demand{{Min: 0, Max: 2}, AtLeast(0)}, []float64{1, 1}, []int{2, 8}},
		{"no weights", 10, []Demand{Exact(2)}, nil, []int{2}},
		{"no space", 0, []Demand{Exact(2), AtLeast(1)}, []float64{0, 1}, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutLinearly(tt.available, tt.demands, tt.weights)
			if len(got) != len(tt.want) {
				t.Fatalf("LayoutLinearly len=%d want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("LayoutLinearly=%v want %v", got, tt.want)
				}
			}
		})
	}
}

func TestStyleModifierOnTopOf(t *testing.T) {
	base := NewStyleModifier().ReverseMode(Toggle).Bold(true)
	top := NewStyleModifier().Foreground(tcell.ColorRed).Bold(false)

	merged := top.OnTopOf(base)
	if fg, ok := merged.ForegroundColor(); !ok || fg != tcell.ColorRed {
		t.Fatalf("expected red foreground, got %v (set=%v)", fg, ok)
	}
	style := merged.Apply(tcell.StyleDefault)
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrReverse == 0 {
		t.Fatalf("expected reverse toggle from base to survive")
	}
	if attrs&tcell.AttrBold != 0 {
		t.Fatalf("expected bold to be unset by top layer")
	}

	cancelled := NewStyleModifier().ReverseMode(Toggle).OnTopOf(NewStyleModifier().ReverseMode(Toggle))
	if !cancelled.IsEmpty() {
		t.Fatalf("expected two toggles to cancel, got %+v", cancelled)
	}
}

func TestStyleModifierToggleFlipsExisting(t *testing.T) {
	style := NewStyleModifier().ReverseMode(Toggle).Apply(tcell.StyleDefault.Reverse(true))
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrReverse != 0 {
		t.Fatalf("expected toggle to clear reverse")
	}
}

func TestWindowSplitAndClip(t *testing.T) {
	scr := newTestScreen(t, 10, 3)
	win := RootWindow(scr)

	left, right, err := win.SplitColumns(3)
	if err != nil {
		t.Fatalf("SplitColumns: %v", err)
	}
	left.Fill('L')
	right.Fill('r')
	if got := screenRow(scr, 0); got != "LLLrrrrrrr" {
		t.Fatalf("unexpected row %q", got)
	}

	if _, _, err := win.SplitColumns(11); err == nil {
		t.Fatalf("expected error for split past width")
	}

	sub := right.SubWindow(1, 99)
	if sub.Height() != 2 {
		t.Fatalf("expected clamped height 2, got %d", sub.Height())
	}
	sub.SetContent(0, 5, 'x', nil, tcell.StyleDefault)
	sub.SetContent(-1, 0, 'x', nil, tcell.StyleDefault)
	if got := screenRow(scr, 1); got != "LLLrrrrrrr" {
		t.Fatalf("clipped writes leaked: %q", got)
	}
}

func TestCursorWrapsAndFills(t *testing.T) {
	scr := newTestScreen(t, 4, 3)
	win := RootWindow(scr)
	win.Fill('.')

	c := NewCursor(&win)
	c.SetWrapping(WrapWrap)
	if wraps := c.NumExpectedWraps("abcdef"); wraps != 1 {
		t.Fatalf("NumExpectedWraps=%d want 1", wraps)
	}
	c.Write("abcdef")
	c.FillAndWrapLine()
	c.Write("z")

	want := []string{"abcd", "ef  ", "z..."}
	for row, line := range want {
		if got := screenRow(scr, row); got != line {
			t.Fatalf("row %d = %q want %q", row, got, line)
		}
	}
	if col, row := c.Position(); col != 1 || row != 2 {
		t.Fatalf("cursor at (%d,%d) want (1,2)", col, row)
	}
}

func TestCursorWideRunesWrapWhole(t *testing.T) {
	scr := newTestScreen(t, 5, 2)
	win := RootWindow(scr)
	c := NewCursor(&win)
	c.SetWrapping(WrapWrap)

	if wraps := c.NumExpectedWraps("你好世"); wraps != 1 {
		t.Fatalf("NumExpectedWraps=%d want 1", wraps)
	}
	c.Write("你好世")
	if _, row := c.Position(); row != 1 {
		t.Fatalf("expected third wide rune on second row, got row %d", row)
	}
	mainc, _, _, _ := scr.GetContent(0, 1)
	if mainc != '世' {
		t.Fatalf("expected 世 at start of row 1, got %q", mainc)
	}
}

func TestCursorNegativeRowsAreSkipped(t *testing.T) {
	scr := newTestScreen(t, 3, 2)
	win := RootWindow(scr)
	win.Fill('.')
	c := NewCursor(&win)
	c.SetWrapping(WrapWrap)
	c.MoveTo(0, -1)
	c.Write("abcdef")
	if got := screenRow(scr, 0); got != "def" {
		t.Fatalf("row 0 = %q want %q", got, "def")
	}
}

func TestCursorNoWrapClips(t *testing.T) {
	scr := newTestScreen(t, 3, 2)
	win := RootWindow(scr)
	win.Fill('.')
	c := NewCursor(&win)
	c.Write("abcdef")
	if got := screenRow(scr, 0); got != "abc" {
		t.Fatalf("row 0 = %q want abc", got)
	}
	if got := screenRow(scr, 1); got != "..." {
		t.Fatalf("row 1 = %q, expected untouched", got)
	}
	if wraps := c.NumExpectedWraps("abcdef"); wraps != 0 {
		t.Fatalf("expected no wraps without wrapping, got %d", wraps)
	}
}
