package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

var errLimit = errors.New("limit")

type recorder struct {
	calls []string
	fail  bool
}

func (r *recorder) record(name string) error {
	r.calls = append(r.calls, name)
	if r.fail {
		return errLimit
	}
	return nil
}

func (r *recorder) ScrollBackwards() error { return r.record("backwards") }
func (r *recorder) ScrollForwards() error { return r.record("forwards") }
func (r *recorder) ScrollToBeginning() error { return r.record("beginning") }
func (r *recorder) ScrollToEnd() error { return r.record("end") }
func (r *recorder) ScrollPageForwards(n int) error {
	return r.record("page-forwards:" + string(rune('0'+n)))
}
func (r *recorder) ScrollPageBackwards(n int) error {
	return r.record("page-backwards:" + string(rune('0'+n)))
}

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestScrollBehaviorDispatch(t *testing.T) {
	rec := &recorder{}
	b := NewScrollBehavior(rec).
		ForwardsOn(Special(tcell.KeyDown), Rune('j')).
		BackwardsOn(Special(tcell.KeyUp), Rune('k')).
		ToBeginningOn(Special(tcell.KeyHome), Rune('g')).
		ToEndOn(Special(tcell.KeyEnd), Rune('G'))

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"down arrow", keyEvent(tcell.KeyDown), "forwards"},
		{"j", runeEvent('j'), "forwards"},
		{"up arrow", keyEvent(tcell.KeyUp), "backwards"},
		{"k", runeEvent('k'), "backwards"},
		{"home", keyEvent(tcell.KeyHome), "beginning"},
		{"g", runeEvent('g'), "beginning"},
		{"end", keyEvent(tcell.KeyEnd), "end"},
		{"G", runeEvent('G'), "end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec.calls = nil
			handled, err := b.Handle(tt.ev)
			if !handled || err != nil {
				t.Fatalf("Handle=(%v,%v) want handled without error", handled, err)
			}
			if len(rec.calls) != 1 || rec.calls[0] != tt.want {
				t.Fatalf("calls=%v want [%s]", rec.calls, tt.want)
			}
		})
	}
}

func TestScrollBehaviorUnboundAndErrors(t *testing.T) {
	rec := &recorder{fail: true}
	b := NewScrollBehavior(rec).ForwardsOn(Rune('j'))

	if handled, _ := b.Handle(runeEvent('x')); handled {
		t.Fatalf("expected unbound rune to be ignored")
	}
	if handled, _ := b.Handle(keyEvent(tcell.KeyDown)); handled {
		t.Fatalf("expected unbound key to be ignored")
	}
	handled, err := b.Handle(runeEvent('j'))
	if !handled || !errors.Is(err, errLimit) {
		t.Fatalf("Handle=(%v,%v) want handled with limit error", handled, err)
	}
}

func TestPageScrollBehaviorUsesCurrentPageSize(t *testing.T) {
	rec := &recorder{}
	size := 3
	b := NewPageScrollBehavior(rec, func() int { return size }).
		ForwardsOn(Special(tcell.KeyPgDn), Rune(' ')).
		BackwardsOn(Special(tcell.KeyPgUp))

	if _, err := b.Handle(runeEvent(' ')); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	size = 0
	if _, err := b.Handle(keyEvent(tcell.KeyPgUp)); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := []string{"page-forwards:3", "page-backwards:1"}
	if len(rec.calls) != 2 || rec.calls[0] != want[0] || rec.calls[1] != want[1] {
		t.Fatalf("calls=%v want %v", rec.calls, want)
	}
}
