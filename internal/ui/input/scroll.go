package input

import "github.com/gdamore/tcell/v2"

// Scrollable is anything with a position that can move one step at a time.
type Scrollable interface {
	ScrollBackwards() error
	ScrollForwards() error
	ScrollToBeginning() error
	ScrollToEnd() error
}

// PageScrollable can move several lines at once.
type PageScrollable interface {
	ScrollPageForwards(n int) error
	ScrollPageBackwards(n int) error
}

// Key identifies a key press: either a special key or a rune.
type Key struct {
	code tcell.Key
	r    rune
}

// Special binds a non-rune key such as tcell.KeyDown.
func Special(k tcell.Key) Key { return Key{code: k} }

// Rune binds a printable character.
func Rune(r rune) Key { return Key{code: tcell.KeyRune, r: r} }

func (k Key) matches(ev *tcell.EventKey) bool {
	if ev == nil || ev.Key() != k.code {
		return false
	}
	return k.code != tcell.KeyRune || ev.Rune() == k.r
}

func anyMatches(keys []Key, ev *tcell.EventKey) bool {
	for _, k := range keys {
		if k.matches(ev) {
			return true
		}
	}
	return false
}

// ScrollBehavior maps keys onto the operations of a Scrollable.
type ScrollBehavior struct {
	target    Scrollable
	forwards  []Key
	backwards []Key
	beginning []Key
	end       []Key
}

func NewScrollBehavior(target Scrollable) *ScrollBehavior {
	return &ScrollBehavior{target: target}
}

func (b *ScrollBehavior) ForwardsOn(keys ...Key) *ScrollBehavior {
	b.forwards = append(b.forwards, keys...)
	return b
}

func (b *ScrollBehavior) BackwardsOn(keys ...Key) *ScrollBehavior {
	b.backwards = append(b.backwards, keys...)
	return b
}

func (b *ScrollBehavior) ToBeginningOn(keys ...Key) *ScrollBehavior {
	b.beginning = append(b.beginning, keys...)
	return b
}

func (b *ScrollBehavior) ToEndOn(keys ...Key) *ScrollBehavior {
	b.end = append(b.end, keys...)
	return b
}

// Handle runs the operation bound to ev. handled is false when no binding
// matches; err is the error of the operation that ran.
func (b *ScrollBehavior) Handle(ev *tcell.EventKey) (handled bool, err error) {
	switch {
	case anyMatches(b.forwards, ev):
		return true, b.target.ScrollForwards()
	case anyMatches(b.backwards, ev):
		return true, b.target.ScrollBackwards()
	case anyMatches(b.beginning, ev):
		return true, b.target.ScrollToBeginning()
	case anyMatches(b.end, ev):
		return true, b.target.ScrollToEnd()
	default:
		return false, nil
	}
}

// PageScrollBehavior maps keys onto page-wise scrolling. The page size is
// read on every key press so it follows terminal resizes.
type PageScrollBehavior struct {
	target    PageScrollable
	pageSize  func() int
	forwards  []Key
	backwards []Key
}

func NewPageScrollBehavior(target PageScrollable, pageSize func() int) *PageScrollBehavior {
	return &PageScrollBehavior{target: target, pageSize: pageSize}
}

func (b *PageScrollBehavior) ForwardsOn(keys ...Key) *PageScrollBehavior {
	b.forwards = append(b.forwards, keys...)
	return b
}

func (b *PageScrollBehavior) BackwardsOn(keys ...Key) *PageScrollBehavior {
	b.backwards = append(b.backwards, keys...)
	return b
}

func (b *PageScrollBehavior) size() int {
	if b.pageSize == nil {
		return 1
	}
	if n := b.pageSize(); n > 1 {
		return n
	}
	return 1
}

func (b *PageScrollBehavior) Handle(ev *tcell.EventKey) (handled bool, err error) {
	switch {
	case anyMatches(b.forwards, ev):
		return true, b.target.ScrollPageForwards(b.size())
	case anyMatches(b.backwards, ev):
		return true, b.target.ScrollPageBackwards(b.size())
	default:
		return false, nil
	}
}
