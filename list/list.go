// Package list implements a generic singly linked list with 1-based
// positional access.
//
// A List is not safe for concurrent use. Join and Release consume their
// receivers: any further use of a consumed list panics.
package list

import (
	"fmt"
	"strings"

	platformerror "simple-list/internal/platform/error"
	"simple-list/internal/platform/helper"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type List[T any] struct {
	first    *node[T]
	last     *node[T]
	length   int
	alloc    Allocator
	release  Releaser[T]
	clone    Cloner[T]
	log      *logrus.Entry
	id       string
	consumed bool
}

// New returns an empty list. Without WithAllocator the list gets its own
// unbounded Budget.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{
		id:    generateID(),
		alloc: NewBudget(0),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = helper.Log.WithField("list", l.id)
	}
	l.log.Trace("initialized")
	return l
}

func generateID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func (l *List[T]) ID() string {
	return l.id
}

func (l *List[T]) Count() int {
	l.mustBeLive("Count")
	return l.length
}

// Append inserts v after the last value. On failure the list is unchanged.
func (l *List[T]) Append(v T) error {
	l.mustBeLive("Append")
	n, err := l.create(v)
	if err != nil {
		return err
	}
	if l.length == 0 {
		l.insertFirst(n)
	} else {
		l.last.next = n
		l.last = n
	}
	l.length++
	return nil
}

// Prepend inserts v before the first value. On failure the list is unchanged.
func (l *List[T]) Prepend(v T) error {
	l.mustBeLive("Prepend")
	n, err := l.create(v)
	if err != nil {
		return err
	}
	if l.length == 0 {
		l.insertFirst(n)
	} else {
		n.next = l.first
		l.first = n
	}
	l.length++
	return nil
}

// Nth returns the value at position. Positions at or past Count return the
// last value. Nth panics on an empty list or when position < 1; use At for a
// bounds-checked lookup.
func (l *List[T]) Nth(position int) T {
	l.mustBeLive("Nth")
	if l.length == 0 {
		panic(platformerror.NewStackTraceError("Nth on an empty list", platformerror.EmptyListErrorCode))
	}
	if position < 1 {
		panic(platformerror.NewStackTraceError(
			fmt.Sprintf("Nth: position %d is not 1-based", position), platformerror.InvalidPositionErrorCode))
	}
	if position == 1 {
		return l.first.val
	}
	if position >= l.length {
		return l.last.val
	}
	return l.nodeAt(position).val
}

// At is Nth without clamping.
func (l *List[T]) At(position int) (T, error) {
	l.mustBeLive("At")
	if position < 1 || position > l.length {
		var zero T
		return zero, NewPositionOutOfRangeError(position, l.length)
	}
	return l.nodeAt(position).val, nil
}

// DeleteAt removes the value at position and hands it to the releaser. It
// does nothing when position is outside [1, Count].
func (l *List[T]) DeleteAt(position int) {
	l.mustBeLive("DeleteAt")
	if l.length == 0 || position < 1 || position > l.length {
		return
	}

	var removed *node[T]
	if position == 1 {
		removed = l.first
		l.first = removed.next
		if l.first == nil {
			l.last = nil
		}
	} else {
		prev := l.nodeAt(position - 1)
		removed = prev.next
		prev.next = removed.next
		if removed == l.last {
			l.last = prev
		}
	}
	l.length--
	l.destroy(removed)
}

// Iterate calls visit with each position and value in order until visit
// returns false. visit may modify what a value points to but must not add or
// remove values.
func (l *List[T]) Iterate(visit func(index int, v T) bool) {
	l.mustBeLive("Iterate")
	index := 1
	for n := l.first; n != nil; n = n.next {
		if !visit(index, n.val) {
			return
		}
		index++
	}
}

// Reduce calls fn(acc, v) for every value of l in order. acc is threaded
// through unchanged, so it should be a pointer or another reference the
// caller mutates.
func Reduce[T, A any](l *List[T], fn func(acc A, v T), acc A) {
	l.mustBeLive("Reduce")
	if l.length == 0 {
		return
	}
	for n := l.first; n != nil; n = n.next {
		fn(acc, n.val)
	}
}

// Find returns the position of the first value matching pred, or 0.
func (l *List[T]) Find(pred func(index int, v T) bool) int {
	l.mustBeLive("Find")
	index := 1
	for n := l.first; n != nil; n = n.next {
		if pred(index, n.val) {
			return index
		}
		index++
	}
	return 0
}

// Split appends the first lengthFirst values of l to first and the rest to
// second. Values are cloned when l has a Cloner and shared otherwise. l is
// not modified. On allocation failure first and second are restored to their
// state on entry.
func (l *List[T]) Split(lengthFirst int, first, second *List[T]) error {
	l.mustBeLive("Split")
	first.mustBeLive("Split")
	second.mustBeLive("Split")
	if first == l || second == l || first == second {
		panic(platformerror.NewStackTraceError("Split: outputs must be distinct from each other and the source",
			platformerror.SameListErrorCode))
	}

	firstLength, firstLast := first.length, first.last
	secondLength, secondLast := second.length, second.last

	index := 1
	for n := l.first; n != nil; n = n.next {
		dst := second
		if index <= lengthFirst {
			dst = first
		}
		v := n.val
		if l.clone != nil {
			v = l.clone(v)
		}
		if err := dst.Append(v); err != nil {
			dropped := append([]T{v}, first.truncate(firstLength, firstLast)...)
			dropped = append(dropped, second.truncate(secondLength, secondLast)...)
			if l.clone != nil && l.release != nil {
				for _, c := range dropped {
					l.release(c)
				}
			}
			l.log.Debugf("split rolled back at position %d: %s", index, err)
			return fmt.Errorf("List.Split: position %d: %w", index, err)
		}
		index++
	}
	l.log.Debugf("split %d values into %s and %s", l.length, first.id, second.id)
	return nil
}

// Filter removes, in one forward pass, every value for which keep returns
// false. Removed values go to the releaser.
func (l *List[T]) Filter(keep func(v T) bool) {
	l.mustBeLive("Filter")
	var prev *node[T]
	for n := l.first; n != nil; {
		next := n.next
		if keep(n.val) {
			prev = n
			n = next
			continue
		}
		if prev == nil {
			l.first = next
		} else {
			prev.next = next
		}
		if n == l.last {
			l.last = prev
		}
		l.length--
		l.destroy(n)
		n = next
	}
}

// Join returns a list holding the values of a followed by those of b. Nodes
// are relinked, not copied, and both a and b are consumed. The result takes
// a's allocator and logger, and a's releaser and cloner, falling back to b's
// when a has none; b's nodes are moved to a's allocator.
func Join[T any](a, b *List[T]) *List[T] {
	a.mustBeLive("Join")
	b.mustBeLive("Join")
	if a == b {
		panic(platformerror.NewStackTraceError("Join: a list cannot be joined with itself",
			platformerror.SameListErrorCode))
	}

	joined := &List[T]{
		id:      generateID(),
		alloc:   a.alloc,
		release: a.release,
		clone:   a.clone,
	}
	if joined.release == nil {
		joined.release = b.release
	}
	if joined.clone == nil {
		joined.clone = b.clone
	}
	joined.log = a.log.WithField("list", joined.id)

	if b.alloc != a.alloc && b.length > 0 {
		b.alloc.Free(b.length)
		a.alloc.Adopt(b.length)
	}

	switch {
	case a.length == 0:
		joined.first, joined.last = b.first, b.last
	case b.length == 0:
		joined.first, joined.last = a.first, a.last
	default:
		a.last.next = b.first
		joined.first, joined.last = a.first, b.last
	}
	joined.length = a.length + b.length

	joined.log.Debugf("joined %s (%d) and %s (%d)", a.id, a.length, b.id, b.length)
	a.consume()
	b.consume()
	return joined
}

// Release hands every value to the releaser, frees every node and consumes
// the list. Releasing a consumed list does nothing.
func (l *List[T]) Release() {
	if l == nil || l.consumed {
		return
	}
	released := l.length
	for n := l.first; n != nil; {
		next := n.next
		l.destroy(n)
		n = next
	}
	l.consume()
	l.log.Debugf("released %d nodes", released)
}

func (l *List[T]) String() string {
	if l.consumed {
		return "<consumed>"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.first; n != nil; n = n.next {
		if n != l.first {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.val)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) create(v T) (*node[T], error) {
	if err := l.alloc.Reserve(); err != nil {
		l.log.Debugf("allocation failed at length %d: %s", l.length, err)
		return nil, err
	}
	return &node[T]{val: v}, nil
}

func (l *List[T]) insertFirst(n *node[T]) {
	l.first = n
	l.last = n
}

// nodeAt walks to position, which must be in [1, length].
func (l *List[T]) nodeAt(position int) *node[T] {
	n := l.first
	for i := 1; i < position; i++ {
		n = n.next
	}
	return n
}

func (l *List[T]) destroy(n *node[T]) {
	if l.release != nil {
		l.release(n.val)
	}
	var zero T
	n.val = zero
	n.next = nil
	l.alloc.Free(1)
}

// truncate drops every node after last, which was the tail when the list had
// length values, and returns the dropped values without releasing them.
func (l *List[T]) truncate(length int, last *node[T]) []T {
	var n *node[T]
	if length == 0 {
		n = l.first
		l.first = nil
	} else {
		n = last.next
		last.next = nil
	}
	l.last = last
	l.length = length

	var dropped []T
	for n != nil {
		next := n.next
		dropped = append(dropped, n.val)
		var zero T
		n.val = zero
		n.next = nil
		l.alloc.Free(1)
		n = next
	}
	return dropped
}

func (l *List[T]) consume() {
	l.first = nil
	l.last = nil
	l.length = 0
	l.consumed = true
}

func (l *List[T]) mustBeLive(op string) {
	if l == nil {
		panic(platformerror.NewStackTraceError(op+" on a nil list", platformerror.NilListErrorCode))
	}
	if l.consumed {
		panic(platformerror.NewStackTraceError(
			fmt.Sprintf("%s on list %s after Join or Release", op, l.id), platformerror.ListConsumedErrorCode))
	}
}
