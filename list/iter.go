package list

import "iter"

// All returns a forward sequence of positions and values. The same structural
// rules as Iterate apply while the sequence is being ranged over.
func (l *List[T]) All() iter.Seq2[int, T] {
	l.mustBeLive("All")
	return func(yield func(int, T) bool) {
		index := 1
		for n := l.first; n != nil; n = n.next {
			if !yield(index, n.val) {
				return
			}
			index++
		}
	}
}

func (l *List[T]) Values() []T {
	l.mustBeLive("Values")
	values := make([]T, 0, l.length)
	for n := l.first; n != nil; n = n.next {
		values = append(values, n.val)
	}
	return values
}
