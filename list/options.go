package list

import "github.com/sirupsen/logrus"

type (
	// Releaser disposes of a value the list owns. It is called whenever a
	// value leaves the list through DeleteAt, Filter or Release.
	Releaser[T any] func(v T)

	// Cloner copies a value for Split.
	Cloner[T any] func(v T) T

	Option[T any] func(l *List[T])
)

// WithAllocator makes the list draw its nodes from a. Several lists may share
// one allocator.
func WithAllocator[T any](a Allocator) Option[T] {
	return func(l *List[T]) {
		if a != nil {
			l.alloc = a
		}
	}
}

func WithReleaser[T any](r Releaser[T]) Option[T] {
	return func(l *List[T]) {
		l.release = r
	}
}

func WithCloner[T any](c Cloner[T]) Option[T] {
	return func(l *List[T]) {
		l.clone = c
	}
}

// WithLogger replaces the default helper.Log entry. The list id is added as
// the "list" field.
func WithLogger[T any](entry *logrus.Entry) Option[T] {
	return func(l *List[T]) {
		if entry != nil {
			l.log = entry.WithField("list", l.id)
		}
	}
}
