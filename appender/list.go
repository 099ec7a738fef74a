package appender

import (
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// List is an ordered set of appenders compared by identity. Readers get
// an immutable snapshot without locking; writers copy the slice.
type List struct {
	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[[]Appender]
}

// Snapshot returns the current appenders in insertion order. The slice
// must not be modified.
func (l *List) Snapshot() []Appender {
	if p := l.snap.Load(); p != nil {
		return *p
	}
	return nil
}

// Len returns the number of appenders.
func (l *List) Len() int {
	return len(l.Snapshot())
}

// Contains reports whether a is in the list.
func (l *List) Contains(a Appender) bool {
	return indexOf(l.Snapshot(), a) >= 0
}

// Add appends a unless it is nil, already present, or of a type that
// cannot be compared for identity. It reports whether the list changed.
func (l *List) Add(a Appender) bool {
	if a == nil || !isComparable(a) {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.Snapshot()
	if indexOf(cur, a) >= 0 {
		return false
	}
	next := make([]Appender, len(cur), len(cur)+1)
	copy(next, cur)
	next = append(next, a)
	l.snap.Store(&next)
	return true
}

// Remove deletes a. It reports whether a was present.
func (l *List) Remove(a Appender) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.Snapshot()
	i := indexOf(cur, a)
	if i < 0 {
		return false
	}
	next := make([]Appender, 0, len(cur)-1)
	next = append(next, cur[:i]...)
	next = append(next, cur[i+1:]...)
	l.snap.Store(&next)
	return true
}

// Clear removes every appender.
func (l *List) Clear() {
	l.mu.Lock()
	l.snap.Store(nil)
	l.mu.Unlock()
}

// Close closes every appender and returns their combined errors. The
// list itself is left unchanged.
func (l *List) Close() error {
	var err error
	for _, a := range l.Snapshot() {
		err = multierr.Append(err, a.Close())
	}
	return err
}

func indexOf(list []Appender, a Appender) int {
	if a == nil || !isComparable(a) {
		return -1
	}
	for i, x := range list {
		if x == a {
			return i
		}
	}
	return -1
}

func isComparable(a Appender) bool {
	return reflect.TypeOf(a).Comparable()
}
