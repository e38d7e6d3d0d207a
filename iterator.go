// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ttlqueue

// Iterator is a restartable, bidirectional cursor over a queue's entries in
// front-to-back order. It reads entries in place without consuming them, so
// the sequence it yields is exactly insertion order on either backend,
// including across any rotations inside [TwoStack].
//
// The cursor holds a position, not a snapshot: mutating the queue while
// iterating shifts entries under it.
type Iterator[T any] struct {
	q   Queue[T]
	pos int
}

// Iterate returns a cursor positioned before the front of [q]. The first
// call to [Iterator.Next] moves it onto the frontmost entry.
func Iterate[T any](q Queue[T]) *Iterator[T] {
	return &Iterator[T]{q: q, pos: -1}
}

// Next advances toward the back and reports whether the cursor landed on an
// entry.
func (it *Iterator[T]) Next() bool {
	if it.pos < it.q.Len() {
		it.pos++
	}
	return it.pos < it.q.Len()
}

// Prev retreats toward the front and reports whether the cursor landed on an
// entry.
func (it *Iterator[T]) Prev() bool {
	if it.pos >= 0 {
		it.pos--
	}
	return it.pos >= 0
}

// Entry returns the entry under the cursor. Only valid after a Next or Prev
// that returned true.
func (it *Iterator[T]) Entry() Entry[T] {
	e, _ := it.q.Index(it.pos)
	return e
}

// Value returns the value under the cursor.
func (it *Iterator[T]) Value() T {
	return it.Entry().Value
}

// Reset rewinds the cursor to before the front entry.
func (it *Iterator[T]) Reset() {
	it.pos = -1
}

// SeekBack parks the cursor past the back entry so that Prev walks the queue
// back-to-front.
func (it *Iterator[T]) SeekBack() {
	it.pos = it.q.Len()
}
