// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ttlqueue

import (
	"time"
)

var _ Queue[bool] = (*TwoStack[bool])(nil)

// TwoStack is a TTL queue built from two stacks. Pushes land on the inbox;
// the front of the queue is served from the outbox, which is filled by pouring
// the inbox onto it in reverse whenever it runs dry. Each entry crosses from
// inbox to outbox at most once, so front access is O(1) amortized even though
// only push/pop-from-end primitives are used.
//
// Reading the outbox top-to-base and then the inbox base-to-top reproduces the
// same front-to-back insertion order a [Deque] would hold for the same
// operation sequence.
//
// TwoStack does not perform any synchronization and is not safe to use
// concurrently without external locking.
type TwoStack[T any] struct {
	ttl    time.Duration
	clock  Clock
	inbox  []Entry[T]
	outbox []Entry[T]
}

// NewTwoStack returns an empty queue that treats entries older than [ttl] as
// expired.
func NewTwoStack[T any](ttl time.Duration, opts ...Option) *TwoStack[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &TwoStack[T]{
		ttl:    ttl,
		clock:  o.clock,
		inbox:  make([]Entry[T], 0, o.capacity),
		outbox: make([]Entry[T], 0, o.capacity),
	}
}

func (s *TwoStack[T]) PushBack(value T) {
	s.inbox = append(s.inbox, Entry[T]{Instant: s.clock.Time(), Value: value})
}

func (s *TwoStack[T]) RefreshAndPushBack(value T) int {
	count := s.Refresh()
	s.PushBack(value)
	return count + 1
}

// ensureOutbox pours the inbox onto the outbox in reverse so the outbox's top
// holds the oldest entry. It only runs when the outbox is empty, which keeps
// the at-most-one-crossing guarantee.
func (s *TwoStack[T]) ensureOutbox() {
	if len(s.outbox) > 0 {
		return
	}
	for i := len(s.inbox) - 1; i >= 0; i-- {
		s.outbox = append(s.outbox, s.inbox[i])
	}
	clear(s.inbox)
	s.inbox = s.inbox[:0]
}

func (s *TwoStack[T]) PopFront() (Entry[T], bool) {
	s.ensureOutbox()
	if len(s.outbox) == 0 {
		return Entry[T]{}, false
	}
	top := len(s.outbox) - 1
	e := s.outbox[top]
	s.outbox[top] = Entry[T]{}
	s.outbox = s.outbox[:top]
	return e, true
}

func (s *TwoStack[T]) PeekFront() (Entry[T], bool) {
	s.ensureOutbox()
	if len(s.outbox) == 0 {
		return Entry[T]{}, false
	}
	return s.outbox[len(s.outbox)-1], true
}

func (s *TwoStack[T]) Len() int {
	return len(s.inbox) + len(s.outbox)
}

func (s *TwoStack[T]) Empty() bool {
	return s.Len() == 0
}

// Refresh scans in two phases, never rotating. The outbox is scanned from its
// top, which after any rotation holds the oldest entry overall. If anything
// survives there, everything in the inbox is newer still, so the combined
// length is already the exact live count. Only when the outbox drains does the
// scan continue at the inbox's base, its oldest end.
func (s *TwoStack[T]) Refresh() int {
	now := s.clock.Time()

	for len(s.outbox) > 0 {
		top := len(s.outbox) - 1
		if now.Sub(s.outbox[top].Instant) < s.ttl {
			break
		}
		s.outbox[top] = Entry[T]{}
		s.outbox = s.outbox[:top]
	}
	if len(s.outbox) > 0 {
		return s.Len()
	}

	drop := 0
	for drop < len(s.inbox) && now.Sub(s.inbox[drop].Instant) >= s.ttl {
		s.inbox[drop] = Entry[T]{}
		drop++
	}
	s.inbox = s.inbox[drop:]
	return len(s.inbox)
}

func (s *TwoStack[T]) Index(i int) (Entry[T], bool) {
	if i < 0 || i >= s.Len() {
		return Entry[T]{}, false
	}
	if i < len(s.outbox) {
		return s.outbox[len(s.outbox)-1-i], true
	}
	return s.inbox[i-len(s.outbox)], true
}
