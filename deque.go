// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ttlqueue

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/buffer"
)

var _ Queue[bool] = (*Deque[bool])(nil)

// Deque is a TTL queue backed by an unbounded double-ended queue.
//
// Entries are stored in insertion order, so timestamps are non-decreasing from
// front to back and expired entries always form a contiguous prefix at the
// front. Refresh walks that prefix and stops at the first live entry; no entry
// past it needs to be inspected.
//
// Deque does not perform any synchronization and is not safe to use
// concurrently without external locking.
type Deque[T any] struct {
	ttl   time.Duration
	clock Clock
	q     buffer.Deque[Entry[T]]
}

// NewDeque returns an empty queue that treats entries older than [ttl] as
// expired.
func NewDeque[T any](ttl time.Duration, opts ...Option) *Deque[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Deque[T]{
		ttl:   ttl,
		clock: o.clock,
		q:     buffer.NewUnboundedDeque[Entry[T]](o.capacity),
	}
}

func (d *Deque[T]) PushBack(value T) {
	d.q.PushRight(Entry[T]{Instant: d.clock.Time(), Value: value})
}

func (d *Deque[T]) RefreshAndPushBack(value T) int {
	count := d.Refresh()
	d.PushBack(value)
	return count + 1
}

func (d *Deque[T]) PopFront() (Entry[T], bool) {
	return d.q.PopLeft()
}

func (d *Deque[T]) PeekFront() (Entry[T], bool) {
	return d.q.PeekLeft()
}

// PopBack removes and returns the backmost entry. Back-removal is specific to
// this backend; code written against [Queue] cannot rely on it.
func (d *Deque[T]) PopBack() (Entry[T], bool) {
	return d.q.PopRight()
}

func (d *Deque[T]) Len() int {
	return d.q.Len()
}

func (d *Deque[T]) Empty() bool {
	return d.q.Len() == 0
}

func (d *Deque[T]) Refresh() int {
	now := d.clock.Time()
	for {
		e, ok := d.q.PeekLeft()
		if !ok || now.Sub(e.Instant) < d.ttl {
			break
		}
		d.q.PopLeft()
	}
	return d.q.Len()
}

func (d *Deque[T]) Index(i int) (Entry[T], bool) {
	return d.q.Index(i)
}
