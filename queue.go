// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ttlqueue provides a generic in-memory queue that treats entries
// older than a fixed time-to-live as expired, without a background eviction
// task. It is intended for bounded-recency state such as frequency counters
// and sliding-window event logs.
//
// Two interchangeable backends implement the same [Queue] contract: [Deque],
// backed by a double-ended queue, and [TwoStack], built from two stacks with
// an amortized O(1) rotation.
package ttlqueue

import (
	"math"
	"time"

	"github.com/ava-labs/avalanchego/utils/timer/mockable"
)

// NoExpiry is a TTL for queues whose entries should never be treated as
// expired.
const NoExpiry = time.Duration(math.MaxInt64)

const defaultCapacity = 16

// Entry pairs a value with the instant it was pushed onto a queue.
//
// Entries are returned by value; once popped, the queue holds no reference to
// the entry.
type Entry[T any] struct {
	Instant time.Time
	Value   T
}

// Clock provides the current time to a queue. The zero [mockable.Clock] reads
// the system monotonic clock; a faked one enables deterministic tests.
type Clock interface {
	Time() time.Time
}

// Queue is the contract shared by both TTL queue backends. An entry is live
// while its age (now minus its insertion instant) is strictly less than the
// queue's TTL; expired entries remain counted by [Len] until a refresh or a
// pop removes them.
//
// Implementations do not perform any synchronization and are not safe to use
// concurrently without external locking.
type Queue[T any] interface {
	// PushBack appends [value] to the back of the queue, stamped with the
	// current time.
	PushBack(value T)

	// RefreshAndPushBack removes the expired prefix, appends [value], and
	// returns the exact number of live entries including the one just added.
	RefreshAndPushBack(value T) int

	// PopFront removes and returns the frontmost entry. It does not check
	// expiry; callers that only want live entries should call Refresh first.
	PopFront() (Entry[T], bool)

	// PeekFront returns the frontmost entry without removing it.
	PeekFront() (Entry[T], bool)

	// Len returns the number of stored entries, including expired entries
	// that have not been purged yet. It never undercounts.
	Len() int

	// Empty returns true only if no entries are stored. A false result may
	// still mean that every remaining entry is expired.
	Empty() bool

	// Refresh reads the clock once, removes the expired prefix, and returns
	// the exact number of live entries.
	Refresh() int

	// Index returns the entry [i] positions from the front, counting from
	// zero, without removing it.
	Index(i int) (Entry[T], bool)
}

type options struct {
	capacity int
	clock    Clock
}

func defaultOptions() options {
	return options{
		capacity: defaultCapacity,
		clock:    &mockable.Clock{},
	}
}

type Option func(*options)

// WithCapacity sets the initial capacity hint of the backing containers. It
// has no behavioral effect.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithClock sets the clock entries are stamped against. Useful for
// deterministic expiry tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}
