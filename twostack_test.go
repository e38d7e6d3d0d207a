// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ttlqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// requireRecombination checks that the outbox read top-to-base followed by the
// inbox read base-to-top matches [expected], the front-to-back order a deque
// would hold.
func requireRecombination(t *testing.T, s *TwoStack[int], expected []int) {
	t.Helper()
	require := require.New(t)

	recombined := []int{}
	for i := len(s.outbox) - 1; i >= 0; i-- {
		recombined = append(recombined, s.outbox[i].Value)
	}
	for _, e := range s.inbox {
		recombined = append(recombined, e.Value)
	}
	require.Equal(expected, recombined)
	require.Equal(len(expected), s.Len())
}

func TestTwoStackRotationOnlyWhenOutboxEmpty(t *testing.T) {
	require := require.New(t)

	clk := fakedClock(time.Now())
	s := NewTwoStack[int](NoExpiry, WithClock(clk))

	for i := 1; i <= 4; i++ {
		s.PushBack(i)
	}
	require.Len(s.inbox, 4)
	require.Empty(s.outbox)

	// First front access drains the inbox.
	e, ok := s.PopFront()
	require.True(ok)
	require.Equal(1, e.Value)
	require.Empty(s.inbox)
	require.Len(s.outbox, 3)

	// While the outbox is populated, new pushes stay in the inbox.
	s.PushBack(5)
	s.PushBack(6)
	_, ok = s.PopFront()
	require.True(ok)
	require.Len(s.inbox, 2)
	require.Len(s.outbox, 2)
	requireRecombination(t, s, []int{3, 4, 5, 6})

	// Only once the outbox runs dry do the buffered pushes cross over.
	_, _ = s.PopFront()
	_, _ = s.PopFront()
	require.Len(s.inbox, 2)
	require.Empty(s.outbox)

	e, ok = s.PopFront()
	require.True(ok)
	require.Equal(5, e.Value)
	require.Empty(s.inbox)
	require.Len(s.outbox, 1)
}

func TestTwoStackAmortizedMoves(t *testing.T) {
	require := require.New(t)

	clk := fakedClock(time.Now())
	s := NewTwoStack[int](NoExpiry, WithClock(clk))

	// Interleave pushes and pops and total up every inbox->outbox transfer. A
	// rotation is observable as the outbox going from empty to populated.
	const pushes = 1000
	moves := 0
	popped := 0
	for i := 0; i < pushes; i++ {
		s.PushBack(i)
		if i%3 == 0 {
			before := len(s.outbox)
			_, ok := s.PopFront()
			require.True(ok)
			if before == 0 {
				// Everything now in the outbox (plus the entry just popped)
				// crossed during this rotation.
				moves += len(s.outbox) + 1
			}
			popped++
		}
	}

	// Each entry crosses at most once over its lifetime.
	require.LessOrEqual(moves, pushes)
	require.Equal(pushes-popped, s.Len())
}

func TestTwoStackRefreshSkipsInboxWhenOutboxLive(t *testing.T) {
	require := require.New(t)

	start := time.Now()
	clk := fakedClock(start)
	s := NewTwoStack[int](50*time.Millisecond, WithClock(clk))

	s.PushBack(1)
	clk.Set(start.Add(20 * time.Millisecond))
	s.PushBack(2)

	// Rotate both entries into the outbox, then buffer a third in the inbox.
	_, ok := s.PeekFront()
	require.True(ok)
	clk.Set(start.Add(40 * time.Millisecond))
	s.PushBack(3)
	require.Len(s.outbox, 2)
	require.Len(s.inbox, 1)

	// The first entry expires but the second survives: phase 1 stops inside
	// the outbox and the inbox is never inspected.
	clk.Set(start.Add(60 * time.Millisecond))
	require.Equal(2, s.Refresh())
	require.Len(s.outbox, 1)
	require.Len(s.inbox, 1)
	requireRecombination(t, s, []int{2, 3})

	// Once the outbox drains, the scan continues from the inbox's base.
	clk.Set(start.Add(80 * time.Millisecond))
	require.Equal(1, s.Refresh())
	require.Empty(s.outbox)
	require.Len(s.inbox, 1)
	requireRecombination(t, s, []int{3})

	clk.Set(start.Add(100 * time.Millisecond))
	require.Zero(s.Refresh())
	require.True(s.Empty())
}

func TestTwoStackRefreshNeverRotates(t *testing.T) {
	require := require.New(t)

	start := time.Now()
	clk := fakedClock(start)
	s := NewTwoStack[int](50*time.Millisecond, WithClock(clk))

	s.PushBack(1)
	clk.Set(start.Add(30 * time.Millisecond))
	s.PushBack(2)

	// Refresh purges the expired inbox prefix in place; counting live entries
	// must not pay for a rotation.
	clk.Set(start.Add(60 * time.Millisecond))
	require.Equal(1, s.Refresh())
	require.Empty(s.outbox)
	require.Len(s.inbox, 1)
	require.Equal(2, s.inbox[0].Value)
}

func TestTwoStackIndex(t *testing.T) {
	require := require.New(t)

	clk := fakedClock(time.Now())
	s := NewTwoStack[int](NoExpiry, WithClock(clk))

	_, ok := s.Index(0)
	require.False(ok)

	for i := 0; i < 6; i++ {
		s.PushBack(i)
	}
	// Split 3/3 across the stacks.
	for i := 0; i < 3; i++ {
		_, _ = s.PopFront()
		s.PushBack(6 + i)
	}
	require.Len(s.outbox, 3)
	require.Len(s.inbox, 3)

	for i := 0; i < 6; i++ {
		e, ok := s.Index(i)
		require.True(ok)
		require.Equal(i+3, e.Value)
	}
	_, ok = s.Index(6)
	require.False(ok)
	_, ok = s.Index(-1)
	require.False(ok)
}
