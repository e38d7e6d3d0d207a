// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ttlqueue

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

var _ Queue[bool] = (*Metered[bool])(nil)

// Metered wraps a queue and counts pushes, pops, and expirations. It adds no
// synchronization; like the backends it must not be used concurrently without
// external locking.
type Metered[T any] struct {
	q Queue[T]

	pushed  prometheus.Counter
	popped  prometheus.Counter
	expired prometheus.Counter
}

// NewMetered registers counters for [q] under [namespace] on [r] and returns
// the instrumented queue.
func NewMetered[T any](q Queue[T], namespace string, r prometheus.Registerer) (*Metered[T], error) {
	m := &Metered[T]{
		q: q,
		pushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_pushed",
			Help:      "number of entries pushed onto the queue",
		}),
		popped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_popped",
			Help:      "number of entries explicitly popped from the queue",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_expired",
			Help:      "number of entries dropped by refresh",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.pushed),
		r.Register(m.popped),
		r.Register(m.expired),
	)
	return m, errs.Err
}

func (m *Metered[T]) PushBack(value T) {
	m.q.PushBack(value)
	m.pushed.Inc()
}

func (m *Metered[T]) RefreshAndPushBack(value T) int {
	count := m.Refresh()
	m.PushBack(value)
	return count + 1
}

func (m *Metered[T]) PopFront() (Entry[T], bool) {
	e, ok := m.q.PopFront()
	if ok {
		m.popped.Inc()
	}
	return e, ok
}

func (m *Metered[T]) PeekFront() (Entry[T], bool) {
	return m.q.PeekFront()
}

func (m *Metered[T]) Len() int {
	return m.q.Len()
}

func (m *Metered[T]) Empty() bool {
	return m.q.Empty()
}

func (m *Metered[T]) Refresh() int {
	before := m.q.Len()
	count := m.q.Refresh()
	m.expired.Add(float64(before - count))
	return count
}

func (m *Metered[T]) Index(i int) (Entry[T], bool) {
	return m.q.Index(i)
}
