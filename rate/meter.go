// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rate

import (
	"time"

	"github.com/ava-labs/ttlqueue"
)

// Meter counts events observed within a sliding window. Recording a frame on
// every render and reading the returned count yields a frames-per-second
// counter when the window is one second.
//
// Meter is not safe to use concurrently without external locking.
type Meter struct {
	q ttlqueue.Queue[struct{}]
}

// NewMeter returns a meter that counts events no older than [window].
func NewMeter(window time.Duration, opts ...ttlqueue.Option) *Meter {
	return &Meter{
		q: ttlqueue.NewTwoStack[struct{}](window, opts...),
	}
}

// Tick records an event and returns the number of events observed within the
// window, including this one.
func (m *Meter) Tick() int {
	return m.q.RefreshAndPushBack(struct{}{})
}

// Rate returns the number of events observed within the window.
func (m *Meter) Rate() int {
	return m.q.Refresh()
}
