// Package alloc tracks live pixel resources with atomic gauges.
//
// Frames and surfaces transfer ownership across package boundaries;
// the gauges make those transfers observable, both for the loader's
// statistics and for tests that verify nothing leaks or double-frees.
package alloc

import "sync/atomic"

// Gauge is an atomic counter of live resources of one kind.
// The zero value is ready to use.
type Gauge struct {
	n atomic.Int64
}

// Inc records one more live resource.
func (g *Gauge) Inc() {
	g.n.Add(1)
}

// Dec records one released resource.
func (g *Gauge) Dec() {
	g.n.Add(-1)
}

// Current returns the number of live resources.
func (g *Gauge) Current() int64 {
	return g.n.Load()
}

// Frames counts decoded frames that have not been released.
var Frames Gauge

// Surfaces counts surfaces that have not been destroyed.
var Surfaces Gauge
