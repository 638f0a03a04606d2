// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htm

import (
	"cogentcore.org/core/tensor"
)

// ProximalSegment is the interface the Column depends on for its
// feed-forward connections: the synapse count bounds the overlap score,
// the derived activity state drives the active duty cycle, and the bulk
// permanence increase is the learning primitive the column delegates to.
type ProximalSegment interface {

	// SynapseCount returns the total number of synapses in the segment.
	SynapseCount() int

	// Active returns whether the segment is currently active, derived
	// from the state of its synapses.
	Active() bool

	// IncreasePermanences applies one fixed permanence-increase step to
	// every synapse in the segment.
	IncreasePermanences()
}

// htm.Segment is a proximal segment: the set of feed-forward synapses
// owned by one column.  Activity is derived from the fraction of synapses
// that are both connected and attached to an active input.
type Segment struct {

	// permanence parameters shared by all synapses in this segment
	Perm PermParams

	// fraction of synapses that must be connected-and-active for the
	// segment to be active
	ActThresh float32 `min:"0" max:"1" def:"0.2"`

	// the synapses.  Must iterate over index and use pointer to modify values.
	Syns []Synapse
}

func (sg *Segment) Defaults() {
	sg.Perm.Defaults()
	sg.ActThresh = 0.2
}

// Build allocates n synapses with initial permanence values drawn from the
// Perm.Init distribution.  Any existing synapses are discarded.
func (sg *Segment) Build(n int) {
	sg.Syns = make([]Synapse, n)
	for si := range sg.Syns {
		sg.Perm.InitPerm(&sg.Syns[si])
	}
}

// SynapseCount returns the total number of synapses in the segment.
func (sg *Segment) SynapseCount() int {
	return len(sg.Syns)
}

// ApplyInput marks each synapse's input as active or not from the
// corresponding value in the external input pattern (active = value > 0.5,
// as for binary patterns).  Extra synapses beyond the input length keep
// their previous input state.
func (sg *Segment) ApplyInput(ext tensor.Tensor) {
	mx := min(ext.Len(), len(sg.Syns))
	for si := 0; si < mx; si++ {
		sg.Syns[si].InputActive = ext.Float1D(si) > 0.5
	}
}

// Overlap returns the number of connected synapses whose input is active:
// the raw overlap score for the owning column this time step.
func (sg *Segment) Overlap() int {
	ov := 0
	for si := range sg.Syns {
		sy := &sg.Syns[si]
		if sy.InputActive && sg.Perm.Connected(sy) {
			ov++
		}
	}
	return ov
}

// Active returns whether the segment is active: the connected-and-active
// fraction of synapses is at or above ActThresh.  An empty segment is
// never active.
func (sg *Segment) Active() bool {
	n := len(sg.Syns)
	if n == 0 {
		return false
	}
	return float32(sg.Overlap()) >= sg.ActThresh*float32(n)
}

// IncreasePermanences applies one fixed permanence-increase step to every
// synapse in the segment.
func (sg *Segment) IncreasePermanences() {
	for si := range sg.Syns {
		sg.Perm.IncPerm(&sg.Syns[si])
	}
}

// DecreasePermanences applies one fixed permanence-decrease step to every
// synapse in the segment.
func (sg *Segment) DecreasePermanences() {
	for si := range sg.Syns {
		sg.Perm.DecPerm(&sg.Syns[si])
	}
}
