// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htm

import (
	"errors"
	"fmt"

	"github.com/emer/htm/dutycycle"
)

// htm.Column is one computational unit of spatial pooling: a fixed pool of
// neurons sharing one proximal segment of feed-forward connections, plus
// the per-time-step learning statistics (overlap score, boost value, duty
// cycles) that the inhibition loop reads and updates.
//
// Input to a Column: the number of active synapses on its proximal segment.
// Output from a Column: whether it is active after inhibition.
//
// Fields that take part in invariants (overlap score, boost value, duty
// cycles, neighbor indices, learning neuron) are unexported and mutated
// only through validating methods; out-of-contract values are rejected
// with an error and never clamped or coerced.
type Column struct {

	// whether this column won inhibition this time step -- set by the
	// inhibition loop, cached here so it is not recomputed within the step
	Active bool

	// the neuron pool.  Fixed size from construction on.
	// Must iterate over index and use pointer to modify values.
	Neurons []Neuron

	// the proximal segment: feed-forward connections owned exclusively
	// by this column
	Proximal Segment

	// duty-cycle EMA parameters
	Duty dutycycle.Params

	// number of active input connections this time step.
	// Always in [0, Proximal.SynapseCount()).
	overlap int

	// ranking multiplier favoring historically under-active columns, >= 0
	boost float32

	// EMA of how often this column has been active after inhibition.
	// Strictly > 0: the EMA update stalls permanently at exactly 0.
	activeDuty float32

	// EMA of how often this column's overlap cleared the minimum, >= 0
	overlapDuty float32

	// indices of neighbor columns within the owning region's arena.
	// Non-owning: repopulated by the inhibition loop each time step.
	neighbors []int32

	// index of the neuron currently designated for learning; only valid
	// once learnSet
	learnIndex int
	learnSet   bool
}

// NewColumn returns a new Column with a neuron pool of given size and an
// empty proximal segment.  Returns an error if numNeurons < 1.
func NewColumn(numNeurons int) (*Column, error) {
	if numNeurons < 1 {
		return nil, fmt.Errorf("htm.NewColumn: numNeurons must be >= 1, got %d", numNeurons)
	}
	cl := &Column{}
	cl.Neurons = make([]Neuron, numNeurons)
	cl.Proximal.Defaults()
	cl.Duty.Defaults()
	cl.InitStats()
	return cl, nil
}

// InitStats initializes the learning statistics to their starting values:
// boost 1, both duty cycles 1 (the duty cycles must start strictly above 0),
// no overlap, no neighbors.
func (cl *Column) InitStats() {
	cl.overlap = 0
	cl.boost = 1
	cl.activeDuty = 1
	cl.overlapDuty = 1
	cl.neighbors = cl.neighbors[:0]
}

// Overlap returns the overlap score for this time step.
func (cl *Column) Overlap() int {
	return cl.overlap
}

// SetOverlap records the overlap score computed by the pooling loop for
// this time step.  The score counts active input connections, so it must
// be >= 0 and strictly less than the proximal synapse count; anything else
// is rejected.
func (cl *Column) SetOverlap(overlap int) error {
	if overlap < 0 || overlap >= cl.Proximal.SynapseCount() {
		return fmt.Errorf("htm.Column: SetOverlap: overlap %d outside [0, %d)", overlap, cl.Proximal.SynapseCount())
	}
	cl.overlap = overlap
	return nil
}

// Boost returns the current boost value.
func (cl *Column) Boost() float32 {
	return cl.boost
}

// SetBoost sets the boost value; must be >= 0.
func (cl *Column) SetBoost(boost float32) error {
	if boost < 0 {
		return fmt.Errorf("htm.Column: SetBoost: boost must be >= 0, got %g", boost)
	}
	cl.boost = boost
	return nil
}

// ActiveDuty returns the active duty cycle.
func (cl *Column) ActiveDuty() float32 {
	return cl.activeDuty
}

// OverlapDuty returns the overlap duty cycle.
func (cl *Column) OverlapDuty() float32 {
	return cl.overlapDuty
}

// SetOverlapDuty sets the overlap duty cycle; must be >= 0.
func (cl *Column) SetOverlapDuty(duty float32) error {
	if duty < 0 {
		return fmt.Errorf("htm.Column: SetOverlapDuty: duty must be >= 0, got %g", duty)
	}
	cl.overlapDuty = duty
	return nil
}

// BoostFromDuty computes the boost multiplier for this column given the
// minimum desired duty cycle for its neighborhood, per Duty.Boost: below
// the minimum the multiplier is minDuty / activeDuty (> 1, growing as the
// column falls behind), above it the duty cycle itself.  Pure: reads but
// does not mutate column state -- the caller applies the result to the
// boost value or the ranking score.  minDuty must be > 0.
func (cl *Column) BoostFromDuty(minDuty float32) (float32, error) {
	if minDuty <= 0 {
		return 0, fmt.Errorf("htm.Column: BoostFromDuty: minDuty must be > 0, got %g", minDuty)
	}
	return cl.Duty.Boost(cl.activeDuty, minDuty), nil
}

// UpdateActiveDuty updates the active duty cycle EMA from whether the
// proximal segment is currently active.
func (cl *Column) UpdateActiveDuty() {
	cl.Duty.AvgFromAct(&cl.activeDuty, cl.Proximal.Active())
}

// UpdateOverlapDuty updates the overlap duty cycle EMA from whether this
// time step's overlap score reached the given minimum overlap.
func (cl *Column) UpdateOverlapDuty(minOverlap int) {
	cl.Duty.AvgFromAct(&cl.overlapDuty, cl.overlap >= minOverlap)
}

// IncreasePermanences invokes the proximal segment's bulk permanence
// increase exactly scale times.  Repeated discrete steps, not one scaled
// multiply: the segment's fixed step size owns the learning-rate
// granularity.  scale must be >= 0.
func (cl *Column) IncreasePermanences(scale int) error {
	if scale < 0 {
		return fmt.Errorf("htm.Column: IncreasePermanences: scale must be >= 0, got %d", scale)
	}
	IncreaseSegmentPermanences(&cl.Proximal, scale)
	return nil
}

// IncreaseSegmentPermanences invokes the segment's bulk permanence
// increase primitive exactly n times.
func IncreaseSegmentPermanences(seg ProximalSegment, n int) {
	for i := 0; i < n; i++ {
		seg.IncreasePermanences()
	}
}

// Neighbors returns the neighbor column indices for this time step.
func (cl *Column) Neighbors() []int32 {
	return cl.neighbors
}

// SetNeighbors sets the neighbor column indices (into the owning region's
// arena) for this time step.  The list must be non-nil; it may be empty.
func (cl *Column) SetNeighbors(idxs []int32) error {
	if idxs == nil {
		return errors.New("htm.Column: SetNeighbors: neighbor index list must not be nil")
	}
	cl.neighbors = idxs
	return nil
}

// SetLearningNeuron designates the neuron at given index within the pool
// as the learning neuron.  idx must be in [0, len(Neurons)).
func (cl *Column) SetLearningNeuron(idx int) error {
	if idx < 0 || idx >= len(cl.Neurons) {
		return fmt.Errorf("htm.Column: SetLearningNeuron: index %d outside [0, %d)", idx, len(cl.Neurons))
	}
	cl.learnIndex = idx
	cl.learnSet = true
	return nil
}

// LearningNeuron returns the currently designated learning neuron.
// Returns an error if no learning neuron has been designated yet.
func (cl *Column) LearningNeuron() (*Neuron, error) {
	if !cl.learnSet {
		return nil, errors.New("htm.Column: LearningNeuron: no learning neuron designated")
	}
	return &cl.Neurons[cl.learnIndex], nil
}

// NextTimeStep resets the transient per-step decision state -- overlap
// score to 0, neighbor list to empty, boost value to 1 -- in preparation
// for the next iteration.  The duty cycles, neuron pool, and proximal
// synapses are long-horizon learned state and persist across steps.
func (cl *Column) NextTimeStep() {
	cl.overlap = 0
	cl.neighbors = cl.neighbors[:0]
	cl.boost = 1
}

func (cl *Column) String() string {
	return fmt.Sprintf("Column{neurons: %d, synapses: %d, overlap: %d, boost: %g, activeDuty: %g, overlapDuty: %g, active: %v}",
		len(cl.Neurons), cl.Proximal.SynapseCount(), cl.overlap, cl.boost, cl.activeDuty, cl.overlapDuty, cl.Active)
}
