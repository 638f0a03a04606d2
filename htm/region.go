// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htm

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// htm.Region is the owning arena for a population of columns.  Columns
// refer to each other (as inhibition neighbors) only by index into this
// arena, never by pointer, so neighbor relationships carry no ownership
// or lifetime implications.  The region does not construct topology or
// discover neighborhoods -- neighbor index lists come from the caller.
type Region struct {

	// the columns.  Must iterate over index and use pointer to modify values.
	Columns []Column
}

// NewRegion returns a new Region built with given number of columns,
// neurons per column, and synapses per proximal segment.
func NewRegion(nColumns, nNeurons, nSynapses int) (*Region, error) {
	rg := &Region{}
	if err := rg.Build(nColumns, nNeurons, nSynapses); err != nil {
		return nil, err
	}
	return rg, nil
}

// Build allocates the column arena.  Every column gets a neuron pool of
// nNeurons and a proximal segment of nSynapses synapses with randomly
// initialized permanences.  Construction-time validation propagates: any
// invalid size fails the whole build.
func (rg *Region) Build(nColumns, nNeurons, nSynapses int) error {
	if nColumns < 1 {
		return fmt.Errorf("htm.Region: Build: nColumns must be >= 1, got %d", nColumns)
	}
	if nSynapses < 1 {
		return fmt.Errorf("htm.Region: Build: nSynapses must be >= 1, got %d", nSynapses)
	}
	rg.Columns = make([]Column, nColumns)
	for ci := range rg.Columns {
		cl, err := NewColumn(nNeurons)
		if err != nil {
			return err
		}
		rg.Columns[ci] = *cl
		rg.Columns[ci].Proximal.Build(nSynapses)
	}
	return nil
}

// Column returns the column at given arena index.
func (rg *Region) Column(idx int32) *Column {
	return &rg.Columns[idx]
}

// MaxActiveDutyCycle returns the maximum active duty cycle across the
// columns addressed by the given arena indices, or 0 if the list is
// empty.  Used to compute local boosting minimums relative to a column's
// neighborhood.  Out-of-range indices are logged and skipped.
func (rg *Region) MaxActiveDutyCycle(idxs []int32) float32 {
	mx := float32(0)
	for _, ci := range idxs {
		if ci < 0 || int(ci) >= len(rg.Columns) {
			errors.Log(fmt.Errorf("htm.Region: MaxActiveDutyCycle: column index %d outside arena of %d", ci, len(rg.Columns)))
			continue
		}
		if ad := rg.Columns[ci].ActiveDuty(); ad > mx {
			mx = ad
		}
	}
	return mx
}

// NextTimeStep resets the transient per-step state of every column in the
// arena.
func (rg *Region) NextTimeStep() {
	for ci := range rg.Columns {
		rg.Columns[ci].NextTimeStep()
	}
}
