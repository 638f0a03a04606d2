// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htm

import (
	"fmt"
	"sort"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tensor"
)

// PoolerParams parameterizes the spatial-pooling step: how many columns
// win inhibition, the minimum significant overlap, and the boosting
// threshold relative to the neighborhood maximum duty cycle.
type PoolerParams struct {

	// number of columns that win inhibition each time step (k in
	// k-winners-take-all)
	NumWinners int `min:"1" def:"10"`

	// minimum overlap, as a fraction of the proximal synapse count, for a
	// column's overlap to count as significant: smaller overlaps are
	// excluded from ranking and from the overlap duty cycle
	MinPctOverlap float32 `min:"0" max:"1" def:"0.05"`

	// minimum desired active duty cycle, as a fraction of the maximum
	// active duty cycle in a column's neighborhood -- columns below this
	// get boosted, and columns whose overlap duty cycle falls below it
	// get a permanence increase to reconnect them to the input
	MinDutyFrac float32 `min:"0" max:"1" def:"0.01"`
}

func (pp *PoolerParams) Update() {
}

func (pp *PoolerParams) Defaults() {
	pp.NumWinners = 10
	pp.MinPctOverlap = 0.05
	pp.MinDutyFrac = 0.01
}

// htm.Pooler is the reference spatial-pooling driver for one region.  One
// Step performs the full per-time-step sequence each column expects of its
// orchestrating loop, in order: record overlap scores, read the boost
// function to influence ranking, mark the inhibition winners active,
// update duty cycles, apply permanence learning, and reset transient
// state.  Deterministic and single-threaded.
type Pooler struct {

	// spatial pooling parameters
	Params PoolerParams

	// the column arena being pooled, non-owning
	Region *Region

	// maximum boost multiplier applied during the last Step, recorded
	// before the per-step reset returns all boosts to 1
	MaxBoost float32 `edit:"-"`
}

// NewPooler returns a new Pooler on given region, with default parameters.
func NewPooler(rg *Region) *Pooler {
	pl := &Pooler{Region: rg}
	pl.Params.Defaults()
	return pl
}

// Step runs one full spatial-pooling time step on the given external
// input pattern, read as binary values (> 0.5 = active input bit).
func (pl *Pooler) Step(ext tensor.Tensor) error {
	rg := pl.Region
	if rg == nil || len(rg.Columns) == 0 {
		return fmt.Errorf("htm.Pooler: Step: no columns to pool")
	}

	pl.MaxBoost = 0
	popMax := float32(0)
	for ci := range rg.Columns {
		if ad := rg.Columns[ci].ActiveDuty(); ad > popMax {
			popMax = ad
		}
	}

	scores := make([]float32, len(rg.Columns))
	for ci := range rg.Columns {
		cl := &rg.Columns[ci]
		cl.Proximal.ApplyInput(ext)
		ov := cl.Proximal.Overlap()
		// overlap score is bounded strictly below the synapse count
		if cnt := cl.Proximal.SynapseCount(); ov >= cnt {
			ov = cnt - 1
		}
		if err := cl.SetOverlap(ov); err != nil {
			return err
		}

		// boosting minimum is relative to the neighborhood if neighbor
		// indices were supplied, else to the whole population
		mxDuty := popMax
		if len(cl.Neighbors()) > 0 {
			mxDuty = rg.MaxActiveDutyCycle(cl.Neighbors())
		}
		minDuty := pl.Params.MinDutyFrac * mxDuty
		if minDuty > 0 {
			bst, err := cl.BoostFromDuty(minDuty)
			if err != nil {
				return err
			}
			if err := cl.SetBoost(bst); err != nil {
				return err
			}
			if bst > pl.MaxBoost {
				pl.MaxBoost = bst
			}
		}
		if ov >= pl.minOverlap(cl) {
			scores[ci] = cl.Boost() * float32(ov)
		}
	}

	// global k-winners-take-all on boosted scores, index order breaking ties
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	nWin := min(pl.Params.NumWinners, len(order))
	for ri, ci := range order {
		rg.Columns[ci].Active = ri < nWin && scores[ci] > 0
	}

	for ci := range rg.Columns {
		cl := &rg.Columns[ci]
		cl.UpdateActiveDuty()
		minOv := pl.minOverlap(cl)
		cl.UpdateOverlapDuty(minOv)
		if cl.Active {
			pl.learnColumn(cl)
		}
		// a column that keeps failing to overlap is disconnected from the
		// input: raise all its permanences to reconnect it
		minDuty := pl.Params.MinDutyFrac * popMax
		if minDuty > 0 && cl.OverlapDuty() < minDuty {
			if err := cl.IncreasePermanences(1); err != nil {
				return err
			}
		}
	}

	rg.NextTimeStep()
	return nil
}

// minOverlap returns the minimum significant overlap for given column, as
// the MinPctOverlap fraction of its synapse count, rounded up.
func (pl *Pooler) minOverlap(cl *Column) int {
	return int(math32.Ceil(pl.Params.MinPctOverlap * float32(cl.Proximal.SynapseCount())))
}

// learnColumn adapts the proximal permanences of an inhibition winner:
// synapses on active inputs take one increase step, the rest one decrease
// step, shifting the column toward the patterns it wins on.
func (pl *Pooler) learnColumn(cl *Column) {
	sg := &cl.Proximal
	for si := range sg.Syns {
		sy := &sg.Syns[si]
		if sy.InputActive {
			sg.Perm.IncPerm(sy)
		} else {
			sg.Perm.DecPerm(sy)
		}
	}
}

// ActiveColumns returns the arena indices of the currently active columns.
func (pl *Pooler) ActiveColumns() []int32 {
	var act []int32
	for ci := range pl.Region.Columns {
		if pl.Region.Columns[ci].Active {
			act = append(act, int32(ci))
		}
	}
	return act
}
