// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dutycycle provides exponential-moving-average (EMA) duty-cycle
statistics and the boosting function for HTM spatial pooling.

A duty cycle is a running average of how often a column has been active
(or has had significant overlap) over recent time steps.  Columns whose
active duty cycle falls below the minimum for their neighborhood get a
boost multiplier > 1 applied to their overlap score during inhibition,
which keeps the representation from being dominated by a few columns.
*/
package dutycycle

// Params parameterizes the duty-cycle running averages.  The same update
// is used for both the active duty cycle (driven by whether the column's
// proximal segment is active) and the overlap duty cycle (driven by
// whether the overlap score cleared the minimum overlap).
type Params struct {

	// EMA smoothing factor: weight of the current step's binary outcome.
	// The update is avg = (1-Alpha)*avg + Alpha*act, so the average is a
	// convex combination bounded to [0,1] and decays by factor (1-Alpha)
	// on every step the column is not active.
	Alpha float32 `min:"0" max:"1" def:"0.005"`

	// 1 - Alpha
	AlphaC float32 `edit:"-" display:"-" json:"-" xml:"-"`
}

func (dc *Params) Update() {
	dc.AlphaC = 1 - dc.Alpha
}

func (dc *Params) Defaults() {
	dc.Alpha = 0.005
	dc.Update()
}

// AvgFromAct updates the duty-cycle average in place from the current
// step's binary activity outcome.  The increment on an active step equals
// the maximum possible decay, so the fixed point for an always-active
// column is 1 and for a never-active column is 0.  A value of exactly 0
// can never recover (the update stalls there), so averages must be
// initialized strictly above 0.
func (dc *Params) AvgFromAct(avg *float32, act bool) {
	*avg *= dc.AlphaC
	if act {
		*avg += dc.Alpha
	}
}

// Boost returns the boost multiplier for a column with the given active
// duty cycle, relative to the minimum desired duty cycle for its
// neighborhood.  Below (or at) the minimum the multiplier is
// minDuty / avgDuty, which is > 1 and grows as the column falls further
// behind; above the minimum no boosting applies and the duty cycle itself
// is returned.  Both arguments must be > 0; callers validate.
func (dc *Params) Boost(avgDuty, minDuty float32) float32 {
	if avgDuty <= minDuty {
		return minDuty / avgDuty
	}
	return avgDuty
}
