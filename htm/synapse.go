// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htm

import (
	"fmt"

	"cogentcore.org/core/base/randx"
)

// htm.Synapse holds the state of one feed-forward connection in a proximal
// segment: a scalar permanence (connection strength) value and whether the
// input bit this synapse listens to is currently active.
type Synapse struct {

	// permanence value in [0,1] -- the synapse is connected (participates
	// in overlap and segment activity) when Perm >= PermParams.ConThresh
	Perm float32

	// whether the input this synapse is attached to is active this time step
	InputActive bool
}

var SynapseVars = []string{"Perm"}

var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVarByName returns the index of the variable in the Synapse, or error
func SynapseVarByName(varNm string) (int, error) {
	i, ok := SynapseVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in SynapseVars list)
func (sy *Synapse) VarByIndex(idx int) float32 {
	return sy.Perm
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float32, error) {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByIndex(i), nil
}

//////////////////////////////////////////////////////////////////////////////////////
//  PermParams

// PermParams are permanence parameters for the synapses of a proximal
// segment: the connection threshold, the fixed learning step, and the
// random distribution for initial permanence values.
type PermParams struct {

	// permanence threshold at or above which a synapse is connected
	ConThresh float32 `min:"0" max:"1" def:"0.2"`

	// fixed step by which one round of learning increases (or decreases)
	// every permanence in the segment -- learning-rate granularity is
	// controlled entirely by this step size
	Step float32 `min:"0" def:"0.015"`

	// random distribution parameters for initial permanence values
	Init randx.RandParams
}

func (pp *PermParams) Update() {
}

func (pp *PermParams) Defaults() {
	pp.ConThresh = 0.2
	pp.Step = 0.015
	pp.Init.Mean = 0.3
	pp.Init.Var = 0.05
	pp.Init.Dist = randx.Uniform
}

// InitPerm initializes the permanence value of given synapse from the Init
// distribution, enforcing the [0,1] range.
func (pp *PermParams) InitPerm(sy *Synapse) {
	sy.Perm = float32(pp.Init.Gen())
	if sy.Perm < 0 {
		sy.Perm = 0
	}
	if sy.Perm > 1 {
		sy.Perm = 1
	}
	sy.InputActive = false
}

// Connected returns whether given synapse is connected under these params.
func (pp *PermParams) Connected(sy *Synapse) bool {
	return sy.Perm >= pp.ConThresh
}

// IncPerm applies one permanence-increase step to given synapse, clamped at 1.
func (pp *PermParams) IncPerm(sy *Synapse) {
	sy.Perm += pp.Step
	if sy.Perm > 1 {
		sy.Perm = 1
	}
}

// DecPerm applies one permanence-decrease step to given synapse, clamped at 0.
func (pp *PermParams) DecPerm(sy *Synapse) {
	sy.Perm -= pp.Step
	if sy.Perm < 0 {
		sy.Perm = 0
	}
}
