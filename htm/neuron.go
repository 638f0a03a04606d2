// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htm

// htm.Neuron is one member of a column's neuron pool.  Spatial pooling
// only requires neurons to be addressable pool members; the binary state
// here is what temporal processing reads and writes.
type Neuron struct {

	// whether the neuron is active this time step
	Active bool

	// whether the neuron is in the predicting state this time step
	Predicting bool
}

func (nrn *Neuron) Init() {
	nrn.Active = false
	nrn.Predicting = false
}
