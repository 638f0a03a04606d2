// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htm

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestRegionBuild(t *testing.T) {
	if _, err := NewRegion(0, 1, 10); err == nil {
		t.Errorf("NewRegion with 0 columns: expected error")
	}
	if _, err := NewRegion(4, 0, 10); err == nil {
		t.Errorf("NewRegion with 0 neurons per column: expected error")
	}
	if _, err := NewRegion(4, 1, 0); err == nil {
		t.Errorf("NewRegion with 0 synapses: expected error")
	}
	rg, err := NewRegion(4, 2, 16)
	if err != nil {
		t.Fatalf("NewRegion(4, 2, 16): %v", err)
	}
	if len(rg.Columns) != 4 {
		t.Fatalf("columns: %v != 4", len(rg.Columns))
	}
	for ci := range rg.Columns {
		cl := &rg.Columns[ci]
		if len(cl.Neurons) != 2 {
			t.Errorf("column %v: neurons %v != 2", ci, len(cl.Neurons))
		}
		if cl.Proximal.SynapseCount() != 16 {
			t.Errorf("column %v: synapses %v != 16", ci, cl.Proximal.SynapseCount())
		}
	}
}

func TestMaxActiveDutyCycle(t *testing.T) {
	rg, err := NewRegion(3, 1, 8)
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	rg.Columns[0].activeDuty = 0.2
	rg.Columns[1].activeDuty = 0.9
	rg.Columns[2].activeDuty = 0.4

	if mx := rg.MaxActiveDutyCycle([]int32{}); mx != 0 {
		t.Errorf("MaxActiveDutyCycle(empty): %v != 0", mx)
	}
	if mx := rg.MaxActiveDutyCycle([]int32{0, 1, 2}); math32.Abs(mx-0.9) > difTol {
		t.Errorf("MaxActiveDutyCycle: %v != 0.9", mx)
	}
	if mx := rg.MaxActiveDutyCycle([]int32{0, 2}); math32.Abs(mx-0.4) > difTol {
		t.Errorf("MaxActiveDutyCycle: %v != 0.4", mx)
	}
}

func TestRegionNextTimeStep(t *testing.T) {
	rg, err := NewRegion(2, 1, 8)
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	for ci := range rg.Columns {
		cl := &rg.Columns[ci]
		if err := cl.SetOverlap(3); err != nil {
			t.Fatalf("SetOverlap: %v", err)
		}
		if err := cl.SetBoost(1.5); err != nil {
			t.Fatalf("SetBoost: %v", err)
		}
	}
	rg.NextTimeStep()
	for ci := range rg.Columns {
		cl := &rg.Columns[ci]
		if cl.Overlap() != 0 || cl.Boost() != 1 {
			t.Errorf("column %v not reset: overlap %v, boost %v", ci, cl.Overlap(), cl.Boost())
		}
	}
}
