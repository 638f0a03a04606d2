// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dutycycle

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func TestDefaults(t *testing.T) {
	dc := Params{}
	dc.Defaults()
	if dc.Alpha != 0.005 {
		t.Errorf("Alpha: %v != 0.005", dc.Alpha)
	}
	if math32.Abs(dc.AlphaC-0.995) > difTol {
		t.Errorf("AlphaC: %v != 0.995", dc.AlphaC)
	}
}

func TestAvgFromActDecay(t *testing.T) {
	dc := Params{}
	dc.Defaults()
	// never active: strict exponential decay, avg = 0.995^n
	avg := float32(1)
	cor := []float32{0.995, 0.990025, 0.98507487, 0.9801495}
	for i := range cor {
		dc.AvgFromAct(&avg, false)
		if math32.Abs(avg-cor[i]) > difTol {
			t.Errorf("decay step %v: avg: %v, cor: %v", i, avg, cor[i])
		}
	}
}

func TestAvgFromActRise(t *testing.T) {
	dc := Params{}
	dc.Defaults()
	// always active from below: approaches the fixed point 1 from below
	avg := float32(0.5)
	prev := avg
	for i := 0; i < 2000; i++ {
		dc.AvgFromAct(&avg, true)
		if avg < prev {
			t.Errorf("step %v: avg decreased from %v to %v while always active", i, prev, avg)
		}
		if avg > 1 {
			t.Errorf("step %v: avg %v exceeded 1", i, avg)
		}
		prev = avg
	}
	if 1-avg > 1.0e-4 {
		t.Errorf("avg %v did not converge toward 1", avg)
	}
}

// TestAvgNeverZero confirms the convergence-to-zero hazard stays
// theoretical at realistic horizons: with the driver perpetually inactive
// the average decays monotonically but never underflows to exactly 0.
func TestAvgNeverZero(t *testing.T) {
	dc := Params{}
	dc.Defaults()
	avg := float32(1)
	prev := avg
	for i := 0; i < 10000; i++ {
		dc.AvgFromAct(&avg, false)
		if avg <= 0 {
			t.Fatalf("step %v: avg reached %v", i, avg)
		}
		if avg >= prev {
			t.Errorf("step %v: avg %v did not decrease from %v", i, avg, prev)
		}
		prev = avg
	}
}

func TestBoost(t *testing.T) {
	dc := Params{}
	dc.Defaults()
	// at or below the minimum: minDuty / avgDuty
	if b := dc.Boost(0.5, 1.0); math32.Abs(b-2.0) > difTol {
		t.Errorf("Boost(0.5, 1.0): %v != 2.0", b)
	}
	if b := dc.Boost(0.25, 0.25); math32.Abs(b-1.0) > difTol {
		t.Errorf("Boost(0.25, 0.25): %v != 1.0", b)
	}
	// above the minimum: the duty cycle itself
	if b := dc.Boost(0.8, 0.5); math32.Abs(b-0.8) > difTol {
		t.Errorf("Boost(0.8, 0.5): %v != 0.8", b)
	}
}
