// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package htm is the overall repository for Hierarchical Temporal Memory (HTM)
spatial pooling code implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* htm: the core implementation of columns, proximal segments, synapses with
scalar permanence values, the owning region arena, and a reference
spatial-pooling driver that converts sparse binary sensory input into a
sparse set of active columns.

* dutycycle: the exponential-moving-average duty-cycle statistics and the
boosting function used to keep column activity fair over time.

* examples: these compile into runnable programs. examples/poolbench trains
a pooler on random binary patterns and logs per-epoch sparsity and
duty-cycle statistics.
*/
package htm
