/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package prior

import (
	"math"
	"math/rand"
)

// DeltaFunction represents a prior concentrated entirely at a single
// peak value. Sampling always returns the peak.
type DeltaFunction struct {
	peak float64
}

// NewDeltaFunction returns an instance of the DeltaFunction prior
// with the given peak.
func NewDeltaFunction(peak float64) *DeltaFunction {
	return &DeltaFunction{peak: peak}
}

func (d *DeltaFunction) Sample(_ *rand.Rand) float64 {
	return d.peak
}

func (d *DeltaFunction) LogProb(x float64) float64 {
	if x == d.peak {
		return 0
	}

	return math.Inf(-1)
}
