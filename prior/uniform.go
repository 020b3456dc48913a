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

	"github.com/pkg/errors"
)

// Uniform represents a uniform prior over the interval [min, max).
type Uniform struct {
	min     float64
	max     float64
	logDens float64
}

// NewUniform returns an instance of the Uniform prior.
// It accepts lower and upper bounds on the values, and returns an
// error if the bounds do not describe a non-empty interval.
func NewUniform(min, max float64) (*Uniform, error) {
	if !(min < max) {
		return nil, errors.Errorf("invalid uniform bounds [%v, %v)", min, max)
	}

	return &Uniform{
		min:     min,
		max:     max,
		logDens: -math.Log(max - min),
	}, nil
}

func (u *Uniform) Sample(rng *rand.Rand) float64 {
	return u.min + (u.max-u.min)*rng.Float64()
}

func (u *Uniform) LogProb(x float64) float64 {
	if x < u.min || x >= u.max {
		return math.Inf(-1)
	}

	return u.logDens
}
