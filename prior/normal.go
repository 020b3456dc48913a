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

const logSqrt2Pi = 0.9189385332046727

// Normal represents a Gaussian prior with the given mean and
// standard deviation sigma.
type Normal struct {
	mean  float64
	sigma float64
}

// NewNormal returns an instance of the Normal prior.
// It returns an error if sigma is not strictly positive.
func NewNormal(mean, sigma float64) (*Normal, error) {
	if sigma <= 0 {
		return nil, errors.Errorf("sigma should be strictly positive, got %v", sigma)
	}

	return &Normal{
		mean:  mean,
		sigma: sigma,
	}, nil
}

func (n *Normal) Sample(rng *rand.Rand) float64 {
	return n.mean + n.sigma*rng.NormFloat64()
}

func (n *Normal) LogProb(x float64) float64 {
	z := (x - n.mean) / n.sigma
	return -0.5*z*z - math.Log(n.sigma) - logSqrt2Pi
}
