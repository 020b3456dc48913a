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
	"math/rand"

	"github.com/pkg/errors"

	"github.com/gobi-project/gobi/data"
)

// Prior represents a prior probability distribution over a single
// model parameter.
type Prior interface {
	// Sample draws a single value from the distribution using the
	// provided source of randomness.
	Sample(rng *rand.Rand) float64

	// LogProb returns the natural logarithm of the probability
	// density at x.
	LogProb(x float64) float64
}

// Set holds an ordered collection of named priors, one per model
// parameter. The insertion order fixes the column order of sampled
// parameter matrices.
type Set struct {
	names  []string
	priors map[string]Prior
}

// NewSet returns an empty Set instance.
func NewSet() *Set {
	return &Set{
		priors: make(map[string]Prior),
	}
}

// Add adds a named prior to the set. It returns an error if a prior
// with the same name was already added.
func (s *Set) Add(name string, p Prior) error {
	if _, ok := s.priors[name]; ok {
		return errors.Errorf("prior %s already present in the set", name)
	}
	s.names = append(s.names, name)
	s.priors[name] = p

	return nil
}

// Len returns the number of priors in the set.
func (s *Set) Len() int {
	return len(s.names)
}

// Names returns the parameter names in insertion order.
func (s *Set) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)

	return names
}

// Sample draws n values from every prior in the set and returns them
// as a matrix with n rows and one column per parameter, columns in
// insertion order. It returns an error if the set is empty.
func (s *Set) Sample(rng *rand.Rand, n int) (data.Matrix, error) {
	if s.Len() == 0 {
		return nil, errors.New("cannot sample from an empty prior set")
	}

	cols := make([]data.Vector, s.Len())
	for j, name := range s.names {
		cols[j] = data.NewRandomVector(n, s.priors[name], rng)
	}

	byParam, err := data.NewMatrix(cols)
	if err != nil {
		return nil, err
	}

	return byParam.Transpose(), nil
}

// LogProb returns the joint log prior probability of the parameter
// vector theta, the sum of per-parameter log probabilities. It returns
// an error if the vector's length does not match the set.
func (s *Set) LogProb(theta data.Vector) (float64, error) {
	if len(theta) != s.Len() {
		return 0, errors.Errorf("parameter vector has %d elements, prior set has %d", len(theta), s.Len())
	}

	logp := 0.0
	for j, name := range s.names {
		logp += s.priors[name].LogProb(theta[j])
	}

	return logp, nil
}
