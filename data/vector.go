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

package data

import (
	"fmt"
	"math/rand"

	"github.com/gonum/floats"
	"github.com/gonum/stat"
)

// Sampler provides random values for filling vector or matrix
// structures.
type Sampler interface {
	Sample(rng *rand.Rand) float64
}

// Vector wraps a slice of float64 elements. It represents either a
// single point in parameter space or a per-sample evaluation array.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements drawn by the provided Sampler from the given
// source of randomness.
func NewRandomVector(len int, sampler Sampler, rng *rand.Rand) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample(rng)
	}

	return vec
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vectors should be of the same length")
	}

	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = vi + other[i]
	}

	return res, nil
}

// AddScalar adds a given scalar x to every element of vector v.
// The result is returned in a new Vector.
func (v Vector) AddScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = vi + x
	}

	return res
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of the same length")
	}

	return floats.Dot(v, other), nil
}

// Select returns a new Vector holding the elements of v at the
// given indices, in the given order.
func (v Vector) Select(idx []int) Vector {
	res := make(Vector, len(idx))
	for i, j := range idx {
		res[i] = v[j]
	}

	return res
}

// Max returns the largest element of the vector.
// It panics on an empty vector.
func (v Vector) Max() float64 {
	return floats.Max(v)
}

// Mean returns the arithmetic mean of the vector's elements.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// StdDev returns the sample standard deviation of the vector's
// elements, normalized by n-1 (Bessel's correction).
func (v Vector) StdDev() float64 {
	return stat.StdDev(v, nil)
}
