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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobi-project/gobi/internal/randutil"
)

// unitSampler draws uniformly from [0, 1).
type unitSampler struct{}

func (unitSampler) Sample(rng *rand.Rand) float64 { return rng.Float64() }

func detRand() *rand.Rand {
	var key [32]byte
	key[0] = 7
	return rand.New(randutil.NewDetSource(&key))
}

func TestNewRandomMatrix(t *testing.T) {
	m := NewRandomMatrix(5, 3, unitSampler{}, detRand())

	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			assert.True(t, m[i][j] >= 0 && m[i][j] < 1, "elements should come from the sampler")
		}
	}

	same := NewRandomMatrix(5, 3, unitSampler{}, detRand())
	assert.Equal(t, m, same, "same key should reproduce the same matrix")
}

func TestNewRandomVector(t *testing.T) {
	v := NewRandomVector(10, unitSampler{}, detRand())

	assert.Equal(t, 10, len(v))
	for _, vi := range v {
		assert.True(t, vi >= 0 && vi < 1, "elements should come from the sampler")
	}
}

func TestMatrix(t *testing.T) {
	m, err := NewMatrix([]Vector{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, Vector{4, 5, 6}, m.Row(1))

	col, err := m.Col(2)
	if err != nil {
		t.Fatalf("Error during column extraction: %v", err)
	}
	assert.Equal(t, Vector{3, 6}, col)

	_, err = m.Col(3)
	assert.Error(t, err, "out of range column should be rejected")

	_, err = NewMatrix([]Vector{{1, 2}, {3}})
	assert.Error(t, err, "ragged rows should be rejected")
}

func TestMatrix_SelectRows(t *testing.T) {
	m, _ := NewMatrix([]Vector{{0}, {1}, {2}, {3}})

	sel := m.SelectRows([]int{0, 2})
	assert.Equal(t, 2, sel.Rows())
	assert.Equal(t, Vector{0}, sel.Row(0))
	assert.Equal(t, Vector{2}, sel.Row(1))

	sel[0][0] = 9
	assert.Equal(t, 0.0, m[0][0], "selected rows should be copies")

	empty := m.SelectRows(nil)
	assert.Equal(t, 0, empty.Rows(), "empty selection should give an empty matrix")
}

func TestMatrix_Transpose(t *testing.T) {
	m, _ := NewMatrix([]Vector{
		{1, 2, 3},
		{4, 5, 6},
	})

	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			assert.Equal(t, m[i][j], tr[j][i], "transpose should swap indices")
		}
	}
}

func TestMatrix_DimsMatchAndCopy(t *testing.T) {
	x := NewConstantMatrix(2, 3, 1)
	y := NewConstantMatrix(2, 3, 2)
	z := NewConstantMatrix(3, 2, 2)

	assert.True(t, x.DimsMatch(y))
	assert.False(t, x.DimsMatch(z))

	c := x.Copy()
	c[1][1] = 5
	assert.Equal(t, 1.0, x[1][1], "copy should not share storage")
}
