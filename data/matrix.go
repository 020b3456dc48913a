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
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// In a matrix of posterior samples, rows are samples and columns are
// parameters: the j-th parameter of the i-th sample is m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements drawn by the provided Sampler from the given
// source of randomness.
func NewRandomMatrix(rows, cols int, sampler Sampler, rng *rand.Rand) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewRandomVector(cols, sampler, rng)
	}

	return mat
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// Copy creates a new matrix with the same values
// of the entries.
func (m Matrix) Copy() Matrix {
	mat := make(Matrix, m.Rows())
	for i, v := range m {
		mat[i] = v.Copy()
	}

	return mat
}

// Row returns the i-th row of the matrix.
func (m Matrix) Row(i int) Vector {
	return m[i]
}

// Col returns the j-th column of the matrix as a new Vector.
// It returns an error if the column index is out of range.
func (m Matrix) Col(j int) (Vector, error) {
	if j < 0 || j >= m.Cols() {
		return nil, fmt.Errorf("column index out of range")
	}

	col := make(Vector, m.Rows())
	for i, v := range m {
		col[i] = v[j]
	}

	return col, nil
}

// SelectRows returns a new Matrix holding the rows of m at the
// given indices, in the given order. Rows are copied.
func (m Matrix) SelectRows(idx []int) Matrix {
	mat := make(Matrix, len(idx))
	for i, j := range idx {
		mat[i] = m[j].Copy()
	}

	return mat
}

// Transpose returns a new Matrix that is the transpose of m.
func (m Matrix) Transpose() Matrix {
	mat := make(Matrix, m.Cols())
	for j := 0; j < m.Cols(); j++ {
		mat[j] = make(Vector, m.Rows())
		for i := 0; i < m.Rows(); i++ {
			mat[j][i] = m[i][j]
		}
	}

	return mat
}
