// SPDX-License-Identifier: MIT

// Package matrix: public Matrix interface.
// This file intentionally contains ONLY the interface contract shared by all
// kernels. Errors and options live in dedicated files (errors.go, options.go)
// per the global conventions; Dense, the concrete implementation, lives in
// impl_dense.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Every kernel in this package accepts Matrix and fast-paths on *Dense;
// alternative backings only need these five methods to participate.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf if v is not
	// finite under the active numeric policy.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
