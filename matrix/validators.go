// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/grid checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Grid validation runs O(r) over row headers only; values are not scanned.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Use ValidateGrid before ingesting [][]float64 to fail fast on ragged rows.
//  - Use ValidateFlatLen for row-major flat sequences to avoid ad hoc length code.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels and compatibility guards.
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: Matrix value.
// Errors: ErrNonSquare if not square.
// Complexity: O(1).
// AI-Hints: Use before Determinant/Inverse kernels.
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFlatLen ensures a row-major flat sequence has exactly rows*cols values.
// Time: O(1). Space: O(1).
func ValidateFlatLen(values []float64, rows, cols int) error {
	// Disallow nil sequences to avoid subtle bugs in flat-ingestion routines.
	if values == nil {
		return validatorErrorf("ValidateFlatLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length.
	if len(values) != rows*cols {
		return validatorErrorf("ValidateFlatLen", ErrDimensionMismatch) // sequence length must equal rows*cols
	}

	return nil
}

// ValidateGrid ensures a [][]float64 grid is non-empty and rectangular:
// every row must have exactly len(grid[0]) entries.
//
// Inputs: grid of row slices.
// Errors: ErrInvalidDimensions on empty grid or empty first row,
// ErrDimensionMismatch (tagged with the offending row index) on ragged rows.
// Complexity: O(r) over row headers; values are not inspected.
// AI-Hints: Run before any [][]float64 ingestion; the row index in the error
// message pinpoints the ragged row for the caller.
func ValidateGrid(grid [][]float64) error {
	// An absent or empty grid cannot define dimensions.
	if len(grid) == 0 {
		return validatorErrorf("ValidateGrid", ErrInvalidDimensions)
	}
	// The first row fixes the expected column count.
	cols := len(grid[0])
	if cols == 0 {
		return validatorErrorf("ValidateGrid", ErrInvalidDimensions)
	}
	// Every subsequent row must match; report the first ragged row found.
	var i int // loop iterator
	for i = 1; i < len(grid); i++ {
		if len(grid[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateGrid: row %d", i), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for general matrix multiplication compatibility.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePostMulCompatible – Ensures a.Rows == b.Cols, inputs non-nil.
// Mirror of ValidateMulCompatible for right-multiplication (b × a): the
// check is stated from the receiver's perspective rather than re-derived
// from the delegated product.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidatePostMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidatePostMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidatePostMulCompatible", err)
	}
	if a.Rows() != b.Cols() {
		return validatorErrorf("ValidatePostMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
