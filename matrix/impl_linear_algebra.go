// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication
// (pre and post), transpose, scalar scaling, sub-matrix extraction, cofactor
// determinants, and Gauss-Jordan inversion. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels (signatures) used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and return plain sentinels or wrapped via matrixErrorf at the facade.
//   - Every kernel fast-paths on *Dense flat storage and falls back to the At/Set interface.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for products and cofactor sums.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot during elimination.
const ZeroPivot = 0.0

// ZeroDet is the singularity gate: inversion refuses inputs whose determinant
// equals this value exactly.
const ZeroDet = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opPostMul   = "PostMultiply"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opSubMatrix = "SubMatrix"
	opDet       = "Determinant"
	opInverse   = "Inverse"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Behavior highlights:
//   - Preserves the underlying sentinel/type for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Add|Sub", "Determinant").
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Returns:
//   - error: a non-nil error that formats as "<tag>: <underlying>" and still matches Is/As.
//
// Errors:
//   - None produced here; this function assumes err != nil. Caller responsibility.
//
// Determinism:
//   - Fully deterministic formatting; no data-dependent branches.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; do not do this.
//   - Centralizes formatting so all kernels expose uniform error surfaces.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Behavior highlights:
//   - Deterministic loop orders (flat in fast-path; i→j in fallback).
//   - Single result allocation; no inner-loop temps beyond scalars.
//   - Inputs remain immutable.
//
// Inputs:
//   - a, b: conformable matrices (non-nil; same rows/cols).
//   - sign: +1 for Add, −1 for Sub (callers must enforce).
//   - opTag: opAdd for Add, opSub for Sub (for error wrapping).
//
// Returns:
//   - Matrix: newly allocated Dense with the result.
//   - error : validation/allocation failures wrapped with opAdd/opSub.
//
// Errors:
//   - ErrNilMatrix          (from ValidateBinarySameShape when a or b is nil).
//   - ErrDimensionMismatch  (from ValidateBinarySameShape when shapes differ).
//   - Allocation errors     (from newDenseZeros).
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
//   - The function is unexported by design; invariants are enforced by Add/Sub.
//
// AI-Hints:
//   - To trigger fast-path, pass concrete *Dense operands (avoid interface wrappers).
//   - If you need in-place add/sub, implement a dedicated kernel; do not modify inputs here.
//   - Prefer batching several add/sub calls at a higher level to amortize allocations.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeros(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// direct element-wise addition on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - a: left matrix operand (any Matrix).
//   - b: right matrix operand (any Matrix) with the same shape as a.
//
// Returns:
//   - Matrix: a new Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete types
//     (e.g., via wrappers) to force the fallback path in tests or when needed.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - a: left matrix operand (any Matrix).
//   - b: right matrix operand (any Matrix) with the same shape as a.
//
// Returns:
//   - Matrix: a new Dense with C[i,j] = A[i,j] - B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// Notes:
//   - Inputs are never mutated; result is always a freshly allocated Dense.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete types
//     (e.g., via wrappers) to force the fallback path in tests or when needed.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// This is pre-multiplication: the left operand's columns must match the
// right operand's rows.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// Notes:
//   - For extremely sparse workloads consider dedicated sparse kernels outside this package.
//
// AI-Hints:
//   - If you can keep A as *Dense and cache-friendly by rows, you unlock the best path here.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeros(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// PostMultiply computes C = B × A: the second operand is applied from the
// left. Use it when the receiver-style reading "a, post-multiplied by b" is
// wanted without re-ordering arguments at the call site.
// Implementation:
//   - Stage 1: ValidatePostMulCompatible(a, b) — the mirrored guard
//     a.Rows == b.Cols, stated from a's perspective.
//   - Stage 2: delegate the product to Mul(b, a).
//
// Behavior highlights:
//   - The guard mirrors the pre-multiplication requirement rather than
//     re-deriving it from the delegated call, so the error carries the
//     PostMultiply tag and the caller's orientation.
//   - After the guard passes, Mul's own compatibility check is identical and
//     cannot fail.
//
// Inputs:
//   - a: matrix to be post-multiplied, shape (r × c).
//   - b: left factor, shape (k × r).
//
// Returns:
//   - Matrix: new Dense B×A with shape (k × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Rows != b.Cols).
//
// Determinism:
//   - Same fixed loop orders as Mul.
//
// Complexity:
//   - Time O(k*r*c), Space O(k*c).
//
// Notes:
//   - PostMultiply(a, b) and Mul(b, a) produce identical results by
//     construction; only the validation tag differs.
//
// AI-Hints:
//   - Pick Mul/PreMultiply or PostMultiply by how the call site reads, not by
//     performance: they share the same kernel.
func PostMultiply(a, b Matrix) (Matrix, error) {
	// Mirrored guard: a.Rows must equal b.Cols for B×A to exist.
	if err := ValidatePostMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opPostMul, err)
	}

	// Delegate to the multiplication kernel with operands swapped.
	return Mul(b, a)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Behavior highlights:
//   - Deterministic copy order (dense: row blocks; generic: i→j).
//   - One allocation for the result; no temporaries proportional to size.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//
// Returns:
//   - Matrix: newly allocated Dense(c×r) with mᵀ.
//   - error : validation/allocation failures wrapped with opTranspose.
//
// Errors:
//   - ErrNilMatrix      (from ValidateNotNil).
//   - Allocation errors (from newDenseZeros).
//
// Determinism:
//   - Fixed traversal orders independent of data values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// Notes:
//   - Transpose is a full materialization; if a lazy/view is needed, add a separate type.
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the flat-copy fast-path.
//   - Avoid transposing repeatedly in tight loops; hoist and reuse the result where possible.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeros(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path multiplies a *Dense backing slice in a single flat loop.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Behavior highlights:
//   - Deterministic traversal order (flat or i→j).
//   - Exactly one allocation for the result, no extra buffers.
//
// Inputs:
//   - m     : non-nil matrix (r×c).
//   - alpha : scalar multiplier (any finite float64; NaN/Inf propagate).
//
// Returns:
//   - Matrix: Dense with elements alpha*m[i,j].
//   - error : validation/allocation failures wrapped with opScale.
//
// Errors:
//   - ErrNilMatrix      (from ValidateNotNil).
//   - Allocation errors (from newDenseZeros).
//
// Determinism:
//   - Fixed loop orders independent of values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - This is an eager materialization; for pipelines, consider fusing scaling into
//     the next kernel (e.g., scale inputs right before Mul) to reduce allocations.
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//
// AI-Hints:
//   - Use *Dense to hit the flat-slice path; keep data contiguous.
//   - Prefer composing `Scale(M, a)` then `Add/Mul` only if reuse justifies the copy;
//     otherwise fold `alpha` into the consumer kernel to save work.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeros(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// SubMatrix returns a copy of m with one row and one column deleted:
// the result has shape (Rows-1) × (Cols-1) and preserves the relative order
// of the remaining entries.
// Implementation:
//   - Stage 1: ValidateNotNil(m); bounds-check excludeRow/excludeCol.
//   - Stage 2: Fast-path *Dense — build the surviving index lists and delegate
//     to Dense.Induced (single copy, policy preserved).
//   - Stage 3: Fallback — allocate via newDenseZeroOK and copy At→Set with
//     skip-aware source indices.
//
// Behavior highlights:
//   - General-purpose: rectangular inputs are fine; the determinant's
//     first-column expansion is the main consumer.
//   - A 1×1 input legally yields a 0×0 result (zero-length buffer).
//
// Inputs:
//   - m: non-nil matrix (r×c), r,c ≥ 1.
//   - excludeRow: row index to delete, 0 ≤ excludeRow < r.
//   - excludeCol: column index to delete, 0 ≤ excludeCol < c.
//
// Returns:
//   - Matrix: fresh Dense with shape (r-1)×(c-1).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrOutOfRange (exclusion index out of bounds).
//
// Determinism:
//   - Fixed i→j copy order in both paths.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
//
// Notes:
//   - Entries keep their relative order: row i>excludeRow lands at i-1,
//     column j>excludeCol lands at j-1.
//
// AI-Hints:
//   - For repeated minors of one Dense, hoisting index-list construction does
//     not pay off; Induced's copy dominates.
func SubMatrix(m Matrix, excludeRow, excludeCol int) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	rows, cols := m.Rows(), m.Cols()
	// Bounds-check the exclusion indices against the actual shape.
	if excludeRow < 0 || excludeRow >= rows {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("row index %d: %w", excludeRow, ErrOutOfRange))
	}
	if excludeCol < 0 || excludeCol >= cols {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("col index %d: %w", excludeCol, ErrOutOfRange))
	}

	// Fast-path: *Dense → surviving-index copy via Induced.
	if dm, ok := m.(*Dense); ok {
		rowsIdx := make([]int, 0, rows-1) // surviving row indices, ascending
		colsIdx := make([]int, 0, cols-1) // surviving col indices, ascending
		var i, j int                      // loop iterators
		for i = 0; i < rows; i++ {
			if i == excludeRow {
				continue
			}
			rowsIdx = append(rowsIdx, i)
		}
		for j = 0; j < cols; j++ {
			if j == excludeCol {
				continue
			}
			colsIdx = append(colsIdx, j)
		}
		res, err := dm.Induced(rowsIdx, colsIdx)
		if err != nil {
			return nil, matrixErrorf(opSubMatrix, err)
		}

		return res, nil
	}

	// Fallback: generic interface copy with skip-aware source coordinates.
	res, err := newDenseZeroOK(rows-1, cols-1)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	var i, j int   // destination iterators
	var si, sj int // source coordinates after the skip
	var v float64
	for i = 0; i < rows-1; i++ {
		si = i
		if si >= excludeRow {
			si++ // jump over the deleted row
		}
		for j = 0; j < cols-1; j++ {
			sj = j
			if sj >= excludeCol {
				sj++ // jump over the deleted column
			}
			v, err = m.At(si, sj)
			if err != nil {
				return nil, matrixErrorf(opSubMatrix, fmt.Errorf("At(%d,%d): %w", si, sj, err))
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opSubMatrix, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Determinant computes det(m) for a square matrix via signed cofactor
// expansion along the first column.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: base cases — 1×1 returns the entry, 2×2 returns ad−bc
//     (flat reads for *Dense, At for the generic path).
//   - Stage 3: n>2 — for each row i, accumulate
//     (−1)^i * m[i,0] * Determinant(SubMatrix(m, i, 0)), skipping zero
//     multipliers.
//
// Behavior highlights:
//   - Exact arithmetic on the input values; no tolerance is consulted.
//   - Standard alternating cofactor signs; expansion column is fixed (first)
//     for determinism.
//   - Zero entries in the first column short-circuit the whole minor.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//
// Returns:
//   - float64: the determinant value.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rectangular input).
//
// Determinism:
//   - Fixed expansion column and row order ⇒ identical results for identical
//     inputs, including the floating-point summation order.
//
// Complexity:
//   - Time O(n!) in the worst case (cofactor recursion), Space O(n²) per level.
//
// Notes:
//   - Factorization-based determinants are out of scope here; this kernel
//     favors the direct textbook expansion, which is exact for the small
//     matrices this package targets.
//
// AI-Hints:
//   - Zero-rich first columns (e.g., triangular inputs) make the expansion
//     cheap; dense random inputs above ~10×10 get expensive fast.
func Determinant(m Matrix) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := m.Rows()

	dm, isDense := m.(*Dense)

	// Base case 1×1: the sole entry.
	if n == 1 {
		if isDense {
			return dm.data[0], nil
		}
		v, err := m.At(0, 0)
		if err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(0,0): %w", err))
		}

		return v, nil
	}

	// Base case 2×2: ad − bc.
	if n == 2 {
		if isDense {
			return dm.data[0]*dm.data[3] - dm.data[1]*dm.data[2], nil
		}
		var a, b, c, d float64
		var err error
		if a, err = m.At(0, 0); err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(0,0): %w", err))
		}
		if b, err = m.At(0, 1); err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(0,1): %w", err))
		}
		if c, err = m.At(1, 0); err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(1,0): %w", err))
		}
		if d, err = m.At(1, 1); err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(1,1): %w", err))
		}

		return a*d - b*c, nil
	}

	// Recursive case: signed expansion along the first column.
	var (
		i     int     // expansion row
		entry float64 // m[i,0]
		sign  float64 // (−1)^i cofactor sign
		minor float64 // det of the complementary submatrix
		det   = ZeroSum
		err   error
	)
	for i = 0; i < n; i++ {
		// Read the multiplier m[i,0] (flat for Dense, At otherwise).
		if isDense {
			entry = dm.data[i*n]
		} else {
			entry, err = m.At(i, 0)
			if err != nil {
				return 0, matrixErrorf(opDet, fmt.Errorf("At(%d,0): %w", i, err))
			}
		}
		if entry == 0 {
			continue // zero multiplier: the whole minor is irrelevant
		}

		// Complementary submatrix with row i and column 0 removed.
		sub, subErr := SubMatrix(m, i, 0)
		if subErr != nil {
			return 0, matrixErrorf(opDet, subErr)
		}
		minor, err = Determinant(sub)
		if err != nil {
			return 0, matrixErrorf(opDet, err)
		}

		// Alternating cofactor sign: +, −, +, ... down the column.
		sign = 1.0
		if i%2 == 1 {
			sign = -1.0
		}
		det += sign * entry * minor
	}

	return det, nil
}

// Inverse computes A^{-1} via Gauss-Jordan elimination on the augmented
// matrix [A | I] without pivoting (deterministic).
// The input must be non-nil and square; singular inputs are rejected.
// Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); gate on Determinant(m) != 0
//     (ErrSingular otherwise).
//   - Stage 2: build the n×2n augmented [A | I] — flat row copies for *Dense,
//     At ingestion otherwise; stamp the identity into the right half.
//   - Stage 3: for each column col: the diagonal entry is the pivot (no row
//     swaps); a zero pivot fails fast with ErrSingular; divide the pivot row
//     by the pivot, then subtract multiples of it from every other row to
//     clear column col.
//   - Stage 4: extract the right half via Induced — that block is A^{-1}.
//
// Behavior highlights:
//   - Fully deterministic loop orders (col↑, normalize, eliminate i≠col).
//   - No pivoting by design (stable determinism and reproducibility); a zero
//     diagonal encountered mid-elimination is reported as ErrSingular even
//     when row swaps could have rescued the input.
//   - Near-zero pivots are NOT detected: results for ill-conditioned inputs
//     lose precision silently.
//
// Inputs:
//   - m: non-nil square matrix (n×n) with nonzero determinant.
//
// Returns:
//   - Matrix: Dense(n×n) containing A^{-1}.
//   - error : validation/singularity failures wrapped with opInverse.
//
// Errors:
//   - ErrNilMatrix  (ValidateSquareNonNil).
//   - ErrNonSquare  (ValidateSquareNonNil).
//   - ErrSingular   (zero determinant, or zero pivot during elimination).
//
// Determinism:
//   - Fixed traversal and no pivoting → identical results for identical inputs.
//
// Complexity:
//   - Time O(n³) for the elimination plus the determinant gate's cofactor
//     recursion; Space O(n²) for the augmented workspace.
//
// Notes:
//   - Numerical stability: no partial/complete pivoting. Upstream callers
//     should avoid ill-conditioned matrices or apply scaling if stability
//     matters.
//   - The elimination runs on an internal *Dense workspace, so only the
//     ingestion of m has a generic fallback.
//
// AI-Hints:
//   - If you only need A^{-1}*b for a handful of b, forming the full inverse
//     is still the only path this package offers; batch your products.
//   - Verify round-trips with AllClose(Mul(a, inv), identity) under a modest
//     epsilon rather than exact comparison.
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Singularity gate: a zero determinant has no inverse.
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == ZeroDet {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// Build the augmented workspace [A | I] with width 2n.
	n := m.Rows()
	width := 2 * n
	aug, err := newDenseZeros(n, width)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// Fast-path: copy each source row into the left half in one shot.
		for i = 0; i < n; i++ {
			copy(aug.data[i*width:i*width+n], dm.data[i*n:(i+1)*n])
		}
	} else {
		// Fallback: generic ingestion of the left half.
		var v float64
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				aug.data[i*width+j] = v
			}
		}
	}
	// Identity block in the right half.
	for i = 0; i < n; i++ {
		aug.data[i*width+n+i] = 1.0
	}

	// Gauss-Jordan elimination, no pivoting: the diagonal entry is the pivot.
	var (
		col              int     // current pivot column
		pivot            float64 // aug[col,col]
		factor           float64 // elimination multiplier for row i
		basePivot, baseI int     // row offsets in the flat buffer
	)
	for col = 0; col < n; col++ {
		basePivot = col * width
		pivot = aug.data[basePivot+col]
		if pivot == ZeroPivot {
			// No row swaps by design: a zero diagonal ends the elimination.
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		// Normalize the pivot row so the diagonal becomes 1.
		for j = 0; j < width; j++ {
			aug.data[basePivot+j] /= pivot
		}
		// Clear column col from every other row.
		for i = 0; i < n; i++ {
			if i == col {
				continue
			}
			baseI = i * width
			factor = aug.data[baseI+col]
			if factor == 0 {
				continue // already clear; skip the row update
			}
			for j = 0; j < width; j++ {
				aug.data[baseI+j] -= factor * aug.data[basePivot+j]
			}
		}
	}

	// The right half now holds A^{-1}; materialize it as an independent Dense.
	rowsIdx := make([]int, n) // all rows, ascending
	colsIdx := make([]int, n) // right-half columns n..2n-1
	for i = 0; i < n; i++ {
		rowsIdx[i] = i
		colsIdx[i] = n + i
	}
	res, err := aug.Induced(rowsIdx, colsIdx)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ eps for every element, using
// the epsilon from the resolved options (DefaultEpsilon unless overridden
// via WithEpsilon).
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); resolve options.
//   - Stage 2: Fast-path flat comparison for *Dense pairs; generic At/At
//     fallback otherwise. First violation short-circuits.
//
// Behavior highlights:
//   - NaN is never close to anything, including NaN (the comparison is
//     written so a NaN difference fails the tolerance test).
//   - eps = 0 demands exact equality.
//
// Inputs:
//   - a, b: conformable matrices (same r×c).
//   - opts: optional WithEpsilon override.
//
// Returns:
//   - bool : true when every element pair is within eps.
//   - error: validation failures wrapped with opAllClose.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Determinism:
//   - Fixed scan order; the first violating element ends the scan.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
//
// Notes:
//   - This is a tolerance comparison, not a metric: it does not symmetrize
//     or normalize magnitudes.
//
// AI-Hints:
//   - For inversion round-trip checks, compare Mul(a, Inverse(a)) against
//     IdentityLike(a) with a looser eps (e.g., 1e-9..1e-6) than the default.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)

	rows, cols := a.Rows(), a.Cols()

	// Fast-path: both operands are *Dense → flat comparison.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				// Written so a NaN difference fails (NaN <= eps is false).
				if !(math.Abs(da.data[idx]-db.data[idx]) <= o.eps) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: generic interface scan with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !(math.Abs(av-bv) <= o.eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
