// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewZeros/NewIdentity to build matrices with explicit shape and neutral elements.
//   - Plus/Minus/Times mirror the receiver-style vocabulary; Add/Sub/Mul are the kernels.

package matrix

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new all-zero *Dense of size rows×cols.
// Unlike NewDense, no identity diagonal is stamped: every element is 0.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zero-init by the runtime.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	// Resolve options once; the zero constructor itself carries no policy.
	o := gatherOptions(opts...)

	// Delegate to the strict internal constructor (single allocation).
	return newDenseWithPolicy(rows, cols, o.validateNaNInf)
}

// NewIdentity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
// Thin alias of NewDense with an intention-revealing name: the plain
// constructor already stamps the identity pattern.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
//
// AI-Hints: Use as a neutral element for inversion round-trip checks.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	// Delegate directly; NewDense's default state is exactly I_n for square shapes.
	return NewDense(n, n, opts...)
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new all-zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewZeros with the same dimensions.
	return NewZeros(m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns a fresh matrix in the default state for m's shape:
// ones on the main diagonal where it exists, zeros elsewhere. Rectangular
// shapes are allowed — the diagonal simply stops at min(rows, cols).
// Complexity: O(r*c).
//
// AI-Hints: IdentityLike(m) equals what Reset() would leave m holding.
func IdentityLike(m Matrix) (*Dense, error) {
	// NewDense stamps exactly this pattern for any shape.
	return NewDense(m.Rows(), m.Cols())
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Plus is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
// AI-Hints: Prefer passing *Dense operands for single flat-loop fast-path.
func Plus(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Minus is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Minus(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// PreMultiply is an alias for Mul: matrix product a × b, reading as
// "a, pre-multiplied onto b". The left operand's columns must match the
// right operand's rows.
// Complexity: O(r*n*c).
//
// AI-Hints: Prefer Dense to unlock the cache-friendly fast path.
func PreMultiply(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// Times is an alias for PreMultiply: the conventional product a × b.
// Complexity: O(r*n*c).
func Times(a, b Matrix) (Matrix, error) { return PreMultiply(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
//
// AI-Hints: Good for small helpers and chaining.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// Minor is an alias for SubMatrix: m with one row and one column deleted.
// Complexity: O(rc).
func Minor(m Matrix, excludeRow, excludeCol int) (Matrix, error) {
	return SubMatrix(m, excludeRow, excludeCol)
}

// InverseOf is an alias for Inverse: returns A^{-1} (no pivoting; deterministic).
// Complexity: O(n^3) elimination plus the determinant gate.
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }
