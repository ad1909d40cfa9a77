// Package matrix implements a dense, row-major float64 matrix with exact,
// deterministic linear algebra: element-wise arithmetic, multiplication,
// transpose, minors, cofactor determinants and Gauss-Jordan inversion.
//
// 🚀 What is matrix?
//
//	A small, strict matrix value type for the shapes where textbook
//	algorithms are the right tool.  It is used for:
//	  • Affine / projective transform chains (2-D and 3-D pipelines)
//	  • Solving small linear systems via the explicit inverse
//	  • Cofactor determinants, minors and adjugate-style derivations
//	  • Teaching-grade numerics where every loop order is reproducible
//
// ✨ Key features:
//   - Dense row-major storage: one flat []float64, O(1) At/Set
//   - Identity-pattern default: a fresh matrix starts as I (rectangular
//     shapes get ones down the main diagonal while it lasts), and Reset
//     restores exactly that state
//   - Every kernel has a flat fast path for *Dense and a generic At/Set
//     fallback for any Matrix implementation
//   - Exact arithmetic: no tolerance, no pivoting, no hidden rounding —
//     AllClose is the only epsilon-aware entry point
//   - Strict fail-fast validation with errors.Is-matchable sentinels
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmat/matrix"
//
//	a, _ := matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3, 4})
//	det, _ := matrix.Determinant(a) // -2
//	inv, _ := matrix.Inverse(a)     // [[-2, 1], [1.5, -0.5]]
//	p, _ := matrix.Times(a, inv)    // ≈ I₂
//	i2, _ := matrix.NewDense(2, 2)  // identity by default
//	ok, _ := matrix.AllClose(p, i2, matrix.WithEpsilon(1e-12))
//
// Performance:
//
//   - Add/Sub/Transpose/Scale: O(r·c)
//   - Mul:        O(r·n·c), zero-skip on the left operand
//   - Determinant: cofactor expansion along the first column — exact but
//     factorial; intended for small n
//   - Inverse:    O(n³) Gauss-Jordan on an augmented [A | I], no pivoting;
//     the singularity gate reuses Determinant, so the factorial bound
//     applies here too — keep n small
//
// Inversion is deterministic by construction: no row swaps means identical
// inputs always take identical arithmetic paths.  The price is that an
// exactly-zero pivot fails with ErrSingular even when a row exchange could
// have rescued the input.
//
// See example_test.go for usage patterns.
package matrix
