// Package lvmat is a compact toolkit for exact dense linear algebra —
// deterministic matrix arithmetic for transform pipelines, small solvers
// and teaching-grade numerics.
//
// 🚀 What is lvmat?
//
//	A modern, strict, single-dependency library that brings together:
//		• Dense storage: row-major float64 with O(1) element access
//		• Arithmetic: element-wise add/sub, pre- and post-multiplication
//		• Structure: transpose, scaling, minors / sub-matrices
//		• Determinants: signed cofactor expansion along the first column
//		• Inversion: Gauss-Jordan on an augmented [A | I], no pivoting
//		• Comparison: epsilon-aware AllClose for round-trip checks
//
// ✨ Why choose lvmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no pivoting, reproducible floats
//   - Pure Go – no cgo, no hidden deps
//   - Strict – fail-fast validation, errors.Is-matchable sentinels
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/ — the Dense type, kernels, validators and functional options
//
// Quick ASCII example:
//
//	    ⎡1 2⎤              ⎡-2    1 ⎤
//	    ⎣3 4⎦   inverts to ⎣1.5 -0.5⎦
//
//	det = -2, and multiplying the two back together yields I₂.
//
// Dive into README.md for full examples and the matrix package docs for
// the determinism and error-handling contracts.
//
//	go get github.com/katalvlaran/lvmat
package lvmat
