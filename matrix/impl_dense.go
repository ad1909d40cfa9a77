// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Construct from dimensions (identity default), a [][]float64 grid, or a
//     row-major flat sequence; replace contents via SetGrid; restore the
//     construction default via Reset.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Use Induced(rows, cols) to materialize a submatrix (copy) for independent lifetime/shape.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable upstream.
//
// Complexity quicksheet:
//   - Constructors: O(r*c); At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxFill     = "Fill"     // method tag used in error wrappers
	ctxSetGrid  = "SetGrid"  // method tag for Dense.SetGrid
	ctxInduce   = "Induced"  // ctor/tag for Dense.Induced
	ctxFromGrid = "FromGrid" // ctor tag for NewDenseFromGrid ingestion
	ctxFromFlat = "FromFlat" // ctor tag for NewDenseFromFlat ingestion
)

// ---------- Formatting literals  ----------
const (
	_fmtMatOpen  = "{"
	_fmtMatClose = "}"
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtRowSep   = ","
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxApply/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Returns:
//   - error: wrapped with context
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
//
// AI-Hints:
//   - Prefer to wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only for internal zero-OK constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix initialized to the identity pattern:
// ones along the main diagonal (where defined), zeros elsewhere. For
// rectangular shapes the diagonal runs over min(rows, cols) cells.
// MAIN DESCRIPTION:
//   - Public dims-only constructor for Dense with strict shape validation and
//     configurable numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate the flat buffer.
//   - Stage 3: stamp the identity pattern (the same state Reset restores).
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//   - The identity pattern is the documented default state, not a zero matrix;
//     use NewZeros (api.go) when an all-zero start is wanted.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//   - opts: optional numeric-policy setters (e.g., WithNoValidateNaNInf).
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//   - Fixed identity initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Internal zero-sized cases use newDenseZeroOK.
//
// AI-Hints:
//   - Prefer this ctor for public creation; Reset returns an instance to
//     exactly this state.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Resolve the numeric policy once.
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	m := &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}
	m.stampIdentity() // default state: identity pattern

	return m, nil
}

// NewDenseFromGrid creates a matrix from a [][]float64 grid. Dimensions are
// inferred: rows = len(grid), cols = len(grid[0]); every row must match the
// first (ragged grids are rejected with the offending row index).
// MAIN DESCRIPTION:
//   - Public grid constructor with full rectangularity validation and
//     policy-checked ingestion.
//
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, rectangular).
//   - Stage 2: resolve options and allocate the flat buffer.
//   - Stage 3: copy values row-major, rejecting NaN/±Inf under the policy.
//
// Behavior highlights:
//   - The grid is copied; the caller keeps ownership of its slices.
//   - The result never aliases caller memory.
//
// Inputs:
//   - grid: non-empty rectangular [][]float64.
//   - opts: optional numeric-policy setters.
//
// Returns:
//   - *Dense: independent matrix with the grid's values.
//
// Errors:
//   - ErrInvalidDimensions (empty grid or empty first row).
//   - ErrDimensionMismatch (ragged row, index in message).
//   - ErrNaNInf (non-finite value under the active policy, coordinates in message).
//
// Determinism:
//   - Fixed i→j ingestion order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - For trusted pre-validated buffers prefer NewDenseFromFlat (no per-row
//     header walk).
func NewDenseFromGrid(grid [][]float64, opts ...Option) (*Dense, error) {
	// Stage 1: structural validation (fails fast, names the ragged row).
	if err := ValidateGrid(grid); err != nil {
		return nil, err
	}
	rows, cols := len(grid), len(grid[0])

	// Stage 2: policy + storage.
	o := gatherOptions(opts...)
	m := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}

	// Stage 3: deterministic row-major copy with numeric policy enforcement.
	var i, j, base int // loop iterators and per-row offset
	var v float64      // current value
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			v = grid[i][j]
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromGrid, i, j, ErrNaNInf)
			}
			m.data[base+j] = v
		}
	}

	return m, nil
}

// NewDenseFromFlat creates an r×c matrix from a row-major flat sequence.
// The sequence length must equal rows*cols exactly.
// MAIN DESCRIPTION:
//   - Public flat constructor: explicit dimensions plus a value sequence.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: ValidateFlatLen (nil guard, exact length).
//   - Stage 3: resolve options, copy the sequence, enforce the numeric policy.
//
// Behavior highlights:
//   - values is copied; later mutation of the argument does not affect the matrix.
//   - Length mismatch is a hard error, never silent truncation or padding.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - values: exactly rows*cols numbers, row-major.
//   - opts: optional numeric-policy setters.
//
// Returns:
//   - *Dense: independent matrix with the given values.
//
// Errors:
//   - ErrInvalidDimensions, ErrNilMatrix (nil values), ErrDimensionMismatch
//     (len(values) != rows*cols), ErrNaNInf (policy violation).
//
// Determinism:
//   - Single pass over the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the cheapest ingestion path: one length check, one copy.
func NewDenseFromFlat(rows, cols int, values []float64, opts ...Option) (*Dense, error) {
	// Stage 1: shape contract.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Stage 2: sequence contract (nil and exact-length checks).
	if err := ValidateFlatLen(values, rows, cols); err != nil {
		return nil, err
	}

	// Stage 3: policy + copy.
	o := gatherOptions(opts...)
	m := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}
	var k int     // flat iterator
	var v float64 // current value
	for k = 0; k < len(values); k++ {
		v = values[k]
		if m.validateNaNInf && isNonFinite(v) {
			return nil, denseErrorf(ctxFromFlat, k/cols, k%cols, ErrNaNInf)
		}
		m.data[k] = v
	}

	return m, nil
}

// newDenseZeros is the internal strict zero-matrix constructor used by
// kernels to allocate results (the public NewDense stamps the identity
// pattern instead).
// Complexity: O(r*c).
func newDenseZeros(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// MAIN DESCRIPTION:
//   - Internal factory for legal 0×N or N×0 shapes used by kernels.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0.
//   - Stage 2: allocate len(rows*cols) buffer (possibly zero).
//
// Behavior highlights:
//   - Same numeric policy as public constructors.
//   - Lets SubMatrix produce a legal 0×0 result from a 1×1 input.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//
// Returns:
//   - *Dense or ErrInvalidDimensions on negatives.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Zero-length buffer is legal when rows==0 or cols==0 (len == rows*cols).
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy is a helper for tests/kernels to override numeric policy.
// MAIN DESCRIPTION:
//   - Construct a zero Dense with strict shape validation, then set
//     validateNaNInf explicitly.
//
// Implementation:
//   - Stage 1: call newDenseZeros(rows, cols).
//   - Stage 2: set policy flag.
//
// Behavior highlights:
//   - Centralized creation semantics.
//   - Intended for package internals and tests.
//
// Inputs:
//   - rows, cols; validateNaNInf.
//
// Returns:
//   - *Dense or error from newDenseZeros.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := newDenseZeros(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// stampIdentity writes the identity pattern in place: zeros everywhere,
// ones along the main diagonal over min(r, c) cells. Shared by NewDense
// and Reset so the construction default and the reset state never diverge.
// Complexity: O(r*c).
func (m *Dense) stampIdentity() {
	var k int // flat iterator
	for k = 0; k < len(m.data); k++ {
		m.data[k] = 0
	}
	// Diagonal length for rectangular shapes is the shorter dimension.
	n := m.r
	if m.c < n {
		n = m.c
	}
	var i int // diagonal iterator
	for i = 0; i < n; i++ {
		m.data[i*m.c+i] = 1
	}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Behavior highlights:
//   - Returns a sentinel (ErrOutOfRange) without adding context; public
//     methods (At/Set) will wrap with coordinates and method name.
//
// Inputs:
//   - row, col: coordinates.
//
// Returns:
//   - (offset, nil) on success; (0, ErrOutOfRange) otherwise.
//
// Errors:
//   - ErrOutOfRange when indices are invalid
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep unexported to avoid accidental panics at public surface.
//
// AI-Hints:
//   - Reuse in At/Set to keep identical bound semantics.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Inputs:
//   - row, col: zero-based indices.
//
// Returns:
//   - (value, nil) on success; (0, ErrOutOfRange) on invalid indices.
//
// Errors:
//   - ErrOutOfRange when out of bounds
//
// Determinism:
//   - Stable access cost; no allocations.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Behavior highlights:
//   - Never panics; returns sentinel errors.
//   - Numeric policy is a per-instance flag preserved by Clone.
//
// Inputs:
//   - row, col: element coordinates.
//   - v      : value to store.
//
// Returns:
//   - nil on success; errors on invalid indices.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers
//
// Determinism:
//   - Stable, no side-effects beyond the cell.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Policy flag is carried by Clone/Induced (single source of truth).
//
// AI-Hints:
//   - Keep policy ON in production data flows; disable only in controlled ingestion.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// SetGrid replaces the receiver's contents with the given grid's values.
// The grid must be rectangular and match the receiver's shape exactly
// (len(grid) == Rows(), len(grid[0]) == Cols()).
// MAIN DESCRIPTION:
//   - Bulk in-place replacement with structural and numeric validation.
//
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, rectangular).
//   - Stage 2: check shape match against the receiver.
//   - Stage 3: policy pre-scan, then deterministic row-major copy.
//
// Behavior highlights:
//   - All-or-nothing: the receiver is untouched on any error.
//   - The grid is copied; no aliasing of caller memory.
//
// Inputs:
//   - grid: rectangular [][]float64 with the receiver's shape.
//
// Returns:
//   - nil on success; wrapped sentinel on violation.
//
// Errors:
//   - ErrInvalidDimensions (empty grid), ErrDimensionMismatch (ragged row or
//     shape mismatch), ErrNaNInf (policy violation, coordinates in message).
//
// Determinism:
//   - Fixed i→j scan and copy orders.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - Dimensions are fixed at construction; SetGrid cannot resize a matrix.
//
// AI-Hints:
//   - To adopt a grid of a different shape, construct a new matrix instead.
func (m *Dense) SetGrid(grid [][]float64) error {
	// Stage 1: structural validation.
	if err := ValidateGrid(grid); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetGrid, err)
	}
	// Stage 2: the replacement must match the receiver's fixed shape.
	if len(grid) != m.r || len(grid[0]) != m.c {
		return fmt.Errorf("Dense.%s: %w", ctxSetGrid, ErrDimensionMismatch)
	}

	// Stage 3a: numeric pre-scan keeps the operation all-or-nothing.
	var i, j int // loop iterators
	if m.validateNaNInf {
		for i = 0; i < m.r; i++ {
			for j = 0; j < m.c; j++ {
				if isNonFinite(grid[i][j]) {
					return denseErrorf(ctxSetGrid, i, j, ErrNaNInf)
				}
			}
		}
	}
	// Stage 3b: deterministic copy into the flat buffer.
	var base int // per-row offset
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = grid[i][j]
		}
	}

	return nil
}

// Reset restores the identity pattern the matrix was constructed with:
// ones along the main diagonal over min(Rows, Cols) cells, zeros elsewhere.
// Later SetGrid/Set/Apply calls do not change what Reset restores, because
// the default state is a function of the dimensions alone.
// Complexity: O(r*c). Never fails.
func (m *Dense) Reset() {
	m.stampIdentity()
}

// Fill sets every element to v, honoring the numeric policy.
// MAIN DESCRIPTION:
//   - Bulk constant fill with a single up-front policy check.
//
// Implementation:
//   - Stage 1: reject non-finite v under the policy.
//   - Stage 2: flat single-pass write.
//
// Returns:
//   - nil on success; ErrNaNInf when v violates the policy.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Fill(v float64) error {
	if m.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("Dense.%s: %w", ctxFill, ErrNaNInf)
	}
	var k int // flat iterator
	for k = 0; k < len(m.data); k++ {
		m.data[k] = v
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data/policy.
//
// Implementation:
//   - Stage 1: allocate new buffer len==r*c.
//   - Stage 2: copy data and flags.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Returns:
//   - Matrix: *Dense implementing Matrix.
//
// Determinism:
//   - Stable double loop cost reduced to single copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Returned dynamic type is *Dense.
//
// AI-Hints:
//   - For structural copy with transform, consider Apply on clone.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy bytes

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders the matrix on one line: rows as bracketed value lists,
// joined by commas inside braces, e.g. {[1, 0],[0, 1]}.
// MAIN DESCRIPTION:
//   - Compact single-line dump for logs and debugging.
//
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values formatted with %g into strings.Builder with
//     standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//   - Not a serialization format; %g drops trailing zeros.
//
// Returns:
//   - string: single-line representation of the matrix.
//
// Determinism:
//   - Fixed traversal order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtMatOpen) // open matrix
	for i = 0; i < m.r; i++ {  // iterate rows deterministically
		if i > 0 {
			b.WriteString(_fmtRowSep) // separate rows with a bare comma
		}
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}
	b.WriteString(_fmtMatClose) // close matrix

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: handle zero-sized result (legal).
//   - Stage 2: allocate result via newDenseZeros.
//   - Stage 3: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - Policy is preserved from the base (validateNaNInf).
//   - Duplicates in index sets are allowed (repeated rows/cols in the result).
//
// Inputs:
//   - rowsIdx: indices into [0..m.r).
//   - colsIdx: indices into [0..m.c).
//
// Returns:
//   - *Dense: independent copy with size len(rowsIdx)×len(colsIdx).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Determinism:
//   - Fixed nested loops i→j.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
//
// Notes:
//   - Zero-area returns legal Dense with zero-length buffer.
//
// AI-Hints:
//   - Use when the result must be independent (e.g., transform downstream).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	// Zero-area: legal Dense, shared policy
	if rp == 0 || cp == 0 {
		return &Dense{
			r:              rp,
			c:              cp,
			data:           make([]float64, 0),
			validateNaNInf: m.validateNaNInf,
		}, nil
	}

	// Allocate the result with the strict internal constructor.
	res, err := newDenseZeros(rp, cp)
	if err != nil {
		return nil, err
	}
	// Preserve numeric policy from the base (critical for consistency).
	res.validateNaNInf = m.validateNaNInf

	// Deterministic double loop; direct offset math in both matrices.
	var i, j int
	var ri, cj int
	var src, dst int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			// Direct linear index in source and destination.
			src = ri*m.c + cj // source offset in base
			dst = i*cp + j    // destination offset in result
			res.data[dst] = m.data[src]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops - double for-loop over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Behavior highlights:
//   - Read-only with respect to the callback; no allocations; deterministic order.
//
// Inputs:
//   - f: callback returning continue/stop flag (false to stop early).
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use to accumulate stats without temporary allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset
	var v float64      // temporary for current value

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			v = m.data[base+j] // read current element
			if !f(i, j, v) {   // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Implementation:
//   - Stage 1: nested loops - double for-loop over rows then cols; compute new value via f.
//   - Stage 2: compute new value; reject NaN/Inf if policy enabled.
//   - Stage 3: write back.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Inputs:
//   - f: transformer from (i,j,v) to new value.
//
// Returns:
//   - error: ErrNaNInf when transformer produced non-finite (if policy ON).
//
// Determinism:
//   - Fixed i→j order; side effects are predictable.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform into a clone and swap on success.
//
// AI-Hints:
//   - Keep transforms pure; avoid capturing external mutable state.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int // predeclare loop counters and base offset
	var v, nv float64  // old and new values

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			v = m.data[base+j] // read current value
			nv = f(i, j, v)    // compute new value
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf) // wrap with coordinates
			}
			m.data[base+j] = nv // write back new value
		}
	}

	return nil // success
}
