/*
Package sparse implements a simple type for sparse integer matrices.
It is used as the storage of predictive parser tables, where rows denote
non-terminals and columns denote lookahead terminals.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept sorted by (row, column). Iterating over a matrix therefore
visits entries in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Set(2, 3, 123)               // replaces 4711
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Setting a position which already holds a value replaces the old value.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	value    int32
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions holding a value.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	if k, found := m.locate(i, j); found {
		return m.values[k].value
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j). An existing value at (i,j)
// is replaced and returned, otherwise the null-value is returned.
//
// Set panics if (i,j) is outside of the matrix dimensions.
func (m *IntMatrix) Set(i, j int, value int32) (old int32) {
	m.check(i, j)
	k, found := m.locate(i, j)
	if found {
		old = m.values[k].value
		m.values[k].value = value
		return old
	}
	t := triplet{row: i, col: j, value: value}
	m.values = append(m.values, t) // make room
	copy(m.values[k+1:], m.values[k:])
	m.values[k] = t
	return m.nullval
}

// Each calls f for every position holding a value, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value)
	}
}

// locate returns the index of (i,j) within the triplets, or the index where
// a triplet for (i,j) would have to be inserted.
func (m *IntMatrix) locate(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(n int) bool {
		return !m.values[n].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (m *IntMatrix) check(i, j int) {
	if i < 0 || j < 0 || i >= m.rowcnt || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
}

func (t triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.value)
}
