package matrix

import (
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

// Matrix is the transposed GF(2) coefficient matrix of spec section
// 4.8: Rows(f) is the bit vector across all selected relations for
// feature (row) index f, i.e. row-major storage where each row's bits
// index the columns (relations).
type Matrix struct {
	rows     []*Bitset // len(rows) == numFeatures; each row has numCols bits
	numCols  int       // L+1 relation columns, plus one bookkeeping column
	colToRel []*relation.Relation // numCols entries; last is nil (bookkeeping)
	free       []int // free column indices, filled in by Eliminate
	pivotCol   []int // pivotCol[i] is the pivot column of pivot row i
	eliminated bool
}

// BuildMatrix implements spec section 4.8's matrix-build steps 1-3:
// encode every candidate relation, truncate each block to the maximum
// used index across the candidates, take the first numCols()-1 of them
// as columns, transpose into a row-per-feature matrix, and append one
// all-zero bookkeeping column.
func BuildMatrix(candidates []*relation.Relation, enc *Encoder) (*Matrix, error) {
	type encoded struct {
		rel *relation.Relation
		vec *Bitset
	}
	full := make([]encoded, len(candidates))
	var ratUsed, algUsed, quadUsed int
	for i, r := range candidates {
		vec, ru, au, qu := enc.EncodeFull(r)
		full[i] = encoded{rel: r, vec: vec}
		if ru > ratUsed {
			ratUsed = ru
		}
		if au > algUsed {
			algUsed = au
		}
		if qu > quadUsed {
			quadUsed = qu
		}
	}
	l := 1 + ratUsed + algUsed + quadUsed
	need := l + 1
	if len(full) < need {
		return nil, gnfserr.New(gnfserr.ErrInternalInvariant, "matrix build needs %d relations for %d features, got %d", need, l, len(full))
	}
	full = full[:need]

	ratOff, algOff, quadOff := 1, 1+enc.ratLen, 1+enc.ratLen+enc.algLen
	truncated := make([]*Bitset, need)
	for i, e := range full {
		tv := NewBitset(l)
		if e.vec.Get(0) {
			tv.Set(0)
		}
		for j := 0; j < ratUsed; j++ {
			if e.vec.Get(ratOff + j) {
				tv.Set(1 + j)
			}
		}
		for j := 0; j < algUsed; j++ {
			if e.vec.Get(algOff + j) {
				tv.Set(1 + ratUsed + j)
			}
		}
		for j := 0; j < quadUsed; j++ {
			if e.vec.Get(quadOff + j) {
				tv.Set(1 + ratUsed + algUsed + j)
			}
		}
		truncated[i] = tv
	}

	numCols := need + 1 // + bookkeeping column
	rows := make([]*Bitset, l)
	for f := 0; f < l; f++ {
		row := NewBitset(numCols)
		for c, tv := range truncated {
			if tv.Get(f) {
				row.Set(c)
			}
		}
		rows[f] = row
	}
	colToRel := make([]*relation.Relation, numCols)
	for i, e := range full {
		colToRel[i] = e.rel
	}
	colToRel[numCols-1] = nil // bookkeeping column

	return &Matrix{rows: rows, numCols: numCols, colToRel: colToRel}, nil
}

// NumCols returns the matrix's column count (relations + bookkeeping).
func (m *Matrix) NumCols() int {
	return m.numCols
}

// NumRows returns the matrix's row (feature) count.
func (m *Matrix) NumRows() int {
	return len(m.rows)
}
