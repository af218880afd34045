package matrix

import (
	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

// GetSolution extracts the k-th (1-indexed) null-space solution from an
// eliminated matrix (spec section 4.8, "Solution extraction"). The mask
// has the free column f_k set plus, for every pivot row whose bit in
// column f_k is set, that row's own pivot column -- back-substitution
// over the reduced row-echelon form.
func (m *Matrix) GetSolution(k int) ([]*relation.Relation, error) {
	if !m.eliminated {
		return nil, gnfserr.New(gnfserr.ErrInternalInvariant, "GetSolution called before Eliminate")
	}
	if k < 1 || k > len(m.free) {
		return nil, gnfserr.New(gnfserr.ErrInternalInvariant, "solution index %d out of range [1,%d]", k, len(m.free))
	}
	fk := m.free[k-1]

	mask := NewBitset(m.numCols)
	mask.Set(fk)
	for i, h := range m.pivotCol {
		if m.rows[i].Get(fk) {
			mask.Set(h)
		}
	}

	var rels []*relation.Relation
	for c := 0; c < m.numCols; c++ {
		if mask.Get(c) && m.colToRel[c] != nil { // nil marks the bookkeeping column
			rels = append(rels, m.colToRel[c])
		}
	}
	return rels, nil
}

// IsValidSolution reports whether the product of rational norms and the
// product of algebraic norms across rels are both perfect squares (spec
// section 4.8, "Validity check" and section 8, property 7).
func IsValidSolution(rels []*relation.Relation) bool {
	if len(rels) == 0 {
		return false
	}
	ratProd := bigint.ONE
	algProd := bigint.ONE
	for _, r := range rels {
		ratProd = ratProd.Mul(r.RationalNorm)
		algProd = algProd.Mul(r.AlgebraicNorm)
	}
	return ratProd.IsSquare() && algProd.IsSquare()
}
