package matrix

import (
	"testing"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

// columnBits builds a column vector (6 rows) from a string of 6 '0'/'1'
// characters, high row first.
func columnBits(s string) [6]bool {
	var out [6]bool
	for i := 0; i < 6; i++ {
		out[i] = s[i] == '1'
	}
	return out
}

// buildRawMatrix constructs a 6x7 Matrix directly from column-major bit
// data, used to test Eliminate/GetSolution against the spec's known
// 2-dimensional null-space scenario without going through BuildMatrix.
func buildRawMatrix(t *testing.T, cols [][6]bool) (*Matrix, []*relation.Relation) {
	t.Helper()
	numCols := len(cols)
	rows := make([]*Bitset, 6)
	for r := 0; r < 6; r++ {
		row := NewBitset(numCols)
		for c, col := range cols {
			if col[r] {
				row.Set(c)
			}
		}
		rows[r] = row
	}
	rels := make([]*relation.Relation, numCols)
	colToRel := make([]*relation.Relation, numCols)
	for c := range rels {
		rels[c] = &relation.Relation{A: bigint.NewInt(int64(c))}
		colToRel[c] = rels[c]
	}
	return &Matrix{rows: rows, numCols: numCols, colToRel: colToRel}, rels
}

func TestEliminateFindsTwoFreeColumns(t *testing.T) {
	cols := [][6]bool{
		columnBits("100000"),
		columnBits("010000"),
		columnBits("001000"),
		columnBits("000100"),
		columnBits("000010"),
		columnBits("110000"), // col0 xor col1
		columnBits("001100"), // col2 xor col3
	}
	m, rels := buildRawMatrix(t, cols)
	m.Eliminate()

	free := m.FreeColumns()
	if len(free) != 2 {
		t.Fatalf("FreeColumns() = %v, want exactly 2 entries", free)
	}

	s1, err := m.GetSolution(1)
	if err != nil {
		t.Fatalf("GetSolution(1): %v", err)
	}
	s2, err := m.GetSolution(2)
	if err != nil {
		t.Fatalf("GetSolution(2): %v", err)
	}

	if !sameRelationSet(s1, []*relation.Relation{rels[0], rels[1], rels[5]}) {
		t.Errorf("GetSolution(1) = %v, want relations {0,1,5}", indicesOf(s1, rels))
	}
	if !sameRelationSet(s2, []*relation.Relation{rels[2], rels[3], rels[6]}) {
		t.Errorf("GetSolution(2) = %v, want relations {2,3,6}", indicesOf(s2, rels))
	}

	verifyNullVector(t, cols, s1, rels)
	verifyNullVector(t, cols, s2, rels)
}

func sameRelationSet(got, want []*relation.Relation) bool {
	if len(got) != len(want) {
		return false
	}
	seen := map[*relation.Relation]bool{}
	for _, r := range got {
		seen[r] = true
	}
	for _, r := range want {
		if !seen[r] {
			return false
		}
	}
	return true
}

func indicesOf(rels []*relation.Relation, all []*relation.Relation) []int64 {
	out := make([]int64, len(rels))
	for i, r := range rels {
		out[i] = r.A.Int64()
	}
	return out
}

// verifyNullVector checks that XORing the original (pre-elimination)
// columns corresponding to sol's relations yields the all-zero vector,
// i.e. property 6 of spec section 8.
func verifyNullVector(t *testing.T, cols [][6]bool, sol []*relation.Relation, rels []*relation.Relation) {
	t.Helper()
	var acc [6]bool
	for _, r := range sol {
		idx := int(r.A.Int64())
		for row := 0; row < 6; row++ {
			acc[row] = acc[row] != cols[idx][row]
		}
	}
	for row, v := range acc {
		if v {
			t.Errorf("null vector check failed at row %d for solution %v", row, indicesOf(sol, rels))
		}
	}
}
