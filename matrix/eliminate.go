package matrix

// Eliminate runs full GF(2) Gauss-Jordan reduction over m's rows,
// recording the free-column set (spec section 4.8, "Elimination"). For
// each pivot column h, the first row at or after the current row
// pointer i with a set bit in column h becomes the pivot row (swapped
// into position i); it is then XORed into every other row with a set
// bit in column h, both above and below, for full reduction. Columns
// with no available pivot row are marked free without advancing i.
func (m *Matrix) Eliminate() {
	i := 0
	numRows := len(m.rows)
	for h := 0; h < m.numCols; h++ {
		pivot := -1
		for r := i; r < numRows; r++ {
			if m.rows[r].Get(h) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			m.free = append(m.free, h)
			continue
		}
		m.rows[i], m.rows[pivot] = m.rows[pivot], m.rows[i]
		for r := 0; r < numRows; r++ {
			if r != i && m.rows[r].Get(h) {
				m.rows[r].Xor(m.rows[i])
			}
		}
		m.pivotCol = append(m.pivotCol, h)
		i++
	}
	m.eliminated = true
}

// FreeColumns returns the free-column indices discovered by Eliminate,
// in ascending order.
func (m *Matrix) FreeColumns() []int {
	return m.free
}
