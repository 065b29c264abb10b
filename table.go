package gencx

import "errors"

// ErrNotFound indicates a quadruplet that is not in the permutation table,
// i.e. one of its four bytes is not an upper-case base. Encode validates
// input before any lookup, so seeing this error from Encode is a defect.
var ErrNotFound = errors.New("gencx: quadruplet not in permutation table")

// Table is the fixed bijection between byte indices 0-255 and base
// quadruplets. Every conforming implementation builds the identical table,
// so it carries no per-file state. A Table is immutable after NewTable and
// safe to share across concurrent Encode/Decode calls.
type Table struct {
	quads  [tableSize]Quad    // index -> quadruplet, in enumeration order
	digits [quadLen][256]byte // position, base byte -> 2-bit index digit
}

// NewTable builds the canonical permutation table. Four nested loops
// enumerate all 256 ordered quadruplets, outer loop most significant,
// assigning indices 0..255 in iteration order. Position p iterates the
// canonical alphabet rotated to start at its identity base (position 0
// starts at T, position 1 at C, and so on), which makes the identity
// quadruplet "TCGA" the first tuple generated and therefore index 0.
func NewTable() *Table {
	t := &Table{}

	for p := 0; p < quadLen; p++ {
		for b := range t.digits[p] {
			t.digits[p][b] = invalidBase
		}
		for c, base := range alphabet {
			t.digits[p][base] = byte((c + alphabetSize - p) % alphabetSize)
		}
	}

	index := 0
	for _, a := range positionAlphabet(0) {
		for _, b := range positionAlphabet(1) {
			for _, c := range positionAlphabet(2) {
				for _, d := range positionAlphabet(3) {
					t.quads[index] = Quad{a, b, c, d}
					index++
				}
			}
		}
	}
	return t
}

// positionAlphabet returns the enumeration order for quadruplet position
// p: the canonical alphabet rotated left by p.
func positionAlphabet(p int) [alphabetSize]byte {
	var order [alphabetSize]byte
	for i := range order {
		order[i] = alphabet[(p+i)%alphabetSize]
	}
	return order
}

// IndexOf returns the table index of q. The quadruplet must consist of
// exactly four upper-case bases; anything else fails with ErrNotFound.
func (t *Table) IndexOf(q Quad) (byte, error) {
	var index byte
	for p, base := range q {
		digit := t.digits[p][base]
		if digit == invalidBase {
			return 0, ErrNotFound
		}
		index = index<<codeShift | digit
	}
	return index, nil
}

// QuadAt returns the quadruplet at index. The table is total and
// bijective over all 256 indices, so the lookup cannot fail.
func (t *Table) QuadAt(index byte) Quad {
	return t.quads[index]
}
