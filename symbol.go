package gencx

// Core constants of the .cx format
const (
	quadLen      = 4               // bases per index byte, fixed by the format
	alphabetSize = 4               // T, C, G, A
	tableSize    = 256             // alphabetSize^quadLen, one index byte per quadruplet
	maxOverflow  = quadLen - 1     // longest possible unaligned tail
	footerSize   = 16              // two little-endian uint64 size fields
	invalidBase  = 0xFF            // baseCodes marker for bytes outside the alphabet
	codeShift    = 2               // bits per base code
)

// Extension is the conventional file suffix for encoded blobs.
const Extension = ".cx"

// alphabet fixes the canonical base order T=0, C=1, G=2, A=3.
// The order is a format parameter: encoder and decoder must enumerate
// quadruplets from the same order or indices will not agree.
var alphabet = [alphabetSize]byte{'T', 'C', 'G', 'A'}

// Quad is one quadruplet of bases, the unit that maps to a table index.
type Quad [quadLen]byte

// foldUpper upper-cases ASCII letters and leaves every other byte alone.
// Folding is identity on non-letters so arbitrary overflow bytes survive
// a round-trip unchanged.
func foldUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// fold returns q with every base upper-folded.
func (q Quad) fold() Quad {
	for i := range q {
		q[i] = foldUpper(q[i])
	}
	return q
}

func (q Quad) String() string { return string(q[:]) }
