package gencx

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol indicates a byte outside {T,C,G,A} (after case
	// folding) inside a complete quadruplet. The whole encode aborts;
	// no partial output is valid.
	ErrInvalidSymbol = errors.New("gencx: invalid base in aligned quadruplet")

	// ErrCorruptFooter indicates a blob whose trailing size fields are
	// missing, truncated, or inconsistent with the blob length.
	ErrCorruptFooter = errors.New("gencx: corrupt footer")

	// ErrLengthMismatch indicates decoded output whose length disagrees
	// with the footer's uncompressedSize.
	ErrLengthMismatch = errors.New("gencx: decoded length mismatch")
)

// footer is the trailing metadata block of an encoded blob. overflow
// aliases the source blob on parse; callers only read from it.
type footer struct {
	uncompressedSize uint64 // original input length in bytes
	compressedSize   uint64 // number of index bytes preceding the footer
	overflow         []byte // unaligned tail, len = uncompressedSize mod 4
}

// appendFooter serializes f after the index stream already in dst.
func appendFooter(dst []byte, f footer) []byte {
	var buf8 [8]byte
	binary.LittleEndian.PutUint64(buf8[:], f.uncompressedSize)
	dst = append(dst, buf8[:]...)
	binary.LittleEndian.PutUint64(buf8[:], f.compressedSize)
	dst = append(dst, buf8[:]...)
	return append(dst, f.overflow...)
}

// parseFooter locates and validates the footer at the end of blob.
//
// The overflow length is not stored explicitly, so the parser tries each
// possible length 0..3 and accepts the position whose stored sizes are
// self-consistent: compressedSize must equal the footer offset (the index
// stream occupies everything before it) and uncompressedSize must equal
// 4*compressedSize + overflowLen. A blob with no consistent reading is
// corrupt.
func parseFooter(blob []byte) (footer, error) {
	if len(blob) < footerSize {
		return footer{}, fmt.Errorf("%w: blob is %d bytes, footer needs %d", ErrCorruptFooter, len(blob), footerSize)
	}
	for ovLen := 0; ovLen <= maxOverflow; ovLen++ {
		off := len(blob) - footerSize - ovLen
		if off < 0 {
			break
		}
		uncompressed := binary.LittleEndian.Uint64(blob[off:])
		compressed := binary.LittleEndian.Uint64(blob[off+8:])
		if compressed != uint64(off) {
			continue
		}
		if uncompressed != compressed*quadLen+uint64(ovLen) {
			continue
		}
		return footer{
			uncompressedSize: uncompressed,
			compressedSize:   compressed,
			overflow:         blob[off+footerSize:],
		}, nil
	}
	return footer{}, fmt.Errorf("%w: no consistent size fields", ErrCorruptFooter)
}

// Encode compresses input, optionally reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
// Returns the encoded blob (index stream + footer), which may have a
// different backing array than buf.
//
// The input is ASCII-upper-folded first. Every byte of the aligned prefix
// must then be one of {T,C,G,A} or Encode fails with ErrInvalidSymbol;
// the 0-3 remainder bytes are stored in the footer without validation.
func (t *Table) Encode(buf, input []byte) ([]byte, error) {
	n := len(input)
	aligned := n - n%quadLen
	need := aligned/quadLen + footerSize + n%quadLen
	if cap(buf) < need {
		buf = make([]byte, 0, need)
	}
	out := buf[:0]

	for pos := 0; pos < aligned; pos += quadLen {
		var index byte
		for j := 0; j < quadLen; j++ {
			base := foldUpper(input[pos+j])
			digit := t.digits[j][base]
			if digit == invalidBase {
				return nil, fmt.Errorf("%w: byte %q at offset %d", ErrInvalidSymbol, base, pos+j)
			}
			index = index<<codeShift | digit
		}
		out = append(out, index)
	}

	var overflow [maxOverflow]byte
	ovLen := n - aligned
	for j := 0; j < ovLen; j++ {
		overflow[j] = foldUpper(input[aligned+j])
	}

	return appendFooter(out, footer{
		uncompressedSize: uint64(n),
		compressedSize:   uint64(aligned / quadLen),
		overflow:         overflow[:ovLen],
	}), nil
}

// EncodeAll compresses input into a newly allocated blob.
func (t *Table) EncodeAll(input []byte) ([]byte, error) {
	return t.Encode(nil, input)
}

// Decode decompresses blob, optionally reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
// Returns the reconstructed input (may have a different backing array
// than buf).
//
// Each index byte expands to its quadruplet via the table, then the
// footer's overflow bytes are appended verbatim. Decode fails with
// ErrCorruptFooter on an inconsistent or truncated blob, and with
// ErrLengthMismatch if the output disagrees with uncompressedSize.
func (t *Table) Decode(buf, blob []byte) ([]byte, error) {
	ftr, err := parseFooter(blob)
	if err != nil {
		return nil, err
	}

	if cap(buf) < int(ftr.uncompressedSize) {
		buf = make([]byte, 0, ftr.uncompressedSize)
	}
	out := buf[:0]

	for _, index := range blob[:ftr.compressedSize] {
		quad := t.quads[index]
		out = append(out, quad[:]...)
	}
	out = append(out, ftr.overflow...)

	if uint64(len(out)) != ftr.uncompressedSize {
		return nil, fmt.Errorf("%w: reconstructed %d bytes, footer says %d", ErrLengthMismatch, len(out), ftr.uncompressedSize)
	}
	return out, nil
}

// DecodeAll decompresses blob into a newly allocated byte slice.
func (t *Table) DecodeAll(blob []byte) ([]byte, error) {
	return t.Decode(nil, blob)
}
