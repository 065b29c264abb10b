// Package gencx implements the .cx permutation-table codec for
// nucleotide sequences.
//
// # Overview
//
// The codec maps every group of four bases over the alphabet {T, C, G, A}
// to a single byte: a fixed 256-entry table enumerates all 4^4 ordered
// quadruplets, and each input quadruplet is replaced by its table index.
// The aligned portion of the input therefore shrinks exactly 4:1.
//
// The table is a constant of the format, not learned from data. Any
// conforming implementation builds the identical table: the canonical
// symbol order is T=0, C=1, G=2, A=3, each quadruplet position enumerates
// from its identity base, and the identity quadruplet "TCGA" is index 0.
// No table needs to be shipped alongside the encoded bytes.
//
// # Container format
//
// An encoded blob is the index stream followed by a trailing footer:
//
//	[indexStream:       compressedSize bytes]
//	[uncompressedSize:  8 bytes, little-endian]
//	[compressedSize:    8 bytes, little-endian]
//	[overflow:          uncompressedSize mod 4 bytes]
//
// overflow holds the 0-3 trailing input bytes that do not form a complete
// quadruplet; they are stored uninterpreted so any tail round-trips. The
// footer invariant uncompressedSize == 4*compressedSize + len(overflow)
// is checked on decode.
//
// # Input handling
//
// Input is ASCII-upper-folded before encoding, so lowercase bases are
// accepted. Any other byte inside a complete quadruplet is an error; the
// remainder bytes are never validated.
//
// # Basic Usage
//
//	tbl := gencx.NewTable()
//
//	blob, err := tbl.EncodeAll([]byte("TCGATCGAT"))
//	if err != nil {
//		// input contained a non-base byte
//	}
//
//	seq, err := tbl.DecodeAll(blob)
//	// seq == []byte("TCGATCGAT")
//
// A Table is immutable after NewTable and safe for concurrent use.
package gencx
