// Package wtf8 implements the permissive UTF-8 codecs at the core of textcodec.
//
// The package converts between byte sequences, code-point sequences, and
// fixed-width 16- or 32-bit code-unit sequences. It trades strict Unicode
// conformance for lossless round trips: data that is not well-formed
// UTF-16, in particular lone surrogates, still survives a conversion to
// bytes and back bit-exactly.
//
// # Overview
//
// Three codec layers share one byte-level grammar:
//
//   - Crop: boundary detection only, no decoding. Trims a byte prefix so
//     it never ends inside a multi-byte sequence.
//   - DecodeCodepoints / EncodeCodepoints: scalar code points in and out
//     of their multi-byte forms.
//   - DecodeWide16 / EncodeWide16 and DecodeWide32 / EncodeWide32:
//     fixed-width code units. Width 16 applies surrogate pair logic;
//     width 32 encodes each unit independently.
//
// # Permissive Decoding
//
// Decoders reject only structural damage: truncated sequences,
// continuation bytes outside 0x80..0xBF, a continuation byte in lead
// position, and lead bytes of 0xF8 or above. Surrogate-range scalars and
// non-minimal encodings decode to the values they carry. This is what
// makes the wide round trip total: EncodeWide16 writes a lone surrogate
// as an ordinary three-byte sequence, and the decoders hand it back.
//
// # Round-Trip Laws
//
// The codecs guarantee:
//
//	DecodeWide16(EncodeWide16(u)) == u   for every []uint16 u
//	DecodeWide32(b) after EncodeWide32(u) == u   for u within 0..MaxCodepoint
//	DecodeCodepoints(b) after EncodeCodepoints(c) == c   likewise
//
// The reverse direction (bytes to units to bytes) is intentionally not an
// identity: decoding normalizes non-minimal forms, and a three-byte high
// surrogate followed by a three-byte low surrogate re-encodes as one
// four-byte sequence.
//
// # Error Handling
//
// All failures wrap a sentinel from the errs package and carry the byte
// offset or unit index of the fault. A failed call returns no partial
// output. Crop and EncodeWide16 cannot fail.
package wtf8
