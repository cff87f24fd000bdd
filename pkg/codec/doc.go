// Package codec provides the byte-level primitives for decoding
// binary-formatter save streams.
//
// The package wraps a fully-buffered, immutable byte sequence in a
// Cursor that tracks a single read position. Everything in the wire
// format is little-endian, and every read either advances the cursor
// or fails with ErrOutOfData carrying the offending offset. A single
// misread byte desynchronizes every subsequent offset in the stream,
// so positions matter in every error.
//
// # String lengths
//
// String lengths use a compact 7-bits-per-byte encoding: each byte
// contributes its low seven bits, shifted left by 7 times its index,
// and the high bit marks continuation. The encoding is little-end
// first, not zig-zag, and not sign-extended. Two conditions are
// rejected with ErrInvalidLengthEncoding:
//
//   - the continuation bit is still set after five bytes (the next
//     shift would reach or exceed 32)
//   - the accumulated value is negative when interpreted as a signed
//     32-bit integer
//
// Both indicate a malformed or adversarial length field.
//
// # Primitive values
//
// ReadPrimitive dispatches on a PrimitiveType tag to the matching
// fixed-width read. The tag set mirrors the wire format's eighteen
// slots, including reserved Invalid/Unused slots and pseudo-primitives
// (String, Null) that are only legal at the record layer; the codec
// rejects all of those with ErrUnsupportedPrimitive rather than
// guessing a width.
//
// # Thread safety
//
// A Cursor owns no shared state; distinct cursors over distinct
// buffers may be used concurrently. A single Cursor must not be shared
// between goroutines.
package codec
