// Package records decodes binary-formatter object-graph streams into
// an in-memory record graph.
//
// A stream is a linear sequence of self-describing records, each
// introduced by a one-byte type tag. Records may reference objects by
// a 32-bit id declared anywhere in the stream, including after the
// reference itself, so construction cannot finish in a single pass.
// Decoding therefore runs in two stages:
//
//  1. A recursive-descent pass over the bytes turns every record into
//     a typed variant, appends it to the sequence, and indexes it by
//     its declared object id. Composite records (classes, arrays)
//     decode their member values inline through the same routine.
//  2. Three full traversals of the accumulated sequence, in stream
//     order, invoke one resolution hook per record: pre-process
//     (register ids), process (resolve direct state, tolerating
//     still-missing targets), and post-process (final fix-up; whatever
//     is still unresolved becomes permanently dangling).
//
// The result is a Graph: the record sequence, the id map, and the
// StreamHeader whose RootID names the entry point. Dangling references
// are data, not errors; Graph.Unresolved lists them and each
// MemberReference exposes its ResolutionState.
//
// # Failure model
//
// Any malformed wire content is fatal and precisely located: decode
// failures are wrapped in DecodeError with the record type, the offset
// of the record's first byte, and the offset where decoding stopped.
// There is no recovery; once one record misreads, every later offset
// is garbage. Hook failures during resolution abort the decode with a
// ResolveError. Only dangling references survive as non-fatal state.
//
// # Concurrency
//
// Decode is a pure, synchronous pass over an in-memory buffer. Each
// call owns its own sequence and id map; concurrent decodes over
// distinct buffers are safe.
package records
