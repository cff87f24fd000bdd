package records

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader indicates the stream does not begin with a
	// SerializedStreamHeader record.
	ErrMissingHeader = errors.New("stream does not begin with a SerializedStreamHeader record")

	// ErrUnknownRecordType indicates a tag byte outside the record
	// type range.
	ErrUnknownRecordType = errors.New("unknown record type")

	// ErrUnsupportedRecord indicates a known record type the decoder
	// does not handle.
	ErrUnsupportedRecord = errors.New("unsupported record type")
)

// DecodeError wraps any failure raised while decoding a single record.
// Start is the offset of the record's tag byte and Offset the cursor
// position when decoding failed; both are mandatory for diagnosing a
// stream, since one misread byte desynchronizes everything after it.
type DecodeError struct {
	RecordType RecordType
	Start      int
	Offset     int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s record at offset 0x%08x (failed around 0x%08x): %v",
		e.RecordType, e.Start, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ResolveError reports a resolution hook failure. It aborts the whole
// decode; partial graphs are never returned.
type ResolveError struct {
	Pass       string
	RecordType RecordType
	ObjectID   int32
	Err        error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s pass failed on %s record (object id %d): %v",
		e.Pass, e.RecordType, e.ObjectID, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
