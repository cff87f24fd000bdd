package records

import (
	"fmt"

	"github.com/netfossil/nrbf/pkg/codec"
)

// Record is one self-describing unit decoded from the byte stream.
// Every record carries three resolution hooks, invoked by the three
// passes over the decoded sequence; each hook has read access to the
// shared id-to-record map and mutates only its own resolved state.
//
// The interface has unexported methods on purpose: the set of record
// kinds is closed by the wire format.
type Record interface {
	RecordType() RecordType

	// objectID returns the record's declared object id, if it owns one.
	objectID() (int32, bool)

	preProcess(objects map[int32]Record) error
	process(objects map[int32]Record) error
	postProcess(objects map[int32]Record) error
}

// noObjectID is embedded by record kinds that are never addressable.
type noObjectID struct{}

func (noObjectID) objectID() (int32, bool) { return 0, false }

// noResolve is embedded by record kinds with nothing to resolve.
type noResolve struct{}

func (noResolve) preProcess(map[int32]Record) error  { return nil }
func (noResolve) process(map[int32]Record) error     { return nil }
func (noResolve) postProcess(map[int32]Record) error { return nil }

// StreamHeader is the mandatory first record of every valid stream.
// RootID names the graph root; resolve it against the id map once
// decoding completes.
type StreamHeader struct {
	noObjectID
	noResolve

	RootID       int32
	HeaderID     int32
	MajorVersion int32
	MinorVersion int32
}

func (*StreamHeader) RecordType() RecordType { return RecordTypeSerializedStreamHeader }

// BinaryLibrary declares an assembly identifier reusable by id. It
// shares the object-id space with ordinary objects.
type BinaryLibrary struct {
	LibraryID   int32
	LibraryName string
}

func (*BinaryLibrary) RecordType() RecordType { return RecordTypeBinaryLibrary }

func (r *BinaryLibrary) objectID() (int32, bool) { return r.LibraryID, true }

func (r *BinaryLibrary) preProcess(objects map[int32]Record) error {
	objects[r.LibraryID] = r
	return nil
}

func (r *BinaryLibrary) process(map[int32]Record) error     { return nil }
func (r *BinaryLibrary) postProcess(map[int32]Record) error { return nil }

// BinaryObjectString is a string promoted to a first-class addressable
// object.
type BinaryObjectString struct {
	ObjectID int32
	Value    string
}

func (*BinaryObjectString) RecordType() RecordType { return RecordTypeBinaryObjectString }

func (r *BinaryObjectString) objectID() (int32, bool) { return r.ObjectID, true }

func (r *BinaryObjectString) preProcess(objects map[int32]Record) error {
	objects[r.ObjectID] = r
	return nil
}

func (r *BinaryObjectString) process(map[int32]Record) error     { return nil }
func (r *BinaryObjectString) postProcess(map[int32]Record) error { return nil }

// ResolutionState tracks a reference through the resolution passes.
type ResolutionState uint8

const (
	// ResolutionPending means the target id has not been looked up
	// yet, or was missing when the process pass ran.
	ResolutionPending ResolutionState = iota

	// ResolutionResolved means the target record has been found.
	ResolutionResolved

	// ResolutionDangling means the target id never appeared anywhere
	// in the stream. The reference stays in the graph as data; a
	// dangling reference is not a decode failure.
	ResolutionDangling
)

func (s ResolutionState) String() string {
	switch s {
	case ResolutionPending:
		return "pending"
	case ResolutionResolved:
		return "resolved"
	case ResolutionDangling:
		return "dangling"
	}
	return fmt.Sprintf("ResolutionState(%d)", uint8(s))
}

// MemberReference is a forward or backward pointer to another record's
// declared object id. It never owns its target. Resolution may need
// the post-process pass: the target's declaration can sit after the
// reference in byte order.
type MemberReference struct {
	noObjectID

	IDRef int32

	state  ResolutionState
	target Record
}

func (*MemberReference) RecordType() RecordType { return RecordTypeMemberReference }

// State reports where the reference is in the resolution state
// machine.
func (r *MemberReference) State() ResolutionState { return r.state }

// Target returns the referenced record once resolution has found it.
func (r *MemberReference) Target() (Record, bool) {
	return r.target, r.state == ResolutionResolved
}

func (r *MemberReference) preProcess(map[int32]Record) error { return nil }

func (r *MemberReference) process(objects map[int32]Record) error {
	r.resolve(objects)
	return nil
}

// postProcess marks the reference permanently dangling if its target
// id still has not appeared.
func (r *MemberReference) postProcess(objects map[int32]Record) error {
	r.resolve(objects)
	if r.state == ResolutionPending {
		r.state = ResolutionDangling
	}
	return nil
}

func (r *MemberReference) resolve(objects map[int32]Record) {
	if r.state != ResolutionPending {
		return
	}
	if target, ok := objects[r.IDRef]; ok {
		r.target = target
		r.state = ResolutionResolved
	}
}

// MemberPrimitiveTyped is an inline scalar. It is never addressable.
type MemberPrimitiveTyped struct {
	noObjectID
	noResolve

	PrimitiveType codec.PrimitiveType
	Value         any
}

func (*MemberPrimitiveTyped) RecordType() RecordType { return RecordTypeMemberPrimitiveTyped }

// ObjectNull represents Count consecutive null member slots. One Go
// type covers all three wire encodings (implicit count of one, one
// byte, four bytes); recordType preserves which form appeared.
type ObjectNull struct {
	noObjectID
	noResolve

	recordType RecordType
	Count      int32
}

func (r *ObjectNull) RecordType() RecordType { return r.recordType }

// Dereference follows v to the value a member slot logically holds:
// references yield their resolved target (nil while dangling or
// pending), null records yield nil, and everything else passes through
// unchanged.
func Dereference(v any) any {
	switch r := v.(type) {
	case *MemberReference:
		if target, ok := r.Target(); ok {
			return target
		}
		return nil
	case *ObjectNull:
		return nil
	default:
		return v
	}
}
