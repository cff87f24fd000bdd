package records

import (
	"fmt"

	"github.com/netfossil/nrbf/pkg/codec"
)

// reader accumulates the linear record sequence and the object-id map
// while decoding one stream. Each decode call owns an independent
// reader; nothing is shared across concurrent decodes.
type reader struct {
	cursor  *codec.Cursor
	records []Record
	objects map[int32]Record
}

func newReader(data []byte) *reader {
	return &reader{
		cursor:  codec.NewCursor(data),
		objects: make(map[int32]Record),
	}
}

// readRecord decodes one record. It returns (nil, nil) both on a clean
// end of input and after a MessageEnd record; either way the decode
// loop stops, and MessageEnd itself is never retained. Composite
// records decode their nested children through this same method, so
// every record is appended to the sequence and indexed by its declared
// id the moment its own decode completes. Children therefore precede
// their enclosing record in the sequence.
func (d *reader) readRecord() (Record, error) {
	if d.cursor.Remaining() == 0 {
		return nil, nil
	}
	start := d.cursor.Pos()
	tag, err := d.cursor.ReadUint8()
	if err != nil {
		return nil, err
	}
	rt := RecordType(tag)

	rec, err := d.decodeBody(rt)
	if err != nil {
		return nil, &DecodeError{
			RecordType: rt,
			Start:      start,
			Offset:     d.cursor.Pos(),
			Err:        err,
		}
	}
	if rec != nil {
		d.records = append(d.records, rec)
		if id, ok := rec.objectID(); ok {
			d.objects[id] = rec
		}
	}
	return rec, nil
}

// decodeBody dispatches on the record type. The switch is exhaustive
// over all twenty tags: every tag is either decoded, rejected as
// unsupported, or out of range.
func (d *reader) decodeBody(rt RecordType) (Record, error) {
	switch rt {
	case RecordTypeSerializedStreamHeader:
		return d.decodeStreamHeader()

	case RecordTypeBinaryLibrary:
		libraryID, err := d.cursor.ReadInt32()
		if err != nil {
			return nil, err
		}
		libraryName, err := d.cursor.ReadString()
		if err != nil {
			return nil, err
		}
		return &BinaryLibrary{LibraryID: libraryID, LibraryName: libraryName}, nil

	case RecordTypeSystemClassWithMembersAndTypes, RecordTypeClassWithMembersAndTypes:
		return d.decodeClass(rt)

	case RecordTypeMemberReference:
		idRef, err := d.cursor.ReadInt32()
		if err != nil {
			return nil, err
		}
		return &MemberReference{IDRef: idRef}, nil

	case RecordTypeBinaryObjectString:
		objectID, err := d.cursor.ReadInt32()
		if err != nil {
			return nil, err
		}
		value, err := d.cursor.ReadString()
		if err != nil {
			return nil, err
		}
		return &BinaryObjectString{ObjectID: objectID, Value: value}, nil

	case RecordTypeArraySinglePrimitive:
		return d.decodeArraySinglePrimitive()

	case RecordTypeArraySingleObject:
		return d.decodeArraySingleObject()

	case RecordTypeArraySingleString:
		return d.decodeArraySingleString()

	case RecordTypeMemberPrimitiveTyped:
		tag, err := d.cursor.ReadUint8()
		if err != nil {
			return nil, err
		}
		pt := codec.PrimitiveType(tag)
		value, err := d.cursor.ReadPrimitive(pt)
		if err != nil {
			return nil, err
		}
		return &MemberPrimitiveTyped{PrimitiveType: pt, Value: value}, nil

	case RecordTypeObjectNull:
		return &ObjectNull{recordType: rt, Count: 1}, nil

	case RecordTypeObjectNullMultiple256:
		count, err := d.cursor.ReadUint8()
		if err != nil {
			return nil, err
		}
		return &ObjectNull{recordType: rt, Count: int32(count)}, nil

	case RecordTypeObjectNullMultiple:
		count, err := d.cursor.ReadInt32()
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, fmt.Errorf("negative null count %d", count)
		}
		return &ObjectNull{recordType: rt, Count: count}, nil

	case RecordTypeMessageEnd:
		// Terminates decoding; the record itself is discarded.
		return nil, nil

	case RecordTypeClassWithID, RecordTypeSystemClassWithMembers,
		RecordTypeClassWithMembers, RecordTypeBinaryArray,
		RecordTypeMethodCall, RecordTypeMethodReturn:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRecord, rt)

	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownRecordType, byte(rt))
	}
}

func (d *reader) decodeStreamHeader() (Record, error) {
	var header StreamHeader
	for _, field := range []*int32{
		&header.RootID, &header.HeaderID, &header.MajorVersion, &header.MinorVersion,
	} {
		v, err := d.cursor.ReadInt32()
		if err != nil {
			return nil, err
		}
		*field = v
	}
	return &header, nil
}

// Graph is the result of one complete decode: the record sequence in
// stream order plus the object-id map. The sequence transitively owns
// the whole graph; cycles are expressed through id-map lookups rather
// than exclusive parent-child ownership.
type Graph struct {
	Records []Record
	Objects map[int32]Record

	header *StreamHeader
}

// Root returns the record the stream header's RootID names, the entry
// point into the decoded graph.
func (g *Graph) Root() (Record, bool) {
	if g.header == nil {
		return nil, false
	}
	rec, ok := g.Objects[g.header.RootID]
	return rec, ok
}

// Lookup returns the record registered under the given object id.
func (g *Graph) Lookup(id int32) (Record, bool) {
	rec, ok := g.Objects[id]
	return rec, ok
}

// Unresolved returns every reference left dangling after all three
// passes. A non-empty result means the byte stream decoded cleanly but
// its semantic graph is incomplete; callers decide how severe that is.
func (g *Graph) Unresolved() []*MemberReference {
	var out []*MemberReference
	for _, rec := range g.Records {
		if ref, ok := rec.(*MemberReference); ok && ref.State() == ResolutionDangling {
			out = append(out, ref)
		}
	}
	return out
}

// Decode decodes a complete stream and resolves its object graph.
// Decoding is all-or-nothing: the caller sees either a fully-resolved
// graph or one precisely located failure. The input buffer must stay
// unmodified for the duration of the call.
func Decode(data []byte) (*StreamHeader, *Graph, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrMissingHeader)
	}
	if RecordType(data[0]) != RecordTypeSerializedStreamHeader {
		return nil, nil, fmt.Errorf("%w: first record is %s", ErrMissingHeader, RecordType(data[0]))
	}

	d := newReader(data)
	rec, err := d.readRecord()
	if err != nil {
		return nil, nil, err
	}
	header := rec.(*StreamHeader)

	for rec != nil {
		if rec, err = d.readRecord(); err != nil {
			return nil, nil, err
		}
	}

	if err := runPasses(d.records, d.objects); err != nil {
		return nil, nil, err
	}
	return header, &Graph{Records: d.records, Objects: d.objects, header: header}, nil
}
