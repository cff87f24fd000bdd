package records

import (
	"fmt"

	"github.com/netfossil/nrbf/pkg/codec"
)

// ArraySinglePrimitive is a single-dimension array of one primitive
// type. Its values are packed raw on the wire, with no per-element
// record framing.
type ArraySinglePrimitive struct {
	noResolveAfterRegister

	ObjectID      int32
	Length        int32
	PrimitiveType codec.PrimitiveType
	Values        []any
}

func (*ArraySinglePrimitive) RecordType() RecordType { return RecordTypeArraySinglePrimitive }

func (r *ArraySinglePrimitive) objectID() (int32, bool) { return r.ObjectID, true }

func (r *ArraySinglePrimitive) preProcess(objects map[int32]Record) error {
	objects[r.ObjectID] = r
	return nil
}

// ArraySingleObject is a single-dimension array of arbitrary objects.
// Each item is a nested Record or nil for a null slot.
type ArraySingleObject struct {
	noResolveAfterRegister

	ObjectID int32
	Length   int32
	Items    []any
}

func (*ArraySingleObject) RecordType() RecordType { return RecordTypeArraySingleObject }

func (r *ArraySingleObject) objectID() (int32, bool) { return r.ObjectID, true }

func (r *ArraySingleObject) preProcess(objects map[int32]Record) error {
	objects[r.ObjectID] = r
	return nil
}

// Item returns element i with references and null records followed.
func (r *ArraySingleObject) Item(i int) any {
	return Dereference(r.Items[i])
}

// ArraySingleString is a single-dimension array of strings. Each item
// is a BinaryObjectString, a MemberReference to one, or nil.
type ArraySingleString struct {
	noResolveAfterRegister

	ObjectID int32
	Length   int32
	Items    []any
}

func (*ArraySingleString) RecordType() RecordType { return RecordTypeArraySingleString }

func (r *ArraySingleString) objectID() (int32, bool) { return r.ObjectID, true }

func (r *ArraySingleString) preProcess(objects map[int32]Record) error {
	objects[r.ObjectID] = r
	return nil
}

// Item returns element i with references and null records followed.
func (r *ArraySingleString) Item(i int) any {
	return Dereference(r.Items[i])
}

// noResolveAfterRegister supplies the two trailing no-op hooks for
// record kinds whose only resolution work is id registration in
// pre-process.
type noResolveAfterRegister struct{}

func (noResolveAfterRegister) process(map[int32]Record) error     { return nil }
func (noResolveAfterRegister) postProcess(map[int32]Record) error { return nil }

func (d *reader) decodeArraySinglePrimitive() (Record, error) {
	objectID, err := d.cursor.ReadInt32()
	if err != nil {
		return nil, err
	}
	length, err := d.cursor.ReadInt32()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("array %d declares negative length %d", objectID, length)
	}
	tag, err := d.cursor.ReadUint8()
	if err != nil {
		return nil, err
	}
	pt := codec.PrimitiveType(tag)

	values := make([]any, length)
	for i := range values {
		if values[i], err = d.cursor.ReadPrimitive(pt); err != nil {
			return nil, err
		}
	}
	return &ArraySinglePrimitive{
		ObjectID:      objectID,
		Length:        length,
		PrimitiveType: pt,
		Values:        values,
	}, nil
}

func (d *reader) decodeArraySingleObject() (Record, error) {
	objectID, length, err := d.readArrayHeader()
	if err != nil {
		return nil, err
	}
	items, err := d.readArrayItems(length)
	if err != nil {
		return nil, err
	}
	return &ArraySingleObject{ObjectID: objectID, Length: length, Items: items}, nil
}

func (d *reader) decodeArraySingleString() (Record, error) {
	objectID, length, err := d.readArrayHeader()
	if err != nil {
		return nil, err
	}
	items, err := d.readArrayItems(length)
	if err != nil {
		return nil, err
	}
	return &ArraySingleString{ObjectID: objectID, Length: length, Items: items}, nil
}

func (d *reader) readArrayHeader() (objectID, length int32, err error) {
	if objectID, err = d.cursor.ReadInt32(); err != nil {
		return 0, 0, err
	}
	if length, err = d.cursor.ReadInt32(); err != nil {
		return 0, 0, err
	}
	if length < 0 {
		return 0, 0, fmt.Errorf("array %d declares negative length %d", objectID, length)
	}
	return objectID, length, nil
}

// readArrayItems decodes length element slots, expanding ObjectNull
// runs to that many nil slots.
func (d *reader) readArrayItems(length int32) ([]any, error) {
	items := make([]any, 0, length)
	for int32(len(items)) < length {
		rec, err := d.readRecord()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("stream ended with %d of %d array elements decoded",
				len(items), length)
		}
		if null, ok := rec.(*ObjectNull); ok {
			if int32(len(items))+null.Count > length {
				return nil, fmt.Errorf("null run of %d exceeds the %d remaining array slots",
					null.Count, length-int32(len(items)))
			}
			for i := int32(0); i < null.Count; i++ {
				items = append(items, nil)
			}
			continue
		}
		items = append(items, rec)
	}
	return items, nil
}
