package records

import (
	"fmt"

	"github.com/netfossil/nrbf/pkg/codec"
)

// MemberType is one member's declared type: a BinaryType tag plus the
// sub-type qualifier some tags carry on the wire.
type MemberType struct {
	Binary BinaryType

	// Primitive is set for Primitive and PrimitiveArray members.
	Primitive codec.PrimitiveType

	// ClassName is set for SystemClass and Class members; LibraryID
	// only for Class members.
	ClassName string
	LibraryID int32
}

// ClassRecord is an object declaration: class metadata followed inline
// by one value per declared member. It covers both the
// ClassWithMembersAndTypes and SystemClassWithMembersAndTypes wire
// forms; the System form carries no library reference (the library is
// implicitly the runtime's own).
type ClassRecord struct {
	recordType RecordType

	ObjectID    int32
	ClassName   string
	MemberNames []string
	MemberTypes []MemberType
	LibraryID   int32 // zero for the System form

	// values holds the flat member slots in declaration order. Each
	// slot is a raw primitive value, a Record, or nil for a null slot.
	values []any

	// Fields maps member names to their slots; bound by the process
	// pass. Reference slots keep the MemberReference record itself so
	// the reference's own resolution state stays visible.
	Fields map[string]any
}

func (r *ClassRecord) RecordType() RecordType { return r.recordType }

func (r *ClassRecord) objectID() (int32, bool) { return r.ObjectID, true }

// Values returns the flat member slots in declaration order.
func (r *ClassRecord) Values() []any { return r.values }

// Field returns the named member slot with references and null
// records followed.
func (r *ClassRecord) Field(name string) (any, bool) {
	v, ok := r.Fields[name]
	if !ok {
		return nil, false
	}
	return Dereference(v), true
}

func (r *ClassRecord) preProcess(objects map[int32]Record) error {
	objects[r.ObjectID] = r
	return nil
}

// process binds the flat member-value list to the member names the
// class metadata declares.
func (r *ClassRecord) process(map[int32]Record) error {
	if len(r.values) != len(r.MemberNames) {
		return fmt.Errorf("class %q declares %d members but decoded %d values",
			r.ClassName, len(r.MemberNames), len(r.values))
	}
	r.Fields = make(map[string]any, len(r.MemberNames))
	for i, name := range r.MemberNames {
		r.Fields[name] = r.values[i]
	}
	return nil
}

func (r *ClassRecord) postProcess(map[int32]Record) error { return nil }

// decodeClass decodes the shared layout of the two class-with-types
// record kinds: object id, class name, member count, member names,
// member type tags, sub-type qualifiers, an optional library id, then
// the inline member values.
func (d *reader) decodeClass(rt RecordType) (Record, error) {
	objectID, err := d.cursor.ReadInt32()
	if err != nil {
		return nil, err
	}
	className, err := d.cursor.ReadString()
	if err != nil {
		return nil, err
	}
	memberCount, err := d.cursor.ReadInt32()
	if err != nil {
		return nil, err
	}
	if memberCount < 0 {
		return nil, fmt.Errorf("class %q declares negative member count %d", className, memberCount)
	}

	names := make([]string, memberCount)
	for i := range names {
		if names[i], err = d.cursor.ReadString(); err != nil {
			return nil, err
		}
	}

	types := make([]MemberType, memberCount)
	for i := range types {
		tag, err := d.cursor.ReadUint8()
		if err != nil {
			return nil, err
		}
		bt := BinaryType(tag)
		if !bt.valid() {
			return nil, fmt.Errorf("member %q has invalid binary type tag %d", names[i], tag)
		}
		types[i].Binary = bt
	}

	// The qualifier list follows the complete tag list, one entry per
	// member whose tag needs one.
	for i := range types {
		switch types[i].Binary {
		case BinaryTypePrimitive, BinaryTypePrimitiveArray:
			tag, err := d.cursor.ReadUint8()
			if err != nil {
				return nil, err
			}
			types[i].Primitive = codec.PrimitiveType(tag)
		case BinaryTypeSystemClass:
			if types[i].ClassName, err = d.cursor.ReadString(); err != nil {
				return nil, err
			}
		case BinaryTypeClass:
			if types[i].ClassName, err = d.cursor.ReadString(); err != nil {
				return nil, err
			}
			if types[i].LibraryID, err = d.cursor.ReadInt32(); err != nil {
				return nil, err
			}
		}
	}

	rec := &ClassRecord{
		recordType:  rt,
		ObjectID:    objectID,
		ClassName:   className,
		MemberNames: names,
		MemberTypes: types,
	}
	if rt == RecordTypeClassWithMembersAndTypes {
		if rec.LibraryID, err = d.cursor.ReadInt32(); err != nil {
			return nil, err
		}
	}

	if rec.values, err = d.readMemberValues(types); err != nil {
		return nil, err
	}
	return rec, nil
}

// readMemberValues fills one slot per declared member. Primitive
// members are packed raw values; every other member is a nested
// record, with ObjectNull runs expanding to that many nil slots.
func (d *reader) readMemberValues(types []MemberType) ([]any, error) {
	values := make([]any, 0, len(types))
	for len(values) < len(types) {
		mt := types[len(values)]
		if mt.Binary == BinaryTypePrimitive {
			v, err := d.cursor.ReadPrimitive(mt.Primitive)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
			continue
		}

		rec, err := d.readRecord()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("stream ended with %d of %d member values decoded",
				len(values), len(types))
		}
		if null, ok := rec.(*ObjectNull); ok {
			if len(values)+int(null.Count) > len(types) {
				return nil, fmt.Errorf("null run of %d exceeds the %d remaining member slots",
					null.Count, len(types)-len(values))
			}
			for i := int32(0); i < null.Count; i++ {
				values = append(values, nil)
			}
			continue
		}
		values = append(values, rec)
	}
	return values, nil
}
