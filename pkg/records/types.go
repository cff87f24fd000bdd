package records

import "fmt"

// RecordType identifies the kind of one serialized record. The tag
// byte on the wire is the ordinal, so the constant order below is
// fixed by the format and must never be reordered.
type RecordType byte

const (
	RecordTypeSerializedStreamHeader RecordType = iota
	RecordTypeClassWithID
	RecordTypeSystemClassWithMembers
	RecordTypeClassWithMembers
	RecordTypeSystemClassWithMembersAndTypes
	RecordTypeClassWithMembersAndTypes
	RecordTypeBinaryObjectString
	RecordTypeBinaryArray
	RecordTypeMemberPrimitiveTyped
	RecordTypeMemberReference
	RecordTypeObjectNull
	RecordTypeMessageEnd
	RecordTypeBinaryLibrary
	RecordTypeObjectNullMultiple256
	RecordTypeObjectNullMultiple
	RecordTypeArraySinglePrimitive
	RecordTypeArraySingleObject
	RecordTypeArraySingleString
	RecordTypeMethodCall
	RecordTypeMethodReturn

	numRecordTypes = iota
)

var recordTypeNames = [numRecordTypes]string{
	"SerializedStreamHeader",
	"ClassWithId",
	"SystemClassWithMembers",
	"ClassWithMembers",
	"SystemClassWithMembersAndTypes",
	"ClassWithMembersAndTypes",
	"BinaryObjectString",
	"BinaryArray",
	"MemberPrimitiveTyped",
	"MemberReference",
	"ObjectNull",
	"MessageEnd",
	"BinaryLibrary",
	"ObjectNullMultiple256",
	"ObjectNullMultiple",
	"ArraySinglePrimitive",
	"ArraySingleObject",
	"ArraySingleString",
	"MethodCall",
	"MethodReturn",
}

func (t RecordType) String() string {
	if int(t) < numRecordTypes {
		return recordTypeNames[t]
	}
	return fmt.Sprintf("RecordType(%d)", byte(t))
}

func (t RecordType) valid() bool {
	return int(t) < numRecordTypes
}

// BinaryType classifies a class member's declared type. Like
// RecordType, the values are fixed by wire position.
type BinaryType byte

const (
	BinaryTypePrimitive BinaryType = iota
	BinaryTypeString
	BinaryTypeObject
	BinaryTypeSystemClass
	BinaryTypeClass
	BinaryTypeObjectArray
	BinaryTypeStringArray
	BinaryTypePrimitiveArray

	numBinaryTypes = iota
)

var binaryTypeNames = [numBinaryTypes]string{
	"Primitive",
	"String",
	"Object",
	"SystemClass",
	"Class",
	"ObjectArray",
	"StringArray",
	"PrimitiveArray",
}

func (t BinaryType) String() string {
	if int(t) < numBinaryTypes {
		return binaryTypeNames[t]
	}
	return fmt.Sprintf("BinaryType(%d)", byte(t))
}

func (t BinaryType) valid() bool {
	return int(t) < numBinaryTypes
}
