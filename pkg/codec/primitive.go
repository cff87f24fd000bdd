package codec

import "fmt"

// PrimitiveType classifies the scalar payload encodings of the wire
// format. The integer values are fixed by wire position and include
// two reserved slots (Invalid, Unused) that a valid stream never
// produces.
type PrimitiveType byte

const (
	PrimitiveTypeInvalid PrimitiveType = iota
	PrimitiveTypeBoolean
	PrimitiveTypeByte
	PrimitiveTypeChar
	PrimitiveTypeUnused
	PrimitiveTypeDecimal
	PrimitiveTypeDouble
	PrimitiveTypeInt16
	PrimitiveTypeInt32
	PrimitiveTypeInt64
	PrimitiveTypeSByte
	PrimitiveTypeSingle
	PrimitiveTypeTimeSpan
	PrimitiveTypeDateTime
	PrimitiveTypeUInt16
	PrimitiveTypeUInt32
	PrimitiveTypeUInt64
	PrimitiveTypeNull
	PrimitiveTypeString
)

var primitiveTypeNames = [...]string{
	"Invalid",
	"Boolean",
	"Byte",
	"Char",
	"Unused",
	"Decimal",
	"Double",
	"Int16",
	"Int32",
	"Int64",
	"SByte",
	"Single",
	"TimeSpan",
	"DateTime",
	"UInt16",
	"UInt32",
	"UInt64",
	"Null",
	"String",
}

func (t PrimitiveType) String() string {
	if int(t) < len(primitiveTypeNames) {
		return primitiveTypeNames[t]
	}
	return fmt.Sprintf("PrimitiveType(%d)", byte(t))
}

// ReadPrimitive reads one scalar value keyed by its primitive type tag
// and returns it as its natural Go type:
//
//	Boolean -> bool (true iff the byte equals 1)
//	Byte    -> byte
//	Char    -> rune (a single UTF-16 code unit)
//	Int16   -> int16     UInt16 -> uint16
//	Int32   -> int32     UInt32 -> uint32
//	Int64   -> int64
//	Single  -> float32   Double -> float64
//
// Every other tag fails with ErrUnsupportedPrimitive. That covers
// UInt64, Decimal, TimeSpan, DateTime, SByte and the String/Null
// pseudo-primitives, which record-level decoding handles through
// dedicated record kinds.
func (c *Cursor) ReadPrimitive(t PrimitiveType) (any, error) {
	switch t {
	case PrimitiveTypeBoolean:
		b, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		return b == 1, nil
	case PrimitiveTypeByte:
		b, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		return b, nil
	case PrimitiveTypeChar:
		u, err := c.ReadUint16()
		if err != nil {
			return nil, err
		}
		return rune(u), nil
	case PrimitiveTypeInt16:
		v, err := c.ReadInt16()
		if err != nil {
			return nil, err
		}
		return v, nil
	case PrimitiveTypeInt32:
		v, err := c.ReadInt32()
		if err != nil {
			return nil, err
		}
		return v, nil
	case PrimitiveTypeInt64:
		v, err := c.ReadInt64()
		if err != nil {
			return nil, err
		}
		return v, nil
	case PrimitiveTypeUInt16:
		v, err := c.ReadUint16()
		if err != nil {
			return nil, err
		}
		return v, nil
	case PrimitiveTypeUInt32:
		v, err := c.ReadUint32()
		if err != nil {
			return nil, err
		}
		return v, nil
	case PrimitiveTypeSingle:
		v, err := c.ReadFloat32()
		if err != nil {
			return nil, err
		}
		return v, nil
	case PrimitiveTypeDouble:
		v, err := c.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPrimitive, t)
	}
}

// Size returns the encoded size in bytes of a supported primitive
// type, or 0 for types ReadPrimitive rejects.
func (t PrimitiveType) Size() int {
	switch t {
	case PrimitiveTypeBoolean, PrimitiveTypeByte:
		return 1
	case PrimitiveTypeChar, PrimitiveTypeInt16, PrimitiveTypeUInt16:
		return 2
	case PrimitiveTypeInt32, PrimitiveTypeUInt32, PrimitiveTypeSingle:
		return 4
	case PrimitiveTypeInt64, PrimitiveTypeDouble:
		return 8
	default:
		return 0
	}
}
