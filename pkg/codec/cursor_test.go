package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestCursor_FixedWidthReads(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = append(buf, 0x2A)                                                  // u8
	buf = binary.LittleEndian.AppendUint16(buf, uint16(0x8000))              // i16 = -32768
	buf = binary.LittleEndian.AppendUint32(buf, uint32(0xDEADBEEF))          // i32
	buf = binary.LittleEndian.AppendUint64(buf, uint64(0x0123456789ABCDEF)) // i64
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(1.5))       // f32
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(-2.25))     // f64

	c := NewCursor(buf)

	u8, err := c.ReadUint8()
	if err != nil || u8 != 0x2A {
		t.Fatalf("ReadUint8 = %v, %v; want 0x2A", u8, err)
	}
	i16, err := c.ReadInt16()
	if err != nil || i16 != -32768 {
		t.Fatalf("ReadInt16 = %v, %v; want -32768", i16, err)
	}
	i32, err := c.ReadInt32()
	if err != nil || i32 != int32(-559038737) {
		t.Fatalf("ReadInt32 = %v, %v; want -559038737", i32, err)
	}
	i64, err := c.ReadInt64()
	if err != nil || i64 != int64(0x0123456789ABCDEF) {
		t.Fatalf("ReadInt64 = %v, %v", i64, err)
	}
	f32, err := c.ReadFloat32()
	if err != nil || f32 != 1.5 {
		t.Fatalf("ReadFloat32 = %v, %v; want 1.5", f32, err)
	}
	f64, err := c.ReadFloat64()
	if err != nil || f64 != -2.25 {
		t.Fatalf("ReadFloat64 = %v, %v; want -2.25", f64, err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("Remaining = %d after reading everything", c.Remaining())
	}
}

func TestCursor_OutOfData(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})

	if _, err := c.ReadInt32(); !errors.Is(err, ErrOutOfData) {
		t.Fatalf("ReadInt32 on 2 bytes: err = %v, want ErrOutOfData", err)
	}
	// A failed read must not advance the position.
	if c.Pos() != 0 {
		t.Fatalf("Pos = %d after failed read, want 0", c.Pos())
	}
	if _, err := c.ReadUint16(); err != nil {
		t.Fatalf("ReadUint16 after failed read: %v", err)
	}
	if _, err := c.ReadUint8(); !errors.Is(err, ErrOutOfData) {
		t.Fatalf("ReadUint8 at end: err = %v, want ErrOutOfData", err)
	}
}

func TestCursor_ReadString(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty string",
			input: []byte{0x00},
			want:  "",
		},
		{
			name:  "short ascii",
			input: append([]byte{0x02}, 'h', 'i'),
			want:  "hi",
		},
		{
			name:  "exactly 128 bytes forces two length bytes",
			input: append([]byte{0x80, 0x01}, bytes.Repeat([]byte{'x'}, 128)...),
			want:  string(bytes.Repeat([]byte{'x'}, 128)),
		},
		{
			name:  "non-utf8 bytes preserved",
			input: []byte{0x03, 0xFF, 0xFE, 0x41},
			want:  string([]byte{0xFF, 0xFE, 0x41}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor(tc.input)
			got, err := c.ReadString()
			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("ReadString = %q, want %q", got, tc.want)
			}
			if c.Remaining() != 0 {
				t.Errorf("Remaining = %d, want 0", c.Remaining())
			}
		})
	}
}

func TestCursor_ReadLengthBoundaries(t *testing.T) {
	t.Run("single zero byte is length 0", func(t *testing.T) {
		c := NewCursor([]byte{0x00})
		n, err := c.readLength()
		if err != nil || n != 0 {
			t.Fatalf("readLength = %d, %v; want 0", n, err)
		}
	})

	t.Run("0x80 0x01 is length 128", func(t *testing.T) {
		c := NewCursor([]byte{0x80, 0x01})
		n, err := c.readLength()
		if err != nil || n != 128 {
			t.Fatalf("readLength = %d, %v; want 128", n, err)
		}
	})

	t.Run("largest positive length decodes", func(t *testing.T) {
		// 0x7FFFFFFF: seven low bits per byte, little-end first.
		c := NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07})
		n, err := c.readLength()
		if err != nil || n != 0x7FFFFFFF {
			t.Fatalf("readLength = %#x, %v; want 0x7FFFFFFF", n, err)
		}
	})

	t.Run("five continuation bytes rejected", func(t *testing.T) {
		c := NewCursor([]byte{0x80, 0x80, 0x80, 0x80, 0x80})
		if _, err := c.readLength(); !errors.Is(err, ErrInvalidLengthEncoding) {
			t.Fatalf("err = %v, want ErrInvalidLengthEncoding", err)
		}
	})

	t.Run("negative as signed 32-bit rejected", func(t *testing.T) {
		// Accumulates to 0xFFFFFFFF, whose sign bit is set.
		c := NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F})
		if _, err := c.readLength(); !errors.Is(err, ErrInvalidLengthEncoding) {
			t.Fatalf("err = %v, want ErrInvalidLengthEncoding", err)
		}
	})

	t.Run("truncated length field is out of data", func(t *testing.T) {
		c := NewCursor([]byte{0x80})
		if _, err := c.readLength(); !errors.Is(err, ErrOutOfData) {
			t.Fatalf("err = %v, want ErrOutOfData", err)
		}
	})
}

func TestCursor_ReadPrimitiveRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		typ   PrimitiveType
		input []byte
		want  any
	}{
		{"boolean true", PrimitiveTypeBoolean, []byte{0x01}, true},
		{"boolean false", PrimitiveTypeBoolean, []byte{0x00}, false},
		{"boolean true only when exactly 1", PrimitiveTypeBoolean, []byte{0x02}, false},
		{"byte", PrimitiveTypeByte, []byte{0xAB}, byte(0xAB)},
		{"char utf16 code unit", PrimitiveTypeChar, []byte{0x3A, 0x26}, rune(0x263A)},
		{"int16 min", PrimitiveTypeInt16, []byte{0x00, 0x80}, int16(-32768)},
		{"int32 negative", PrimitiveTypeInt32, []byte{0xFF, 0xFF, 0xFF, 0xFF}, int32(-1)},
		{"int64", PrimitiveTypeInt64, []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, int64(-9223372036854775807)},
		{"uint16 max", PrimitiveTypeUInt16, []byte{0xFF, 0xFF}, uint16(0xFFFF)},
		{"uint32 max stays unsigned", PrimitiveTypeUInt32, []byte{0xFF, 0xFF, 0xFF, 0xFF}, uint32(4294967295)},
		{"single", PrimitiveTypeSingle, binary.LittleEndian.AppendUint32(nil, math.Float32bits(3.25)), float32(3.25)},
		{"double", PrimitiveTypeDouble, binary.LittleEndian.AppendUint64(nil, math.Float64bits(-0.5)), float64(-0.5)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor(tc.input)
			got, err := c.ReadPrimitive(tc.typ)
			if err != nil {
				t.Fatalf("ReadPrimitive(%s) failed: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Errorf("ReadPrimitive(%s) = %v (%T), want %v (%T)", tc.typ, got, got, tc.want, tc.want)
			}
		})
	}
}

func TestCursor_ReadPrimitiveUnsupported(t *testing.T) {
	unsupported := []PrimitiveType{
		PrimitiveTypeInvalid,
		PrimitiveTypeUnused,
		PrimitiveTypeDecimal,
		PrimitiveTypeSByte,
		PrimitiveTypeTimeSpan,
		PrimitiveTypeDateTime,
		PrimitiveTypeUInt64,
		PrimitiveTypeNull,
		PrimitiveTypeString,
	}
	for _, pt := range unsupported {
		c := NewCursor(bytes.Repeat([]byte{0x00}, 16))
		if _, err := c.ReadPrimitive(pt); !errors.Is(err, ErrUnsupportedPrimitive) {
			t.Errorf("ReadPrimitive(%s): err = %v, want ErrUnsupportedPrimitive", pt, err)
		}
	}
}

func TestPrimitiveType_Size(t *testing.T) {
	sizes := map[PrimitiveType]int{
		PrimitiveTypeBoolean: 1,
		PrimitiveTypeByte:    1,
		PrimitiveTypeChar:    2,
		PrimitiveTypeInt16:   2,
		PrimitiveTypeUInt16:  2,
		PrimitiveTypeInt32:   4,
		PrimitiveTypeUInt32:  4,
		PrimitiveTypeSingle:  4,
		PrimitiveTypeInt64:   8,
		PrimitiveTypeDouble:  8,
		PrimitiveTypeDecimal: 0,
		PrimitiveTypeInvalid: 0,
	}
	for pt, want := range sizes {
		if got := pt.Size(); got != want {
			t.Errorf("%s.Size() = %d, want %d", pt, got, want)
		}
	}
}
