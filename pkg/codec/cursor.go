package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfData indicates a read past the end of the input buffer.
	ErrOutOfData = errors.New("read past end of buffer")

	// ErrInvalidLengthEncoding indicates a malformed variable-length
	// string length field.
	ErrInvalidLengthEncoding = errors.New("invalid string length field")

	// ErrUnsupportedPrimitive indicates a primitive type tag the codec
	// cannot decode.
	ErrUnsupportedPrimitive = errors.New("unsupported primitive type")
)

// Cursor wraps an immutable byte buffer with a mutable read position.
// All reads are little-endian, advance the position, and fail with
// ErrOutOfData if insufficient bytes remain. The buffer must not be
// mutated for the lifetime of the cursor.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// take returns the next n bytes and advances the position.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrOutOfData, n, c.pos, len(c.data)-c.pos)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadUint8 reads a single byte.
func (c *Cursor) ReadUint8() (byte, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt16 reads a little-endian signed 16-bit integer.
func (c *Cursor) ReadInt16() (int16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

// ReadUint16 reads a little-endian unsigned 16-bit integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func (c *Cursor) ReadInt32() (int32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// ReadUint32 reads a little-endian unsigned 32-bit integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt64 reads a little-endian signed 64-bit integer.
func (c *Cursor) ReadInt64() (int64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// ReadFloat32 reads a little-endian IEEE 754 single-precision float.
func (c *Cursor) ReadFloat32() (float32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// ReadFloat64 reads a little-endian IEEE 754 double-precision float.
func (c *Cursor) ReadFloat64() (float64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadString reads a length-prefixed string. The length uses the 7-bit
// variable-length encoding (see readLength). The raw bytes are returned
// as-is via Go's string conversion, so text that is not valid UTF-8 is
// preserved byte-for-byte rather than rejected; save files are known to
// contain legacy non-UTF-8 strings.
func (c *Cursor) ReadString() (string, error) {
	n, err := c.readLength()
	if err != nil {
		return "", err
	}
	b, err := c.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// readLength decodes the string length field: one byte at a time, each
// contributing its low 7 bits shifted left by 7*index, little-end
// first, continuing while the high bit is set. This is not zig-zag and
// not sign-extended; it must match the writer byte-for-byte or every
// subsequent offset in the stream desynchronizes.
//
// Fails with ErrInvalidLengthEncoding if the continuation bit is still
// set after five bytes, or if the accumulated value has its sign bit
// set when interpreted as a signed 32-bit integer.
func (c *Cursor) readLength() (int, error) {
	var out uint32
	var shift uint
	for {
		b, err := c.ReadUint8()
		if err != nil {
			return 0, err
		}
		out |= uint32(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
		if shift >= 32 {
			return 0, fmt.Errorf("%w: continuation bit set past 5 bytes at offset %d",
				ErrInvalidLengthEncoding, c.pos)
		}
	}
	if int32(out) < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrInvalidLengthEncoding, int32(out))
	}
	return int(out), nil
}
