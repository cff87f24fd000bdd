package codec_test

import (
	"fmt"
	"log"

	"github.com/netfossil/nrbf/pkg/codec"
)

// ExampleCursor_ReadString demonstrates decoding a length-prefixed
// string with the 7-bit variable-length length field.
func ExampleCursor_ReadString() {
	// Length 5, then the raw bytes.
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}

	c := codec.NewCursor(data)
	s, err := c.ReadString()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Value: %s\n", s)
	fmt.Printf("Consumed: %d bytes\n", c.Pos())

	// Output:
	// Value: hello
	// Consumed: 6 bytes
}

// ExampleCursor_ReadPrimitive demonstrates typed primitive reads.
func ExampleCursor_ReadPrimitive() {
	// An unsigned 32-bit value with the sign bit set.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF}

	c := codec.NewCursor(data)
	v, err := c.ReadPrimitive(codec.PrimitiveTypeUInt32)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%T %v\n", v, v)

	// Output:
	// uint32 4294967295
}
