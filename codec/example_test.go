package codec_test

import (
	"errors"
	"fmt"

	"github.com/arloliu/bincodec/codec"
	"github.com/arloliu/bincodec/errs"
	"github.com/arloliu/bincodec/record"
	"github.com/arloliu/bincodec/schema"
)

func ExampleRecordCodec_Encode() {
	s := schema.MustParse("id:uint32, name:ascii, age:uint8, balance:float")
	c, _ := codec.NewRecordCodec(s)

	data, _ := c.Encode(record.Record{
		"id":      record.Uint(1234567890),
		"name":    record.Text("John Doe"),
		"age":     record.Uint(30),
		"balance": record.Float(1234.56),
	})
	fmt.Printf("% x\n", data)
	// Output: 49 96 02 d2 4a 6f 68 6e 20 44 6f 65 00 1e 44 9a 51 ec
}

func ExampleRecordCodec_DecodeFields() {
	s := schema.MustParse("id:uint16, delta:int8, name:ascii")
	c, _ := codec.NewRecordCodec(s, codec.WithLittleEndian())

	fields, _ := c.DecodeFields([]byte{0x2a, 0x00, 0xfe, 'b', 'o', 'b', 0x00})
	for _, f := range fields {
		fmt.Printf("%s=%s\n", f.Tag, f.Value)
	}
	// Output:
	// id=42
	// delta=-2
	// name="bob"
}

func ExampleRecordCodec_Decode_errors() {
	c, _ := codec.NewRecordCodec(schema.MustParse("id:uint32"))

	_, err := c.Decode([]byte{0x01, 0x02})
	fmt.Println(errors.Is(err, errs.ErrOutOfRange))

	_, err = c.Encode(record.Record{"id": record.Int(1)})
	fmt.Println(errors.Is(err, errs.ErrTypeMismatch))
	// Output:
	// true
	// true
}
