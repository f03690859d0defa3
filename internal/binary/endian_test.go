package binary

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestDecodeLE(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(0x04030201))
	data := buf.Bytes()

	tests := []struct {
		got  func() int64
		name string
		want int64
	}{
		{name: "uint8", want: 0x01, got: func() int64 { return int64(decodeLE[uint8](data)) }},
		{name: "int8", want: 0x01, got: func() int64 { return int64(decodeLE[int8](data)) }},
		{name: "uint16", want: 0x0201, got: func() int64 { return int64(decodeLE[uint16](data)) }},
		{name: "int16", want: 0x0201, got: func() int64 { return int64(decodeLE[int16](data)) }},
		{name: "uint32", want: 0x04030201, got: func() int64 { return int64(decodeLE[uint32](data)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(); got != tt.want {
				t.Errorf("expected 0x%x, got 0x%x", tt.want, got)
			}
		})
	}
}

func TestDecodeLE_SignExtension(t *testing.T) {
	data := []byte{0xFF, 0xFF}

	if got := decodeLE[int8](data); got != -1 {
		t.Errorf("int8: expected -1, got %d", got)
	}
	if got := decodeLE[int16](data); got != -1 {
		t.Errorf("int16: expected -1, got %d", got)
	}
	if got := decodeLE[uint16](data); got != 0xFFFF {
		t.Errorf("uint16: expected 0xFFFF, got 0x%x", got)
	}
}

func TestSizeOf(t *testing.T) {
	if sizeOf[uint8]() != 1 || sizeOf[int8]() != 1 {
		t.Error("8-bit types should be 1 byte")
	}
	if sizeOf[uint16]() != 2 || sizeOf[int16]() != 2 {
		t.Error("16-bit types should be 2 bytes")
	}
	if sizeOf[uint32]() != 4 {
		t.Error("uint32 should be 4 bytes")
	}
}

func TestDecodeInt16s(t *testing.T) {
	buf := &bytes.Buffer{}
	for _, v := range []int16{0, 1, -1, 32767, -32768} {
		binary.Write(buf, binary.LittleEndian, v)
	}

	dst := make([]int32, 5)
	DecodeInt16s(dst, buf.Bytes())

	want := []int32{0, 1, -1, 32767, -32768}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d: expected %d, got %d", i, want[i], dst[i])
		}
	}
}
