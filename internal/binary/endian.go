package binary

import "encoding/binary"

// Integer is the set of fixed-width field types found in SoundFont records.
type Integer interface {
	uint8 | int8 | uint16 | int16 | uint32
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T Integer]() int {
	var zero T
	switch any(zero).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	default:
		return 4
	}
}

// decodeLE converts the leading bytes of b to T using little-endian byte order.
//
// All multi-byte values in a RIFF file are little-endian, so unlike MP4
// there is no big-endian variant here.
func decodeLE[T Integer](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case uint8, int8:
		return T(b[0])
	case uint16, int16:
		return T(binary.LittleEndian.Uint16(b))
	default:
		return T(binary.LittleEndian.Uint32(b))
	}
}

// DecodeInt16s decodes len(dst) little-endian 16-bit samples from src into dst,
// widening each to int32. src must hold at least 2*len(dst) bytes.
func DecodeInt16s(dst []int32, src []byte) {
	for i := range dst {
		dst[i] = int32(int16(binary.LittleEndian.Uint16(src[2*i:])))
	}
}
