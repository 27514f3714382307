package nbt

import (
	"encoding/binary"
	"math/bits"
)

// hostBigEndian is true when the machine stores multi-byte integers
// most significant byte first.
var hostBigEndian = binary.NativeEndian.Uint16([]byte{0x00, 0x01}) == 1

// be16, be32 and be64 convert a value so that its in-memory (native)
// representation is big-endian. They are the identity on big-endian hosts.
func be16(v uint16) uint16 {
	if hostBigEndian {
		return v
	}
	return bits.ReverseBytes16(v)
}

func be32(v uint32) uint32 {
	if hostBigEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

func be64(v uint64) uint64 {
	if hostBigEndian {
		return v
	}
	return bits.ReverseBytes64(v)
}
