package mhash

import (
	"math/bits"
)

// HashBytes runs the checksum over bs and returns the complemented accumulator
// with its bytes swapped, which is how the identifiers are stored by the games.
func HashBytes(bs []byte) uint32 {
	t := table()
	v := uint32(0xFFFFFFFF)
	for _, b := range bs {
		v = v<<8 ^ t[byte(v>>24)^b]
	}
	return bits.ReverseBytes32(^v)
}

func HashString(s string) uint32 {
	return HashBytes([]byte(s))
}
