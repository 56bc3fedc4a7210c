package mhash

import (
	"github.com/koykov/hash"
)

// Hasher exposes HashString through the koykov hash interface, so the checksum
// can be swapped with (or for) any other hasher of that family.
type Hasher struct{}

var _ hash.Hasher = Hasher{}

func (Hasher) Sum64(s string) uint64 {
	return uint64(HashString(s))
}
