package pcolor

import (
	"fmt"
	"sort"
	"strings"

	"message-info/ds"
)

func (k EntryKey) Key() string {
	return fmt.Sprintf("%s_%d_%d", k.CharacterID, k.CostumeIndex, k.AltIndex)
}

func (k EntryKey) String() string {
	return k.Key()
}

// Compare orders by character id, then costume, then alt.
func (k EntryKey) Compare(other EntryKey) int {
	if c := strings.Compare(k.CharacterID, other.CharacterID); c != 0 {
		return c
	}
	if k.CostumeIndex != other.CostumeIndex {
		return compareUint8(k.CostumeIndex, other.CostumeIndex)
	}
	return compareUint8(k.AltIndex, other.AltIndex)
}

func compareUint8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func NewPlayerColorParam() *PlayerColorParam {
	return &PlayerColorParam{
		Entries: ds.NewLinkedHashMap[EntryKey, RGB](),
	}
}

func (p *PlayerColorParam) Set(key EntryKey, color RGB) {
	p.Entries.Put(key, color)
}

func (p *PlayerColorParam) Get(key EntryKey) (RGB, bool) {
	return p.Entries.Get(key)
}

// SortedKeys returns the keys ordered by EntryKey.Compare, leaving the table untouched.
func (p *PlayerColorParam) SortedKeys() []EntryKey {
	keys := p.Entries.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Compare(keys[j]) < 0
	})
	return keys
}

// MarshalJSON writes {"<id>_<costume>_<alt>": "#RRGGBB", ...} in insertion order.
func (p PlayerColorParam) MarshalJSON() ([]byte, error) {
	return p.Entries.MarshalJSON()
}
