package msginfo

import (
	"fmt"

	"github.com/koykov/hash"
	"github.com/pkg/errors"
	"message-info/ds"
	"message-info/msginfo/mentry"
	"message-info/msginfo/mhash"
)

// entries creates the map on first use, so a zero MessageInfo is ready to fill.
func (r *MessageInfo) entries() *ds.LinkedHashMap[uint32, mentry.Entry] {
	if r.Entries == nil {
		r.Entries = ds.NewLinkedHashMap[uint32, mentry.Entry]()
	}
	return r.Entries
}

// Insert puts entry at key. An existing key keeps its position.
func (r *MessageInfo) Insert(key uint32, entry mentry.Entry) {
	r.entries().Put(key, entry)
}

// InsertNamed keys entry by the checksum of its string id.
func (r *MessageInfo) InsertNamed(entry mentry.Entry) (uint32, error) {
	key, ok := entry.Key()
	if !ok {
		err := fmt.Errorf("InsertNamed error: entry %s has no string id", ds.DumpJSON(entry))
		return 0, err
	}
	r.Insert(key, entry)
	return key, nil
}

// InsertWith keys entry by name through h, keeping the lower 32 bits.
func (r *MessageInfo) InsertWith(h hash.Hasher, name string, entry mentry.Entry) uint32 {
	key := uint32(h.Sum64(name))
	r.Insert(key, entry)
	return key
}

func (r *MessageInfo) Get(key uint32) (mentry.Entry, bool) {
	return r.entries().Get(key)
}

func (r *MessageInfo) GetNamed(stringID string) (mentry.Entry, bool) {
	return r.Get(mhash.HashString(stringID))
}

func (r *MessageInfo) Has(key uint32) bool {
	return r.entries().Has(key)
}

func (r *MessageInfo) Len() int {
	return r.entries().Len()
}

func (r *MessageInfo) Keys() []uint32 {
	return r.entries().Keys()
}

// Each walks the entries in insertion order.
func (r *MessageInfo) Each(fn func(key uint32, entry mentry.Entry)) {
	r.entries().Each(fn)
}

// Merge folds other into r. The other takes priority: its language always
// replaces r's, and its entries overwrite r's on shared keys. Shared keys keep
// their position in r; keys only in other are appended in other's order.
func (r *MessageInfo) Merge(other *MessageInfo) {
	if other == nil {
		return
	}
	r.Language = other.Language
	r.entries().Extend(other.Entries)
}

func (r *MessageInfo) Clone() *MessageInfo {
	return &MessageInfo{
		Language: r.Language,
		Entries:  r.entries().Clone(),
	}
}

// Fold merges others into a copy of base, left to right.
func Fold(base *MessageInfo, others ...*MessageInfo) (*MessageInfo, error) {
	if base == nil {
		return nil, errors.New("Fold error: no base message info")
	}
	result := base.Clone()
	for i, other := range others {
		if other == nil {
			return nil, errors.Errorf("Fold error: message info at position %d is nil", i)
		}
		result.Merge(other)
	}
	return result, nil
}

// FillStringIDs restores missing string ids from the known-name dictionary.
// It returns the number of entries that were filled.
func (r *MessageInfo) FillStringIDs() int {
	filled := 0
	for _, key := range r.Keys() {
		entry, _ := r.Get(key)
		if entry.StringID != nil {
			continue
		}
		name, ok := mhash.Dehash(key)
		if !ok {
			continue
		}
		entry.StringID = &name
		r.Insert(key, entry)
		filled++
	}
	return filled
}
