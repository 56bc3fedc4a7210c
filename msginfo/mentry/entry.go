package mentry

import (
	"github.com/samber/lo"
	"message-info/msginfo/mhash"
)

func New(stringID string, message string) Entry {
	return Entry{
		StringID: lo.ToPtr(stringID),
		Message:  lo.ToPtr(message),
	}
}

// Key is the checksum of the entry's string id, if it has one.
func (e Entry) Key() (uint32, bool) {
	if e.StringID == nil {
		return 0, false
	}
	return mhash.HashString(*e.StringID), true
}

func (e Entry) WithReference(ref Reference) Entry {
	e.Reference = normalizeReference(ref)
	return e
}

func (e Entry) WithCue(file string, cueIndex uint16) Entry {
	e.Adx2File = lo.ToPtr(file)
	e.Adx2CueIndex = lo.ToPtr(cueIndex)
	return e
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (e Entry) Equal(other Entry) bool {
	return equalPtr(e.StringID, other.StringID) &&
		equalPtr(e.Message, other.Message) &&
		normalizeReference(e.Reference) == normalizeReference(other.Reference) &&
		equalPtr(e.Adx2File, other.Adx2File) &&
		equalPtr(e.Adx2CueIndex, other.Adx2CueIndex)
}
