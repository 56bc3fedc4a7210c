// Package mentry holds one localized record: its text, the entry it points
// at, and its optional ADX2 audio cue.
package mentry

type (
	Entry struct {
		StringID     *string   `json:"string_id,omitempty"`
		Message      *string   `json:"message,omitempty"`
		Reference    Reference `json:"reference_id,omitempty"`
		Adx2File     *string   `json:"adx2_file,omitempty"`
		Adx2CueIndex *uint16   `json:"adx2_cue_index,omitempty"`
	}
	// Reference points at another entry either by its string id or by its hash.
	// It is implemented by StringID and HashID only. Pointers to either also
	// satisfy it; they are read through (nil pointer = no reference).
	Reference interface {
		isReference()
	}
	StringID string
	HashID   uint32
)

func (StringID) isReference() {}
func (HashID) isReference()   {}
