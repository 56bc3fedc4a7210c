package mentry

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"message-info/ds"
	"message-info/msginfo/mhash"
)

type referenceJSON struct {
	StringID *string `json:"string_id,omitempty"`
	HashID   *uint32 `json:"hash_id,omitempty"`
}

// normalizeReference dereferences *StringID and *HashID.
func normalizeReference(ref Reference) Reference {
	switch r := ref.(type) {
	case *StringID:
		if r == nil {
			return nil
		}
		return *r
	case *HashID:
		if r == nil {
			return nil
		}
		return *r
	}
	return ref
}

// ResolveReference returns the key the reference points at.
func ResolveReference(ref Reference) (uint32, bool) {
	switch r := normalizeReference(ref).(type) {
	case StringID:
		return mhash.HashString(string(r)), true
	case HashID:
		return uint32(r), true
	}
	return 0, false
}

func marshalReference(ref Reference) (*referenceJSON, error) {
	switch r := normalizeReference(ref).(type) {
	case nil:
		return nil, nil
	case StringID:
		s := string(r)
		return &referenceJSON{StringID: &s}, nil
	case HashID:
		h := uint32(r)
		return &referenceJSON{HashID: &h}, nil
	}
	return nil, ds.ErrUnreachableCode{Caller: fmt.Sprintf("marshalReference(%T)", ref)}
}

func unmarshalReference(raw *referenceJSON) (Reference, error) {
	if raw == nil {
		return nil, nil
	}
	switch {
	case raw.StringID != nil && raw.HashID != nil:
		return nil, errors.New(`unmarshalReference error: both "string_id" and "hash_id" are set`)
	case raw.StringID != nil:
		return StringID(*raw.StringID), nil
	case raw.HashID != nil:
		return HashID(*raw.HashID), nil
	}
	return nil, errors.New(`unmarshalReference error: neither "string_id" nor "hash_id" is set`)
}

// entryJSON mirrors Entry with the reference in its wire shape.
type entryJSON struct {
	StringID     *string        `json:"string_id,omitempty"`
	Message      *string        `json:"message,omitempty"`
	Reference    *referenceJSON `json:"reference_id,omitempty"`
	Adx2File     *string        `json:"adx2_file,omitempty"`
	Adx2CueIndex *uint16        `json:"adx2_cue_index,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	ref, err := marshalReference(e.Reference)
	if err != nil {
		return nil, err
	}
	return json.Marshal(entryJSON{
		StringID:     e.StringID,
		Message:      e.Message,
		Reference:    ref,
		Adx2File:     e.Adx2File,
		Adx2CueIndex: e.Adx2CueIndex,
	})
}

func (e *Entry) UnmarshalJSON(bs []byte) error {
	raw := entryJSON{}
	if err := json.Unmarshal(bs, &raw); err != nil {
		return errors.Wrap(err, "Entry.UnmarshalJSON error")
	}
	ref, err := unmarshalReference(raw.Reference)
	if err != nil {
		return errors.Wrapf(err, "Entry.UnmarshalJSON error with input %s", string(bs))
	}
	*e = Entry{
		StringID:     raw.StringID,
		Message:      raw.Message,
		Reference:    ref,
		Adx2File:     raw.Adx2File,
		Adx2CueIndex: raw.Adx2CueIndex,
	}
	return nil
}
