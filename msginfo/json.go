package msginfo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"message-info/ds"
	"message-info/msginfo/mentry"
	"message-info/msginfo/mlang"
)

type messageInfoJSON struct {
	Language mlang.Language  `json:"language"`
	Entries  json.RawMessage `json:"entries"`
}

// FormatKey renders key the way it appears in JSON dumps: "0x" and 8 uppercase hex digits.
func FormatKey(key uint32) string {
	return fmt.Sprintf("0x%08X", key)
}

// ParseKey accepts hexadecimal keys prefixed with "0x" as well as plain decimal ones.
func ParseKey(s string) (uint32, error) {
	key, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, `ParseKey error with input "%s"`, s)
	}
	return uint32(key), nil
}

func (r MessageInfo) MarshalJSON() ([]byte, error) {
	lhm := ds.NewLinkedHashMap[string, mentry.Entry]()
	if r.Entries != nil {
		r.Entries.Each(func(key uint32, entry mentry.Entry) {
			lhm.Put(FormatKey(key), entry)
		})
	}
	entriesBytes, err := lhm.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "MessageInfo.MarshalJSON error")
	}
	return json.Marshal(messageInfoJSON{
		Language: r.Language,
		Entries:  entriesBytes,
	})
}

// UnmarshalJSON keeps the entries in the order they are written in bs.
// A key written twice keeps its first position and takes its last value.
func (r *MessageInfo) UnmarshalJSON(bs []byte) error {
	raw := messageInfoJSON{}
	if err := json.Unmarshal(bs, &raw); err != nil {
		return errors.Wrap(err, "MessageInfo.UnmarshalJSON error")
	}

	decoded := New(raw.Language)
	if len(raw.Entries) > 0 && string(raw.Entries) != "null" {
		lhm := orderedmap.New()
		if err := json.Unmarshal(raw.Entries, lhm); err != nil {
			return errors.Wrap(err, `MessageInfo.UnmarshalJSON error reading "entries"`)
		}
		keyOrder, err := readKeyOrder(raw.Entries)
		if err != nil {
			return errors.Wrap(err, `MessageInfo.UnmarshalJSON error reading "entries"`)
		}
		for _, keyStr := range keyOrder {
			key, err := ParseKey(keyStr)
			if err != nil {
				return errors.Wrap(err, "MessageInfo.UnmarshalJSON error")
			}
			value, _ := lhm.Get(keyStr)
			entry, err := toEntry(value)
			if err != nil {
				return errors.Wrapf(err, `MessageInfo.UnmarshalJSON error reading entry "%s"`, keyStr)
			}
			decoded.Insert(key, entry)
		}
	}

	*r = *decoded
	return nil
}

// readKeyOrder lists the keys of a JSON object by first appearance.
// orderedmap moves a repeated key to the back, which would reorder entries.
func readKeyOrder(bs []byte) ([]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(bs))
	if token, err := decoder.Token(); err != nil || token != json.Delim('{') {
		return nil, errors.Errorf("readKeyOrder error: expected an object, got %s", string(bs))
	}
	keys := make([]string, 0)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, errors.Wrap(err, "readKeyOrder error reading key")
		}
		key, ok := token.(string)
		if !ok {
			return nil, ds.ErrUnreachableCode{Caller: "readKeyOrder"}
		}
		var skipped json.RawMessage
		if err := decoder.Decode(&skipped); err != nil {
			return nil, errors.Wrapf(err, `readKeyOrder error reading value of "%s"`, key)
		}
		keys = append(keys, key)
	}
	return lo.Uniq(keys), nil
}

// toEntry goes through JSON bytes again, since orderedmap hands back generic values.
func toEntry(value any) (mentry.Entry, error) {
	entry := mentry.Entry{}
	valueBytes, err := json.Marshal(value)
	if err != nil {
		return entry, err
	}
	err = json.Unmarshal(valueBytes, &entry)
	return entry, err
}
