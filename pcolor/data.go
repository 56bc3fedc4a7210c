// Package pcolor encodes player colors as hex text and keeps the per-costume
// color table.
package pcolor

import (
	"message-info/ds"
)

type (
	RGB struct {
		Red   uint8 `json:"red"`
		Green uint8 `json:"green"`
		Blue  uint8 `json:"blue"`
	}
	EntryKey struct {
		CharacterID  string `json:"character_id"`
		CostumeIndex uint8  `json:"costume_index"` // zero-indexed
		AltIndex     uint8  `json:"alt_index"`     // zero-indexed
	}
	PlayerColorParam struct {
		Entries *ds.LinkedHashMap[EntryKey, RGB]
	}
)

const (
	HexLength = 6
	HexPrefix = "#"
)
