// Package msginfo keeps one language's localized messages keyed by the
// checksum of their string ids, in the order they appeared in the source file.
package msginfo

import (
	"message-info/ds"
	"message-info/msginfo/mentry"
	"message-info/msginfo/mlang"
)

type MessageInfo struct {
	Language mlang.Language
	Entries  *ds.LinkedHashMap[uint32, mentry.Entry]
}

func New(language mlang.Language) *MessageInfo {
	return &MessageInfo{
		Language: language,
		Entries:  ds.NewLinkedHashMap[uint32, mentry.Entry](),
	}
}
