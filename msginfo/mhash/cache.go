package mhash

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed names.txt
var names string

// nameByHash maps identifiers back to the known string ids they were computed from.
var (
	nameByHash   map[uint32]string
	nameByHashMu sync.RWMutex
)

func init() {
	namesSlice := lo.Filter(
		strings.Split(names, "\n"),
		func(line string, _ int) bool {
			return len(strings.TrimSpace(line)) > 0
		},
	)
	nameByHash = lo.SliceToMap(
		namesSlice,
		func(name string) (uint32, string) {
			name = strings.TrimSpace(name)
			return HashString(name), name
		},
	)
}

// Register adds names to the reverse dictionary.
func Register(names ...string) {
	nameByHashMu.Lock()
	defer nameByHashMu.Unlock()
	for _, name := range names {
		nameByHash[HashString(name)] = name
	}
}

// Dehash looks up the string id that hashes to key, if it is known.
func Dehash(key uint32) (string, bool) {
	nameByHashMu.RLock()
	defer nameByHashMu.RUnlock()
	name, ok := nameByHash[key]
	return name, ok
}

// KnownNames returns the size of the reverse dictionary.
func KnownNames() int {
	nameByHashMu.RLock()
	defer nameByHashMu.RUnlock()
	return len(nameByHash)
}
