// Package adx2 maps ADX2 cue sheet file names to the small indexes the
// message entries store, and back.
//
// Index 0 is reserved for files the table does not know about.
package adx2

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

//go:embed files.txt
var files string

// Unsupported is returned by FileIndex for names outside the table.
const Unsupported uint8 = 0

var (
	indexByName map[string]uint8
	nameByIndex map[uint8]string
)

func init() {
	var err error
	indexByName, err = parseTable(files)
	if err != nil {
		panic(err)
	}
	nameByIndex = lo.Invert(indexByName)
}

func parseTable(table string) (map[string]uint8, error) {
	lines := lo.Filter(
		strings.Split(table, "\n"),
		func(line string, _ int) bool {
			line = strings.TrimSpace(line)
			return len(line) > 0 && !strings.HasPrefix(line, "#")
		},
	)
	result := make(map[string]uint8, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf(`parseTable error: malformed line "%s"`, line)
		}
		index, err := strconv.ParseUint(fields[0], 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, `parseTable error reading index of line "%s"`, line)
		}
		if index == uint64(Unsupported) {
			return nil, errors.Errorf(`parseTable error: index 0 is reserved, got line "%s"`, line)
		}
		if _, existed := result[fields[1]]; existed {
			return nil, errors.Errorf(`parseTable error: duplicated name "%s"`, fields[1])
		}
		if lo.Contains(lo.Values(result), uint8(index)) {
			return nil, errors.Errorf(`parseTable error: duplicated index %d`, index)
		}
		result[fields[1]] = uint8(index)
	}
	return result, nil
}

// FileIndex returns Unsupported for unknown names.
func FileIndex(name string) uint8 {
	return indexByName[name]
}

// FileName falls back to the decimal index for indexes the table does not know.
func FileName(index uint8) string {
	if name, ok := nameByIndex[index]; ok {
		return name
	}
	return strconv.Itoa(int(index))
}

// Names lists the known file names ordered by index.
func Names() []string {
	return lo.FilterMap(
		lo.Range(256),
		func(i int, _ int) (string, bool) {
			name, ok := nameByIndex[uint8(i)]
			return name, ok
		},
	)
}
