package mhash

import (
	"fmt"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	tbl := Table()
	require.Len(t, tbl, TableSize)

	expectedValues := map[int]uint32{
		0:   0x00000000,
		1:   0x04C11DB7,
		2:   0x09823B6E,
		3:   0x0D4326D9,
		128: 0x690CE0EE,
		255: 0xB1F740B4,
	}
	for i, v := range expectedValues {
		assert.Equalf(t, v, tbl[i], "table entry %d", i)
	}

	tbl[1] = 0
	assert.Equal(t, Polynomial, Table()[1], "Table must hand out a copy")
}

func TestHashString(t *testing.T) {
	expectedValues := map[string]uint32{
		"":               0x00000000,
		"a":              0x6B9B9319,
		"abc":            0x73BB8C64,
		"123456789":      0x181989FC,
		"message":        0xC048B5B8,
		"crusader":       0xA4E4B829,
		"plague_doctor":  0xF1495C29,
		"SYS_MENU_TITLE": 0xDDECD317,
		"こんにちは":          0x06FE3F3E,
	}
	for s, v := range expectedValues {
		assert.Equalf(t, v, HashString(s), "HashString(%q)", s)
		assert.Equalf(t, v, HashBytes([]byte(s)), "HashBytes(%q)", s)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, uint32(0x181989FC), HashString("123456789"))
	}
}

func TestHashString_NoCollisions(t *testing.T) {
	corpus := lo.Map(
		lo.Range(5000),
		func(i int, _ int) string {
			return fmt.Sprintf("MSG_%05d", i)
		},
	)
	corpus = append(corpus, "", "a", "b", "ab", "ba", "A", "message", "Message")

	hashes := lo.Map(corpus, func(s string, _ int) uint32 { return HashString(s) })
	assert.Len(t, lo.Uniq(hashes), len(corpus))
}

func TestHashString_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]uint32, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = HashString("crusader")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, []uint32{0xA4E4B829}, lo.Uniq(results))
}

func TestHasher(t *testing.T) {
	h := Hasher{}
	assert.Equal(t, uint64(0x181989FC), h.Sum64("123456789"))
	assert.Equal(t, uint64(0), h.Sum64(""))
}
