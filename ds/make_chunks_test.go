package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeChunks(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, MakeChunks([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]byte{[]byte("00"), []byte("99"), []byte("FF")}, MakeChunks([]byte("0099FF"), 2))
	assert.Equal(t, [][]int{}, MakeChunks([]int{}, 3))
	assert.Equal(t, [][]int{}, MakeChunks([]int{1, 2}, 0))
	assert.Equal(t, [][]int{}, MakeChunks([]int{1, 2}, -1))
}

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []uint32{0, 1, 2, 3}, MakeRange[uint32](0, 4, 1))
	assert.Equal(t, []int{0, 5}, MakeRange(0, 10, 5))
	assert.Len(t, MakeRange[uint32](0, 256, 1), 256)
}

func TestShallowCopy(t *testing.T) {
	ts := []int{1, 2, 3}
	tsCopy := ShallowCopy(ts)
	tsCopy[0] = 10

	assert.Equal(t, []int{1, 2, 3}, ts)
	assert.Equal(t, []int{10, 2, 3}, tsCopy)
}

func TestErrUnreachableCode(t *testing.T) {
	err := ErrUnreachableCode{Caller: "Reference.MarshalJSON"}
	assert.EqualError(t, err, "Reference.MarshalJSON: unreachable code")
}
