package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("a", 1)

	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
}

func TestLinkedHashMap_Put(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)
	lhm.Put("abc", 1)

	assert.Equal(t, lhm.hashMap, map[string]any{"abc": 1})
	assert.Equal(t, 1, lhm.ordering.Len())
}

func TestLinkedHashMap_PutOverwriteKeepsPosition(t *testing.T) {
	lhm := NewLinkedHashMap[int, string]()
	lhm.Put(1, "a")
	lhm.Put(2, "b")
	lhm.Put(3, "c")
	lhm.Put(2, "B")

	assert.Equal(t, []int{1, 2, 3}, lhm.Keys())
	assert.Equal(t, []string{"a", "B", "c"}, lhm.Values())

	value, ok := lhm.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "B", value)

	_, ok = lhm.Get(4)
	assert.False(t, ok)
	assert.False(t, lhm.Has(4))
}

func TestLinkedHashMap_Extend(t *testing.T) {
	lhm := NewLinkedHashMap[int, string]()
	lhm.Put(1, "a")
	lhm.Put(2, "b")

	other := NewLinkedHashMap[int, string]()
	other.Put(3, "c")
	other.Put(2, "B2")

	lhm.Extend(other)
	lhm.Extend(nil)

	assert.Equal(t, []int{1, 2, 3}, lhm.Keys())
	assert.Equal(t, []string{"a", "B2", "c"}, lhm.Values())
	assert.Equal(t, []int{3, 2}, other.Keys())
}

func TestLinkedHashMap_Clone(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()
	lhm.Put("x", 1)

	clone := lhm.Clone()
	clone.Put("y", 2)
	clone.Put("x", 10)

	assert.Equal(t, []string{"x"}, lhm.Keys())
	value, _ := lhm.Get("x")
	assert.Equal(t, 1, value)
	assert.Equal(t, []string{"x", "y"}, clone.Keys())
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("def", 2)
	lhm.Put("abc", 1)

	bs, err := lhm.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"def":2,"abc":1}`, string(bs))

	intKeyed := NewLinkedHashMap[int, bool]()
	intKeyed.Put(7, true)
	bs, err = intKeyed.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"7":true}`, string(bs))

	empty := NewLinkedHashMap[string, int]()
	bs, err = empty.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(bs))
}
