package ds

import (
	"bytes"
	"container/list"
	"encoding"
	"encoding/json"
	"fmt"
)

// LinkedHashMap is a map that remembers insertion-order in serialization and keys fetching.
//
// Overwriting an existing key replaces its value but keeps its original position.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering *list.List
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: list.New(),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return len(r.hashMap)
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, 0, r.ordering.Len())
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		keys = append(keys, runner.Value.(K))
	}
	return keys
}

func (r *LinkedHashMap[K, V]) Values() []V {
	values := make([]V, 0, r.ordering.Len())
	r.Each(func(_ K, value V) {
		values = append(values, value)
	})
	return values
}

func (r *LinkedHashMap[K, V]) Put(key K, value V) {
	if _, existed := r.hashMap[key]; !existed {
		r.ordering.PushBack(key)
	}
	r.hashMap[key] = value
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

func (r *LinkedHashMap[K, V]) Has(key K) bool {
	_, ok := r.hashMap[key]
	return ok
}

// Each calls fn for every pair in insertion order.
func (r *LinkedHashMap[K, V]) Each(fn func(key K, value V)) {
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		fn(key, r.hashMap[key])
	}
}

// Extend puts every pair of other into r, walking other in its own order.
// Keys already present in r keep their position and take other's value.
func (r *LinkedHashMap[K, V]) Extend(other *LinkedHashMap[K, V]) {
	if other == nil {
		return
	}
	other.Each(r.Put)
}

func (r *LinkedHashMap[K, V]) Clone() *LinkedHashMap[K, V] {
	clone := NewLinkedHashMap[K, V]()
	clone.Extend(r)
	return clone
}

func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0))

	buf.WriteRune('{')
	for runner := r.ordering.Front(); runner != nil; runner = runner.Next() {
		key := runner.Value.(K)
		value := r.hashMap[key]

		keyStr, err := formatKey(key)
		if err != nil {
			return nil, err
		}
		keyBs, err := json.Marshal(keyStr)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBs)

		buf.WriteRune(':')

		valueBs, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(valueBs)

		if runner.Next() != nil {
			buf.WriteRune(',')
		}
	}
	buf.WriteRune('}')

	return buf.Bytes(), nil
}

// formatKey turns a key into a JSON object key, since JSON only allows strings there.
func formatKey(key any) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case encoding.TextMarshaler:
		bs, err := k.MarshalText()
		if err != nil {
			return "", err
		}
		return string(bs), nil
	case fmt.Stringer:
		return k.String(), nil
	default:
		return fmt.Sprint(k), nil
	}
}
