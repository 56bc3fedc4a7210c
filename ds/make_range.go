package ds

import (
	"golang.org/x/exp/constraints"
)

func MakeRange[T constraints.Integer | constraints.Float](start, end, step T) []T {
	if end <= start || step <= 0 {
		return []T{}
	}
	sequence := make([]T, 0, int((end-start)/step)+1)
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}
