// Package builder provides ID schemes for generated nodes and edges.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates an identifier from a zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// NodeIDFn returns "Node_<idx>", the naming used by the regression network.
func NodeIDFn(idx int) string {
	return "Node_" + strconv.Itoa(idx)
}

// EdgeIDFn returns "Edge_<idx>".
func EdgeIDFn(idx int) string {
	return "Edge_" + strconv.Itoa(idx)
}

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// AirportIDFn returns a three-letter, IATA-shaped code: 0→"AAA", 1→"AAB",
// 26→"ABA". Panics if idx is outside [0, 26³).
func AirportIDFn(idx int) string {
	const span = 26 * 26 * 26
	if idx < 0 || idx >= span {
		panic(fmt.Sprintf("AirportIDFn: idx must be in [0,%d), got %d", span, idx))
	}
	code := []byte{'A', 'A', 'A'}
	for i := 2; i >= 0; i-- {
		code[i] = byte('A' + idx%26)
		idx /= 26
	}

	return string(code)
}
