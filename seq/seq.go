// Package seq provides small helpers over sequences
// and sorted streams.
package seq

import (
	"cmp"
	"container/heap"
	"errors"
	"iter"
)

// ErrNoItems is returned when selecting from an empty sequence.
var ErrNoItems = errors.New("seq: no items to select")

// ArbitraryItem returns an item of s (the first one produced).
// An empty sequence is reported with ErrNoItems, so that callers
// never confuse it with the normal end of a stream.
func ArbitraryItem[T any](s iter.Seq[T]) (T, error) {
	for v := range s {
		return v, nil
	}
	var zero T
	return zero, ErrNoItems
}

// MapToConstant returns a function turning a slice into a map
// associating every item to `constant`.
func MapToConstant[K comparable, V any](constant V) func([]K) map[K]V {
	return func(items []K) map[K]V {
		out := make(map[K]V, len(items))
		for _, k := range items {
			out[k] = constant
		}
		return out
	}
}

// Merge merges sorted streams into one sorted stream.
// Equal items are produced in the order of their streams.
func Merge[T cmp.Ordered](streams ...iter.Seq[T]) iter.Seq[T] {
	return MergeFunc(cmp.Compare[T], streams...)
}

// MergeFunc is like Merge, with items ordered by `compare`.
func MergeFunc[T any](compare func(a, b T) int, streams ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		h := &heads[T]{compare: compare}
		for i, s := range streams {
			next, stop := iter.Pull(s)
			defer stop()
			if v, ok := next(); ok {
				h.items = append(h.items, head[T]{item: v, stream: i, next: next})
			}
		}
		heap.Init(h)
		for h.Len() > 0 {
			top := &h.items[0]
			if !yield(top.item) {
				return
			}
			if v, ok := top.next(); ok {
				top.item = v
				heap.Fix(h, 0)
			} else {
				heap.Pop(h)
			}
		}
	}
}

type head[T any] struct {
	item   T
	stream int // index of the stream, to break ties
	next   func() (T, bool)
}

// heads implements heap.Interface
type heads[T any] struct {
	items   []head[T]
	compare func(a, b T) int
}

func (h *heads[T]) Len() int { return len(h.items) }

func (h *heads[T]) Less(i, j int) bool {
	if c := h.compare(h.items[i].item, h.items[j].item); c != 0 {
		return c < 0
	}
	return h.items[i].stream < h.items[j].stream
}

func (h *heads[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *heads[T]) Push(x any) { h.items = append(h.items, x.(head[T])) }

func (h *heads[T]) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}
