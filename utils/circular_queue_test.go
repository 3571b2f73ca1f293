package utils

import (
	"slices"
	"testing"
)

func TestCircularQueueOrder(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 3; i++ {
		if dropped, err := q.Append(i); err != nil || dropped {
			t.Fatalf("append %d: dropped=%v err=%v", i, dropped, err)
		}
	}
	if got := slices.Collect(q.Iter()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("unexpected order %v", got)
	}

	dropped, _ := q.Append(4)
	if !dropped {
		t.Fatal("expected the oldest item to be dropped")
	}
	if got := slices.Collect(q.Iter()); !slices.Equal(got, []int{2, 3, 4}) {
		t.Fatalf("unexpected order after overflow %v", got)
	}
	if v, err := q.Get(0); err != nil || v != 2 {
		t.Fatalf("Get(0) = %v, %v", v, err)
	}
	if _, err := q.Get(3); err == nil {
		t.Fatal("expected out of range error")
	}

	for _, want := range []int{2, 3, 4} {
		if v, ok := q.Pop(); !ok || v != want {
			t.Fatalf("Pop() = %v, %v, want %v", v, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("expected empty queue")
	}
	if q.Len() != 0 || q.Cap() != 3 {
		t.Fatalf("unexpected len %d cap %d", q.Len(), q.Cap())
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0)
	if _, err := q.Append(1); err == nil {
		t.Fatal("expected error on zero-capacity queue")
	}
}
