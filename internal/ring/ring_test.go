package ring

import "testing"

func TestRing_PushPopFIFO(t *testing.T) {
	r := New[int](4)
	for i := 1; i <= 4; i++ {
		if !r.Push(i) {
			t.Fatalf("Push(%d) = false, want true", i)
		}
	}
	for i := 1; i <= 4; i++ {
		v, ok := r.Pop()
		if !ok || v != i {
			t.Fatalf("Pop() = %d, %v, want %d, true", v, ok, i)
		}
	}
	if _, ok := r.Pop(); ok {
		t.Error("Pop() on empty ring = true, want false")
	}
}

func TestRing_FullRejectsWithoutMutation(t *testing.T) {
	r := New[int](2)
	r.Push(1)
	r.Push(2)
	if r.Push(3) {
		t.Fatal("Push on full ring = true, want false")
	}
	if got := r.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	v, _ := r.Pop()
	if v != 1 {
		t.Errorf("Pop() after rejected push = %d, want 1", v)
	}
}

func TestRing_WrapAround(t *testing.T) {
	r := New[int](3)
	// Fill, drain partially, refill across the wrap point.
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Pop()
	r.Pop()
	r.Push(4)
	r.Push(5)
	want := []int{3, 4, 5}
	for _, w := range want {
		v, ok := r.Pop()
		if !ok || v != w {
			t.Fatalf("Pop() = %d, %v, want %d, true", v, ok, w)
		}
	}
	if !r.Empty() {
		t.Error("ring not empty after draining")
	}
}

func TestRing_CountDisambiguatesFullAndEmpty(t *testing.T) {
	r := New[int](2)
	if r.Full() || !r.Empty() {
		t.Fatal("new ring should be empty, not full")
	}
	r.Push(1)
	r.Push(2)
	// head == tail here, but count distinguishes the states.
	if !r.Full() || r.Empty() {
		t.Fatal("filled ring should be full, not empty")
	}
	r.Pop()
	r.Pop()
	if r.Full() || !r.Empty() {
		t.Fatal("drained ring should be empty, not full")
	}
}

func TestRing_PopZeroesSlot(t *testing.T) {
	r := New[*int](2)
	v := 7
	r.Push(&v)
	r.Pop()
	if r.buf[0] != nil {
		t.Error("vacated slot still holds a reference")
	}
}

func TestRing_MinimumCapacity(t *testing.T) {
	r := New[int](0)
	if got := r.Cap(); got != 1 {
		t.Errorf("Cap() = %d, want 1", got)
	}
	if !r.Push(9) {
		t.Fatal("Push into capacity-1 ring failed")
	}
	if r.Push(10) {
		t.Fatal("second Push into capacity-1 ring succeeded")
	}
	v, ok := r.Pop()
	if !ok || v != 9 {
		t.Errorf("Pop() = %d, %v, want 9, true", v, ok)
	}
}
