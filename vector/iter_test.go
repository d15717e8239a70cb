package vector_test

import (
	"testing"

	"github.com/momentics/growvec/vector"
)

func TestAllYieldsLiveRange(t *testing.T) {
	v := vector.Of(10, 20, 30)
	v.Reserve(8) // tail slots must not be visited
	var idxs, vals []int
	for i, x := range v.All() {
		idxs = append(idxs, i)
		vals = append(vals, x)
	}
	if len(idxs) != 3 || idxs[2] != 2 || vals[0] != 10 || vals[2] != 30 {
		t.Errorf("All yielded %v / %v", idxs, vals)
	}
}

func TestValuesRestartable(t *testing.T) {
	v := vector.Of(1, 2, 3)
	seq := v.Values()
	for pass := 0; pass < 2; pass++ {
		sum := 0
		for x := range seq {
			sum += x
		}
		if sum != 6 {
			t.Errorf("pass %d: sum = %d, want 6", pass, sum)
		}
	}
}

func TestTraversalEarlyBreak(t *testing.T) {
	v := vector.Of(1, 2, 3, 4)
	seen := 0
	for _, x := range v.All() {
		seen++
		if x == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("visited %d elements before break, want 2", seen)
	}
}

func TestMutWritesThrough(t *testing.T) {
	v := vector.Of(1, 2, 3)
	for _, p := range v.Mut() {
		*p *= 10
	}
	for i, want := range []int{10, 20, 30} {
		if v.Get(i) != want {
			t.Errorf("v[%d] = %d, want %d", i, v.Get(i), want)
		}
	}
}

func TestTraversalOfEmpty(t *testing.T) {
	v := vector.New[int]()
	for range v.Values() {
		t.Fatal("empty vector yielded an element")
	}
}
