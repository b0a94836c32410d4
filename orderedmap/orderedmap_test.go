package orderedmap

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMap_InsertOrderIndependence(t *testing.T) {
	m := NewOrdered[int, int]()
	keys := []int{10, 5, 15, 3, 7, 12, 20}
	for _, k := range keys {
		if !m.Insert(k, k*10) {
			t.Fatalf("Insert(%d) = false, want true", k)
		}
	}

	if got := m.Size(); got != 7 {
		t.Errorf("Size() = %d, want 7", got)
	}
	if got := m.Height(); got > 3 {
		t.Errorf("Height() = %d, want <= 3", got)
	}

	var got []int
	for it := m.Iterator(); it.Next(); {
		got = append(got, it.Key())
	}
	want := []int{3, 5, 7, 10, 12, 15, 20}
	if !equalInts(got, want) {
		t.Errorf("in-order iteration = %v, want %v", got, want)
	}
}

func TestMap_EraseRebalance(t *testing.T) {
	m := NewOrdered[int, int]()
	for _, k := range []int{10, 5, 15, 3, 7, 12, 20} {
		m.Insert(k, k*10)
	}

	if got := m.Erase(10); got != 6 {
		t.Errorf("Erase(10) = %d, want 6", got)
	}
	if got := m.Height(); got > 3 {
		t.Errorf("Height() after erase = %d, want <= 3", got)
	}
	if _, ok := m.At(10); ok {
		t.Errorf("At(10) after erase = present, want absent")
	}
}

func TestMap_DuplicateInsertRejected(t *testing.T) {
	m := NewOrdered[int, string]()
	if !m.Insert(1, "a") {
		t.Fatal("first insert should succeed")
	}
	if m.Insert(1, "b") {
		t.Fatal("duplicate insert should return false")
	}
	v, _ := m.Get(1)
	if v != "a" {
		t.Errorf("Get(1) = %q, want %q (duplicate insert must not mutate)", v, "a")
	}
	if m.Size() != 1 {
		t.Errorf("Size() = %d, want 1", m.Size())
	}
}

func TestMap_EraseAbsentKeyIsNoOp(t *testing.T) {
	m := NewOrdered[int, int]()
	m.Insert(1, 1)
	m.Insert(2, 2)
	if got := m.Erase(99); got != 2 {
		t.Errorf("Erase(absent) = %d, want unchanged size 2", got)
	}
}

func TestMap_ReverseIteration(t *testing.T) {
	m := NewOrdered[int, int]()
	for _, k := range []int{1, 2, 3, 4, 5} {
		m.Insert(k, k)
	}
	var got []int
	for it := m.ReverseIterator(); it.Next(); {
		got = append(got, it.Key())
	}
	want := []int{5, 4, 3, 2, 1}
	if !equalInts(got, want) {
		t.Errorf("reverse iteration = %v, want %v", got, want)
	}
}

func TestMap_AtMutatesInPlace(t *testing.T) {
	m := NewOrdered[string, int]()
	m.Insert("x", 1)
	v, ok := m.At("x")
	if !ok {
		t.Fatal("At(x) absent")
	}
	*v = 42
	got, _ := m.Get("x")
	if got != 42 {
		t.Errorf("Get(x) = %d, want 42", got)
	}
}

// TestMap_RandomSequenceMatchesReference compares the map's visible
// content and iteration order against a reference sorted map across
// many random insert/erase sequences, checking BST order, the AVL
// balance invariant and size accounting after every mutation.
func TestMap_RandomSequenceMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		m := NewOrdered[int, int]()
		reference := map[int]int{}

		for step := 0; step < 200; step++ {
			key := rng.Intn(40)
			if rng.Intn(3) == 0 {
				_, existed := reference[key]
				got := m.Insert(key, key)
				if got == existed {
					t.Fatalf("trial %d step %d: Insert(%d) = %v, want %v", trial, step, key, got, !existed)
				}
				reference[key] = key
			} else {
				wantSize := len(reference)
				if _, existed := reference[key]; existed {
					delete(reference, key)
					wantSize--
				}
				if got := m.Erase(key); got != wantSize {
					t.Fatalf("trial %d step %d: Erase(%d) = %d, want %d", trial, step, key, got, wantSize)
				}
			}

			checkInvariants(t, m)

			if m.Size() != len(reference) {
				t.Fatalf("trial %d step %d: Size() = %d, want %d", trial, step, m.Size(), len(reference))
			}
		}

		var want []int
		for k := range reference {
			want = append(want, k)
		}
		sort.Ints(want)

		var got []int
		for it := m.Iterator(); it.Next(); {
			got = append(got, it.Key())
		}
		if !equalInts(got, want) {
			t.Fatalf("trial %d: final iteration = %v, want %v", trial, got, want)
		}
	}
}

// checkInvariants walks the whole tree verifying BST order and the
// strict AVL balance invariant at every node.
func checkInvariants(t *testing.T, m *Map[int, int]) {
	t.Helper()
	var walk func(n *node[int, int], lo, hi *int) int
	walk = func(n *node[int, int], lo, hi *int) int {
		if n == nil {
			return 0
		}
		if lo != nil && !(*lo < n.key) {
			t.Fatalf("BST order violated: %d should be > %d", n.key, *lo)
		}
		if hi != nil && !(n.key < *hi) {
			t.Fatalf("BST order violated: %d should be < %d", n.key, *hi)
		}

		lh := walk(n.left, lo, &n.key)
		rh := walk(n.right, &n.key, hi)

		if diff := lh - rh; diff > 1 || diff < -1 {
			t.Fatalf("AVL balance violated at key %d: left height %d, right height %d", n.key, lh, rh)
		}

		if n.left != nil && n.left.parent != n {
			t.Fatalf("parent consistency violated at key %d's left child", n.key)
		}
		if n.right != nil && n.right.parent != n {
			t.Fatalf("parent consistency violated at key %d's right child", n.key)
		}

		return 1 + max(lh, rh)
	}
	walk(m.root, nil, nil)

	if m.root != nil && m.root.parent != nil {
		t.Fatal("root parent link must be nil")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
