package avl

import (
	"errors"
	"math/bits"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitEveryKey(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := rand.New(rand.NewSource(20))
	keys := r.Perm(20)
	for _, x := range keys {
		tree := fromKeys(t, keys...)
		smaller, bigger, err := tree.Split(x)
		if err != nil {
			t.Fatalf("split at %d: %v", x, err)
		}
		if err := smaller.Check(); err != nil {
			t.Fatalf("split at %d, smaller tree: %v", x, err)
		}
		if err := bigger.Check(); err != nil {
			t.Fatalf("split at %d, bigger tree: %v", x, err)
		}
		for _, k := range smaller.KeysInOrder() {
			if k >= x {
				t.Errorf("split at %d: key %d in smaller tree", x, k)
			}
		}
		for _, k := range bigger.KeysInOrder() {
			if k <= x {
				t.Errorf("split at %d: key %d in bigger tree", x, k)
			}
		}
		if smaller.Size()+bigger.Size() != 19 {
			t.Errorf("split at %d: sizes %d + %d != 19", x, smaller.Size(), bigger.Size())
		}
		if !tree.Empty() {
			t.Errorf("split at %d: original tree should be empty", x)
		}
	}
}

func TestSplitExtremes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := fromKeys(t, keyRange(1, 10)...)
	smaller, bigger, err := tree.Split(1)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !smaller.Empty() || bigger.Size() != 9 {
		t.Errorf("split at minimum: sizes %d, %d", smaller.Size(), bigger.Size())
	}
	if lo, _ := bigger.Min(); lo != "2" {
		t.Errorf("expected bigger tree to start at 2, have %s", lo)
	}
	if err := bigger.Check(); err != nil {
		t.Fatal(err.Error())
	}
	smaller, bigger, err = bigger.Split(10)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !bigger.Empty() || smaller.Size() != 8 {
		t.Errorf("split at maximum: sizes %d, %d", smaller.Size(), bigger.Size())
	}
	if hi, _ := smaller.Max(); hi != "9" {
		t.Errorf("expected smaller tree to end at 9, have %s", hi)
	}
	if err := smaller.Check(); err != nil {
		t.Fatal(err.Error())
	}
	single := fromKeys(t, 42)
	smaller, bigger, err = single.Split(42)
	if err != nil || !smaller.Empty() || !bigger.Empty() {
		t.Errorf("splitting a single node tree: %v", err)
	}
}

func TestSplitAbsentKey(t *testing.T) {
	tree := fromKeys(t, 1, 3, 5)
	if _, _, err := tree.Split(4); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if err := tree.Check(); err != nil || tree.Size() != 3 {
		t.Errorf("failed split must not modify the tree: %v", err)
	}
}

func TestSplitJoinInverse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 25; round++ {
		keys := r.Perm(200)[:1+r.Intn(150)]
		tree := fromKeys(t, keys...)
		wantKeys, wantValues := tree.KeysInOrder(), tree.ValuesInOrder()
		x := keys[r.Intn(len(keys))]
		v, _ := tree.Search(x)
		smaller, bigger, err := tree.Split(x)
		if err != nil {
			t.Fatal(err.Error())
		}
		if _, err := smaller.Join(NewNode(x, v), bigger); err != nil {
			t.Fatalf("re-join at %d: %v", x, err)
		}
		if err := smaller.Check(); err != nil {
			t.Fatalf("re-joined tree at %d: %v", x, err)
		}
		if !slices.Equal(smaller.KeysInOrder(), wantKeys) || !slices.Equal(smaller.ValuesInOrder(), wantValues) {
			t.Errorf("split/join at %d does not reproduce the tree", x)
		}
	}
}

func TestSplitCostIsLogarithmic(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := rand.New(rand.NewSource(3232))
	for _, n := range []int{10, 100, 1000, 5000} {
		tree := New[string]()
		var keys []int
		for len(keys) < n {
			k := r.Intn(1 << 30)
			if _, err := tree.Insert(k, strconv.Itoa(k)); err == nil {
				keys = append(keys, k)
			}
		}
		h := tree.Height()
		x := keys[r.Intn(n)]
		_, _, stats, err := tree.SplitWithStats(x)
		if err != nil {
			t.Fatal(err.Error())
		}
		if stats.Joins > h {
			t.Errorf("n=%d: %d joins for a tree of height %d", n, stats.Joins, h)
		}
		if stats.Total > 6*(h+2) {
			t.Errorf("n=%d: total join cost %d exceeds bound for height %d", n, stats.Total, h)
		}
		if stats.Joins > 0 && (stats.Mean() < 1 || stats.Mean() > float64(stats.Max)) {
			t.Errorf("n=%d: inconsistent join stats %+v", n, stats)
		}
		t.Logf("n=%d, log n=%d, height=%d, joins=%d, total cost=%d, max cost=%d",
			n, bits.Len(uint(n)), h, stats.Joins, stats.Total, stats.Max)
	}
}
