package avl

import (
	"math/bits"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedOperations -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzRandomizedOperations -fuzztime=10s

// stepBound is a generous bound for the rebalancing steps of a single insert
// or delete on a tree with n keys. AVL height is below 1.45·log₂(n+2), and
// every level contributes at most two steps.
func stepBound(n int) int {
	return 3 * (bits.Len(uint(n+1)) + 2)
}

func assertMatchesModel(t *testing.T, tree *Tree[string], model map[int]string) {
	t.Helper()
	require.NoError(t, tree.Check())
	require.Equal(t, len(model), tree.Size())
	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	require.Equal(t, keys, tree.KeysInOrder())
	values := tree.ValuesInOrder()
	for i, k := range keys {
		require.Equal(t, model[k], values[i], "value of key %d", k)
	}
	if len(keys) == 0 {
		require.True(t, tree.Empty())
		return
	}
	lo, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, model[keys[0]], lo)
	hi, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, model[keys[len(keys)-1]], hi)
}

// runRandomOperations applies a random mix of insertions, deletions and
// split/join round trips to a tree and a map model, comparing both after
// every step.
func runRandomOperations(t *testing.T, r *rand.Rand, ops int) {
	tree := New[string]()
	model := make(map[int]string)
	keySpace := 1 + r.Intn(500)
	for i := 0; i < ops; i++ {
		k := r.Intn(keySpace) - keySpace/2
		n := tree.Size()
		switch op := r.Intn(10); {
		case op < 5:
			v := strconv.Itoa(k) + "/" + strconv.Itoa(i)
			steps, err := tree.Insert(k, v)
			if _, exists := model[k]; exists {
				require.ErrorIs(t, err, ErrDuplicateKey)
				break
			}
			require.NoError(t, err)
			require.LessOrEqual(t, steps, stepBound(n), "insert %d into %d keys", k, n)
			model[k] = v
		case op < 8:
			steps, err := tree.Delete(k)
			if _, exists := model[k]; !exists {
				require.ErrorIs(t, err, ErrKeyNotFound)
				break
			}
			require.NoError(t, err)
			require.LessOrEqual(t, steps, stepBound(n), "delete %d from %d keys", k, n)
			delete(model, k)
		default:
			if tree.Empty() {
				break
			}
			x, v, err := tree.At(r.Intn(n))
			require.NoError(t, err)
			smaller, bigger, err := tree.Split(x)
			require.NoError(t, err)
			require.NoError(t, smaller.Check())
			require.NoError(t, bigger.Check())
			require.Equal(t, n-1, smaller.Size()+bigger.Size())
			// re-join from either side
			if r.Intn(2) == 0 {
				_, err = smaller.Join(NewNode(x, v), bigger)
				tree = smaller
			} else {
				_, err = bigger.Join(NewNode(x, v), smaller)
				tree = bigger
			}
			require.NoError(t, err)
		}
		assertMatchesModel(t, tree, model)
	}
}

func TestRandomizedOperations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for seed := int64(1); seed <= 20; seed++ {
		runRandomOperations(t, rand.New(rand.NewSource(seed)), 400)
	}
}

func FuzzRandomizedOperations(f *testing.F) {
	f.Add(int64(1), uint16(100))
	f.Add(int64(3232), uint16(1000))
	f.Add(int64(-17), uint16(5))
	f.Fuzz(func(t *testing.T, seed int64, ops uint16) {
		gtrace.CoreTracer = gotestingadapter.New(t)
		teardown := gotestingadapter.RedirectTracing(t)
		defer teardown()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
		//
		runRandomOperations(t, rand.New(rand.NewSource(seed)), int(ops%2000))
	})
}
