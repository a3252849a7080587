//go:build unit

package chain

import (
	"github.com/Pallinder/go-randomdata"
	"github.com/google/go-cmp/cmp"
	"github.com/gostonefire/linkedds/dserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// reachable - Counts nodes by walking from head, independent of the maintained length
func reachable[T any](c *Chain[T]) int {
	var n int
	for node := c.Head(); node != nil; node = node.Next() {
		n++
	}
	return n
}

func TestNew(t *testing.T) {
	t.Run("creates an empty chain", func(t *testing.T) {
		// Execute
		c := New[int]()

		// Check
		assert.Equal(t, 0, c.Len(), "empty")
		assert.Nil(t, c.Head(), "no head")
		assert.Nil(t, c.Tail(), "no tail")
	})

	t.Run("zero value is usable", func(t *testing.T) {
		// Prepare
		var c Chain[[]int]

		// Execute
		c.Add([]int{1, 2})
		c.Add([]int{3})

		// Check
		assert.True(t, c.Contains([]int{3}), "deep equality on non comparable payload")
		assert.True(t, c.Delete([]int{1, 2}), "deletes by deep equality")
		assert.Equal(t, 1, c.Len(), "one left")
	})
}

func TestChain_Tail(t *testing.T) {
	t.Run("head only chain has head as tail", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1})

		// Check
		assert.Equal(t, 1, c.Tail().Value(), "tail is head")
	})

	t.Run("deep tail", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3, 4, 5})

		// Execute
		tail := c.Tail()

		// Check
		assert.Equal(t, 5, tail.Value(), "tail value")
		assert.False(t, tail.HasNext(), "tail has no successor")
	})
}

func TestChain_Add(t *testing.T) {
	t.Run("appends after tail", func(t *testing.T) {
		// Prepare
		c := New[int]()

		// Execute & Check
		for _, v := range []int{1, 2, 3, 9} {
			c.Add(v)
			assert.Equal(t, v, c.Tail().Value(), "new tail")
			assert.Equal(t, 1, c.Head().Value(), "head unchanged")
		}
		assert.Equal(t, 4, c.Len(), "length maintained")
	})
}

func TestChain_AddFirst(t *testing.T) {
	t.Run("new value becomes head", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3})

		// Execute
		c.AddFirst(0)
		c.AddFirst(15)

		// Check
		assert.Equal(t, 15, c.Head().Value(), "head")
		assert.Equal(t, 3, c.Tail().Value(), "tail")
		assert.Equal(t, 5, c.Len(), "length")
	})
}

func TestChain_AddAfter(t *testing.T) {
	t.Run("inserts after the anchor", func(t *testing.T) {
		// Prepare
		c := New[int]()
		c.Add(1)
		c.Add(2)
		c.Add(3)

		// Execute
		err := c.AddAfter(5, 2)

		// Check
		require.NoError(t, err, "anchor exists")
		if diff := cmp.Diff([]int{1, 2, 5, 3}, c.Values()); diff != "" {
			t.Errorf("traversal order mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 4, c.Len(), "length")
	})

	t.Run("inserts after tail", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3, 4})

		// Execute
		err := c.AddAfter(5, 4)

		// Check
		require.NoError(t, err, "anchor exists")
		assert.Equal(t, 5, c.Tail().Value(), "new tail")
	})

	t.Run("uses only the first equal anchor", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{7, 1, 7})

		// Execute
		err := c.AddAfter(9, 7)

		// Check
		require.NoError(t, err, "anchor exists")
		if diff := cmp.Diff([]int{7, 9, 1, 7}, c.Values()); diff != "" {
			t.Errorf("traversal order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing anchor returns NotFound and leaves chain untouched", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3})

		// Execute
		err := c.AddAfter(5, 42)

		// Check
		assert.ErrorIs(t, err, dserr.NotFound{}, "correct error")
		assert.Contains(t, err.Error(), "42", "message names anchor")
		assert.Equal(t, []int{1, 2, 3}, c.Values(), "untouched")
		assert.Equal(t, 3, c.Len(), "length untouched")
	})
}

func TestChain_Find(t *testing.T) {
	t.Run("finds first occurrence", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3, 2})

		// Execute
		n := c.Find(2)

		// Check
		require.NotNil(t, n, "found")
		assert.Equal(t, 3, n.Next().Value(), "first occurrence")
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3})

		// Check
		assert.Nil(t, c.Find(4), "absent")
		assert.Nil(t, New[int]().Find(1), "empty chain")
	})

	t.Run("finds by predicate", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3, 4, 5})

		// Execute
		n := c.FindMatch(func(v int) bool { return v > 3 })

		// Check
		require.NotNil(t, n, "found")
		assert.Equal(t, 4, n.Value(), "first match")
		assert.Nil(t, c.FindMatch(func(v int) bool { return v > 5 }), "no match")
	})

	t.Run("found node gives in place mutation", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3})

		// Execute
		c.Find(2).SetValue(20)

		// Check
		assert.Equal(t, []int{1, 20, 3}, c.Values(), "mutated in place")
	})
}

func TestChain_Delete(t *testing.T) {
	t.Run("deletes head", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3, 4, 5})

		// Execute
		deleted := c.Delete(1)

		// Check
		assert.True(t, deleted, "deleted")
		assert.Equal(t, []int{2, 3, 4, 5}, c.Values(), "head replaced by successor")
		assert.Equal(t, 4, c.Len(), "length")
	})

	t.Run("deletes in the middle and at tail", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3, 4, 5})

		// Execute
		c.Delete(3)
		c.Delete(5)

		// Check
		assert.Equal(t, []int{1, 2, 4}, c.Values(), "predecessor relinked")
		assert.Equal(t, 4, c.Tail().Value(), "new tail")
		assert.Equal(t, 3, c.Len(), "length")
	})

	t.Run("deletes only first occurrence", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{2, 1, 2})

		// Execute
		c.Delete(2)

		// Check
		assert.Equal(t, []int{1, 2}, c.Values(), "first occurrence removed")
	})

	t.Run("missing value is a no-op", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3})

		// Execute
		deleted := c.Delete(9)

		// Check
		assert.False(t, deleted, "nothing deleted")
		assert.Equal(t, 3, c.Len(), "length untouched")
	})

	t.Run("delete match returns removed value", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3, 4})

		// Execute
		v, ok := c.DeleteMatch(func(v int) bool { return v%2 == 0 })
		_, missing := c.DeleteMatch(func(v int) bool { return v > 10 })

		// Check
		assert.True(t, ok, "found")
		assert.Equal(t, 2, v, "removed value")
		assert.False(t, missing, "absence is reported, not failed")
		assert.Equal(t, []int{1, 3, 4}, c.Values(), "remaining")
	})
}

func TestChain_PopPeek(t *testing.T) {
	t.Run("pop returns head values in order", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3})

		// Execute & Check
		for _, want := range []int{1, 2, 3} {
			v, ok := c.Pop()
			assert.True(t, ok, "not empty")
			assert.Equal(t, want, v, "head value")
		}
		_, ok := c.Pop()
		assert.False(t, ok, "empty")
		assert.Equal(t, 0, c.Len(), "length")
	})

	t.Run("peek does not remove", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{5, 6})

		// Execute
		v, ok := c.Peek()

		// Check
		assert.True(t, ok, "not empty")
		assert.Equal(t, 5, v, "head value")
		assert.Equal(t, 2, c.Len(), "length untouched")

		_, ok = New[int]().Peek()
		assert.False(t, ok, "empty chain")
	})
}

func TestChain_SetHead(t *testing.T) {
	t.Run("replaces head value in place", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2})

		// Execute
		c.SetHead(10)

		// Check
		assert.Equal(t, []int{10, 2}, c.Values(), "replaced")
		assert.Equal(t, 2, c.Len(), "length untouched")
	})

	t.Run("behaves like add first on empty chain", func(t *testing.T) {
		// Prepare
		c := New[int]()

		// Execute
		c.SetHead(10)

		// Check
		assert.Equal(t, []int{10}, c.Values(), "added")
		assert.Equal(t, 1, c.Len(), "length")
	})
}

func TestChain_Contains(t *testing.T) {
	t.Run("reports presence", func(t *testing.T) {
		// Prepare
		c := FromSlice([]string{"a", "b"})

		// Check
		assert.True(t, c.Contains("b"), "present")
		assert.False(t, c.Contains("c"), "absent")
		assert.True(t, c.ContainsMatch(func(s string) bool { return s < "b" }), "predicate match")
	})
}

func TestNewWithEqual(t *testing.T) {
	t.Run("uses the given equality", func(t *testing.T) {
		// Prepare
		type pair struct {
			key   string
			value []int
		}
		c := NewWithEqual(func(a, b pair) bool { return a.key == b.key })
		c.Add(pair{key: "a", value: []int{1}})

		// Execute
		err := c.AddAfter(pair{key: "b"}, pair{key: "a", value: []int{99}})

		// Check
		assert.NoError(t, err, "anchor matched by key only")
		assert.True(t, c.Contains(pair{key: "b"}), "inserted")
	})
}

func TestChain_Clear(t *testing.T) {
	t.Run("drops all nodes", func(t *testing.T) {
		// Prepare
		c := FromSlice([]int{1, 2, 3})

		// Execute
		c.Clear()

		// Check
		assert.Equal(t, 0, c.Len(), "empty")
		assert.Nil(t, c.Head(), "no head")
	})
}

func TestChain_LengthInvariant(t *testing.T) {
	t.Run("length equals reachable nodes after random operations", func(t *testing.T) {
		// Prepare
		c := New[int]()

		// Execute & Check
		for i := 0; i < 2000; i++ {
			v := randomdata.Number(0, 20)
			switch randomdata.Number(0, 5) {
			case 0:
				c.Add(v)
			case 1:
				c.AddFirst(v)
			case 2:
				c.Delete(v)
			case 3:
				c.Pop()
			default:
				_ = c.AddAfter(v, randomdata.Number(0, 20))
			}
			require.Equalf(t, reachable(c), c.Len(), "length invariant after operation #%d", i)
		}
	})
}
