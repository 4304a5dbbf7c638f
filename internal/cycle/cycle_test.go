package cycle

import "testing"

import "github.com/stretchr/testify/assert"

func takeN(c *Cycle[int], n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = c.Next()
	}
	return out
}

func TestForward(t *testing.T) {
	c := New([]int{1, 2, 3}, Forward, 1)
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2}, takeN(c, 8))
}

func TestBackward(t *testing.T) {
	c := New([]int{1, 2, 3}, Backward, 1)
	assert.Equal(t, []int{3, 2, 1, 3}, takeN(c, 4))
}

func TestPingPong(t *testing.T) {
	c := New([]int{1, 2, 3}, PingPong, 1)
	assert.Equal(t, []int{1, 2, 3, 2, 1, 2}, takeN(c, 6))
}

func TestRepeat(t *testing.T) {
	c := New([]int{1, 2}, Forward, 3)
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2}, takeN(c, 6))
}

func TestRepeatBackward(t *testing.T) {
	c := New([]int{1, 2, 3}, Backward, 2)
	assert.Equal(t, []int{3, 3, 2, 2, 1, 1}, takeN(c, 6))
}

func TestRepeatPingPong(t *testing.T) {
	c := New([]int{1, 2, 3}, PingPong, 2)
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 2, 2, 1, 1}, takeN(c, 10))
}

func TestSingleItemAlwaysReturnsIt(t *testing.T) {
	for _, dir := range []Direction{Forward, Backward, PingPong} {
		c := New([]int{42}, dir, 1)
		assert.Equal(t, []int{42, 42, 42, 42}, takeN(c, 4))
	}
}

func TestUpdateResetsPlayHeadAndRepeat(t *testing.T) {
	c := New([]int{1, 2, 3}, Forward, 2)
	c.Next() // 1 (repeat 1 of 2)

	c.Update([]int{9, 8, 7})
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{9, 9, 8, 8, 7, 7, 9}, takeN(c, 7))
}

func TestDirectionNeverChangesAfterConstruction(t *testing.T) {
	c := New([]int{1, 2, 3}, PingPong, 1)
	takeN(c, 20)
	assert.Equal(t, PingPong, c.direction)
}
