package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnbounded_PreservesFIFOOrder(t *testing.T) {
	in := make(chan int)
	out := Unbounded(in)

	go func() {
		for i := 0; i < 5; i++ {
			in <- i
		}
		close(in)
	}()

	got := []int{}
	for v := range out {
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestUnbounded_DoesNotBlockProducerWithoutConsumer(t *testing.T) {
	in := make(chan int)
	_ = Unbounded(in)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			in <- i
		}
		close(in)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "producer blocked despite no consumer draining the output")
	}
}

func TestUnbounded_ClosesOutputWhenInputCloses(t *testing.T) {
	in := make(chan int)
	out := Unbounded(in)
	close(in)

	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		require.FailNow(t, "output never closed")
	}
}
