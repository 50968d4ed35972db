package deferred

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/result"
)

func TestGo_Success(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	r, err := Await(ctx, Go(func() (int, error) { return 21, nil }).Deferred())
	require.NoError(t, err)
	assert.Equal(t, result.Success[error](21), r)
}

func TestGo_ErrorAndPanic(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	lookup := errors.New("lookup failed")
	r, err := Await(ctx, Go(func() (int, error) { return 0, lookup }).Deferred())
	require.NoError(t, err)
	assert.Equal(t, result.Failure[int](lookup), r)

	r, err = Await(ctx, Go(func() (int, error) { panic("crashed") }).Deferred())
	require.NoError(t, err)
	failure, ok := r.GetFailure()
	require.True(t, ok)
	var pe *fp.PanicError
	require.ErrorAs(t, failure, &pe)
	assert.Equal(t, "crashed", pe.Value)
}

func TestFuture_RunsOnce(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var calls atomic.Int32
	f := Go(func() (string, error) {
		calls.Add(1)
		return "ok", nil
	})

	<-f.Done()
	d := Map(f.Deferred(), func(s string) int { return len(s) })
	for range 3 {
		r, err := Await(ctx, d)
		require.NoError(t, err)
		assert.Equal(t, result.Success[error](2), r)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestFlatMap_OrderingAcrossGoroutines(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	mu := &sync.Mutex{}
	var events []string
	record := func(e string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	}

	step := func(name string, delay time.Duration) func(int) Deferred[int, error] {
		return func(x int) Deferred[int, error] {
			return Go(func() (int, error) {
				record(name)
				time.Sleep(delay)
				return x + 1, nil
			}).Deferred()
		}
	}

	d := FlatMap(FlatMap(step("a", 20*time.Millisecond)(0), step("b", 10*time.Millisecond)), step("c", 0))
	r, err := Await(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, result.Success[error](3), r)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a", "b", "c"}, events)
}

func TestAwait_NeverCompletes(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	never := New(func(func(int), func(error)) {})
	_, err := Await(ctx, never)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAwait_IgnoresSecondCompletion(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	misbehaving := New(func(resolve func(int), reject func(string)) {
		resolve(1)
		resolve(2)
		reject("late")
	})

	r, err := Await(ctx, misbehaving)
	require.NoError(t, err)
	assert.Equal(t, result.Success[string](1), r)
}

func TestAsync_StartsOnEveryRun(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var calls atomic.Int32
	d := Async(func() (int32, error) {
		return calls.Add(1), nil
	})
	assert.Equal(t, int32(0), calls.Load(), "Async must not start before Run")

	first, err := Await(ctx, d)
	require.NoError(t, err)
	second, err := Await(ctx, d)
	require.NoError(t, err)

	assert.Equal(t, result.Success[error](int32(1)), first)
	assert.Equal(t, result.Success[error](int32(2)), second)
}
