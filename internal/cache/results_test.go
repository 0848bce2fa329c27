package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type memoryRemote struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
}

func newMemoryRemote() *memoryRemote {
	return &memoryRemote{data: make(map[string][]byte)}
}

func (m *memoryRemote) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryRemote) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func TestResults_HitWithinTTL(t *testing.T) {
	clock := newFakeClock()
	r := NewResults[[]int]("ranked", time.Minute, WithClock(clock.Now))

	var calls int
	fetch := func(context.Context) ([]int, error) {
		calls++
		return []int{calls}, nil
	}

	first, err := r.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	clock.Advance(59 * time.Second)
	second, err := r.Get(context.Background(), "k", fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Len())
}

func TestResults_ExpiresAfterTTL(t *testing.T) {
	clock := newFakeClock()
	r := NewResults[int]("ranked", time.Minute, WithClock(clock.Now))

	var calls int
	fetch := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, err := r.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	e, err := r.Get(context.Background(), "k", fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, e.Value)
	assert.Equal(t, clock.Now(), e.FetchedAt)
}

func TestResults_KeysAreIndependent(t *testing.T) {
	r := NewResults[string]("ranked", time.Minute)

	a, err := r.Get(context.Background(), "a", func(context.Context) (string, error) { return "A", nil })
	require.NoError(t, err)
	b, err := r.Get(context.Background(), "b", func(context.Context) (string, error) { return "B", nil })
	require.NoError(t, err)

	assert.Equal(t, "A", a.Value)
	assert.Equal(t, "B", b.Value)
	assert.Equal(t, 2, r.Len())
}

func TestResults_ErrorsAreNotCached(t *testing.T) {
	r := NewResults[int]("ranked", time.Minute)
	boom := errors.New("upstream down")

	_, err := r.Get(context.Background(), "k", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	e, err := r.Get(context.Background(), "k", func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, e.Value)
}

func TestResults_SingleFlight(t *testing.T) {
	r := NewResults[int]("ranked", time.Minute)

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(context.Context) (int, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return 7, nil
	}

	const callers = 5
	var wg sync.WaitGroup
	results := make([]Entry[int], callers)
	errs := make([]error, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = r.Get(context.Background(), "k", fetch)
	}()
	<-started

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.Get(context.Background(), "k", fetch)
		}(i)
	}
	// Let the late callers join the in-flight fetch before it completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}

func TestResults_CancelledCallerDoesNotFailFlight(t *testing.T) {
	r := NewResults[int]("ranked", time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, err := r.Get(ctx, "k", func(ctx context.Context) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, e.Value)
}

func TestResults_RemoteTier(t *testing.T) {
	clock := newFakeClock()
	remote := newMemoryRemote()

	writer := NewResults[[]string]("ranked", time.Minute, WithClock(clock.Now), WithRemote(remote))
	_, err := writer.Get(context.Background(), "k", func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	require.NoError(t, err)
	require.Contains(t, remote.data, "ranked:k")

	// A second replica with a cold local map reads the shared entry.
	reader := NewResults[[]string]("ranked", time.Minute, WithClock(clock.Now), WithRemote(remote))
	e, err := reader.Get(context.Background(), "k", func(context.Context) ([]string, error) {
		t.Fatal("fetch should not run on a remote hit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, e.Value)
}

func TestResults_RemoteEntryPastTTLIsIgnored(t *testing.T) {
	clock := newFakeClock()
	remote := newMemoryRemote()

	writer := NewResults[int]("ranked", time.Minute, WithClock(clock.Now), WithRemote(remote))
	_, err := writer.Get(context.Background(), "k", func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	reader := NewResults[int]("ranked", time.Minute, WithClock(clock.Now), WithRemote(remote))
	e, err := reader.Get(context.Background(), "k", func(context.Context) (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, e.Value)
}
