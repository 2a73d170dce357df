package translator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingBackend(calls *int32, err error) Translator {
	return Func(func(ctx context.Context, req Request) (string, error) {
		atomic.AddInt32(calls, 1)
		if err != nil {
			return "", err
		}
		return req.Text + "!", nil
	})
}

func TestCached_HitsSkipBackend(t *testing.T) {
	var calls int32
	c, err := NewCached(countingBackend(&calls, nil), 8)
	require.NoError(t, err)

	req := Request{Text: "hola", Source: "es", Target: "en"}
	for i := 0; i < 3; i++ {
		got, err := c.Translate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "hola!", got)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Equal(t, 1, c.Len())
}

func TestCached_KeyIncludesPair(t *testing.T) {
	var calls int32
	c, err := NewCached(countingBackend(&calls, nil), 8)
	require.NoError(t, err)

	_, _ = c.Translate(context.Background(), Request{Text: "x", Source: "en", Target: "es"})
	_, _ = c.Translate(context.Background(), Request{Text: "x", Source: "es", Target: "en"})
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCached_ErrorsNotCached(t *testing.T) {
	var calls int32
	c, err := NewCached(countingBackend(&calls, errors.New("down")), 8)
	require.NoError(t, err)

	req := Request{Text: "x", Source: "en", Target: "es"}
	_, err = c.Translate(context.Background(), req)
	assert.Error(t, err)
	_, err = c.Translate(context.Background(), req)
	assert.Error(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	assert.Zero(t, c.Len())
}

func TestNewCached_InvalidSize(t *testing.T) {
	_, err := NewCached(NewMock(0), 0)
	assert.Error(t, err)
}

func TestRateLimited_CancelWhileWaiting(t *testing.T) {
	var calls int32
	r := NewRateLimited(countingBackend(&calls, nil), 0.001)

	// First call consumes the only token.
	_, err := r.Translate(context.Background(), Request{Text: "a"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Translate(ctx, Request{Text: "b"})
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrCancelled)
	case <-time.After(2 * time.Second):
		t.Fatal("rate limited call did not return after cancel")
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}
