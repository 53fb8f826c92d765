package signingkeys

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestDataSource_RefreshCycle(t *testing.T) {
	refresh := make(chan bool)
	ds := NewDataSource(refresh, WithDelay(10*time.Millisecond))
	assert.True(t, ds.IsLoading(), "starts loading")
	assert.Empty(t, ds.Data())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := ds.Connect(ctx)

	refresh <- true
	page := receive(t, out)
	assert.NotNil(t, page)
	assert.Empty(t, page, "the published page is always empty")

	assert.False(t, ds.IsLoading())
	assert.Equal(t, []SigningKey{{
		DisplayName: "Fake key",
		Created:     "Thu Oct 26 2023 15:51:40 GMT+0300 (GMT+03:00)",
		ID:          "string id ",
	}}, ds.Data())
}

func TestDataSource_LoadingSubscription(t *testing.T) {
	refresh := make(chan bool)
	ds := NewDataSource(refresh, WithDelay(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loading := ds.Loading(ctx)
	assert.True(t, receive(t, loading))

	out := ds.Connect(ctx)
	refresh <- true
	receive(t, out)

	assert.False(t, receive(t, loading), "latest value after refresh")

	cancel()
	select {
	case _, ok := <-loading:
		assert.False(t, ok, "closed once the subscription context is done")
	case <-time.After(2 * time.Second):
		t.Fatal("loading subscription not closed")
	}
}

func TestDataSource_NewerRefreshSupersedesPending(t *testing.T) {
	refresh := make(chan bool, 2)
	ds := NewDataSource(refresh, WithDelay(30*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := ds.Connect(ctx)

	refresh <- true
	refresh <- true
	close(refresh)

	receive(t, out)
	_, ok := <-out
	assert.False(t, ok, "one page for two overlapping refreshes, then closed")
}

func TestDataSource_CloseWithoutPending(t *testing.T) {
	refresh := make(chan bool)
	ds := NewDataSource(refresh)
	out := ds.Connect(context.Background())

	close(refresh)
	_, ok := <-out
	assert.False(t, ok)
	assert.True(t, ds.IsLoading(), "never refreshed")
}

func TestDataSource_Disconnect(t *testing.T) {
	refresh := make(chan bool)
	ds := NewDataSource(refresh, WithDelay(time.Hour))
	out := ds.Connect(context.Background())

	refresh <- true
	ds.Disconnect()

	_, ok := <-out
	assert.False(t, ok)
	assert.True(t, ds.IsLoading(), "cancelled before completion")
}

func TestDataSource_DataIsCopied(t *testing.T) {
	refresh := make(chan bool)
	ds := NewDataSource(refresh, WithDelay(time.Millisecond))
	out := ds.Connect(context.Background())
	defer ds.Disconnect()

	refresh <- true
	receive(t, out)

	rows := ds.Data()
	require.Len(t, rows, 1)
	rows[0].DisplayName = "mutated"
	assert.Equal(t, "Fake key", ds.Data()[0].DisplayName)
}
