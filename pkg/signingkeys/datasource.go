package signingkeys

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/stepmention/internal/logging"
)

// DefaultDelay is how long a refresh takes before results are published.
const DefaultDelay = 500 * time.Millisecond

// SigningKey is a row of the signing keys table.
type SigningKey struct {
	DisplayName string `json:"displayName"`
	Created     string `json:"created"`
	ID          string `json:"id"`
}

// placeholderKeys is what Data exposes after a refresh completes.
func placeholderKeys() []SigningKey {
	return []SigningKey{
		{
			DisplayName: "Fake key",
			Created:     "Thu Oct 26 2023 15:51:40 GMT+0300 (GMT+03:00)",
			ID:          "string id ",
		},
	}
}

// Option configures a DataSource.
type Option func(*DataSource)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(ds *DataSource) {
		ds.delay = d
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(ds *DataSource) {
		ds.logger = logger
	}
}

// DataSource feeds the signing keys table. It is safe for concurrent use.
type DataSource struct {
	refresh <-chan bool
	delay   time.Duration
	logger  *slog.Logger

	mu          sync.RWMutex
	data        []SigningKey
	loading     bool
	subscribers map[chan bool]struct{}
	cancel      context.CancelFunc
}

// NewDataSource creates a source driven by refresh: every value received
// triggers a reload. The source starts in the loading state.
func NewDataSource(refresh <-chan bool, opts ...Option) *DataSource {
	ds := &DataSource{
		refresh:     refresh,
		delay:       DefaultDelay,
		loading:     true,
		subscribers: make(map[chan bool]struct{}),
	}
	for _, opt := range opts {
		opt(ds)
	}
	if ds.logger == nil {
		ds.logger = logging.NewNop()
	}
	return ds
}

// Connect starts serving the table. The returned channel receives one page
// per completed refresh. A refresh arriving while another is pending
// supersedes it. The channel is closed when ctx is done, Disconnect is
// called, or refresh is closed and no reload is pending.
func (ds *DataSource) Connect(ctx context.Context) <-chan []SigningKey {
	ctx, cancel := context.WithCancel(ctx)

	ds.mu.Lock()
	if ds.cancel != nil {
		ds.cancel()
	}
	ds.cancel = cancel
	ds.mu.Unlock()

	out := make(chan []SigningKey)
	go ds.run(ctx, out)
	return out
}

// Disconnect stops the stream started by Connect.
func (ds *DataSource) Disconnect() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.cancel != nil {
		ds.cancel()
		ds.cancel = nil
	}
}

// Data returns the rows currently held by the table.
func (ds *DataSource) Data() []SigningKey {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	out := make([]SigningKey, len(ds.data))
	copy(out, ds.data)
	return out
}

// IsLoading reports whether a refresh is in progress.
func (ds *DataSource) IsLoading() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.loading
}

// Loading subscribes to the loading flag. The channel immediately holds the
// current value and afterwards always holds the latest one; intermediate
// values may be dropped. It is closed when ctx is done.
func (ds *DataSource) Loading(ctx context.Context) <-chan bool {
	ch := make(chan bool, 1)

	ds.mu.Lock()
	ch <- ds.loading
	ds.subscribers[ch] = struct{}{}
	ds.mu.Unlock()

	go func() {
		<-ctx.Done()
		ds.mu.Lock()
		delete(ds.subscribers, ch)
		close(ch)
		ds.mu.Unlock()
	}()
	return ch
}

func (ds *DataSource) run(ctx context.Context, out chan<- []SigningKey) {
	defer close(out)

	refresh := ds.refresh
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-refresh:
			if !ok {
				refresh = nil
				if pending == nil {
					return
				}
				continue
			}
			ds.logger.Debug("Refreshing signing keys", "delay", ds.delay)
			ds.setLoading(true)
			pending = time.After(ds.delay)
		case <-pending:
			pending = nil

			ds.mu.Lock()
			ds.data = placeholderKeys()
			ds.mu.Unlock()
			ds.setLoading(false)

			select {
			case out <- []SigningKey{}:
			case <-ctx.Done():
				return
			}
			if refresh == nil {
				return
			}
		}
	}
}

func (ds *DataSource) setLoading(v bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.loading = v
	for ch := range ds.subscribers {
		// Keep only the latest value.
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}
