// Package live delivers full collection snapshots to subscribers
// whenever the underlying collection changes.
package live

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Document is a single record in snapshot form, id included.
type Document map[string]interface{}

// Filter narrows a snapshot to documents matching all listed equalities.
type Filter map[string]interface{}

// Source reads snapshots and exposes change signals for a collection.
type Source interface {
	// Snapshot returns the current matching documents.
	Snapshot(ctx context.Context, collection string, filter Filter) ([]Document, error)
	// Watch emits a signal whenever any document in the collection
	// changes. The channel closes when ctx is cancelled or the
	// underlying stream ends.
	Watch(ctx context.Context, collection string) (<-chan struct{}, error)
}

// Callback receives each snapshot. It runs on the subscription's own
// goroutine, so a slow callback delays that subscription only.
type Callback func(docs []Document)

// CancelFunc tears down a subscription and waits for its goroutine to
// exit. Safe to call more than once.
type CancelFunc func()

// Manager owns live subscriptions. Errors never reach subscribers; a
// failed snapshot is logged and skipped, and the previous state stands.
type Manager struct {
	source Source
	log    zerolog.Logger

	mu     sync.Mutex
	active int
}

func NewManager(source Source, log zerolog.Logger) *Manager {
	return &Manager{
		source: source,
		log:    log.With().Str("component", "live").Logger(),
	}
}

// Subscribe delivers an immediate snapshot and then a fresh full
// snapshot after every change in the collection. The filter is applied
// at snapshot time, so changes that remove a document from the matching
// set still produce a delivery.
func (m *Manager) Subscribe(ctx context.Context, collection string, filter Filter, cb Callback) (CancelFunc, error) {
	ctx, cancel := context.WithCancel(ctx)

	signals, err := m.source.Watch(ctx, collection)
	if err != nil {
		cancel()
		m.log.Error().Err(err).Str("collection", collection).Msg("watch failed")
		return nil, err
	}

	m.mu.Lock()
	m.active++
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			m.mu.Lock()
			m.active--
			m.mu.Unlock()
		}()

		m.deliver(ctx, collection, filter, cb)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					m.log.Warn().Str("collection", collection).Msg("change stream closed")
					return
				}
				m.deliver(ctx, collection, filter, cb)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}, nil
}

// ActiveCount reports the number of live subscriptions.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Manager) deliver(ctx context.Context, collection string, filter Filter, cb Callback) {
	docs, err := m.source.Snapshot(ctx, collection, filter)
	if err != nil {
		if ctx.Err() == nil {
			m.log.Error().Err(err).Str("collection", collection).Msg("snapshot failed")
		}
		return
	}
	cb(docs)
}
