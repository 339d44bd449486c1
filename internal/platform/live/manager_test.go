package live

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeSource struct {
	mu        sync.Mutex
	docs      []Document
	snapErr   error
	watchErr  error
	signals   chan struct{}
	snapshots int
}

func newFakeSource(docs ...Document) *fakeSource {
	return &fakeSource{docs: docs, signals: make(chan struct{}, 8)}
}

func (f *fakeSource) Snapshot(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots++
	if f.snapErr != nil {
		return nil, f.snapErr
	}
	out := make([]Document, 0, len(f.docs))
	for _, d := range f.docs {
		match := true
		for k, v := range filter {
			if d[k] != v {
				match = false
				break
			}
		}
		if match {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeSource) Watch(ctx context.Context, collection string) (<-chan struct{}, error) {
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	return f.signals, nil
}

func (f *fakeSource) setDocs(docs ...Document) {
	f.mu.Lock()
	f.docs = docs
	f.mu.Unlock()
}

func (f *fakeSource) change() {
	f.signals <- struct{}{}
}

func collect(t *testing.T) (Callback, func() [][]Document) {
	t.Helper()
	var mu sync.Mutex
	var got [][]Document
	cb := func(docs []Document) {
		mu.Lock()
		got = append(got, docs)
		mu.Unlock()
	}
	return cb, func() [][]Document {
		mu.Lock()
		defer mu.Unlock()
		out := make([][]Document, len(got))
		copy(out, got)
		return out
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSubscribeInitialSnapshot(t *testing.T) {
	source := newFakeSource(Document{"id": "1", "name": "Ada"})
	m := NewManager(source, zerolog.Nop())

	cb, got := collect(t)
	cancel, err := m.Subscribe(context.Background(), "patients", nil, cb)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	defer cancel()

	waitFor(t, func() bool { return len(got()) == 1 })
	if docs := got()[0]; len(docs) != 1 || docs[0]["name"] != "Ada" {
		t.Errorf("unexpected initial snapshot %v", docs)
	}
}

func TestSubscribeRedeliversOnChange(t *testing.T) {
	source := newFakeSource(Document{"id": "1"})
	m := NewManager(source, zerolog.Nop())

	cb, got := collect(t)
	cancel, err := m.Subscribe(context.Background(), "patients", nil, cb)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	defer cancel()

	waitFor(t, func() bool { return len(got()) == 1 })

	source.setDocs(Document{"id": "1"}, Document{"id": "2"})
	source.change()

	waitFor(t, func() bool { return len(got()) == 2 })
	if docs := got()[1]; len(docs) != 2 {
		t.Errorf("expected 2 docs after change, got %d", len(docs))
	}
}

func TestSubscribeFilterAppliedAtSnapshot(t *testing.T) {
	source := newFakeSource(
		Document{"id": "1", "patientId": "p1"},
		Document{"id": "2", "patientId": "p2"},
	)
	m := NewManager(source, zerolog.Nop())

	cb, got := collect(t)
	cancel, err := m.Subscribe(context.Background(), "appointments", Filter{"patientId": "p1"}, cb)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	defer cancel()

	waitFor(t, func() bool { return len(got()) == 1 })
	if docs := got()[0]; len(docs) != 1 || docs[0]["id"] != "1" {
		t.Errorf("unexpected filtered snapshot %v", docs)
	}

	// Removing the matching document still produces a delivery, now empty.
	source.setDocs(Document{"id": "2", "patientId": "p2"})
	source.change()

	waitFor(t, func() bool { return len(got()) == 2 })
	if docs := got()[1]; len(docs) != 0 {
		t.Errorf("expected empty snapshot after removal, got %v", docs)
	}
}

func TestCancelStopsDeliveries(t *testing.T) {
	source := newFakeSource(Document{"id": "1"})
	m := NewManager(source, zerolog.Nop())

	cb, got := collect(t)
	cancel, err := m.Subscribe(context.Background(), "patients", nil, cb)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	waitFor(t, func() bool { return len(got()) == 1 })
	cancel()
	cancel() // safe twice

	if m.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d after cancel", m.ActiveCount())
	}

	before := len(got())
	source.change()
	time.Sleep(50 * time.Millisecond)
	if len(got()) != before {
		t.Error("callback ran after cancel")
	}
}

func TestSubscribeWatchError(t *testing.T) {
	source := newFakeSource()
	source.watchErr = errors.New("stream unavailable")
	m := NewManager(source, zerolog.Nop())

	cb, _ := collect(t)
	if _, err := m.Subscribe(context.Background(), "patients", nil, cb); err == nil {
		t.Fatal("expected watch error")
	}
}

func TestSnapshotErrorSkipsDelivery(t *testing.T) {
	source := newFakeSource(Document{"id": "1"})
	m := NewManager(source, zerolog.Nop())

	cb, got := collect(t)
	cancel, err := m.Subscribe(context.Background(), "patients", nil, cb)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	defer cancel()

	waitFor(t, func() bool { return len(got()) == 1 })

	source.mu.Lock()
	source.snapErr = errors.New("query failed")
	source.mu.Unlock()
	source.change()

	waitFor(t, func() bool {
		source.mu.Lock()
		defer source.mu.Unlock()
		return source.snapshots >= 2
	})
	if len(got()) != 1 {
		t.Errorf("failed snapshot should not reach subscriber, got %d deliveries", len(got()))
	}
}
