package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/misterclayt0n/mapty/internal/storage"
)

type job struct {
	seq    uint64
	value  []byte
	remove bool
}

// writer applies store writes on its own goroutine so commands never wait
// on the store. Every write replaces the whole slot, so a write still
// waiting when a newer one arrives is dropped in favor of the newer one.
// Failures come back on errs.
type writer struct {
	ctx    context.Context
	store  storage.Store
	key    string
	logger *slog.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	next    *job   // Newest write not yet picked up.
	queued  uint64 // Sequence of the last accepted write.
	applied uint64 // Sequence of the last finished write.
	closed  bool

	errs chan error
	quit chan struct{}
}

func newWriter(ctx context.Context, store storage.Store, key string, logger *slog.Logger) *writer {
	w := &writer{
		ctx:    ctx,
		store:  store,
		key:    key,
		logger: logger,
		errs:   make(chan error, 64),
		quit:   make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *writer) run() {
	defer close(w.quit)
	for {
		w.mu.Lock()
		for w.next == nil && !w.closed {
			w.cond.Wait()
		}
		j := w.next
		w.next = nil
		w.mu.Unlock()

		if j == nil {
			return
		}
		w.apply(j)

		w.mu.Lock()
		w.applied = j.seq
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

func (w *writer) apply(j *job) {
	var err error
	if j.remove {
		err = w.store.Remove(w.ctx, w.key)
	} else {
		err = w.store.Set(w.ctx, w.key, j.value)
	}

	if err != nil {
		w.logger.Error("store write failed", "key", w.key, "remove", j.remove, "error", err)
		select {
		case w.errs <- err:
		default:
			w.logger.Warn("dropping store error, queue full", "error", err)
		}
		return
	}
	w.logger.Debug("store write done", "key", w.key, "remove", j.remove, "bytes", len(j.value))
}

func (w *writer) set(value []byte) { w.enqueue(job{value: value}) }

func (w *writer) remove() { w.enqueue(job{remove: true}) }

func (w *writer) enqueue(j job) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		w.logger.Warn("writer closed, dropping store write", "key", w.key, "remove", j.remove)
		return
	}
	if w.next != nil {
		w.logger.Debug("replacing pending store write", "key", w.key, "seq", w.next.seq)
	}

	w.queued++
	j.seq = w.queued
	w.next = &j
	w.cond.Broadcast()
}

// flush blocks until every write accepted before it has been applied or
// replaced by a newer one that has.
func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	target := w.queued
	for w.applied < target {
		w.cond.Wait()
	}
}

// close applies the pending write, if any, and stops the goroutine. It is
// safe to call more than once.
func (w *writer) close() {
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
	<-w.quit
}

// failures drains reported errors without blocking.
func (w *writer) failures() []error {
	var out []error
	for {
		select {
		case err := <-w.errs:
			out = append(out, err)
		default:
			return out
		}
	}
}
