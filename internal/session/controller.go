// Package session owns the workout collection and the interaction state
// machine that turns a picked location and a submitted form into a
// persisted workout.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/geo"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/storage"
)

type State int

const (
	StateIdle State = iota
	StateAwaitingInput
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingInput:
		return "awaiting-input"
	}
	return "unknown"
}

type Option func(*Controller)

// WithKey names the store slot holding the collection.
func WithKey(key string) Option {
	return func(c *Controller) { c.key = key }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithLocator(l geo.Locator) Option {
	return func(c *Controller) { c.locator = l }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithContext sets the context background writes run under.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) { c.ctx = ctx }
}

// Controller processes one command at a time. It is not safe for
// concurrent use; store writes happen on a background goroutine.
type Controller struct {
	store     storage.Store
	presenter Presenter
	locator   geo.Locator
	key       string
	now       func() time.Time
	logger    *slog.Logger
	ctx       context.Context
	writer    *writer

	state      State
	anchor     models.Coordinates
	kind       models.Kind // Form type, kept across submits.
	draft      Form
	workouts   []models.Workout
	memoryOnly bool
	readFailed bool // Stored slot couldn't be read; don't overwrite it.
	closed     bool
}

func New(store storage.Store, presenter Presenter, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		presenter: presenter,
		key:       config.DefaultKey,
		now:       time.Now,
		logger:    slog.Default(),
		ctx:       context.Background(),
		kind:      models.KindRunning,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.presenter == nil {
		c.presenter = NopPresenter{}
	}
	c.writer = newWriter(c.ctx, c.store, c.key, c.logger)
	return c
}

// Start loads the saved collection, asks the locator once for the current
// position and hands the collection to the presenter for the first render.
func (c *Controller) Start(ctx context.Context) {
	c.Load(ctx)

	if c.locator != nil {
		center, err := c.locator.Locate(ctx)
		if err != nil {
			c.logger.Info("current position unavailable", "error", err)
			c.presenter.LocationUnavailable(err)
		} else {
			c.presenter.MapReady(center)
		}
	}

	c.presenter.WorkoutsLoaded(c.Workouts())
}

// Load replaces the collection with the stored one. An absent slot is a
// normal first run; an unreadable one is reported and the session starts
// empty without saving, so the stored workouts survive until a later Load
// succeeds.
func (c *Controller) Load(ctx context.Context) {
	c.writer.flush()
	c.reportWriteFailures()
	c.workouts = nil
	c.readFailed = false

	data, err := c.store.Get(ctx, c.key)
	if errors.Is(err, storage.ErrNotFound) {
		c.logger.Debug("no saved workouts", "key", c.key)
		return
	}
	if err != nil {
		c.logger.Warn("saved workouts unreadable, not saving this session", "key", c.key, "error", err)
		c.readFailed = true
		c.presenter.Warn(&PersistenceError{Op: ReadFailed, Err: err})
		return
	}

	workouts, err := Decode(data)
	if err != nil {
		c.presenter.Warn(&PersistenceError{Op: Corrupt, Err: err})
		return
	}

	c.workouts = workouts
	c.logger.Debug("loaded workouts", "key", c.key, "count", len(workouts))
}

// Save hands the whole collection to the background writer.
func (c *Controller) Save() {
	c.reportWriteFailures()
	if c.MemoryOnly() {
		c.logger.Debug("memory-only session, skipping save")
		return
	}

	data, err := Encode(c.workouts)
	if err != nil {
		c.failWrites(err)
		return
	}
	c.writer.set(data)
}

// OnLocationPicked anchors the next workout at coords and opens an empty form.
func (c *Controller) OnLocationPicked(coords models.Coordinates) {
	c.reportWriteFailures()

	c.state = StateAwaitingInput
	c.anchor = coords
	c.draft = Form{Kind: string(c.kind)}

	c.presenter.ShowForm(coords)
	c.presenter.ClearFields()
}

// OnKindChanged swaps the kind-specific field while the form is open.
func (c *Controller) OnKindChanged(kind models.Kind) {
	c.reportWriteFailures()
	if c.state != StateAwaitingInput {
		return
	}

	c.kind = kind
	c.draft.Kind = string(kind)
	c.presenter.ToggleFields(kind)
}

// OnInteractionCancelled drops the pending location and anything typed.
func (c *Controller) OnInteractionCancelled() {
	c.reportWriteFailures()
	if c.state != StateAwaitingInput {
		return
	}

	c.state = StateIdle
	c.anchor = models.Coordinates{}
	c.draft = Form{}
	c.presenter.HideForm()
}

// OnFormSubmitted validates the raw form and, on success, commits a new
// workout at the pending location. On failure the state, the pending
// location and the typed values are kept so the user can correct them.
func (c *Controller) OnFormSubmitted(f Form) (models.Workout, error) {
	c.reportWriteFailures()
	if c.state != StateAwaitingInput {
		return models.Workout{}, ErrNoPendingLocation
	}

	c.draft = f
	in, err := f.validate()
	if err != nil {
		c.presenter.ValidationFailed(err)
		return models.Workout{}, err
	}

	w := in.build(c.anchor, c.now())
	c.workouts = append(c.workouts, w)
	c.Save()

	c.state = StateIdle
	c.anchor = models.Coordinates{}
	c.kind = in.kind
	c.draft = Form{}

	c.logger.Info("workout added", "id", w.ID, "kind", w.Kind, "distance_km", w.DistanceKm)
	c.presenter.HideForm()
	c.presenter.WorkoutAdded(w)
	return w, nil
}

// OnWorkoutSelected focuses the workout with id. Unknown ids are ignored:
// they can only come from stale rendered output.
func (c *Controller) OnWorkoutSelected(id string) bool {
	c.reportWriteFailures()

	for i := range c.workouts {
		if c.workouts[i].ID == id {
			c.workouts[i].Click()
			c.presenter.FocusWorkout(c.workouts[i])
			return true
		}
	}

	c.logger.Debug("selected unknown workout", "id", id)
	return false
}

// OnResetRequested forgets every workout and erases the stored slot.
func (c *Controller) OnResetRequested() {
	c.reportWriteFailures()

	c.workouts = nil
	c.state = StateIdle
	c.anchor = models.Coordinates{}
	c.draft = Form{}
	c.readFailed = false
	c.writer.remove()

	c.logger.Info("session reset", "key", c.key)
	c.presenter.SessionReset()
}

func (c *Controller) State() State { return c.state }

// Pending returns the picked location waiting for a form, if any.
func (c *Controller) Pending() (models.Coordinates, bool) {
	return c.anchor, c.state == StateAwaitingInput
}

// Draft returns the raw values last typed into the open form.
func (c *Controller) Draft() Form { return c.draft }

// Workouts returns a copy of the collection in creation order.
func (c *Controller) Workouts() []models.Workout {
	out := make([]models.Workout, len(c.workouts))
	copy(out, c.workouts)
	return out
}

func (c *Controller) Find(id string) (models.Workout, bool) {
	for _, w := range c.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return models.Workout{}, false
}

// MemoryOnly reports whether saving was given up after a write failure or
// an unreadable slot.
func (c *Controller) MemoryOnly() bool { return c.memoryOnly || c.readFailed }

// Flush waits for queued writes and reports any that failed.
func (c *Controller) Flush() {
	c.writer.flush()
	c.reportWriteFailures()
}

// Close flushes and stops the background writer. Later writes are dropped.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.writer.close()
	c.reportWriteFailures()
}

func (c *Controller) reportWriteFailures() {
	for _, err := range c.writer.failures() {
		c.failWrites(err)
	}
}

func (c *Controller) failWrites(err error) {
	if !c.memoryOnly {
		c.logger.Warn("switching to memory-only mode", "error", err)
	}
	c.memoryOnly = true
	c.presenter.Warn(&PersistenceError{Op: WriteFailed, Err: err})
}
