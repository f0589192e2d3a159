package session

import "github.com/misterclayt0n/mapty/internal/models"

// Presenter renders what the controller decides. It plays the role of the
// map and the sidebar list.
type Presenter interface {
	MapReady(center models.Coordinates)
	LocationUnavailable(err error)
	WorkoutsLoaded(workouts []models.Workout)

	ShowForm(at models.Coordinates)
	ClearFields()
	ToggleFields(kind models.Kind)
	HideForm()

	WorkoutAdded(w models.Workout)
	ValidationFailed(err error)
	FocusWorkout(w models.Workout)
	SessionReset()

	Warn(err error)
}

// NopPresenter ignores every event.
type NopPresenter struct{}

func (NopPresenter) MapReady(models.Coordinates) {}
func (NopPresenter) LocationUnavailable(error) {}
func (NopPresenter) WorkoutsLoaded([]models.Workout) {}
func (NopPresenter) ShowForm(models.Coordinates) {}
func (NopPresenter) ClearFields() {}
func (NopPresenter) ToggleFields(models.Kind) {}
func (NopPresenter) HideForm() {}
func (NopPresenter) WorkoutAdded(models.Workout) {}
func (NopPresenter) ValidationFailed(error) {}
func (NopPresenter) FocusWorkout(models.Workout) {}
func (NopPresenter) SessionReset() {}
func (NopPresenter) Warn(error) {}
