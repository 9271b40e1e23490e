// Package app connects UI shells to the interval machine and the settings store.
package app

import (
	"log/slog"

	"danaoverlay/internal/core/interval"
	"danaoverlay/internal/core/model"
)

// SettingsStore persists the full timer configuration.
//
//go:generate mockgen -source=controller.go -destination=mock_store_test.go -package=app
type SettingsStore interface {
	Save(config model.TimerConfig) error
}

// Controller forwards user input to the machine and writes every settings
// change through to the store. It must be used from the UI event thread.
type Controller struct {
	machine *interval.Machine
	store   SettingsStore
	config  model.TimerConfig
	logger  *slog.Logger

	configObservers []func(model.TimerConfig)

	// written holds configs handed to the store since the last external
	// change was adopted. A reload matching one of them is an echo of an
	// earlier write that landed after a newer in-memory change.
	written []model.TimerConfig
}

const maxWrittenConfigs = 64

// NewController creates a controller for a loaded configuration.
func NewController(config model.TimerConfig, scheduler interval.Scheduler, store SettingsStore) *Controller {
	if config.Intervals.Validate() != nil {
		config.Intervals = model.DefaultIntervals()
	}
	if !model.ValidScale(config.ScaleFactor) {
		config.ScaleFactor = model.DefaultScaleFactor
	}
	machine := interval.New(config.Intervals, scheduler)
	machine.SetLogger(slog.Default().With("component", "interval"))
	return &Controller{
		machine: machine,
		store:   store,
		config:  config.Clone(),
		logger:  slog.Default(),
	}
}

// Observe registers a snapshot callback.
func (controller *Controller) Observe(observer func(interval.Snapshot)) {
	controller.machine.Observe(observer)
}

// ObserveConfig registers a callback invoked after every settings change.
func (controller *Controller) ObserveConfig(observer func(model.TimerConfig)) {
	controller.configObservers = append(controller.configObservers, observer)
}

// Snapshot returns the current display state.
func (controller *Controller) Snapshot() interval.Snapshot {
	return controller.machine.Snapshot()
}

// Config returns a copy of the current settings.
func (controller *Controller) Config() model.TimerConfig {
	return controller.config.Clone()
}

// Start begins a fresh session.
func (controller *Controller) Start() {
	controller.machine.Start()
}

// Stop ends the session.
func (controller *Controller) Stop() {
	controller.machine.Stop()
}

// Toggle starts when not running and stops otherwise.
func (controller *Controller) Toggle() {
	if controller.machine.Snapshot().Phase.Running() {
		controller.Stop()
		return
	}
	controller.Start()
}

// SetWork changes the work duration.
func (controller *Controller) SetWork(seconds int) error {
	intervals := controller.config.Intervals
	intervals.WorkSeconds = seconds
	return controller.SetIntervals(intervals)
}

// SetPause changes the pause duration.
func (controller *Controller) SetPause(seconds int) error {
	intervals := controller.config.Intervals
	intervals.PauseSeconds = seconds
	return controller.SetIntervals(intervals)
}

// SetRounds changes the round count.
func (controller *Controller) SetRounds(rounds int) error {
	intervals := controller.config.Intervals
	intervals.TotalRounds = rounds
	return controller.SetIntervals(intervals)
}

// SetIntervals applies all three values at once. A rejected value leaves the
// configuration and the running session untouched.
func (controller *Controller) SetIntervals(intervals model.Intervals) error {
	if err := controller.machine.SetConfig(intervals.WorkSeconds, intervals.PauseSeconds, intervals.TotalRounds); err != nil {
		return err
	}
	controller.config.Intervals = intervals
	controller.persist()
	return nil
}

// Rescale steps the scale by wheel notches and returns the new factor.
func (controller *Controller) Rescale(notches int) float64 {
	scale := model.StepScale(controller.config.ScaleFactor, notches)
	if scale != controller.config.ScaleFactor {
		controller.config.ScaleFactor = scale
		controller.persist()
	}
	return scale
}

// Move records the window position.
func (controller *Controller) Move(position model.Position) {
	current := controller.config.WindowPosition
	if current != nil && *current == position {
		return
	}
	controller.config.WindowPosition = &position
	controller.persist()
}

// ApplyExternal adopts settings edited outside the program. Changed intervals
// go through SetConfig and therefore stop the session. Reloads of values this
// controller wrote itself are ignored, so a delayed write cannot roll back a
// newer change.
func (controller *Controller) ApplyExternal(config model.TimerConfig) {
	if config.Equal(controller.config) {
		return
	}
	if controller.wrote(config) {
		controller.logger.Debug("ignoring reload of an earlier write")
		return
	}
	if config.Intervals != controller.config.Intervals {
		err := controller.machine.SetConfig(config.WorkSeconds, config.PauseSeconds, config.TotalRounds)
		if err != nil {
			controller.logger.Warn("ignoring external intervals", "error", err)
		} else {
			controller.config.Intervals = config.Intervals
		}
	}
	if model.ValidScale(config.ScaleFactor) {
		controller.config.ScaleFactor = config.ScaleFactor
	}
	if config.WindowPosition != nil {
		position := *config.WindowPosition
		controller.config.WindowPosition = &position
	}
	controller.written = nil
	controller.logger.Info("settings reloaded from disk")
	controller.notifyConfig()
}

func (controller *Controller) wrote(config model.TimerConfig) bool {
	for _, written := range controller.written {
		if written.Equal(config) {
			return true
		}
	}
	return false
}

func (controller *Controller) persist() {
	controller.notifyConfig()
	if controller.store == nil {
		return
	}
	controller.written = append(controller.written, controller.config.Clone())
	if len(controller.written) > maxWrittenConfigs {
		controller.written = controller.written[len(controller.written)-maxWrittenConfigs:]
	}
	if err := controller.store.Save(controller.config.Clone()); err != nil {
		controller.logger.Warn("settings not saved", "error", err)
	}
}

func (controller *Controller) notifyConfig() {
	for _, observer := range controller.configObservers {
		observer(controller.config.Clone())
	}
}
