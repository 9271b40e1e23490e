package app

import (
	"errors"
	"testing"

	"danaoverlay/internal/core/interval"
	"danaoverlay/internal/core/model"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type configMatch func(model.TimerConfig) bool

func (match configMatch) Matches(value interface{}) bool {
	config, ok := value.(model.TimerConfig)
	return ok && match(config)
}

func (configMatch) String() string {
	return "matches timer config"
}

func configMatcher(check func(model.TimerConfig) bool) gomock.Matcher {
	return configMatch(check)
}

func newTestController(t *testing.T) (*Controller, *MockSettingsStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := NewMockSettingsStore(ctrl)
	config := model.TimerConfig{
		Intervals:   model.Intervals{WorkSeconds: 3, PauseSeconds: 2, TotalRounds: 2},
		ScaleFactor: 1.0,
	}
	return NewController(config, nil, store), store
}

func TestToggleStartsAndStops(t *testing.T) {
	controller, _ := newTestController(t)

	controller.Toggle()
	assert.Equal(t, interval.PhaseWorking, controller.Snapshot().Phase)

	controller.Toggle()
	assert.Equal(t, interval.PhaseIdle, controller.Snapshot().Phase)
}

func TestToggleAfterCompletionRestarts(t *testing.T) {
	controller, _ := newTestController(t)
	controller.Start()
	for i := 0; i < 10; i++ {
		controller.machine.Tick()
	}
	require.Equal(t, interval.PhaseCompleted, controller.Snapshot().Phase)

	controller.Toggle()
	assert.Equal(t, interval.PhaseWorking, controller.Snapshot().Phase)
	assert.Equal(t, 1, controller.Snapshot().Round)
}

func TestSetWorkPersistsAndStops(t *testing.T) {
	controller, store := newTestController(t)
	controller.Start()

	store.EXPECT().Save(configMatcher(func(config model.TimerConfig) bool {
		return config.WorkSeconds == 1500 && config.PauseSeconds == 2 && config.TotalRounds == 2
	})).Return(nil)

	require.NoError(t, controller.SetWork(1500))
	assert.Equal(t, interval.PhaseIdle, controller.Snapshot().Phase)
	assert.Equal(t, 1500, controller.Config().WorkSeconds)
}

func TestSetPauseAndRoundsPersist(t *testing.T) {
	controller, store := newTestController(t)

	gomock.InOrder(
		store.EXPECT().Save(configMatcher(func(config model.TimerConfig) bool {
			return config.PauseSeconds == 600
		})).Return(nil),
		store.EXPECT().Save(configMatcher(func(config model.TimerConfig) bool {
			return config.PauseSeconds == 600 && config.TotalRounds == 8
		})).Return(nil),
	)

	require.NoError(t, controller.SetPause(600))
	require.NoError(t, controller.SetRounds(8))
	assert.Equal(t, 8, controller.Snapshot().TotalRounds)
}

func TestRejectedConfigIsNotPersisted(t *testing.T) {
	controller, store := newTestController(t)
	controller.Start()
	store.EXPECT().Save(gomock.Any()).Times(0)

	err := controller.SetRounds(0)
	require.ErrorIs(t, err, model.ErrInvalidConfig)
	assert.Equal(t, 2, controller.Config().TotalRounds)
	assert.Equal(t, interval.PhaseWorking, controller.Snapshot().Phase)

	assert.ErrorIs(t, controller.SetWork(-1), model.ErrInvalidConfig)
}

func TestSaveFailureDoesNotInterruptSession(t *testing.T) {
	controller, store := newTestController(t)
	controller.Start()
	store.EXPECT().Save(gomock.Any()).Return(errors.New("read-only file system"))

	scale := controller.Rescale(2)
	assert.Equal(t, 1.2, scale)
	assert.Equal(t, interval.PhaseWorking, controller.Snapshot().Phase)
	assert.Equal(t, 1.2, controller.Config().ScaleFactor)
}

func TestRescaleClampsAndSkipsNoopWrites(t *testing.T) {
	controller, store := newTestController(t)
	store.EXPECT().Save(configMatcher(func(config model.TimerConfig) bool {
		return config.ScaleFactor == model.MaxScaleFactor
	})).Return(nil).Times(1)

	assert.Equal(t, model.MaxScaleFactor, controller.Rescale(50))
	assert.Equal(t, model.MaxScaleFactor, controller.Rescale(1))
}

func TestMovePersistsPosition(t *testing.T) {
	controller, store := newTestController(t)
	gomock.InOrder(
		store.EXPECT().Save(configMatcher(func(config model.TimerConfig) bool {
			return config.WindowPosition != nil && *config.WindowPosition == model.Position{X: 10, Y: 20}
		})).Return(nil),
		store.EXPECT().Save(configMatcher(func(config model.TimerConfig) bool {
			return config.WindowPosition != nil && *config.WindowPosition == model.Position{X: 15, Y: 20}
		})).Return(nil),
	)

	controller.Move(model.Position{X: 10, Y: 20})
	controller.Move(model.Position{X: 10, Y: 20})
	controller.Move(model.Position{X: 15, Y: 20})

	config := controller.Config()
	config.WindowPosition.X = 0
	assert.Equal(t, 15, controller.Config().WindowPosition.X, "Config must return a copy")
}

func TestApplyExternalIgnoresOwnWrites(t *testing.T) {
	controller, _ := newTestController(t)
	controller.Start()

	var notified int
	controller.ObserveConfig(func(model.TimerConfig) { notified++ })
	controller.ApplyExternal(controller.Config())

	assert.Zero(t, notified)
	assert.Equal(t, interval.PhaseWorking, controller.Snapshot().Phase)
}

func TestApplyExternalIgnoresEarlierOwnWrites(t *testing.T) {
	controller, store := newTestController(t)
	store.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

	controller.Rescale(1)
	stale := controller.Config()
	controller.Rescale(1)

	controller.ApplyExternal(stale)
	assert.Equal(t, 1.2, controller.Config().ScaleFactor)

	external := controller.Config()
	external.ScaleFactor = 2.0
	controller.ApplyExternal(external)
	require.Equal(t, 2.0, controller.Config().ScaleFactor)

	controller.ApplyExternal(stale)
	assert.Equal(t, 1.1, controller.Config().ScaleFactor, "after an adopted edit, older values are real edits again")
}

func TestApplyExternalChangesIntervalsAndScale(t *testing.T) {
	controller, _ := newTestController(t)
	controller.Start()

	var seen model.TimerConfig
	controller.ObserveConfig(func(config model.TimerConfig) { seen = config })

	external := model.TimerConfig{
		Intervals:      model.Intervals{WorkSeconds: 90, PauseSeconds: 30, TotalRounds: 3},
		ScaleFactor:    2.0,
		WindowPosition: &model.Position{X: 5, Y: 6},
	}
	controller.ApplyExternal(external)

	assert.Equal(t, interval.PhaseIdle, controller.Snapshot().Phase)
	assert.True(t, external.Equal(controller.Config()))
	assert.True(t, external.Equal(seen))
}

func TestApplyExternalScaleOnlyKeepsSession(t *testing.T) {
	controller, _ := newTestController(t)
	controller.Start()

	external := controller.Config()
	external.ScaleFactor = 0.5
	controller.ApplyExternal(external)

	assert.Equal(t, interval.PhaseWorking, controller.Snapshot().Phase)
	assert.Equal(t, 0.5, controller.Config().ScaleFactor)
}

func TestNewControllerRepairsInvalidConfig(t *testing.T) {
	controller := NewController(model.TimerConfig{ScaleFactor: 12}, nil, nil)
	config := controller.Config()
	assert.Equal(t, model.DefaultIntervals(), config.Intervals)
	assert.Equal(t, model.DefaultScaleFactor, config.ScaleFactor)

	controller.Move(model.Position{X: 1, Y: 1})
	assert.Equal(t, 1, controller.Config().WindowPosition.X)
}
