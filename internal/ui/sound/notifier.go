package sound

import "danaoverlay/internal/core/interval"

// Sink plays effects.
type Sink interface {
	Play(effect Effect)
}

// Notifier turns snapshots into chimes on phase changes.
type Notifier struct {
	sink  Sink
	phase interval.Phase
}

// NewNotifier creates a notifier that starts in the idle phase.
func NewNotifier(sink Sink) *Notifier {
	return &Notifier{sink: sink, phase: interval.PhaseIdle}
}

// Observe is registered with the controller as a snapshot observer.
func (notifier *Notifier) Observe(snapshot interval.Snapshot) {
	if snapshot.Phase == notifier.phase {
		return
	}
	notifier.phase = snapshot.Phase
	if notifier.sink == nil {
		return
	}

	switch snapshot.Phase {
	case interval.PhaseWorking:
		notifier.sink.Play(EffectWork)
	case interval.PhasePausing:
		notifier.sink.Play(EffectPause)
	case interval.PhaseCompleted:
		notifier.sink.Play(EffectComplete)
	}
}
