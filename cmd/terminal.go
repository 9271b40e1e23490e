package main

import (
	timerapp "danaoverlay/internal/app"
	"danaoverlay/internal/core/interval"
	"danaoverlay/internal/core/model"
	"danaoverlay/internal/storage"
	"danaoverlay/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

func runTerminal(cli *CLI, config model.TimerConfig, clock clockwork.Clock, persister *storage.Persister) error {
	var program *tea.Program
	dispatch := func(fn func()) {
		program.Send(terminal.Dispatch(fn))
	}

	controller := timerapp.NewController(config, interval.NewClockScheduler(clock, dispatch), persister)
	defer controller.Stop()
	if notifier := newNotifier(cli.Mute); notifier != nil {
		controller.Observe(notifier.Observe)
	}

	program = tea.NewProgram(terminal.NewModel(controller, controller.Config().ScaleFactor), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
