package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	timerapp "danaoverlay/internal/app"
	"danaoverlay/internal/core/interval"
	"danaoverlay/internal/core/model"
	"danaoverlay/internal/platform"
	"danaoverlay/internal/storage"
	"danaoverlay/internal/ui/overlay"
	"danaoverlay/internal/ui/preferences"
	"danaoverlay/internal/ui/sound"
	"danaoverlay/internal/ui/tray"
	"danaoverlay/resources"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/jonboulle/clockwork"
)

func runDesktop(cli *CLI, store *storage.Store, config model.TimerConfig, clock clockwork.Clock, persister *storage.Persister) {
	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconIdle))

	controller := timerapp.NewController(config, interval.NewClockScheduler(clock, fyne.Do), persister)
	fyneApp.Lifecycle().SetOnStopped(controller.Stop)

	prefsWindow := preferences.New(fyneApp, func(field preferences.Field, value int) error {
		switch field {
		case preferences.FieldWork:
			return controller.SetWork(value)
		case preferences.FieldPause:
			return controller.SetPause(value)
		default:
			return controller.SetRounds(value)
		}
	})
	edit := func(field preferences.Field) func() {
		return func() {
			prefsWindow.Edit(field, controller.Config().Intervals)
		}
	}

	overlayWindow := overlay.New(fyneApp, controller, overlay.Config{
		Scale:    config.ScaleFactor,
		Opacity:  opacityToAlpha(cli.Opacity),
		Position: config.WindowPosition,
	}, overlay.Callbacks{
		OnSetWork:   edit(preferences.FieldWork),
		OnSetPause:  edit(preferences.FieldPause),
		OnSetRounds: edit(preferences.FieldRounds),
		OnExit:      fyneApp.Quit,
	})
	controller.Observe(overlayWindow.Render)
	controller.ObserveConfig(func(updated model.TimerConfig) {
		overlayWindow.SetScale(updated.ScaleFactor)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		toggleAutostart, autostartOn := autostartToggle()
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnStart:     controller.Start,
			OnStop:      controller.Stop,
			OnSetWork:   edit(preferences.FieldWork),
			OnSetPause:  edit(preferences.FieldPause),
			OnSetRounds: edit(preferences.FieldRounds),
			OnAutostart: toggleAutostart,
			OnQuit:      fyneApp.Quit,
		})
		controller.Observe(trayManager.SetStatus)
		trayManager.SetAutostart(autostartOn)
	} else {
		slog.Info("system tray unsupported on this platform")
	}

	if notifier := newNotifier(cli.Mute); notifier != nil {
		controller.Observe(notifier.Observe)
	}

	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		slog.Warn("settings directory unavailable", "error", err)
	}
	watcher, err := storage.NewWatcher(store, clock, func(reloaded model.TimerConfig) {
		fyne.Do(func() {
			controller.ApplyExternal(reloaded)
		})
	})
	if err != nil {
		slog.Warn("settings will not be reloaded on external edits", "error", err)
	} else {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := watcher.Start(ctx); err != nil {
			slog.Warn("settings watcher not started", "error", err)
		}
		defer func() {
			_ = watcher.Stop()
		}()
	}

	overlayWindow.Render(controller.Snapshot())
	overlayWindow.Show()
	fyneApp.Run()
}

func autostartToggle() (func(bool) bool, bool) {
	autostart, err := platform.NewAutostart(appName)
	if err != nil {
		slog.Debug("launch at login unavailable", "error", err)
		return nil, false
	}
	toggle := func(enable bool) bool {
		if err := autostart.Set(enable); err != nil {
			slog.Warn("launch at login not changed", "error", err)
		}
		return autostart.Enabled()
	}
	return toggle, autostart.Enabled()
}

func newNotifier(mute bool) *sound.Notifier {
	if mute {
		return nil
	}
	player := sound.NewPlayer(0)
	if err := player.Init(); err != nil {
		slog.Warn("sound disabled", "error", err)
		return nil
	}
	return sound.NewNotifier(player)
}
