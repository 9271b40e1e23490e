package tray

import (
	"danaoverlay/internal/core/interval"
	"danaoverlay/resources"

	"fyne.io/fyne/v2"
)

// Host is the part of desktop.App the tray uses.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart     func()
	OnStop      func()
	OnSetWork   func()
	OnSetPause  func()
	OnSetRounds func()
	// OnAutostart receives the requested login state and returns the state
	// actually in effect. Nil hides the menu entry.
	OnAutostart func(enable bool) bool
	OnQuit      func()
}

// Manager handles system tray state.
type Manager struct {
	host       Host
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	stopItem   *fyne.MenuItem
	autostart  *fyne.MenuItem
	hint       interval.ColorHint
	refresh    func()
}

// New installs the tray menu and icon.
func New(host Host, callbacks Callbacks) *Manager {
	manager := &Manager{host: host}

	action := func(handler func()) func() {
		return func() {
			if handler != nil {
				handler()
			}
		}
	}

	manager.statusItem = fyne.NewMenuItem("Idle", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", action(callbacks.OnStart))
	manager.stopItem = fyne.NewMenuItem("Stop", action(callbacks.OnStop))
	manager.stopItem.Disabled = true

	settings := fyne.NewMenuItem("Settings", nil)
	settings.ChildMenu = fyne.NewMenu("",
		fyne.NewMenuItem("Work Time...", action(callbacks.OnSetWork)),
		fyne.NewMenuItem("Pause Time...", action(callbacks.OnSetPause)),
		fyne.NewMenuItem("Total Rounds...", action(callbacks.OnSetRounds)),
	)

	items := []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.stopItem,
		settings,
	}
	if callbacks.OnAutostart != nil {
		manager.autostart = fyne.NewMenuItem("Launch at Login", nil)
		manager.autostart.Action = func() {
			manager.SetAutostart(callbacks.OnAutostart(!manager.autostart.Checked))
		}
		items = append(items, manager.autostart)
	}

	// Quit is flagged so the desktop driver does not append its own.
	quit := fyne.NewMenuItem("Quit", action(callbacks.OnQuit))
	quit.IsQuit = true

	items = append(items, fyne.NewMenuItemSeparator(), quit)
	manager.menu = fyne.NewMenu("DanaOverlay", items...)
	manager.refresh = manager.menu.Refresh
	host.SetSystemTrayMenu(manager.menu)
	manager.setIcon(interval.HintIdle)

	return manager
}

// SetStatus mirrors a snapshot in the menu and icon. The menu is rebuilt only
// when the phase or round changes, not on every tick.
func (manager *Manager) SetStatus(snapshot interval.Snapshot) {
	label := snapshot.StatusText()
	if snapshot.Phase == interval.PhaseIdle {
		label = "Idle"
	}

	running := snapshot.Phase.Running()
	if label != manager.statusItem.Label || running == manager.stopItem.Disabled {
		manager.statusItem.Label = label
		manager.startItem.Disabled = running
		manager.stopItem.Disabled = !running
		manager.refresh()
	}
	manager.setIcon(snapshot.Hint())
}

// SetAutostart updates the login checkmark.
func (manager *Manager) SetAutostart(enabled bool) {
	if manager.autostart == nil || manager.autostart.Checked == enabled {
		return
	}
	manager.autostart.Checked = enabled
	manager.refresh()
}

func (manager *Manager) setIcon(hint interval.ColorHint) {
	if hint == manager.hint {
		return
	}
	manager.hint = hint
	icon, err := resources.Icon(string(hint))
	if err != nil {
		return
	}
	manager.host.SetSystemTrayIcon(icon)
}
