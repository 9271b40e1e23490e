package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"danaoverlay/internal/platform"
	"danaoverlay/internal/storage"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"
)

const (
	appName = "DanaOverlay"
	appID   = "com.danaoverlay.app"
	version = "0.3.0"
)

// CLI defines the process flags.
type CLI struct {
	Settings  string           `short:"s" help:"Settings file path (defaults to the user config directory)" type:"path"`
	Verbose   bool             `short:"v" help:"Enable debug logging"`
	Terminal  bool             `short:"t" help:"Run in the terminal instead of the overlay window"`
	Mute      bool             `help:"Disable the phase change chime"`
	SaveDelay time.Duration    `name:"save-delay" help:"Wait this long for further changes before writing settings" default:"0s"`
	Opacity   float64          `help:"Overlay background opacity from 0 to 1" default:"0.85"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`
}

// AfterApply sets up logging once flags are parsed. The terminal shell owns
// the screen, so its logs go to a file next to the settings when verbose and
// are dropped otherwise.
func (cli *CLI) AfterApply() error {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	var output io.Writer = os.Stderr
	if cli.Terminal {
		output = io.Discard
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})))
	return nil
}

func (cli *CLI) settingsPath() (string, error) {
	if cli.Settings != "" {
		return cli.Settings, nil
	}
	return storage.DefaultPath(appName)
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("danaoverlay"),
		kong.Description("Always-on-top work/pause interval timer."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	run(&cli)
}

func run(cli *CLI) {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		slog.Warn("not starting", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	path, err := cli.settingsPath()
	if err != nil {
		slog.Error("cannot resolve settings path", "error", err)
		return
	}
	if cli.Terminal && cli.Verbose {
		if closeLog := logToFile(filepath.Join(filepath.Dir(path), "terminal.log")); closeLog != nil {
			defer closeLog()
		}
	}

	store := storage.NewStore(path, platform.NewFileHider())
	config := store.Load()
	slog.Debug("settings loaded", "path", path, "work", config.WorkSeconds, "pause", config.PauseSeconds, "rounds", config.TotalRounds)

	clock := clockwork.NewRealClock()
	persister := storage.NewPersister(store, clock, cli.SaveDelay)
	defer persister.Close()

	if cli.Terminal {
		if err := runTerminal(cli, config, clock, persister); err != nil {
			slog.Error("terminal shell failed", "error", err)
		}
		return
	}
	runDesktop(cli, store, config, clock, persister)
}

func logToFile(path string) func() {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() {
		_ = file.Close()
	}
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
