package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jimkro/TYPE-100/internal/config"
	"github.com/jimkro/TYPE-100/internal/game"
	"github.com/jimkro/TYPE-100/internal/loop"
	"github.com/jimkro/TYPE-100/internal/sfx"
	"github.com/jimkro/TYPE-100/internal/sfx/audio"
)

const soundVolume = 0.5

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadGame()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("TYPE100_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, settings.LogLevel, "type100")

	src, seed := settings.Source()
	logger.Info("starting", "seed", seed, "sound", settings.Sound, "cheats", settings.Cheats)

	var sink sfx.Sink = sfx.Nop{}
	if settings.Sound {
		player := audio.NewPlayer(logger, soundVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			sink = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, loop.Options{
		Logger: logger,
		Sink:   sink,
		Cheats: settings.Cheats,
		Game: game.Options{
			Source:  src,
			Stages:  settings.Stages,
			Words:   settings.Words,
			Weapons: settings.Weapons,
		},
		ColorProfile: config.ColorProfile(settings.Color, termenv.EnvColorProfile()),
	})
}
