package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/jimkro/TYPE-100/internal/rng"
	"github.com/jimkro/TYPE-100/internal/weapon"
	"github.com/jimkro/TYPE-100/internal/words"
)

// Environment variable names.
const (
	EnvSeed     = "TYPE100_SEED"
	EnvSound    = "TYPE100_SOUND"
	EnvCheats   = "TYPE100_CHEATS"
	EnvColor    = "TYPE100_COLOR"
	EnvStages   = "TYPE100_STAGES"
	EnvWords    = "TYPE100_WORDS"
	EnvWeapons  = "TYPE100_WEAPONS"
	EnvLogLevel = "TYPE100_LOG_LEVEL"
)

// Game holds the settings shared by every front-end.
type Game struct {
	Seed     int64 // zero means seed from the clock
	Sound    bool
	Cheats   bool
	Color    string
	LogLevel string

	Stages  *words.Table
	Words   *words.WordList
	Weapons *weapon.DB
}

// LoadGame reads game settings and data files. Data paths that are unset
// fall back to the embedded defaults.
func LoadGame() (*Game, error) {
	g := &Game{
		Seed:     GetEnvInt(EnvSeed, 0),
		Sound:    GetEnvBool(EnvSound, false),
		Cheats:   GetEnvBool(EnvCheats, false),
		Color:    GetEnv(EnvColor, ""),
		LogLevel: GetEnv(EnvLogLevel, "info"),
		Stages:   words.DefaultStages(),
		Words:    words.DefaultWordList(),
		Weapons:  weapon.DefaultDB(),
	}

	var err error
	if path := GetEnv(EnvStages, ""); path != "" {
		if g.Stages, err = words.LoadStages(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", EnvStages, err)
		}
	}
	if path := GetEnv(EnvWords, ""); path != "" {
		if g.Words, err = words.LoadWordList(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", EnvWords, err)
		}
	}
	if path := GetEnv(EnvWeapons, ""); path != "" {
		if g.Weapons, err = weapon.LoadDB(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", EnvWeapons, err)
		}
	}
	return g, nil
}

// Source returns a random source for one run together with its seed. A
// fixed Seed makes every run identical; otherwise each call seeds from
// the clock.
func (g *Game) Source() (rng.Source, int64) {
	if g.Seed != 0 {
		return rng.New(g.Seed), g.Seed
	}
	return rng.NewTimeSeeded()
}

// ColorProfile maps a TYPE100_COLOR value to a termenv profile. Empty or
// unknown values yield fallback.
func ColorProfile(name string, fallback termenv.Profile) termenv.Profile {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "256", "ansi256":
		return termenv.ANSI256
	case "ansi", "16":
		return termenv.ANSI
	case "none", "ascii", "mono":
		return termenv.Ascii
	default:
		return fallback
	}
}

// NewLogger creates the process logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
