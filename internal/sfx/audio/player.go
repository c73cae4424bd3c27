// Package audio plays game events through the local sound device:
// synthesized kill and hit tones plus a looping bass line that follows
// the music events.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/jimkro/TYPE-100/internal/game"
	"github.com/jimkro/TYPE-100/internal/sfx"
	"github.com/jimkro/TYPE-100/internal/weapon"
)

const sampleRate = beep.SampleRate(44100)

// Kill and hit tones.
var (
	gunTone = Tone{
		Wave: Square, Duration: 100 * time.Millisecond,
		FromHz: 800, ToHz: 100, FreqRamp: Exponential,
		FromGain: 0.2, ToGain: 0.01, GainRamp: Exponential,
	}
	bowTone = Tone{
		Wave: Triangle, Duration: 200 * time.Millisecond, Sweep: 150 * time.Millisecond,
		FromHz: 600, ToHz: 200, FreqRamp: Linear,
		FromGain: 0.3, ToGain: 0.01, GainRamp: Exponential,
	}
	blastTone = Tone{
		Wave: Sawtooth, Duration: 300 * time.Millisecond,
		FromHz: 100, ToHz: 10, FreqRamp: Exponential,
		FromGain: 0.4, ToGain: 0.01, GainRamp: Exponential,
	}
	hitTone = Tone{
		Wave: Sawtooth, Duration: 200 * time.Millisecond,
		FromHz: 150, ToHz: 50, FreqRamp: Linear,
		FromGain: 0.3, ToGain: 0.01, GainRamp: Linear,
	}
)

// Background tracks.
var (
	normalLine = BassLine{
		Wave: Square, Notes: []float64{110, 110, 146, 130},
		Beat: 600 * time.Millisecond, Length: 300 * time.Millisecond, Gain: 0.1,
	}
	bossLine = BassLine{
		Wave: Sawtooth, Notes: []float64{150, 210, 150, 220},
		Beat: 333 * time.Millisecond, Length: 150 * time.Millisecond, Gain: 0.15,
	}
)

// KillTone returns the tone played when an enemy dies to id.
func KillTone(id weapon.ID) (Tone, bool) {
	switch id {
	case weapon.Gun:
		return gunTone, true
	case weapon.Bow:
		return bowTone, true
	case weapon.Grenade, weapon.Molotov:
		return blastTone, true
	default:
		return Tone{}, false
	}
}

// Track returns the bass line for a music mode.
func Track(mode game.MusicMode) (BassLine, bool) {
	switch mode {
	case game.MusicNormal:
		return normalLine, true
	case game.MusicBoss:
		return bossLine, true
	default:
		return BassLine{}, false
	}
}

// Player plays events through the local audio device. All methods are safe
// to call before Init or after Close; they only track music state then.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	mode        game.MusicMode
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. volume is in beep's base-2 scale; 0 leaves
// the signal untouched.
func NewPlayer(logger *log.Logger, volume float64) *Player {
	if logger == nil {
		logger = log.Default()
	}
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2, Volume: volume},
		logger: logger.WithPrefix("sfx"),
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.master)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

// Mode returns the music mode currently selected, empty when stopped.
func (p *Player) Mode() game.MusicMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Handle implements sfx.Sink.
func (p *Player) Handle(ev game.Event) {
	switch ev.Kind {
	case game.EventKill:
		if tone, ok := KillTone(ev.Weapon); ok {
			p.play(tone.Streamer(sampleRate))
		}
	case game.EventHitPlayer:
		p.play(hitTone.Streamer(sampleRate))
	case game.EventSwitchMusic:
		p.switchMusic(ev.Music)
	case game.EventStopMusic:
		p.stopMusic()
	}
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) switchMusic(mode game.MusicMode) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == mode {
		return
	}
	line, ok := Track(mode)
	if !ok {
		p.logger.Warn("unknown music mode", "mode", mode)
		return
	}
	p.silenceLocked()
	p.mode = mode

	if !p.initialized {
		return
	}
	p.music = &beep.Ctrl{Streamer: line.Streamer(sampleRate)}
	speaker.Lock()
	p.mixer.Add(p.music)
	speaker.Unlock()
}

func (p *Player) stopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.silenceLocked()
}

// silenceLocked stops the current track. The caller holds p.mu.
func (p *Player) silenceLocked() {
	p.mode = ""
	if p.music == nil {
		return
	}
	speaker.Lock()
	// A nil streamer makes the Ctrl report drained, so the mixer drops it.
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

var _ sfx.Sink = (*Player)(nil)
