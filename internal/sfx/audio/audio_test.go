package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimkro/TYPE-100/internal/game"
	"github.com/jimkro/TYPE-100/internal/weapon"
)

func drain(s interface {
	Stream([][2]float64) (int, bool)
}, buf [][2]float64) (total int, peak float64) {
	for {
		n, ok := s.Stream(buf)
		if !ok {
			return total, peak
		}
		for _, v := range buf[:n] {
			peak = max(peak, v[0], -v[0])
		}
		total += n
	}
}

func TestToneLength(t *testing.T) {
	for _, id := range []weapon.ID{weapon.Gun, weapon.Bow, weapon.Grenade, weapon.Molotov} {
		tone, ok := KillTone(id)
		require.True(t, ok, id)

		total, peak := drain(tone.Streamer(sampleRate), make([][2]float64, 512))
		assert.Equal(t, sampleRate.N(tone.Duration), total, id)
		assert.LessOrEqual(t, peak, tone.FromGain+1e-9, id)
		assert.Greater(t, peak, 0.0, id)
	}

	_, ok := KillTone(weapon.Heal)
	assert.False(t, ok)
}

func TestRamp(t *testing.T) {
	assert.Equal(t, 800.0, ramp(Exponential, 800, 100, 0))
	assert.InDelta(t, 200, ramp(Exponential, 800, 100, 2.0/3.0), 1e-9)
	assert.Equal(t, 100.0, ramp(Exponential, 800, 100, 1))
	assert.Equal(t, 350.0, ramp(Linear, 600, 100, 0.5))
}

func TestBassLineIsSilentBetweenNotes(t *testing.T) {
	line := BassLine{
		Wave: Square, Notes: []float64{110},
		Beat: 100 * time.Millisecond, Length: 50 * time.Millisecond, Gain: 0.1,
	}
	s := line.Streamer(sampleRate)
	buf := make([][2]float64, sampleRate.N(100*time.Millisecond))

	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)

	gap := sampleRate.N(50 * time.Millisecond)
	assert.NotZero(t, buf[0][0])
	for _, v := range buf[gap:] {
		assert.Zero(t, v[0])
	}
}

func TestTracks(t *testing.T) {
	normal, ok := Track(game.MusicNormal)
	require.True(t, ok)
	assert.Equal(t, []float64{110, 110, 146, 130}, normal.Notes)

	boss, ok := Track(game.MusicBoss)
	require.True(t, ok)
	assert.Equal(t, 333*time.Millisecond, boss.Beat)

	_, ok = Track("jazz")
	assert.False(t, ok)
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(log.New(io.Discard), 0)

	p.Handle(game.Event{Kind: game.EventSwitchMusic, Music: game.MusicNormal})
	assert.Equal(t, game.MusicNormal, p.Mode())

	p.Handle(game.Event{Kind: game.EventKill, Weapon: weapon.Gun})
	p.Handle(game.Event{Kind: game.EventHitPlayer})

	p.Handle(game.Event{Kind: game.EventSwitchMusic, Music: game.MusicBoss})
	assert.Equal(t, game.MusicBoss, p.Mode())

	p.Handle(game.Event{Kind: game.EventStopMusic})
	assert.Empty(t, p.Mode())

	p.Close()
}
