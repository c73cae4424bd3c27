package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
	Sawtooth
)

// at samples the wave at phase in [0, 1).
func (w Wave) at(phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 4*math.Abs(phase-0.5) - 1
	case Sawtooth:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Ramp is how a parameter moves between its endpoints.
type Ramp int

const (
	Linear Ramp = iota
	Exponential
)

func ramp(kind Ramp, from, to, t float64) float64 {
	if t >= 1 {
		return to
	}
	if kind == Exponential && from > 0 && to > 0 {
		return from * math.Pow(to/from, t)
	}
	return from + (to-from)*t
}

// Tone describes a one-shot sound: a frequency sweep under a gain envelope.
type Tone struct {
	Wave     Wave
	Duration time.Duration
	FromHz   float64
	ToHz     float64
	Sweep    time.Duration // frequency reaches ToHz after this long, zero means Duration
	FreqRamp Ramp
	FromGain float64
	ToGain   float64
	GainRamp Ramp
}

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone  Tone
	sr    beep.SampleRate
	total int
	sweep int
	pos   int
	phase float64
}

// Streamer returns a finite beep.Streamer for the tone.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	sweep := t.Sweep
	if sweep <= 0 || sweep > t.Duration {
		sweep = t.Duration
	}
	return &toneStreamer{
		tone:  t,
		sr:    sr,
		total: sr.N(t.Duration),
		sweep: max(sr.N(sweep), 1),
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		freq := ramp(s.tone.FreqRamp, s.tone.FromHz, s.tone.ToHz, float64(s.pos)/float64(s.sweep))
		gain := ramp(s.tone.GainRamp, s.tone.FromGain, s.tone.ToGain, float64(s.pos)/float64(s.total))

		v := gain * s.tone.Wave.at(s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
		n++
	}
	return n, true
}

func (s *toneStreamer) Err() error {
	return nil
}

// BassLine is an endless sequence of decaying notes, one per beat.
type BassLine struct {
	Wave   Wave
	Notes  []float64
	Beat   time.Duration // time between note starts
	Length time.Duration // audible part of each note
	Gain   float64
}

type bassStreamer struct {
	line   BassLine
	sr     beep.SampleRate
	beat   int
	length int
	pos    int
	phase  float64
}

// Streamer returns an infinite beep.Streamer for the bass line.
func (b BassLine) Streamer(sr beep.SampleRate) beep.Streamer {
	beat := max(sr.N(b.Beat), 1)
	return &bassStreamer{
		line:   b,
		sr:     sr,
		beat:   beat,
		length: min(max(sr.N(b.Length), 1), beat),
	}
}

func (s *bassStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if len(s.line.Notes) == 0 {
		clear(samples)
		return len(samples), true
	}
	for i := range samples {
		note := s.pos / s.beat
		within := s.pos % s.beat

		v := 0.0
		if within < s.length {
			if within == 0 {
				s.phase = 0
			}
			freq := s.line.Notes[note%len(s.line.Notes)]
			gain := ramp(Exponential, s.line.Gain, 0.001, float64(within)/float64(s.length))
			v = gain * s.line.Wave.at(s.phase)
			s.phase += freq / float64(s.sr)
			s.phase -= math.Floor(s.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bassStreamer) Err() error {
	return nil
}
