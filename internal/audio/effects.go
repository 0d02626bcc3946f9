package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue durations.
const (
	flapDuration   = 90 * time.Millisecond
	pointDuration  = 70 * time.Millisecond
	recordDuration = 400 * time.Millisecond
	hitDuration    = 250 * time.Millisecond
)

// oscillator generates a raw wave, optionally sweeping its frequency linearly.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over its duration.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release ramp ending at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; 0 or below is silent.
// math.Log2(0) is -Inf, so zero volume uses the Silent flag.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue identifies a sound effect.
type Cue int

const (
	CueFlap   Cue = iota // Rising chirp
	CuePoint             // Short blip
	CueRecord            // Two-note chime
	CueHit               // Noisy thud
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CuePoint:
		return "point"
	case CueRecord:
		return "record"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// NewCue builds a fresh streamer for the cue at the given volume (0..1).
func NewCue(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	switch c {
	case CueFlap:
		osc := NewSweep(420, 840, flapDuration, WaveSine, rate)
		return newVolume(NewEnvelope(osc, flapDuration, 5*time.Millisecond, 40*time.Millisecond, rate), vol*0.5)

	case CuePoint:
		osc := NewOscillator(1046.5, pointDuration, WaveSquare, rate) // C6
		return newVolume(NewEnvelope(osc, pointDuration, 2*time.Millisecond, 30*time.Millisecond, rate), vol*0.25)

	case CueRecord:
		half := recordDuration / 2
		n1 := NewEnvelope(NewOscillator(987.77, half, WaveSquare, rate), half, 2*time.Millisecond, 60*time.Millisecond, rate)
		n2 := NewEnvelope(NewOscillator(1318.51, half, WaveSquare, rate), half, 2*time.Millisecond, 150*time.Millisecond, rate)
		return newVolume(beep.Seq(n1, n2), vol*0.25)

	case CueHit:
		rumble := NewSweep(160, 60, hitDuration, WaveSaw, rate)
		noise := NewOscillator(0, hitDuration, WaveNoise, rate)
		mixed := beep.Mix(newVolume(rumble, 0.6), newVolume(noise, 0.4))
		return newVolume(NewEnvelope(mixed, hitDuration, 2*time.Millisecond, 180*time.Millisecond, rate), vol*0.6)

	default:
		return nil
	}
}
