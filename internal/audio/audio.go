package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/sacrifice/internal/protocol"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// tone generates a sine wave at freq for duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := math.Sin(phase) * 0.3
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave, the retro 8-bit blip
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

func gap(d time.Duration) beep.Streamer {
	return beep.Silence(sampleRate.N(d))
}

// Sounds returns what to play for one tick's events. A won match plays the
// fanfare instead of the point jingle.
func Sounds(ev protocol.Events) []beep.Streamer {
	var out []beep.Streamer

	switch {
	case ev.Has(protocol.EventMatchWon):
		out = append(out, beep.Seq(
			squareWave(523, 120*time.Millisecond),
			squareWave(659, 120*time.Millisecond),
			squareWave(784, 120*time.Millisecond),
			squareWave(1047, 300*time.Millisecond),
		))
	case ev.Has(protocol.EventPoint):
		// Descending tone
		out = append(out, beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		))
	}

	if ev.Has(protocol.EventPaddleHit) {
		out = append(out, squareWave(880, 50*time.Millisecond))
	}
	if ev.Has(protocol.EventPassThrough) {
		// Low hollow whoosh through the gap
		out = append(out, beep.Seq(tone(196, 40*time.Millisecond), gap(10*time.Millisecond), tone(147, 60*time.Millisecond)))
	}
	if ev.Has(protocol.EventWallBounce) {
		out = append(out, squareWave(440, 30*time.Millisecond))
	}
	if ev.Has(protocol.EventMatchStarted) {
		out = append(out, tone(440, 80*time.Millisecond))
	}

	return out
}

// Play starts the sounds for ev. No-op until Init succeeds.
func Play(ev protocol.Events) {
	if !initialized {
		return
	}
	sounds := Sounds(ev)
	if len(sounds) == 0 {
		return
	}
	speaker.Play(sounds...)
}
