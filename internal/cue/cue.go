// Package cue plays short synthesised blips as feedback for settings panel actions.
package cue

import (
	"log"
	"math"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
)

type Kind uint8

const (
	Toggle Kind = iota
	Success
	Failure
)

// Frequency returns the tone pitch in Hz for k.
func (k Kind) Frequency() float64 {
	switch k {
	case Success:
		return 1320
	case Failure:
		return 220
	}
	return 880
}

// Player owns the speaker. Without an audio device it stays silent.
type Player struct {
	rate  beep.SampleRate
	ready bool
}

// NewPlayer initialises the speaker once. Failure is logged, not returned: the
// overlay works without sound.
func NewPlayer() *Player {
	p := &Player{rate: beep.SampleRate(config.CueSampleRate)}
	if err := speaker.Init(p.rate, p.rate.N(config.CueDuration)); err != nil {
		log.Printf("audio cues disabled: %v", err)
		return p
	}
	p.ready = true
	return p
}

// Play queues the blip for k and returns immediately.
func (p *Player) Play(k Kind) {
	if p == nil || !p.ready {
		return
	}
	speaker.Play(Tone(p.rate, k.Frequency(), p.rate.N(config.CueDuration)))
}

func (p *Player) Close() {
	if p != nil && p.ready {
		speaker.Close()
		p.ready = false
	}
}

// Tone returns n samples of a sine at freq with a linear fade-out so the blip
// ends without a click.
func Tone(rate beep.SampleRate, freq float64, n int) beep.Streamer {
	const volume = 0.3
	pos := 0
	step := 2 * math.Pi * freq / float64(rate)
	sine := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 1.0
			if n > 0 {
				env = 1 - float64(pos)/float64(n)
			}
			v := volume * env * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(n, sine)
}
