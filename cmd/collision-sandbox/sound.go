package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Short oscillator-and-envelope sounds, grounded on
// audio/effects.go's oscillator/envelope/Mix pattern, trimmed to the
// two cues this sandbox needs: a hit chirp on a confirmed Line result
// and a low thud on a miss.

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
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
			return i, false
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

type soundCue struct {
	rate beep.SampleRate
}

func newSoundCue(sampleRate int) (*soundCue, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &soundCue{rate: rate}, nil
}

// playHit fires a short high-pitched chirp for a confirmed Line hit.
func (c *soundCue) playHit() {
	const dur = 80 * time.Millisecond
	note := newOscillator(880+rand.Float64()*40, dur, c.rate)
	shaped := newEnvelope(note, dur, 4*time.Millisecond, 40*time.Millisecond, c.rate)
	speaker.Play(shaped)
}

// playMiss fires a soft low thud when a shot finds nothing.
func (c *soundCue) playMiss() {
	const dur = 60 * time.Millisecond
	note := newOscillator(180, dur, c.rate)
	shaped := newEnvelope(note, dur, 2*time.Millisecond, 30*time.Millisecond, c.rate)
	speaker.Play(shaped)
}
