package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/term-invaders/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch slides from start to end over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
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
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateShootSound generates a falling square chirp for the player laser
func CreateShootSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(1200, 400, constants.ShootSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ShootSoundDuration, constants.ShootSoundAttack, constants.ShootSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundShoot))
}

// CreateAlienShootSound generates a low saw blip for alien fire
func CreateAlienShootSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(300, 150, constants.AlienShootSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.AlienShootSoundDuration, constants.AlienShootSoundAttack, constants.AlienShootSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundAlienShoot))
}

// CreateInvaderKilledSound layers a noise burst over a dropping square tone
func CreateInvaderKilledSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.InvaderKilledSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.InvaderKilledSoundAttack, constants.InvaderKilledSoundRelease, rate)
	tone := NewEnvelope(NewSweep(220, 60, d, WaveSquare, rate), d, constants.InvaderKilledSoundAttack, constants.InvaderKilledSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(tone, 0.4),
	)

	return newVolume(mixed, effectVolume(cfg, SoundInvaderKilled))
}

// CreateMysteryEnteredSound generates an alternating two-tone warble
func CreateMysteryEnteredSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.MysteryEnteredNoteDuration

	notes := make([]beep.Streamer, 0, constants.MysteryEnteredNoteCount)
	for i := 0; i < constants.MysteryEnteredNoteCount; i++ {
		freq := 600.0
		if i%2 == 1 {
			freq = 900.0
		}
		osc := NewOscillator(freq, d, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, d, constants.MysteryEnteredNoteAttack, constants.MysteryEnteredNoteRelease, rate))
	}

	return newVolume(beep.Seq(notes...), effectVolume(cfg, SoundMysteryEntered))
}

// CreateMysteryKilledSound generates a rising three-note arpeggio (E5, A5, E6)
func CreateMysteryKilledSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.MysteryKilledNoteDuration

	n1 := NewEnvelope(NewOscillator(659.25, d, WaveSquare, rate), d, constants.MysteryKilledNoteAttack, constants.MysteryKilledNoteRelease, rate)
	n2 := NewEnvelope(NewOscillator(880.0, d, WaveSquare, rate), d, constants.MysteryKilledNoteAttack, constants.MysteryKilledNoteRelease, rate)
	last := d + constants.MysteryKilledFinalRelease
	n3 := NewEnvelope(NewOscillator(1318.51, last, WaveSquare, rate), last, constants.MysteryKilledNoteAttack, constants.MysteryKilledFinalRelease, rate)

	return newVolume(beep.Seq(n1, n2, n3), effectVolume(cfg, SoundMysteryKilled))
}

// CreateShipExplosionSound generates a long noise crash over a sub rumble
func CreateShipExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ShipExplosionSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.ShipExplosionSoundAttack, constants.ShipExplosionSoundRelease, rate)
	rumble := NewEnvelope(NewSweep(90, 35, d, WaveSaw, rate), d, constants.ShipExplosionSoundAttack, constants.ShipExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.7),
		newVolume(rumble, 0.5),
	)

	return newVolume(mixed, effectVolume(cfg, SoundShipExplosion))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShoot:
		return CreateShootSound(cfg)
	case SoundAlienShoot:
		return CreateAlienShootSound(cfg)
	case SoundInvaderKilled:
		return CreateInvaderKilledSound(cfg)
	case SoundMysteryEntered:
		return CreateMysteryEnteredSound(cfg)
	case SoundMysteryKilled:
		return CreateMysteryKilledSound(cfg)
	case SoundShipExplosion:
		return CreateShipExplosionSound(cfg)
	default:
		return nil
	}
}
