package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads a streamer to exhaustion and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0001 || buf[j][0] > 1.0001 {
				t.Fatalf("sample %d out of range: %f", total-n+j, buf[j][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream = (%d, %v), want (100, true)", n, ok)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sine sample = %f, want 0", samples[0][0])
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1.0 && v != -1.0 {
			t.Fatalf("square sample %d = %f, want ±1", i, v)
		}
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSaw, rate)

	if got := drain(t, osc); got != 50 {
		t.Errorf("streamed %d samples, want 50", got)
	}
}

func TestSweepGlides(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewSweep(1000, 100, 100*time.Millisecond, WaveSine, rate)
	if got := drain(t, osc); got != rate.N(100*time.Millisecond) {
		t.Errorf("sweep length = %d", got)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	// Constant +1 input makes the envelope directly observable
	src := NewOscillator(0, d, WaveSquare, rate)
	env := NewEnvelope(src, d, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack start = %f, want 0", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", samples[50][0])
	}
	if samples[99][0] <= 0 || samples[99][0] >= 0.1 {
		t.Errorf("release tail = %f, want small positive", samples[99][0])
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)

	samples := make([][2]float64, 10)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("silent sample %d = %f", i, samples[i][0])
		}
	}
}

func TestGetSoundEffectAllTypes(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000

	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Errorf("GetSoundEffect(%s) = nil", st)
			continue
		}
		if n := drain(t, s); n == 0 {
			t.Errorf("%s produced no samples", st)
		}
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("unknown sound type should return nil")
	}
}
