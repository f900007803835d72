package audio

import (
	"testing"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("expected audio enabled by default")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("MasterVolume = %f, want 0.5", cfg.MasterVolume)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("missing volume for %s", st)
		}
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("TERM_INVADERS_AUDIO_ENABLED", "false")
	t.Setenv("TERM_INVADERS_MASTER_VOLUME", "150")
	t.Setenv("TERM_INVADERS_SFX_VOLUMES", `{"shoot":0.1,"ship_explosion":2,"bogus":1}`)
	t.Setenv("TERM_INVADERS_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("MasterVolume = %f, want clamped 1", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundShoot] != 0.1 {
		t.Errorf("shoot volume = %f", cfg.EffectVolumes[SoundShoot])
	}
	if cfg.EffectVolumes[SoundShipExplosion] != 1 {
		t.Errorf("explosion volume = %f, want clamped 1", cfg.EffectVolumes[SoundShipExplosion])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("SampleRate = %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("TERM_INVADERS_AUDIO_ENABLED", "maybe")
	t.Setenv("TERM_INVADERS_MASTER_VOLUME", "loud")
	t.Setenv("TERM_INVADERS_SFX_VOLUMES", "{not json")
	t.Setenv("TERM_INVADERS_SAMPLE_RATE", "-5")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("garbage env altered config: %+v", cfg)
	}
}

func TestSoundTypeNames(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		got, ok := soundTypeByName(st.String())
		if !ok || got != st {
			t.Errorf("round trip of %s failed", st)
		}
	}
	if SoundType(-1).String() != "unknown" {
		t.Error("invalid type should be unknown")
	}
}
