package game

import (
	"errors"
	"testing"
)

const testResourceYAML = `
version: "1.0"
base_path: assets
groups:
  character:
    images:
      - id: bocchi-front
        path: images/bocchi-front
        width: 400
        height: 400
    sounds:
      - id: pakupakuSound
        path: sounds/pakupaku.mp3
      - id: touchSound
        path: sounds/touch
  food:
    images:
      - id: karaage
        path: images/karaage.png
`

func newTestResourceManager(t *testing.T) *ResourceManager {
	t.Helper()
	rm := NewResourceManager(nil)
	if err := rm.ParseResourceConfig([]byte(testResourceYAML)); err != nil {
		t.Fatalf("ParseResourceConfig() error: %v", err)
	}
	return rm
}

// TestPlaySoundWithoutAudioContext 无音频上下文时播放失败但不 panic
func TestPlaySoundWithoutAudioContext(t *testing.T) {
	rm := newTestResourceManager(t)
	am := NewAudioManager(rm, nil)

	if am.PlaySound("pakupakuSound") {
		t.Error("PlaySound should fail without an audio context")
	}
	if !am.missing["pakupakuSound"] {
		t.Error("Failed sound should be remembered as missing")
	}

	if am.PlaySound("unknownSound") {
		t.Error("PlaySound should fail for unknown IDs")
	}
}

// TestPlaySoundDisabled 音效关闭时不尝试加载
func TestPlaySoundDisabled(t *testing.T) {
	rm := newTestResourceManager(t)
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	am := NewAudioManager(rm, sm)

	if am.PlaySound("touchSound") {
		t.Error("PlaySound should return false when sound is disabled")
	}
	if len(am.missing) != 0 {
		t.Error("Disabled sound must not trigger a load attempt")
	}
	if am.SoundEnabled() {
		t.Error("SoundEnabled() should mirror the settings")
	}
}

// TestLoadSoundEffectNoContext 测试 ErrNoAudioContext
func TestLoadSoundEffectNoContext(t *testing.T) {
	rm := NewResourceManager(nil)
	_, err := rm.LoadSoundEffect("assets/sounds/pop.mp3")
	if !errors.Is(err, ErrNoAudioContext) {
		t.Errorf("Expected ErrNoAudioContext, got %v", err)
	}
}
