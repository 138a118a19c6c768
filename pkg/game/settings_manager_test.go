package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if !settings.SoundEnabled {
		t.Error("Degraded mode should start with sound enabled")
	}

	// 降级模式下 Save() 应该返回 nil（不报错）
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_mascot_settings_load_save")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
}

// TestToggleSoundPersists 测试静音切换立即持久化
func TestToggleSoundPersists(t *testing.T) {
	gdataManager := openTestGdata(t, "test_mascot_settings_toggle")

	sm, _ := NewSettingsManager(gdataManager)
	enabled, err := sm.ToggleSound()
	if err != nil {
		t.Fatalf("ToggleSound() error: %v", err)
	}
	if enabled {
		t.Fatal("First toggle should disable sound")
	}

	reloaded, _ := NewSettingsManager(gdataManager)
	if reloaded.GetSettings().SoundEnabled {
		t.Error("Toggled setting should survive a reload")
	}

	enabled, _ = sm.ToggleSound()
	if !enabled {
		t.Error("Second toggle should enable sound")
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
		{-100, 0.0},
		{100, 1.0},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

// TestLoadNilGdataManager 测试降级模式下 Load() 使用默认设置
func TestLoadNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if !sm.GetSettings().SoundEnabled {
		t.Error("After Load() in degraded mode, settings should reset to defaults")
	}
}

// TestLoadStoredSettings 测试已保存内容的容错：非法 YAML 回到默认值，越界音量被夹住
func TestLoadStoredSettings(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantErr     bool
		wantVolume  float64
		wantEnabled bool
	}{
		{name: "corrupt yaml", payload: "soundVolume: [", wantErr: true, wantVolume: 0.8, wantEnabled: true},
		{name: "volume above range", payload: "soundVolume: 3\nsoundEnabled: false\n", wantVolume: 1, wantEnabled: false},
		{name: "missing fields keep defaults", payload: "soundEnabled: false\n", wantVolume: 0.8, wantEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdataManager := openTestGdata(t, "test_mascot_settings_stored")
			if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte(tt.payload)); err != nil {
				t.Fatalf("SaveObjectProp() error: %v", err)
			}

			sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
			err := sm.Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			got := sm.GetSettings()
			if got.SoundVolume != tt.wantVolume || got.SoundEnabled != tt.wantEnabled {
				t.Errorf("Load() = %+v, want volume %v enabled %v", got, tt.wantVolume, tt.wantEnabled)
			}
		})
	}
}
