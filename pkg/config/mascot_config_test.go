package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultMascotConfigIsValid(t *testing.T) {
	cfg := DefaultMascotConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	// 固定常量
	if cfg.Direction.MarginTop != 80 || cfg.Direction.MarginBottom != 80 {
		t.Errorf("expected margins 80/80, got %v/%v", cfg.Direction.MarginTop, cfg.Direction.MarginBottom)
	}
	if cfg.Direction.FrontAreaSide != 100 {
		t.Errorf("expected frontAreaSide 100, got %v", cfg.Direction.FrontAreaSide)
	}
	if cfg.Character.NibbleJumpPower != 8 || cfg.Character.HappyJumpPower != 15 {
		t.Errorf("unexpected jump powers: nibble=%v happy=%v", cfg.Character.NibbleJumpPower, cfg.Character.HappyJumpPower)
	}

	min, max := cfg.Timing.PromptDelay.Bounds()
	if min != 3000*time.Millisecond || max != 6000*time.Millisecond {
		t.Errorf("unexpected prompt delay range [%v, %v)", min, max)
	}
}

func TestParseMascotConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *MascotConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
character:
  touchJumpPower: 20
timing:
  giveUpDelay:
    min: 500
    max: 800
`,
			validate: func(t *testing.T, cfg *MascotConfig) {
				if cfg.Character.TouchJumpPower != 20 {
					t.Errorf("expected touchJumpPower = 20, got %f", cfg.Character.TouchJumpPower)
				}
				if cfg.Character.NibbleJumpPower != 8 {
					t.Errorf("expected default nibbleJumpPower = 8, got %f", cfg.Character.NibbleJumpPower)
				}
				if cfg.Timing.GiveUpDelay.Min != 500 || cfg.Timing.GiveUpDelay.Max != 800 {
					t.Errorf("unexpected giveUpDelay %+v", cfg.Timing.GiveUpDelay)
				}
				if cfg.Timing.PromptDelay.Min != 3000 {
					t.Errorf("expected default promptDelay.min = 3000, got %d", cfg.Timing.PromptDelay.Min)
				}
			},
		},
		{
			name: "zero gravity rejected",
			yamlContent: `
character:
  gravity: 0
`,
			wantErr:     true,
			errContains: "gravity must be positive",
		},
		{
			name: "negative power rejected",
			yamlContent: `
character:
  happyJumpPower: -1
`,
			wantErr:     true,
			errContains: "happyJumpPower must be positive",
		},
		{
			name: "inverted prompt delay rejected",
			yamlContent: `
timing:
  promptDelay:
    min: 6000
    max: 3000
`,
			wantErr:     true,
			errContains: "promptDelay range invalid",
		},
		{
			name: "inverted bounce range rejected",
			yamlContent: `
timing:
  promptBounces:
    min: 3
    max: 1
`,
			wantErr:     true,
			errContains: "promptBounces range invalid",
		},
		{
			name:        "malformed yaml",
			yamlContent: "character: [",
			wantErr:     true,
			errContains: "failed to parse mascot config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseMascotConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMascotConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mascot.yaml")
	if err := os.WriteFile(path, []byte("food:\n  maxCount: 5\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadMascotConfig(path)
	if err != nil {
		t.Fatalf("LoadMascotConfig() error: %v", err)
	}
	if cfg.Food.MaxCount != 5 {
		t.Errorf("expected maxCount = 5, got %d", cfg.Food.MaxCount)
	}

	if _, err := LoadMascotConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadShippedMascotConfig(t *testing.T) {
	cfg, err := LoadMascotConfig("../../data/mascot.yaml")
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}
	if cfg.Timing.NibbleCount != 3 {
		t.Errorf("expected nibbleCount = 3, got %d", cfg.Timing.NibbleCount)
	}
}
