// Package config 定义吉祥物场景的调参配置与布局常量
package config

import (
	"fmt"
	"time"

	"github.com/decker502/mascot/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// MascotConfig 吉祥物调参配置
//
// 配置文件位置: data/mascot.yaml
// 文件中缺省的字段保留 DefaultMascotConfig 中的默认值。
type MascotConfig struct {
	Character CharacterConfig `yaml:"character"`
	Direction DirectionConfig `yaml:"direction"`
	Timing    TimingConfig    `yaml:"timing"`
	Food      FoodConfig      `yaml:"food"`
	Window    WindowConfig    `yaml:"window"`
}

// CharacterConfig 角色外观与跳跃参数
type CharacterConfig struct {
	StartX float64 `yaml:"startX"` // 初始落点X（设计坐标）
	StartY float64 `yaml:"startY"` // 初始落点Y（设计坐标）
	Width  float64 `yaml:"width"`  // 贴图未缩放宽度（贴图缺失时使用）
	Height float64 `yaml:"height"` // 贴图未缩放高度（贴图缺失时使用）
	Scale  float64 `yaml:"scale"`

	Gravity         float64 `yaml:"gravity"`
	TouchJumpPower  float64 `yaml:"touchJumpPower"`  // 点击跳跃
	NibbleJumpPower float64 `yaml:"nibbleJumpPower"` // 进食时每一口的小跳
	HappyJumpPower  float64 `yaml:"happyJumpPower"`  // 吃完后的开心跳
	PromptJumpPower float64 `yaml:"promptJumpPower"` // 催促跳

	// MouthOffsetX/Y 进食时食物相对落点的偏移（"叼在嘴里"）
	MouthOffsetX float64 `yaml:"mouthOffsetX"`
	MouthOffsetY float64 `yaml:"mouthOffsetY"`
}

// DirectionConfig 方向判定区域
type DirectionConfig struct {
	MarginTop     float64 `yaml:"marginTop"`
	MarginBottom  float64 `yaml:"marginBottom"`
	FrontAreaSide float64 `yaml:"frontAreaSide"`
}

// TimingConfig 进食序列与后台定时器的时间参数（毫秒）
type TimingConfig struct {
	NibbleCount    int `yaml:"nibbleCount"`
	NibbleDelayMs  int `yaml:"nibbleDelayMs"`
	SwallowPauseMs int `yaml:"swallowPauseMs"`
	HappyDelayMs   int `yaml:"happyDelayMs"`

	PromptDelay   MsRange  `yaml:"promptDelay"`
	PromptPauseMs int      `yaml:"promptPauseMs"`
	PromptBounces IntRange `yaml:"promptBounces"`

	GiveUpDelay MsRange `yaml:"giveUpDelay"`
}

// MsRange 毫秒区间 [Min, Max)
type MsRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Bounds 以 time.Duration 返回区间端点
func (r MsRange) Bounds() (time.Duration, time.Duration) {
	return Ms(r.Min), Ms(r.Max)
}

// IntRange 整数闭区间 [Min, Max]
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FoodConfig 食物参数
type FoodConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Scale    float64 `yaml:"scale"`
	SpawnX   float64 `yaml:"spawnX"`
	SpawnY   float64 `yaml:"spawnY"`
	MaxCount int     `yaml:"maxCount"` // 同时存在的食物上限
}

// WindowConfig 窗口与视口参数
type WindowConfig struct {
	Title       string  `yaml:"title"`
	MinWidth    int     `yaml:"minWidth"`
	MaxWidth    int     `yaml:"maxWidth"`
	AspectRatio float64 `yaml:"aspectRatio"`
}

// Ms 把毫秒数转换为 time.Duration
func Ms(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// DefaultMascotConfig 返回默认配置
func DefaultMascotConfig() *MascotConfig {
	return &MascotConfig{
		Character: CharacterConfig{
			StartX:          DesignWidth / 2,
			StartY:          DesignHeight/2 + 40,
			Width:           400,
			Height:          400,
			Scale:           0.7,
			Gravity:         1,
			TouchJumpPower:  15,
			NibbleJumpPower: 8,
			HappyJumpPower:  15,
			PromptJumpPower: 10,
			MouthOffsetX:    0,
			MouthOffsetY:    -40,
		},
		Direction: DirectionConfig{
			MarginTop:     80,
			MarginBottom:  80,
			FrontAreaSide: 100,
		},
		Timing: TimingConfig{
			NibbleCount:    3,
			NibbleDelayMs:  200,
			SwallowPauseMs: 500,
			HappyDelayMs:   200,
			PromptDelay:    MsRange{Min: 3000, Max: 6000},
			PromptPauseMs:  200,
			PromptBounces:  IntRange{Min: 1, Max: 2},
			GiveUpDelay:    MsRange{Min: 1000, Max: 2000},
		},
		Food: FoodConfig{
			Width:    160,
			Height:   160,
			Scale:    0.5,
			SpawnX:   DesignWidth - 120,
			SpawnY:   DesignHeight - 120,
			MaxCount: 3,
		},
		Window: WindowConfig{
			Title:       "めんだこぼち",
			MinWidth:    320,
			MaxWidth:    925,
			AspectRatio: 16.0 / 12.0,
		},
	}
}

// LoadMascotConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/mascot.yaml"），data/ 下的文件优先从嵌入文件系统读取
//
// 返回:
//   - *MascotConfig: 合并默认值并通过校验的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadMascotConfig(path string) (*MascotConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mascot config: %w", err)
	}
	return ParseMascotConfig(data)
}

// ParseMascotConfig 解析 YAML 配置内容
func ParseMascotConfig(data []byte) (*MascotConfig, error) {
	cfg := DefaultMascotConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse mascot config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mascot config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 重力与所有跳跃初速度必须为正（否则跳跃无法离地）
//   - 缩放必须为正
//   - 延迟区间的 Min 不能大于 Max，且不能为负
//   - 次数不能为负
func (c *MascotConfig) Validate() error {
	ch := c.Character
	if ch.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %.2f", ch.Gravity)
	}
	powers := map[string]float64{
		"touchJumpPower":  ch.TouchJumpPower,
		"nibbleJumpPower": ch.NibbleJumpPower,
		"happyJumpPower":  ch.HappyJumpPower,
		"promptJumpPower": ch.PromptJumpPower,
	}
	for name, p := range powers {
		if p <= 0 {
			return fmt.Errorf("%s must be positive, got %.2f", name, p)
		}
	}
	if ch.Scale <= 0 || c.Food.Scale <= 0 {
		return fmt.Errorf("scale must be positive (character=%.2f, food=%.2f)", ch.Scale, c.Food.Scale)
	}

	tm := c.Timing
	if tm.NibbleCount < 0 {
		return fmt.Errorf("nibbleCount must not be negative, got %d", tm.NibbleCount)
	}
	if tm.NibbleDelayMs < 0 || tm.SwallowPauseMs < 0 || tm.HappyDelayMs < 0 || tm.PromptPauseMs < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if err := validateMsRange("promptDelay", tm.PromptDelay); err != nil {
		return err
	}
	if err := validateMsRange("giveUpDelay", tm.GiveUpDelay); err != nil {
		return err
	}
	if tm.PromptBounces.Min < 0 || tm.PromptBounces.Min > tm.PromptBounces.Max {
		return fmt.Errorf("promptBounces range invalid: min(%d) max(%d)", tm.PromptBounces.Min, tm.PromptBounces.Max)
	}

	if c.Food.MaxCount < 1 {
		return fmt.Errorf("food maxCount must be at least 1, got %d", c.Food.MaxCount)
	}

	w := c.Window
	if w.MinWidth <= 0 || w.MinWidth > w.MaxWidth || w.AspectRatio <= 0 {
		return fmt.Errorf("window config invalid: minWidth(%d) maxWidth(%d) aspectRatio(%.3f)",
			w.MinWidth, w.MaxWidth, w.AspectRatio)
	}

	return nil
}

func validateMsRange(name string, r MsRange) error {
	if r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("%s range invalid: min(%d) > max(%d)", name, r.Min, r.Max)
	}
	return nil
}
