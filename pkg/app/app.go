// Package app 提供吉祥物应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/mascot/pkg/clock"
	"github.com/decker502/mascot/pkg/config"
	"github.com/decker502/mascot/pkg/game"
	"github.com/decker502/mascot/pkg/scenes"
	"github.com/decker502/mascot/pkg/systems"
	"github.com/decker502/mascot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	// DefaultConfigPath 内置调参配置
	DefaultConfigPath = "data/mascot.yaml"
	// ResourceConfigPath 资源清单
	ResourceConfigPath = "data/resources.yaml"

	appName = "mascot"
	// tickDuration 固定逻辑帧长度
	tickDuration = time.Second / 60
)

// resourceGroups 启动时加载的资源组
var resourceGroups = []string{"character", "food", "ui"}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试叠加层
	Verbose bool
	// ConfigPath 调参配置路径，为空时使用 data/mascot.yaml
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	ticker                   *clock.Ticker
	scheduler                *clock.Scheduler
	config                   *config.MascotConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 注册嵌入的配置。
// 资源或设置加载失败只记录日志：贴图退化为占位图，音效静默，设置只保存在内存。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	mascotConfig := loadMascotConfig(cfg.ConfigPath)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		log.Printf("[App] Warning: 资源配置加载失败: %v（使用占位资源）", err)
	} else {
		for _, group := range resourceGroups {
			if err := resourceManager.LoadResourceGroup(group); err != nil {
				log.Printf("[App] Warning: 资源组 %s 加载失败: %v", group, err)
			}
		}
	}

	// 设置持久化；gdata 不可用时降级为内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata 初始化失败: %v（设置不会保存）", err)
		gdataManager = nil
	}
	settingsManager, _ := game.NewSettingsManager(gdataManager)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds([]string{systems.SoundPakupaku, systems.SoundTouch, systems.SoundPop})
	log.Printf("[App] AudioManager initialized")

	ticker := clock.NewTicker()
	scheduler := clock.NewScheduler()

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewPlaygroundScene(scenes.PlaygroundOptions{
		Config:          mascotConfig,
		ResourceManager: resourceManager,
		Sound:           audioManager,
		Settings:        settingsManager,
		FrameClock:      ticker,
		Scheduler:       scheduler,
		Random:          utils.DefaultRandomSource(),
		Verbose:         cfg.Verbose,
	}))

	return &App{
		sceneManager: sceneManager,
		ticker:       ticker,
		scheduler:    scheduler,
		config:       mascotConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadMascotConfig 加载调参配置，失败时使用默认值
func loadMascotConfig(path string) *config.MascotConfig {
	if path == "" {
		path = DefaultConfigPath
	}
	cfg, err := config.LoadMascotConfig(path)
	if err != nil {
		log.Printf("[Config] Warning: %v（使用默认配置）", err)
		return config.DefaultMascotConfig()
	}
	log.Printf("[Config] 加载配置: %s", path)
	return cfg
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 先触发到期的定时器，再执行逐帧回调
	a.scheduler.Advance(tickDuration)
	a.ticker.Tick(tickDuration)

	a.sceneManager.Update(tickDuration.Seconds())
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 场景始终按设计分辨率布局，窗口大小变化由 Ebitengine 缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := config.DesignWidth, config.DesignHeight
	return int(w), int(h)
}

// WindowSize 返回初始窗口尺寸（最大视口）
func (a *App) WindowSize() (int, int) {
	w, h, _ := config.ViewportSize(a.config.Window.MaxWidth, a.config.Window)
	return w, h
}

// WindowSizeLimits 返回窗口的最小和最大尺寸
func (a *App) WindowSizeLimits() (minW, minH, maxW, maxH int) {
	minW, minH, _ = config.ViewportSize(a.config.Window.MinWidth, a.config.Window)
	maxW, maxH = a.WindowSize()
	return minW, minH, maxW, maxH
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.config.Window.Title
}

// Close 关闭当前场景，取消所有挂起的定时器
func (a *App) Close() {
	a.sceneManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
