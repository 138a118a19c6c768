package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/mascot/pkg/clock"
	"github.com/decker502/mascot/pkg/components"
	"github.com/decker502/mascot/pkg/config"
	"github.com/decker502/mascot/pkg/ecs"
	"github.com/decker502/mascot/pkg/entities"
	"github.com/decker502/mascot/pkg/game"
	"github.com/decker502/mascot/pkg/systems"
	"github.com/decker502/mascot/pkg/types"
	"github.com/decker502/mascot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// spawnButtonLabel 投放按钮文字
const spawnButtonLabel = "からあげ"

var (
	backgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	debugBoxColor   = color.RGBA{0x40, 0xff, 0x80, 0xff}
)

// PlaygroundOptions 创建场景所需的依赖
type PlaygroundOptions struct {
	Config          *config.MascotConfig
	ResourceManager *game.ResourceManager
	// Sound 音效端口，通常是 *game.AudioManager；为 nil 时静音
	Sound systems.SoundPlayer
	// Settings 用于静音切换，为 nil 时 M 键无效
	Settings *game.SettingsManager

	FrameClock clock.FrameClock
	Scheduler  clock.DelayScheduler
	Random     utils.RandomSource

	// Verbose 绘制调试信息（状态、朝向、命中区域）
	Verbose bool
}

// PlaygroundScene 吉祥物的唯一场景
//
// 负责把指针事件接到角色和食物上：
//   - 点击角色触发跳跃
//   - 点击按钮投放食物（数量达到上限或角色进食中时按钮禁用）
//   - 拖动食物时角色注视食物；在角色身上松开时角色开始进食
type PlaygroundScene struct {
	config          *config.MascotConfig
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	sound           systems.SoundPlayer
	settings        *game.SettingsManager
	verbose         bool

	characterSystem *systems.CharacterSystem
	dragSystem      *systems.DragSystem
	buttonSystem    *systems.ButtonSystem
	inputSystem     *systems.InputSystem
	renderSystem    *systems.RenderSystem

	characterID ecs.EntityID
	buttonID    ecs.EntityID
	nextFoodZ   int
	closed      bool
}

// NewPlaygroundScene 创建场景，并放置角色和投放按钮
func NewPlaygroundScene(opts PlaygroundOptions) *PlaygroundScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultMascotConfig()
	}
	rm := opts.ResourceManager
	if rm == nil {
		rm = game.NewResourceManager(nil)
	}

	em := ecs.NewEntityManager()
	s := &PlaygroundScene{
		config:          cfg,
		entityManager:   em,
		resourceManager: rm,
		sound:           opts.Sound,
		settings:        opts.Settings,
		verbose:         opts.Verbose,
		nextFoodZ:       entities.CharacterZIndex + 1,
	}

	s.characterSystem = systems.NewCharacterSystem(em, opts.FrameClock, opts.Scheduler, opts.Sound, opts.Random, cfg)
	s.dragSystem = systems.NewDragSystem(em, utils.Size{Width: config.DesignWidth, Height: config.DesignHeight})
	s.buttonSystem = systems.NewButtonSystem(em)
	s.renderSystem = systems.NewRenderSystem(em, rm)

	// 按钮优先，其次食物（绘制在角色之上），最后角色
	s.inputSystem = systems.NewInputSystem(s.buttonSystem, s.dragSystem, &characterTouchHandler{scene: s})
	s.inputSystem.BindKey(ebiten.KeyM, s.toggleSound)

	s.characterID = entities.NewCharacterEntity(em, cfg.Character)
	s.buttonID = entities.NewSpawnButton(em, spawnButtonLabel, func() { s.SpawnFood() })

	log.Printf("[PlaygroundScene] 场景创建完成: character=%d button=%d", s.characterID, s.buttonID)
	return s
}

// CharacterID 返回角色实体ID
func (s *PlaygroundScene) CharacterID() ecs.EntityID {
	return s.characterID
}

// EntityManager 返回场景的实体管理器
func (s *PlaygroundScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// CharacterSystem 返回角色系统
func (s *PlaygroundScene) CharacterSystem() *systems.CharacterSystem {
	return s.characterSystem
}

// Update 处理输入，刷新按钮状态，清理被吃掉的食物
func (s *PlaygroundScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.refresh(deltaTime)
}

// HandlePointer 注入一个指针事件（不经过 ebiten 输入轮询）
func (s *PlaygroundScene) HandlePointer(ev utils.PointerEvent) {
	s.inputSystem.Dispatch([]utils.PointerEvent{ev})
	s.refresh(0)
}

func (s *PlaygroundScene) refresh(deltaTime float64) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.buttonID); ok {
		button.Enabled = s.CanSpawnFood()
	}
	s.buttonSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制背景、实体以及调试信息
func (s *PlaygroundScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)

	if s.verbose {
		s.drawDebug(screen)
	}
}

// Close 取消角色的所有挂起定时器和跳跃
func (s *PlaygroundScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.characterSystem.Shutdown(s.characterID)
	log.Printf("[PlaygroundScene] 场景关闭")
}

// FoodCount 当前存在且未被吃掉的食物数量
func (s *PlaygroundScene) FoodCount() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.FoodComponent](s.entityManager) {
		food, _ := ecs.GetComponent[*components.FoodComponent](s.entityManager, id)
		if !food.IsBeingEaten {
			n++
		}
	}
	return n
}

// CanSpawnFood 食物未达上限且角色不在进食时可以投放
func (s *PlaygroundScene) CanSpawnFood() bool {
	if s.FoodCount() >= s.config.Food.MaxCount {
		return false
	}
	state, _ := s.characterState()
	return state != types.StateEating
}

// SpawnFood 在投放位置创建一个食物，返回是否成功
func (s *PlaygroundScene) SpawnFood() (ecs.EntityID, bool) {
	if !s.CanSpawnFood() {
		log.Printf("[PlaygroundScene] 不能投放食物: count=%d", s.FoodCount())
		return 0, false
	}

	id := entities.NewFoodEntity(s.entityManager, s.config.Food, s.nextFoodZ)
	s.nextFoodZ++

	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	drag.OnDragStart = func(ecs.EntityID, float64, float64) {
		s.characterSystem.OnDragStart(s.characterID)
	}
	drag.OnDragMove = func(_ ecs.EntityID, x, y float64) {
		s.characterSystem.LookAt(s.characterID, x, y)
	}
	drag.OnDragEnd = s.onFoodDropped

	if s.sound != nil {
		s.sound.PlaySound(systems.SoundPop)
	}
	log.Printf("[PlaygroundScene] 投放食物 %d", id)
	return id, true
}

// onFoodDropped 食物松开：角色停止注视；落在空闲的角色身上时开始进食
func (s *PlaygroundScene) onFoodDropped(foodID ecs.EntityID, x, y float64) {
	s.characterSystem.OnDragEnd(s.characterID)

	if !s.characterSystem.ContainsPoint(s.characterID, x, y) || !s.characterSystem.IsReady(s.characterID) {
		return
	}

	// 进食期间食物位置归角色所有，拖拽必须先关闭
	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, foodID)
	food, _ := ecs.GetComponent[*components.FoodComponent](s.entityManager, foodID)
	drag.IsEnabled = false
	food.IsBeingEaten = true

	done, ok := s.characterSystem.Eat(s.characterID, foodID, func() {
		s.entityManager.DestroyEntity(foodID)
		log.Printf("[PlaygroundScene] 食物 %d 已被吃掉", foodID)
	})
	if !ok {
		drag.IsEnabled = true
		food.IsBeingEaten = false
		return
	}
	done.Then(func() {
		log.Printf("[PlaygroundScene] 进食结束")
	})
}

func (s *PlaygroundScene) toggleSound() {
	if s.settings == nil {
		return
	}
	enabled, err := s.settings.ToggleSound()
	if err != nil {
		log.Printf("[PlaygroundScene] 保存音效设置失败: %v", err)
	}
	log.Printf("[PlaygroundScene] 音效: %v", enabled)
}

func (s *PlaygroundScene) characterState() (types.ActivityState, bool) {
	c, ok := ecs.GetComponent[*components.CharacterComponent](s.entityManager, s.characterID)
	if !ok {
		return types.StateReady, false
	}
	return c.State, true
}

// drawDebug 绘制角色状态和命中区域
func (s *PlaygroundScene) drawDebug(screen *ebiten.Image) {
	c, ok := ecs.GetComponent[*components.CharacterComponent](s.entityManager, s.characterID)
	if !ok {
		return
	}

	info := fmt.Sprintf("state=%s dir=%s impatient=%v watching=%v foods=%d",
		c.State, c.Direction, c.IsWaitingImpatiently, c.IsWatching, s.FoodCount())
	ebitenutil.DebugPrintAt(screen, info, 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 10, 26)

	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, s.characterID); ok {
		w, h := c.Width*scale.ScaleX, c.Height*scale.ScaleY
		vector.StrokeRect(screen, float32(c.BaseX-w/2), float32(c.BaseY-h/2), float32(w), float32(h), 1, debugBoxColor, false)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.FoodComponent, *components.PositionComponent, *components.ClickableComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		click, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		w, h := click.Width*s.config.Food.Scale, click.Height*s.config.Food.Scale
		vector.StrokeRect(screen, float32(pos.X-w/2), float32(pos.Y-h/2), float32(w), float32(h), 1, debugBoxColor, false)
	}
}

// characterTouchHandler 把落在角色身上的按下事件转换为点击跳跃
type characterTouchHandler struct {
	scene *PlaygroundScene
}

func (h *characterTouchHandler) HandlePointerDown(x, y float64) bool {
	s := h.scene
	if !s.characterSystem.ContainsPoint(s.characterID, x, y) {
		return false
	}
	s.characterSystem.OnTouch(s.characterID)
	return true
}

func (h *characterTouchHandler) HandlePointerMove(x, y float64) {}

func (h *characterTouchHandler) HandlePointerUp(x, y float64) {}
