package systems

import (
	"log"

	"github.com/decker502/mascot/pkg/clock"
	"github.com/decker502/mascot/pkg/components"
	"github.com/decker502/mascot/pkg/config"
	"github.com/decker502/mascot/pkg/ecs"
	"github.com/decker502/mascot/pkg/motion"
	"github.com/decker502/mascot/pkg/types"
	"github.com/decker502/mascot/pkg/utils"
)

// 音效资源ID
const (
	SoundPakupaku = "pakupakuSound" // 每一口
	SoundTouch    = "touchSound"    // 点击跳跃
	SoundPop      = "popSound"      // 投放食物
)

// SoundPlayer 按逻辑名称播放音效（即发即忘）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// CharacterSystem 吉祥物角色状态机
//
// 职责：
//   - 点击跳跃（Ready/Jumping 时接受，Eating/Prompting 时忽略）
//   - 注视被拖动的食物并更新朝向
//   - 注视期间的催促定时器与拖拽结束后的放弃定时器
//   - 进食序列
//
// 所有回调都在游戏循环中执行：帧回调由 FrameClock 驱动，延迟回调由 DelayScheduler 驱动。
// 非法状态下的请求静默忽略，只记录日志。
type CharacterSystem struct {
	entityManager *ecs.EntityManager
	frameClock    clock.FrameClock
	scheduler     clock.DelayScheduler
	sound         SoundPlayer
	random        utils.RandomSource
	config        *config.MascotConfig
	resolver      utils.DirectionResolver
}

// NewCharacterSystem 创建角色系统
//
// 参数：
//   - em: 实体管理器
//   - frameClock: 驱动跳跃动画的逐帧时钟
//   - scheduler: 一次性延迟定时器
//   - sound: 音效端口，可为 nil
//   - random: 随机数来源，测试中注入固定值
//   - cfg: 调参配置，nil 时使用默认配置
func NewCharacterSystem(
	em *ecs.EntityManager,
	frameClock clock.FrameClock,
	scheduler clock.DelayScheduler,
	sound SoundPlayer,
	random utils.RandomSource,
	cfg *config.MascotConfig,
) *CharacterSystem {
	if cfg == nil {
		cfg = config.DefaultMascotConfig()
	}
	if random == nil {
		random = utils.DefaultRandomSource()
	}
	return &CharacterSystem{
		entityManager: em,
		frameClock:    frameClock,
		scheduler:     scheduler,
		sound:         sound,
		random:        random,
		config:        cfg,
		resolver: utils.DirectionResolver{
			MarginTop:     cfg.Direction.MarginTop,
			MarginBottom:  cfg.Direction.MarginBottom,
			FrontAreaSide: cfg.Direction.FrontAreaSide,
		},
	}
}

// ========== 查询 ==========

// IsReady 角色是否空闲
func (s *CharacterSystem) IsReady(id ecs.EntityID) bool {
	c, ok := s.character(id)
	return ok && c.State == types.StateReady
}

// CurrentDirection 当前朝向
func (s *CharacterSystem) CurrentDirection(id ecs.EntityID) types.Direction {
	c, ok := s.character(id)
	if !ok {
		return types.DirectionFront
	}
	return c.Direction
}

// RestingPosition 逻辑落点（跳跃中显示位置会偏离它）
func (s *CharacterSystem) RestingPosition(id ecs.EntityID) (x, y float64) {
	c, ok := s.character(id)
	if !ok {
		return 0, 0
	}
	return c.BaseX, c.BaseY
}

// SetRestingPosition 移动落点，同时把显示位置对齐到落点
// 跳跃中调用时，新落点在下一次跳跃开始后生效
func (s *CharacterSystem) SetRestingPosition(id ecs.EntityID, x, y float64) {
	c, ok := s.character(id)
	if !ok {
		return
	}
	c.BaseX, c.BaseY = x, y
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X = x
		if !s.motion(c).IsActive() {
			pos.Y = y
		}
	}
}

// LocalPoint 把全局坐标换算为角色的局部坐标（以显示位置为中心，除以缩放）
func (s *CharacterSystem) LocalPoint(id ecs.EntityID, globalX, globalY float64) (utils.Point, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return utils.Point{}, false
	}
	scaleX, scaleY := 1.0, 1.0
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scaleX, scaleY = sc.ScaleX, sc.ScaleY
	}
	return utils.ToLocal(utils.Point{X: globalX, Y: globalY}, utils.Point{X: pos.X, Y: pos.Y}, scaleX, scaleY), true
}

// ContainsPoint 全局坐标是否落在角色的显示范围内
func (s *CharacterSystem) ContainsPoint(id ecs.EntityID, globalX, globalY float64) bool {
	c, ok := s.character(id)
	if !ok {
		return false
	}
	local, ok := s.LocalPoint(id, globalX, globalY)
	if !ok {
		return false
	}
	return utils.ContainsLocal(local, utils.Size{Width: c.Width, Height: c.Height})
}

// ========== 点击 ==========

// OnTouch 点击角色：朝向正面并跳一下
//
// Ready 与 Jumping 时接受；跳跃中再次点击会打断当前跳跃重新起跳。
// 返回 false 表示请求被忽略。
func (s *CharacterSystem) OnTouch(id ecs.EntityID) bool {
	c, ok := s.character(id)
	if !ok {
		return false
	}
	if c.State != types.StateReady && c.State != types.StateJumping {
		log.Printf("[CharacterSystem] Touch ignored while %s", c.State)
		return false
	}

	params := s.jumpParams(s.config.Character.TouchJumpPower)
	err := s.motion(c).StartJump(params, c.BaseY, s.displayY(id), func() {
		if c.State == types.StateJumping {
			c.State = types.StateReady
		}
	})
	if err != nil {
		log.Printf("[CharacterSystem] Touch jump rejected: %v", err)
		return false
	}

	s.setDirection(id, c, types.DirectionFront)
	s.playSound(SoundTouch)
	c.State = types.StateJumping
	return true
}

// ========== 注视 ==========

// LookAt 以全局坐标驱动注视（拖拽移动的便捷入口）
func (s *CharacterSystem) LookAt(id ecs.EntityID, globalX, globalY float64) {
	local, ok := s.LocalPoint(id, globalX, globalY)
	if !ok {
		return
	}
	s.OnDragMove(id, local)
}

// OnDragStart 开始拖动食物：进入注视，取消放弃定时器，必要时启动催促定时器
// 朝向等到第一次移动再更新；进食中忽略
func (s *CharacterSystem) OnDragStart(id ecs.EntityID) {
	c, ok := s.character(id)
	if !ok || c.State == types.StateEating {
		return
	}
	c.IsWatching = true
	s.keepWatching(id, c)
}

// OnDragMove 食物被拖动：更新朝向，取消放弃定时器，必要时启动催促定时器
// 进食中忽略
func (s *CharacterSystem) OnDragMove(id ecs.EntityID, local utils.Point) {
	c, ok := s.character(id)
	if !ok || c.State == types.StateEating {
		return
	}

	c.IsWatching = true
	dir := s.resolver.Resolve(local, utils.Size{Width: c.Width, Height: c.Height})
	s.setDirection(id, c, dir)
	s.keepWatching(id, c)
}

// keepWatching 取消放弃定时器；没有催促定时器时启动一个
func (s *CharacterSystem) keepWatching(id ecs.EntityID, c *components.CharacterComponent) {
	if c.GiveUpTimer.Cancel() {
		log.Printf("[CharacterSystem] Give-up cancelled, watching again")
	}
	c.GiveUpTimer = nil

	// 催促动画进行中由其结束时负责重新启动
	if !c.PromptTimer.Pending() && c.State != types.StatePrompting {
		s.armPrompt(id, c)
	}
}

// OnDragEnd 拖拽结束：取消催促，未进食时启动放弃定时器
func (s *CharacterSystem) OnDragEnd(id ecs.EntityID) {
	c, ok := s.character(id)
	if !ok {
		return
	}

	c.IsWatching = false
	c.PromptTimer.Cancel()
	c.PromptTimer = nil

	if c.State == types.StateEating {
		return
	}

	c.GiveUpTimer.Cancel()
	lo, hi := s.config.Timing.GiveUpDelay.Bounds()
	delay := utils.RandomDuration(s.random, lo, hi)
	c.GiveUpTimer = s.scheduler.After(delay, func() { s.giveUp(id, c) })
	log.Printf("[CharacterSystem] Give-up armed in %v", delay)
}

// Shutdown 取消角色挂起的后台定时器并停止跳跃，场景关闭时调用
func (s *CharacterSystem) Shutdown(id ecs.EntityID) {
	c, ok := s.character(id)
	if !ok {
		return
	}
	c.IsWatching = false
	c.PromptTimer.Cancel()
	c.PromptTimer = nil
	c.GiveUpTimer.Cancel()
	c.GiveUpTimer = nil
	if c.Motion != nil {
		c.Motion.Cancel()
	}
}

func (s *CharacterSystem) giveUp(id ecs.EntityID, c *components.CharacterComponent) {
	c.GiveUpTimer = nil
	s.setDirection(id, c, types.DirectionFront)
	c.IsWaitingImpatiently = false
	log.Printf("[CharacterSystem] Gave up waiting")
}

// armPrompt 以新的随机延迟（重新）启动催促定时器
func (s *CharacterSystem) armPrompt(id ecs.EntityID, c *components.CharacterComponent) {
	c.PromptTimer.Cancel()
	lo, hi := s.config.Timing.PromptDelay.Bounds()
	delay := utils.RandomDuration(s.random, lo, hi)
	c.PromptTimer = s.scheduler.After(delay, func() { s.firePrompt(id, c) })
}

// firePrompt 催促定时器到期
// 非空闲时推迟重试；空闲时弹跳 1~2 次并标记"等得不耐烦"
func (s *CharacterSystem) firePrompt(id ecs.EntityID, c *components.CharacterComponent) {
	c.PromptTimer = nil

	if c.State != types.StateReady {
		s.armPrompt(id, c)
		return
	}

	t := s.config.Timing
	bounces := utils.RandomIntInclusive(s.random, t.PromptBounces.Min, t.PromptBounces.Max)
	log.Printf("[CharacterSystem] Prompting with %d bounce(s)", bounces)

	c.State = types.StatePrompting
	bounce := []motion.Step{
		motion.Await(func() *motion.Signal {
			return s.jumpAndWait(id, c, s.config.Character.PromptJumpPower)
		}),
		motion.Wait(s.scheduler, config.Ms(t.PromptPauseMs)),
	}
	steps := append(motion.Repeat(bounces, bounce...), motion.Do(func() {
		// 催促期间已经放弃等待时不再标记
		if c.IsWatching || c.GiveUpTimer.Pending() {
			c.IsWaitingImpatiently = true
		}
		c.State = types.StateReady
		if c.IsWatching && !c.GiveUpTimer.Pending() {
			s.armPrompt(id, c)
		}
	}))
	motion.Run(steps...)
}

// ========== 进食 ==========

// Eat 进食序列
//
// 只能从 Ready 开始；否则是空操作，返回 (nil, false)，onConsumed 永远不会被调用。
// 序列：
//  1. 取消后台定时器，进入 Eating 并朝向正面，把食物移到嘴边
//  2. 三口：等待 → 咀嚼音效 → 小跳（等待落地）
//  3. 吞咽停顿后调用 onConsumed（由调用方移除食物）
//  4. 等待 → 开心跳；开始时已等得不耐烦则再等待 → 开心跳 → 停顿
//  5. 清除不耐烦标记，回到 Ready
//
// 返回的 Signal 在序列全部结束时完成。
func (s *CharacterSystem) Eat(id, foodID ecs.EntityID, onConsumed func()) (*motion.Signal, bool) {
	c, ok := s.character(id)
	if !ok {
		return nil, false
	}
	if c.State != types.StateReady {
		log.Printf("[CharacterSystem] Eat ignored while %s", c.State)
		return nil, false
	}

	c.PromptTimer.Cancel()
	c.PromptTimer = nil
	c.GiveUpTimer.Cancel()
	c.GiveUpTimer = nil

	impatient := c.IsWaitingImpatiently
	c.State = types.StateEating
	s.setDirection(id, c, types.DirectionFront)

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, foodID); ok {
		pos.X = c.BaseX + s.config.Character.MouthOffsetX
		pos.Y = c.BaseY + s.config.Character.MouthOffsetY
	}

	t := s.config.Timing
	ch := s.config.Character
	happyJump := motion.Await(func() *motion.Signal { return s.jumpAndWait(id, c, ch.HappyJumpPower) })

	nibble := []motion.Step{
		motion.Wait(s.scheduler, config.Ms(t.NibbleDelayMs)),
		motion.Do(func() { s.playSound(SoundPakupaku) }),
		motion.Await(func() *motion.Signal { return s.jumpAndWait(id, c, ch.NibbleJumpPower) }),
	}

	steps := motion.Repeat(t.NibbleCount, nibble...)
	steps = append(steps,
		motion.Wait(s.scheduler, config.Ms(t.SwallowPauseMs)),
		motion.Do(func() {
			if onConsumed != nil {
				onConsumed()
			}
		}),
		motion.Wait(s.scheduler, config.Ms(t.HappyDelayMs)),
		happyJump,
	)
	if impatient {
		steps = append(steps,
			motion.Wait(s.scheduler, config.Ms(t.HappyDelayMs)),
			happyJump,
			motion.Wait(s.scheduler, config.Ms(t.HappyDelayMs)),
		)
	}
	steps = append(steps, motion.Do(func() {
		c.IsWaitingImpatiently = false
		c.State = types.StateReady
		log.Printf("[CharacterSystem] Finished eating")
	}))

	log.Printf("[CharacterSystem] Eating food %d (impatient=%v)", foodID, impatient)
	return motion.Run(steps...), true
}

// ========== 内部 ==========

func (s *CharacterSystem) character(id ecs.EntityID) (*components.CharacterComponent, bool) {
	return ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
}

// motion 返回角色独占的跳跃计时器，首次使用时创建
func (s *CharacterSystem) motion(c *components.CharacterComponent) *motion.MotionTimer {
	if c.Motion == nil {
		c.Motion = motion.NewMotionTimer(s.frameClock)
	}
	return c.Motion
}

func (s *CharacterSystem) jumpParams(power float64) motion.JumpParams {
	return motion.JumpParams{Gravity: s.config.Character.Gravity, Power: power}
}

// jumpAndWait 跳一次并返回落地信号；参数非法时返回 nil（序列直接继续）
func (s *CharacterSystem) jumpAndWait(id ecs.EntityID, c *components.CharacterComponent, power float64) *motion.Signal {
	sig, err := s.motion(c).JumpAndWait(s.jumpParams(power), c.BaseY, s.displayY(id))
	if err != nil {
		log.Printf("[CharacterSystem] Jump rejected: %v", err)
		return nil
	}
	return sig
}

// displayY 返回写入角色显示位置Y的回调
func (s *CharacterSystem) displayY(id ecs.EntityID) func(y float64) {
	return func(y float64) {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			pos.Y = y
		}
	}
}

// setDirection 修改朝向并同步贴图
func (s *CharacterSystem) setDirection(id ecs.EntityID, c *components.CharacterComponent, dir types.Direction) {
	c.Direction = dir
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.TextureKey = dir.TextureName()
	}
}

func (s *CharacterSystem) playSound(soundID string) {
	if s.sound != nil {
		s.sound.PlaySound(soundID)
	}
}
