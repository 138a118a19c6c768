package entities

import (
	"github.com/decker502/mascot/pkg/components"
	"github.com/decker502/mascot/pkg/config"
	"github.com/decker502/mascot/pkg/ecs"
	"github.com/decker502/mascot/pkg/types"
)

const (
	// CharacterZIndex 角色绘制层级，食物始终在角色之上
	CharacterZIndex = 0
	// FoodTextureKey 食物贴图ID
	FoodTextureKey = "karaage"
	// SpawnButtonTextureKey 投放按钮贴图ID
	SpawnButtonTextureKey = "spawn-button"
)

// NewCharacterEntity 创建吉祥物角色实体
// 参数:
//   - em: EntityManager 实例
//   - cfg: 角色配置（初始落点、贴图尺寸、缩放）
//
// 返回: 创建的实体ID
//
// 角色初始朝向正面、状态为 Ready。跳跃计时器由 CharacterSystem 在第一次跳跃时创建。
func NewCharacterEntity(em *ecs.EntityManager, cfg config.CharacterConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: cfg.StartX,
		Y: cfg.StartY,
	})
	em.AddComponent(id, &components.ScaleComponent{
		ScaleX: cfg.Scale,
		ScaleY: cfg.Scale,
	})
	em.AddComponent(id, &components.SpriteComponent{
		TextureKey: types.DirectionFront.TextureName(),
		ZIndex:     CharacterZIndex,
		Alpha:      1.0,
	})
	em.AddComponent(id, &components.CharacterComponent{
		BaseX:     cfg.StartX,
		BaseY:     cfg.StartY,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Direction: types.DirectionFront,
		State:     types.StateReady,
	})

	return id
}

// NewFoodEntity 创建一个唐扬实体（可拖拽目标）
// 参数:
//   - em: EntityManager 实例
//   - cfg: 食物配置（投放位置、尺寸、缩放）
//   - zIndex: 绘制层级，调用方保证新食物在已有食物之上
//
// 返回: 创建的实体ID
func NewFoodEntity(em *ecs.EntityManager, cfg config.FoodConfig, zIndex int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: cfg.SpawnX,
		Y: cfg.SpawnY,
	})
	em.AddComponent(id, &components.ScaleComponent{
		ScaleX: cfg.Scale,
		ScaleY: cfg.Scale,
	})
	em.AddComponent(id, &components.SpriteComponent{
		TextureKey: FoodTextureKey,
		ZIndex:     zIndex,
		Alpha:      1.0,
	})
	// 可点击区域为贴图未缩放尺寸，命中检测时乘以缩放
	em.AddComponent(id, &components.ClickableComponent{
		Width:     cfg.Width,
		Height:    cfg.Height,
		IsEnabled: true,
	})
	em.AddComponent(id, &components.DraggableComponent{
		IsEnabled: true,
	})
	em.AddComponent(id, &components.FoodComponent{})

	return id
}

// NewSpawnButton 创建投放食物按钮
func NewSpawnButton(em *ecs.EntityManager, label string, onClick func()) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{
		X: config.SpawnButtonX,
		Y: config.SpawnButtonY,
	})
	em.AddComponent(id, &components.ButtonComponent{
		TextureKey: SpawnButtonTextureKey,
		Label:      label,
		Width:      config.SpawnButtonWidth,
		Height:     config.SpawnButtonHeight,
		State:      components.UINormal,
		Enabled:    true,
		OnClick:    onClick,
	})

	return id
}
