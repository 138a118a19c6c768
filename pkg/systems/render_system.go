package systems

import (
	"image/color"
	"log"
	"sort"

	"github.com/decker502/mascot/pkg/components"
	"github.com/decker502/mascot/pkg/config"
	"github.com/decker502/mascot/pkg/ecs"
	"github.com/decker502/mascot/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// buttonLabelSize 按钮文字字号
const buttonLabelSize = 22

// RenderSystem 管理舞台上所有实体的渲染
//
// 职责范围：
//   - 精灵实体（角色、食物）：按 ZIndex 从小到大绘制，相同 ZIndex 按实体ID
//   - 按钮实体：绘制在所有精灵之上，禁用时半透明
//
// 精灵以 PositionComponent 为中心绘制，并应用 ScaleComponent 与 Alpha。
// 贴图通过 ResourceManager.ImageByID 按ID获取，缺失时得到占位图。
type RenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	labelFace       *text.GoTextFace
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager) *RenderSystem {
	face, err := rm.DefaultFont(buttonLabelSize)
	if err != nil {
		log.Printf("[RenderSystem] 加载按钮字体失败，按钮将不显示文字: %v", err)
	}
	return &RenderSystem{
		entityManager:   em,
		resourceManager: rm,
		labelFace:       face,
	}
}

// Draw 绘制所有精灵和按钮
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.SortedSprites() {
		s.drawSprite(screen, id)
	}

	buttons := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range buttons {
		s.drawButton(screen, id)
	}
}

// SortedSprites 返回需要绘制的精灵实体，按绘制顺序排列
// 隐藏的精灵不包含在内
func (s *RenderSystem) SortedSprites() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)

	visible := ids[:0]
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !sprite.Hidden {
			visible = append(visible, id)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, visible[i])
		b, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, visible[j])
		if a.ZIndex != b.ZIndex {
			return a.ZIndex < b.ZIndex
		}
		return visible[i] < visible[j]
	})
	return visible
}

// drawSprite 以实体中心为锚点绘制贴图
func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	img := s.resourceManager.ImageByID(sprite.TextureKey)
	bounds := img.Bounds()

	sx, sy := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		sx, sy = scale.ScaleX, scale.ScaleY
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(sprite.Alpha))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, op)
}

// drawButton 绘制按钮贴图（拉伸到按钮尺寸）和居中文字
func (s *RenderSystem) drawButton(screen *ebiten.Image, id ecs.EntityID) {
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	img := s.resourceManager.ImageByID(button.TextureKey)
	bounds := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(button.Width/float64(bounds.Dx()), button.Height/float64(bounds.Dy()))
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(ButtonAlpha(button)))

	switch button.State {
	case components.UIHovered:
		op.ColorScale.Scale(1.1, 1.1, 1.1, 1)
	case components.UIClicked:
		op.ColorScale.Scale(0.85, 0.85, 0.85, 1)
	}
	screen.DrawImage(img, op)

	if button.Label == "" || s.labelFace == nil {
		return
	}

	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(pos.X+button.Width/2, pos.Y+button.Height/2)
	textOp.PrimaryAlign = text.AlignCenter
	textOp.SecondaryAlign = text.AlignCenter
	textOp.ColorScale.ScaleWithColor(color.White)
	textOp.ColorScale.ScaleAlpha(float32(ButtonAlpha(button)))
	text.Draw(screen, button.Label, s.labelFace, textOp)
}

// ButtonAlpha 按钮绘制时的不透明度
func ButtonAlpha(button *components.ButtonComponent) float64 {
	if !button.Enabled {
		return config.DisabledButtonAlpha
	}
	return 1
}
