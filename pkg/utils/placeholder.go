package utils

import (
	"hash/fnv"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/mascot/pkg/types"
)

// 占位贴图配色
var placeholderPalette = struct {
	Body    color.RGBA
	Cheek   color.RGBA
	Eye     color.RGBA
	Food    color.RGBA
	Crust   color.RGBA
	Button  color.RGBA
	Border  color.RGBA
	Unknown color.RGBA
}{
	Body:    color.RGBA{240, 150, 175, 255}, // 粉色身体
	Cheek:   color.RGBA{250, 110, 140, 255},
	Eye:     color.RGBA{40, 30, 40, 255},
	Food:    color.RGBA{210, 140, 50, 255}, // 炸鸡块
	Crust:   color.RGBA{160, 95, 30, 255},
	Button:  color.RGBA{90, 160, 220, 255},
	Border:  color.RGBA{250, 250, 250, 255},
	Unknown: color.RGBA{128, 128, 128, 255},
}

// NewPlaceholderImage 为缺失的贴图生成占位图
//
// 角色贴图（bocchi-<方向>）画成圆形身体，眼睛朝向对应方向偏移，
// 便于在没有美术资源时肉眼确认方向判定；其他贴图按键名生成纯色块。
func NewPlaceholderImage(key string, width, height int) *ebiten.Image {
	if width <= 0 {
		width = 64
	}
	if height <= 0 {
		height = 64
	}
	img := ebiten.NewImage(width, height)
	w, h := float32(width), float32(height)
	r := min(w, h) / 2

	switch {
	case strings.HasPrefix(key, "bocchi-"):
		dir, _ := types.ParseDirection(key)
		cx, cy := w/2, h/2
		vector.DrawFilledCircle(img, cx, cy, r*0.9, placeholderPalette.Body, true)

		gx, gy := GazeOffset(dir)
		ex, ey := cx+float32(gx)*r*0.3, cy+float32(gy)*r*0.3
		vector.DrawFilledCircle(img, ex-r*0.25, ey-r*0.1, r*0.08, placeholderPalette.Eye, true)
		vector.DrawFilledCircle(img, ex+r*0.25, ey-r*0.1, r*0.08, placeholderPalette.Eye, true)
		vector.DrawFilledCircle(img, ex-r*0.4, ey+r*0.15, r*0.1, placeholderPalette.Cheek, true)
		vector.DrawFilledCircle(img, ex+r*0.4, ey+r*0.15, r*0.1, placeholderPalette.Cheek, true)

	case key == "karaage":
		vector.DrawFilledCircle(img, w/2, h/2, r*0.9, placeholderPalette.Crust, true)
		vector.DrawFilledCircle(img, w/2-r*0.1, h/2-r*0.1, r*0.7, placeholderPalette.Food, true)

	case strings.HasSuffix(key, "-button"):
		vector.DrawFilledRect(img, 0, 0, w, h, placeholderPalette.Button, false)
		vector.StrokeRect(img, 1, 1, w-2, h-2, 2, placeholderPalette.Border, false)

	default:
		img.Fill(PlaceholderColor(key))
	}

	return img
}

// GazeOffset 返回方向对应的单位偏移（屏幕坐标系，y 向下为正）
func GazeOffset(d types.Direction) (dx, dy float64) {
	const diag = 0.7071067811865476
	switch d {
	case types.DirectionUp:
		return 0, -1
	case types.DirectionUpLeft:
		return -diag, -diag
	case types.DirectionUpRight:
		return diag, -diag
	case types.DirectionFrontLeft:
		return -0.5, 0
	case types.DirectionFrontRight:
		return 0.5, 0
	case types.DirectionLeft:
		return -1, 0
	case types.DirectionRight:
		return 1, 0
	case types.DirectionDown:
		return 0, 1
	case types.DirectionDownLeft:
		return -diag, diag
	case types.DirectionDownRight:
		return diag, diag
	default:
		return 0, 0
	}
}

// PlaceholderColor 根据键名生成稳定的颜色
func PlaceholderColor(key string) color.RGBA {
	if key == "" {
		return placeholderPalette.Unknown
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	sum := h.Sum32()
	return color.RGBA{
		R: uint8(64 + sum%160),
		G: uint8(64 + (sum>>8)%160),
		B: uint8(64 + (sum>>16)%160),
		A: 255,
	}
}
