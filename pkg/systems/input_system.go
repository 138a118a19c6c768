package systems

import (
	"log"

	"github.com/decker502/mascot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerHandler 接收指针事件的系统
type PointerHandler interface {
	// HandlePointerDown 返回 true 表示事件已被处理，不再传给后续处理器
	HandlePointerDown(x, y float64) bool
	HandlePointerMove(x, y float64)
	HandlePointerUp(x, y float64)
}

// InputSystem 处理所有用户输入，包括鼠标、触摸和键盘
//
// 鼠标与触摸统一为指针事件，按注册顺序分发：
//   - 按下事件依次交给处理器，第一个返回 true 的处理器独占该次按下
//   - 移动和松开事件交给所有处理器（各处理器自行判断是否在跟踪指针）
type InputSystem struct {
	tracker  *utils.PointerTracker
	handlers []PointerHandler
	keys     map[ebiten.Key]func()
	keyOrder []ebiten.Key
}

// NewInputSystem 创建输入系统，handlers 的顺序就是按下事件的优先级
func NewInputSystem(handlers ...PointerHandler) *InputSystem {
	return &InputSystem{
		tracker:  utils.NewPointerTracker(),
		handlers: handlers,
		keys:     make(map[ebiten.Key]func()),
	}
}

// BindKey 绑定按键，按键刚按下时调用 fn
func (s *InputSystem) BindKey(key ebiten.Key, fn func()) {
	if _, exists := s.keys[key]; !exists {
		s.keyOrder = append(s.keyOrder, key)
	}
	s.keys[key] = fn
}

// Update 读取本帧输入并分发
func (s *InputSystem) Update(deltaTime float64) {
	s.Dispatch(s.tracker.Next(utils.SamplePointer()))

	for _, key := range s.keyOrder {
		if inpututil.IsKeyJustPressed(key) {
			log.Printf("[InputSystem] 按键 %v", key)
			s.keys[key]()
		}
	}
}

// Dispatch 把指针事件分发给处理器
func (s *InputSystem) Dispatch(events []utils.PointerEvent) {
	for _, ev := range events {
		switch ev.Kind {
		case utils.PointerDown:
			for _, h := range s.handlers {
				if h.HandlePointerDown(ev.X, ev.Y) {
					break
				}
			}
		case utils.PointerMove:
			for _, h := range s.handlers {
				h.HandlePointerMove(ev.X, ev.Y)
			}
		case utils.PointerUp:
			for _, h := range s.handlers {
				h.HandlePointerUp(ev.X, ev.Y)
			}
		}
	}
}
