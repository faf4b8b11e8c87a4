package systems

import (
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/utils"
)

// InputSystem 把 Ebitengine 的鼠标/触摸状态转换为宿主事件
//
// 事件只进入队列，不直接修改模拟状态；场景在下一帧开始时统一处理。
//   - 指针在视口内且位置变化时推送 PointerMove
//   - 指针离开视口（或触摸结束）时推送一次 PointerLeave
//   - 左键按下或新的触摸推送 Click
type InputSystem struct {
	queue *game.EventQueue

	inside       bool
	lastX, lastY int
}

// NewInputSystem 创建输入系统
func NewInputSystem(queue *game.EventQueue) *InputSystem {
	return &InputSystem{queue: queue}
}

// Poll 读取当前帧的输入并推送事件
func (s *InputSystem) Poll(width, height int) {
	s.Process(utils.SamplePointer(), width, height)
}

// Process 根据一次指针采样推送事件
func (s *InputSystem) Process(sample utils.PointerSample, width, height int) {
	in := sample.InViewport(width, height)

	if in {
		if !s.inside || sample.X != s.lastX || sample.Y != s.lastY {
			s.queue.Push(game.Event{
				Type: game.EventPointerMove,
				X:    float64(sample.X),
				Y:    float64(sample.Y),
			})
		}
		s.inside = true
		s.lastX, s.lastY = sample.X, sample.Y
	} else if s.inside {
		s.queue.Push(game.Event{Type: game.EventPointerLeave})
		s.inside = false
	}

	if in && sample.JustPressed {
		s.queue.Push(game.Event{
			Type: game.EventClick,
			X:    float64(sample.X),
			Y:    float64(sample.Y),
		})
	}
}
