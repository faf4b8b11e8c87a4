package game

import (
	"math/rand/v2"

	"github.com/decker502/greeting/pkg/config"
)

// PointerState 指针状态
// 由指针移动事件写入、离开事件清除，环境粒子与光标标记每帧读取
type PointerState struct {
	X, Y   float64
	Known  bool    // 指针是否在视口内
	Radius float64 // 影响半径
}

// GreetingState 动画的模拟上下文
//
// 阶段、指针、视口与随机源都显式放在这里并传给各个系统，
// 不使用包级全局变量，因此同一进程内可以并存多个独立的模拟（测试中常用）。
type GreetingState struct {
	Config  *config.GreetingConfig
	Rand    *rand.Rand
	Pointer PointerState

	// 视口尺寸（逻辑像素）
	Width  int
	Height int

	// Settings 持久化设置，可为 nil
	Settings *SettingsManager
}

// NewGreetingState 创建模拟上下文
//
// 参数：
//   - cfg: 动画配置，nil 时使用默认配置
//   - seed: 随机种子，相同种子产生相同的粒子属性序列
func NewGreetingState(cfg *config.GreetingConfig, seed uint64) *GreetingState {
	if cfg == nil {
		cfg = config.DefaultGreetingConfig()
	}
	return &GreetingState{
		Config: cfg,
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Pointer: PointerState{
			Radius: cfg.Particles.PointerRadius,
		},
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	}
}

// Random 返回 [0, 1) 的随机数
func (gs *GreetingState) Random() float64 {
	return gs.Rand.Float64()
}

// RandomIn 返回 [min, min+span) 的随机数
func (gs *GreetingState) RandomIn(min, span float64) float64 {
	return min + gs.Rand.Float64()*span
}

// SetViewport 更新视口尺寸，负值按 0 处理
func (gs *GreetingState) SetViewport(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	gs.Width = width
	gs.Height = height
}

// MovePointer 记录指针位置
func (gs *GreetingState) MovePointer(x, y float64) {
	gs.Pointer.X = x
	gs.Pointer.Y = y
	gs.Pointer.Known = true
}

// ClearPointer 指针离开视口
func (gs *GreetingState) ClearPointer() {
	gs.Pointer.Known = false
}
