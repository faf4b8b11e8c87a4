package components

// Phase 动画阶段
type Phase int

const (
	// PhaseIntro 开场淡入
	PhaseIntro Phase = iota
	// PhaseInteractive 自由交互
	PhaseInteractive
	// PhaseCulmination 粒子汇聚成符号
	PhaseCulmination
	// PhaseReset 淡出并重置
	PhaseReset
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseInteractive:
		return "interactive"
	case PhaseCulmination:
		return "culmination"
	case PhaseReset:
		return "reset"
	default:
		return "unknown"
	}
}

// PhaseComponent 动画状态机组件
//
// 任意时刻只有一个阶段处于激活状态；
// Timer 在阶段内逐帧递增，超过该阶段时长时转场并归零。
type PhaseComponent struct {
	Current Phase
	Timer   int

	// GlobalAlpha 画布整体透明度（开场淡入、重置淡出）
	GlobalAlpha float64

	// Loops 已完成的完整循环次数
	Loops int
}
