package systems

import (
	"log"
	"math"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/game"
)

// PhaseSystem 动画状态机
//
// 开场 → 交互 → 汇聚 → 重置 → 开场，循环往复。
// 每帧先递增计时器，计时器超过当前阶段时长时转场并归零。
//
// 转场的副作用（清除文字、分配目标、显示结束语、重新初始化）
// 通过回调交给场景执行，系统本身只维护阶段与画布透明度。
type PhaseSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GreetingState

	// phaseEntity 阶段状态实体
	phaseEntity ecs.EntityID

	// 转场回调，每次转场只触发一次
	onEnterCulmination func() // 交互 → 汇聚
	onExitCulmination  func() // 汇聚 → 重置
	onLoopComplete     func() // 重置 → 开场
}

// NewPhaseSystem 创建状态机，初始处于开场阶段、画布完全透明
func NewPhaseSystem(em *ecs.EntityManager, gs *game.GreetingState) *PhaseSystem {
	system := &PhaseSystem{
		entityManager: em,
		gameState:     gs,
	}

	system.phaseEntity = em.CreateEntity()
	ecs.AddComponent(em, system.phaseEntity, &components.PhaseComponent{
		Current:     components.PhaseIntro,
		Timer:       0,
		GlobalAlpha: 0,
	})

	log.Printf("[PhaseSystem] Initialized (phase=%s)", components.PhaseIntro)
	return system
}

// SetOnEnterCulmination 设置进入汇聚阶段的回调
func (s *PhaseSystem) SetOnEnterCulmination(callback func()) {
	s.onEnterCulmination = callback
}

// SetOnExitCulmination 设置离开汇聚阶段的回调
func (s *PhaseSystem) SetOnExitCulmination(callback func()) {
	s.onExitCulmination = callback
}

// SetOnLoopComplete 设置一次完整循环结束（重置 → 开场）的回调
func (s *PhaseSystem) SetOnLoopComplete(callback func()) {
	s.onLoopComplete = callback
}

func (s *PhaseSystem) component() *components.PhaseComponent {
	pc, ok := ecs.GetComponent[*components.PhaseComponent](s.entityManager, s.phaseEntity)
	if !ok {
		// 阶段实体不应被销毁；被外部移除时恢复为开场阶段
		pc = &components.PhaseComponent{Current: components.PhaseIntro}
		s.phaseEntity = s.entityManager.CreateEntity()
		ecs.AddComponent(s.entityManager, s.phaseEntity, pc)
		log.Printf("[PhaseSystem] Warning: phase entity missing, recreated")
	}
	return pc
}

// Tick 推进状态机一帧
func (s *PhaseSystem) Tick() {
	pc := s.component()
	durations := s.gameState.Config.Phases

	// 重置阶段的淡出跨帧保持，其余阶段每帧从不透明开始
	if pc.Current != components.PhaseReset {
		pc.GlobalAlpha = 1
	}

	pc.Timer++

	switch pc.Current {
	case components.PhaseIntro:
		pc.GlobalAlpha = math.Min(1, float64(pc.Timer)/(float64(durations.Intro)*durations.IntroFadeRatio))
		if pc.Timer > durations.Intro {
			s.transition(pc, components.PhaseInteractive)
		}

	case components.PhaseInteractive:
		if pc.Timer > durations.Interactive {
			s.transition(pc, components.PhaseCulmination)
			if s.onEnterCulmination != nil {
				s.onEnterCulmination()
			}
		}

	case components.PhaseCulmination:
		if pc.Timer > durations.Culmination {
			s.transition(pc, components.PhaseReset)
			if s.onExitCulmination != nil {
				s.onExitCulmination()
			}
		}

	case components.PhaseReset:
		pc.GlobalAlpha = math.Max(0, 1-float64(pc.Timer)/float64(durations.Reset))
		if pc.Timer > durations.Reset {
			s.transition(pc, components.PhaseIntro)
			pc.Loops++
			if s.onLoopComplete != nil {
				s.onLoopComplete()
			}
		}
	}
}

func (s *PhaseSystem) transition(pc *components.PhaseComponent, next components.Phase) {
	log.Printf("[PhaseSystem] %s -> %s", pc.Current, next)
	pc.Current = next
	pc.Timer = 0
}

// Phase 返回当前阶段
func (s *PhaseSystem) Phase() components.Phase {
	return s.component().Current
}

// Timer 返回当前阶段内已经过的帧数
func (s *PhaseSystem) Timer() int {
	return s.component().Timer
}

// GlobalAlpha 返回画布整体透明度 [0, 1]
func (s *PhaseSystem) GlobalAlpha() float64 {
	return s.component().GlobalAlpha
}

// Loops 返回本次运行完成的循环次数
func (s *PhaseSystem) Loops() int {
	return s.component().Loops
}
