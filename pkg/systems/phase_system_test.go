package systems

import (
	"math"
	"testing"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/game"
)

// newShortPhaseState 使用缩短阶段时长的配置
func newShortPhaseState() *game.GreetingState {
	gs := newTestState(1)
	gs.Config.Phases.Intro = 10
	gs.Config.Phases.Interactive = 20
	gs.Config.Phases.Culmination = 5
	gs.Config.Phases.Reset = 4
	return gs
}

func TestPhaseSystemInitialState(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhaseSystem(em, newTestState(1))

	if system.Phase() != components.PhaseIntro {
		t.Errorf("initial phase %s, want intro", system.Phase())
	}
	if system.Timer() != 0 {
		t.Errorf("initial timer %d, want 0", system.Timer())
	}
	if system.GlobalAlpha() != 0 {
		t.Errorf("initial alpha %.2f, want 0", system.GlobalAlpha())
	}
}

func TestPhaseSystemTransitions(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newShortPhaseState()
	system := NewPhaseSystem(em, gs)

	var enter, exit, loops int
	system.SetOnEnterCulmination(func() { enter++ })
	system.SetOnExitCulmination(func() { exit++ })
	system.SetOnLoopComplete(func() { loops++ })

	// 每个阶段持续 D+1 帧：计时器先递增，超过 D 时转场
	steps := []struct {
		ticks int
		want  components.Phase
	}{
		{10, components.PhaseIntro},
		{1, components.PhaseInteractive},
		{20, components.PhaseInteractive},
		{1, components.PhaseCulmination},
		{5, components.PhaseCulmination},
		{1, components.PhaseReset},
		{4, components.PhaseReset},
		{1, components.PhaseIntro},
	}

	for i, step := range steps {
		for n := 0; n < step.ticks; n++ {
			system.Tick()
		}
		if system.Phase() != step.want {
			t.Fatalf("step %d: phase %s, want %s", i, system.Phase(), step.want)
		}
	}

	if enter != 1 || exit != 1 || loops != 1 {
		t.Errorf("callbacks enter=%d exit=%d loop=%d, want 1/1/1", enter, exit, loops)
	}
	if system.Loops() != 1 {
		t.Errorf("Loops() = %d, want 1", system.Loops())
	}
	if system.Timer() != 0 {
		t.Errorf("timer after loop %d, want 0", system.Timer())
	}
}

func TestPhaseSystemTimerMonotonicWithinPhase(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhaseSystem(em, newShortPhaseState())

	prevPhase := system.Phase()
	prevTimer := system.Timer()
	transitions := 0

	for frame := 0; frame < 500; frame++ {
		system.Tick()

		if system.Phase() == prevPhase {
			if system.Timer() != prevTimer+1 {
				t.Fatalf("frame %d: timer went %d -> %d within %s", frame, prevTimer, system.Timer(), prevPhase)
			}
		} else {
			transitions++
			if system.Timer() != 0 {
				t.Fatalf("frame %d: timer %d after transition, want 0", frame, system.Timer())
			}
		}

		alpha := system.GlobalAlpha()
		if alpha < 0 || alpha > 1 {
			t.Fatalf("frame %d: alpha %.3f out of [0, 1]", frame, alpha)
		}

		prevPhase = system.Phase()
		prevTimer = system.Timer()
	}

	// 一个循环 11+21+6+5 = 43 帧，4 次转场
	if want := 500 / 43 * 4; transitions < want {
		t.Errorf("%d transitions in 500 frames, want at least %d", transitions, want)
	}
}

func TestPhaseSystemAlpha(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhaseSystem(em, newShortPhaseState())

	// 开场：alpha = t / (10 * 0.8)
	for i := 0; i < 4; i++ {
		system.Tick()
	}
	if got := system.GlobalAlpha(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("intro alpha at t=4: %.3f, want 0.5", got)
	}

	for i := 0; i < 6; i++ {
		system.Tick()
	}
	if got := system.GlobalAlpha(); got != 1 {
		t.Errorf("intro alpha at t=10: %.3f, want 1 (clamped)", got)
	}

	// 推进到重置阶段
	for system.Phase() != components.PhaseReset {
		system.Tick()
	}
	if got := system.GlobalAlpha(); got != 1 {
		t.Errorf("alpha on reset entry %.3f, want 1", got)
	}

	system.Tick()
	system.Tick()
	if got := system.GlobalAlpha(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("reset alpha at t=2: %.3f, want 0.5", got)
	}

	system.Tick()
	system.Tick()
	if got := system.GlobalAlpha(); got != 0 {
		t.Errorf("reset alpha at t=4: %.3f, want 0", got)
	}
}
