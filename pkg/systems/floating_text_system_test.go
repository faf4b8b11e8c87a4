package systems

import (
	"testing"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
)

func addText(em *ecs.EntityManager, life int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 500, Y: 500})
	ecs.AddComponent(em, id, &components.FloatingTextComponent{
		Text:      "Hello",
		SpeedY:    -0.25,
		Life:      life,
		FontScale: 1.5,
	})
	return id
}

func TestFloatingTextNoSpawnOutsideInteractive(t *testing.T) {
	for _, phase := range []components.Phase{components.PhaseIntro, components.PhaseCulmination, components.PhaseReset} {
		t.Run(phase.String(), func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewFloatingTextSystem(em, newTestState(1))

			for i := 0; i < 2000; i++ {
				system.Update(phase)
			}
			if n := system.Count(); n != 0 {
				t.Errorf("%d texts spawned in %s phase, want 0", n, phase)
			}
		})
	}
}

func TestFloatingTextSpawnLimitAndOpacityBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState(2)
	gs.Config.Texts.SpawnChance = 0.5
	system := NewFloatingTextSystem(em, gs)

	spawned := false
	for frame := 0; frame < 3000; frame++ {
		system.Update(components.PhaseInteractive)
		em.RemoveMarkedEntities()

		n := system.Count()
		if n > gs.Config.Texts.MaxConcurrent {
			t.Fatalf("frame %d: %d texts alive, limit %d", frame, n, gs.Config.Texts.MaxConcurrent)
		}
		if n > 0 {
			spawned = true
		}

		for _, id := range ecs.GetEntitiesWith1[*components.FloatingTextComponent](em) {
			ft, _ := ecs.GetComponent[*components.FloatingTextComponent](em, id)
			if ft.Opacity < 0 || ft.Opacity > 1 {
				t.Fatalf("frame %d: opacity %.3f out of [0, 1]", frame, ft.Opacity)
			}
		}
	}

	if !spawned {
		t.Error("expected texts to spawn during the interactive phase")
	}
}

func TestFloatingTextEnvelope(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFloatingTextSystem(em, newTestState(3))

	id := addText(em, 300)
	ft, _ := ecs.GetComponent[*components.FloatingTextComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	// 结束语阶段不会生成新文字，只观察这一条
	system.Update(components.PhaseCulmination)
	if ft.Life != 299 {
		t.Errorf("life %d, want 299", ft.Life)
	}
	if ft.Opacity != 0.05 {
		t.Errorf("opacity after first frame %.3f, want 0.05", ft.Opacity)
	}
	if pos.Y != 499.75 {
		t.Errorf("y %.2f, want 499.75", pos.Y)
	}

	// 淡入到 1 后保持
	for ft.Life > 100 {
		system.Update(components.PhaseCulmination)
	}
	if ft.Opacity != 1 {
		t.Errorf("opacity mid-life %.3f, want 1", ft.Opacity)
	}

	// 淡出
	for ft.Life > 1 {
		system.Update(components.PhaseCulmination)
	}
	if ft.Opacity != 0 {
		t.Errorf("opacity near end %.3f, want 0", ft.Opacity)
	}

	system.Update(components.PhaseCulmination)
	if !em.IsMarkedForDestroy(id) {
		t.Error("text with life 0 should be destroyed")
	}
}

func TestFloatingTextClear(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFloatingTextSystem(em, newTestState(4))

	addText(em, 300)
	addText(em, 300)
	system.Clear()

	if n := system.Count(); n != 0 {
		t.Errorf("Count() after Clear = %d, want 0", n)
	}
}
