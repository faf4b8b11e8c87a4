package systems

import (
	"math"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/entities"
	"github.com/decker502/greeting/pkg/game"
)

// FloatingTextSystem 浮动祝福语的生成、漂移与淡入淡出
type FloatingTextSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GreetingState
}

// NewFloatingTextSystem 创建浮动文字系统
func NewFloatingTextSystem(em *ecs.EntityManager, gs *game.GreetingState) *FloatingTextSystem {
	return &FloatingTextSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 推进所有浮动文字一帧
//
// 交互阶段先按 SpawnChance 的概率生成一条新文字（同时存在的数量不超过 MaxConcurrent），
// 然后更新全部文字（包括刚生成的）；生命耗尽的文字被销毁。
func (s *FloatingTextSystem) Update(phase components.Phase) {
	cfg := s.gameState.Config.Texts

	if phase == components.PhaseInteractive && len(cfg.Greetings) > 0 &&
		s.gameState.Random() < cfg.SpawnChance && s.Count() < cfg.MaxConcurrent {
		entities.NewFloatingText(s.entityManager, s.gameState)
	}

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.FloatingTextComponent](s.entityManager)
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)

		pos.Y += ft.SpeedY
		ft.Life--

		switch {
		case ft.Life > cfg.FadeInAbove:
			ft.Opacity = math.Min(1, ft.Opacity+cfg.FadeStep)
		case ft.Life < cfg.FadeOutBelow:
			ft.Opacity = math.Max(0, ft.Opacity-cfg.FadeStep)
		}

		if ft.Life <= 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// Count 返回存活的浮动文字数量
func (s *FloatingTextSystem) Count() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.FloatingTextComponent](s.entityManager) {
		if !s.entityManager.IsMarkedForDestroy(id) {
			n++
		}
	}
	return n
}

// Clear 销毁所有浮动文字
func (s *FloatingTextSystem) Clear() {
	for _, id := range ecs.GetEntitiesWith1[*components.FloatingTextComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
}
