package entities

import (
	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/game"
)

// NewInstructionOverlay 创建开场提示层
//
// 参数：
//   - em: 实体管理器
//   - gs: 模拟上下文
//   - visible: false 时提示层直接处于已关闭状态（已看过提示且配置为只显示一次）
func NewInstructionOverlay(em *ecs.EntityManager, gs *game.GreetingState, visible bool) ecs.EntityID {
	cfg := gs.Config.Overlay

	overlay := &components.InstructionOverlayComponent{
		Text:                   cfg.Instructions,
		Opacity:                1,
		BlocksPointer:          true,
		FramesUntilPassThrough: cfg.PassThroughFrames,
	}
	if !visible {
		overlay.Opacity = 0
		overlay.Dismissed = true
		overlay.BlocksPointer = false
		overlay.FramesUntilPassThrough = 0
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, overlay)
	return id
}

// NewFinalMessage 创建汇聚阶段的结束语，初始完全透明
func NewFinalMessage(em *ecs.EntityManager, gs *game.GreetingState) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.FinalMessageComponent{
		Text: gs.Config.Overlay.FinalMessage,
	})
	return id
}
