package systems

import (
	"log"
	"math"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/entities"
	"github.com/decker502/greeting/pkg/game"
)

// OverlaySystem 管理画布之外的两个界面元素：开场提示层与结束语
//
// 提示层：首次交互时开始淡出，经过 PassThroughFrames 帧后不再拦截指针。
// 结束语：透明度每帧向目标值逼近 FadeStep。
// 两者不受画布整体透明度影响。
type OverlaySystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GreetingState

	overlayEntity ecs.EntityID
	messageEntity ecs.EntityID

	// onFirstInteraction 首次交互回调（只触发一次）
	onFirstInteraction func()
}

// NewOverlaySystem 创建覆盖层系统
//
// 参数：
//   - em: 实体管理器
//   - gs: 模拟上下文
//   - showInstructions: 是否显示开场提示层
func NewOverlaySystem(em *ecs.EntityManager, gs *game.GreetingState, showInstructions bool) *OverlaySystem {
	system := &OverlaySystem{
		entityManager: em,
		gameState:     gs,
	}
	system.overlayEntity = entities.NewInstructionOverlay(em, gs, showInstructions)
	system.messageEntity = entities.NewFinalMessage(em, gs)
	return system
}

// SetOnFirstInteraction 设置首次交互回调
func (s *OverlaySystem) SetOnFirstInteraction(callback func()) {
	s.onFirstInteraction = callback
}

// HandleFirstInteraction 处理指针交互，只有第一次调用生效
//
// 返回：
//   - bool: 本次调用是否为首次交互
func (s *OverlaySystem) HandleFirstInteraction() bool {
	overlay := s.Overlay()
	if overlay == nil || overlay.Dismissed {
		return false
	}

	overlay.Dismissed = true
	log.Printf("[OverlaySystem] First interaction, hiding instructions")

	if s.onFirstInteraction != nil {
		s.onFirstInteraction()
	}
	return true
}

// ShowFinalMessage 设置结束语并开始淡入
func (s *OverlaySystem) ShowFinalMessage() {
	if msg := s.FinalMessage(); msg != nil {
		msg.Text = s.gameState.Config.Overlay.FinalMessage
		msg.TargetOpacity = 1
	}
}

// HideFinalMessage 开始淡出结束语
func (s *OverlaySystem) HideFinalMessage() {
	if msg := s.FinalMessage(); msg != nil {
		msg.TargetOpacity = 0
	}
}

// Update 推进提示层与结束语的淡入淡出一帧
func (s *OverlaySystem) Update() {
	step := s.gameState.Config.Overlay.FadeStep

	if overlay := s.Overlay(); overlay != nil && overlay.Dismissed {
		overlay.Opacity = math.Max(0, overlay.Opacity-step)

		if overlay.BlocksPointer {
			overlay.FramesUntilPassThrough--
			if overlay.FramesUntilPassThrough <= 0 {
				overlay.FramesUntilPassThrough = 0
				overlay.BlocksPointer = false
				log.Printf("[OverlaySystem] Instructions no longer block the pointer")
			}
		}
	}

	if msg := s.FinalMessage(); msg != nil {
		switch {
		case msg.Opacity < msg.TargetOpacity:
			msg.Opacity = math.Min(msg.TargetOpacity, msg.Opacity+step)
		case msg.Opacity > msg.TargetOpacity:
			msg.Opacity = math.Max(msg.TargetOpacity, msg.Opacity-step)
		}
	}
}

// PointerBlocked 提示层是否仍拦截指针
func (s *OverlaySystem) PointerBlocked() bool {
	overlay := s.Overlay()
	return overlay != nil && overlay.BlocksPointer
}

// Overlay 返回提示层组件
func (s *OverlaySystem) Overlay() *components.InstructionOverlayComponent {
	overlay, _ := ecs.GetComponent[*components.InstructionOverlayComponent](s.entityManager, s.overlayEntity)
	return overlay
}

// FinalMessage 返回结束语组件
func (s *OverlaySystem) FinalMessage() *components.FinalMessageComponent {
	msg, _ := ecs.GetComponent[*components.FinalMessageComponent](s.entityManager, s.messageEntity)
	return msg
}
