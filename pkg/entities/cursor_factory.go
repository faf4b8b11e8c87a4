package entities

import (
	"image/color"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/game"
)

// cursorColor 光标标记颜色 rgba(255, 235, 179, 0.8)
var cursorColor = color.NRGBA{R: 255, G: 235, B: 179, A: 204}

// NewCursor 创建跟随指针的光标标记，初始停在屏幕外的静止位置
func NewCursor(em *ecs.EntityManager, gs *game.GreetingState) ecs.EntityID {
	cfg := gs.Config.Cursor

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.RestX, Y: cfg.RestY})
	ecs.AddComponent(em, id, &components.CursorComponent{
		Size:  cfg.Size,
		Color: cursorColor,
		Glow:  cfg.Glow,
		RestX: cfg.RestX,
		RestY: cfg.RestY,
	})
	return id
}
