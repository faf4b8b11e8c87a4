package entities

import (
	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/game"
)

// NewFloatingText 创建一条浮动祝福语
//
// 文字从候选列表随机选取，出生在视口水平 10%-90%、下半屏的位置，
// 初始透明度为 0，向上缓慢漂移。
//
// 参数：
//   - em: 实体管理器
//   - gs: 模拟上下文（配置、视口与随机源）
//
// 返回：
//   - ecs.EntityID: 新文字的实体 ID
func NewFloatingText(em *ecs.EntityManager, gs *game.GreetingState) ecs.EntityID {
	cfg := gs.Config.Texts
	w := float64(gs.Width)
	h := float64(gs.Height)

	greeting := cfg.Greetings[gs.Rand.IntN(len(cfg.Greetings))]

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: gs.RandomIn(w*0.1, w*0.8),
		Y: gs.RandomIn(h*0.5, h*0.5),
	})
	ecs.AddComponent(em, id, &components.FloatingTextComponent{
		Text:      greeting,
		SpeedY:    -gs.RandomIn(cfg.SpeedMin, cfg.SpeedRange),
		Opacity:   0,
		Life:      cfg.Life,
		FontScale: gs.RandomIn(cfg.ScaleMin, cfg.ScaleRange),
	})
	return id
}
