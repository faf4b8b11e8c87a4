package entities

import (
	"image/color"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/utils"
)

// NewAmbientParticle 创建一个环境粒子
//
// 原点即出生位置；颜色在紫色系中随机，约 GoldChance 的概率取金色。
// 环境粒子永不过期，只在重新初始化时整体清除。
//
// 参数：
//   - em: 实体管理器
//   - gs: 模拟上下文（配置与随机源）
//   - x, y: 出生位置，也是原点
//
// 返回：
//   - ecs.EntityID: 新粒子的实体 ID
func NewAmbientParticle(em *ecs.EntityManager, gs *game.GreetingState, x, y float64) ecs.EntityID {
	cfg := gs.Config.Particles

	size := gs.RandomIn(cfg.SizeMin, cfg.SizeRange)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		Size:         size,
		OriginalSize: size,
		Color:        ambientColor(gs),
	})
	ecs.AddComponent(em, id, &components.AmbientComponent{
		OriginX: x,
		OriginY: y,
		SpeedX:  gs.RandomIn(-1, 2),
		SpeedY:  gs.RandomIn(-1, 2),
		Ease:    gs.RandomIn(cfg.EaseMin, cfg.EaseRange),
	})
	return id
}

// ambientColor 紫色系 hsl(240-300, 100%, 50-90%)，少量金色 hsl(40-55, 100%, 60-90%)
func ambientColor(gs *game.GreetingState) color.NRGBA {
	if gs.Random() > 1-gs.Config.Particles.GoldChance {
		return utils.HSLA(gs.RandomIn(40, 15), 1, gs.RandomIn(0.6, 0.3), 1)
	}
	return utils.HSLA(gs.RandomIn(240, 60), 1, gs.RandomIn(0.5, 0.4), 1)
}

// NewBurstParticle 创建一个点击爆发粒子
//
// 速度方向随机，幅度上限为 Speed/2；生命 U(LifeMin, LifeMin+LifeRange) 帧；
// 颜色为暖金色 hsl(35-60, 100%, 60-100%)。
//
// 参数：
//   - em: 实体管理器
//   - gs: 模拟上下文（配置与随机源）
//   - x, y: 爆发中心
//
// 返回：
//   - ecs.EntityID: 新粒子的实体 ID
func NewBurstParticle(em *ecs.EntityManager, gs *game.GreetingState, x, y float64) ecs.EntityID {
	cfg := gs.Config.Burst

	size := gs.RandomIn(cfg.SizeMin, cfg.SizeRange)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		Size:         size,
		OriginalSize: size,
		Color:        utils.HSLA(gs.RandomIn(35, 25), 1, gs.RandomIn(0.6, 0.4), 1),
	})
	ecs.AddComponent(em, id, &components.BurstComponent{
		SpeedX: (gs.Random() - 0.5) * (gs.Random() * cfg.Speed),
		SpeedY: (gs.Random() - 0.5) * (gs.Random() * cfg.Speed),
		Life:   gs.RandomIn(cfg.LifeMin, cfg.LifeRange),
	})
	return id
}
