package systems

import (
	"log"
	"math"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/entities"
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/utils"
)

// ParticleSystem 环境粒子与爆发粒子的逐帧模拟
//
// 按组件区分两种粒子：
//   - AmbientComponent: 受指针排斥并回归原点，汇聚阶段飞向目标点
//   - BurstComponent:   按速度移动，速度与尺寸逐帧衰减，生命耗尽后销毁
//
// 所有查询按实体 ID 升序遍历，等价于粒子的创建顺序。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GreetingState
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager, gs *game.GreetingState) *ParticleSystem {
	return &ParticleSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 推进所有粒子一帧
//
// 参数：
//   - phase: 当前动画阶段，汇聚阶段时有目标点的环境粒子向目标缓动
func (s *ParticleSystem) Update(phase components.Phase) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ParticleComponent](s.entityManager)

	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)

		if burst, ok := ecs.GetComponent[*components.BurstComponent](s.entityManager, id); ok {
			s.updateBurst(id, pos, particle, burst)
			continue
		}

		if ambient, ok := ecs.GetComponent[*components.AmbientComponent](s.entityManager, id); ok {
			s.updateAmbient(phase, pos, particle, ambient)
		}
	}
}

func (s *ParticleSystem) updateBurst(id ecs.EntityID, pos *components.PositionComponent, particle *components.ParticleComponent, burst *components.BurstComponent) {
	cfg := s.gameState.Config.Burst

	burst.Life--
	pos.X += burst.SpeedX
	pos.Y += burst.SpeedY
	burst.SpeedX *= cfg.Damping
	burst.SpeedY *= cfg.Damping
	if particle.Size > cfg.MinSize {
		particle.Size *= cfg.Shrink
	}

	if burst.Life <= 0 {
		s.entityManager.DestroyEntity(id)
	}
}

func (s *ParticleSystem) updateAmbient(phase components.Phase, pos *components.PositionComponent, particle *components.ParticleComponent, ambient *components.AmbientComponent) {
	cfg := s.gameState.Config.Particles
	pointer := s.gameState.Pointer

	switch {
	case phase == components.PhaseCulmination && ambient.HasTarget:
		pos.X += (ambient.TargetX - pos.X) * ambient.Ease
		pos.Y += (ambient.TargetY - pos.Y) * ambient.Ease

	default:
		force := proximity(pos, pointer)
		if force > 0 {
			dx := pos.X - pointer.X
			dy := pos.Y - pointer.Y
			// 与指针重合时没有确定的排斥方向
			if dist := math.Hypot(dx, dy); dist > 0 {
				pos.X += dx / dist * force * cfg.RepelForce
				pos.Y += dy / dist * force * cfg.RepelForce
			}
			particle.Size = particle.OriginalSize + force*cfg.RepelForce
		} else {
			if particle.Size > particle.OriginalSize {
				particle.Size = math.Max(particle.OriginalSize, particle.Size-cfg.ShrinkStep)
			}
			pos.X -= (pos.X - ambient.OriginX) / cfg.RelaxDivisor
			pos.Y -= (pos.Y - ambient.OriginY) / cfg.RelaxDivisor
		}
	}

	// 发光强度按移动后的位置计算
	ambient.Proximity = proximity(pos, pointer)
}

// proximity 返回指针接近度 (R-d)/R，指针未知或超出半径时为 0
func proximity(pos *components.PositionComponent, pointer game.PointerState) float64 {
	if !pointer.Known || pointer.Radius <= 0 {
		return 0
	}
	dist := math.Hypot(pos.X-pointer.X, pos.Y-pointer.Y)
	if dist >= pointer.Radius {
		return 0
	}
	return (pointer.Radius - dist) / pointer.Radius
}

// SpawnAmbient 按视口面积生成环境粒子，位置在视口内均匀分布
//
// 返回：
//   - int: 生成的粒子数 floor(w*h/Density)，视口为空时为 0
func (s *ParticleSystem) SpawnAmbient(width, height int) int {
	count := s.gameState.Config.ParticleCount(width, height)
	w := float64(width)
	h := float64(height)

	for i := 0; i < count; i++ {
		x := s.gameState.Random() * w
		y := s.gameState.Random() * h
		entities.NewAmbientParticle(s.entityManager, s.gameState, x, y)
	}
	return count
}

// SpawnBurst 在指定位置生成一组爆发粒子
//
// 返回：
//   - int: 生成的粒子数
func (s *ParticleSystem) SpawnBurst(x, y float64) int {
	count := s.gameState.Config.Burst.Count
	for i := 0; i < count; i++ {
		entities.NewBurstParticle(s.entityManager, s.gameState, x, y)
	}
	return count
}

// AssignTargets 为粒子分配汇聚目标点
//
// 第 i 个粒子（按创建顺序，包含爆发粒子）取 points[i % len(points)]，
// 点数少于粒子数时循环复用；只有环境粒子会保存目标。
//
// 返回：
//   - int: 获得目标的环境粒子数
func (s *ParticleSystem) AssignTargets(points []utils.Point) int {
	if len(points) == 0 {
		log.Printf("[ParticleSystem] Warning: no target points, skipping assignment")
		return 0
	}

	ids := ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager)
	assigned := 0
	i := 0
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		target := points[i%len(points)]
		i++

		ambient, ok := ecs.GetComponent[*components.AmbientComponent](s.entityManager, id)
		if !ok {
			continue
		}
		ambient.TargetX = target.X
		ambient.TargetY = target.Y
		ambient.HasTarget = true
		assigned++
	}
	return assigned
}

// Clear 销毁所有粒子（实体在帧末移除）
func (s *ParticleSystem) Clear() {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
}

// Count 返回存活的粒子数（不含已标记销毁的）
func (s *ParticleSystem) Count() (ambient, burst int) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		if ecs.HasComponent[*components.BurstComponent](s.entityManager, id) {
			burst++
		} else {
			ambient++
		}
	}
	return ambient, burst
}
