package components

import "image/color"

// ParticleComponent 粒子的公共视觉状态
//
// 每个粒子实体还必须带有且仅带有一种运动变体组件：
//   - AmbientComponent: 环境粒子，受指针排斥、回归原点、汇聚阶段飞向目标点，永不过期
//   - BurstComponent:   点击爆发粒子，速度衰减并缩小，生命耗尽后被移除
//
// ParticleSystem 通过组件是否存在来选择更新规则，而不是依赖布尔标志。
type ParticleComponent struct {
	Size         float64     // 当前半径
	OriginalSize float64     // 初始半径（放大后回落的下限）
	Color        color.NRGBA // 填充颜色
}

// AmbientComponent 环境粒子的运动状态
type AmbientComponent struct {
	// 原点：无指针影响时粒子回归的位置
	OriginX float64
	OriginY float64

	// SpeedX/SpeedY 创建时随机生成，保留给调试显示，不参与运动
	SpeedX float64
	SpeedY float64

	// Ease 汇聚阶段每帧向目标移动的比例
	Ease float64

	// 汇聚目标点，HasTarget 为 false 时无目标
	TargetX   float64
	TargetY   float64
	HasTarget bool

	// Proximity 最近一次更新时的指针接近度 (0-1)，0 表示不在影响范围内
	// 渲染系统据此绘制发光效果
	Proximity float64
}

// BurstComponent 点击爆发粒子的运动状态
type BurstComponent struct {
	SpeedX float64
	SpeedY float64
	Life   float64 // 剩余帧数，<= 0 时移除
}
