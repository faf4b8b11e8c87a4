package utils

import (
	"math"

	"github.com/decker502/greeting/pkg/config"
)

// Point 二维坐标点
type Point struct {
	X, Y float64
}

// SymbolPoints 生成女性符号（♀）的目标点序列
//
// 点的顺序固定为：圆环 → 竖线 → 横线。
// 圆环按 ArcStepDegrees 步进一周，竖线与横线按 LineStep 步进。
// 纯函数，无随机性；结果只取决于参数。
//
// 参数:
//   - cx, cy: 图形中心（圆环圆心在中心上方 0.7*scale 处）
//   - scale: 圆环半径，负值、NaN 与无穷大按 0 处理
//   - shape: 步长配置
//
// 返回:
//   - []Point: 有序目标点序列，长度随 scale 变化
func SymbolPoints(cx, cy, scale float64, shape config.ShapeConfig) []Point {
	radius := scale
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		radius = 0
	}

	arcStep := shape.ArcStepDegrees
	lineStep := shape.LineStep
	if arcStep <= 0 {
		arcStep = config.ShapeArcStepDegrees
	}
	if lineStep <= 0 {
		lineStep = config.ShapeLineStep
	}

	ringOffset := radius * 0.7
	points := make([]Point, 0, int(360/arcStep)+int(2.9*radius/lineStep)+2)

	// 圆环
	for deg := 0.0; deg < 360; deg += arcStep {
		angle := deg * math.Pi / 180
		points = append(points, Point{
			X: cx + math.Cos(angle)*radius,
			Y: cy + math.Sin(angle)*radius - ringOffset,
		})
	}

	// 竖线：从圆环底部向下
	for i := 0.0; i < radius*1.5; i += lineStep {
		points = append(points, Point{X: cx, Y: cy + i - ringOffset + radius})
	}

	// 横线
	for i := -ringOffset; i < ringOffset; i += lineStep {
		points = append(points, Point{X: cx + i, Y: cy + radius})
	}

	return points
}
