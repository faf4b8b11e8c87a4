package components

// PositionComponent 存储实体在画布上的坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}
