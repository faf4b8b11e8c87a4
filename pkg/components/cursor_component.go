package components

import "image/color"

// CursorComponent 跟随指针的光标标记
// 指针未知时停留在 RestX/RestY（屏幕外），且不绘制
type CursorComponent struct {
	Size    float64
	Color   color.NRGBA
	Glow    float64
	Visible bool
	RestX   float64
	RestY   float64
}
