package utils

import "math"

// EaseInOutCubic 三次方缓入缓出，输入先限制在 [0, 1]
// 覆盖层按线性进度推进透明度，绘制时经过此曲线得到实际 alpha
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
