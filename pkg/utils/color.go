package utils

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLA 将 HSL 颜色（色相 0-360，饱和度/亮度 0-1）与透明度转换为非预乘 RGBA
func HSLA(h, s, l, a float64) color.NRGBA {
	r, g, b := colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(a)*255 + 0.5)}
}

// WithAlpha 返回替换透明度后的颜色
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
