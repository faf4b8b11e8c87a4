package components

// FloatingTextComponent 浮动祝福文字
//
// 透明度包络：
//   - Life > FadeInAbove 时淡入
//   - Life < FadeOutBelow 时淡出
//   - 其余时间保持
type FloatingTextComponent struct {
	Text      string
	SpeedY    float64 // 每帧垂直位移（负值向上）
	Opacity   float64 // 0-1
	Life      int     // 剩余帧数
	FontScale float64 // 字号，视口宽度的百分比
}
