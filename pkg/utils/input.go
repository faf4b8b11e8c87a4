// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 当前帧的指针采样
// 统一鼠标与触摸输入，触摸优先
type PointerSample struct {
	// 指针位置（逻辑像素）
	X, Y int

	// JustPressed 本帧刚发生点击或触摸
	JustPressed bool

	// Touch 采样来自触摸
	Touch bool

	// Active 是否存在可用的指针：触摸设备上为有活动触摸，桌面端总为 true
	Active bool
}

// SamplePointer 读取当前帧的指针状态
func SamplePointer() PointerSample {
	// 首先检查新的触摸（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, JustPressed: true, Touch: true, Active: true}
	}

	// 持续中的触摸
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, Touch: true, Active: true}
	}

	// 触摸刚刚结束：指针视为离开
	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		return PointerSample{Touch: true}
	}

	// 桌面鼠标
	x, y := ebiten.CursorPosition()
	return PointerSample{
		X:           x,
		Y:           y,
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Active:      true,
	}
}

// InViewport 采样点是否位于 [0,w)x[0,h) 内
func (s PointerSample) InViewport(width, height int) bool {
	return s.Active && s.X >= 0 && s.Y >= 0 && s.X < width && s.Y < height
}
