package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a drawable scene driven by the frame loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one frame.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，视口尺寸变化时由 SceneManager 通知场景
type Resizable interface {
	Resize(width, height int)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 用户按 Esc/Q 退出
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
