package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 通知当前场景视口尺寸变化（场景实现 Resizable 时）
func (sm *SceneManager) Resize(width, height int) {
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// SaveOnExit 让当前场景在退出前保存状态
//
// 返回：
//   - bool: 保存成功或无需保存时返回 true
func (sm *SceneManager) SaveOnExit() bool {
	s, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	if !s.SaveOnExit() {
		log.Printf("[SceneManager] Warning: scene failed to save on exit")
		return false
	}
	return true
}
