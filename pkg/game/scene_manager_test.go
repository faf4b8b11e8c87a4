package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene 记录调用情况的测试场景
type mockScene struct {
	updates   int
	drawn     bool
	deltaTime float64
}

func (m *mockScene) Update(deltaTime float64) {
	m.updates++
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawn = true
}

// resizableScene 同时实现 Resizable 与 Saveable
type resizableScene struct {
	mockScene
	width, height int
	saveResult    bool
	saveCalls     int
}

func (r *resizableScene) Resize(width, height int) {
	r.width = width
	r.height = height
}

func (r *resizableScene) SaveOnExit() bool {
	r.saveCalls++
	return r.saveResult
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("expected no active scene initially")
	}

	// 无场景时所有调用都不应 panic
	sm.Update(1.0 / 60)
	sm.Draw(nil)
	sm.Resize(640, 480)
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should report success")
	}
}

func TestSceneManagerSwitchAndUpdate(t *testing.T) {
	sm := NewSceneManager()
	first := &mockScene{}
	second := &mockScene{}

	sm.SwitchTo(first)
	sm.Update(0.016)
	sm.Draw(nil)

	if first.updates != 1 || !first.drawn {
		t.Errorf("first scene: updates=%d drawn=%v, want 1/true", first.updates, first.drawn)
	}
	if first.deltaTime != 0.016 {
		t.Errorf("deltaTime = %.3f, want 0.016", first.deltaTime)
	}

	sm.SwitchTo(second)
	sm.Update(0.016)

	if first.updates != 1 {
		t.Errorf("first scene should not update after switch, got %d updates", first.updates)
	}
	if second.updates != 1 {
		t.Errorf("second scene updates = %d, want 1", second.updates)
	}
	if sm.GetCurrentScene() != second {
		t.Error("GetCurrentScene should return the second scene")
	}
}

func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()

	// 未实现 Resizable 的场景被忽略
	sm.SwitchTo(&mockScene{})
	sm.Resize(100, 100)

	scene := &resizableScene{}
	sm.SwitchTo(scene)
	sm.Resize(1024, 768)

	if scene.width != 1024 || scene.height != 768 {
		t.Errorf("Resize forwarded %dx%d, want 1024x768", scene.width, scene.height)
	}
}

func TestSceneManagerSaveOnExit(t *testing.T) {
	tests := []struct {
		name       string
		saveResult bool
	}{
		{"save succeeds", true},
		{"save fails", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			scene := &resizableScene{saveResult: tt.saveResult}
			sm.SwitchTo(scene)

			if got := sm.SaveOnExit(); got != tt.saveResult {
				t.Errorf("SaveOnExit() = %v, want %v", got, tt.saveResult)
			}
			if scene.saveCalls != 1 {
				t.Errorf("scene SaveOnExit called %d times, want 1", scene.saveCalls)
			}
		})
	}
}
