package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
// HOME 指向临时目录，测试结束后自动清理
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	appName := fmt.Sprintf("greeting_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(filepath.Join(tempDir, ".local", "share", appName))
	})

	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}

	if settings.InstructionsSeen {
		t.Error("InstructionsSeen: got true, want false")
	}

	if settings.CompletedLoops != 0 {
		t.Errorf("CompletedLoops: got %d, want 0", settings.CompletedLoops)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := createTestGdataManager(t, "load_save")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.MarkInstructionsSeen()
	sm1.IncrementCompletedLoops()
	sm1.IncrementCompletedLoops()

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()

	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}

	if !settings.InstructionsSeen {
		t.Error("Loaded InstructionsSeen: got false, want true")
	}

	if settings.CompletedLoops != 2 {
		t.Errorf("Loaded CompletedLoops: got %d, want 2", settings.CompletedLoops)
	}
}

// TestIncrementCompletedLoops 测试循环计数累加
func TestIncrementCompletedLoops(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	for want := 1; want <= 3; want++ {
		if got := sm.IncrementCompletedLoops(); got != want {
			t.Errorf("IncrementCompletedLoops() = %d, want %d", got, want)
		}
	}
}

// TestSetFullscreen 测试 SetFullscreen 功能
func TestSetFullscreen(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetFullscreen(true)
	if !sm.GetSettings().Fullscreen {
		t.Error("After SetFullscreen(true): got false, want true")
	}

	sm.SetFullscreen(false)
	if sm.GetSettings().Fullscreen {
		t.Error("After SetFullscreen(false): got true, want false")
	}
}

// TestSaveNilGdataManager 测试降级模式下 Save() 不报错
func TestSaveNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestLoadNilGdataManager 测试降级模式下 Load() 使用默认设置
func TestLoadNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.MarkInstructionsSeen()

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}

	// 应该恢复为默认值
	if sm.GetSettings().InstructionsSeen {
		t.Error("After Load() in degraded mode, InstructionsSeen should be reset to false")
	}
}
