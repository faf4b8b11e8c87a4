// Package app 提供贺卡动画应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/greeting/pkg/config"
	"github.com/decker502/greeting/pkg/embedded"
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/scenes"
	"github.com/decker502/greeting/pkg/systems"
	"github.com/decker502/greeting/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "greeting"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空时使用内置配置
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// AppName gdata 存储的应用名，为空时使用 DefaultAppName
	AppName string
}

// pointerBlocker 由提示层仍拦截指针的场景实现
type pointerBlocker interface {
	PointerBlocked() bool
}

// App 是动画应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	config       *config.GreetingConfig
	input        *systems.InputSystem

	// 当前视口尺寸，Layout 检测到变化时通知场景
	width, height int

	cursorMode ebiten.CursorModeType

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化动画应用
//
// 使用内置配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	greetingConfig, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	// 持久化设置，存储不可用时降级为内存模式
	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	settings, err := game.NewSettingsManager(openStorage(appName))
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gameState := game.NewGreetingState(greetingConfig, seed)
	gameState.Settings = settings
	log.Printf("[App] Viewport %dx%d, seed %d", gameState.Width, gameState.Height, seed)

	fonts, err := game.NewFontManager(greetingConfig.Fonts.Paths)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d font sources", fonts.SourceCount())

	events := game.NewEventQueue()
	scene := scenes.NewGreetingScene(gameState, fonts, events)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		config:       greetingConfig,
		input:        systems.NewInputSystem(events),
		width:        gameState.Width,
		height:       gameState.Height,
		cursorMode:   ebiten.CursorModeVisible,
	}, nil
}

// loadConfig 按优先级加载配置：外部文件 > 内置文件 > 默认值
func loadConfig(path string) (*config.GreetingConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading greeting config: %s", path)
		return config.LoadGreetingConfig(path)
	}

	if embedded.Exists(embedded.GreetingConfigPath) {
		data, err := embedded.ReadFile(embedded.GreetingConfigPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] Loading embedded greeting config: %s", embedded.GreetingConfigPath)
		return config.ParseGreetingConfig(data)
	}

	log.Printf("[Config] No config file, using defaults")
	return config.DefaultGreetingConfig(), nil
}

// openStorage 打开 gdata 存储，失败时返回 nil
func openStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	} else if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[App] Warning: failed to open storage, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 更新动画逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.config.Window.Width, a.config.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.config.Window.Width, a.config.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// 窗口关闭或 Esc/Q 退出前保存设置
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.input.Poll(a.width, a.height)

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)

	a.updateCursorMode()
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(ebiten.IsFullscreen())
}

// updateCursorMode 提示层拦截指针时显示系统光标，之后由光标标记代替
func (a *App) updateCursorMode() {
	if utils.IsMobile() {
		return
	}

	mode := ebiten.CursorModeHidden
	if b, ok := a.sceneManager.GetCurrentScene().(pointerBlocker); ok && b.PointerBlocked() {
		mode = ebiten.CursorModeVisible
	}
	if mode != a.cursorMode {
		ebiten.SetCursorMode(mode)
		a.cursorMode = mode
	}
}

// Draw 绘制一帧
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 逻辑尺寸始终等于窗口尺寸，这里只负责填充背景
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑尺寸跟随窗口尺寸
// 尺寸变化时通知场景重新初始化粒子
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		log.Printf("[App] Viewport resized %dx%d -> %dx%d", a.width, a.height, outsideWidth, outsideHeight)
		a.width, a.height = outsideWidth, outsideHeight
		a.sceneManager.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Settings 返回持久化设置
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Config 返回生效的动画配置
func (a *App) Config() *config.GreetingConfig {
	return a.config
}
