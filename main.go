package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/decker502/greeting/pkg/app"
	"github.com/decker502/greeting/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "外部配置文件路径（默认使用内置 data/greeting.yaml）")
	verbose := flag.Bool("verbose", false, "显示详细日志")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	fullscreen := flag.Bool("fullscreen", false, "全屏启动")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	greetingApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		// 日志可能已被关闭，错误直接写到 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	cfg := greetingApp.Config()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(*fullscreen || greetingApp.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(greetingApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
