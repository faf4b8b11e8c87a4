// Package main 无窗口运行贺卡动画若干帧，打印阶段转换与实体数量
//
// Usage:
//
//	go run ./cmd/verify_loop [flags]
//
// Flags:
//
//	--config <path>     外部配置文件（默认使用 data/greeting.yaml）
//	--frames <n>        运行帧数（0 表示刚好一个完整循环再多 10 帧）
//	--width/--height    视口尺寸
//	--seed <n>          随机种子
//	--click-every <n>   交互阶段每 n 帧模拟一次点击（0 关闭）
//	--sweep             模拟指针在视口内往返移动
//	--verbose           显示系统日志
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/config"
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/scenes"
)

var (
	configPath = flag.String("config", "data/greeting.yaml", "配置文件路径")
	frames     = flag.Int("frames", 0, "运行帧数（0 表示一个完整循环）")
	width      = flag.Int("width", config.DefaultWindowWidth, "视口宽度")
	height     = flag.Int("height", config.DefaultWindowHeight, "视口高度")
	seed       = flag.Uint64("seed", 1, "随机种子")
	clickEvery = flag.Int("click-every", 120, "交互阶段点击间隔（帧）")
	sweep      = flag.Bool("sweep", true, "模拟指针移动")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGreetingConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultGreetingConfig()
	}

	gs := game.NewGreetingState(cfg, *seed)
	gs.SetViewport(*width, *height)
	settings, _ := game.NewSettingsManager(nil)
	gs.Settings = settings

	events := game.NewEventQueue()
	scene := scenes.NewGreetingScene(gs, nil, events)

	total := *frames
	if total <= 0 {
		p := cfg.Phases
		total = p.Intro + p.Interactive + p.Culmination + p.Reset + 10
	}

	fmt.Printf("Viewport %dx%d, seed %d, %d frames\n", gs.Width, gs.Height, *seed, total)
	printCounts(0, scene)

	phase := scene.Phase()
	interactiveFrames := 0
	clicks := 0
	peakBurst := 0

	for frame := 1; frame <= total; frame++ {
		if *sweep {
			t := float64(frame) / 240
			x := (math.Sin(t)*0.45 + 0.5) * float64(gs.Width)
			y := (math.Cos(t*1.3)*0.45 + 0.5) * float64(gs.Height)
			events.Push(game.Event{Type: game.EventPointerMove, X: x, Y: y})
		}

		if scene.Phase() == components.PhaseInteractive {
			interactiveFrames++
			if *clickEvery > 0 && interactiveFrames%*clickEvery == 0 {
				events.Push(game.Event{
					Type: game.EventClick,
					X:    gs.Pointer.X,
					Y:    gs.Pointer.Y,
				})
				clicks++
			}
		}

		scene.Update(1.0 / 60)

		if _, burst := scene.ParticleCounts(); burst > peakBurst {
			peakBurst = burst
		}

		if scene.Phase() != phase {
			fmt.Printf("frame %6d: %s -> %s (alpha %.2f)\n", frame, phase, scene.Phase(), scene.GlobalAlpha())
			printCounts(frame, scene)
			phase = scene.Phase()
		}
	}

	fmt.Println("---")
	fmt.Printf("Completed loops: %d\n", scene.Loops())
	fmt.Printf("Clicks: %d, peak burst particles: %d\n", clicks, peakBurst)
	fmt.Printf("Final message opacity: %.2f\n", scene.FinalMessageOpacity())
	printCounts(total, scene)
}

func printCounts(frame int, scene *scenes.GreetingScene) {
	ambient, burst := scene.ParticleCounts()
	fmt.Printf("frame %6d: ambient=%d burst=%d texts=%d\n", frame, ambient, burst, scene.TextCount())
}
