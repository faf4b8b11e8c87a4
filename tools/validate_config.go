package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/decker502/greeting/pkg/config"
	"gopkg.in/yaml.v3"
)

// 用法: go run tools/validate_config.go [path]
func main() {
	path := "data/greeting.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 严格模式检查拼写错误的字段
	var strict config.GreetingConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&strict); err != nil {
		fmt.Printf("❌ YAML 字段检查失败: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ParseGreetingConfig(data)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 窗口: %dx%d %q\n", cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	fmt.Printf("✅ 阶段时长: intro=%d interactive=%d culmination=%d reset=%d\n",
		cfg.Phases.Intro, cfg.Phases.Interactive, cfg.Phases.Culmination, cfg.Phases.Reset)
	fmt.Printf("✅ 粒子数量: %d (窗口尺寸下)\n", cfg.ParticleCount(cfg.Window.Width, cfg.Window.Height))
	fmt.Printf("✅ 问候语数量: %d\n", len(cfg.Texts.Greetings))
	fmt.Printf("✅ 字体路径数量: %d\n", len(cfg.Fonts.Paths))
}
