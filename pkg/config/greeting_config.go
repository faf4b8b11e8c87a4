package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GreetingConfig 贺卡动画配置
//
// 所有阶段时长、粒子物理与文字参数都从这里读取，
// 系统代码中不出现隐藏的字面量。
//
// 配置文件位置: data/greeting.yaml
type GreetingConfig struct {
	Window    WindowConfig   `yaml:"window"`
	Phases    PhaseConfig    `yaml:"phases"`
	Particles ParticleConfig `yaml:"particles"`
	Burst     BurstConfig    `yaml:"burst"`
	Texts     TextConfig     `yaml:"texts"`
	Shape     ShapeConfig    `yaml:"shape"`
	Cursor    CursorConfig   `yaml:"cursor"`
	Overlay   OverlayConfig  `yaml:"overlay"`
	Fonts     FontConfig     `yaml:"fonts"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhaseConfig 各阶段时长（帧）
type PhaseConfig struct {
	Intro          int     `yaml:"intro"`
	Interactive    int     `yaml:"interactive"`
	Culmination    int     `yaml:"culmination"`
	Reset          int     `yaml:"reset"`
	IntroFadeRatio float64 `yaml:"introFadeRatio"` // 开场淡入占比
}

// ParticleConfig 环境粒子配置
type ParticleConfig struct {
	Density       float64 `yaml:"density"`       // 每个粒子的像素面积
	PointerRadius float64 `yaml:"pointerRadius"` // 指针影响半径
	RepelForce    float64 `yaml:"repelForce"`
	RelaxDivisor  float64 `yaml:"relaxDivisor"`
	ShrinkStep    float64 `yaml:"shrinkStep"`
	SizeMin       float64 `yaml:"sizeMin"`
	SizeRange     float64 `yaml:"sizeRange"`
	EaseMin       float64 `yaml:"easeMin"`
	EaseRange     float64 `yaml:"easeRange"`
	GoldChance    float64 `yaml:"goldChance"`
	GlowBlur      float64 `yaml:"glowBlur"`
	GlowAlpha     float64 `yaml:"glowAlpha"`
}

// BurstConfig 点击爆发粒子配置
type BurstConfig struct {
	Count     int     `yaml:"count"`
	Damping   float64 `yaml:"damping"`
	Shrink    float64 `yaml:"shrink"`
	MinSize   float64 `yaml:"minSize"`
	Speed     float64 `yaml:"speed"`
	LifeMin   float64 `yaml:"lifeMin"`
	LifeRange float64 `yaml:"lifeRange"`
	SizeMin   float64 `yaml:"sizeMin"`
	SizeRange float64 `yaml:"sizeRange"`
}

// TextConfig 浮动文字配置
type TextConfig struct {
	SpawnChance   float64  `yaml:"spawnChance"`
	MaxConcurrent int      `yaml:"maxConcurrent"`
	Life          int      `yaml:"life"`
	FadeInAbove   int      `yaml:"fadeInAbove"`  // Life 高于此值时淡入
	FadeOutBelow  int      `yaml:"fadeOutBelow"` // Life 低于此值时淡出
	FadeStep      float64  `yaml:"fadeStep"`
	SpeedMin      float64  `yaml:"speedMin"`
	SpeedRange    float64  `yaml:"speedRange"`
	ScaleMin      float64  `yaml:"scaleMin"`
	ScaleRange    float64  `yaml:"scaleRange"`
	GlowBlur      float64  `yaml:"glowBlur"`
	Greetings     []string `yaml:"greetings"`
}

// ShapeConfig 汇聚目标图形配置
type ShapeConfig struct {
	ArcStepDegrees float64 `yaml:"arcStepDegrees"`
	LineStep       float64 `yaml:"lineStep"`
	ScaleDivisor   float64 `yaml:"scaleDivisor"` // scale = min(w,h) / ScaleDivisor
}

// CursorConfig 光标标记配置
type CursorConfig struct {
	Size  float64 `yaml:"size"`
	RestX float64 `yaml:"restX"`
	RestY float64 `yaml:"restY"`
	Glow  float64 `yaml:"glow"`
}

// OverlayConfig 提示层与结束语配置
type OverlayConfig struct {
	Instructions         string  `yaml:"instructions"`
	FinalMessage         string  `yaml:"finalMessage"`
	FadeStep             float64 `yaml:"fadeStep"`
	PassThroughFrames    int     `yaml:"passThroughFrames"`
	ShowOnce             bool    `yaml:"showOnce"` // 提示层只在首次启动时显示
	FinalMessageFontSize float64 `yaml:"finalMessageFontSize"`
	InstructionFontSize  float64 `yaml:"instructionFontSize"`
}

// FontConfig 字体配置
// Paths 依次作为回退链，最后总会追加内置的 Go Regular 字体
type FontConfig struct {
	Paths []string `yaml:"paths"`
}

// DefaultGreetingConfig 返回参考调校的默认配置
func DefaultGreetingConfig() *GreetingConfig {
	greetings := make([]string, len(DefaultGreetings))
	copy(greetings, DefaultGreetings)

	return &GreetingConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Phases: PhaseConfig{
			Intro:          IntroDuration,
			Interactive:    InteractiveDuration,
			Culmination:    CulminationDuration,
			Reset:          ResetDuration,
			IntroFadeRatio: IntroFadeRatio,
		},
		Particles: ParticleConfig{
			Density:       ParticleDensity,
			PointerRadius: PointerRadius,
			RepelForce:    RepelForce,
			RelaxDivisor:  RelaxDivisor,
			ShrinkStep:    ShrinkStep,
			SizeMin:       AmbientSizeMin,
			SizeRange:     AmbientSizeRange,
			EaseMin:       EaseMin,
			EaseRange:     EaseRange,
			GoldChance:    GoldChance,
			GlowBlur:      GlowBlur,
			GlowAlpha:     GlowAlpha,
		},
		Burst: BurstConfig{
			Count:     BurstCount,
			Damping:   BurstDamping,
			Shrink:    BurstShrink,
			MinSize:   BurstMinSize,
			Speed:     BurstSpeed,
			LifeMin:   BurstLifeMin,
			LifeRange: BurstLifeRange,
			SizeMin:   BurstSizeMin,
			SizeRange: BurstSizeRange,
		},
		Texts: TextConfig{
			SpawnChance:   TextSpawnChance,
			MaxConcurrent: TextMaxConcurrent,
			Life:          TextLife,
			FadeInAbove:   TextFadeInAbove,
			FadeOutBelow:  TextFadeOutBelow,
			FadeStep:      TextFadeStep,
			SpeedMin:      TextSpeedMin,
			SpeedRange:    TextSpeedRange,
			ScaleMin:      TextScaleMin,
			ScaleRange:    TextScaleRange,
			GlowBlur:      TextGlowBlur,
			Greetings:     greetings,
		},
		Shape: ShapeConfig{
			ArcStepDegrees: ShapeArcStepDegrees,
			LineStep:       ShapeLineStep,
			ScaleDivisor:   ShapeScaleDivisor,
		},
		Cursor: CursorConfig{
			Size:  CursorSize,
			RestX: CursorRestX,
			RestY: CursorRestY,
			Glow:  CursorGlow,
		},
		Overlay: OverlayConfig{
			Instructions:         DefaultInstructions,
			FinalMessage:         DefaultFinalMessage,
			FadeStep:             OverlayFadeStep,
			PassThroughFrames:    OverlayPassThroughFrames,
			ShowOnce:             false,
			FinalMessageFontSize: FinalMessageFontSize,
			InstructionFontSize:  InstructionFontSize,
		},
	}
}

// LoadGreetingConfig 加载贺卡动画配置
//
// 从指定路径加载 YAML 格式的配置文件，未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/greeting.yaml"）
//
// 返回:
//   - *GreetingConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGreetingConfig(path string) (*GreetingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read greeting config: %w", err)
	}
	return ParseGreetingConfig(data)
}

// ParseGreetingConfig 从 YAML 数据解析配置（用于嵌入的默认配置文件）
func ParseGreetingConfig(data []byte) (*GreetingConfig, error) {
	cfg := DefaultGreetingConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse greeting config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid greeting config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 各阶段时长为正数
//   - 粒子密度、影响半径、回归除数为正数
//   - 衰减系数在 (0, 1] 内
//   - 浮动文字候选列表非空，淡入阈值高于淡出阈值
//   - 图形步长为正数
func (c *GreetingConfig) Validate() error {
	phases := []struct {
		name  string
		value int
	}{
		{"intro", c.Phases.Intro},
		{"interactive", c.Phases.Interactive},
		{"culmination", c.Phases.Culmination},
		{"reset", c.Phases.Reset},
	}
	for _, p := range phases {
		if p.value <= 0 {
			return fmt.Errorf("phase duration '%s' must be > 0, got %d", p.name, p.value)
		}
	}
	if c.Phases.IntroFadeRatio <= 0 || c.Phases.IntroFadeRatio > 1 {
		return fmt.Errorf("introFadeRatio must be in (0, 1], got %.2f", c.Phases.IntroFadeRatio)
	}

	if c.Particles.Density <= 0 {
		return fmt.Errorf("particle density must be > 0, got %.1f", c.Particles.Density)
	}
	if c.Particles.PointerRadius <= 0 {
		return fmt.Errorf("pointerRadius must be > 0, got %.1f", c.Particles.PointerRadius)
	}
	if c.Particles.RelaxDivisor <= 0 {
		return fmt.Errorf("relaxDivisor must be > 0, got %.1f", c.Particles.RelaxDivisor)
	}

	if c.Burst.Count < 0 {
		return fmt.Errorf("burst count must be >= 0, got %d", c.Burst.Count)
	}
	if c.Burst.Damping <= 0 || c.Burst.Damping > 1 {
		return fmt.Errorf("burst damping must be in (0, 1], got %.2f", c.Burst.Damping)
	}
	if c.Burst.Shrink <= 0 || c.Burst.Shrink > 1 {
		return fmt.Errorf("burst shrink must be in (0, 1], got %.2f", c.Burst.Shrink)
	}
	if c.Burst.LifeMin <= 0 {
		return fmt.Errorf("burst lifeMin must be > 0, got %.1f", c.Burst.LifeMin)
	}

	if len(c.Texts.Greetings) == 0 {
		return fmt.Errorf("texts.greetings must not be empty")
	}
	if c.Texts.MaxConcurrent < 0 {
		return fmt.Errorf("texts.maxConcurrent must be >= 0, got %d", c.Texts.MaxConcurrent)
	}
	if c.Texts.FadeInAbove <= c.Texts.FadeOutBelow {
		return fmt.Errorf("texts.fadeInAbove(%d) must be greater than fadeOutBelow(%d)",
			c.Texts.FadeInAbove, c.Texts.FadeOutBelow)
	}
	if c.Texts.FadeStep <= 0 {
		return fmt.Errorf("texts.fadeStep must be > 0, got %.3f", c.Texts.FadeStep)
	}

	if c.Shape.ArcStepDegrees <= 0 || c.Shape.LineStep <= 0 {
		return fmt.Errorf("shape steps must be > 0, got arc=%.1f line=%.1f",
			c.Shape.ArcStepDegrees, c.Shape.LineStep)
	}
	if c.Shape.ScaleDivisor <= 0 {
		return fmt.Errorf("shape scaleDivisor must be > 0, got %.1f", c.Shape.ScaleDivisor)
	}

	if c.Overlay.FadeStep <= 0 {
		return fmt.Errorf("overlay fadeStep must be > 0, got %.3f", c.Overlay.FadeStep)
	}

	return nil
}

// ParticleCount 计算给定视口的环境粒子数量：floor(w*h/density)
// 视口尺寸非正时返回 0
func (c *GreetingConfig) ParticleCount(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(float64(width) * float64(height) / c.Particles.Density)
}

// ShapeScale 计算目标图形的缩放：min(w,h)/ScaleDivisor
func (c *GreetingConfig) ShapeScale(width, height int) float64 {
	m := width
	if height < m {
		m = height
	}
	if m <= 0 {
		return 0
	}
	return float64(m) / c.Shape.ScaleDivisor
}
