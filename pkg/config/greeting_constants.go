package config

// 默认调参常量（参考调校）
// 运行时以 GreetingConfig 为准，这里只提供 DefaultGreetingConfig 的取值

const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 1280
	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 720
	// DefaultWindowTitle 默认窗口标题
	DefaultWindowTitle = "Happy Women's Day"
)

// 阶段时长（帧）
const (
	IntroDuration       = 300
	InteractiveDuration = 3600
	CulminationDuration = 600
	ResetDuration       = 120

	// IntroFadeRatio 开场淡入占开场时长的比例
	IntroFadeRatio = 0.8
)

// 环境粒子参数
const (
	// ParticleDensity 每个粒子占用的像素面积：数量 = floor(w*h/ParticleDensity)
	ParticleDensity = 9000

	// PointerRadius 指针影响半径（像素）
	PointerRadius = 150

	// RepelForce 指针排斥力倍数，同时决定粒子放大量
	RepelForce = 3.5

	// RelaxDivisor 回归原点时每帧消除 1/RelaxDivisor 的偏移
	RelaxDivisor = 20

	// ShrinkStep 离开影响区后每帧缩小的尺寸
	ShrinkStep = 0.1

	// AmbientSizeMin / AmbientSizeRange 环境粒子尺寸 U(min, min+range)
	AmbientSizeMin   = 1.0
	AmbientSizeRange = 2.5

	// EaseMin / EaseRange 汇聚缓动系数 U(min, min+range)
	EaseMin   = 0.05
	EaseRange = 0.05

	// GoldChance 环境粒子取金色的概率
	GoldChance = 0.1

	// GlowBlur 指针附近粒子的最大发光半径
	GlowBlur = 20.0
	// GlowAlpha 指针附近粒子的最大发光透明度
	GlowAlpha = 0.8
)

// 爆发粒子参数
const (
	BurstCount     = 60
	BurstDamping   = 0.96
	BurstShrink    = 0.98
	BurstMinSize   = 0.1
	BurstSpeed     = 15.0
	BurstLifeMin   = 80.0
	BurstLifeRange = 80.0
	BurstSizeMin   = 2.5
	BurstSizeRange = 4.0
)

// 浮动文字参数
const (
	TextSpawnChance   = 0.01
	TextMaxConcurrent = 5
	TextLife          = 300
	TextFadeInAbove   = 240
	TextFadeOutBelow  = 60
	TextFadeStep      = 0.05
	TextSpeedMin      = 0.2
	TextSpeedRange    = 0.3
	TextScaleMin      = 1.0
	TextScaleRange    = 1.5
	TextGlowBlur      = 10.0
)

// 目标图形参数
const (
	ShapeArcStepDegrees = 5.0
	ShapeLineStep       = 5.0
	ShapeScaleDivisor   = 6.0
)

// 光标标记参数
const (
	CursorSize  = 2.0
	CursorRestX = -100.0
	CursorRestY = -100.0
	CursorGlow  = 15.0
)

// 覆盖层参数
const (
	// OverlayFadeStep 提示层与结束语每帧的透明度变化量
	OverlayFadeStep = 1.0 / 60.0
	// OverlayPassThroughFrames 首次交互后提示层停止拦截指针前的帧数（约 1.5 秒）
	OverlayPassThroughFrames = 90
	// FinalMessageFontSize 结束语字号（视口宽度百分比）
	FinalMessageFontSize = 3.5
	// InstructionFontSize 提示文字字号（视口宽度百分比）
	InstructionFontSize = 1.6
)

// DefaultFinalMessage 汇聚阶段显示的结束语
const DefaultFinalMessage = "Empowered Women, Empower the World"

// DefaultInstructions 开场提示文字
const DefaultInstructions = "Move your cursor to play with the light, click to make it bloom"

// DefaultGreetings 浮动文字候选列表
var DefaultGreetings = []string{
	"Happy Women's Day", "Feliz Día de la Mujer", "Bonne Journée de la Femme",
	"Alles Gute zum Frauentag", "妇女节快乐", "国際女性デーおめでとう",
	"С Международным женским днём", "يوم مرأة سعيد", "महिला दिवस की शुभकामनाएँ",
	"Feliz Dia da Mulher", "Buona Festa della Donna", "Siku ya Wanawake Njema",
}
