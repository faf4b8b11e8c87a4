package systems

import (
	"image/color"
	"math"
	"strings"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowTextureSize 发光贴图边长（像素）
const glowTextureSize = 64

// maxGlowVertices 单批次顶点上限（uint16 索引）
const maxGlowVertices = 65532

// overlayTextWidthRatio 覆盖层文字最大宽度占视口宽度的比例
const overlayTextWidthRatio = 0.9

// 发光与阴影颜色
var (
	// particleGlowColor 指针附近粒子的光晕 hsl(50, 100%, 85%)
	particleGlowColor = utils.HSLA(50, 1, 0.85, 1)
	// textColor 浮动文字 hsl(50, 100%, 85%)
	textColor = utils.HSLA(50, 1, 0.85, 1)
	// textShadowColor 文字光晕 rgba(255, 221, 119, 0.7)
	textShadowColor = color.NRGBA{R: 255, G: 221, B: 119, A: 179}
	// overlayBackdropColor 提示层背景
	overlayBackdropColor = color.NRGBA{R: 8, G: 4, B: 20, A: 170}
)

// shadowOffsets 文字光晕的八方向偏移（单位向量，乘以模糊半径）
var shadowOffsets = [8][2]float64{
	{-0.7, -0.7}, {0, -1}, {0.7, -0.7},
	{-1, 0}, {1, 0},
	{-0.7, 0.7}, {0, 1}, {0.7, 0.7},
}

// RenderSystem 绘制粒子、浮动文字、光标标记与覆盖层
//
// 画布内容（粒子、文字、光标）由场景绘制到离屏画布后按整体透明度合成；
// 提示层与结束语直接绘制到屏幕，不受画布透明度影响。
//
// 光晕使用预渲染的径向渐变贴图，按加法混合批量绘制：
// 同一帧所有光晕共享一张贴图，一次 DrawTriangles 提交。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GreetingState
	fonts         *game.FontManager

	glowImage    *ebiten.Image
	glowVertices []ebiten.Vertex // 复用，避免每帧分配
	glowIndices  []uint16
}

// NewRenderSystem 创建渲染系统
//
// 参数：
//   - em: 实体管理器
//   - gs: 模拟上下文（视口与配置）
//   - fonts: 字体管理器，为 nil 时跳过所有文字绘制
func NewRenderSystem(em *ecs.EntityManager, gs *game.GreetingState, fonts *game.FontManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		fonts:         fonts,
		glowVertices:  make([]ebiten.Vertex, 0, 1024),
		glowIndices:   make([]uint16, 0, 1536),
	}
}

// DrawCanvas 绘制画布内容：粒子、浮动文字、光标标记
func (s *RenderSystem) DrawCanvas(target *ebiten.Image) {
	s.DrawParticles(target)
	s.DrawFloatingTexts(target)
	s.DrawCursor(target)
}

// DrawParticles 绘制所有粒子
// 先批量绘制环境粒子的光晕，再按创建顺序绘制实心圆
func (s *RenderSystem) DrawParticles(target *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ParticleComponent](s.entityManager)
	if len(ids) == 0 {
		return
	}

	cfg := s.gameState.Config.Particles

	s.resetGlowBatch()
	for _, id := range ids {
		ambient, ok := ecs.GetComponent[*components.AmbientComponent](s.entityManager, id)
		if !ok || ambient.Proximity <= 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)

		radius := particle.Size + cfg.GlowBlur*ambient.Proximity
		s.appendGlow(target, pos.X, pos.Y, radius, particleGlowColor, ambient.Proximity*cfg.GlowAlpha)
	}
	s.flushGlowBatch(target)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if particle.Size <= 0 {
			continue
		}
		vector.DrawFilledCircle(target, float32(pos.X), float32(pos.Y), float32(particle.Size), particle.Color, true)
	}
}

// DrawFloatingTexts 绘制浮动文字
// 字号为视口宽度的百分比，文字以 (X, Y) 为基线中心
func (s *RenderSystem) DrawFloatingTexts(target *ebiten.Image) {
	if s.fonts == nil {
		return
	}

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.FloatingTextComponent](s.entityManager)
	glow := s.gameState.Config.Texts.GlowBlur
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		if ft.Opacity <= 0 {
			continue
		}

		face := s.fonts.Face(ft.FontScale * float64(s.gameState.Width) / 100)
		s.drawGlowingText(target, ft.Text, face, pos.X, pos.Y, textColor, ft.Opacity, glow)
	}
}

// DrawCursor 绘制光标标记（指针未知时不绘制）
func (s *RenderSystem) DrawCursor(target *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.CursorComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, id)
		if !cursor.Visible {
			continue
		}

		s.resetGlowBatch()
		s.appendGlow(target, pos.X, pos.Y, cursor.Size+cursor.Glow, cursor.Color, float64(cursor.Color.A)/255)
		s.flushGlowBatch(target)

		vector.DrawFilledCircle(target, float32(pos.X), float32(pos.Y), float32(cursor.Size), cursor.Color, true)
	}
}

// DrawOverlays 绘制结束语与开场提示层（直接绘制到屏幕）
func (s *RenderSystem) DrawOverlays(screen *ebiten.Image, overlay *components.InstructionOverlayComponent, message *components.FinalMessageComponent) {
	if s.fonts == nil {
		return
	}

	cfg := s.gameState.Config.Overlay
	w := float64(s.gameState.Width)
	h := float64(s.gameState.Height)

	if message != nil && message.Opacity > 0 && message.Text != "" {
		face := s.fonts.Face(cfg.FinalMessageFontSize * w / 100)
		lines := utils.WrapText(message.Text, face, w*overlayTextWidthRatio)
		// 多行时向上展开，最后一行基线保持在 85% 高度
		baseline := h*0.85 - float64(len(lines)-1)*lineSpacing(face)
		s.drawGlowingText(screen, strings.Join(lines, "\n"), face, w/2, baseline, textColor, utils.EaseInOutCubic(message.Opacity), s.gameState.Config.Texts.GlowBlur)
	}

	if overlay != nil && overlay.Opacity > 0 {
		alpha := utils.EaseInOutCubic(overlay.Opacity)
		backdrop := utils.WithAlpha(overlayBackdropColor, float64(overlayBackdropColor.A)/255*alpha)
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), backdrop, false)

		face := s.fonts.Face(cfg.InstructionFontSize * w / 100)
		lines := utils.WrapText(overlay.Text, face, w*overlayTextWidthRatio)
		baseline := h/2 - float64(len(lines)-1)*lineSpacing(face)/2
		s.drawGlowingText(screen, strings.Join(lines, "\n"), face, w/2, baseline, textColor, alpha, s.gameState.Config.Texts.GlowBlur)
	}
}

// lineSpacing 多行文字的行距
func lineSpacing(face text.Face) float64 {
	m := face.Metrics()
	return (m.HAscent + m.HDescent) * 1.2
}

// drawGlowingText 绘制带光晕的居中文字，baselineY 为第一行基线
// 光晕为八方向偏移的半透明副本，再在中心绘制主文字
func (s *RenderSystem) drawGlowingText(target *ebiten.Image, str string, face text.Face, x, baselineY float64, clr color.NRGBA, opacity, blur float64) {
	y := baselineY - face.Metrics().HAscent
	spacing := lineSpacing(face)

	if blur > 0 {
		shadowAlpha := float32(float64(textShadowColor.A) / 255 * opacity / 4)
		for _, offset := range shadowOffsets {
			op := &text.DrawOptions{}
			op.PrimaryAlign = text.AlignCenter
			op.LineSpacing = spacing
			op.GeoM.Translate(x+offset[0]*blur/2, y+offset[1]*blur/2)
			op.ColorScale.ScaleWithColor(color.NRGBA{R: textShadowColor.R, G: textShadowColor.G, B: textShadowColor.B, A: 255})
			op.ColorScale.ScaleAlpha(shadowAlpha)
			op.Blend = ebiten.BlendLighter
			text.Draw(target, str, face, op)
		}
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = spacing
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(opacity))
	text.Draw(target, str, face, op)
}

func (s *RenderSystem) resetGlowBatch() {
	s.glowVertices = s.glowVertices[:0]
	s.glowIndices = s.glowIndices[:0]
}

// appendGlow 把一个光晕四边形加入批次，顶点颜色为预乘透明度
func (s *RenderSystem) appendGlow(target *ebiten.Image, x, y, radius float64, clr color.NRGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	if len(s.glowVertices)+4 > maxGlowVertices {
		s.flushGlowBatch(target)
		s.resetGlowBatch()
	}

	a := float32(math.Min(1, alpha))
	r := float32(clr.R) / 255 * a
	g := float32(clr.G) / 255 * a
	b := float32(clr.B) / 255 * a

	x0 := float32(x - radius)
	y0 := float32(y - radius)
	x1 := float32(x + radius)
	y1 := float32(y + radius)
	const t = float32(glowTextureSize)

	base := uint16(len(s.glowVertices))
	s.glowVertices = append(s.glowVertices,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: t, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: t, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: t, SrcY: t, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	)
	s.glowIndices = append(s.glowIndices,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

func (s *RenderSystem) flushGlowBatch(target *ebiten.Image) {
	if len(s.glowVertices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = ebiten.BlendLighter
	op.AntiAlias = true
	target.DrawTriangles(s.glowVertices, s.glowIndices, s.glowTexture(), op)
}

// glowTexture 返回径向渐变贴图（首次使用时创建）
func (s *RenderSystem) glowTexture() *ebiten.Image {
	if s.glowImage == nil {
		s.glowImage = ebiten.NewImage(glowTextureSize, glowTextureSize)
		s.glowImage.WritePixels(GlowPixels(glowTextureSize))
	}
	return s.glowImage
}

// GlowPixels 生成 size×size 的白色径向渐变（预乘 RGBA）
// 中心不透明，按 (1-d)^2 衰减到边缘完全透明
func GlowPixels(size int) []byte {
	pix := make([]byte, size*size*4)
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - center) / center
			dy := (float64(y) + 0.5 - center) / center
			d := math.Hypot(dx, dy)
			a := 0.0
			if d < 1 {
				a = (1 - d) * (1 - d)
			}
			v := byte(a*255 + 0.5)
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	return pix
}
