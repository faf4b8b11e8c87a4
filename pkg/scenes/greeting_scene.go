package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/greeting/pkg/components"
	"github.com/decker502/greeting/pkg/ecs"
	"github.com/decker502/greeting/pkg/entities"
	"github.com/decker502/greeting/pkg/game"
	"github.com/decker502/greeting/pkg/systems"
	"github.com/decker502/greeting/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	_ Scene          = (*GreetingScene)(nil)
	_ game.Resizable = (*GreetingScene)(nil)
	_ game.Saveable  = (*GreetingScene)(nil)
)

// backgroundColor 画布背景（深紫）
var backgroundColor = color.NRGBA{R: 12, G: 6, B: 24, A: 255}

// GreetingScene 贺卡动画场景
//
// 每次 Update 推进一帧，顺序固定：
//  1. 处理帧间累积的宿主事件（移动、离开、点击、尺寸变化）
//  2. 状态机推进（含画布透明度与转场副作用）
//  3. 粒子更新
//  4. 浮动文字生成与更新
//  5. 光标跟随、覆盖层淡入淡出
//  6. 移除本帧销毁的实体
//
// 场景本身不读取输入设备，事件由外部推入 EventQueue，
// 因此测试和无窗口工具可以直接单步驱动。
type GreetingScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GreetingState
	events        *game.EventQueue

	phaseSystem    *systems.PhaseSystem
	particleSystem *systems.ParticleSystem
	textSystem     *systems.FloatingTextSystem
	overlaySystem  *systems.OverlaySystem
	renderSystem   *systems.RenderSystem

	cursorEntity ecs.EntityID

	// canvas 离屏画布，按整体透明度合成到屏幕
	canvas *ebiten.Image
}

// NewGreetingScene 创建场景并完成首次初始化
//
// 参数：
//   - gs: 模拟上下文（配置、视口、随机源、设置）
//   - fonts: 字体管理器，为 nil 时不绘制文字（无窗口运行）
//   - events: 宿主事件队列
func NewGreetingScene(gs *game.GreetingState, fonts *game.FontManager, events *game.EventQueue) *GreetingScene {
	em := ecs.NewEntityManager()

	scene := &GreetingScene{
		entityManager:  em,
		gameState:      gs,
		events:         events,
		phaseSystem:    systems.NewPhaseSystem(em, gs),
		particleSystem: systems.NewParticleSystem(em, gs),
		textSystem:     systems.NewFloatingTextSystem(em, gs),
		overlaySystem:  systems.NewOverlaySystem(em, gs, showInstructions(gs)),
		renderSystem:   systems.NewRenderSystem(em, gs, fonts),
	}
	scene.cursorEntity = entities.NewCursor(em, gs)

	scene.overlaySystem.SetOnFirstInteraction(scene.onFirstInteraction)
	scene.phaseSystem.SetOnEnterCulmination(scene.onEnterCulmination)
	scene.phaseSystem.SetOnExitCulmination(scene.onExitCulmination)
	scene.phaseSystem.SetOnLoopComplete(scene.onLoopComplete)

	scene.Init()
	return scene
}

// showInstructions 配置为只显示一次且已看过时跳过提示层
func showInstructions(gs *game.GreetingState) bool {
	if !gs.Config.Overlay.ShowOnce || gs.Settings == nil {
		return true
	}
	return !gs.Settings.GetSettings().InstructionsSeen
}

// Init 按当前视口重建环境粒子，清除浮动文字与爆发粒子，光标回到静止位置
// 阶段与计时器不受影响
func (s *GreetingScene) Init() {
	s.particleSystem.Clear()
	s.textSystem.Clear()
	s.entityManager.RemoveMarkedEntities()

	count := s.particleSystem.SpawnAmbient(s.gameState.Width, s.gameState.Height)
	s.resetCursor()

	log.Printf("[GreetingScene] Initialized %dx%d with %d particles (phase=%s)",
		s.gameState.Width, s.gameState.Height, count, s.phaseSystem.Phase())
}

// Update 推进一帧
func (s *GreetingScene) Update(deltaTime float64) {
	s.handleEvents()

	s.phaseSystem.Tick()
	phase := s.phaseSystem.Phase()

	s.particleSystem.Update(phase)
	s.textSystem.Update(phase)

	s.updateCursor()
	s.overlaySystem.Update()

	s.entityManager.RemoveMarkedEntities()
}

// handleEvents 依次处理队列中的全部事件，处理期间没有帧在进行
func (s *GreetingScene) handleEvents() {
	for _, e := range s.events.Consume() {
		switch e.Type {
		case game.EventPointerMove:
			s.overlaySystem.HandleFirstInteraction()
			s.gameState.MovePointer(e.X, e.Y)

		case game.EventPointerLeave:
			s.gameState.ClearPointer()

		case game.EventClick:
			s.overlaySystem.HandleFirstInteraction()
			if s.phaseSystem.Phase() == components.PhaseInteractive {
				s.particleSystem.SpawnBurst(e.X, e.Y)
			}

		case game.EventResize:
			s.gameState.SetViewport(e.Width, e.Height)
			s.Init()
		}
	}
}

func (s *GreetingScene) onFirstInteraction() {
	if s.gameState.Settings != nil {
		s.gameState.Settings.MarkInstructionsSeen()
	}
}

// onEnterCulmination 清除文字，计算符号目标点并分配给粒子，显示结束语
func (s *GreetingScene) onEnterCulmination() {
	s.textSystem.Clear()

	w, h := s.gameState.Width, s.gameState.Height
	cfg := s.gameState.Config
	points := utils.SymbolPoints(float64(w)/2, float64(h)/2, cfg.ShapeScale(w, h), cfg.Shape)
	assigned := s.particleSystem.AssignTargets(points)

	s.overlaySystem.ShowFinalMessage()
	log.Printf("[GreetingScene] Culmination: %d target points, %d particles converging", len(points), assigned)
}

func (s *GreetingScene) onExitCulmination() {
	s.overlaySystem.HideFinalMessage()
}

// onLoopComplete 记录完成的循环并整体重新初始化
func (s *GreetingScene) onLoopComplete() {
	if s.gameState.Settings != nil {
		loops := s.gameState.Settings.IncrementCompletedLoops()
		log.Printf("[GreetingScene] Loop complete (total %d)", loops)
	}
	s.Init()
}

// updateCursor 光标跟随已知的指针，否则停在静止位置并隐藏
func (s *GreetingScene) updateCursor() {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.cursorEntity)
	if !ok {
		return
	}
	cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursorEntity)

	pointer := s.gameState.Pointer
	if pointer.Known {
		pos.X, pos.Y = pointer.X, pointer.Y
		cursor.Visible = true
		return
	}
	pos.X, pos.Y = cursor.RestX, cursor.RestY
	cursor.Visible = false
}

func (s *GreetingScene) resetCursor() {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.cursorEntity)
	if !ok {
		return
	}
	cursor, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursorEntity)
	pos.X, pos.Y = cursor.RestX, cursor.RestY
	cursor.Visible = false
}

// Draw 绘制一帧
// 画布内容按整体透明度合成，覆盖层直接绘制在最上层
func (s *GreetingScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	if s.canvas == nil || s.canvas.Bounds().Dx() != bounds.Dx() || s.canvas.Bounds().Dy() != bounds.Dy() {
		if s.canvas != nil {
			s.canvas.Deallocate()
		}
		s.canvas = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	s.canvas.Clear()

	s.renderSystem.DrawCanvas(s.canvas)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(s.phaseSystem.GlobalAlpha()))
	screen.DrawImage(s.canvas, op)

	s.renderSystem.DrawOverlays(screen, s.overlaySystem.Overlay(), s.overlaySystem.FinalMessage())
}

// Resize 视口尺寸变化，在下一帧开始时重新初始化
func (s *GreetingScene) Resize(width, height int) {
	s.events.Push(game.Event{Type: game.EventResize, Width: width, Height: height})
}

// SaveOnExit 退出前保存设置
func (s *GreetingScene) SaveOnExit() bool {
	if s.gameState.Settings == nil {
		return true
	}
	if err := s.gameState.Settings.Save(); err != nil {
		log.Printf("[GreetingScene] Warning: failed to save settings: %v", err)
		return false
	}
	return true
}

// Phase 返回当前阶段
func (s *GreetingScene) Phase() components.Phase {
	return s.phaseSystem.Phase()
}

// PhaseTimer 返回当前阶段内的帧数
func (s *GreetingScene) PhaseTimer() int {
	return s.phaseSystem.Timer()
}

// GlobalAlpha 返回画布整体透明度
func (s *GreetingScene) GlobalAlpha() float64 {
	return s.phaseSystem.GlobalAlpha()
}

// Loops 返回本次运行完成的循环次数
func (s *GreetingScene) Loops() int {
	return s.phaseSystem.Loops()
}

// ParticleCounts 返回存活的环境粒子与爆发粒子数
func (s *GreetingScene) ParticleCounts() (ambient, burst int) {
	return s.particleSystem.Count()
}

// TextCount 返回存活的浮动文字数
func (s *GreetingScene) TextCount() int {
	return s.textSystem.Count()
}

// PointerBlocked 提示层是否仍拦截指针
func (s *GreetingScene) PointerBlocked() bool {
	return s.overlaySystem.PointerBlocked()
}

// FinalMessageOpacity 返回结束语当前透明度
func (s *GreetingScene) FinalMessageOpacity() float64 {
	if msg := s.overlaySystem.FinalMessage(); msg != nil {
		return msg.Opacity
	}
	return 0
}
