package components

// InstructionOverlayComponent 开场提示层
//
// 首次交互时开始淡出；经过 FramesUntilPassThrough 帧后不再拦截指针。
type InstructionOverlayComponent struct {
	Text    string
	Opacity float64

	// Dismissed 首次交互已发生（只触发一次）
	Dismissed bool

	// BlocksPointer 提示层是否仍拦截指针
	BlocksPointer bool

	// FramesUntilPassThrough 距离停止拦截指针的剩余帧数（仅在 Dismissed 后递减）
	FramesUntilPassThrough int
}

// FinalMessageComponent 汇聚阶段的结束语
// Opacity 每帧向 TargetOpacity 逼近
type FinalMessageComponent struct {
	Text          string
	Opacity       float64
	TargetOpacity float64
}
