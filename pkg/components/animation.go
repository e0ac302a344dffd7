package components

import "github.com/hajimehoshi/ebiten/v2"

// FrameAnimation 帧序列动画状态
// 由 AnimationSystem 按 FPS 推进 CurrentFrame，始终循环播放
type FrameAnimation struct {
	Frames       []*ebiten.Image // 动画的所有帧图片
	FPS          float64         // 每秒播放帧数
	FrameCounter float64         // 当前帧计时器(秒)
	CurrentFrame int             // 当前显示的帧索引(0-based)
	Playing      bool
}

// FrameCount 帧数量
func (a *FrameAnimation) FrameCount() int {
	return len(a.Frames)
}
