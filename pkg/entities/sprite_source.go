package entities

import (
	"image/color"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSource 提供预加载的精灵帧
// game.ResourceManager 实现了这个接口；为 nil 时所有实体使用纯色矩形
type SpriteSource interface {
	Frames(name string) []*ebiten.Image
}

// lookupFrames 从 SpriteSource 取帧，source 为 nil 时返回 nil
func lookupFrames(source SpriteSource, name string) []*ebiten.Image {
	if source == nil {
		return nil
	}
	return source.Frames(name)
}

// newSpriteComponent 根据帧数量构建精灵组件
//
// 参数:
//   - frames: 精灵帧，为空时使用占位颜色
//   - fps: 多帧时的播放帧率
//   - fallback: 占位颜色
//   - scale: 缩放系数（0 视为 1）
func newSpriteComponent(frames []*ebiten.Image, fps float64, fallback color.RGBA, scale float64) *components.SpriteComponent {
	sprite := &components.SpriteComponent{
		Kind:  components.SpriteStatic,
		Color: fallback,
		Scale: scale,
	}

	switch {
	case len(frames) == 1:
		sprite.Image = frames[0]
	case len(frames) > 1:
		sprite.Kind = components.SpriteFrames
		sprite.Animation = &components.FrameAnimation{
			Frames:  frames,
			FPS:     fps,
			Playing: true,
		}
	}

	return sprite
}

// spriteSize 返回精灵的显示尺寸
// 有图片时使用第一帧的尺寸乘以缩放，否则使用配置中的默认尺寸
func spriteSize(frames []*ebiten.Image, scale, defaultW, defaultH float64) (float64, float64) {
	if len(frames) == 0 || frames[0] == nil {
		return defaultW, defaultH
	}
	if scale == 0 {
		scale = 1
	}
	b := frames[0].Bounds()
	return float64(b.Dx()) * scale, float64(b.Dy()) * scale
}
