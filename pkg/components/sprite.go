package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteKind 精灵的视觉类型
type SpriteKind int

const (
	// SpriteStatic 单张静态图片
	SpriteStatic SpriteKind = iota
	// SpriteFrames 帧序列动画（见 Animation 字段）
	SpriteFrames
)

// SpriteComponent 存储实体的视觉表现
//
// 这是一个带标签的变体：
//   - Kind == SpriteStatic: 绘制 Image
//   - Kind == SpriteFrames: 绘制 Animation 的当前帧
//
// 图片缺失（未配置资源目录）时，渲染系统用 Color 绘制碰撞盒大小的矩形。
type SpriteComponent struct {
	Kind      SpriteKind
	Image     *ebiten.Image
	Animation *FrameAnimation
	Color     color.RGBA // 无图片时的占位颜色
	Scale     float64    // 0 视为 1
	FlipX     bool       // 水平翻转（玩家朝向）
}

// CurrentImage 返回当前应绘制的图片，没有图片时返回 nil
func (s *SpriteComponent) CurrentImage() *ebiten.Image {
	switch s.Kind {
	case SpriteFrames:
		if s.Animation == nil || len(s.Animation.Frames) == 0 {
			return nil
		}
		return s.Animation.Frames[s.Animation.CurrentFrame]
	default:
		return s.Image
	}
}

// EffectiveScale 返回实际缩放系数
func (s *SpriteComponent) EffectiveScale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}
