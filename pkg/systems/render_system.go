package systems

import (
	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 绘制背景和所有带精灵的实体
//
// 实体以位置为中心绘制；没有图片的实体按碰撞盒尺寸绘制纯色矩形。
// 绘制顺序为实体创建顺序。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.GameConfig
	background    *ebiten.Image // 可为 nil，此时使用纯色背景
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cfg *config.GameConfig, background *ebiten.Image) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		cfg:           cfg,
		background:    background,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	for _, id := range ecs.GetAliveEntitiesWith1[*components.SpriteComponent](s.entityManager) {
		s.drawEntity(screen, id)
	}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	if s.background == nil {
		screen.Fill(config.BackgroundColor)
		return
	}

	// 背景拉伸到逻辑屏幕大小
	b := s.background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.cfg.Screen.Width/float64(b.Dx()), s.cfg.Screen.Height/float64(b.Dy()))
	screen.DrawImage(s.background, op)
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	img := sprite.CurrentImage()
	if img == nil {
		s.drawPlaceholder(screen, id, sprite, pos)
		return
	}

	op := &ebiten.DrawImageOptions{}

	// 以图片中心为锚点
	bounds := img.Bounds()
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)

	scale := sprite.EffectiveScale()
	scaleX := scale
	if sprite.FlipX {
		scaleX = -scale
	}
	op.GeoM.Scale(scaleX, scale)
	op.GeoM.Translate(pos.X, pos.Y)

	screen.DrawImage(img, op)
}

// drawPlaceholder 没有图片时按碰撞盒绘制纯色矩形
func (s *RenderSystem) drawPlaceholder(screen *ebiten.Image, id ecs.EntityID, sprite *components.SpriteComponent, pos *components.PositionComponent) {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return
	}
	left, top, _, _ := col.Bounds(pos.X, pos.Y)
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(col.Width), float32(col.Height), sprite.Color, false)
}
