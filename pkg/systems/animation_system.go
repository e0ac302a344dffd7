package systems

import (
	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/ecs"
)

// AnimationSystem 推进所有帧序列精灵的当前帧
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetAliveEntitiesWith1[*components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Kind != components.SpriteFrames || sprite.Animation == nil {
			continue
		}
		advanceAnimation(sprite.Animation, deltaTime)
	}
}

// advanceAnimation 按 FPS 循环推进帧
func advanceAnimation(anim *components.FrameAnimation, deltaTime float64) {
	if !anim.Playing || anim.FPS <= 0 || len(anim.Frames) == 0 {
		return
	}

	frameDuration := 1.0 / anim.FPS
	anim.FrameCounter += deltaTime
	for anim.FrameCounter >= frameDuration {
		anim.FrameCounter -= frameDuration
		anim.CurrentFrame = (anim.CurrentFrame + 1) % len(anim.Frames)
	}
}
