package systems

import (
	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/brendino500/space-invaders/pkg/event"
	"github.com/brendino500/space-invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerSystem 处理玩家的键盘输入
//
// 左右方向键每次移动一个精灵宽度，并让精灵朝向移动方向；
// 空格键发布 PlayerShoot 事件，由场景发射子弹。
type PlayerSystem struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	input  utils.KeyInput
	events *event.Queue
}

// NewPlayerSystem 创建玩家输入系统
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameConfig, input utils.KeyInput, events *event.Queue) *PlayerSystem {
	return &PlayerSystem{
		em:     em,
		cfg:    cfg,
		input:  input,
		events: events,
	}
}

// Update 处理本帧的按键
func (s *PlayerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetAliveEntitiesWith1[*components.PlayerComponent](s.em) {
		s.handleInput(id)
	}
}

func (s *PlayerSystem) handleInput(id ecs.EntityID) {
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	if !player.Interactive {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return
	}

	width := s.cfg.Screen.Width
	switch {
	case s.input.IsKeyJustPressed(ebiten.KeyArrowLeft):
		if pos.X-player.Step > 0 {
			pos.X -= player.Step
		}
		s.face(id, player, true)
	case s.input.IsKeyJustPressed(ebiten.KeyArrowRight):
		if pos.X+player.Step < width {
			pos.X += player.Step
		}
		s.face(id, player, false)
	}

	if s.input.IsKeyJustPressed(ebiten.KeySpace) {
		s.events.Publish(event.Event{Type: event.PlayerShoot, X: pos.X, Y: pos.Y})
	}
}

// face 设置玩家朝向，精灵水平翻转
func (s *PlayerSystem) face(id ecs.EntityID, player *components.PlayerComponent, left bool) {
	player.FacingLeft = left
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
		sprite.FlipX = left
	}
}
