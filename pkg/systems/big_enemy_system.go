package systems

import (
	"log"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/brendino500/space-invaders/pkg/entities"
	"github.com/brendino500/space-invaders/pkg/event"
	"github.com/brendino500/space-invaders/pkg/game"
	"github.com/tanema/gween/ease"
)

// BigEnemySystem 奖励敌人生成器
//
// 同一时间最多只有一个奖励敌人和一个等待中的重生计时器。
// 奖励敌人从左向右横穿屏幕；逃离或被击落后，经过 respawnDelay 再次出现。
type BigEnemySystem struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	sprites   entities.SpriteSource
	scheduler *game.Scheduler
	tweens    *game.TweenManager
	events    *event.Queue

	liveID      ecs.EntityID
	respawnTask *game.TaskHandle
}

// NewBigEnemySystem 创建奖励敌人生成器
func NewBigEnemySystem(em *ecs.EntityManager, cfg *config.GameConfig, sprites entities.SpriteSource,
	scheduler *game.Scheduler, tweens *game.TweenManager, events *event.Queue) *BigEnemySystem {
	return &BigEnemySystem{
		em:        em,
		cfg:       cfg,
		sprites:   sprites,
		scheduler: scheduler,
		tweens:    tweens,
		events:    events,
	}
}

// Start 开始周期生成：respawnDelay 秒后出现第一个奖励敌人
// 已有奖励敌人或等待中的计时器时不做任何事
func (s *BigEnemySystem) Start() {
	if s.liveID != 0 || s.respawnTask.Active() {
		return
	}
	s.armRespawn()
}

// Stop 取消重生计时器并移除当前奖励敌人（幂等）
func (s *BigEnemySystem) Stop() {
	s.respawnTask.Cancel()
	s.respawnTask = nil
	s.remove()
}

// Live 返回当前存活的奖励敌人
func (s *BigEnemySystem) Live() (ecs.EntityID, bool) {
	if s.liveID == 0 || !s.em.IsAlive(s.liveID) {
		return 0, false
	}
	return s.liveID, true
}

// RespawnPending 是否有等待中的重生计时器
func (s *BigEnemySystem) RespawnPending() bool {
	return s.respawnTask.Active()
}

// Destroy 奖励敌人被子弹击中：移除并安排重生
//
// 返回:
//   - bool: id 是当前存活的奖励敌人且本次调用移除了它
func (s *BigEnemySystem) Destroy(id ecs.EntityID) bool {
	if id == 0 || id != s.liveID {
		return false
	}
	s.remove()
	s.armRespawn()
	return true
}

func (s *BigEnemySystem) armRespawn() {
	s.respawnTask.Cancel()
	s.respawnTask = s.scheduler.After(s.cfg.BigEnemy.RespawnDelay, s.spawn)
}

func (s *BigEnemySystem) remove() {
	if s.liveID == 0 {
		return
	}
	if big, ok := ecs.GetComponent[*components.BigEnemyComponent](s.em, s.liveID); ok && big.Traverse != nil {
		big.Traverse.Stop()
	}
	s.em.DestroyEntity(s.liveID)
	s.liveID = 0
}

func (s *BigEnemySystem) spawn() {
	s.respawnTask = nil
	if s.liveID != 0 {
		return
	}

	id, err := entities.NewBigEnemy(s.em, s.cfg, s.sprites)
	if err != nil {
		log.Printf("[BigEnemySystem] Failed to spawn big enemy: %v", err)
		s.armRespawn()
		return
	}
	s.liveID = id

	big, _ := ecs.GetComponent[*components.BigEnemyComponent](s.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

	big.Traverse = s.tweens.Animate(big.StartX, big.EndX, s.cfg.BigEnemy.TraverseDuration, ease.Linear,
		func(v float64) {
			if s.liveID == id {
				pos.X = v
			}
		},
		func() { s.escape(id) })

	log.Printf("[BigEnemySystem] Big enemy %d spawned", id)
}

// escape 奖励敌人未被击中到达屏幕另一侧
func (s *BigEnemySystem) escape(id ecs.EntityID) {
	if id != s.liveID {
		return
	}
	s.remove()
	s.events.Publish(event.Event{Type: event.BigEnemyEscaped})
	s.armRespawn()
}
