package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/brendino500/space-invaders/pkg/entities"
	"github.com/brendino500/space-invaders/pkg/event"
	"github.com/brendino500/space-invaders/pkg/game"
	"github.com/tanema/gween/ease"
)

// ProjectileSystem 子弹与碰撞管理
//
// 每颗子弹由一个线性补间驱动飞向目标边界，补间每推进一次就做一次重叠检测：
//   - 玩家子弹检测阵列中存活的敌人（按成员顺序）和奖励敌人
//   - 敌人子弹检测玩家和奖励敌人
//
// 第一个重叠的目标被击中。同一时间只有一颗敌人子弹在飞行。
type ProjectileSystem struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	sprites   entities.SpriteSource
	scheduler *game.Scheduler
	tweens    *game.TweenManager
	events    *event.Queue

	formation  *FormationSystem
	bigEnemies *BigEnemySystem
	rng        *rand.Rand

	playerID     ecs.EntityID
	enemyShot    ecs.EntityID
	enemyFireJob *game.TaskHandle
}

// NewProjectileSystem 创建子弹管理器
//
// 参数:
//   - formation: 提供玩家子弹的候选目标和敌人开火位置
//   - bigEnemies: 奖励敌人生成器，被击中时由它负责移除和重生
//   - rng: 敌人开火位置的随机源
func NewProjectileSystem(em *ecs.EntityManager, cfg *config.GameConfig, sprites entities.SpriteSource,
	scheduler *game.Scheduler, tweens *game.TweenManager, events *event.Queue,
	formation *FormationSystem, bigEnemies *BigEnemySystem, rng *rand.Rand) *ProjectileSystem {
	return &ProjectileSystem{
		em:         em,
		cfg:        cfg,
		sprites:    sprites,
		scheduler:  scheduler,
		tweens:     tweens,
		events:     events,
		formation:  formation,
		bigEnemies: bigEnemies,
		rng:        rng,
	}
}

// SetPlayer 设置敌人子弹的目标玩家
func (s *ProjectileSystem) SetPlayer(id ecs.EntityID) {
	s.playerID = id
}

// Fire 发射一颗子弹
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
//   - error: 创建实体失败时返回错误
func (s *ProjectileSystem) Fire(originX, originY float64, owner components.ProjectileOwner) (ecs.EntityID, error) {
	id, err := entities.NewProjectile(s.em, s.cfg, s.sprites, originX, originY, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to fire %s projectile: %w", owner, err)
	}

	proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

	proj.Flight = s.tweens.Animate(originY, proj.TargetY, s.cfg.Projectile.FlightDuration, ease.Linear,
		func(v float64) {
			if proj.Resolved {
				return
			}
			pos.Y = v
			s.checkHit(id, proj)
		},
		func() { s.finishFlight(id, proj) })

	if owner == components.OwnerEnemy {
		s.enemyShot = id
	}
	return id, nil
}

// checkHit 对候选目标做重叠检测，第一个命中的目标生效
func (s *ProjectileSystem) checkHit(id ecs.EntityID, proj *components.ProjectileComponent) {
	if proj.Resolved || !s.em.IsAlive(id) {
		return
	}

	if proj.Owner == components.OwnerPlayer {
		for _, enemyID := range s.formation.LiveEnemies() {
			if entitiesOverlap(s.em, id, enemyID) {
				s.resolve(id, proj)
				s.hitEnemy(enemyID)
				return
			}
		}
	} else if s.playerID != 0 && entitiesOverlap(s.em, id, s.playerID) {
		s.resolve(id, proj)
		s.hitPlayer()
		return
	}

	if bigID, ok := s.bigEnemies.Live(); ok && entitiesOverlap(s.em, id, bigID) {
		s.resolve(id, proj)
		s.hitBigEnemy(bigID, proj.Owner)
	}
}

// resolve 结算子弹：停止飞行并移除，之后不再参与检测
func (s *ProjectileSystem) resolve(id ecs.EntityID, proj *components.ProjectileComponent) {
	proj.Resolved = true
	if proj.Flight != nil {
		proj.Flight.Stop()
	}
	s.em.DestroyEntity(id)
	if id == s.enemyShot {
		s.enemyShot = 0
	}
}

func (s *ProjectileSystem) hitEnemy(enemyID ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, enemyID)
	e := event.Event{Type: event.EnemyDestroyed}
	if pos != nil {
		e.X, e.Y = pos.X, pos.Y
	}
	// WaveCleared 由 RemoveEnemy 在 EnemyDestroyed 之后发布
	s.events.Publish(e)
	s.formation.RemoveEnemy(enemyID)
}

func (s *ProjectileSystem) hitPlayer() {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	e := event.Event{Type: event.PlayerHit}
	if pos != nil {
		e.X, e.Y = pos.X, pos.Y
	}
	s.events.Publish(e)
}

func (s *ProjectileSystem) hitBigEnemy(bigID ecs.EntityID, owner components.ProjectileOwner) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bigID)
	big, _ := ecs.GetComponent[*components.BigEnemyComponent](s.em, bigID)
	points := 0
	if big != nil {
		points = big.Points
	}

	s.bigEnemies.Destroy(bigID)

	if owner == components.OwnerPlayer {
		e := event.Event{Type: event.BigEnemyDestroyed, Points: points}
		if pos != nil {
			e.X, e.Y = pos.X, pos.Y
		}
		s.events.Publish(e)
		return
	}

	// 敌人子弹打中奖励敌人不计分，直接发射下一颗
	s.FireEnemyShot()
}

// finishFlight 子弹飞到目标边界仍未命中
func (s *ProjectileSystem) finishFlight(id ecs.EntityID, proj *components.ProjectileComponent) {
	if proj.Resolved {
		return
	}
	proj.Resolved = true
	s.em.DestroyEntity(id)

	if proj.Owner == components.OwnerEnemy {
		if id == s.enemyShot {
			s.enemyShot = 0
		}
		s.FireEnemyShot()
	}
}

// StartEnemyFire 在 initialDelay 秒后发射第一颗敌人子弹
func (s *ProjectileSystem) StartEnemyFire() {
	s.enemyFireJob.Cancel()
	s.enemyFireJob = s.scheduler.After(s.cfg.EnemyFire.InitialDelay, s.FireEnemyShot)
}

// FireEnemyShot 从随机存活敌人处发射一颗子弹
// 已有敌人子弹在飞行时不做任何事；没有存活敌人时在 retryDelay 秒后重试
func (s *ProjectileSystem) FireEnemyShot() {
	s.enemyFireJob.Cancel()
	s.enemyFireJob = nil
	if s.enemyShot != 0 && s.em.IsAlive(s.enemyShot) {
		return
	}

	x, y, ok := s.formation.RandomEnemyPosition(s.rng)
	if !ok {
		s.enemyFireJob = s.scheduler.After(s.cfg.EnemyFire.RetryDelay, s.FireEnemyShot)
		return
	}

	if _, err := s.Fire(x, y, components.OwnerEnemy); err != nil {
		log.Printf("[ProjectileSystem] %v", err)
		return
	}
	s.events.Publish(event.Event{Type: event.EnemyShoot, X: x, Y: y})
}

// EnemyShotInFlight 是否有敌人子弹在飞行
func (s *ProjectileSystem) EnemyShotInFlight() bool {
	return s.enemyShot != 0 && s.em.IsAlive(s.enemyShot)
}

// Stop 停止敌人开火并移除所有飞行中的子弹（幂等）
func (s *ProjectileSystem) Stop() {
	s.enemyFireJob.Cancel()
	s.enemyFireJob = nil

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		proj.Resolved = true
		if proj.Flight != nil {
			proj.Flight.Stop()
		}
		s.em.DestroyEntity(id)
	}
	s.enemyShot = 0
}
