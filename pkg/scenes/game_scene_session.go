package scenes

import (
	"fmt"
	"log"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/brendino500/space-invaders/pkg/entities"
	"github.com/brendino500/space-invaders/pkg/event"
	"github.com/brendino500/space-invaders/pkg/game"
)

// handleEvent 处理系统发布的事件
// 结束阶段收到的事件全部忽略
func (s *GameScene) handleEvent(e event.Event) {
	if !s.session.IsPlaying() {
		return
	}

	switch e.Type {
	case event.PlayerShoot:
		if _, err := s.projectileSystem.Fire(e.X, e.Y, components.OwnerPlayer); err != nil {
			log.Printf("[GameScene] %v", err)
			return
		}
		s.sounds.PlaySound(game.SoundShoot)

	case event.EnemyShoot:
		s.sounds.PlaySound(game.SoundEnemyShoot)

	case event.EnemyDestroyed:
		points := s.session.RegisterHit()
		s.sounds.PlaySound(game.SoundExplosion)
		log.Printf("[GameScene] Enemy destroyed (+%d, score %d)", points, s.session.Score)

	case event.BigEnemyDestroyed:
		s.session.AddBonus(e.Points)
		s.sounds.PlaySound(game.SoundBonus)
		log.Printf("[GameScene] Big enemy destroyed (+%d, score %d)", e.Points, s.session.Score)

	case event.BigEnemyEscaped:
		log.Printf("[GameScene] Big enemy escaped")

	case event.WaveCleared:
		s.completeLevel()

	case event.PlayerHit:
		s.entityManager.DestroyEntity(s.playerID)
		s.enterGameOver("player hit")

	case event.PlayerCaught:
		s.enterGameOver("formation reached the player")
	}
}

// startSession 开始新的一局：重置分数和速度，重建阵列，重新启动奖励敌人和敌人开火
func (s *GameScene) startSession() error {
	s.session.Reset()
	s.events.Clear()

	if err := s.resetPlayer(); err != nil {
		return err
	}
	if err := s.startWave(); err != nil {
		return err
	}
	s.bigEnemySystem.Start()
	s.projectileSystem.StartEnemyFire()

	log.Printf("[GameScene] Session started")
	return nil
}

// resetPlayer 把玩家放回初始位置并恢复输入；玩家已被移除时重新创建
func (s *GameScene) resetPlayer() error {
	if !s.entityManager.IsAlive(s.playerID) {
		id, err := entities.NewPlayer(s.entityManager, s.cfg, s.sprites)
		if err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}
		s.playerID = id
		s.formationSystem.SetPlayer(id)
		s.projectileSystem.SetPlayer(id)
		return nil
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID); ok {
		pos.X = s.cfg.Screen.Width / 2
		pos.Y = s.cfg.PlayerY()
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID); ok {
		player.Interactive = true
		player.FacingLeft = false
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.playerID); ok {
		sprite.FlipX = false
	}
	return nil
}

// startWave 以当前速度重建阵列并开始移动
func (s *GameScene) startWave() error {
	if _, err := s.formationSystem.Build(); err != nil {
		return fmt.Errorf("failed to build formation: %w", err)
	}
	s.formationSystem.Start(s.session.StepInterval)
	return nil
}

// completeLevel 阵列被清空：提高得分增量和速度，生成新的阵列
func (s *GameScene) completeLevel() {
	s.session.CompleteLevel()
	log.Printf("[GameScene] Level %d (increment %d, step interval %.3fs)",
		s.session.Level, s.session.ScoreIncrement, s.session.StepInterval)

	if err := s.startWave(); err != nil {
		log.Printf("[GameScene] %v", err)
		s.enterGameOver("formation could not be rebuilt")
	}
}

// enterGameOver 结束这一局
// 取消所有定时器和补间，移除阵列、子弹和奖励敌人，禁用玩家输入并保存最高分
func (s *GameScene) enterGameOver(reason string) {
	s.session.EnterGameOver()

	s.scheduler.CancelAll()
	s.tweens.StopAll()
	s.formationSystem.Teardown()
	s.projectileSystem.Stop()
	s.bigEnemySystem.Stop()

	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID); ok {
		player.Interactive = false
	}

	best, improved, err := s.highScores.Submit(s.session.Score)
	if err != nil {
		log.Printf("[GameScene] Failed to save high score: %v", err)
	}
	s.session.HighScore = best
	s.events.Clear()
	s.sounds.PlaySound(game.SoundGameOver)

	log.Printf("[GameScene] Game over (%s): score %d, high score %d, new record %v",
		reason, s.session.Score, best, improved)
}
