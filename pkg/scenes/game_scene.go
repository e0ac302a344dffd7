package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/brendino500/space-invaders/pkg/entities"
	"github.com/brendino500/space-invaders/pkg/event"
	"github.com/brendino500/space-invaders/pkg/game"
	"github.com/brendino500/space-invaders/pkg/systems"
	"github.com/brendino500/space-invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// HighScoreStore 最高分存储
// *game.HighScoreManager 实现了这个接口
type HighScoreStore interface {
	Get() int
	Submit(score int) (best int, improved bool, err error)
}

// SoundPlayer 音效播放
// *game.AudioManager 实现了这个接口（nil 指针也安全）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// GameScene 游戏主场景
//
// 持有一局游戏的全部状态：实体、定时器、补间、事件队列和会话状态。
// 系统只发布事件，分数与玩家状态只在本场景处理事件时修改。
type GameScene struct {
	cfg        *config.GameConfig
	sprites    entities.SpriteSource
	highScores HighScoreStore
	sounds     SoundPlayer
	input      utils.KeyInput

	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler
	tweens        *game.TweenManager
	events        *event.Queue
	session       *game.SessionState

	playerID ecs.EntityID

	// Systems
	playerSystem     *systems.PlayerSystem
	formationSystem  *systems.FormationSystem
	projectileSystem *systems.ProjectileSystem
	bigEnemySystem   *systems.BigEnemySystem
	animationSystem  *systems.AnimationSystem
	renderSystem     *systems.RenderSystem
	hudRenderSystem  *systems.HUDRenderSystem
}

// NewGameScene 创建游戏场景并立即开始第一局
//
// 参数:
//   - cfg: 游戏配置
//   - rm: 资源管理器，可为 nil（使用纯色矩形绘制）
//   - highScores: 最高分存储，可为 nil（仅在内存中记录）
//   - sounds: 音效播放器，可为 nil
//   - input: 键盘输入
//   - rng: 敌人开火的随机源，可为 nil
//
// 返回:
//   - *GameScene: 场景实例
//   - error: 创建初始实体失败时返回错误
func NewGameScene(cfg *config.GameConfig, rm *game.ResourceManager, highScores HighScoreStore,
	sounds SoundPlayer, input utils.KeyInput, rng *rand.Rand) (*GameScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if input == nil {
		return nil, fmt.Errorf("key input cannot be nil")
	}
	if highScores == nil {
		memory, _ := game.NewHighScoreManager(nil)
		highScores = memory
	}
	if sounds == nil {
		sounds = (*game.AudioManager)(nil)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &GameScene{
		cfg:           cfg,
		highScores:    highScores,
		sounds:        sounds,
		input:         input,
		entityManager: ecs.NewEntityManager(),
		scheduler:     game.NewScheduler(),
		tweens:        game.NewTweenManager(),
		events:        event.NewQueue(),
		session:       game.NewSessionState(cfg),
	}
	if rm != nil {
		s.sprites = rm
	}
	s.session.HighScore = highScores.Get()

	var background *ebiten.Image
	if frames := rm.Frames(config.SpriteBackground); len(frames) > 0 {
		background = frames[0]
	}

	s.playerSystem = systems.NewPlayerSystem(s.entityManager, cfg, input, s.events)
	s.formationSystem = systems.NewFormationSystem(s.entityManager, cfg, s.sprites, s.scheduler, s.tweens, s.events)
	s.bigEnemySystem = systems.NewBigEnemySystem(s.entityManager, cfg, s.sprites, s.scheduler, s.tweens, s.events)
	s.projectileSystem = systems.NewProjectileSystem(s.entityManager, cfg, s.sprites, s.scheduler, s.tweens, s.events,
		s.formationSystem, s.bigEnemySystem, rng)
	s.animationSystem = systems.NewAnimationSystem(s.entityManager)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, cfg, background)
	s.hudRenderSystem = systems.NewHUDRenderSystem(cfg)

	if err := s.startSession(); err != nil {
		return nil, err
	}

	log.Printf("[GameScene] Scene created (high score %d)", s.session.HighScore)
	return s, nil
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if !s.session.IsPlaying() {
		// 结束阶段：任意键开始新的一局
		if s.input.AnyKeyJustPressed() {
			if err := s.startSession(); err != nil {
				log.Printf("[GameScene] Failed to restart: %v", err)
			}
		}
		s.animationSystem.Update(deltaTime)
		s.entityManager.RemoveMarkedEntities()
		return
	}

	// Update all systems in order
	s.playerSystem.Update(deltaTime)       // 1. Player input (publishes PlayerShoot)
	s.scheduler.Update(deltaTime)          // 2. Timers: formation step, enemy fire, big enemy respawn
	s.tweens.Update(deltaTime)             // 3. Tweens: movement and collision checks
	s.animationSystem.Update(deltaTime)    // 4. Sprite frames
	s.events.Drain(s.handleEvent)          // 5. Session transitions
	s.entityManager.RemoveMarkedEntities() // 6. Clean up deleted entities (always last)
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.hudRenderSystem.DrawHUD(screen, s.session.Score, s.session.HighScore, s.session.Level)

	if !s.session.IsPlaying() {
		s.hudRenderSystem.DrawGameOverPanel(screen, s.session.Score, s.session.HighScore)
	}
}

// SaveOnExit 窗口关闭时保存进行中这一局的分数（如果刷新了最高分）
func (s *GameScene) SaveOnExit() bool {
	if !s.session.IsPlaying() {
		return true
	}
	if _, _, err := s.highScores.Submit(s.session.Score); err != nil {
		log.Printf("[GameScene] Failed to save high score on exit: %v", err)
		return false
	}
	return true
}

// Session 当前会话状态（只读使用）
func (s *GameScene) Session() *game.SessionState {
	return s.session
}

// EntityCount 当前实体数量（调试显示用）
func (s *GameScene) EntityCount() int {
	return s.entityManager.EntityCount()
}
