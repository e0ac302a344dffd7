package systems

import (
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

// FormationSystem 敌人阵列控制器
//
// 阵列以固定间隔沿 右 → 下 → 左 → 下 … 的之字形移动。
// 每次移动的决策都基于逻辑位置 (TargetX, TargetY)，显示位置由补间在半个间隔内平滑过渡。
// 阵列到达玩家所在行时发布 PlayerCaught，不再移动。
type FormationSystem struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	sprites   entities.SpriteSource
	scheduler *game.Scheduler
	tweens    *game.TweenManager
	events    *event.Queue

	formationID ecs.EntityID
	playerID    ecs.EntityID
	stepTask    *game.TaskHandle
	interval    float64
}

// NewFormationSystem 创建阵列控制器
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - sprites: 敌人精灵来源，可为 nil
//   - scheduler: 驱动移动节奏的定时器
//   - tweens: 驱动显示位置的补间管理器
//   - events: 事件队列
func NewFormationSystem(em *ecs.EntityManager, cfg *config.GameConfig, sprites entities.SpriteSource,
	scheduler *game.Scheduler, tweens *game.TweenManager, events *event.Queue) *FormationSystem {
	return &FormationSystem{
		em:        em,
		cfg:       cfg,
		sprites:   sprites,
		scheduler: scheduler,
		tweens:    tweens,
		events:    events,
		interval:  cfg.Formation.StepInterval,
	}
}

// SetPlayer 设置用于“到达玩家行”检测的玩家实体
func (s *FormationSystem) SetPlayer(id ecs.EntityID) {
	s.playerID = id
}

// Build 拆除现有阵列并按初始布局创建新阵列
func (s *FormationSystem) Build() (ecs.EntityID, error) {
	s.Teardown()

	id, err := entities.BuildFormation(s.em, s.cfg, s.sprites)
	if err != nil {
		return 0, err
	}
	s.formationID = id
	log.Printf("[FormationSystem] Built formation %d with %d enemies", id, len(s.LiveEnemies()))
	return id, nil
}

// Start 以 interval 秒为间隔开始移动阵列
// 已在运行时先停止旧的计时任务
func (s *FormationSystem) Start(interval float64) {
	s.stepTask.Cancel()
	s.interval = interval
	s.stepTask = s.scheduler.Every(interval, s.Step)
}

// Stop 停止移动：取消计时任务并停止当前补间（幂等）
func (s *FormationSystem) Stop() {
	s.stepTask.Cancel()
	s.stepTask = nil

	if f := s.Formation(); f != nil && f.Motion != nil {
		f.Motion.Stop()
		f.Motion = nil
	}
}

// Teardown 停止移动并移除阵列及其全部成员
func (s *FormationSystem) Teardown() {
	s.Stop()

	f := s.Formation()
	if f == nil {
		return
	}
	for _, id := range f.Members {
		s.em.DestroyEntity(id)
	}
	f.Members = nil
	s.em.DestroyEntity(s.formationID)
	s.formationID = 0
}

// Running 阵列是否正在按节奏移动
func (s *FormationSystem) Running() bool {
	return s.stepTask.Active()
}

// Interval 当前移动间隔（秒）
func (s *FormationSystem) Interval() float64 {
	return s.interval
}

// Formation 返回当前阵列组件，没有阵列时返回 nil
func (s *FormationSystem) Formation() *components.FormationComponent {
	if s.formationID == 0 {
		return nil
	}
	f, ok := ecs.GetComponent[*components.FormationComponent](s.em, s.formationID)
	if !ok {
		return nil
	}
	return f
}

// LiveEnemies 按成员顺序返回仍存活的敌人
func (s *FormationSystem) LiveEnemies() []ecs.EntityID {
	f := s.Formation()
	if f == nil {
		return nil
	}
	live := make([]ecs.EntityID, 0, len(f.Members))
	for _, id := range f.Members {
		if s.em.IsAlive(id) {
			live = append(live, id)
		}
	}
	return live
}

// IsEmpty 阵列中没有存活的敌人
func (s *FormationSystem) IsEmpty() bool {
	return len(s.LiveEnemies()) == 0
}

// RemoveEnemy 移除被击中的敌人
// 最后一个敌人被移除时发布 WaveCleared
//
// 返回:
//   - bool: 敌人属于当前阵列且本次调用真正移除了它
func (s *FormationSystem) RemoveEnemy(id ecs.EntityID) bool {
	f := s.Formation()
	if f == nil || !f.RemoveMember(id) {
		return false
	}
	s.em.DestroyEntity(id)

	if len(f.Members) == 0 {
		log.Printf("[FormationSystem] Wave cleared")
		s.events.Publish(event.Event{Type: event.WaveCleared})
	}
	return true
}

// extents 返回存活成员偏移的最左、最右和最下值
func (s *FormationSystem) extents() (left, right, bottom float64, ok bool) {
	f := s.Formation()
	if f == nil {
		return 0, 0, 0, false
	}
	for _, id := range f.Members {
		enemy, has := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if !has || !s.em.IsAlive(id) {
			continue
		}
		if !ok {
			left, right, bottom = enemy.OffsetX, enemy.OffsetX, enemy.OffsetY
			ok = true
			continue
		}
		left = min(left, enemy.OffsetX)
		right = max(right, enemy.OffsetX)
		bottom = max(bottom, enemy.OffsetY)
	}
	return left, right, bottom, ok
}

// Edges 阵列当前逻辑位置下的最左、最右敌人中心X坐标
func (s *FormationSystem) Edges() (left, right float64, ok bool) {
	l, r, _, ok := s.extents()
	if !ok {
		return 0, 0, false
	}
	f := s.Formation()
	return f.TargetX + l, f.TargetX + r, true
}

// Step 执行一次阵列移动
func (s *FormationSystem) Step() {
	f := s.Formation()
	if f == nil {
		return
	}
	left, right, bottom, ok := s.extents()
	if !ok {
		return
	}

	pad := s.cfg.Formation
	width := s.cfg.Screen.Width
	margin := pad.PaddingX * pad.BoundMargin

	switch {
	case f.MoveDownPending:
		if s.playerReached(f.TargetY + bottom + pad.PaddingY) {
			log.Printf("[FormationSystem] Formation reached the player row")
			s.events.Publish(event.Event{Type: event.PlayerCaught})
			return
		}
		f.TargetY += pad.PaddingY
		f.MoveDownPending = false
		f.MovingRight = !f.MovingRight
		s.animateTo(f, true)
		return

	case f.MovingRight:
		if f.TargetX+right+margin > width {
			f.MoveDownPending = true
		}
		f.TargetX += pad.PaddingX

	default:
		if f.TargetX+left-margin < 0 {
			f.MoveDownPending = true
		}
		f.TargetX -= pad.PaddingX
	}

	s.animateTo(f, false)
}

// playerReached 阵列下一次下移后的最下行是否到达玩家
func (s *FormationSystem) playerReached(nextBottom float64) bool {
	if s.playerID == 0 {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return false
	}
	return pos.Y <= nextBottom
}

// animateTo 将显示位置补间到逻辑位置
// vertical 为 true 时补间Y轴，否则补间X轴；另一轴直接对齐逻辑位置
func (s *FormationSystem) animateTo(f *components.FormationComponent, vertical bool) {
	if f.Motion != nil {
		f.Motion.Stop()
	}

	duration := s.interval / 2
	formationID := s.formationID
	apply := func(set func(v float64)) func(float64) {
		return func(v float64) {
			if s.formationID != formationID {
				return
			}
			set(v)
			s.syncPositions(f)
		}
	}

	if vertical {
		f.X = f.TargetX
		f.Motion = s.tweens.Animate(f.Y, f.TargetY, duration, ease.InOutSine, apply(func(v float64) { f.Y = v }), nil)
		return
	}
	f.Y = f.TargetY
	f.Motion = s.tweens.Animate(f.X, f.TargetX, duration, ease.InOutSine, apply(func(v float64) { f.X = v }), nil)
}

// syncPositions 成员世界坐标 = 阵列显示位置 + 成员偏移
func (s *FormationSystem) syncPositions(f *components.FormationComponent) {
	for _, id := range f.Members {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		pos.X = f.X + enemy.OffsetX
		pos.Y = f.Y + enemy.OffsetY
	}
}

// RandomEnemyPosition 随机选择一个存活敌人并返回其世界坐标
//
// 返回:
//   - x, y: 敌人当前显示位置
//   - ok: 没有存活敌人时为 false
func (s *FormationSystem) RandomEnemyPosition(rng *rand.Rand) (x, y float64, ok bool) {
	live := s.LiveEnemies()
	if len(live) == 0 {
		return 0, 0, false
	}
	id := live[rng.Intn(len(live))]
	pos, has := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !has {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}
