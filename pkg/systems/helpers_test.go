package systems

import (
	"math/rand"
	"testing"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/brendino500/space-invaders/pkg/entities"
	"github.com/brendino500/space-invaders/pkg/event"
	"github.com/brendino500/space-invaders/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// testWorld 组装一套完整的玩法系统，供测试使用
type testWorld struct {
	cfg         *config.GameConfig
	em          *ecs.EntityManager
	scheduler   *game.Scheduler
	tweens      *game.TweenManager
	events      *event.Queue
	formation   *FormationSystem
	bigEnemies  *BigEnemySystem
	projectiles *ProjectileSystem
}

func newTestWorld(t *testing.T, cfg *config.GameConfig) *testWorld {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}

	w := &testWorld{
		cfg:       cfg,
		em:        ecs.NewEntityManager(),
		scheduler: game.NewScheduler(),
		tweens:    game.NewTweenManager(),
		events:    event.NewQueue(),
	}
	w.formation = NewFormationSystem(w.em, cfg, nil, w.scheduler, w.tweens, w.events)
	w.bigEnemies = NewBigEnemySystem(w.em, cfg, nil, w.scheduler, w.tweens, w.events)
	w.projectiles = NewProjectileSystem(w.em, cfg, nil, w.scheduler, w.tweens, w.events,
		w.formation, w.bigEnemies, rand.New(rand.NewSource(1)))
	return w
}

// addPlayer 创建玩家并注册到各系统
func (w *testWorld) addPlayer(t *testing.T) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayer(w.em, w.cfg, nil)
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}
	w.formation.SetPlayer(id)
	w.projectiles.SetPlayer(id)
	return id
}

// tick 按场景的顺序推进 n 帧
func (w *testWorld) tick(n int) {
	for i := 0; i < n; i++ {
		w.scheduler.Update(config.FixedDeltaTime)
		w.tweens.Update(config.FixedDeltaTime)
		w.em.RemoveMarkedEntities()
	}
}

// drain 取出所有待处理事件
func (w *testWorld) drain() []event.Event {
	var out []event.Event
	w.events.Drain(func(e event.Event) { out = append(out, e) })
	return out
}

// eventTypes 提取事件类型
func eventTypes(events []event.Event) []event.EventType {
	types := make([]event.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

// fakeKeys 脚本化的键盘输入，Press 设置的按键只在下一次 Update 中生效
type fakeKeys struct {
	pressed map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{pressed: make(map[ebiten.Key]bool)}
}

func (f *fakeKeys) Press(keys ...ebiten.Key) {
	f.pressed = make(map[ebiten.Key]bool)
	for _, k := range keys {
		f.pressed[k] = true
	}
}

func (f *fakeKeys) Release() {
	f.pressed = make(map[ebiten.Key]bool)
}

func (f *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return f.pressed[key]
}

func (f *fakeKeys) AnyKeyJustPressed() bool {
	return len(f.pressed) > 0
}
