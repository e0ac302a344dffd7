package entities

import (
	"testing"

	"github.com/brendino500/space-invaders/pkg/components"
	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubSprites 为指定名称返回固定帧
type stubSprites map[string][]*ebiten.Image

func (s stubSprites) Frames(name string) []*ebiten.Image {
	return s[name]
}

func TestNewPlayer(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	id, err := NewPlayer(em, cfg, nil)
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("Player missing PositionComponent")
	}
	if pos.X != 400 || pos.Y != 480 {
		t.Errorf("Player position = (%.0f, %.0f), want (400, 480)", pos.X, pos.Y)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("Player missing PlayerComponent")
	}
	if !player.Interactive {
		t.Error("New player should be interactive")
	}
	if player.Step != cfg.Player.Width {
		t.Errorf("Player step = %.0f, want sprite width %.0f", player.Step, cfg.Player.Width)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Kind != components.SpriteStatic || sprite.CurrentImage() != nil {
		t.Error("Player without assets should use a placeholder sprite")
	}
}

func TestFactoriesRejectNilManager(t *testing.T) {
	cfg := config.DefaultGameConfig()

	if _, err := NewPlayer(nil, cfg, nil); err == nil {
		t.Error("NewPlayer(nil) should fail")
	}
	if _, err := NewFormation(nil, cfg); err == nil {
		t.Error("NewFormation(nil) should fail")
	}
	if _, err := NewProjectile(nil, cfg, nil, 0, 0, components.OwnerPlayer); err == nil {
		t.Error("NewProjectile(nil) should fail")
	}
	if _, err := NewBigEnemy(nil, cfg, nil); err == nil {
		t.Error("NewBigEnemy(nil) should fail")
	}
}

func TestBuildFormation(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	formationID, err := BuildFormation(em, cfg, nil)
	if err != nil {
		t.Fatalf("BuildFormation() error: %v", err)
	}

	formation, ok := ecs.GetComponent[*components.FormationComponent](em, formationID)
	if !ok {
		t.Fatal("Formation entity missing FormationComponent")
	}
	if len(formation.Members) != 55 {
		t.Fatalf("Expected 55 members, got %d", len(formation.Members))
	}
	if formation.X != 0 || formation.Y != 30 || !formation.MovingRight || formation.MoveDownPending {
		t.Errorf("Unexpected initial formation state: %+v", formation)
	}

	tests := []struct {
		index    int
		wantX    float64
		wantY    float64
		wantKind int
	}{
		{index: 0, wantX: 40, wantY: 30, wantKind: config.EnemyKindDuck},
		{index: 1, wantX: 40, wantY: 60, wantKind: config.EnemyKindBunny},
		{index: 4, wantX: 40, wantY: 150, wantKind: config.EnemyKindPig},
		{index: 5, wantX: 80, wantY: 30, wantKind: config.EnemyKindDuck},
		{index: 54, wantX: 440, wantY: 150, wantKind: config.EnemyKindPig},
	}
	for _, tt := range tests {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, formation.Members[tt.index])
		if !ok {
			t.Fatalf("Member %d missing EnemyComponent", tt.index)
		}
		if enemy.OffsetX != tt.wantX || enemy.OffsetY != tt.wantY || enemy.Kind != tt.wantKind {
			t.Errorf("Member %d = offset (%.0f, %.0f) kind %d, want (%.0f, %.0f) kind %d",
				tt.index, enemy.OffsetX, enemy.OffsetY, enemy.Kind, tt.wantX, tt.wantY, tt.wantKind)
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, formation.Members[tt.index])
		if pos.X != tt.wantX || pos.Y != tt.wantY+30 {
			t.Errorf("Member %d world position = (%.0f, %.0f), want (%.0f, %.0f)",
				tt.index, pos.X, pos.Y, tt.wantX, tt.wantY+30)
		}
	}
}

func TestNewEnemy_InvalidArguments(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	formationID, _ := NewFormation(em, cfg)

	if _, err := NewEnemy(em, cfg, nil, formationID, config.EnemyKindCount, 0, 0); err == nil {
		t.Error("Expected error for invalid enemy kind")
	}
	notFormation := em.CreateEntity()
	if _, err := NewEnemy(em, cfg, nil, notFormation, config.EnemyKindDuck, 0, 0); err == nil {
		t.Error("Expected error for non-formation parent")
	}
}

func TestNewProjectile_Targets(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	tests := []struct {
		name        string
		owner       components.ProjectileOwner
		wantTargetY float64
	}{
		{"player shot flies to the top", components.OwnerPlayer, 0},
		{"enemy shot leaves through the bottom", components.OwnerEnemy, cfg.Screen.Height + cfg.Projectile.Height},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewProjectile(em, cfg, nil, 100, 200, tt.owner)
			if err != nil {
				t.Fatalf("NewProjectile() error: %v", err)
			}
			proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
			if !ok {
				t.Fatal("Projectile missing ProjectileComponent")
			}
			if proj.TargetY != tt.wantTargetY {
				t.Errorf("TargetY = %.0f, want %.0f", proj.TargetY, tt.wantTargetY)
			}
			if proj.Owner != tt.owner || proj.Resolved {
				t.Errorf("Unexpected projectile state: %+v", proj)
			}
		})
	}
}

func TestNewBigEnemy(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	id, err := NewBigEnemy(em, cfg, nil)
	if err != nil {
		t.Fatalf("NewBigEnemy() error: %v", err)
	}
	big, _ := ecs.GetComponent[*components.BigEnemyComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	if pos.Y != cfg.BigEnemy.Y {
		t.Errorf("Big enemy Y = %.0f, want %.0f", pos.Y, cfg.BigEnemy.Y)
	}
	if big.StartX >= 0 || big.EndX <= cfg.Screen.Width {
		t.Errorf("Big enemy should start and end off screen, got %.0f -> %.0f", big.StartX, big.EndX)
	}
	if big.Points != 500 {
		t.Errorf("Big enemy points = %d, want 500", big.Points)
	}
}

func TestSpriteComponentFromFrames(t *testing.T) {
	frames := []*ebiten.Image{ebiten.NewImage(20, 10), ebiten.NewImage(20, 10)}
	sprites := stubSprites{config.SpritePlayer: frames}

	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	id, err := NewPlayer(em, cfg, sprites)
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Kind != components.SpriteFrames || sprite.Animation.FrameCount() != 2 {
		t.Errorf("Expected a 2-frame animated sprite, got kind %d", sprite.Kind)
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col.Width != 20 || col.Height != 10 {
		t.Errorf("Collision size = %.0fx%.0f, want image size 20x10", col.Width, col.Height)
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	if player.Step != 20 {
		t.Errorf("Player step = %.0f, want 20", player.Step)
	}
}
