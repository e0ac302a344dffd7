package systems

import (
	"testing"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/brendino500/space-invaders/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestGameOverLines(t *testing.T) {
	lines := GameOverLines(1200, 3400)
	want := []string{"GAME OVER", "SCORE 1200", "HIGHSCORE 3400", "PRESS ANY KEY TO PLAY AGAIN"}

	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderSystem_DrawPlaceholders(t *testing.T) {
	w := newTestWorld(t, nil)
	w.addPlayer(t)
	if _, err := entities.BuildFormation(w.em, w.cfg, nil); err != nil {
		t.Fatalf("BuildFormation() error: %v", err)
	}

	screen := ebiten.NewImage(int(w.cfg.Screen.Width), int(w.cfg.Screen.Height))
	NewRenderSystem(w.em, w.cfg, nil).Draw(screen)

	hud := NewHUDRenderSystem(config.DefaultGameConfig())
	hud.DrawHUD(screen, 100, 200, 1)
	hud.DrawGameOverPanel(screen, 100, 200)
}
