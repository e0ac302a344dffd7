package systems

import (
	"fmt"
	"image/color"

	"github.com/brendino500/space-invaders/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 文字缩放（basicfont 是 7x13 的点阵字体）
const (
	hudTextScale   = 1.5
	panelTextScale = 3.0
)

// HUDRenderSystem 绘制分数栏和游戏结束面板
type HUDRenderSystem struct {
	cfg  *config.GameConfig
	face text.Face
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(cfg *config.GameConfig) *HUDRenderSystem {
	return &HUDRenderSystem{
		cfg:  cfg,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// GameOverLines 游戏结束面板上的文字，从上到下
func GameOverLines(score, highScore int) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("SCORE %d", score),
		fmt.Sprintf("HIGHSCORE %d", highScore),
		"PRESS ANY KEY TO PLAY AGAIN",
	}
}

// DrawHUD 在屏幕顶部绘制分数、最高分和关卡
func (s *HUDRenderSystem) DrawHUD(screen *ebiten.Image, score, highScore, level int) {
	s.drawText(screen, fmt.Sprintf("SCORE %d", score), config.HUDMarginX, config.HUDMarginY, hudTextScale, config.HUDTextColor, false)

	right := fmt.Sprintf("HIGHSCORE %d  LEVEL %d", highScore, level)
	w, _ := text.Measure(right, s.face, 0)
	x := s.cfg.Screen.Width - config.HUDMarginX - w*hudTextScale
	s.drawText(screen, right, x, config.HUDMarginY, hudTextScale, config.HUDTextColor, false)
}

// DrawGameOverPanel 绘制半透明遮罩和结算文字
func (s *HUDRenderSystem) DrawGameOverPanel(screen *ebiten.Image, score, highScore int) {
	width := float32(s.cfg.Screen.Width)
	height := float32(s.cfg.Screen.Height)
	vector.DrawFilledRect(screen, 0, 0, width, height, config.PanelColor, false)

	lines := GameOverLines(score, highScore)
	centerX := s.cfg.Screen.Width / 2
	y := s.cfg.Screen.Height * config.GameOverTitleYRatio

	for i, line := range lines {
		scale := panelTextScale
		if i == len(lines)-1 {
			// 提示文字更小，并与分数行隔开
			scale = hudTextScale
			y += config.GameOverHintGap - config.GameOverLineSpacing
		}
		s.drawText(screen, line, centerX, y, scale, config.TextColor, true)
		y += config.GameOverLineSpacing
	}
}

// drawText 以 (x, y) 为左上角（或水平中心）绘制缩放后的文字
func (s *HUDRenderSystem) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color, centered bool) {
	if centered {
		w, _ := text.Measure(str, s.face, 0)
		x -= w * scale / 2
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
