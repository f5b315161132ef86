package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering.
const (
	PlatformChar    = '▀'
	OscillatingChar = '═'
	PlayerChar      = '█'
	PlayerFaceLeft  = '◀'
	PlayerFaceRight = '▶'
)

// Render draws the current game state into the screen buffer. It is a pure
// read of the simulation: world coordinates are shifted by the camera offset
// and rounded to cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawPlatforms(dst)
	g.drawPlayer(dst)

	scoreText := fmt.Sprintf(" Score: %d ", g.camera.Score())
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)

	switch {
	case g.mode == core.ModeMenu:
		drawCenteredMessage(dst, "J U M P E R", "Press Enter to start  |  A/D or arrows to steer")
	case g.mode == core.ModeGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press Enter to retry", g.camera.Score()))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawPlatforms(dst *core.Screen) {
	for _, pl := range g.field.Platforms() {
		sy := int(math.Round(pl.Y - g.camera.Y))
		if sy < 0 || sy >= dst.Height() {
			continue
		}
		ch, color := PlatformChar, core.ColorGreen
		if pl.Kind == KindOscillating {
			ch, color = OscillatingChar, core.ColorBrightCyan
		}
		sx := int(math.Round(pl.X))
		for x := 0; x < int(math.Round(pl.W)); x++ {
			dst.SetColored(sx+x, sy, ch, color)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	sx := int(math.Round(g.player.X))
	sy := int(math.Round(g.player.Y - g.camera.Y))
	w := int(math.Round(g.player.W))
	h := int(math.Round(g.player.H))

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(sx+dx, sy+dy, PlayerChar, core.ColorBrightYellow)
		}
	}

	// Facing marker on the leading top edge
	face, fx := PlayerFaceRight, sx+w-1
	if g.player.Facing == FacingLeft {
		face, fx = PlayerFaceLeft, sx
	}
	dst.SetColored(fx, sy, face, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
