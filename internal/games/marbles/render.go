package marbles

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-marbles/internal/core"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

// Visual characters for rendering
const (
	MarbleChar = '●'
	PathChar   = '·'
	PitChar    = '◉'
	MouthChar  = '▒'
	AimChar    = '•'
	Separator  = '─'
)

// aimGuide is the distances (board units) of the aim dots from the launcher.
var aimGuide = []float64{22, 36, 50}

// marbleColor maps engine colors onto terminal colors.
func marbleColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorRed:
		return core.ColorBrightRed
	case engine.ColorBlue:
		return core.ColorBrightBlue
	case engine.ColorGreen:
		return core.ColorBrightGreen
	case engine.ColorYellow:
		return core.ColorBrightYellow
	case engine.ColorPurple:
		return core.ColorBrightMagenta
	case engine.ColorOrange:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.session.Snapshot()

	g.renderHUD(dst, snap)
	g.renderPath(dst, snap)
	g.renderChain(dst, snap)
	g.renderLauncher(dst, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, level and launcher status on the top two rows.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d", snap.Score, snap.HighScore)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	levelText := fmt.Sprintf("Level %d (%s) ", snap.Level, snap.Params.Shape)
	dst.DrawTextColored(dst.Width()-len([]rune(levelText)), 0, levelText, core.ColorCyan)

	// Row 1: next marble, queue and combo, drawn over a separator.
	dst.DrawHLine(0, 1, dst.Width(), Separator)
	x := 1
	dst.DrawText(x, 1, "Next ")
	x += len("Next ")
	dst.SetColored(x, 1, MarbleChar, marbleColor(snap.Next))
	x += 2

	status := fmt.Sprintf("Queue %d", snap.QueueLen)
	if snap.Combo > 1 {
		status += fmt.Sprintf("  Combo x%d", snap.Combo)
	}
	if !snap.SoundOn {
		status += "  [muted]"
	}
	dst.DrawText(x, 1, status)
}

// renderPath draws the spiral, the pit and the mouth.
func (g *Game) renderPath(dst *core.Screen, snap engine.Snapshot) {
	for p := range snap.Path() {
		x, y := g.view.ToScreen(p)
		if y >= hudHeight {
			dst.SetColored(x, y, PathChar, core.ColorGray)
		}
	}

	px, py := g.view.ToScreen(snap.Params.Position(0))
	dst.SetColored(px, py, PitChar, core.ColorBrown)

	mx, my := g.view.ToScreen(snap.Params.Mouth())
	dst.SetColored(mx, my, MouthChar, core.ColorBrown)
}

// renderChain draws the marbles, tail first so pit-side marbles win shared cells.
func (g *Game) renderChain(dst *core.Screen, snap engine.Snapshot) {
	for i := len(snap.Chain) - 1; i >= 0; i-- {
		m := snap.Chain[i]
		x, y := g.view.ToScreen(snap.Params.Position(m.T))
		if y >= hudHeight {
			dst.SetColored(x, y, MarbleChar, marbleColor(m.Color))
		}
	}

	if p := snap.Projectile; p != nil {
		x, y := g.view.ToScreen(p.Pos)
		if y >= hudHeight {
			dst.SetColored(x, y, MarbleChar, marbleColor(p.Color))
		}
	}
}

// renderLauncher draws the loaded marble at the center with an aim guide.
func (g *Game) renderLauncher(dst *core.Screen, snap engine.Snapshot) {
	if snap.Phase != engine.PhasePlaying {
		return
	}
	center := snap.Params.Center
	dir := core.FromAngle(snap.AimAngle)
	for _, d := range aimGuide {
		x, y := g.view.ToScreen(center.Add(dir.Scale(d)))
		if dst.Get(x, y) == ' ' || dst.Get(x, y) == PathChar {
			dst.SetColored(x, y, AimChar, core.ColorWhite)
		}
	}
	cx, cy := g.view.ToScreen(center)
	dst.SetColored(cx, cy, MarbleChar, marbleColor(snap.Loaded))
}

// renderOverlay draws the title, pause and game-over boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap engine.Snapshot) {
	switch {
	case snap.Phase == engine.PhaseMenu:
		drawCenteredBox(dst,
			"M A R B L E S",
			"Enter or click to start",
			"←/→ or mouse to aim, Space or click to fire",
		)
	case snap.Phase == engine.PhaseOver:
		drawCenteredBox(dst,
			"GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", snap.Score, snap.HighScore),
			fmt.Sprintf("Press R to retry level %d", snap.Level),
		)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a framed message box in the middle of the screen.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	inner := utf8.RuneCountInString(title)
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	boxW := min(inner+4, dst.Width())
	boxH := 2*len(lines) + 3
	y0 := (dst.Height() - boxH) / 2

	dst.DrawBox((dst.Width()-boxW)/2, y0, boxW, boxH)
	dst.DrawTextCenteredColored(y0+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(y0+3+2*i, l)
	}
}
