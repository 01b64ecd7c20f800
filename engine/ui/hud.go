package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/stellar-armada/engine/core"
)

const lineHeight = 16

// Controls is the key reference shown in the sidebar
var Controls = []string{
	"Click   select / move / attack",
	"1-9     pick weapon",
	"Space   end turn",
	"Arrows  pan camera",
	"C       copy battle log",
	"R       restart (game over)",
	"Esc     deselect",
	"Bksp    main menu",
}

// HUD is the heads-up display around the board
type HUD struct {
	ScreenW, ScreenH int
	SidebarWidth     int
	TopBarHeight     int

	face text.Face
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW:      sw,
		ScreenH:      sh,
		SidebarWidth: 240,
		TopBarHeight: 30,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
}

// GameArea is the screen rectangle left for the board
func (h *HUD) GameArea() (x, y, w, ht int) {
	return 0, h.TopBarHeight, h.ScreenW - h.SidebarWidth, h.ScreenH - h.TopBarHeight
}

// Draw renders the entire HUD
func (h *HUD) Draw(screen *ebiten.Image, e *core.Engine, sel *Selection, log *BattleLog) {
	h.drawTopBar(screen, e)
	h.drawSidebar(screen, sel, log)
	if e.IsGameOver() {
		h.drawGameOver(screen, e)
	}
}

func (h *HUD) label(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

func (h *HUD) drawTopBar(screen *ebiten.Image, e *core.Engine) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.TopBarHeight), color.RGBA{0, 0, 0, 200}, false)
	h.label(screen, TurnBanner(e), 10, 8, e.CurrentPlayer().Color)

	p := e.Players()
	fleets := fmt.Sprintf("%s: %d  %s: %d", p[0], len(e.ShipsOf(p[0])), p[1], len(e.ShipsOf(p[1])))
	ebitenutil.DebugPrintAt(screen, fleets, h.ScreenW-h.SidebarWidth-len(fleets)*6-10, 8)
}

func (h *HUD) drawSidebar(screen *ebiten.Image, sel *Selection, log *BattleLog) {
	sx := h.ScreenW - h.SidebarWidth
	vector.DrawFilledRect(screen, float32(sx), float32(h.TopBarHeight), float32(h.SidebarWidth), float32(h.ScreenH-h.TopBarHeight), color.RGBA{20, 20, 40, 220}, false)

	y := h.TopBarHeight + 10
	h.label(screen, "=== SHIP ===", sx+10, y, color.White)
	y += lineHeight + 4

	if sh, ok := sel.Ship(); ok {
		// HP bar
		ratio := float32(sh.Health.Ratio())
		barW := float32(h.SidebarWidth - 20)
		vector.DrawFilledRect(screen, float32(sx+10), float32(y), barW, 6, color.RGBA{60, 60, 60, 255}, false)
		vector.DrawFilledRect(screen, float32(sx+10), float32(y), barW*ratio, 6, hpColor(ratio), false)
		y += 12
		for _, line := range ShipInfo(sh) {
			ebitenutil.DebugPrintAt(screen, line, sx+10, y)
			y += lineHeight
		}
	} else {
		ebitenutil.DebugPrintAt(screen, "No ship selected", sx+10, y)
		y += lineHeight
	}

	y += 10
	h.label(screen, "=== CONTROLS ===", sx+10, y, color.White)
	y += lineHeight + 4
	for _, line := range Controls {
		ebitenutil.DebugPrintAt(screen, line, sx+10, y)
		y += lineHeight
	}

	y += 10
	h.label(screen, "=== LOG ===", sx+10, y, color.White)
	y += lineHeight + 4
	for _, line := range log.Lines() {
		if y > h.ScreenH-lineHeight {
			break
		}
		ebitenutil.DebugPrintAt(screen, truncate(line, (h.SidebarWidth-20)/6), sx+10, y)
		y += lineHeight
	}
}

func (h *HUD) drawGameOver(screen *ebiten.Image, e *core.Engine) {
	x, y, w, ht := h.GameArea()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(ht), color.RGBA{0, 0, 0, 160}, false)

	winner, _ := e.Winner()
	msg := fmt.Sprintf("%s wins!", winner)
	h.label(screen, msg, x+w/2-len(msg)*7/2, y+ht/2-20, winner.Color)
	hint := "Press R to restart"
	ebitenutil.DebugPrintAt(screen, hint, x+w/2-len(hint)*3, y+ht/2)
}

// IsInSidebar returns true if the mouse position is over the sidebar
func (h *HUD) IsInSidebar(mx, _ int) bool {
	return mx >= h.ScreenW-h.SidebarWidth
}

// TurnBanner is the top bar caption
func TurnBanner(e *core.Engine) string {
	if w, over := e.Winner(); over {
		return fmt.Sprintf("Turn %d | %s won", e.Turn(), w)
	}
	return fmt.Sprintf("Turn %d | %s to move", e.Turn(), e.CurrentPlayer())
}

// ShipInfo lists a ship's stats and its weapons, the selected one marked
func ShipInfo(sh core.Ship) []string {
	lines := []string{
		fmt.Sprintf("Ship #%d at %s", sh.ID, sh.Position),
		fmt.Sprintf("HP: %d/%d", sh.Health.Current, sh.Health.Max),
		fmt.Sprintf("Moves: %d/%d", sh.ActiveMoves, sh.Speed),
	}
	for i, w := range sh.Weapons {
		mark := " "
		if i == sh.Selected {
			mark = ">"
		}
		lines = append(lines, fmt.Sprintf("%s%d %s", mark, i+1, w.Name))
		for _, stat := range strings.Split(w.String(), "\n") {
			lines = append(lines, "    "+stat)
		}
	}
	return lines
}

func hpColor(ratio float32) color.RGBA {
	clr := color.RGBA{0, 200, 0, 255}
	if ratio < 0.5 {
		clr = color.RGBA{255, 200, 0, 255}
	}
	if ratio < 0.25 {
		clr = color.RGBA{255, 0, 0, 255}
	}
	return clr
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
