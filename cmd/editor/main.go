package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/1siamBot/stellar-armada/editor"
	"github.com/1siamBot/stellar-armada/engine/config"
	"github.com/1siamBot/stellar-armada/engine/core"
	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/input"
	"github.com/1siamBot/stellar-armada/engine/logging"
	"github.com/1siamBot/stellar-armada/engine/render"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	SidebarWidth = 220
	PanSpeed     = 12
)

type EditorApp struct {
	editor *editor.Editor
	conv   *render.PointConverter
	board  *render.Board
	input  *input.InputState
	log    zerolog.Logger

	hover    grid.Point
	hasHover bool
	status   string
}

func NewEditorApp(ed *editor.Editor, log zerolog.Logger) *EditorApp {
	a := &EditorApp{editor: ed, input: input.NewInputState(), log: log}
	a.rebuildView()
	return a
}

// rebuildView points the converter and renderer at the current level
func (a *EditorApp) rebuildView() {
	lv := a.editor.Level
	a.conv = render.NewPointConverter(lv.TileSize, 0, 0, ScreenWidth-SidebarWidth, ScreenHeight-24, lv.Width, lv.Height)
	a.board = render.NewBoard(a.conv, lv)
}

func (a *EditorApp) Update() error {
	a.input.Update()
	ctrl := a.input.KeysPressed[ebiten.KeyControl]
	shift := a.input.KeysPressed[ebiten.KeyShift]

	if !ctrl {
		dx, dy := a.input.PanDirection()
		a.conv.Pan(dx*PanSpeed, dy*PanSpeed)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		a.conv.Pan(-a.input.MouseDX, -a.input.MouseDY)
	}
	a.hover, a.hasHover = a.conv.ToGrid(a.input.MouseX, a.input.MouseY)

	switch {
	case a.input.IsKeyJustPressed(ebiten.KeyP):
		a.editor.Tool = editor.ToolPaint
	case a.input.IsKeyJustPressed(ebiten.KeyE):
		a.editor.Tool = editor.ToolErase
	case a.input.IsKeyJustPressed(ebiten.KeyTab):
		a.editor.CycleBrushSize()
	case a.input.IsKeyJustPressed(ebiten.KeyG):
		a.editor.ShowGrid = !a.editor.ShowGrid
	}
	if slot, ok := a.input.JustPressedDigit(); ok && slot < 2 {
		a.editor.Tool = editor.ToolZone
		a.editor.ZoneSlot = slot
	}

	// Undo/Redo (Ctrl+Z / Ctrl+Shift+Z)
	if ctrl && a.input.IsKeyJustPressed(ebiten.KeyZ) {
		if shift {
			a.editor.Redo()
		} else {
			a.editor.Undo()
		}
	}
	// Save (Ctrl+S)
	if ctrl && a.input.IsKeyJustPressed(ebiten.KeyS) {
		if err := a.editor.SaveLevel(""); err != nil {
			a.status = "Save failed: " + err.Error()
			a.log.Warn().Err(err).Msg("saving level")
		} else {
			a.status = "Saved " + a.editor.FilePath
			a.log.Info().Str("path", a.editor.FilePath).Msg("level saved")
		}
	}

	a.handleMouse()
	return nil
}

func (a *EditorApp) handleMouse() {
	if a.input.MouseX >= ScreenWidth-SidebarWidth {
		return
	}
	if a.editor.Tool == editor.ToolZone {
		if !a.input.LeftJustReleased {
			return
		}
		start, ok1 := a.conv.ToGrid(a.input.DragStartX, a.input.DragStartY)
		end, ok2 := a.conv.ToGrid(a.input.MouseX, a.input.MouseY)
		if !ok1 || !ok2 {
			return
		}
		if err := a.editor.SetZone(a.editor.ZoneSlot, start, end); err != nil {
			a.status = err.Error()
		}
		return
	}
	if a.input.LeftPressed && a.hasHover {
		a.editor.Paint(a.hover)
	}
}

func (a *EditorApp) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	a.board.Grid = a.editor.ShowGrid
	a.board.DrawTiles(screen)
	zones := a.editor.Level.Zones()
	players := core.DefaultPlayers()
	if len(zones) == 2 {
		a.board.DrawZones(screen, [2]grid.Zone{zones[0], zones[1]}, players)
	}

	// Zone drag preview
	if a.editor.Tool == editor.ToolZone {
		if x1, y1, x2, y2, active := a.input.DragRect(); active {
			clr := players[a.editor.ZoneSlot].Color
			vector.StrokeRect(screen, float32(min(x1, x2)), float32(min(y1, y2)),
				float32(abs(x2-x1)), float32(abs(y2-y1)), 2, clr, false)
		}
	}
	if a.hasHover {
		a.board.DrawCell(screen, a.hover, render.HoverColor)
	}

	a.drawSidebar(screen)

	tile, _ := a.editor.Level.At(a.hover)
	info := fmt.Sprintf("Level Editor | Cell %s %s | Tool:%s Size:%d | [WASD]Pan [Tab]Size [Ctrl+Z]Undo [Ctrl+S]Save",
		a.hover, tile.Name(), a.editor.Tool, a.editor.BrushSize)
	ebitenutil.DebugPrintAt(screen, info, 5, ScreenHeight-20)
}

func (a *EditorApp) drawSidebar(screen *ebiten.Image) {
	sx := float32(ScreenWidth - SidebarWidth)
	vector.DrawFilledRect(screen, sx, 0, SidebarWidth, float32(ScreenHeight), color.RGBA{20, 20, 40, 220}, false)

	y := 10
	ebitenutil.DebugPrintAt(screen, "=== TOOLS ===", int(sx)+10, y)
	y += 20
	tools := []struct {
		label string
		tool  editor.Tool
		slot  int
	}{
		{"[P] Asteroid brush", editor.ToolPaint, -1},
		{"[E] Erase", editor.ToolErase, -1},
		{"[1] Zone player 1", editor.ToolZone, 0},
		{"[2] Zone player 2", editor.ToolZone, 1},
	}
	for _, t := range tools {
		clr := color.RGBA{50, 50, 80, 255}
		if a.editor.Tool == t.tool && (t.slot < 0 || t.slot == a.editor.ZoneSlot) {
			clr = color.RGBA{100, 100, 200, 255}
		}
		vector.DrawFilledRect(screen, sx+10, float32(y), SidebarWidth-20, 20, clr, false)
		ebitenutil.DebugPrintAt(screen, t.label, int(sx)+15, y+3)
		y += 22
	}

	y += 10
	lv := a.editor.Level
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Size: %dx%d", lv.Width, lv.Height), int(sx)+10, y)
	y += 18
	if err := lv.Validate(); err != nil {
		ebitenutil.DebugPrintAt(screen, "! invalid level", int(sx)+10, y)
		y += 18
	}
	if a.editor.Modified {
		ebitenutil.DebugPrintAt(screen, "* MODIFIED *", int(sx)+10, y)
		y += 18
	}
	if a.status != "" {
		ebitenutil.DebugPrintAt(screen, a.status, int(sx)+10, y+10)
	}
}

func (a *EditorApp) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	width := flag.Int("width", 30, "width of a new level")
	height := flag.Int("height", 30, "height of a new level")
	tile := flag.Int("tile", 50, "cell size in pixels")
	flag.Parse()

	log, closer := logging.Must(config.LogConfig{Level: "info"})
	defer closer.Close()

	ed := editor.NewEditor(*width, *height, *tile)
	if path := flag.Arg(0); path != "" {
		if err := ed.LoadLevel(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("starting a new level instead")
			ed.FilePath = path
		}
	}
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Stellar Armada Level Editor")

	if err := ebiten.RunGame(NewEditorApp(ed, log)); err != nil {
		log.Error().Err(err).Msg("editor exited")
		os.Exit(1)
	}
}
