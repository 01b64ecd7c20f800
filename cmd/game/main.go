package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/1siamBot/stellar-armada/engine/config"
	"github.com/1siamBot/stellar-armada/engine/core"
	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/input"
	"github.com/1siamBot/stellar-armada/engine/logging"
	"github.com/1siamBot/stellar-armada/engine/maplib"
	"github.com/1siamBot/stellar-armada/engine/match"
	"github.com/1siamBot/stellar-armada/engine/render"
	"github.com/1siamBot/stellar-armada/engine/ui"
)

const (
	ScreenWidth = 1240
	PanSpeed    = 12 // pixels per frame
	MinimapSize = 160
	LogLines    = 12
)

// Game implements ebiten.Game: the main menu, then a hot-seat match
type Game struct {
	screenH int
	cfg     config.GameConfig
	levels  []*maplib.Level
	log     zerolog.Logger

	menu    *ui.MainMenu
	playing bool
	quit    bool

	level    *maplib.Level
	newMatch func() (*core.Engine, error)

	eng    *core.Engine
	sel    *ui.Selection
	battle *ui.BattleLog

	hud     *ui.HUD
	conv    *render.PointConverter
	board   *render.Board
	minimap *render.Minimap
	input   *input.InputState

	hover    grid.Point
	hasHover bool
	showMap  bool
}

func NewGame(cfg config.GameConfig, levels []*maplib.Level, screenH int, log zerolog.Logger) *Game {
	labels := make([]string, len(levels))
	for i, lv := range levels {
		labels[i] = fmt.Sprintf("%dx%d", lv.Width, lv.Height)
	}
	g := &Game{
		screenH: screenH,
		cfg:     cfg,
		levels:  levels,
		log:     log,
		menu:    ui.NewMainMenu(ScreenWidth, screenH, labels),
		battle:  ui.NewBattleLog(LogLines),
		hud:     ui.NewHUD(ScreenWidth, screenH),
		input:   input.NewInputState(),
		showMap: true,
	}
	if cfg.LevelIndex >= 0 && cfg.LevelIndex < len(levels) {
		g.menu.Level = cfg.LevelIndex
	}
	g.menu.OnNewGame = func(level int) {
		if err := g.startLevel(level); err != nil {
			g.log.Error().Err(err).Int("level", level).Msg("starting new game")
		}
	}
	g.menu.OnQuit = func() { g.quit = true }
	return g
}

// startLevel leaves the menu for a fresh match on levels[idx]
func (g *Game) startLevel(idx int) error {
	lv := g.levels[idx]
	ax, ay, aw, ah := g.hud.GameArea()
	g.level = lv
	g.conv = render.NewPointConverter(lv.TileSize, ax, ay, aw, ah, lv.Width, lv.Height)
	g.board = render.NewBoard(g.conv, lv)
	g.minimap = render.NewMinimap(aw-MinimapSize-10, g.screenH-MinimapSize-10, MinimapSize)
	g.newMatch = match.Factory(g.cfg, lv, logging.Component(g.log, "engine"))
	if err := g.restart(); err != nil {
		return err
	}
	g.playing = true
	return nil
}

// restart throws the current match away and deals a new one
func (g *Game) restart() error {
	eng, err := g.newMatch()
	if err != nil {
		return fmt.Errorf("starting match: %w", err)
	}
	g.eng = eng
	g.sel = ui.NewSelection(eng)
	g.battle.Reset()
	g.battle.Attach(eng)
	eng.Subscribe(core.EvtNextTurn, func(core.Event) { g.focusCurrentFleet() })
	g.focusCurrentFleet()
	g.log.Info().Str("player", eng.CurrentPlayer().Name).Msg("match started")
	return nil
}

func (g *Game) focusCurrentFleet() {
	if ships := g.eng.ShipsOf(g.eng.CurrentPlayer()); len(ships) > 0 {
		g.conv.CenterOn(ships[0].Position)
	}
}

func (g *Game) Update() error {
	if !g.playing {
		g.menu.Update(1.0 / float64(ebiten.TPS()))
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	g.input.Update()
	g.handleCamera()

	switch {
	case g.input.IsKeyJustPressed(ebiten.KeyBackspace):
		g.playing = false
		g.log.Info().Msg("back to main menu")
		return nil
	case g.input.IsKeyJustPressed(ebiten.KeyM):
		g.showMap = !g.showMap
	case g.input.IsKeyJustPressed(ebiten.KeyEscape):
		g.sel.Clear()
	case g.input.IsKeyJustPressed(ebiten.KeySpace):
		g.eng.AdvanceTurn()
	case g.input.IsKeyJustPressed(ebiten.KeyC):
		if err := clipboard.WriteAll(g.battle.String()); err != nil {
			g.log.Warn().Err(err).Msg("copying battle log")
		}
	case g.input.IsKeyJustPressed(ebiten.KeyR) && g.eng.IsGameOver():
		if err := g.restart(); err != nil {
			return err
		}
	}
	if slot, ok := g.input.JustPressedDigit(); ok {
		g.sel.SelectWeapon(slot)
	}

	g.hover, g.hasHover = g.conv.ToGrid(g.input.MouseX, g.input.MouseY)

	if g.input.LeftJustPressed {
		mx, my := g.input.MouseX, g.input.MouseY
		switch {
		case g.hud.IsInSidebar(mx, my):
		case g.showMap && g.minimap.Contains(mx, my):
			if p, ok := g.minimap.CellAt(g.level, mx, my); ok {
				g.conv.CenterOn(p)
			}
		case g.hasHover:
			res := g.sel.Click(g.hover)
			g.log.Debug().Stringer("cell", g.hover).Stringer("result", res).Msg("board click")
		}
	}
	return nil
}

func (g *Game) handleCamera() {
	dx, dy := g.input.PanDirection()
	if dx != 0 || dy != 0 {
		g.conv.Pan(dx*PanSpeed, dy*PanSpeed)
	}
	// Middle mouse drag to pan
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		g.conv.Pan(-g.input.MouseDX, -g.input.MouseDY)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.playing {
		g.menu.Draw(screen)
		return
	}
	screen.Fill(color.RGBA{5, 5, 15, 255})

	g.board.DrawTiles(screen)
	g.board.DrawZones(screen, g.eng.Zones(), g.eng.Players())

	g.board.DrawCells(screen, g.sel.AttackRange(), render.AttackColor)
	dests := g.sel.Destinations()
	g.board.DrawCells(screen, dests, render.DestinationColor)
	if cell, ok := g.sel.Cell(); ok {
		g.board.DrawCell(screen, cell, render.SelectedColor)
	}
	if g.hasHover && contains(dests, g.hover) {
		g.board.DrawPath(screen, g.sel.PathTo(g.hover))
	} else if g.hasHover {
		g.board.DrawCell(screen, g.hover, render.HoverColor)
	}

	selected, hasSel := g.sel.Ship()
	var allies, enemies []grid.Point
	cur := g.eng.CurrentPlayer()
	for _, p := range g.eng.Players() {
		for _, s := range g.eng.ShipsOf(p) {
			g.board.DrawShip(screen, s, p, hasSel && s.ID == selected.ID)
			if p == cur {
				allies = append(allies, s.Position)
			} else {
				enemies = append(enemies, s.Position)
			}
		}
	}

	if g.showMap {
		g.minimap.Draw(screen, g.level, g.conv, allies, enemies)
	}
	g.hud.Draw(screen, g.eng, g.sel, g.battle)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, g.screenH
}

func contains(cells []grid.Point, p grid.Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	levelFile := flag.String("level", "", "level JSON file; overrides levels.dir/levels.index")
	seed := flag.Int64("seed", 0, "spawn seed; 0 uses game.seed")
	flag.Parse()

	cfgErr := config.Load(*configDir)
	log, closer := logging.Must(config.Log())
	defer closer.Close()
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("using default configuration")
	}

	gameCfg := config.Game()
	if *seed != 0 {
		gameCfg.Seed = *seed
	}
	levels, err := match.Levels(gameCfg, *levelFile)
	if err != nil {
		log.Error().Err(err).Msg("loading levels")
		os.Exit(1)
	}
	game := NewGame(gameCfg, levels, config.Window().Height, logging.Component(log, "game"))

	ebiten.SetWindowSize(ScreenWidth, config.Window().Height)
	ebiten.SetWindowTitle("Stellar Armada")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game exited")
		os.Exit(1)
	}
}
