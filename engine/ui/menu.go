package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Main menu items, in display order
const (
	ItemNewGame = iota
	ItemLevel
	ItemAbout
	ItemQuit
	itemCount
)

var (
	menuBG      = color.RGBA{8, 8, 16, 255}
	menuAccent  = color.RGBA{0, 200, 255, 255}
	menuBtnNorm = color.RGBA{25, 35, 55, 240}
	menuBtnHov  = color.RGBA{35, 55, 90, 255}
	menuBtnDis  = color.RGBA{20, 20, 28, 200}
	menuBorder  = color.RGBA{40, 70, 120, 200}
)

// AboutLines is the text behind the About item
var AboutLines = []string{
	"STELLAR ARMADA",
	"",
	"Two fleets, one grid, alternating turns.",
	"Move within your speed, fire within range,",
	"and leave the other side with nothing afloat.",
	"",
	"Press any key to return",
}

// MenuButton represents a clickable menu button
type MenuButton struct {
	X, Y, W, H int
	Text       string
	Disabled   bool
}

// Contains reports whether the screen point lies on the button
func (b MenuButton) Contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// MainMenu is the start scene: new game, level choice, about and quit
type MainMenu struct {
	ScreenW, ScreenH int
	Tick             float64

	// Levels holds one label per playable level; Level indexes it
	Levels    []string
	Level     int
	ShowAbout bool

	hoverIdx int

	OnNewGame func(level int)
	OnQuit    func()
}

func NewMainMenu(screenW, screenH int, levels []string) *MainMenu {
	return &MainMenu{
		ScreenW:  screenW,
		ScreenH:  screenH,
		Levels:   levels,
		hoverIdx: ItemNewGame,
	}
}

// Hovered is the index of the highlighted item
func (m *MainMenu) Hovered() int { return m.hoverIdx }

// Buttons lays the items out centred below the title. The level item is
// disabled when there is nothing to choose between.
func (m *MainMenu) Buttons() []MenuButton {
	cx := m.ScreenW / 2
	startY := m.ScreenH/2 - 20
	bw, bh, gap := 300, 40, 8
	buttons := make([]MenuButton, itemCount)
	for i := range buttons {
		buttons[i] = MenuButton{X: cx - bw/2, Y: startY + i*(bh+gap), W: bw, H: bh}
	}
	buttons[ItemNewGame].Text = "NEW GAME"
	buttons[ItemLevel].Text = m.levelText()
	buttons[ItemLevel].Disabled = len(m.Levels) < 2
	buttons[ItemAbout].Text = "ABOUT"
	buttons[ItemQuit].Text = "QUIT"
	return buttons
}

func (m *MainMenu) levelText() string {
	if len(m.Levels) == 0 {
		return "LEVEL: -"
	}
	return fmt.Sprintf("< LEVEL %d/%d: %s >", m.Level+1, len(m.Levels), m.Levels[m.Level])
}

// MoveHover steps the highlight by dir, wrapping and skipping disabled items
func (m *MainMenu) MoveHover(dir int) {
	buttons := m.Buttons()
	idx := m.hoverIdx
	for range buttons {
		idx = (idx + dir + len(buttons)) % len(buttons)
		if !buttons[idx].Disabled {
			m.hoverIdx = idx
			return
		}
	}
}

// HoverAt highlights the enabled item under the cursor, if any
func (m *MainMenu) HoverAt(mx, my int) bool {
	for i, b := range m.Buttons() {
		if b.Contains(mx, my) && !b.Disabled {
			m.hoverIdx = i
			return true
		}
	}
	return false
}

// CycleLevel moves the level choice by dir, wrapping
func (m *MainMenu) CycleLevel(dir int) {
	if n := len(m.Levels); n > 0 {
		m.Level = (m.Level + dir%n + n) % n
	}
}

// Activate runs the highlighted item
func (m *MainMenu) Activate() {
	switch m.hoverIdx {
	case ItemNewGame:
		if m.OnNewGame != nil {
			m.OnNewGame(m.Level)
		}
	case ItemLevel:
		m.CycleLevel(1)
	case ItemAbout:
		m.ShowAbout = true
	case ItemQuit:
		if m.OnQuit != nil {
			m.OnQuit()
		}
	}
}

func (m *MainMenu) Update(dt float64) {
	m.Tick += dt

	if m.ShowAbout {
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			m.ShowAbout = false
		}
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.MoveHover(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.MoveHover(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		m.CycleLevel(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		m.CycleLevel(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.Activate()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.hoverIdx = ItemQuit
	}

	mx, my := ebiten.CursorPosition()
	over := m.HoverAt(mx, my)
	if over && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.Activate()
	}
}

func (m *MainMenu) Draw(screen *ebiten.Image) {
	screen.Fill(menuBG)
	m.drawAnimatedBG(screen)
	m.drawTitle(screen)

	if m.ShowAbout {
		m.drawAbout(screen)
		return
	}
	for i, b := range m.Buttons() {
		m.drawMenuButton(screen, b, i == m.hoverIdx)
	}
	hint := "Up/Down select   Left/Right level   Enter confirm"
	ebitenutil.DebugPrintAt(screen, hint, m.ScreenW/2-len(hint)*3, m.ScreenH-40)
}

func (m *MainMenu) drawTitle(screen *ebiten.Image) {
	cx := m.ScreenW / 2
	title := "STELLAR ARMADA"
	titleW := len(title) * 12

	pulse := 0.7 + 0.3*math.Sin(m.Tick*2)
	vector.DrawFilledRect(screen, float32(cx-titleW/2-20), 60, float32(titleW+40), 70,
		color.RGBA{0, 100, 180, uint8(40 * pulse)}, false)

	// debug text only; fake bold by overprinting
	ty := 75
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3+dx, ty+dy)
		}
	}
	lineY := float32(ty + 20)
	vector.DrawFilledRect(screen, float32(cx-120), lineY, 240, 2, menuAccent, false)
	vector.DrawFilledRect(screen, float32(cx-120), lineY-1, 240, 4, color.RGBA{0, 180, 255, 40}, false)
}

func (m *MainMenu) drawAnimatedBG(screen *ebiten.Image) {
	t := m.Tick
	gridAlpha := uint8(15)
	for i := 0; i < 20; i++ {
		x := float32(math.Mod(float64(i)*70+t*20, float64(m.ScreenW)))
		vector.StrokeLine(screen, x, 0, x, float32(m.ScreenH), 1, color.RGBA{0, 80, 120, gridAlpha}, false)
	}
	for i := 0; i < 12; i++ {
		y := float32(math.Mod(float64(i)*65+t*15, float64(m.ScreenH)))
		vector.StrokeLine(screen, 0, y, float32(m.ScreenW), y, 1, color.RGBA{0, 80, 120, gridAlpha}, false)
	}

	// drifting stars
	for i := 0; i < 30; i++ {
		px := float32(math.Mod(float64(i)*43.7+t*10+float64(i*i)*0.3, float64(m.ScreenW)))
		py := float32(math.Mod(float64(i)*67.3+t*5+float64(i)*1.7, float64(m.ScreenH)))
		alpha := uint8(20 + 20*math.Sin(t*2+float64(i)))
		vector.DrawFilledCircle(screen, px, py, 1.5, color.RGBA{0, 180, 255, alpha}, false)
	}
}

func (m *MainMenu) drawAbout(screen *ebiten.Image) {
	w, h := 420, len(AboutLines)*lineHeight+40
	x, y := m.ScreenW/2-w/2, m.ScreenH/2-h/2+40
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), menuBtnNorm, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, menuAccent, false)
	for i, line := range AboutLines {
		ebitenutil.DebugPrintAt(screen, line, x+20, y+20+i*lineHeight)
	}
}

func (m *MainMenu) drawMenuButton(screen *ebiten.Image, b MenuButton, hovered bool) {
	clr := menuBtnNorm
	if b.Disabled {
		clr = menuBtnDis
	} else if hovered {
		clr = menuBtnHov
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)

	border := menuBorder
	if hovered && !b.Disabled {
		border = menuAccent
	}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, border, false)

	tx := b.X + b.W/2 - len(b.Text)*3
	ty := b.Y + b.H/2 - 8
	ebitenutil.DebugPrintAt(screen, b.Text, tx, ty)
}
