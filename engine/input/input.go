package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// digitKeys maps 1-9 to weapon slots 0-8
var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

var trackedKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
	ebiten.KeySpace, ebiten.KeyEscape, ebiten.KeyEnter,
	ebiten.KeyShift, ebiten.KeyControl,
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY    int
	MouseDX, MouseDY  int // delta since last frame
	prevMouseX        int
	prevMouseY        int
	LeftPressed       bool
	RightPressed      bool
	LeftJustPressed   bool
	RightJustPressed  bool
	LeftJustReleased  bool
	RightJustReleased bool
	ScrollY           float64

	// Drag
	DragStartX, DragStartY int
	Dragging               bool
	DragThreshold          int

	// Keyboard
	KeysPressed map[ebiten.Key]bool
}

func NewInputState() *InputState {
	return &InputState{
		DragThreshold: 5,
		KeysPressed:   make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	rightDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.RightJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	s.LeftPressed = leftDown
	s.RightPressed = rightDown

	_, s.ScrollY = ebiten.Wheel()

	if s.LeftJustPressed {
		s.DragStartX = s.MouseX
		s.DragStartY = s.MouseY
		s.Dragging = false
	}
	if leftDown && !s.Dragging {
		s.Dragging = s.exceedsThreshold()
	}
	if !leftDown && !s.LeftJustReleased {
		s.Dragging = false
	}

	for _, k := range trackedKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

func (s *InputState) exceedsThreshold() bool {
	dx := s.MouseX - s.DragStartX
	dy := s.MouseY - s.DragStartY
	return dx*dx+dy*dy > s.DragThreshold*s.DragThreshold
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// JustPressedDigit returns the zero-based slot of a 1-9 key pressed this frame
func (s *InputState) JustPressedDigit() (int, bool) {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i, true
		}
	}
	return 0, false
}

// PanDirection reads arrows and WASD as a unit scroll direction
func (s *InputState) PanDirection() (dx, dy int) {
	if s.KeysPressed[ebiten.KeyLeft] || s.KeysPressed[ebiten.KeyA] {
		dx--
	}
	if s.KeysPressed[ebiten.KeyRight] || s.KeysPressed[ebiten.KeyD] {
		dx++
	}
	if s.KeysPressed[ebiten.KeyUp] || s.KeysPressed[ebiten.KeyW] {
		dy--
	}
	if s.KeysPressed[ebiten.KeyDown] || s.KeysPressed[ebiten.KeyS] {
		dy++
	}
	return dx, dy
}

// DragRect returns the drag rectangle while the left button is held
func (s *InputState) DragRect() (x1, y1, x2, y2 int, active bool) {
	if !s.Dragging {
		return 0, 0, 0, 0, false
	}
	return s.DragStartX, s.DragStartY, s.MouseX, s.MouseY, true
}
