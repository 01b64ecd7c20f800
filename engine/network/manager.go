package network

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var ErrTooManyRooms = errors.New("room limit reached")

// RoomInfo is returned by the API for the room list
type RoomInfo struct {
	Code    string `json:"code"`
	Clients int    `json:"clients"`
	Turn    int    `json:"turn"`
	State   string `json:"state"`
}

// Manager holds rooms by code. Rooms are created on first join or via
// Create, and removed when the last client leaves.
type Manager struct {
	mu       sync.RWMutex
	rooms    map[string]*Room
	maxRooms int
	factory  EngineFactory
	log      zerolog.Logger
	metrics  *Metrics
}

func NewManager(factory EngineFactory, maxRooms int, log zerolog.Logger) (*Manager, error) {
	m := &Manager{
		rooms:    make(map[string]*Room),
		maxRooms: maxRooms,
		factory:  factory,
		log:      log,
	}
	metrics, err := NewMetrics(m.Len)
	if err != nil {
		return nil, err
	}
	m.metrics = metrics
	return m, nil
}

// NormalizeCode upper-cases a user supplied room code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GetOrCreate returns the room for the given code, creating it if needed
func (m *Manager) GetOrCreate(code string) (*Room, error) {
	code = NormalizeCode(code)
	if code == "" {
		return m.Create()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r, nil
	}
	return m.open(code)
}

// Create opens a room under a fresh 6-char code
func (m *Manager) Create() (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code, err := generateCode(6)
		if err != nil {
			return nil, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := m.rooms[code]; exists {
			continue
		}
		return m.open(code)
	}
}

func (m *Manager) open(code string) (*Room, error) {
	if m.maxRooms > 0 && len(m.rooms) >= m.maxRooms {
		return nil, ErrTooManyRooms
	}
	r, err := NewRoom(code, m.factory, m.log, m.metrics)
	if err != nil {
		return nil, err
	}
	r.OnEmpty = m.removeRoom
	m.rooms[code] = r
	m.log.Info().Str("room", code).Int("rooms", len(m.rooms)).Msg("room opened")
	return r, nil
}

// Release closes a room nobody has joined, such as one opened for a
// connection that then failed to upgrade
func (m *Manager) Release(r *Room) {
	m.removeRoom(r.Code)
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok && r.NumClients() == 0 {
		delete(m.rooms, code)
		m.log.Info().Str("room", code).Msg("room closed")
	}
}

func (m *Manager) Get(code string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[NormalizeCode(code)]
	return r, ok
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// List returns all open rooms sorted by code
func (m *Manager) List() []RoomInfo {
	m.mu.RLock()
	rooms := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	m.mu.RUnlock()

	out := make([]RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		snap := r.Snapshot()
		out = append(out, RoomInfo{Code: r.Code, Clients: r.NumClients(), Turn: snap.Turn, State: snap.State})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode(n int) (string, error) {
	return codeFrom(rand.Reader, n)
}

func codeFrom(src io.Reader, n int) (string, error) {
	b := make([]byte, n)
	limit := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, err := rand.Int(src, limit)
		if err != nil {
			return "", err
		}
		b[i] = codeChars[idx.Int64()]
	}
	return string(b), nil
}
