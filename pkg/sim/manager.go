package sim

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/player"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Manager holds isolated sessions keyed by an id chosen by the shell. Ticks on
// one session are serialized; different sessions tick independently.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	settings config.Settings
}

// NewManager creates an empty registry whose sessions use the given settings
func NewManager(s config.Settings) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		settings: s,
	}
}

// Open creates the session for id
func (m *Manager) Open(id string, opts ...Option) error {
	session, err := NewSession(m.settings, opts...)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		return fmt.Errorf("%w: %s", ErrSessionExists, id)
	}
	m.sessions[id] = &entry{session: session}
	log.Printf("[Sessions] Opened %s", id)
	return nil
}

// Tick advances the session for id by one step
func (m *Manager) Tick(id string, cmds player.CommandSet, restart bool) (FrameState, error) {
	e, err := m.get(id)
	if err != nil {
		return FrameState{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Tick(cmds, restart), nil
}

// Frame returns the current frame of the session for id
func (m *Manager) Frame(id string) (FrameState, error) {
	e, err := m.get(id)
	if err != nil {
		return FrameState{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Frame(), nil
}

// Close removes the session for id and returns its last frame
func (m *Manager) Close(id string) (FrameState, error) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return FrameState{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	frame := e.session.Frame()
	log.Printf("[Sessions] Closed %s (high score %d)", id, frame.HighScore)
	return frame, nil
}

// IDs returns the open session ids in sorted order
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *Manager) get(id string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return e, nil
}
