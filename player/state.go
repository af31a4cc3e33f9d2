// Package player owns the player overlay state and the backends that play a video key.
package player

import (
	"time"

	"github.com/cinerow/cinerow/catalog"
	"github.com/samber/mo"
)

// ControlsTimeout is how long the controls stay visible without pointer movement.
const ControlsTimeout = 3 * time.Second

type Status int

const (
	Closed Status = iota
	Open
)

// State is a snapshot of the overlay.
type State struct {
	Status Status
	Item   catalog.Item

	// Key is the video to play. It is None while resolving and when nothing playable was found.
	Key       mo.Option[string]
	Resolving bool

	Paused          bool
	Muted           bool
	Fullscreen      bool
	ControlsVisible bool
}

// ScrollLock freezes whatever is behind the overlay.
type ScrollLock interface {
	Lock()
	Unlock()
}

// Action is the side effect a key press asks the backend to perform.
type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionExitFullscreen
	ActionTogglePause
	ActionToggleMute
	ActionToggleFullscreen
)

// Machine is the overlay state machine. It is not safe for concurrent use;
// the TUI drives it from its update loop.
type Machine struct {
	state  State
	scroll ScrollLock
	locked bool

	// ticket identifies the current open so late resolutions of an earlier one are ignored.
	ticket uint64

	// controls identifies the latest hide timer.
	controls uint64
}

// NewMachine returns a closed machine. scroll may be nil.
func NewMachine(scroll ScrollLock) *Machine {
	return &Machine{scroll: scroll}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) IsOpen() bool {
	return m.state.Status == Open
}

// Open shows item with no key yet and returns the ticket its resolution must present.
func (m *Machine) Open(item catalog.Item) uint64 {
	m.ticket++
	m.controls++

	m.state = State{
		Status:          Open,
		Item:            item,
		Key:             mo.None[string](),
		Resolving:       true,
		ControlsVisible: true,
	}

	if !m.locked && m.scroll != nil {
		m.scroll.Lock()
		m.locked = true
	}

	return m.ticket
}

// Resolve records the outcome of trailer resolution for ticket.
// It reports false when the overlay was closed or reopened since.
func (m *Machine) Resolve(ticket uint64, key mo.Option[string]) bool {
	if !m.IsOpen() || ticket != m.ticket {
		return false
	}

	m.state.Key = key
	m.state.Resolving = false
	return true
}

// Close returns to Closed from any state and releases the scroll lock.
// Pending resolutions and hide timers become stale.
func (m *Machine) Close() {
	m.ticket++
	m.controls++
	m.state = State{Status: Closed}

	if m.locked {
		m.scroll.Unlock()
		m.locked = false
	}
}

// HandleKey applies a key press while open and returns the action to perform.
func (m *Machine) HandleKey(k string) Action {
	if !m.IsOpen() {
		return ActionNone
	}

	switch k {
	case "esc":
		if m.state.Fullscreen {
			m.state.Fullscreen = false
			m.touch()
			return ActionExitFullscreen
		}
		m.Close()
		return ActionClose
	case " ", "space":
		m.state.Paused = !m.state.Paused
		m.touch()
		return ActionTogglePause
	case "m", "M":
		m.state.Muted = !m.state.Muted
		m.touch()
		return ActionToggleMute
	case "f", "F":
		m.state.Fullscreen = !m.state.Fullscreen
		m.touch()
		return ActionToggleFullscreen
	default:
		return ActionNone
	}
}

// PointerMoved shows the controls and returns the generation the next hide must present.
func (m *Machine) PointerMoved() uint64 {
	if !m.IsOpen() {
		return m.controls
	}
	m.touch()
	return m.controls
}

// ControlsGeneration is the generation of the most recent hide timer.
func (m *Machine) ControlsGeneration() uint64 {
	return m.controls
}

// HideControls hides the controls if no movement or interaction happened since gen was issued.
func (m *Machine) HideControls(gen uint64) bool {
	if !m.IsOpen() || gen != m.controls {
		return false
	}
	m.state.ControlsVisible = false
	return true
}

// Sync mirrors a property changed from inside the backend, such as a key pressed in the mpv window.
func (m *Machine) Sync(event Event) {
	if !m.IsOpen() {
		return
	}

	switch event.Property {
	case PropertyPause:
		m.state.Paused = event.Value
	case PropertyMute:
		m.state.Muted = event.Value
	case PropertyFullscreen:
		m.state.Fullscreen = event.Value
	}
}

func (m *Machine) touch() {
	m.state.ControlsVisible = true
	m.controls++
}
