package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/cinerow/cinerow/log"
)

// Observed mpv properties.
const (
	PropertyPause      = "pause"
	PropertyMute       = "mute"
	PropertyFullscreen = "fullscreen"
)

// Event is a boolean property change reported by mpv.
type Event struct {
	Property string
	Value    bool
}

var observed = []string{PropertyPause, PropertyMute, PropertyFullscreen}

// eventListener keeps one connection open to mpv and turns property-change
// notifications into Events.
type eventListener struct {
	socketPath string
	events     chan Event

	mu   sync.Mutex
	conn net.Conn
}

func newEventListener(socketPath string) *eventListener {
	return &eventListener{
		socketPath: socketPath,
		events:     make(chan Event, 16),
	}
}

// start subscribes on a dedicated connection, since mpv only pushes
// notifications to the client that asked for them.
func (el *eventListener) start() error {
	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	for id, name := range observed {
		payload, _ := json.Marshal(ipcCommand{Command: []any{"observe_property", id + 1, name}})
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			_ = conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.mu.Lock()
	el.conn = conn
	el.mu.Unlock()

	go el.readLoop(conn)
	return nil
}

func (el *eventListener) stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.conn != nil {
		_ = el.conn.Close()
		el.conn = nil
	}
}

// readLoop runs until the connection closes. mpv sends one JSON object per line.
func (el *eventListener) readLoop(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		if event, ok := parseEvent(scanner.Bytes()); ok {
			select {
			case el.events <- event:
			default:
				log.Debugf("mpv: dropped %s event, nobody listening", event.Property)
			}
		}
	}
}

func parseEvent(line []byte) (Event, bool) {
	var msg struct {
		Event string `json:"event"`
		Name  string `json:"name"`
		Data  any    `json:"data"`
	}
	if err := json.Unmarshal(line, &msg); err != nil || msg.Event != "property-change" {
		return Event{}, false
	}

	value, ok := msg.Data.(bool)
	if !ok {
		return Event{}, false
	}
	return Event{Property: msg.Name, Value: value}, true
}
