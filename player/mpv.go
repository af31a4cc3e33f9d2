package player

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/where"
	"github.com/cinerow/cinerow/youtube"
	"github.com/google/uuid"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV plays videos in an mpv window driven over its JSON-IPC socket.
// mpv resolves YouTube watch URLs itself through yt-dlp.
type MPV struct {
	args []string

	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	listener   *eventListener
	events     chan Event

	// life guards the process fields above. Play, Close and the controls hold it
	// for their whole run so a reopen never lands in an mpv that is quitting.
	life sync.Mutex
	// mu serializes IPC round trips.
	mu sync.Mutex
}

// NewMPV returns an idle backend. args are appended to every mpv invocation.
func NewMPV(args ...string) *MPV {
	exited := make(chan struct{})
	close(exited)

	return &MPV{
		args:   args,
		exited: exited,
		events: make(chan Event, 16),
	}
}

// Play loads the video into the running mpv, or starts one.
func (m *MPV) Play(videoKey, title string) error {
	target, err := sanitizeMediaTarget(youtube.WatchURL(videoKey))
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	title = sanitizeTitle(title)

	m.life.Lock()
	defer m.life.Unlock()

	if m.isRunning() {
		if _, err := m.sendCommand([]any{"loadfile", target, "replace"}); err != nil {
			return fmt.Errorf("load %s: %w", videoKey, err)
		}
		return m.set("force-media-title", title)
	}

	if m.socketPath == "" {
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("%s-%s.sock", constant.App, uuid.NewString()))
	}

	// Only the socket, title and target are forced so the user's mpv.conf still applies.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + m.socketPath,
		"--force-media-title=" + title,
		"--title=" + title,
		"--force-window=yes",
	}
	args = append(args, m.args...)
	args = append(args, "--", target)

	m.cmd = exec.Command("mpv", args...)
	detach(m.cmd)

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.exited = exited
	go func(cmd *exec.Cmd) {
		_ = cmd.Wait()
		close(exited)
	}(m.cmd)

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("mpv: killing process, socket never became ready")
			_ = terminate(m.cmd.Process)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.listen()
	return nil
}

func (m *MPV) listen() {
	m.listener = newEventListener(m.socketPath)
	if err := m.listener.start(); err != nil {
		log.Warnf("mpv: %v", err)
		m.listener = nil
		return
	}

	go func(in <-chan Event, exited <-chan struct{}) {
		for {
			select {
			case event := <-in:
				select {
				case m.events <- event:
				default:
				}
			case <-exited:
				return
			}
		}
	}(m.listener.events, m.exited)
}

// Events reports pause, mute and fullscreen changes made in the mpv window.
func (m *MPV) Events() <-chan Event {
	return m.events
}

// Wait is closed once the mpv process has exited.
func (m *MPV) Wait() <-chan struct{} {
	m.life.Lock()
	defer m.life.Unlock()
	return m.exited
}

func (m *MPV) waitForSocket() error {
	err := retry.Do(
		func() error {
			select {
			case <-m.exited:
				return retry.Unrecoverable(errors.New("mpv exited before the socket was ready"))
			default:
			}

			conn, err := net.Dial("unix", m.socketPath)
			if err != nil {
				return err
			}
			return conn.Close()
		},
		retry.Attempts(socketWaitRetries),
		retry.Delay(socketWaitDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("socket %s: %w", m.socketPath, err)
	}
	return nil
}

// IsRunning reports whether mpv answers on its socket.
func (m *MPV) IsRunning() bool {
	m.life.Lock()
	defer m.life.Unlock()
	return m.isRunning()
}

func (m *MPV) isRunning() bool {
	if m.socketPath == "" {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]any{"get_property", "pid"})
	return err == nil
}

func (m *MPV) TogglePause() error {
	return m.cycle(PropertyPause)
}

func (m *MPV) ToggleMute() error {
	return m.cycle(PropertyMute)
}

func (m *MPV) ToggleFullscreen() error {
	return m.cycle(PropertyFullscreen)
}

// Set assigns an mpv property.
func (m *MPV) Set(property string, value any) error {
	m.life.Lock()
	defer m.life.Unlock()
	return m.set(property, value)
}

func (m *MPV) set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

func (m *MPV) cycle(property string) error {
	m.life.Lock()
	defer m.life.Unlock()

	if !m.isRunning() {
		return nil
	}
	_, err := m.sendCommand([]any{"cycle", property})
	return err
}

// Close quits mpv, killing it if it does not exit in time.
func (m *MPV) Close() error {
	m.life.Lock()
	defer m.life.Unlock()

	if m.listener != nil {
		m.listener.stop()
		m.listener = nil
	}

	if m.socketPath == "" {
		return nil
	}

	select {
	case <-m.exited:
	default:
		_, _ = m.sendCommand([]any{"quit"})

		select {
		case <-m.exited:
		case <-time.After(3 * time.Second):
			_ = terminate(m.cmd.Process)
		}
	}

	_ = os.Remove(m.socketPath)
	m.socketPath = ""
	return nil
}

// sanitizeMediaTarget refuses anything mpv could read as a flag or a non-http scheme.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-'")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
