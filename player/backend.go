package player

import (
	"fmt"

	"github.com/cinerow/cinerow/open"
	"github.com/cinerow/cinerow/youtube"
)

// Backend plays a YouTube video key somewhere outside the terminal.
type Backend interface {
	Play(videoKey, title string) error
	TogglePause() error
	ToggleMute() error
	ToggleFullscreen() error
	Close() error
}

// Observable backends report changes made from inside the player window.
type Observable interface {
	Events() <-chan Event
	Wait() <-chan struct{}
}

// Backend names accepted by New.
const (
	BackendMPV     = "mpv"
	BackendBrowser = "browser"
)

// New returns the backend called name. browserApp opens embed pages for the
// browser backend, the system default handler when empty.
func New(name string, mpvArgs []string, browserApp string) (Backend, error) {
	switch name {
	case BackendMPV, "":
		return NewMPV(mpvArgs...), nil
	case BackendBrowser:
		return &Browser{app: browserApp}, nil
	default:
		return nil, fmt.Errorf("unknown player backend %q, expected %s or %s", name, BackendMPV, BackendBrowser)
	}
}

// Apply forwards a key action to b. ActionClose stops playback.
func Apply(b Backend, action Action) error {
	switch action {
	case ActionClose:
		return b.Close()
	case ActionTogglePause:
		return b.TogglePause()
	case ActionToggleMute:
		return b.ToggleMute()
	case ActionExitFullscreen, ActionToggleFullscreen:
		return b.ToggleFullscreen()
	default:
		return nil
	}
}

// Browser opens the embed page in the system browser. The page has its own
// controls, so toggles only change the overlay state.
type Browser struct {
	app    string
	opener func(string) error
}

func (b *Browser) Play(videoKey, _ string) error {
	opener := b.opener
	if opener == nil {
		opener = func(u string) error { return open.StartWith(u, b.app) }
	}
	return opener(youtube.EmbedURL(videoKey, true))
}

func (*Browser) TogglePause() error      { return nil }
func (*Browser) ToggleMute() error       { return nil }
func (*Browser) ToggleFullscreen() error { return nil }
func (*Browser) Close() error            { return nil }
