package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recordingBackend struct {
	calls []string
}

func (r *recordingBackend) Play(key, _ string) error {
	r.calls = append(r.calls, "play "+key)
	return nil
}
func (r *recordingBackend) TogglePause() error { r.calls = append(r.calls, "pause"); return nil }
func (r *recordingBackend) ToggleMute() error  { r.calls = append(r.calls, "mute"); return nil }
func (r *recordingBackend) ToggleFullscreen() error {
	r.calls = append(r.calls, "fullscreen")
	return nil
}
func (r *recordingBackend) Close() error { r.calls = append(r.calls, "close"); return nil }

func TestApply(t *testing.T) {
	Convey("Apply should map every action to one backend call", t, func() {
		b := &recordingBackend{}
		for _, a := range []Action{ActionNone, ActionTogglePause, ActionToggleMute, ActionToggleFullscreen, ActionExitFullscreen, ActionClose} {
			So(Apply(b, a), ShouldBeNil)
		}
		So(b.calls, ShouldResemble, []string{"pause", "mute", "fullscreen", "fullscreen", "close"})
	})
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		b, err := New(BackendBrowser, nil, "firefox")
		So(err, ShouldBeNil)
		So(b, ShouldHaveSameTypeAs, &Browser{})
		So(b.(*Browser).app, ShouldEqual, "firefox")

		b, err = New("", []string{"--volume=50"}, "")
		So(err, ShouldBeNil)
		So(b.(*MPV).args, ShouldResemble, []string{"--volume=50"})

		_, err = New("vlc", nil, "")
		So(err, ShouldNotBeNil)
	})
}

func TestBrowser(t *testing.T) {
	Convey("Browser should open the autoplaying embed page", t, func() {
		var opened string
		b := &Browser{opener: func(u string) error { opened = u; return nil }}

		So(b.Play("abc", "Dune"), ShouldBeNil)
		So(opened, ShouldStartWith, "https://www.youtube.com/embed/abc?autoplay=1")
		So(b.TogglePause(), ShouldBeNil)
		So(b.Close(), ShouldBeNil)
	})
}
