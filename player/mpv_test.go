package player

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeMPV answers IPC commands the way mpv does, optionally pushing an event line first.
type fakeMPV struct {
	listener net.Listener

	mu       sync.Mutex
	commands [][]any
	onQuit   func()
}

func startFakeMPV(t *testing.T) (*fakeMPV, string) {
	dir, err := os.MkdirTemp("", "mpv")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "mpv.sock")

	l, err := net.Listen("unix", path)
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}

	f := &fakeMPV{listener: l}
	go f.serve()

	t.Cleanup(func() {
		_ = l.Close()
		_ = os.RemoveAll(dir)
	})
	return f, path
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeMPV) handle(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var cmd ipcCommand
		if json.Unmarshal(scanner.Bytes(), &cmd) != nil {
			return
		}

		f.mu.Lock()
		f.commands = append(f.commands, cmd.Command)
		onQuit := f.onQuit
		f.mu.Unlock()

		if cmd.Command[0] == "quit" && onQuit != nil {
			onQuit()
		}

		_, _ = conn.Write([]byte(`{"event":"property-change","id":1,"name":"pause","data":true}` + "\n"))

		reply := `{"data":null,"error":"success"}`
		if len(cmd.Command) == 2 && cmd.Command[0] == "get_property" && cmd.Command[1] == "pid" {
			reply = `{"data":4242,"error":"success"}`
		}
		if cmd.Command[0] == "bogus" {
			reply = `{"error":"invalid parameter"}`
		}
		_, _ = conn.Write([]byte(reply + "\n"))
	}
}

func (f *fakeMPV) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, c := range f.commands {
		if name, ok := c[0].(string); ok {
			out = append(out, name)
		}
	}
	return out
}

func TestMPV(t *testing.T) {
	Convey("Given an mpv backend attached to a fake socket", t, func() {
		fake, path := startFakeMPV(t)

		m := NewMPV()
		m.socketPath = path
		m.exited = make(chan struct{})

		Convey("It should report running", func() {
			So(m.IsRunning(), ShouldBeTrue)
		})

		Convey("Toggles should cycle the matching property", func() {
			So(m.TogglePause(), ShouldBeNil)
			So(m.ToggleMute(), ShouldBeNil)
			So(m.ToggleFullscreen(), ShouldBeNil)

			fake.mu.Lock()
			var cycled []any
			for _, c := range fake.commands {
				if c[0] == "cycle" {
					cycled = append(cycled, c[1])
				}
			}
			fake.mu.Unlock()
			So(cycled, ShouldResemble, []any{"pause", "mute", "fullscreen"})
		})

		Convey("Replies should be read past pushed events", func() {
			data, err := m.sendCommand([]any{"get_property", "pid"})
			So(err, ShouldBeNil)
			So(data, ShouldEqual, float64(4242))
		})

		Convey("mpv errors should be returned", func() {
			_, err := m.sendCommand([]any{"bogus"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "invalid parameter")

			sent := 0
			for _, name := range fake.names() {
				if name == "bogus" {
					sent++
				}
			}
			So(sent, ShouldEqual, 1)
		})

		Convey("Play should load into the running instance", func() {
			So(m.Play("abc", "Dune\nTrailer"), ShouldBeNil)
			So(fake.names(), ShouldContain, "loadfile")

			fake.mu.Lock()
			var title any
			for _, c := range fake.commands {
				if c[0] == "set_property" && c[1] == "force-media-title" {
					title = c[2]
				}
			}
			fake.mu.Unlock()
			So(title, ShouldEqual, "Dune Trailer")
		})
	})

	Convey("Given an mpv backend closing while a toggle arrives", t, func() {
		fake, path := startFakeMPV(t)

		m := NewMPV()
		m.socketPath = path
		exited := make(chan struct{})
		m.exited = exited

		var once sync.Once
		fake.mu.Lock()
		fake.onQuit = func() { once.Do(func() { close(exited) }) }
		fake.mu.Unlock()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Close()
		}()
		go func() {
			defer wg.Done()
			_ = m.TogglePause()
		}()
		wg.Wait()

		Convey("Nothing is sent to mpv after quit", func() {
			names := fake.names()
			So(names, ShouldContain, "quit")

			quitAt := -1
			for i, name := range names {
				if name == "quit" {
					quitAt = i
				}
			}
			So(names[quitAt+1:], ShouldBeEmpty)
			So(m.IsRunning(), ShouldBeFalse)
		})
	})

	Convey("Given an idle mpv backend", t, func() {
		m := NewMPV()

		Convey("It should not be running and toggles should be no-ops", func() {
			So(m.IsRunning(), ShouldBeFalse)
			So(m.TogglePause(), ShouldBeNil)
			So(m.Close(), ShouldBeNil)
		})
	})
}

func TestParseEvent(t *testing.T) {
	Convey("parseEvent", t, func() {
		e, ok := parseEvent([]byte(`{"event":"property-change","id":2,"name":"mute","data":true}`))
		So(ok, ShouldBeTrue)
		So(e, ShouldResemble, Event{Property: PropertyMute, Value: true})

		_, ok = parseEvent([]byte(`{"event":"property-change","name":"time-pos","data":12.5}`))
		So(ok, ShouldBeFalse)

		_, ok = parseEvent([]byte(`{"event":"end-file"}`))
		So(ok, ShouldBeFalse)

		_, ok = parseEvent([]byte(`not json`))
		So(ok, ShouldBeFalse)
	})
}

func TestSanitize(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		_, err := sanitizeMediaTarget("--script=evil.lua")
		So(err, ShouldNotBeNil)

		_, err = sanitizeMediaTarget("file:///etc/passwd")
		So(err, ShouldNotBeNil)

		u, err := sanitizeMediaTarget(" https://www.youtube.com/watch?v=abc ")
		So(err, ShouldBeNil)
		So(u, ShouldEqual, "https://www.youtube.com/watch?v=abc")
	})
}
