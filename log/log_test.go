package log

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cinerow/cinerow/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestConsole(t *testing.T) {
	Convey("Given console logging", t, func() {
		viper.Set(key.LogsLevel, "warn")
		viper.Set(key.LogsJson, false)
		defer viper.Set(key.LogsLevel, "info")

		var buf bytes.Buffer
		Console(&buf)
		defer func() { enabled = false }()

		Convey("Entries at or above the level should be written", func() {
			Warnf("genre rows unavailable: %s", "timeout")
			So(buf.String(), ShouldContainSubstring, "genre rows unavailable: timeout")
		})

		Convey("Entries below the level should be dropped", func() {
			Infof("loaded %d rows", 4)
			So(buf.String(), ShouldBeEmpty)
		})
	})

	Convey("Given logging is disabled", t, func() {
		enabled = false
		var buf bytes.Buffer
		configure(&buf)

		Error("nothing")
		So(buf.String(), ShouldBeEmpty)
	})
}

func TestRotator(t *testing.T) {
	Convey("Given a logs directory", t, func() {
		r := newRotator(filepath.Join("var", "logs"))

		Convey("The file should be named after the app and rotate", func() {
			So(r.Filename, ShouldEqual, filepath.Join("var", "logs", "cinerow.log"))
			So(r.MaxSize, ShouldEqual, maxSizeMB)
			So(r.MaxBackups, ShouldEqual, maxBackups)
			So(r.MaxAge, ShouldEqual, maxAgeDays)
		})
	})
}
