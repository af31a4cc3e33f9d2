package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Given the backend switches", t, func() {
		Convey("The default should be the OS filesystem", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("SetMemMapFs should start empty every time", func() {
			SetMemMapFs()
			So(API().WriteFile("queries.json", []byte("{}"), 0o644), ShouldBeNil)

			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
			exists, err := API().Exists("queries.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		var fs GacheFs

		Convey("Writes through GacheFs should land in API()", func() {
			dir := filepath.Join("cache", "cinerow")
			So(fs.MkdirAll(dir, 0o755), ShouldBeNil)

			f, err := fs.OpenFile(filepath.Join(dir, "channels.json"), os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = io.WriteString(f, `{"veritasium":"UCHnyfMqiRRG1u-2MsSQLbXA"}`)
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile(filepath.Join(dir, "channels.json"))
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "veritasium")
		})
	})
}
