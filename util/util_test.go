package util

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cinerow/cinerow/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "response", "responses"), ShouldEqual, "1 response")
		So(Quantify(0, "response", "responses"), ShouldEqual, "0 responses")
		So(Quantify(3, "response", "responses"), ShouldEqual, "3 responses")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("queries history"), ShouldEqual, "Queries history")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("élan"), ShouldEqual, "Élan")
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore should call the function", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return errors.New("ignored")
		})
		So(called, ShouldBeTrue)
	})
}

func TestPrintErasable(t *testing.T) {
	Convey("The eraser should blank the printed width", t, func() {
		var buf bytes.Buffer
		erase := printErasable(&buf, "Clearing logs...")
		So(buf.String(), ShouldEqual, "\rClearing logs...")

		buf.Reset()
		erase()
		So(buf.String(), ShouldEqual, "\r                \r")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		api := filesystem.API()

		dir := filepath.Join("cinerow", "sockets")
		So(api.MkdirAll(dir, 0o755), ShouldBeNil)
		file := filepath.Join(dir, "mpv.sock")
		So(api.WriteFile(file, []byte("x"), 0o644), ShouldBeNil)

		Convey("A file should be removed alone", func() {
			So(Delete(file), ShouldBeNil)
			So(Delete(file), ShouldNotBeNil)
			exists, _ := api.DirExists(dir)
			So(exists, ShouldBeTrue)
		})

		Convey("A directory should be removed with its content", func() {
			So(Delete("cinerow"), ShouldBeNil)
			exists, _ := api.Exists(file)
			So(exists, ShouldBeFalse)
		})
	})
}
