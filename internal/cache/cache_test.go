package cache

import (
	"testing"
	"time"

	"github.com/cinerow/cinerow/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStore(t *testing.T) {
	Convey("Given a response store on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		store := New("/cache/responses", time.Hour)

		Convey("Key should be stable and case-insensitive", func() {
			So(Key("/movie/popular", "page=1"), ShouldEqual, Key("/MOVIE/popular", "page=1"))
			So(Key("/movie/popular"), ShouldNotEqual, Key("/tv/popular"))
		})

		Convey("Written values should be readable", func() {
			type payload struct{ Name string }
			So(store.Write("k", payload{Name: "Dune"}), ShouldBeNil)

			var got payload
			So(store.Read("k", &got), ShouldBeTrue)
			So(got.Name, ShouldEqual, "Dune")
		})

		Convey("Missing keys should not be found", func() {
			var got map[string]any
			So(store.Read("missing", &got), ShouldBeFalse)
		})

		Convey("A disabled store should never hit", func() {
			disabled := New("/cache/off", 0)
			So(disabled.Write("k", 1), ShouldBeNil)

			var got int
			So(disabled.Read("k", &got), ShouldBeFalse)
		})

		Convey("Prune should drop expired entries", func() {
			So(store.Write("old", 1), ShouldBeNil)
			old := time.Now().Add(-2 * time.Hour)
			So(filesystem.API().Chtimes("/cache/responses/old", old, old), ShouldBeNil)

			So(store.Prune(), ShouldEqual, 1)
			var got int
			So(store.Read("old", &got), ShouldBeFalse)
		})
	})
}
