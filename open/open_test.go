package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	const embed = "https://www.youtube.com/embed/abc?autoplay=1&mute=1"

	Convey("Given an embed URL", t, func() {
		Convey("Linux should use xdg-open or the chosen app", func() {
			cmd, err := command("linux", embed, "")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", embed})

			cmd, err = command("linux", embed, "firefox")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"firefox", embed})
		})

		Convey("macOS should pass the app to open", func() {
			cmd, err := command("darwin", embed, "Safari")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "Safari", embed})
		})

		Convey("Windows start should escape ampersands", func() {
			cmd, err := command("windows", embed, "chrome")
			So(err, ShouldBeNil)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://www.youtube.com/embed/abc?autoplay=1^&mute=1")
		})

		Convey("Unknown platforms should fail", func() {
			_, err := command("plan9", embed, "")
			So(err, ShouldNotBeNil)
		})
	})
}
