package ui

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("It shows nothing by default", func() {
			So(m.View("body"), ShouldEqual, "body")
		})

		Convey("A string message becomes the notification", func() {
			cmd := m.Update(Notify("saved")())
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "saved")

			view := m.View("line one\nline two")
			So(strings.HasPrefix(view, "line one\nline two"), ShouldBeTrue)
			So(view, ShouldContainSubstring, "saved")

			Convey("A stale clear does not hide a newer notification", func() {
				m.Update("newer")
				m.Update(ClearNotificationMsg{generation: 1})
				So(m.Current(), ShouldEqual, "newer")

				m.Update(ClearNotificationMsg{generation: 2})
				So(m.Current(), ShouldBeEmpty)
			})
		})
	})
}
