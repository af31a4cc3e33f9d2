package icon

import (
	"testing"

	"github.com/cinerow/cinerow/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given the icon registry", t, func() {
		defer viper.Set(key.IconsVariant, "plain")

		Convey("Every icon should render in every variant", func() {
			for i := range icons {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Plain icons should be ASCII friendly", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Movie), ShouldEqual, "M")
			So(Get(Link), ShouldEqual, "->")
		})

		Convey("An unknown variant should fall back to plain", func() {
			viper.Set(key.IconsVariant, "sparkles")
			So(Get(Show), ShouldEqual, "T")
		})

		Convey("An unregistered icon should render empty", func() {
			So(Get(Icon(-1)), ShouldBeEmpty)
		})

		Convey("AvailableVariants should return a copy", func() {
			v := AvailableVariants()
			v[0] = "changed"
			So(AvailableVariants()[0], ShouldEqual, "emoji")
		})
	})
}
