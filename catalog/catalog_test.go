package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenres(t *testing.T) {
	Convey("Genres", t, func() {
		Convey("Should map known ids in order", func() {
			So(Genres([]int{GenreAction, GenreComedy}), ShouldResemble, []string{"Action", "Comedy"})
		})

		Convey("Should return an empty slice for unknown ids", func() {
			got := Genres([]int{-1, 424242})
			So(got, ShouldNotBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("Should skip unknown ids among known ones", func() {
			So(Genres([]int{1, GenreHorror}), ShouldResemble, []string{"Horror"})
		})

		Convey("Should handle nil input", func() {
			So(Genres(nil), ShouldBeEmpty)
		})
	})
}

func TestTitle(t *testing.T) {
	Convey("Title", t, func() {
		cases := []struct {
			item Item
			want string
		}{
			{Item{Title: "Dune", Name: "Dune: Prophecy"}, "Dune"},
			{Item{Name: "Severance"}, "Severance"},
			{Item{Title: "Heat"}, "Heat"},
			{Item{}, UnknownTitle},
		}

		for _, c := range cases {
			So(Title(c.item), ShouldEqual, c.want)
		}
	})
}

func TestReleaseDate(t *testing.T) {
	Convey("ReleaseDate and FormatReleaseDate", t, func() {
		So(ReleaseDate(Item{ReleaseDate: "2021-10-22"}), ShouldEqual, "2021-10-22")
		So(ReleaseDate(Item{FirstAirDate: "2022-02-18"}), ShouldEqual, "2022-02-18")
		So(ReleaseDate(Item{}), ShouldEqual, "")

		So(FormatReleaseDate(""), ShouldEqual, "")
		So(FormatReleaseDate("2024-03-01"), ShouldEqual, "2024")
		So(FormatReleaseDate("2024-01-01T00:00:00Z"), ShouldEqual, "2024")
		So(FormatReleaseDate("soon"), ShouldEqual, "")
		So(FormatReleaseDate("20240301"), ShouldEqual, "")
	})
}

func TestTruncateText(t *testing.T) {
	Convey("TruncateText", t, func() {
		Convey("Should leave short strings unchanged", func() {
			So(TruncateText("Heat", 10), ShouldEqual, "Heat")
			So(TruncateText("exactly", 7), ShouldEqual, "exactly")
			So(TruncateText("", 3), ShouldEqual, "")
		})

		Convey("Should keep exactly n runes plus the ellipsis", func() {
			So(TruncateText("A long synopsis", 6), ShouldEqual, "A long...")
			So(TruncateText("ÉÉÉÉÉ", 2), ShouldEqual, "ÉÉ...")
		})

		Convey("Should be idempotent", func() {
			for _, s := range []string{"A long synopsis about sand", "short", "trailing space here "} {
				for _, n := range []int{0, 3, 7, 50} {
					once := TruncateText(s, n)
					So(TruncateText(once, n), ShouldEqual, once)
				}
			}
		})
	})
}

func TestStarRatingAndRuntime(t *testing.T) {
	Convey("StarRating", t, func() {
		So(StarRating(0), ShouldEqual, 0)
		So(StarRating(8.5), ShouldEqual, 4.5)
		So(StarRating(7.3), ShouldEqual, 3.5)
		So(StarRating(10), ShouldEqual, 5)
	})

	Convey("FormatRuntime", t, func() {
		So(FormatRuntime(0), ShouldEqual, "")
		So(FormatRuntime(45), ShouldEqual, "45m")
		So(FormatRuntime(125), ShouldEqual, "2h 5m")
		So(FormatRuntime(60), ShouldEqual, "1h 0m")
	})
}

func TestImage(t *testing.T) {
	Convey("Image should prefer the backdrop", t, func() {
		So(Item{PosterPath: "/p.jpg", BackdropPath: "/b.jpg"}.Image(), ShouldEqual, "/b.jpg")
		So(Item{PosterPath: "/p.jpg"}.Image(), ShouldEqual, "/p.jpg")
		So(Item{}.Image(), ShouldEqual, "")
	})
}
