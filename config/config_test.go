package config

import (
	"os"
	"testing"

	"github.com/cinerow/cinerow/filesystem"
	"github.com/cinerow/cinerow/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		filesystem.SetMemMapFs()

		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.SearchDebounceMs), ShouldEqual, 300)
			So(viper.GetStringSlice(key.YouTubeChannels), ShouldNotBeEmpty)
			So(viper.GetDuration(key.CacheTTL).Hours(), ShouldEqual, 6)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("tmdb.api_key")
			So(result, ShouldEqual, "tmdb_api_key")
		})

		Convey("Fields should expose a prefixed env name", func() {
			f := Default[key.TMDBAPIKey]
			So(f.Env(), ShouldEqual, "CINEROW_TMDB_API_KEY")
		})

		Convey("Credentials should fall back to the bare env name", func() {
			So(os.Setenv("YOUTUBE_API_KEY", "yt-from-env"), ShouldBeNil)
			defer os.Unsetenv("YOUTUBE_API_KEY")

			_ = Setup()
			So(viper.GetString(key.YouTubeAPIKey), ShouldEqual, "yt-from-env")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given registered fields", t, func() {
		filesystem.SetMemMapFs()
		So(Setup(), ShouldBeNil)

		Convey("Enumerated keys should carry their choices", func() {
			f := Default[key.PlayerBackend]
			So(f.Choices, ShouldResemble, []string{"mpv", "browser"})

			_, err := f.Parse([]string{"vlc"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "mpv, browser")
		})

		Convey("Duration keys should reject garbage", func() {
			f := Default[key.CacheTTL]
			So(f.Type(), ShouldEqual, "duration")

			_, err := f.Parse([]string{"soon"})
			So(err, ShouldNotBeNil)
			v, err := f.Parse([]string{"90m"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "90m")
		})

		Convey("Secrets should be masked once set", func() {
			f := Default[key.TMDBAPIKey]
			viper.Set(key.TMDBAPIKey, "")
			So(f.Current(), ShouldEqual, "")

			viper.Set(key.TMDBAPIKey, "0123456789abcdef")
			defer viper.Set(key.TMDBAPIKey, "")
			So(f.Current(), ShouldEqual, "********")
			So(f.Pretty(), ShouldNotContainSubstring, "0123456789abcdef")
		})

		Convey("Pretty should list the env name and choices", func() {
			f := Default[key.TMDBTrendingWindow]
			out := f.Pretty()
			So(out, ShouldContainSubstring, "CINEROW_TMDB_TRENDING_WINDOW")
			So(out, ShouldContainSubstring, "day, week")
		})
	})
}
