package cmd

import (
	"errors"
	"testing"

	"github.com/cinerow/cinerow/auth"
	"github.com/cinerow/cinerow/filesystem"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/tui"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestParseValue(t *testing.T) {
	Convey("Given typed configuration keys", t, func() {
		Convey("Integers should be parsed", func() {
			v, err := parseValue(key.TMDBRowLimit, []string{"12"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 12)

			_, err = parseValue(key.TMDBRowLimit, []string{"twelve"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans should be parsed", func() {
			v, err := parseValue(key.YouTubeDemo, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("Lists should keep every argument", func() {
			v, err := parseValue(key.YouTubeChannels, []string{"Veritasium", "Kurzgesagt"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"Veritasium", "Kurzgesagt"})
		})

		Convey("Enumerated strings should be validated", func() {
			_, err := parseValue(key.PlayerBackend, []string{"vlc"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "mpv, browser")

			v, err := parseValue(key.TUIVariant, []string{"channels"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "channels")
		})

		Convey("The cache ttl should be a duration", func() {
			_, err := parseValue(key.CacheTTL, []string{"soon"})
			So(err, ShouldNotBeNil)

			v, err := parseValue(key.CacheTTL, []string{"30m"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "30m")
		})

		Convey("Unknown keys and missing values should fail", func() {
			_, err := parseValue("tmdb.row_limt", []string{"1"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.TMDBRowLimit)

			_, err = parseValue(key.TMDBRowLimit, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCurrentVariant(t *testing.T) {
	Convey("Given the variant setting", t, func() {
		Reset(func() { viper.Set(key.TUIVariant, "") })

		Convey("Empty should mean the catalog", func() {
			viper.Set(key.TUIVariant, "")
			v, err := currentVariant()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, tui.VariantCatalog)
		})

		Convey("Unknown variants should fail", func() {
			viper.Set(key.TUIVariant, "podcasts")
			_, err := currentVariant()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCredential(t *testing.T) {
	Convey("Given a mock keyring", t, func() {
		keyring.MockInit()
		Reset(func() {
			viper.Set(key.TMDBAPIKey, "")
			viper.Set(key.YouTubeAPIKey, "")
		})

		Convey("Configured keys should win over the keyring", func() {
			So(auth.Set(auth.TMDB, "from-keyring"), ShouldBeNil)
			viper.Set(key.TMDBAPIKey, "from-config")

			value, source := credential(auth.TMDB)
			So(value, ShouldEqual, "from-config")
			So(source, ShouldEqual, sourceConfig)
		})

		Convey("The keyring should be the fallback", func() {
			So(auth.Set(auth.YouTube, "yt-key"), ShouldBeNil)

			value, source := credential(auth.YouTube)
			So(value, ShouldEqual, "yt-key")
			So(source, ShouldEqual, sourceKeyring)
		})

		Convey("Nothing anywhere should be unset", func() {
			So(auth.Delete(auth.YouTube), ShouldBeNil)
			value, source := credential(auth.YouTube)
			So(value, ShouldBeEmpty)
			So(source, ShouldEqual, sourceNone)
		})
	})
}

func TestEnvVariables(t *testing.T) {
	Convey("Given the environment listing", t, func() {
		envs := envVariables()

		Convey("It should include prefixed keys, path overrides and bare fallbacks", func() {
			So(envs, ShouldContain, "CINEROW_TMDB_API_KEY")
			So(envs, ShouldContain, "TMDB_API_KEY")
			So(envs, ShouldContain, "YOUTUBE_API_KEY")
			So(envs, ShouldContain, "CINEROW_CONFIG_PATH")
		})

		Convey("Secrets should be masked except the last four characters", func() {
			So(isSecretEnv("TMDB_API_KEY"), ShouldBeTrue)
			So(isSecretEnv("CINEROW_CONFIG_PATH"), ShouldBeFalse)
			So(maskSecret("abcdef123456"), ShouldEqual, "********3456")
			So(maskSecret("abc"), ShouldEqual, "***")
		})
	})
}

func TestMissingDependencies(t *testing.T) {
	Convey("Given a PATH with only mpv", t, func() {
		lookPath := func(name string) (string, error) {
			if name == "mpv" {
				return "/usr/bin/mpv", nil
			}
			return "", errors.New("not found")
		}

		Convey("Only yt-dlp should be reported, and it is optional", func() {
			missing := missingDependencies(mpvDependencies, lookPath)
			So(missing, ShouldHaveLength, 1)
			So(missing[0].binary, ShouldEqual, "yt-dlp")
			So(missing[0].required, ShouldBeFalse)
		})

		Convey("The box should suggest the install command and the browser backend", func() {
			box := missingDependencyBox(mpvDependencies[0], "darwin")
			So(box, ShouldContainSubstring, "brew install mpv")
			So(box, ShouldContainSubstring, "--player browser")
		})
	})
}
