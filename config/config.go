// Package config registers every setting with its default and binds viper to the config file and CINEROW_ variables.
package config

import (
	"errors"
	"strings"

	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/filesystem"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns "tmdb.api_key" into "tmdb_api_key".
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// CredentialEnvFallbacks are the unprefixed names other TMDb and YouTube
// tools use. They are consulted after the CINEROW_ variable.
var CredentialEnvFallbacks = map[string]string{
	key.TMDBAPIKey:    "TMDB_API_KEY",
	key.YouTubeAPIKey: "YOUTUBE_API_KEY",
}

// Setup loads cinerow.toml from the config directory on top of the
// registered defaults and environment. A missing file is not an error.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	bindEnv()

	viper.SetTypeByDefaultValue(true)
	for k, field := range Default {
		viper.SetDefault(k, field.Value)
	}

	err := viper.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	return err
}

func bindEnv() {
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)

	for _, k := range EnvExposed {
		if fallback, ok := CredentialEnvFallbacks[k]; ok {
			field := Default[k]
			viper.MustBindEnv(k, field.Env(), fallback)
			continue
		}
		viper.MustBindEnv(k)
	}
}
