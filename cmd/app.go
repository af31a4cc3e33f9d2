package cmd

import (
	"os"
	"time"

	"github.com/cinerow/cinerow/aggregate"
	"github.com/cinerow/cinerow/auth"
	"github.com/cinerow/cinerow/config"
	"github.com/cinerow/cinerow/internal/cache"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/network"
	"github.com/cinerow/cinerow/relay"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/cinerow/cinerow/where"
	"github.com/cinerow/cinerow/youtube"
	"github.com/spf13/viper"
)

// credentialSource names where an API key was found.
type credentialSource string

const (
	sourceConfig  credentialSource = "config"
	sourceEnv     credentialSource = "env"
	sourceKeyring credentialSource = "keyring"
	sourceNone    credentialSource = "unset"
)

// credentialKeys maps a keyring service to its configuration key.
var credentialKeys = map[string]string{
	auth.TMDB:    key.TMDBAPIKey,
	auth.YouTube: key.YouTubeAPIKey,
}

// credential resolves the API key of service.
// Configuration and environment win over the system keyring.
func credential(service string) (string, credentialSource) {
	k := credentialKeys[service]

	if value := viper.GetString(k); value != "" {
		field := config.Default[k]
		for _, env := range []string{field.Env(), config.CredentialEnvFallbacks[k]} {
			if os.Getenv(env) != "" {
				return value, sourceEnv
			}
		}
		return value, sourceConfig
	}

	if value := auth.Lookup(service); value != "" {
		return value, sourceKeyring
	}

	return "", sourceNone
}

// app holds the clients shared by the interactive and inline commands.
type app struct {
	tmdb    *tmdb.Client
	youtube *youtube.Client
	service *aggregate.Service

	// channels is the channel source, a relay when one is configured.
	channels aggregate.ChannelSource
}

func newApp() *app {
	tmdbKey, _ := credential(auth.TMDB)

	var tmdbOptions []tmdb.Option
	if viper.GetBool(key.CacheResponses) {
		tmdbOptions = append(tmdbOptions, tmdb.WithCache(cache.New(where.Responses(), cacheTTL())))
	}

	a := &app{tmdb: tmdb.New(tmdbKey, tmdbOptions...)}
	if a.tmdb.Mock() {
		log.Info("tmdb: no api key, serving the demo catalog")
	}

	a.youtube = newYouTube()
	a.channels = a.youtube
	if relayURL := viper.GetString(key.YouTubeRelayURL); relayURL != "" {
		a.channels = youtube.NewRelay(relayURL, network.Client).WithSecret(viper.GetString(key.RelaySecret))
	}

	options := []aggregate.Option{
		aggregate.WithCatalog(a.tmdb),
		aggregate.WithChannels(a.channels),
		aggregate.WithTrendingWindow(viper.GetString(key.TMDBTrendingWindow)),
		aggregate.WithRowLimit(viper.GetInt(key.TMDBRowLimit)),
	}
	if a.youtube.Configured() {
		options = append(options, aggregate.WithTrailerSearch(a.youtube))
	}

	a.service = aggregate.New(options...)

	return a
}

func newYouTube() *youtube.Client {
	youtubeKey, _ := credential(auth.YouTube)
	return youtube.New(youtubeKey,
		youtube.WithChannelCache(youtube.NewChannelCache(where.Channels())),
		youtube.WithDemo(viper.GetBool(key.YouTubeDemo)),
	)
}

// channelsConfigured reports whether channel rows can load.
func (a *app) channelsConfigured() bool {
	if _, ok := a.channels.(*youtube.RelayClient); ok {
		return true
	}
	return a.youtube.Configured()
}

func cacheTTL() time.Duration {
	ttl, err := time.ParseDuration(viper.GetString(key.CacheTTL))
	if err != nil || ttl <= 0 {
		log.Warnf("cache: invalid ttl %q, using 6h", viper.GetString(key.CacheTTL))
		return 6 * time.Hour
	}
	return ttl
}

// relayOptions reads the relay limiter settings.
func relayOptions() relay.Options {
	return relay.Options{
		RateLimit:  viper.GetFloat64(key.RelayRateLimit),
		RateBurst:  viper.GetInt(key.RelayRateBurst),
		Secret:     viper.GetString(key.RelaySecret),
		TrustProxy: viper.GetBool(key.RelayTrustProxy),
	}
}

// CollectGarbage drops expired responses from the disk cache.
func CollectGarbage() {
	if !viper.GetBool(key.CacheResponses) {
		return
	}

	if pruned := cache.New(where.Responses(), cacheTTL()).Prune(); pruned > 0 {
		log.Debugf("cache: pruned %d expired responses", pruned)
	}
}
