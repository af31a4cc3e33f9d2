// Package key defines the canonical set of configuration identifiers.
package key

// TMDb catalog source.
const (
	TMDBAPIKey         = "tmdb.api_key"
	TMDBTrendingWindow = "tmdb.trending_window"
	TMDBRowLimit       = "tmdb.row_limit"
	TMDBPosterSize     = "tmdb.poster_size"
	TMDBBackdropSize   = "tmdb.backdrop_size"
)

// YouTube video source.
const (
	YouTubeAPIKey   = "youtube.api_key"
	YouTubeRelayURL = "youtube.relay_url"
	YouTubeChannels = "youtube.channels"
	YouTubeDemo     = "youtube.demo"
)

// Search interaction.
const (
	SearchDebounceMs       = "search.debounce_ms"
	SearchQuerySuggestions = "search.query_suggestions"
)

// Player overlay.
const (
	PlayerBackend = "player.backend"
	PlayerMpvArgs = "player.mpv_args"
	PlayerBrowser = "player.browser"
)

// Relay endpoint.
const (
	RelayAddr       = "relay.addr"
	RelayRateLimit  = "relay.rate_limit"
	RelayRateBurst  = "relay.rate_burst"
	RelaySecret     = "relay.secret"
	RelayCacheTTL   = "relay.cache_ttl"
	RelayWarmEvery  = "relay.warm_every"
	RelayTrustProxy = "relay.trust_proxy"
)

// Response cache.
const (
	CacheResponses = "cache.responses"
	CacheTTL       = "cache.ttl"
)

// Terminal user interface.
const (
	TUIVariant   = "tui.variant"
	TUIShowURLs  = "tui.show_urls"
	TUICardWidth = "tui.card_width"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI behaviour outside the TUI.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
