package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/cinerow/cinerow/color"
	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field describes one configuration key.
type Field struct {
	Key         string
	Value       any
	Description string
	// Choices restricts string values when set.
	Choices []string
	// Secret values are masked when printed.
	Secret bool
	// Duration marks string values that must parse with time.ParseDuration.
	Duration bool
}

func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the CINEROW_ prefixed variable bound to the key.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Current returns the effective value, masked for secrets.
func (f *Field) Current() any {
	v := viper.Get(f.Key)
	if s, ok := v.(string); ok && f.Secret && s != "" {
		return "********"
	}
	return v
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Choices     []string `json:"choices,omitempty"`
	}{
		Key:         f.Key,
		Value:       f.Current(),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
		Choices:     f.Choices,
	})
}

func (f *Field) Type() string {
	switch f.Value.(type) {
	case string:
		if f.Duration {
			return "duration"
		}
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

// Parse converts command line arguments to the type of the default value
// and checks choices and durations.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: value is required", f.Key)
	}

	switch f.Value.(type) {
	case string:
		if len(f.Choices) > 0 && !lo.Contains(f.Choices, raw[0]) {
			return nil, fmt.Errorf("invalid value %q for %s, expected one of %s", raw[0], f.Key, strings.Join(f.Choices, ", "))
		}
		if f.Duration {
			if _, err := time.ParseDuration(raw[0]); err != nil {
				return nil, fmt.Errorf("invalid duration for %s: %s", f.Key, raw[0])
			}
		}
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer for %s: %s", f.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean for %s: %s", f.Key, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", f.Key, f.Type())
	}
}

// Default is the registry of every configuration key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

type option func(*Field)

func choices(values ...string) option { return func(f *Field) { f.Choices = values } }

func secret(f *Field) { f.Secret = true }

func duration(f *Field) { f.Duration = true }

func register(k string, v any, desc string, opts ...option) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	f := Field{Key: k, Value: v, Description: desc}
	for _, opt := range opts {
		opt(&f)
	}
	Default[k] = f
	EnvExposed = append(EnvExposed, k)
}

func init() {
	// tmdb
	register(key.TMDBAPIKey, "", "TMDb API key.\nLeave empty to browse the built-in demo catalog", secret)
	register(key.TMDBTrendingWindow, "day", "Time window of the trending row", choices("day", "week"))
	register(key.TMDBRowLimit, 20, "Maximum number of items per catalog row")
	register(key.TMDBPosterSize, "w500", "TMDb image size used for posters",
		choices("w92", "w154", "w185", "w342", "w500", "w780", "original"))
	register(key.TMDBBackdropSize, "w1280", "TMDb image size used for backdrops",
		choices("w300", "w780", "w1280", "original"))

	// youtube
	register(key.YouTubeAPIKey, "", "YouTube Data API key.\nChannel rows and trailer search are disabled without it", secret)
	register(key.YouTubeRelayURL, "", "Base URL of a cinerow relay.\nWhen set, channel rows are fetched through it instead of YouTube directly")
	register(key.YouTubeChannels, []string{"Two Minute Papers", "Yannic Kilcher", "AI Explained", "sentdex", "3Blue1Brown"}, "Channels shown by the channels variant, in display order")
	register(key.YouTubeDemo, false, "Serve built-in demo videos instead of calling YouTube")

	register(key.SearchDebounceMs, 300, "Milliseconds of idle typing before a remote search is sent")
	register(key.SearchQuerySuggestions, true, "Suggest previous queries when searching")

	register(key.PlayerBackend, "mpv", "Playback backend", choices("mpv", "browser"))
	register(key.PlayerMpvArgs, []string{}, "Extra arguments passed to mpv")
	register(key.PlayerBrowser, "", "Application used by the browser backend.\nLeave empty to use the system default")

	register(key.RelayAddr, ":8080", "Address the relay listens on")
	register(key.RelayRateLimit, 5, "Relay requests per second allowed per client")
	register(key.RelayRateBurst, 10, "Relay request burst allowed per client")
	register(key.RelaySecret, "", "Shared secret for signed relay requests.\nThe relay rejects unsigned requests and the client signs them when set", secret)
	register(key.RelayCacheTTL, "10m", "How long the relay reuses a channel feed, 0s disables the cache", duration)
	register(key.RelayWarmEvery, "0s", "Refresh the configured channels on this interval, 0s disables warming", duration)
	register(key.RelayTrustProxy, false, "Take the client IP from X-Forwarded-For or X-Real-IP.\nOnly enable behind a reverse proxy that sets them")

	register(key.CacheResponses, true, "Cache TMDb responses on disk")
	register(key.CacheTTL, "6h", "How long cached responses stay fresh", duration)

	register(key.TUIVariant, "catalog", "Which rows to browse", choices("catalog", "channels"))
	register(key.TUIShowURLs, false, "Show the playable URL in the player overlay")
	register(key.TUICardWidth, 22, "Width of a single card in a row")

	register(key.IconsVariant, "plain", "Icons variant, nerd requires a nerd font",
		choices("emoji", "nerd", "plain", "kaomoji", "squares"))
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Log level, from least to most verbose",
		choices("panic", "fatal", "error", "warn", "info", "debug", "trace"))
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"join":   strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			return style.Fg(lo.Ternary(value, color.Green, color.Red))(strconv.FormatBool(value))
		case string:
			return style.Fg(color.Yellow)(strconv.Quote(value))
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl .Current }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ .Type }}{{ if .Choices }}
{{ blue "Choices:" }} {{ join .Choices ", " }}{{ end }}`))
