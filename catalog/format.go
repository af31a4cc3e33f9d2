package catalog

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// UnknownTitle is shown when an item carries neither a title nor a name.
const UnknownTitle = "Unknown Title"

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Title returns the primary title, then the secondary one, then UnknownTitle.
func Title(item Item) string {
	switch {
	case item.Title != "":
		return item.Title
	case item.Name != "":
		return item.Name
	default:
		return UnknownTitle
	}
}

// ReleaseDate returns the release date of a movie or the first air date of a show.
func ReleaseDate(item Item) string {
	if item.ReleaseDate != "" {
		return item.ReleaseDate
	}
	return item.FirstAirDate
}

// FormatReleaseDate reduces an ISO date (or timestamp) to its year.
// Anything without a leading four digit year yields "".
func FormatReleaseDate(date string) string {
	if len(date) < 4 {
		return ""
	}

	year := date[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}

	if len(date) > 4 && date[4] != '-' {
		return ""
	}

	return year
}

// TruncateText cuts s to n runes followed by Ellipsis.
// Strings of at most n runes are returned unchanged, so truncating twice equals truncating once.
func TruncateText(s string, n int) string {
	if n < 0 {
		n = 0
	}

	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n]) + Ellipsis
}

// StarRating converts a 0 to 10 vote average into stars out of 5, rounded to halves.
func StarRating(vote float64) float64 {
	return math.Round(vote/10*5*2) / 2
}

// FormatRuntime renders minutes as "2h 5m", or "45m" under an hour. Zero yields "".
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}

	hours, mins := minutes/60, minutes%60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
