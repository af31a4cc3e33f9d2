package search

import (
	"strings"

	"github.com/cinerow/cinerow/catalog"
	"github.com/mozillazg/go-unidecode"
	"github.com/samber/lo"
)

// Filter keeps the items whose title or overview contains query, ignoring case and accents.
// Rows left empty are omitted. A blank query returns rows itself.
func Filter(rows []catalog.Row, query string) []catalog.Row {
	needle := Normalize(query)
	if needle == "" {
		return rows
	}

	filtered := make([]catalog.Row, 0, len(rows))
	for _, row := range rows {
		items := lo.Filter(row.Items, func(item catalog.Item, _ int) bool {
			return Matches(item, needle)
		})
		if len(items) == 0 {
			continue
		}
		filtered = append(filtered, catalog.Row{Title: row.Title, Source: row.Source, Items: items})
	}

	return filtered
}

// Normalize folds s to trimmed lowercase ASCII, so "Amélie" matches "amelie".
func Normalize(s string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(s)))
}

// Matches reports whether item contains needle, which must already be normalized.
func Matches(item catalog.Item, needle string) bool {
	for _, field := range []string{item.Title, item.Name, item.Overview} {
		if strings.Contains(Normalize(field), needle) {
			return true
		}
	}
	return false
}
