// Package icon renders the symbols used by the TUI and CLI output.
package icon

import (
	"github.com/cinerow/cinerow/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var variants = []string{"emoji", "nerd", "plain", "kaomoji", "squares"}

// AvailableVariants lists the values accepted by --icons.
func AvailableVariants() []string {
	return lo.Clone(variants)
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) render(variant string) string {
	switch variant {
	case "emoji":
		return d.emoji
	case "nerd":
		return d.nerd
	case "kaomoji":
		return d.kaomoji
	case "squares":
		return d.squares
	default:
		return d.plain
	}
}

// Get renders i in the configured variant. Unknown variants and unknown
// icons fall back to plain text and the empty string respectively.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.render(viper.GetString(key.IconsVariant))
}
