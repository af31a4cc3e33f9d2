// Package cmd implements the command-line interface for cinerow.
package cmd

import (
	"fmt"

	"github.com/cinerow/cinerow/filesystem"
	"github.com/cinerow/cinerow/icon"
	"github.com/cinerow/cinerow/internal/cache"
	"github.com/cinerow/cinerow/query"
	"github.com/cinerow/cinerow/util"
	"github.com/cinerow/cinerow/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	// clear returns an optional detail printed after the success line.
	clear func() (string, error)
}

func removeAll(location func() string) func() (string, error) {
	return func() (string, error) {
		return "", filesystem.API().RemoveAll(location())
	}
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), removeAll(where.Cache)},
	{"cached responses", "responses", mo.Some("r"), removeAll(where.Responses)},
	{"expired responses", "expired", mo.Some("e"), func() (string, error) {
		pruned := cache.New(where.Responses(), cacheTTL()).Prune()
		return util.Quantify(pruned, "response", "responses") + " removed", nil
	}},
	{"channel ids", "channels", mo.Some("C"), removeAll(where.Channels)},
	{"queries history", "queries", mo.Some("q"), func() (string, error) {
		return "", query.Forget()
	}},
	{"logs", "logs", mo.Some("l"), removeAll(where.Logs)},
	{"stale player sockets", "sockets", mo.None[string](), func() (string, error) {
		return "", util.Delete(where.Temp())
	}},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			detail, err := target.clear()
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			if detail != "" {
				fmt.Printf("  %s\n", detail)
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
