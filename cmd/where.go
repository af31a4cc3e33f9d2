package cmd

import (
	"fmt"
	"os"

	"github.com/cinerow/cinerow/color"
	"github.com/cinerow/cinerow/style"
	"github.com/cinerow/cinerow/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type location struct {
	flag, short string
	describe    string
	path        func() string
	// internal locations are only listed with --all
	internal bool
}

var locations = []location{
	{"config", "c", "config file and logs", where.Config, false},
	{"cache", "C", "cached responses and lookups", where.Cache, false},
	{"logs", "l", "log files", where.Logs, false},
	{"responses", "", "TMDb response cache", where.Responses, true},
	{"channels", "", "resolved channel ids", where.Channels, true},
	{"queries", "", "search query history", where.Queries, true},
	{"temp", "", "mpv IPC sockets", where.Temp, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, "print the "+l.describe+" path")
		if l.internal {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}
	whereCmd.Flags().BoolP("all", "a", false, "list internal locations too")

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where cinerow keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		all := lo.Must(cmd.Flags().GetBool("all"))
		listed := lo.Filter(locations, func(l location, _ int) bool {
			return all || !l.internal
		})

		width := lo.Max(lo.Map(listed, func(l location, _ int) int { return len(l.flag) }))
		name := style.New().Bold(true).Foreground(color.HiPurple).Render
		for _, l := range listed {
			cmd.Printf("%s  %s\n", name(fmt.Sprintf("%-*s", width, l.flag)), l.path())
		}
		cmd.Println(style.Faint("print a single path with --" + listed[0].flag + ", --" + listed[1].flag + ", ..."))
	},
}
