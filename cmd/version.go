package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/cinerow/cinerow/auth"
	"github.com/cinerow/cinerow/color"
	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/style"
	"github.com/cinerow/cinerow/version"
	"github.com/cinerow/cinerow/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "print only the version")
}

var versionTemplate = template.Must(template.New("version").Funcs(map[string]any{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.Purple),
	"source": func(s credentialSource) string {
		if s == sourceNone {
			return style.Fg(color.Orange)("unset (mock catalog)")
		}
		return style.Fg(color.Green)(string(s))
	},
}).Parse(`{{ accent .App }} {{ bold .Version }}

  {{ faint "Revision" }}   {{ .Revision }}
  {{ faint "Built" }}      {{ .BuiltAt }} by {{ .BuiltBy }}
  {{ faint "Platform" }}   {{ .OS }}/{{ .Arch }}
  {{ faint "Config" }}     {{ .Config }}
  {{ faint "TMDb key" }}   {{ source .TMDB }}
  {{ faint "YouTube key" }} {{ source .YouTube }}
`))

type versionInfo struct {
	App, Version, Revision string
	BuiltAt, BuiltBy       string
	OS, Arch               string
	Config                 string
	TMDB, YouTube          credentialSource
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and where credentials come from",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		_, tmdbSource := credential(auth.TMDB)
		_, youtubeSource := credential(auth.YouTube)

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), versionInfo{
			App:      constant.App,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			Config:   where.Config(),
			TMDB:     tmdbSource,
			YouTube:  youtubeSource,
		}))
	},
}
