package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cinerow/cinerow/filesystem"
	"github.com/cinerow/cinerow/inline"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/query"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Search query. The catalog searches TMDb, channels filter locally")
	inlineCmd.Flags().StringSliceP("rows", "r", []string{}, "Rows to print, by index, source or title")
	inlineCmd.Flags().IntP("limit", "l", 0, "Maximum number of items per row")
	inlineCmd.Flags().BoolP("trailers", "t", false, "Resolve a playable trailer for every item")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd prints rows without starting the TUI.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print rows or search results in non-interactive, scriptable inline mode",
	Long: `Load the same rows as the browser and print them as text or JSON.

Row selectors:
  [number] - select a row by index (starting from 0)
  [source] - select a row by source, e.g. popular-movies or horror
  [title]  - select a row by title, case insensitive`,
	Example: `  cinerow inline --rows trending --limit 5
  cinerow inline --query dune --trailers --json
  cinerow inline --variant channels --channel "3Blue1Brown"`,
	Run: func(cmd *cobra.Command, args []string) {
		variant, err := currentVariant()
		handleErr(err)

		q := lo.Must(cmd.Flags().GetString("query"))

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer f.Close()
			writer = f
		}

		a := newApp()
		options := &inline.Options{
			Out:      writer,
			Variant:  variant,
			Channels: viper.GetStringSlice(key.YouTubeChannels),
			Service:  a.service,
			Query:    q,
			Rows:     lo.Must(cmd.Flags().GetStringSlice("rows")),
			Limit:    lo.Must(cmd.Flags().GetInt("limit")),
			Trailers: lo.Must(cmd.Flags().GetBool("trailers")),
			Json:     lo.Must(cmd.Flags().GetBool("json")),

			PosterSize: viper.GetString(key.TMDBPosterSize),
		}

		if variant == inline.VariantCatalog {
			options.Search = a.tmdb.Search
		}

		handleErr(inline.Run(context.Background(), options))
		if err := query.Remember(q, 1); err != nil {
			log.Warnf("query: remember %q: %v", q, err)
		}
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "item", "entry", "row", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
