// Package cmd implements the command-line interface for cinerow.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cinerow/cinerow/color"
	"github.com/cinerow/cinerow/constant"
	"github.com/cinerow/cinerow/icon"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/player"
	"github.com/cinerow/cinerow/style"
	"github.com/cinerow/cinerow/tui"
	"github.com/cinerow/cinerow/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var variants = []string{tui.VariantCatalog, tui.VariantChannels}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("variant", "", "Rows to browse: catalog or channels")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("variant", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return variants, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.TUIVariant, rootCmd.PersistentFlags().Lookup("variant")))

	rootCmd.PersistentFlags().StringSliceP("channel", "c", []string{}, "YouTube channels shown by the channels variant")
	lo.Must0(viper.BindPFlag(key.YouTubeChannels, rootCmd.PersistentFlags().Lookup("channel")))

	rootCmd.Flags().StringP("player", "p", "", "Playback backend: mpv or browser")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{player.BackendMPV, player.BackendBrowser}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.PlayerBackend, rootCmd.Flags().Lookup("player")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the cinerow application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse movie, show and YouTube rows in the terminal and play their trailers",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse movie, show and YouTube rows in the terminal and play their trailers"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		variant, err := currentVariant()
		handleErr(err)

		backendName := viper.GetString(key.PlayerBackend)
		if backendName == player.BackendMPV {
			CheckDependencies()
		}

		backend, err := player.New(backendName, viper.GetStringSlice(key.PlayerMpvArgs), viper.GetString(key.PlayerBrowser))
		handleErr(err)

		a := newApp()
		options := tui.Options{
			Variant:  variant,
			Channels: viper.GetStringSlice(key.YouTubeChannels),
			Service:  a.service,
			Backend:  backend,
		}

		switch variant {
		case tui.VariantCatalog:
			options.Search = a.tmdb.Search
			options.Details = a.tmdb.Details
			if a.tmdb.Mock() {
				options.Warning = "Demo catalog. Run `" + constant.App + " auth set tmdb` to browse TMDb"
			}
		case tui.VariantChannels:
			if !a.channelsConfigured() {
				options.Warning = "No YouTube API key. Run `" + constant.App + " auth set youtube`"
			}
		}

		handleErr(tui.Run(&options))
	},
}

func currentVariant() (string, error) {
	variant := viper.GetString(key.TUIVariant)
	if variant == "" {
		return tui.VariantCatalog, nil
	}
	if !lo.Contains(variants, variant) {
		return "", fmt.Errorf("unknown variant %q, expected one of %s", variant, strings.Join(variants, ", "))
	}
	return variant, nil
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
