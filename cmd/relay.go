package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cinerow/cinerow/icon"
	"github.com/cinerow/cinerow/key"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/relay"
	"github.com/cinerow/cinerow/style"
	"github.com/cinerow/cinerow/youtube"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(relayCmd)

	relayCmd.Flags().StringP("addr", "a", "", "Address to listen on")
	lo.Must0(viper.BindPFlag(key.RelayAddr, relayCmd.Flags().Lookup("addr")))

	relayCmd.Flags().Float64("rate", 0, "Requests per second allowed per client, 0 disables the limit")
	lo.Must0(viper.BindPFlag(key.RelayRateLimit, relayCmd.Flags().Lookup("rate")))

	relayCmd.Flags().Bool("trust-proxy", false, "Take client IPs from forwarding headers set by a reverse proxy")
	lo.Must0(viper.BindPFlag(key.RelayTrustProxy, relayCmd.Flags().Lookup("trust-proxy")))

	relayCmd.Flags().Duration("warm", 0, "Refresh the configured channels on this interval")
	lo.Must0(viper.BindPFlag(key.RelayWarmEvery, relayCmd.Flags().Lookup("warm")))
}

// relayCmd serves channel videos over HTTP so clients need no YouTube key.
var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Serve YouTube channel videos over HTTP using the local API key",
	Long: `Start an HTTP relay exposing GET ` + youtube.RelayPath + `?channelName=NAME.

Clients point youtube.relay_url at it and browse channel rows without
holding a YouTube API key themselves.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Console(os.Stderr)

		client := newYouTube()
		if !client.Configured() {
			log.Warn("relay: no YouTube API key, every lookup will fail")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		feeds := relay.NewFeedCache(client, viper.GetDuration(key.RelayCacheTTL))
		if every := viper.GetDuration(key.RelayWarmEvery); every > 0 && client.Configured() {
			channels := viper.GetStringSlice(key.YouTubeChannels)
			stopWarm, err := relay.Warm(ctx, feeds, channels, every)
			handleErr(err)
			defer stopWarm()
			log.Infof("relay: warming %d channels every %s", len(channels), every)
		}

		opts := relayOptions()
		if opts.Secret == "" {
			log.Info("relay: no secret set, requests are not signed")
		}

		addr := viper.GetString(key.RelayAddr)
		cmd.Printf("%s Relay listening on %s\n", icon.Get(icon.Link), style.Bold(addr))

		handleErr(relay.Serve(ctx, addr, relay.NewHandler(feeds, opts)))
	},
}
