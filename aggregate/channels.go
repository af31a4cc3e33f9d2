package aggregate

import (
	"context"

	"github.com/cinerow/cinerow/apierr"
	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
)

// LoadChannelFeed fetches every channel concurrently and returns one row per channel, in the given order.
// Channels that fail or have no videos are dropped without an error.
func (s *Service) LoadChannelFeed(ctx context.Context, channels []string) ([]catalog.Row, error) {
	if s.channels == nil {
		return nil, &apierr.ConfigError{Service: "YouTube"}
	}

	rows := make([]catalog.Row, len(channels))

	var wg conc.WaitGroup
	for i, name := range channels {
		wg.Go(func() {
			resp, err := s.channels.ChannelVideos(ctx, name)
			if err != nil {
				log.Warnf("aggregate: channel %q skipped: %v", name, err)
				return
			}
			rows[i] = catalog.Row{Title: name, Source: name, Items: resp.Videos()}
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return lo.Filter(rows, func(row catalog.Row, _ int) bool {
		return len(row.Items) > 0
	}), nil
}
