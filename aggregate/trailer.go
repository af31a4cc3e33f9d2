package aggregate

import (
	"context"

	"github.com/cinerow/cinerow/catalog"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/tmdb"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ResolveTrailer finds a YouTube key to play for item.
//
// Videos are their own key. Catalog items try their TMDb video list first,
// then a YouTube search by title. Lookup failures are logged and yield None.
func (s *Service) ResolveTrailer(ctx context.Context, item catalog.Item) mo.Option[string] {
	if item.Kind == catalog.Video {
		if item.ID == "" {
			return mo.None[string]()
		}
		return mo.Some(item.ID)
	}

	if s.catalog != nil {
		videos, err := s.catalog.Videos(ctx, item)
		if err != nil {
			log.Warnf("aggregate: videos of %q: %v", catalog.Title(item), err)
		}

		if trailer, ok := lo.Find(videos, isYouTubeTrailer); ok {
			return mo.Some(trailer.Key)
		}
	}

	if s.trailers == nil || ctx.Err() != nil {
		return mo.None[string]()
	}

	hits, err := s.trailers.SearchTrailers(ctx, catalog.Title(item), 1)
	if err != nil {
		log.Warnf("aggregate: trailer search for %q: %v", catalog.Title(item), err)
		return mo.None[string]()
	}

	for _, hit := range hits {
		if hit.ID.VideoID != "" {
			return mo.Some(hit.ID.VideoID)
		}
	}

	return mo.None[string]()
}

func isYouTubeTrailer(v tmdb.Video) bool {
	return v.Type == "Trailer" && v.Site == "YouTube" && v.Key != ""
}
