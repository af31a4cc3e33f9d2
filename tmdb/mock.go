package tmdb

import (
	"fmt"
	"strconv"

	"github.com/cinerow/cinerow/catalog"
)

// mockTrailerKey is the YouTube key every mock video list points at.
const mockTrailerKey = "dQw4w9WgXcQ"

const (
	mockRowSize    = 20
	mockSearchSize = 10
)

// pageFixtures selects the list fixture for every list kind.
var pageFixtures = map[Kind]func(Query) Page{
	KindTrending:      fixedPage("Trending", mockRowSize),
	KindPopularMovies: fixedPage("Popular", mockRowSize),
	KindPopularTV:     fixedPage("Popular TV", mockRowSize),
	KindTopRated:      fixedPage("Top Rated", mockRowSize),
	KindMovieGenre:    genrePage,
	KindTVGenre:       genrePage,
	KindSearch:        fixedPage("Search Result", mockSearchSize),
}

// videoFixtures selects the video list fixture for the videos kinds.
var videoFixtures = map[Kind]func(Query) VideoPage{
	KindMovieVideos: trailerPage,
	KindTVVideos:    trailerPage,
}

// detailFixtures selects the details fixture for the details kinds.
var detailFixtures = map[Kind]func(Query) Details{
	KindMovieDetails: fixedDetails("Mock Movie Details", 128),
	KindTVDetails:    fixedDetails("Mock TV Details", 0),
}

func mockResult(id int, title string) Result {
	return Result{
		ID:           id,
		Title:        title,
		Name:         title,
		Overview:     "This is a mock movie used while no TMDb API key is configured.",
		PosterPath:   PosterPlaceholder,
		BackdropPath: BackdropPlaceholder,
		VoteAverage:  8.5,
		ReleaseDate:  "2024-01-01",
		GenreIDs:     []int{catalog.GenreAction, catalog.GenreComedy, catalog.GenreDrama, catalog.GenreHorror},
		MediaType:    string(catalog.Movie),
	}
}

func fixedPage(prefix string, count int) func(Query) Page {
	return func(Query) Page {
		results := make([]Result, count)
		for i := range results {
			results[i] = mockResult(i+1, fmt.Sprintf("%s Movie %d", prefix, i+1))
		}
		return Page{Page: 1, Results: results, TotalPages: 1, TotalResults: count}
	}
}

func genrePage(q Query) Page {
	prefix := "Discover"
	if names := catalog.Genres([]int{q.GenreID}); len(names) > 0 {
		prefix = names[0]
	}
	return fixedPage(prefix, mockRowSize)(q)
}

func trailerPage(q Query) VideoPage {
	id, _ := strconv.Atoi(q.ID)
	return VideoPage{
		ID: id,
		Results: []Video{{
			ID:          "1",
			Key:         mockTrailerKey,
			Name:        "Official Trailer",
			Site:        "YouTube",
			Type:        "Trailer",
			Official:    true,
			PublishedAt: "2024-01-01T00:00:00.000Z",
		}},
	}
}

func fixedDetails(title string, runtime int) func(Query) Details {
	return func(Query) Details {
		d := Details{
			Result:  mockResult(1, title),
			Tagline: "Nothing here is real.",
			Runtime: runtime,
			Genres: []Genre{
				{ID: catalog.GenreAction, Name: "Action"},
				{ID: catalog.GenreDrama, Name: "Drama"},
			},
			Status: "Released",
		}
		if runtime == 0 {
			d.EpisodeRunTime = []int{45}
		}
		return d
	}
}

func mockPage(q Query) Page {
	if fixture, ok := pageFixtures[q.Kind]; ok {
		return fixture(q)
	}
	return Page{Page: 1, Results: []Result{}, TotalPages: 1}
}

func mockVideos(q Query) VideoPage {
	if fixture, ok := videoFixtures[q.Kind]; ok {
		return fixture(q)
	}
	return VideoPage{Results: []Video{}}
}

func mockDetails(q Query) Details {
	if fixture, ok := detailFixtures[q.Kind]; ok {
		return fixture(q)
	}
	return Details{}
}
