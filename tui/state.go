package tui

type state int

const (
	loadingState state = iota
	errorState
	browseState
	searchState
)

func (s state) String() string {
	switch s {
	case loadingState:
		return "loading"
	case errorState:
		return "error"
	case browseState:
		return "browse"
	case searchState:
		return "search"
	default:
		return "unknown"
	}
}
