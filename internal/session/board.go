package session

import (
	"github.com/five82/musaed/internal/favorites"
	"github.com/five82/musaed/internal/gie"
	"github.com/five82/musaed/internal/state"
)

// Board is what the two service grids and the error banner show.
type Board struct {
	Favorites []gie.Service
	Suggested []gie.Service
	Error     string
	// Intent is the backend's detected intent for the last suggestion, if any.
	Intent     string
	Confidence float64
	// Mode is how the backend matched the query, e.g. "intent" or "fallback".
	Mode       string
	TopIntents []gie.TopIntent
}

// NewBoard returns the initial board: every favorite and no suggestions.
func NewBoard(catalog []gie.Service) Board {
	return Board{Favorites: favorites.Correlate(catalog, state.NoFilter())}
}

// Apply returns the board after outcome. filter must be the store's filter as
// of the outcome.
func (b Board) Apply(o Outcome, catalog []gie.Service, filter state.Suggestions) Board {
	switch o.Kind {
	case OutcomeRejected:
		b.Error = o.Message
		if o.Reason == ReasonEmptyInput {
			return b
		}
		b.Suggested = nil
		b.Intent = ""
		b.Confidence = 0
		b.Mode = ""
		b.TopIntents = nil
		b.Favorites = favorites.Correlate(catalog, filter)
	case OutcomeRemoteError:
		b.Error = o.Message
	case OutcomeSuggested:
		b.Error = ""
		b.Suggested = append([]gie.Service(nil), o.Services...)
		b.Favorites = favorites.Correlate(catalog, filter)
		b.Intent = o.Response.DetectedIntent
		b.Confidence = o.Response.Confidence
		b.Mode = o.Response.Mode
		b.TopIntents = append([]gie.TopIntent(nil), o.Response.TopIntents...)
	}
	return b
}
