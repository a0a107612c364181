// Package session runs the search workflow: admission, the backend call, the
// suggestion store, the favorites board and the service detail modal.
//
// Submit trims the query and then either rejects it locally (empty or
// unclear), or sends it to the backend and applies the reply. Each outcome
// carries the Arabic message the UI shows. Replies and errors that arrive
// after a newer submit has started come back as OutcomeStale and change
// nothing.
//
// Board folds outcomes into what the two grids and the banner display.
// DetailModal holds the one service whose details are open and turns a
// confirm into a Navigation. Dispatcher routes UI intents to both.
package session
