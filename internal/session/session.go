package session

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/five82/musaed/internal/admission"
	"github.com/five82/musaed/internal/gie"
	"github.com/five82/musaed/internal/state"
)

// User-facing messages.
const (
	MsgEmptyInput        = "الرجاء إدخال نص صحيح وواضح."
	MsgUnclearInput      = "الرجاء إدخال طلب واضح يتعلق بخدمات أبشر."
	MsgConnectionFailure = "صار خطأ أثناء الاتصال بالمحرك. تأكد أن الخادم شغال وأن العنوان صحيح."
)

// Outcome reasons for local and transport failures.
const (
	ReasonEmptyInput        = "empty input"
	ReasonUnclearInput      = "unclear input"
	ReasonConnectionFailure = "connection failure"
)

// OutcomeKind classifies the result of one submission.
type OutcomeKind int

const (
	// OutcomeRejected means the text never left the process.
	OutcomeRejected OutcomeKind = iota + 1
	// OutcomeRemoteError means the backend was unreachable or answered non-2xx.
	OutcomeRemoteError
	// OutcomeSuggested means the backend answered and the filter was replaced.
	OutcomeSuggested
	// OutcomeStale means a newer submission superseded this one before its
	// response arrived; the response was discarded.
	OutcomeStale
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRejected:
		return "rejected"
	case OutcomeRemoteError:
		return "remote error"
	case OutcomeSuggested:
		return "suggested"
	case OutcomeStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Outcome is the result of Session.Submit.
type Outcome struct {
	Kind       OutcomeKind
	Text       string
	Generation uint64

	// Reason is a short machine-oriented description of a failure.
	Reason string
	// Message is the text to show the user for failures.
	Message string

	Services []gie.Service
	Response gie.ExtractResponse
	Err      error
}

// Session runs the admission → extraction → suggestion pipeline.
type Session struct {
	filter  *admission.Filter
	backend gie.Backend
	store   *state.Store
}

// New builds a Session. A nil filter uses admission.Default.
func New(filter *admission.Filter, backend gie.Backend, store *state.Store) *Session {
	if filter == nil {
		filter = admission.Default()
	}
	return &Session{filter: filter, backend: backend, store: store}
}

// Store returns the store the session writes to.
func (s *Session) Store() *state.Store {
	return s.store
}

// Submit screens raw and, when admitted, asks the backend for matching
// services. Each call makes at most one backend request. Concurrent calls are
// ordered by generation: only the most recent submission may change the
// suggestion filter.
func (s *Session) Submit(ctx context.Context, raw string) Outcome {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Outcome{
			Kind:    OutcomeRejected,
			Reason:  ReasonEmptyInput,
			Message: MsgEmptyInput,
		}
	}

	gen := s.store.NextGeneration()

	if verdict := s.filter.Check(text); !verdict.OK() {
		log.Printf("query rejected locally: %s", verdict.Reason)
		if !s.store.ReplaceSuggestionsIfCurrent(gen, state.NoFilter()) {
			return Outcome{Kind: OutcomeStale, Text: text, Generation: gen}
		}
		return Outcome{
			Kind:       OutcomeRejected,
			Text:       text,
			Generation: gen,
			Reason:     ReasonUnclearInput,
			Message:    MsgUnclearInput,
		}
	}

	resp, err := s.backend.Extract(ctx, text)
	if err != nil {
		return s.remoteError(text, gen, err)
	}

	next := state.NewSuggestions(gie.Targets(resp.Services))
	if !s.store.ReplaceSuggestionsIfCurrent(gen, next) {
		log.Printf("discarding stale response for generation %d", gen)
		return Outcome{Kind: OutcomeStale, Text: text, Generation: gen}
	}
	return Outcome{
		Kind:       OutcomeSuggested,
		Text:       text,
		Generation: gen,
		Services:   resp.Services,
		Response:   resp,
	}
}

// remoteError maps a failed extraction to an outcome. The suggestion filter is
// left untouched so the previous results stay visible.
func (s *Session) remoteError(text string, gen uint64, err error) Outcome {
	out := Outcome{Kind: OutcomeRemoteError, Text: text, Generation: gen, Err: err}
	if !s.store.IsCurrent(gen) {
		out.Kind = OutcomeStale
		return out
	}

	var apiErr *gie.APIError
	if errors.As(err, &apiErr) {
		log.Printf("intent request failed: %v", err)
		out.Reason = apiErr.Display()
		out.Message = apiErr.Display()
		return out
	}

	log.Printf("intent request could not reach backend: %v", err)
	out.Reason = ReasonConnectionFailure
	out.Message = MsgConnectionFailure
	return out
}
