package session

import (
	"context"
	"log"

	"github.com/five82/musaed/internal/gie"
)

// Intent is a user action the dispatcher understands.
type Intent interface {
	intent()
}

// Submit asks for suggestions for Text.
type Submit struct{ Text string }

// OpenDetail opens the detail modal on Service.
type OpenDetail struct{ Service gie.Service }

// ConfirmNavigation confirms the open detail modal.
type ConfirmNavigation struct{}

// CancelModal dismisses the open detail modal.
type CancelModal struct{}

func (Submit) intent()            {}
func (OpenDetail) intent()        {}
func (ConfirmNavigation) intent() {}
func (CancelModal) intent()       {}

// Result is what handling one intent produced.
type Result struct {
	// Outcome is set for Submit.
	Outcome *Outcome
	// Navigation is set when a confirm emitted one.
	Navigation *Navigation
}

// Dispatcher routes intents to the search session and the detail modal.
// Submit may block on the network and is safe to run off the UI loop; the
// modal intents must all come from a single goroutine.
type Dispatcher struct {
	session *Session
	modal   *DetailModal
}

// NewDispatcher builds a Dispatcher with a closed modal.
func NewDispatcher(s *Session) *Dispatcher {
	return &Dispatcher{session: s, modal: &DetailModal{}}
}

// Session returns the underlying search session.
func (d *Dispatcher) Session() *Session {
	return d.session
}

// Modal returns the detail modal for rendering.
func (d *Dispatcher) Modal() *DetailModal {
	return d.modal
}

// Dispatch handles one intent.
func (d *Dispatcher) Dispatch(ctx context.Context, in Intent) Result {
	switch in := in.(type) {
	case Submit:
		out := d.session.Submit(ctx, in.Text)
		return Result{Outcome: &out}
	case OpenDetail:
		d.modal.Open(in.Service)
		return Result{}
	case ConfirmNavigation:
		nav, ok := d.modal.Confirm()
		if !ok {
			return Result{}
		}
		log.Printf("navigate to %s", nav.Fragment())
		return Result{Navigation: &nav}
	case CancelModal:
		d.modal.Cancel()
		return Result{}
	default:
		return Result{}
	}
}
