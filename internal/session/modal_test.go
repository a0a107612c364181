package session

import (
	"context"
	"testing"

	"github.com/five82/musaed/internal/gie"
	"github.com/five82/musaed/internal/state"
)

func TestDetailModal_OpenConfirm(t *testing.T) {
	var m DetailModal
	if m.IsOpen() {
		t.Fatalf("modal should start closed")
	}

	m.Open(serviceFor("passport-renewal"))
	if !m.IsOpen() || m.PendingTarget() != "passport-renewal" {
		t.Fatalf("after Open: open=%v target=%q", m.IsOpen(), m.PendingTarget())
	}

	nav, ok := m.Confirm()
	if !ok {
		t.Fatalf("Confirm returned no navigation")
	}
	if nav.Target != "passport-renewal" || nav.Fragment() != "#service=passport-renewal" {
		t.Fatalf("navigation = %#v (%s)", nav, nav.Fragment())
	}
	if m.IsOpen() {
		t.Fatalf("Confirm should close the modal")
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("Selected should be empty once closed")
	}
}

func TestDetailModal_MissingTargetDefaultsToUnknown(t *testing.T) {
	var m DetailModal
	m.Open(gie.Service{ID: "bare", Title: "خدمة"})
	if m.PendingTarget() != UnknownTarget {
		t.Fatalf("PendingTarget = %q, want %q", m.PendingTarget(), UnknownTarget)
	}
	nav, ok := m.Confirm()
	if !ok || nav.Target != UnknownTarget {
		t.Fatalf("Confirm = %#v %v, want unknown target", nav, ok)
	}
}

func TestDetailModal_CancelEmitsNothing(t *testing.T) {
	var m DetailModal
	m.Open(serviceFor("payments"))
	m.Cancel()
	if m.IsOpen() {
		t.Fatalf("Cancel should close the modal")
	}
	if _, ok := m.Confirm(); ok {
		t.Fatalf("Confirm after Cancel should not navigate")
	}
}

func TestDetailModal_ReopenReplaces(t *testing.T) {
	var m DetailModal
	m.Open(serviceFor("payments"))
	m.Open(serviceFor("delegation"))

	svc, ok := m.Selected()
	if !ok || svc.ID != "delegation" {
		t.Fatalf("Selected = %#v, want delegation", svc)
	}
	nav, _ := m.Confirm()
	if nav.Target != "delegation" {
		t.Fatalf("Confirm target = %q, want delegation", nav.Target)
	}
	if _, ok := m.Confirm(); ok {
		t.Fatalf("second Confirm should not navigate; opens do not stack")
	}
}

func TestEncodeComponent(t *testing.T) {
	tests := map[string]string{
		"passport-renewal": "passport-renewal",
		"a b":              "a%20b",
		"a+b/c?d":          "a%2Bb%2Fc%3Fd",
		"تجديد":            "%D8%AA%D8%AC%D8%AF%D9%8A%D8%AF",
		"a(b)!*'~":         "a(b)!*'~",
		"100%21":           "100%2521",
		"x y(z)":           "x%20y(z)",
	}
	for in, want := range tests {
		if got := EncodeComponent(in); got != want {
			t.Errorf("EncodeComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDispatcher_RoutesIntents(t *testing.T) {
	backend := backendFunc(func(ctx context.Context, text string) (gie.ExtractResponse, error) {
		return gie.ExtractResponse{Services: []gie.Service{serviceFor("visa")}}, nil
	})
	d := NewDispatcher(New(nil, backend, &state.Store{}))
	ctx := context.Background()

	res := d.Dispatch(ctx, Submit{Text: "ابي تأشيرة"})
	if res.Outcome == nil || res.Outcome.Kind != OutcomeSuggested {
		t.Fatalf("Submit result = %#v, want suggested outcome", res)
	}

	if res := d.Dispatch(ctx, ConfirmNavigation{}); res.Navigation != nil {
		t.Fatalf("confirm on closed modal navigated to %q", res.Navigation.Target)
	}

	d.Dispatch(ctx, OpenDetail{Service: res.Outcome.Services[0]})
	if !d.Modal().IsOpen() {
		t.Fatalf("OpenDetail should open the modal")
	}
	d.Dispatch(ctx, CancelModal{})
	if d.Modal().IsOpen() {
		t.Fatalf("CancelModal should close the modal")
	}

	d.Dispatch(ctx, OpenDetail{Service: serviceFor("travel permit")})
	res = d.Dispatch(ctx, ConfirmNavigation{})
	if res.Navigation == nil || res.Navigation.Fragment() != "#service=travel%20permit" {
		t.Fatalf("navigation = %#v, want encoded travel permit", res.Navigation)
	}
}
