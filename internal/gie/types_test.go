package gie

import (
	"testing"
)

func TestDecodeExtract_Lenient(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantServices int
		wantMessage  string
	}{
		{"empty body", "", 0, ""},
		{"not json", "<html>", 0, ""},
		{"json array", "[1,2]", 0, ""},
		{"services missing", `{"message":"ok"}`, 0, "ok"},
		{"services not array", `{"services":"nope"}`, 0, ""},
		{"services null", `{"services":null}`, 0, ""},
		{"skips bad entries", `{"services":[null, 7, {"id":"a","action":{"type":"navigate","target":"t"}}]}`, 1, ""},
		{"skips non-object entries", `{"services":["x", 3.5, true, [], {"id":"b"}]}`, 1, ""},
		{"only non-object entries", `{"services":["x", 1]}`, 0, ""},
		{"message wrong type", `{"message":42}`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeExtract([]byte(tt.body))
			if len(got.Services) != tt.wantServices {
				t.Fatalf("services = %#v, want %d", got.Services, tt.wantServices)
			}
			if got.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestTargets_SkipsEmpty(t *testing.T) {
	services := []Service{
		{ID: "a", Action: Action{Type: ActionNavigate, Target: "payments"}},
		{ID: "b"},
		{ID: "c", Action: Action{Type: ActionNavigate, Target: "payments"}},
		{ID: "d", Action: Action{Type: ActionNavigate, Target: "visa"}},
	}
	got := Targets(services)
	if len(got) != 2 {
		t.Fatalf("Targets = %v, want 2 entries", got)
	}
	for _, want := range []string{"payments", "visa"} {
		if _, ok := got[want]; !ok {
			t.Fatalf("Targets missing %q", want)
		}
	}
}

func TestTargets_EmptyInputIsEmptySet(t *testing.T) {
	got := Targets(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("Targets(nil) = %#v, want empty non-nil set", got)
	}
}
