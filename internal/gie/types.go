package gie

import (
	"bytes"
	"encoding/json"
)

// ActionNavigate is the only action type the backend emits today.
const ActionNavigate = "navigate"

// Action describes what selecting a service does.
type Action struct {
	Type   string `json:"type"`
	Target string `json:"target"`
}

// Service is a government service card.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      Action `json:"action"`
}

// TopIntent is one ranked intent from the extraction engine.
type TopIntent struct {
	ID         string  `json:"id"`
	Label      string  `json:"label_ar"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason_ar"`
}

// ExtractResponse mirrors the payload returned by POST /api/gie.
// Fields other than Services and Message are informational.
type ExtractResponse struct {
	Services       []Service   `json:"-"`
	Message        string      `json:"message"`
	Mode           string      `json:"mode"`
	DetectedIntent string      `json:"detected_intent"`
	Confidence     float64     `json:"confidence"`
	TopIntents     []TopIntent `json:"top_intents"`
}

// Targets returns the set of non-empty navigation targets in services.
func Targets(services []Service) map[string]struct{} {
	set := make(map[string]struct{}, len(services))
	for _, s := range services {
		if s.Action.Target != "" {
			set[s.Action.Target] = struct{}{}
		}
	}
	return set
}

// decodeExtract parses an /api/gie body leniently. A body that is not a JSON
// object decodes as empty, a services field that is not an array yields no
// services, and individual entries that do not decode are skipped.
// Null entries are skipped too.
func decodeExtract(body []byte) ExtractResponse {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return ExtractResponse{}
	}

	var out ExtractResponse
	decodeField(raw, "message", &out.Message)
	decodeField(raw, "mode", &out.Mode)
	decodeField(raw, "detected_intent", &out.DetectedIntent)
	decodeField(raw, "confidence", &out.Confidence)
	decodeField(raw, "top_intents", &out.TopIntents)

	var entries []json.RawMessage
	if !decodeField(raw, "services", &entries) {
		return out
	}
	out.Services = make([]Service, 0, len(entries))
	for _, entry := range entries {
		if bytes.Equal(bytes.TrimSpace(entry), []byte("null")) {
			continue
		}
		// Strings, numbers and other non-objects fail here and are dropped
		// with the rest of the malformed entries.
		var svc Service
		if err := json.Unmarshal(entry, &svc); err != nil {
			continue
		}
		out.Services = append(out.Services, svc)
	}
	return out
}

func decodeField(raw map[string]json.RawMessage, key string, dest any) bool {
	value, ok := raw[key]
	if !ok {
		return false
	}
	return json.Unmarshal(value, dest) == nil
}
