// Package gie is the HTTP client for the intent engine backend.
//
// # Endpoints
//
//   - GET  /api/health: any 2xx means the backend is up
//   - POST /api/gie:    {"text": "..."} returns suggested services
//
// Example reply:
//
//	{
//	  "services": [
//	    {"id": "passport_renewal", "title": "تجديد الجواز",
//	     "description": "...", "action": {"type": "navigate", "target": "passport-renewal"}}
//	  ],
//	  "mode": "intent",
//	  "detected_intent": "passport_renewal",
//	  "confidence": 0.91,
//	  "top_intents": [
//	    {"id": "passport_renewal", "label_ar": "تجديد الجواز", "confidence": 0.91}
//	  ]
//	}
//
// # Leniency
//
// Replies are decoded leniently. A body that is not a JSON object is treated
// as {}. A services field that is missing or not an array yields no services,
// and entries that are null, not objects or otherwise undecodable are skipped. Only the non-empty
// action.target values feed the suggestion filter (see Targets).
//
// # Errors
//
// Client methods return a *TransportError when no HTTP response arrived
// (refused connection, DNS failure, timeout) and an *APIError for non-2xx
// statuses. APIError carries the reply's message field when present.
//
// Every request sends a fresh X-Request-ID so backend logs can be matched to
// the client's.
package gie
