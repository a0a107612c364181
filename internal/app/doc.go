// Package app is the composition root for musaed.
//
// # Overview
//
// Run wires configuration, logging, the backend client, the shared store, the
// search session and the UI, then blocks until the user quits or the context
// is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()           config.toml + MUSAED_* env
//	       ├─────> tea.LogToFile()         log output leaves the terminal
//	       ├─────> prefs.Load()            theme, compact cards
//	       ├─────> gie.NewClient()         backend HTTP client
//	       ├─────> session.New()           admission + backend + store
//	       ├─────> StartHealthMonitor()    background liveness probe
//	       └─────> ui.Run()                TUI (blocks)
//
// # Health monitor
//
// StartHealthMonitor probes GET /api/health once at start and then every
// health interval (default 3 seconds). Each probe is bounded by the interval.
// Results land in state.Store; the UI reads them on its own tick. A failing
// backend is logged and shown as down in the header pill, and probing simply
// continues. There is no backoff.
//
// # Errors
//
// Run returns an error only for startup problems: an unreadable or invalid
// config file, an unusable log directory, or a malformed backend address. The
// backend being unreachable at startup is not fatal; the header pill reports
// it.
package app
