// Package ui provides the Bubble Tea terminal interface for musaed.
//
// # Layout
//
// The screen is a single column:
//
//   - Header: name, backend health pill, last probe time, pending spinner
//   - Query box: free text in Arabic, submitted with enter
//   - Banner: guidance or error text from the last submit
//   - Favorites grid: the fixed catalog, narrowed to the active suggestions
//   - Suggested grid: the services returned for the last admitted query
//   - Log pane (L): tail of the musaed log file
//   - Footer: key hints, or a short notice after copy or navigation
//
// Selecting a card and pressing enter opens the detail modal. Confirming the
// modal emits a navigation whose fragment is shown in the footer and can be
// copied with c.
//
// # Event flow
//
// The model never calls the backend itself. Submits run through the session
// dispatcher inside a tea.Cmd and come back as an outcome message, which is
// folded into the board on the event loop. Only one submit is in flight at a
// time. Health is read from the shared store on every tick.
//
// # Themes
//
// Themes are cycled with T and persisted in the prefs file along with the
// compact card setting.
package ui
