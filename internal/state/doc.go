// Package state holds the session state shared between the UI, the search
// session and the health monitor.
//
// # Overview
//
// The Store carries three things:
//
//   - Suggestions: the target filter from the latest applied backend reply
//   - Generation: the number of the most recent submit
//   - Health: the last known backend liveness
//
// The data flow:
//
//	Health monitor:              Session (tea.Cmd):            UI:
//	┌────────────────┐          ┌──────────────────────┐      ┌─────────────────┐
//	│ UpdateHealth() │─┐        │ NextGeneration()     │      │ Snapshot()      │
//	└────────────────┘ │        │ ReplaceSuggestions   │      │ Suggestions()   │
//	                   └──────→ │   IfCurrent(gen, ..) │ ───→ │ render          │
//	                   (mutex)  └──────────────────────┘      └─────────────────┘
//
// # Suggestions
//
// Suggestions is either "no filter" (the zero value, every favorite shows) or
// an active set of targets, which may be empty. It is replaced wholesale on
// every applied reply and reset on a local rejection; it is never merged.
//
// # Generations
//
// Every submit takes a generation from NextGeneration. A reply may only
// replace the suggestions while its generation is still the latest, so a slow
// reply to an older query can never overwrite the answer to a newer one.
//
// # Concurrency
//
// All access goes through a sync.RWMutex. Snapshot and Suggestions return
// copies, so callers may hold them without locking.
package state
