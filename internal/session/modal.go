package session

import (
	"net/url"
	"strings"

	"github.com/five82/musaed/internal/gie"
)

// UnknownTarget is recorded when a service carries no navigation target.
const UnknownTarget = "unknown"

// Navigation is the intent emitted when a service detail is confirmed.
type Navigation struct {
	Target string
}

// Fragment returns the client-side navigation marker for the target, with the
// target encoded as a URI component.
func (n Navigation) Fragment() string {
	return "#service=" + EncodeComponent(n.Target)
}

// componentUnescaper rewrites query escaping into URI component escaping: '+'
// becomes %20 and the marks !*'() are left literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent escapes s as a URI component. Letters, digits and -_.!~*'()
// pass through; everything else is percent-encoded as UTF-8.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// DetailModal tracks the service whose details are on screen.
// It is either closed, or open on exactly one service.
type DetailModal struct {
	open    bool
	service gie.Service
	target  string
}

// Open shows service, replacing any service already open.
func (m *DetailModal) Open(service gie.Service) {
	m.open = true
	m.service = service
	m.target = service.Action.Target
	if m.target == "" {
		m.target = UnknownTarget
	}
}

// IsOpen reports whether a service is on screen.
func (m *DetailModal) IsOpen() bool {
	return m.open
}

// Selected returns the open service.
func (m *DetailModal) Selected() (gie.Service, bool) {
	if !m.open {
		return gie.Service{}, false
	}
	return m.service, true
}

// PendingTarget returns the target confirm would navigate to, or "" when closed.
func (m *DetailModal) PendingTarget() string {
	if !m.open {
		return ""
	}
	return m.target
}

// Confirm closes the modal and returns the navigation for the open service.
// It returns false when the modal is closed.
func (m *DetailModal) Confirm() (Navigation, bool) {
	if !m.open {
		return Navigation{}, false
	}
	target := m.target
	m.close()
	if target == "" {
		return Navigation{}, false
	}
	return Navigation{Target: target}, true
}

// Cancel closes the modal without navigating.
func (m *DetailModal) Cancel() {
	m.close()
}

func (m *DetailModal) close() {
	m.open = false
	m.service = gie.Service{}
	m.target = ""
}
