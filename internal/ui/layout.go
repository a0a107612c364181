package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which cards drop descriptions.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the width at which the header shows the backend address.
	LayoutWideWidth = 110
)

// Card geometry.
const (
	cardWidth        = 30
	cardGap          = 1
	cardDescLines    = 2
	minGridColumns   = 1
	maxGridColumns   = 4
	modalWidth       = 60
	inputCharLimit   = 500
	logPaneMaxLines  = 500
	logPaneMinHeight = 5
)

// Timing constants.
const (
	// DefaultUIInterval is the default refresh interval for the health pill.
	DefaultUIInterval = 3 * time.Second

	// clipboardNoticeTTL is how long the copy notice stays in the footer.
	clipboardNoticeTTL = 4 * time.Second
)
