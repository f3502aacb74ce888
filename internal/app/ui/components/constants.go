package components

import "time"

// UI timing constants
const (
	// UITickInterval drives the focus marker animation
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is 1000ms / UITickInterval
	UITicksPerSecond = int(time.Second / UITickInterval)
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
	HeaderHeight            = 2
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
	FooterHeight            = 3
)

// Content layout constants
const (
	ContentHorizontalPadding = 4
	ContentVerticalPadding   = 2
	MinContentHeight         = 3
	DefaultViewportWidth     = 80
	TipRotationTicks         = 80
)
