package ui

// Layout breakpoints for responsive design.
const (
	// BreakpointNarrow is the width below which the legend and alarm panels are hidden.
	BreakpointNarrow = 80

	// BreakpointMedium is the width above which legend and alarms sit side by side.
	BreakpointMedium = 100

	// MaxContentWidth caps the scale so tick labels stay readable on wide terminals.
	MaxContentWidth = 140
)

// Box and panel dimension constraints.
const (
	// MinBoxWidth is the minimum width for bordered content boxes.
	MinBoxWidth = 20

	// MinContentHeight is the minimum height for scrollable content areas.
	MinContentHeight = 5

	// PagePadding is the horizontal padding around the main view.
	PagePadding = 2
)

// contentWidth is the usable width for the scale and cards.
func contentWidth(termWidth int) int {
	w := termWidth - 2*PagePadding
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < MinScaleWidth {
		w = MinScaleWidth
	}
	return w
}
