package pagewindow

// Layout names the shape of a computed strip.
type Layout string

const (
	LayoutEmpty Layout = "empty" // No pages
	LayoutFull  Layout = "full"  // Every page listed
	LayoutRight Layout = "right" // Ellipsis after the leading block
	LayoutLeft  Layout = "left"  // Ellipsis before the trailing block
	LayoutBoth  Layout = "both"  // Ellipses on both sides of the window
)

// LayoutOf classifies items as returned by Compute.
func LayoutOf(items []PageItem) Layout {
	if len(items) == 0 {
		return LayoutEmpty
	}

	var left, right bool
	for i, item := range items {
		if !item.Ellipsis {
			continue
		}
		// The left ellipsis always follows page 1 directly.
		if i == 1 {
			left = true
		} else {
			right = true
		}
	}

	switch {
	case left && right:
		return LayoutBoth
	case left:
		return LayoutLeft
	case right:
		return LayoutRight
	default:
		return LayoutFull
	}
}
