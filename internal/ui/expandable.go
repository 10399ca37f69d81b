package ui

// Label keys for the expand control. They resolve through the i18n bundle.
const (
	LabelShowMore = "list.show_more"
	LabelShowLess = "list.show_less"
)

// ExpandableList shows a prefix of items until expanded.
// The control is always offered, even when every item already fits.
type ExpandableList[T any] struct {
	items    []T
	preview  int
	expanded bool
}

// NewExpandableList builds a collapsed list with the given preview length.
// A negative preview length is treated as zero.
func NewExpandableList[T any](items []T, preview int) *ExpandableList[T] {
	if preview < 0 {
		preview = 0
	}
	return &ExpandableList[T]{items: append([]T(nil), items...), preview: preview}
}

// Len returns the full number of items.
func (l *ExpandableList[T]) Len() int { return len(l.items) }

// PreviewLength returns the collapsed prefix length.
func (l *ExpandableList[T]) PreviewLength() int { return l.preview }

// Expanded reports whether every item is visible.
func (l *ExpandableList[T]) Expanded() bool { return l.expanded }

// Toggle flips the expansion state and returns the new value.
func (l *ExpandableList[T]) Toggle() bool {
	l.expanded = !l.expanded
	return l.expanded
}

// Visible returns the items currently shown, in order.
func (l *ExpandableList[T]) Visible() []T {
	n := len(l.items)
	if !l.expanded && l.preview < n {
		n = l.preview
	}
	return l.items[:n:n]
}

// Hidden returns how many items the collapsed view leaves out.
func (l *ExpandableList[T]) Hidden() int {
	return len(l.items) - len(l.Visible())
}

// LabelKey returns the control label key mirroring the current state.
func (l *ExpandableList[T]) LabelKey() string {
	if l.expanded {
		return LabelShowLess
	}
	return LabelShowMore
}

// IndicatorUp reports whether the control's chevron points up.
func (l *ExpandableList[T]) IndicatorUp() bool { return l.expanded }
