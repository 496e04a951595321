// Package scroll provides offset math for scrolling lists of rows.
package scroll

// FixedHeightIndex maps between item indexes and row offsets for items that
// all occupy Height rows.
type FixedHeightIndex struct {
	Height int
	Count  int
}

// TotalHeight returns the total height for all items.
func (f FixedHeightIndex) TotalHeight() int {
	if f.Height <= 0 || f.Count <= 0 {
		return 0
	}
	return f.Height * f.Count
}

// IndexForOffset returns the item index shown at the given row offset.
func (f FixedHeightIndex) IndexForOffset(offset int) int {
	if f.Height <= 0 || offset <= 0 {
		return 0
	}
	return min(offset/f.Height, max(f.Count-1, 0))
}

// OffsetForIndex returns the row offset of the given item index.
func (f FixedHeightIndex) OffsetForIndex(index int) int {
	if f.Height <= 0 || index <= 0 || f.Count <= 0 {
		return 0
	}
	return min(index, f.Count-1) * f.Height
}

// MaxOffset returns the largest offset that still fills a view of viewHeight rows.
func (f FixedHeightIndex) MaxOffset(viewHeight int) int {
	return max(f.TotalHeight()-max(viewHeight, 0), 0)
}

// ClampOffset limits offset to [0, MaxOffset(viewHeight)].
func (f FixedHeightIndex) ClampOffset(offset, viewHeight int) int {
	return min(max(offset, 0), f.MaxOffset(viewHeight))
}

// Window returns the half-open range of item indexes visible in a view of
// viewHeight rows scrolled to offset.
func (f FixedHeightIndex) Window(offset, viewHeight int) (first, last int) {
	if f.Height <= 0 || f.Count <= 0 || viewHeight <= 0 {
		return 0, 0
	}
	offset = f.ClampOffset(offset, viewHeight)
	first = offset / f.Height
	last = min((offset+viewHeight+f.Height-1)/f.Height, f.Count)
	return first, last
}
