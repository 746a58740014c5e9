// Package view holds pure presentation helpers shared by the templates:
// the pagination window, badge mapping and CSV export.
package view

// PageWindow returns the contiguous page numbers shown by the pagination
// control: exactly min(5, totalPages) pages including the current one,
// centered on it and clamped at both ends.
func PageWindow(current, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}
	size := 5
	if totalPages < size {
		size = totalPages
	}
	start := current - size/2
	if start < 1 {
		start = 1
	}
	if start+size-1 > totalPages {
		start = totalPages - size + 1
	}
	pages := make([]int, size)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
