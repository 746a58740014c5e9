package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"no pages", 1, 0, nil},
		{"single page", 1, 1, []int{1}},
		{"fewer than five", 2, 3, []int{1, 2, 3}},
		{"centered", 5, 9, []int{3, 4, 5, 6, 7}},
		{"clamped at start", 1, 9, []int{1, 2, 3, 4, 5}},
		{"near start", 2, 9, []int{1, 2, 3, 4, 5}},
		{"clamped at end", 9, 9, []int{5, 6, 7, 8, 9}},
		{"near end", 8, 9, []int{5, 6, 7, 8, 9}},
		{"exactly five", 3, 5, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageWindow(tt.current, tt.total)
			assert.Equal(t, tt.want, got)
			if tt.total > 0 {
				want := 5
				if tt.total < 5 {
					want = tt.total
				}
				assert.Len(t, got, want)
				assert.Contains(t, got, tt.current)
			}
		})
	}
}
