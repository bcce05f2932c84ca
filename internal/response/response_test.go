package response

import (
	"math"
	"testing"
)

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name          string
		page, perPage int
		want          []int
		wantPage      int
		wantPerPage   int
		wantPages     int
	}{
		{"first page", 1, 2, []int{1, 2}, 1, 2, 3},
		{"last partial page", 3, 2, []int{5}, 3, 2, 3},
		{"past the end", 9, 2, []int{}, 9, 2, 3},
		{"page below one", 0, 2, []int{1, 2}, 1, 2, 3},
		{"per page out of range", 1, 1000, []int{1, 2, 3, 4, 5}, 1, 20, 1},
		{"page near max int", math.MaxInt, 20, []int{}, math.MaxInt, 20, 1},
		{"page past int overflow boundary", 1 << 62, 20, []int{}, 1 << 62, 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, p := Page(items, tt.page, tt.perPage)
			if len(got) != len(tt.want) {
				t.Fatalf("items = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("items = %v, want %v", got, tt.want)
				}
			}
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage || p.TotalPages != tt.wantPages || p.TotalItems != len(items) {
				t.Errorf("pagination = %+v", p)
			}
		})
	}
}
