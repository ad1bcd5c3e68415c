package query

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		limit  int
		offset int
		want   string
	}{
		{10, 0, "LIMIT 10 OFFSET 0"},
		{10, 10, "LIMIT 10 OFFSET 10"},
		{25, 50, "LIMIT 25 OFFSET 50"},
		{5, -1, "LIMIT 5 OFFSET 0"},
		{0, 0, ""},
		{-1, 10, ""},
	}

	for _, tt := range tests {
		if got := BuildPagination(tt.limit, tt.offset); got != tt.want {
			t.Errorf("BuildPagination(%d, %d) = %q, want %q", tt.limit, tt.offset, got, tt.want)
		}
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		want     int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
		{0, 10, 0},  // pages below 1 clamp to the first page
		{-5, 10, 0},
		{2, 0, 0},
	}

	for _, tt := range tests {
		if got := Offset(tt.page, tt.pageSize); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.page, tt.pageSize, got, tt.want)
		}
	}
}
