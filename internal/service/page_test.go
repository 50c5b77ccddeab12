package service

import "testing"

func TestPageCount(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{"empty collection has one page", 0, 6, 1},
		{"exact multiple", 12, 6, 2},
		{"remainder rounds up", 13, 6, 3},
		{"single row", 1, 6, 1},
		{"size one", 5, 1, 5},
		{"size larger than total", 3, 50, 1},
		{"just under a boundary", 11, 6, 2},
		{"just over a boundary", 12, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageCount(tt.total, tt.size); got != tt.want {
				t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
			}
		})
	}
}

func TestNewPage_BeyondLastPage(t *testing.T) {
	page := NewPage[int](nil, 3, 6, 12)

	if len(page.Items) != 0 {
		t.Errorf("expected empty items, got %d", len(page.Items))
	}
	if page.Items == nil {
		t.Error("expected non-nil items slice for JSON serialization")
	}
	if page.Total != 12 {
		t.Errorf("expected total 12, got %d", page.Total)
	}
	if page.Pages != 2 {
		t.Errorf("expected pages 2, got %d", page.Pages)
	}
}

func TestNewPage_CarriesRequestedPageAndSize(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, 2, 3, 9)

	if page.Page != 2 || page.Size != 3 {
		t.Errorf("expected page=2 size=3, got page=%d size=%d", page.Page, page.Size)
	}
	if page.Pages != 3 {
		t.Errorf("expected pages 3, got %d", page.Pages)
	}
}
