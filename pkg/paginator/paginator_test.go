package paginator

import "testing"

func TestPaginateQueryAdjust(t *testing.T) {
	tests := []struct {
		name      string
		query     PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"zero values", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"negative page", PaginateQuery{Page: -3, Limit: 10}, DefaultPage, 10},
		{"limit over max", PaginateQuery{Page: 2, Limit: 500}, 2, MaxLimit},
		{"valid values untouched", PaginateQuery{Page: 3, Limit: 25}, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Adjust()
			if tt.query.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.query.Page, tt.wantPage)
			}
			if tt.query.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", tt.query.Limit, tt.wantLimit)
			}
		})
	}
}

func TestPaginateQueryOffset(t *testing.T) {
	tests := []struct {
		name  string
		query PaginateQuery
		want  int64
	}{
		{"first page", PaginateQuery{Page: 1, Limit: 20}, 0},
		{"second page", PaginateQuery{Page: 2, Limit: 20}, 20},
		{"fifth page small limit", PaginateQuery{Page: 5, Limit: 7}, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaginatorToResponse(t *testing.T) {
	p := Paginator{Total: 45, Count: 5, PerPage: 20, CurrentPage: 3}

	resp := p.ToResponse()
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
	}
	if resp.HasNext {
		t.Error("page 3 of 3 should not have a next page")
	}
	if !resp.HasPrev {
		t.Error("page 3 should have a previous page")
	}
}

func TestPaginatorEmpty(t *testing.T) {
	p := Paginator{Total: 0, Count: 0, PerPage: 20, CurrentPage: 1}

	if got := p.TotalPages(); got != 0 {
		t.Errorf("TotalPages() = %d, want 0", got)
	}
	if p.HasNextPage() {
		t.Error("an empty result has no next page")
	}
	if p.HasPreviousPage() {
		t.Error("the first page has no previous page")
	}
}
