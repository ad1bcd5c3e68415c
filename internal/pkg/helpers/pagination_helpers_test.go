package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jdelacruz/ssis-backend/internal/app/models/dto"
)

func paramsFor(t *testing.T, rawQuery string) dto.ListParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/students?"+rawQuery, nil)
	return ParseListParams(c)
}

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, DefaultPageSize},
		{"explicit", "page=3&page_size=25", 3, 25},
		{"zero page clamps", "page=0", 1, DefaultPageSize},
		{"negative size clamps", "page_size=-5", 1, DefaultPageSize},
		{"zero size clamps", "page_size=0", 1, DefaultPageSize},
		{"oversized clamps to max", "page_size=9999", 1, MaxPageSize},
		{"garbage falls back", "page=abc&page_size=xyz", 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paramsFor(t, tt.query)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.PageSize != tt.wantSize {
				t.Errorf("PageSize = %d, want %d", p.PageSize, tt.wantSize)
			}
		})
	}
}

func TestParseListParams_SearchAndSort(t *testing.T) {
	p := paramsFor(t, "q=john+doe&search_by=last_name&sort_by=first_name&sort_order=DESC")

	if p.SearchTerm != "john doe" {
		t.Errorf("SearchTerm = %q, want %q", p.SearchTerm, "john doe")
	}
	if p.SearchBy != "last_name" {
		t.Errorf("SearchBy = %q, want %q", p.SearchBy, "last_name")
	}
	if p.SortBy != "first_name" {
		t.Errorf("SortBy = %q, want %q", p.SortBy, "first_name")
	}
	if p.SortOrder != "DESC" {
		t.Errorf("SortOrder = %q, want %q", p.SortOrder, "DESC")
	}
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, size     int
		wantTotalPages int
	}{
		{"exact pages", 20, 1, 10, 2},
		{"partial last page", 25, 2, 10, 3},
		{"single page", 5, 1, 10, 1},
		{"empty first page", 0, 1, 10, 1},
		{"zero size defaults", 25, 1, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.total, tt.page, tt.size)
			if meta.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantTotalPages)
			}
			if meta.Total != tt.total {
				t.Errorf("Total = %d, want %d", meta.Total, tt.total)
			}
		})
	}
}
