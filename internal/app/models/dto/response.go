package dto

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the uniform envelope returned by every endpoint.
type APIResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    interface{}     `json:"data,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

// PaginationMeta carries list paging metadata. Total is the count of all rows
// matching the filter, independent of page and per_page.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ListParams bundles the search/sort/paginate query parameters common to all
// entity list endpoints.
type ListParams struct {
	SearchTerm string
	SearchBy   string
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// NewSuccessResponse creates a success envelope with a payload.
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// NewListResponse creates a success envelope for a paginated listing.
func NewListResponse(message string, items interface{}, meta PaginationMeta) APIResponse {
	return APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    items,
		Meta:    &meta,
	}
}
