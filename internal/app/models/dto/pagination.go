package dto

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
}

// ListQuery holds the common query parameters of every list endpoint. Unknown
// orderBy/orderDirection values fall back to each repository's defaults rather
// than being rejected.
type ListQuery struct {
	Page           int    `form:"page,default=1"`
	Limit          int    `form:"limit,default=10"`
	Search         string `form:"search"`
	Status         *bool  `form:"status"`
	OrderBy        string `form:"orderBy"`
	OrderDirection string `form:"orderDirection"`
}

// StatusOrDefault returns the requested status filter, defaulting to active.
func (q ListQuery) StatusOrDefault() bool {
	if q.Status == nil {
		return true
	}
	return *q.Status
}
