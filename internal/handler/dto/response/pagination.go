package response

import "prize-wheel/internal/usecase/queries"

type PageMetaResponse struct {
	Page       int32 `json:"page"`
	Limit      int32 `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int32 `json:"total_pages"`
}

func FromPageMeta(meta queries.PageMeta) PageMetaResponse {
	var resp PageMetaResponse
	resp.Page = meta.Page
	resp.Limit = meta.Limit
	resp.TotalCount = meta.TotalCount
	resp.TotalPages = meta.TotalPages
	return resp
}
