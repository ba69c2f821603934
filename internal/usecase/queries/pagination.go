package queries

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxListLimit = 200
)

// NormalizePagination clamps page/limit to sane bounds and returns the
// matching SQL offset.
func NormalizePagination(page, limit int32) (normalizedPage, normalizedLimit, offset int32) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return page, limit, (page - 1) * limit
}
