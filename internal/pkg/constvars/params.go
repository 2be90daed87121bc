package constvars

const (
	URLParamID    = "id"
	URLParamField = "field"
)

const (
	URLQueryParamQuery = "q"
	URLQueryParamSort  = "sort"
	URLQueryParamOrder = "order"
	URLQueryParamType  = "type"
)

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)
