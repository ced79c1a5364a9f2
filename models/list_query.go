package models

// Keys of the list-query shape inside a request parameter bag.
const (
	ParamPagination = "pagination"
	ParamFilters    = "filters"
	ParamSorter     = "sorter"
)

// SortOrder is the direction of a [Sorter].
type SortOrder string

const (
	SortAscend  SortOrder = "ascend"
	SortDescend SortOrder = "descend"
)

// Pagination selects a page of a list endpoint. Current is 1-based.
type Pagination struct {
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
}

// Sorter orders a list endpoint by a single field.
type Sorter struct {
	Field string    `json:"field"`
	Order SortOrder `json:"order"`
}

// FilterValue is the ordered set of accepted values for a filter field.
type FilterValue []string

// Filters maps a field name to its accepted values. A name ending in the
// "[]" marker is sent under the bare field name.
type Filters map[string]FilterValue

// ListQuery is the structured list request consumed once by the query
// normalizer and discarded.
type ListQuery struct {
	Pagination *Pagination
	Filters    Filters
	Sorter     *Sorter

	// Extra holds additional query parameters forwarded as they are.
	Extra map[string]any
}

// Params returns q as a parameter bag: Extra's keys plus the pagination,
// filters and sorter keys for the parts that are set.
func (q ListQuery) Params() map[string]any {
	params := make(map[string]any, len(q.Extra)+3)
	for k, v := range q.Extra {
		params[k] = v
	}

	if q.Pagination != nil {
		params[ParamPagination] = *q.Pagination
	}
	if len(q.Filters) > 0 {
		params[ParamFilters] = q.Filters
	}
	if q.Sorter != nil {
		params[ParamSorter] = *q.Sorter
	}

	return params
}
