// Package query flattens structured list queries into the query parameters
// understood by the backend: page, limit, sortBy and one key per filter,
// multi-value filters joined with commas.
//
// [Normalize] is pure: it performs no I/O, never mutates its input and
// returns the same result for the same input. Its output contains none of
// the recognised list-query keys, so normalizing an already normalized
// mapping returns it unchanged.
package query

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rest-session/models"
)

// Wire names of the backend list-query contract.
const (
	KeyPage   = "page"
	KeyLimit  = "limit"
	KeySortBy = "sortBy"

	arrayMarker    = "[]"
	valueSeparator = ","

	sortAscending  = "1"
	sortDescending = "-1"
)

// Normalize converts a request parameter bag into flat query parameters.
//
// The pagination, filters and sorter keys are consumed and replaced by
// page/limit, one key per filter and sortBy. Every other key passes through
// in its string form. Keys whose final value is the empty string are
// dropped, as are nil values.
//
// Later stages win on key collisions: passthrough keys are written first,
// then page and limit, then filters, then sortBy.
func Normalize(params map[string]any) (map[string]string, error) {
	if params == nil {
		return nil, nil
	}

	out := make(map[string]string, len(params))

	for key, value := range params {
		if isListQueryKey(key) {
			continue
		}

		s, ok, err := stringify(value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrUnsupportedParam, key, err)
		}
		if ok {
			out[key] = s
		}
	}

	if raw := params[models.ParamPagination]; raw != nil {
		pagination, err := asPagination(raw)
		if err != nil {
			return nil, err
		}
		if pagination != nil {
			out[KeyPage] = strconv.Itoa(pagination.Current)
			out[KeyLimit] = strconv.Itoa(pagination.PageSize)
		}
	}

	if raw := params[models.ParamFilters]; raw != nil {
		if err := applyFilters(out, raw); err != nil {
			return nil, err
		}
	}

	if raw := params[models.ParamSorter]; raw != nil {
		sorter, err := asSorter(raw)
		if err != nil {
			return nil, err
		}
		if sorter != nil && sorter.Field != "" && sorter.Order != "" {
			out[KeySortBy] = sorter.Field + valueSeparator + sortDirection(sorter.Order)
		}
	}

	for key, value := range out {
		if value == "" {
			delete(out, key)
		}
	}

	return out, nil
}

// NormalizeListQuery is a shorthand for Normalize(q.Params()).
func NormalizeListQuery(q models.ListQuery) (map[string]string, error) {
	return Normalize(q.Params())
}

func isListQueryKey(key string) bool {
	switch key {
	case models.ParamPagination, models.ParamFilters, models.ParamSorter:
		return true
	default:
		return false
	}
}

// sortDirection maps ascend to 1 and every other order, unknown ones
// included, to -1.
func sortDirection(order models.SortOrder) string {
	if order == models.SortAscend {
		return sortAscending
	}
	return sortDescending
}

func applyFilters(out map[string]string, raw any) error {
	filters, err := asFilters(raw)
	if err != nil {
		return err
	}

	// Sorted so that "tags" and "tags[]" collide deterministically.
	for _, key := range slices.Sorted(maps.Keys(filters)) {
		joined, ok, err := filterValue(filters[key])
		if err != nil {
			return fmt.Errorf("%w: filter %q: %w", ErrInvalidFilterValue, key, err)
		}
		if !ok {
			continue
		}

		if strings.Contains(key, arrayMarker) {
			key = strings.Replace(key, arrayMarker, "", 1)
		}
		out[key] = joined
	}

	return nil
}
