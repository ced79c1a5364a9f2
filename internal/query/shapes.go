package query

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rest-session/models"
)

// asPagination accepts the typed pagination models and the decoded-JSON form
// {"current": n, "pageSize": n}.
func asPagination(raw any) (*models.Pagination, error) {
	switch v := raw.(type) {
	case models.Pagination:
		return &v, nil
	case *models.Pagination:
		return v, nil
	case map[string]any:
		current, err := asInt(v["current"])
		if err != nil {
			return nil, fmt.Errorf("%w: current: %w", ErrInvalidPagination, err)
		}
		pageSize, err := asInt(v["pageSize"])
		if err != nil {
			return nil, fmt.Errorf("%w: pageSize: %w", ErrInvalidPagination, err)
		}
		return &models.Pagination{Current: current, PageSize: pageSize}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected type %T", ErrInvalidPagination, raw)
	}
}

// asSorter accepts the typed sorter models and the decoded-JSON form
// {"field": "...", "order": "..."}. A map missing either key yields nil; a
// null or empty order is kept as "" and the caller skips it.
func asSorter(raw any) (*models.Sorter, error) {
	switch v := raw.(type) {
	case models.Sorter:
		return &v, nil
	case *models.Sorter:
		return v, nil
	case map[string]any:
		field, hasField := v["field"]
		order, hasOrder := v["order"]
		if !hasField || !hasOrder {
			return nil, nil
		}
		fieldStr, ok := field.(string)
		if !ok && field != nil {
			return nil, fmt.Errorf("%w: field must be a string, got %T", ErrInvalidSorter, field)
		}
		orderStr, ok := order.(string)
		if !ok && order != nil {
			return nil, fmt.Errorf("%w: order must be a string, got %T", ErrInvalidSorter, order)
		}
		return &models.Sorter{Field: fieldStr, Order: models.SortOrder(orderStr)}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected type %T", ErrInvalidSorter, raw)
	}
}

func asFilters(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case models.Filters:
		out := make(map[string]any, len(v))
		for k, fv := range v {
			out[k] = []string(fv)
		}
		return out, nil
	case map[string][]string:
		out := make(map[string]any, len(v))
		for k, fv := range v {
			out[k] = fv
		}
		return out, nil
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, fv := range v {
			out[k] = fv
		}
		return out, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unexpected type %T", ErrInvalidFilters, raw)
	}
}

// filterValue joins a sequence filter value with commas. A plain string is
// forwarded as it is; any other scalar is rejected. A nil value reports
// ok == false and is skipped.
func filterValue(raw any) (string, bool, error) {
	switch v := raw.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []string:
		return strings.Join(v, valueSeparator), true, nil
	case models.FilterValue:
		return strings.Join(v, valueSeparator), true, nil
	case []any:
		s, err := joinScalars(v)
		return s, true, err
	default:
		if rv := reflect.ValueOf(raw); rv.Kind() == reflect.String {
			return rv.String(), true, nil
		}
		return "", false, fmt.Errorf("want string or sequence, got %T", raw)
	}
}

// stringify renders a passthrough value. ok is false for nil values.
func stringify(raw any) (string, bool, error) {
	switch v := raw.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case fmt.Stringer:
		return v.String(), true, nil
	case []string:
		return strings.Join(v, valueSeparator), true, nil
	case []any:
		s, err := joinScalars(v)
		return s, true, err
	}

	s, err := scalar(raw)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

func joinScalars(values []any) (string, error) {
	parts := make([]string, 0, len(values))
	for i, value := range values {
		if value == nil {
			parts = append(parts, "")
			continue
		}
		s, err := scalar(value)
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, valueSeparator), nil
}

// scalar formats strings, booleans and numbers, named types included.
func scalar(raw any) (string, error) {
	v := reflect.ValueOf(raw)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported type %T", raw)
	}
}

// asInt accepts Go integers and whole JSON numbers (float64).
func asInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unexpected type %T", raw)
	}
}
