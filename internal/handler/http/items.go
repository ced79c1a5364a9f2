package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	query, err := parseItemQuery(r.URL.Query())
	if err != nil {
		h.writeServiceError(w, r, err, "invalid item query")
		return
	}

	page, err := h.services.ItemService.ListItems(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, r, err, "listing items failed")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var newItem models.NewItem
	if err := json.NewDecoder(r.Body).Decode(&newItem); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), newItem)
	if err != nil {
		h.writeServiceError(w, r, err, "creating item failed")
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

// parseItemQuery decodes the list contract: page, limit,
// sortBy=<field>,<1|-1>, comma-joined status and tags, and q.
func parseItemQuery(values url.Values) (models.ItemQuery, error) {
	var (
		query models.ItemQuery
		err   error
	)

	if query.Page, err = optionalInt(values, "page"); err != nil {
		return models.ItemQuery{}, err
	}
	if query.Limit, err = optionalInt(values, "limit"); err != nil {
		return models.ItemQuery{}, err
	}

	if sortBy := values.Get("sortBy"); sortBy != "" {
		field, dir, ok := strings.Cut(sortBy, ",")
		if !ok || field == "" || (dir != "1" && dir != "-1") {
			return models.ItemQuery{}, fmt.Errorf("%w: sortBy %q", ErrInvalidQueryParam, sortBy)
		}
		query.SortField = field
		query.SortDesc = dir == "-1"
	}

	for _, status := range splitList(values.Get("status")) {
		query.Status = append(query.Status, models.ItemStatus(status))
	}
	query.Tags = splitList(values.Get("tags"))
	query.Search = strings.TrimSpace(values.Get("q"))

	return query, nil
}

func optionalInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParam, key, raw)
	}
	return n, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
