package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	httpErr := &HTTPError{StatusCode: resp.StatusCode(), Body: body}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		httpErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		httpErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		httpErr.Err = ErrForbidden
	case http.StatusNotFound:
		httpErr.Err = ErrNotFound
	case http.StatusConflict:
		httpErr.Err = ErrConflict
	case http.StatusBadGateway:
		httpErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		httpErr.Err = ErrInternalServerError
	default:
		if body == "" {
			httpErr.Body = http.StatusText(resp.StatusCode())
		}
	}

	return httpErr
}
