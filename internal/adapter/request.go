package adapter

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// maxReplays caps the number of times a request is re-sent after a refresh.
const maxReplays = 1

// Request describes one call to the backend.
type Request struct {
	// Method defaults to GET.
	Method string
	// Path is resolved against the client's base URL.
	Path string
	// Header holds extra request headers. An Authorization value is always
	// replaced by the session's bearer token when one is present.
	Header http.Header
	// Params is the parameter bag run through the query normalizer once,
	// before the first transmission.
	Params map[string]any
	// Body is sent as JSON unless it is a []byte, string or io.Reader.
	// Readers are buffered so that a replay resends the same bytes.
	Body any
	// Result, when set, receives the decoded JSON of a 2xx response.
	Result any
	// DisableAutoRefresh makes a 401 final: no refresh and no replay.
	DisableAutoRefresh bool
}

// preparedRequest is the immutable, already-normalized form of a Request.
// A replay is a copy with attempt incremented.
type preparedRequest struct {
	Request
	query   map[string]string
	attempt int
}

func prepare(req Request, query map[string]string) (preparedRequest, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	req.Header = req.Header.Clone()

	if r, ok := req.Body.(io.Reader); ok {
		buf, err := io.ReadAll(r)
		if err != nil {
			return preparedRequest{}, fmt.Errorf("error buffering request body: %w", err)
		}
		req.Body = bytes.Clone(buf)
	}

	return preparedRequest{Request: req, query: query}, nil
}

func (p preparedRequest) retried() preparedRequest {
	p.attempt++
	return p
}

func (p preparedRequest) canReplay() bool {
	return !p.DisableAutoRefresh && p.attempt < maxReplays
}
