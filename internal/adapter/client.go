// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/query"
	"github.com/MKhiriev/go-rest-session/internal/utils"
)

// Client is the authenticated REST client. It is safe for concurrent use;
// the session is the only state shared between requests.
type Client struct {
	client  *utils.HTTPClient
	session TokenSession

	onUnauthorized UnauthorizedHandler
	logger         *logger.Logger
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithUnauthorizedHandler registers h for 401s that a refresh could not fix.
func WithUnauthorizedHandler(h UnauthorizedHandler) ClientOption {
	return func(c *Client) {
		c.onUnauthorized = h
	}
}

// NewClient constructs a [Client] for the backend at cfg.BaseURL. The base
// URL is normalised (a missing scheme defaults to http) and validated.
func NewClient(cfg config.ClientAdapter, tokens TokenSession, log *logger.Logger, opts ...ClientOption) (*Client, error) {
	baseURL, err := utils.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(authenticate(tokens))

	c := &Client{
		client:  client,
		session: tokens,
		logger:  log,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Do normalizes req.Params, sends the request and returns the final
// response. A 401 is answered with at most one refresh and one replay
// unless req.DisableAutoRefresh is set.
//
// Errors are [*TransportError] when no response arrived and [*HTTPError]
// for non-2xx statuses; the response is returned alongside when there is one.
func (c *Client) Do(ctx context.Context, req Request) (*resty.Response, error) {
	params, err := query.Normalize(req.Params)
	if err != nil {
		return nil, fmt.Errorf("error normalizing request params: %w", err)
	}

	p, err := prepare(req, params)
	if err != nil {
		return nil, err
	}

	return c.send(ctx, p)
}

func (c *Client) send(ctx context.Context, p preparedRequest) (*resty.Response, error) {
	resp, err := c.execute(ctx, p)
	if err == nil || !errors.Is(err, ErrUnauthorized) {
		return resp, err
	}

	return c.recoverUnauthorized(ctx, p, resp, err)
}

func (c *Client) execute(ctx context.Context, p preparedRequest) (*resty.Response, error) {
	r := c.client.R().
		SetContext(ctx).
		SetQueryParams(p.query)

	if len(p.Header) > 0 {
		r.SetHeaderMultiValues(p.Header)
	}
	if p.Body != nil {
		r.SetBody(p.Body)
	}
	if p.Result != nil {
		r.SetResult(p.Result)
	}

	resp, err := r.Execute(p.Method, p.Path)
	if err != nil {
		return resp, &TransportError{Method: p.Method, Path: p.Path, Err: err}
	}

	return resp, mapHTTPError(resp)
}
