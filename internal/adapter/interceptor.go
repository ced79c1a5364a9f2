package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-rest-session/internal/logger"
)

// recoverUnauthorized handles a 401 for p: refresh once, then replay with
// the new token. Every other outcome hands back the 401 itself or, after a
// failed refresh, whatever the unauthorized handler returns.
func (c *Client) recoverUnauthorized(ctx context.Context, p preparedRequest, resp *resty.Response, unauthorized error) (*resty.Response, error) {
	log := logger.FromContext(ctx)

	if !p.canReplay() {
		return resp, unauthorized
	}

	tokens, err := c.session.Refresh(ctx, sentToken(resp))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return resp, fmt.Errorf("waiting for token refresh: %w", ctxErr)
		}

		if c.onUnauthorized != nil {
			return c.onUnauthorized(ctx, err)
		}

		log.Warn().Err(err).
			Str("func", "Client.recoverUnauthorized").
			Str("method", p.Method).
			Str("path", p.Path).
			Msg("token refresh failed, returning original 401")
		return resp, unauthorized
	}

	log.Debug().
		Str("func", "Client.recoverUnauthorized").
		Str("method", p.Method).
		Str("path", p.Path).
		Msg("replaying request with refreshed token")

	return c.send(withPinnedToken(ctx, tokens.AccessToken), p.retried())
}
