package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-rest-session/internal/utils"
)

type pinnedTokenKey struct{}

// withPinnedToken makes the authenticator send token instead of reading the
// session, so a replay carries exactly the token its refresh produced.
func withPinnedToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, pinnedTokenKey{}, token)
}

func pinnedToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(pinnedTokenKey{}).(string)
	return token, ok && token != ""
}

// authenticate returns the OnBeforeRequest middleware that sets
// "Authorization: Bearer <token>". Without a token the request goes out
// as it is; validity is only learned from the backend's 401.
func authenticate(tokens TokenSession) resty.RequestMiddleware {
	return func(_ *resty.Client, r *resty.Request) error {
		token, ok := pinnedToken(r.Context())
		if !ok {
			token = tokens.AccessToken()
		}
		if token != "" {
			r.SetHeader("Authorization", utils.BearerHeader(token))
		}
		return nil
	}
}

// sentToken returns the access token a response's request was sent with.
func sentToken(resp *resty.Response) string {
	if resp == nil || resp.Request == nil {
		return ""
	}

	token, err := utils.ParseBearerToken(resp.Request.Header.Get("Authorization"))
	if err != nil {
		return ""
	}
	return token
}
